package cmd

import (
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key> [key...]",
	Short: "Drop references",
	Long:  "Drop one reference per key. Content is removed with its last reference.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	keys, err := parseKeys(args)
	if err != nil {
		return err
	}

	fs, err := openStore()
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := fs.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
