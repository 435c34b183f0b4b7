package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var refsCmd = &cobra.Command{
	Use:   "refs <key>",
	Short: "Print the reference count of a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefs,
}

func init() {
	rootCmd.AddCommand(refsCmd)
}

func runRefs(cmd *cobra.Command, args []string) error {
	key, err := filestore.ParseKey(args[0])
	if err != nil {
		return err
	}

	fs, err := openStore()
	if err != nil {
		return err
	}

	n, err := fs.Refcount(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
