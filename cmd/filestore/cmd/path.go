package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var pathCmd = &cobra.Command{
	Use:   "path <key>",
	Short: "Print the path of stored content",
	Long:  "Print the path of the managed copy. Treat it as read-only; use rm to delete.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	key, err := filestore.ParseKey(args[0])
	if err != nil {
		return err
	}

	fs, err := openStore()
	if err != nil {
		return err
	}

	path, err := fs.RetrieveFile(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
