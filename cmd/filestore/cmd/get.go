package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Retrieve content",
	Long:  "Write the content stored under key to stdout, or to a file with --output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringP("output", "o", "", "write content to this file instead of stdout")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	key, err := filestore.ParseKey(args[0])
	if err != nil {
		return err
	}

	fs, err := openStore()
	if err != nil {
		return err
	}

	data, err := fs.RetrieveData(key)
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("output"); out != "" {
		return os.WriteFile(out, data, 0644)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
