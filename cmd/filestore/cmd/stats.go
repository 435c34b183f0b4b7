package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the store",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	addOutputFlag(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	fs, err := openStore()
	if err != nil {
		return err
	}

	stats, err := fs.Stats(cmd.Context())
	if err != nil {
		return err
	}

	return writeOutput(cmd, stats, func(w io.Writer) error {
		fmt.Fprintf(w, "objects:    %d\n", stats.Objects)
		fmt.Fprintf(w, "bytes:      %d\n", stats.Bytes)
		fmt.Fprintf(w, "references: %d\n", stats.References)
		return nil
	})
}
