package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var errInconsistent = errors.New("store is inconsistent")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report inconsistencies",
	Long:  "Report content without references and references without content. Nothing is repaired.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	addOutputFlag(checkCmd)
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	fs, err := openStore()
	if err != nil {
		return err
	}

	problems, err := fs.Check(cmd.Context())
	if err != nil {
		return err
	}
	if problems == nil {
		problems = []filestore.Problem{}
	}

	if err := writeOutput(cmd, problems, func(w io.Writer) error {
		if len(problems) == 0 {
			fmt.Fprintln(w, "ok")
			return nil
		}
		for _, p := range problems {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Kind, p.Key, p.Path)
		}
		return nil
	}); err != nil {
		return err
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %d problems", errInconsistent, len(problems))
	}
	return nil
}
