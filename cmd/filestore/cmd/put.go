package cmd

import (
	"fmt"
	"io"
	"slices"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var putCmd = &cobra.Command{
	Use:   "put <file|-> [file...]",
	Short: "Store files",
	Long:  "Store copies of files, or stdin when the argument is \"-\". Prints one key per input.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPut,
}

func init() {
	rootCmd.AddCommand(putCmd)
}

func runPut(cmd *cobra.Command, args []string) error {
	fs, err := openStore()
	if err != nil {
		return err
	}
	return putAll(cmd.OutOrStdout(), cmd.InOrStdin(), fs, args, concurrency())
}

func putAll(w io.Writer, stdin io.Reader, fs filestore.FS, args []string, n int) error {
	var stdinData []byte
	if slices.Contains(args, "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		stdinData = data
	}

	keys := make([]filestore.FileKey, len(args))
	p := pool.New().WithErrors().WithMaxGoroutines(n)
	for i, arg := range args {
		p.Go(func() error {
			var (
				k   filestore.FileKey
				err error
			)
			if arg == "-" {
				k, err = fs.StoreData(stdinData)
			} else {
				k, err = fs.StoreFile(arg)
			}
			keys[i] = k
			return err
		})
	}
	err := p.Wait()

	for i, k := range keys {
		if k != "" {
			fmt.Fprintf(w, "%s\t%s\n", k, args[i])
		}
	}
	return err
}
