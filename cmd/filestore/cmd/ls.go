package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aweris/filestore"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stored content",
	Long:  "List every key in the store with its size and reference count.",
	Args:  cobra.NoArgs,
	RunE:  runLs,
}

func init() {
	addOutputFlag(lsCmd)
	rootCmd.AddCommand(lsCmd)
}

type entry struct {
	Key  filestore.FileKey `json:"key" yaml:"key"`
	Size int64             `json:"size" yaml:"size"`
	Refs uint32            `json:"refs" yaml:"refs"`
}

func runLs(cmd *cobra.Command, args []string) error {
	fs, err := openStore()
	if err != nil {
		return err
	}

	entries, err := listEntries(fs)
	if err != nil {
		return err
	}

	return writeOutput(cmd, entries, func(w io.Writer) error {
		if len(entries) == 0 {
			fmt.Fprintln(w, "(no entries)")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%d\t%d\n", e.Key, e.Size, e.Refs)
		}
		return nil
	})
}

func listEntries(fs filestore.FS) ([]entry, error) {
	entries := []entry{}
	for key, err := range fs.Keys() {
		if err != nil {
			return nil, err
		}
		path, err := fs.RetrieveFile(key)
		if err != nil {
			if filestore.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		info, err := os.Stat(path)
		if err != nil {
			if filestore.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		refs, err := fs.Refcount(key)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{Key: key, Size: info.Size(), Refs: refs})
	}
	return entries, nil
}
