package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khernyo/sleep-parser/internal/hash"
	"github.com/khernyo/sleep-parser/sleepfile"
	"github.com/khernyo/sleep-parser/storage"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the header and shape of a SLEEP file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := storage.OpenFile(args[0])
		if err != nil {
			return err
		}
		defer provider.Close()

		f, err := sleepfile.Open(provider)
		if err != nil {
			return err
		}

		header := f.Header()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "file type:      %s\n", header.FileType)
		fmt.Fprintf(out, "version:        %s\n", header.Version)
		fmt.Fprintf(out, "entry size:     %d\n", header.EntrySize)
		fmt.Fprintf(out, "hash algorithm: %s\n", header.HashAlgorithm)

		count, err := f.EntryCount()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "entries:        %d\n", count)

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "fingerprint:    %016x\n", hash.Fingerprint(raw))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
