package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khernyo/sleep-parser/compress"
	"github.com/khernyo/sleep-parser/snapshot"
)

var snapshotCodec string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Bundle SLEEP files into a compressed archive",
}

var snapshotCreateCmd = &cobra.Command{
	Use:   "create <archive> <file>...",
	Short: "Create an archive from one or more SLEEP files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, ok := compress.TypeByName(snapshotCodec)
		if !ok {
			return fmt.Errorf("unknown codec %q (none, zstd, s2, lz4)", snapshotCodec)
		}

		files := make(map[string][]byte, len(args)-1)
		for _, path := range args[1:] {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			files[filepath.Base(path)] = data
		}

		out, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer out.Close()

		if err := snapshot.Write(out, codec, files); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s (%s)\n", len(files), args[0], codec)

		return nil
	},
}

var snapshotExtractCmd = &cobra.Command{
	Use:   "extract <archive> <dir>",
	Short: "Extract an archive, verifying every file fingerprint",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		files, err := snapshot.Read(in)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(args[1], 0o755); err != nil {
			return err
		}
		for name, data := range files {
			if err := os.WriteFile(filepath.Join(args[1], name), data, 0o644); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "extracted %d files to %s\n", len(files), args[1])

		return nil
	},
}

func init() {
	snapshotCreateCmd.Flags().StringVar(&snapshotCodec, "codec", "zstd", "compression codec: none, zstd, s2, lz4")
	snapshotCmd.AddCommand(snapshotCreateCmd, snapshotExtractCmd)
	rootCmd.AddCommand(snapshotCmd)
}
