// Command sleep inspects, verifies and archives SLEEP files.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Inspect, verify and archive SLEEP metadata files",
	Long: `sleep works with the on-disk files of the SLEEP format: hash-tree,
bitfield and signatures files sharing the 32-byte SLEEP header.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
