package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mmapgen",
	Short:         "Generate Go register accessors from a CMSIS-SVD description",
	Long:          "mmapgen turns an ARM CMSIS-SVD hardware description into Go source for type-safe, single-access reads and writes of memory-mapped registers.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(linkmemCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
