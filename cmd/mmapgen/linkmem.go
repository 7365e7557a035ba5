package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"omibyte.io/mmapgen/generator"
)

var (
	linkmemConfig string

	linkmemCmd = &cobra.Command{
		Use:   "linkmem <device.svd>",
		Short: "Print the link symbol report",
		Long:  "Print one \"symbol = address\" line per peripheral instance, for use by linker script generation.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device, cfg, err := loadInputs(args[0], linkmemConfig)
			if err != nil {
				return err
			}
			if err := generator.New(device, cfg).LinkMem(os.Stdout); err != nil {
				return fmt.Errorf("report error: %w", err)
			}
			return nil
		},
	}
)

func init() {
	linkmemCmd.Flags().StringVar(&linkmemConfig, "config", "", "generation policy file")
}
