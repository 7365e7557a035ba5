package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"omibyte.io/mmapgen/generator"
	"omibyte.io/mmapgen/svd"
)

var (
	genOpts = struct {
		output string
		config string
	}{}

	genCmd = &cobra.Command{
		Use:   "gen <device.svd>",
		Short: "Generate register accessor declarations",
		Long:  "Generate the full set of register accessor declarations for a device and print them to standard output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device, cfg, err := loadInputs(args[0], genOpts.config)
			if err != nil {
				return err
			}

			var out io.Writer = os.Stdout
			if len(genOpts.output) > 0 {
				f, err := os.Create(genOpts.output)
				if err != nil {
					return fmt.Errorf("file io error: %w", err)
				}
				defer f.Close()
				out = f
			}

			gen := generator.New(device, cfg)
			if err := gen.Generate(out); err != nil {
				return fmt.Errorf("generator error: %w", err)
			}
			for _, warning := range gen.Warnings() {
				log.Println("warning:", warning)
			}
			return nil
		},
	}
)

func init() {
	genCmd.Flags().StringVarP(&genOpts.output, "output", "o", "", "output file (default standard output)")
	genCmd.Flags().StringVar(&genOpts.config, "config", "", "generation policy file")
}

// loadInputs reads and decodes the SVD document and resolves the generation
// configuration.
func loadInputs(svdPath, configPath string) (svd.DeviceElement, generator.Config, error) {
	var device svd.DeviceElement

	cfg := generator.DefaultConfig()
	if len(configPath) > 0 {
		var err error
		if cfg, err = generator.LoadConfig(configPath); err != nil {
			return device, cfg, err
		}
	}

	buf, err := os.ReadFile(svdPath)
	if err != nil {
		return device, cfg, fmt.Errorf("file io error: %w", err)
	}
	if err = xml.Unmarshal(buf, &device); err != nil {
		return device, cfg, fmt.Errorf("xml decode error: %w", err)
	}
	return device, cfg, nil
}
