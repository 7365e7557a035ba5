package generator

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var rawConfig []byte

// Config controls generation-time policy. Start from DefaultConfig; the zero
// value generates code with no link prefix and no runtime import.
type Config struct {
	// LinkPrefix is prepended to the device and peripheral name to form the
	// link symbol bound to each peripheral instance.
	LinkPrefix string `yaml:"linkPrefix"`

	// ReservedMask marks bit positions every commit clears before merging
	// preserved hardware state.
	ReservedMask uint32 `yaml:"reservedMask"`

	// Package overrides the generated package name. Empty means the
	// lower-cased device name.
	Package string `yaml:"package"`

	// RuntimeImport is the import path of the volatile register cell package.
	RuntimeImport string `yaml:"runtimeImport"`
}

func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(rawConfig, &cfg); err != nil {
		// The embedded default ships with the binary; failing to parse it is
		// a programming error, not an input error.
		panic(err)
	}
	return cfg
}

// LoadConfig overlays the YAML file at path onto the default configuration.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Join(ErrConfigLoadFailed, err)
	}
	if err = yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrConfigLoadFailed, path, err)
	}
	return cfg, nil
}
