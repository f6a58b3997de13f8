package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clientgen/go-sdk/pkg/guard"
)

// ServiceConfig selects one service description to generate from.
type ServiceConfig struct {
	// Description is the path to the service description JSON
	Description string `yaml:"description"`

	// Overrides is an optional path to an RFC 6902 patch applied before
	// generation
	Overrides string `yaml:"overrides"`

	// Package overrides the generated package name; defaults to the
	// lowercased service name
	Package string `yaml:"package"`
}

// Config drives a generation run.
type Config struct {
	// Output is the directory generated packages are written under
	Output string `yaml:"output"`

	// Header is an optional comment line stamped into every generated file
	Header string `yaml:"header"`

	// Services lists the descriptions to generate, in order
	Services []ServiceConfig `yaml:"services"`
}

// LoadConfig reads and validates a YAML run configuration.
func LoadConfig(path string) (*Config, error) {
	if err := guard.NotEmpty(path, "path"); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration contract.
func (c *Config) Validate() error {
	if err := guard.NotEmpty(c.Output, "output"); err != nil {
		return err
	}
	if err := guard.NotEmptySlice(c.Services, "services"); err != nil {
		return err
	}
	for i, svc := range c.Services {
		if guard.IsEmpty(svc.Description) {
			return guard.NewArgumentError(
				fmt.Sprintf("services[%d].description", i), "must not be empty")
		}
	}
	return nil
}
