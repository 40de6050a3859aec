package sim

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete simulation configuration
type Config struct {
	Simulation Settings `hcl:"simulation,block"`
}

// Settings contains the knobs for one simulation run
type Settings struct {
	Hands    int    `hcl:"hands,optional"`
	Players  int    `hcl:"players,optional"`
	Seed     int64  `hcl:"seed,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// DefaultConfig returns default simulation configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: Settings{
			Hands:    10000,
			Players:  6,
			Seed:     0,
			LogLevel: "info",
		},
	}
}

// LoadConfig loads simulation configuration from an HCL file, falling back
// to defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := DefaultConfig()
	if diags := gohcl.DecodeBody(file.Body, nil, config); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration for values the runner cannot honor.
func (c *Config) Validate() error {
	if c.Simulation.Hands < 1 {
		return fmt.Errorf("hands must be positive, got %d", c.Simulation.Hands)
	}
	if c.Simulation.Players < 2 || c.Simulation.Players > 10 {
		return fmt.Errorf("players must be between 2 and 10, got %d", c.Simulation.Players)
	}
	return nil
}
