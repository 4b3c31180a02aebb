package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/pelletier/go-toml"
)

type Custom struct {
	Shell struct {
		Quiet  bool   `toml:"quiet"`
		Prompt string `toml:"prompt"`
	} `toml:"shell"`
	Output struct {
		Format        string `toml:"format"`
		DecimalPlaces int    `toml:"decimal-places"`
	} `toml:"output"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Default() *Custom {
	var config Custom
	config.Output.Format = OutputFormatText
	config.Log.Level = logger.ERROR
	return &config
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	if config.Output.Format == "" {
		config.Output.Format = OutputFormatText
	}
	if config.Log.Level == 0 {
		config.Log.Level = logger.ERROR
	}
	return &config, config.Validate()
}

func (c *Custom) Validate() error {
	switch c.Output.Format {
	case OutputFormatText, OutputFormatJSON:
	default:
		return fmt.Errorf("invalid output format %s", c.Output.Format)
	}
	if p := c.Output.DecimalPlaces; p < 0 || p > DecimalPlacesMaximum {
		return fmt.Errorf("invalid decimal places %d", p)
	}
	if c.Log.Limiter < 0 {
		return fmt.Errorf("invalid log limiter %d", c.Log.Limiter)
	}
	return nil
}
