package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig is the shape of an optional TOML config file, overriding the
// driver defaults. No command-line flag overrides these values.
type fileConfig struct {
	RequireFullInput bool `toml:"require_full_input"`
	PreallocateLog   int  `toml:"preallocate_log"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{RequireFullInput: true, PreallocateLog: 0}
}

func loadFileConfig(path string) (fileConfig, error) {
	cfg := defaultFileConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
