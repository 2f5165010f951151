package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/zzl/go-cppapi-gen/cppmodel"
)

// Config is the cppapi-gen.toml file.
type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Filter FilterConfig `toml:"filter"`
}

type InputConfig struct {
	//declaration files, loaded in order; order decides naming tiebreaks
	Files []string `toml:"files"`
}

type OutputConfig struct {
	Dir     string `toml:"dir"`
	Header  string `toml:"header"`
	ApiName string `toml:"api_name"`
}

type FilterConfig struct {
	Paths []string `toml:"paths"`
	Units []string `toml:"units"`
}

func (this *FilterConfig) ToModelFilter() *cppmodel.Filter {
	return &cppmodel.Filter{
		Paths: this.Paths,
		Units: this.Units,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if len(cfg.Input.Files) == 0 {
		return nil, fmt.Errorf("config: %s: no input files", path)
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "output"
	}
	if cfg.Output.Header == "" {
		cfg.Output.Header = "bridge.h"
	}
	return cfg, nil
}
