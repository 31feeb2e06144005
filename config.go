package main

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the file-configurable defaults. Priority is
// defaults < config file < command line flags.
type Config struct {
	Strip   StripConfig   `yaml:"strip"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// StripConfig holds the per-file strip settings.
type StripConfig struct {
	Remove        []string `yaml:"remove"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	Compact       bool     `yaml:"compact"`
}

// BatchConfig holds the directory processing settings.
type BatchConfig struct {
	Recursive bool   `yaml:"recursive"`
	Overwrite bool   `yaml:"overwrite"`
	Suffix    string `yaml:"suffix"`
	Workers   int    `yaml:"workers"`
	Report    string `yaml:"report"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	workers := runtime.NumCPU()
	if workers < 2 {
		workers = 2
	}
	return &Config{
		Strip: StripConfig{},
		Batch: BatchConfig{
			Suffix:  "_stripped",
			Workers: workers,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// loadConfig loads defaults merged with the given YAML file. An empty path
// probes ./obj-stripmtl.yaml and silently falls back to defaults when it
// does not exist; an explicit path must load.
func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = "obj-stripmtl.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// applyConfig copies config file values into the start parameters for
// every flag the user did not set on the command line, so flags always win.
func applyConfig(sp *startParams, cfg *Config, flagSet map[string]bool) {
	if !flagSet["remove"] && len(cfg.Strip.Remove) > 0 {
		sp.Remove = cfg.Strip.Remove
	}
	if !flagSet["case-sensitive"] {
		sp.CaseSensitive = cfg.Strip.CaseSensitive
	}
	if !flagSet["compact"] {
		sp.Compact = cfg.Strip.Compact
	}
	if !flagSet["recursive"] {
		sp.Recursive = cfg.Batch.Recursive
	}
	if !flagSet["overwrite"] {
		sp.Overwrite = cfg.Batch.Overwrite
	}
	if !flagSet["suffix"] && cfg.Batch.Suffix != "" {
		sp.Suffix = cfg.Batch.Suffix
	}
	if !flagSet["workers"] && cfg.Batch.Workers > 0 {
		sp.Workers = cfg.Batch.Workers
	}
	if !flagSet["report"] && cfg.Batch.Report != "" {
		sp.Report = cfg.Batch.Report
	}
	if !flagSet["log-level"] && cfg.Logging.Level != "" {
		sp.LogLevel = cfg.Logging.Level
	}
	if !flagSet["log-file"] && cfg.Logging.LogFile != "" {
		sp.LogFile = cfg.Logging.LogFile
	}
}
