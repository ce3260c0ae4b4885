package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// runConfig holds interpreter limits and tracing knobs that are tedious to
// respecify on every invocation, loaded from a YAML file via -config.
type runConfig struct {
	MaxSteps int  `yaml:"maxSteps"`
	MaxDepth int  `yaml:"maxDepth"`
	Trace    bool `yaml:"trace"`
}

func loadRunConfig(path string) (runConfig, error) {
	var cfg runConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
