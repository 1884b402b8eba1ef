package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// demoConfig mirrors the demo command's flags, so repeatable runs can be
// driven from a file instead of the command line. Flags that were set
// explicitly win over file values. Only how the built-in tree is driven is
// configurable, never its topology.
type demoConfig struct {
	Ticks       int    `yaml:"ticks"`
	Interval    string `yaml:"interval"`
	Distance    int    `yaml:"distance"`
	Locked      bool   `yaml:"locked"`
	HasKey      bool   `yaml:"has_key"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func loadDemoConfig(path string) (*demoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg demoConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
