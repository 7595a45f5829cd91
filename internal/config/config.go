// Package config loads run settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".semic.yaml"

type Frontend string

const (
	Native     Frontend = "native"
	TreeSitter Frontend = "tree-sitter"
)

type Config struct {
	Interactive bool     `yaml:"interactive"`
	Verbose     bool     `yaml:"verbose"`
	Frontend    Frontend `yaml:"frontend"`
	History     string   `yaml:"history"`
	Color       bool     `yaml:"color"`
}

func Default() Config {
	return Config{Frontend: Native, Color: true}
}

// Load reads path over the defaults. Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Find loads path, or DefaultFile when path is empty and the file exists.
// Without either it returns the defaults.
func Find(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFile); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultFile)
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case Native, TreeSitter:
		return nil
	}
	return fmt.Errorf("config: unknown frontend %q (want %q or %q)", c.Frontend, Native, TreeSitter)
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
