// Package config holds the variant CLI configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
	ArraySize int    `json:"arraySize" yaml:"arraySize"`
	Record    Record `json:"record" yaml:"record"`
	Intern    Intern `json:"intern" yaml:"intern"`
}

// Record holds the initial capacities of records built by the CLI.
type Record struct {
	ObjectCapacity int `json:"objectCapacity" yaml:"objectCapacity"`
	DataCapacity   int `json:"dataCapacity" yaml:"dataCapacity"`
}

// Intern lists values pre-loaded into the CLI's string interner.
type Intern struct {
	Seed    []string `json:"seed" yaml:"seed"`
	MaxSize int      `json:"maxSize" yaml:"maxSize"`
}

var defaultConfig = `
logLevel: info
arraySize: 0
record:
  objectCapacity: 0
  dataCapacity: 8
intern:
  seed: []
  maxSize: 0
`

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(defaultConfig), cfg); err != nil {
		panic(fmt.Sprintf("config: bad default config: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path over the defaults. An empty path yields
// the defaults; a named file that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects negative sizes.
func (c *Config) Validate() error {
	switch {
	case c.ArraySize < 0:
		return fmt.Errorf("config: arraySize must be >= 0, got %d", c.ArraySize)
	case c.Record.ObjectCapacity < 0:
		return fmt.Errorf("config: record.objectCapacity must be >= 0, got %d", c.Record.ObjectCapacity)
	case c.Record.DataCapacity < 0:
		return fmt.Errorf("config: record.dataCapacity must be >= 0, got %d", c.Record.DataCapacity)
	case c.Intern.MaxSize < 0:
		return fmt.Errorf("config: intern.maxSize must be >= 0, got %d", c.Intern.MaxSize)
	}
	return nil
}
