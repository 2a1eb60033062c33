package main

import (
	"errors"
	"fmt"
	"go/token"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls what vectgen emits.
type Config struct {
	// Package is the package clause of the generated files.
	Package string `yaml:"package"`
	// Output is the directory the files are written to.
	Output string `yaml:"output"`
	// MaxIndex is the highest index that gets pre-verified Get/Insert/Remove
	// functions.
	MaxIndex int `yaml:"max_index"`
	// MaxLength is the highest static length that gets a U<n> alias.
	MaxLength int `yaml:"max_length"`
}

// DefaultConfig returns the configuration used for the typevec package.
func DefaultConfig() Config {
	return Config{
		Package:   "typevec",
		Output:    ".",
		MaxIndex:  7,
		MaxLength: 16,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // nolint gosec
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can produce compilable output.
func (c Config) Validate() error {
	switch {
	case !token.IsIdentifier(c.Package):
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidConfig, c.Package)
	case c.Output == "":
		return fmt.Errorf("%w: output directory must be set", ErrInvalidConfig)
	case c.MaxIndex < 0:
		return fmt.Errorf("%w: max index %d is negative", ErrInvalidConfig, c.MaxIndex)
	case c.MaxLength < c.MaxIndex+1:
		// Remove<MaxIndex> needs a vector of length MaxIndex+1 to be nameable.
		return fmt.Errorf("%w: max length %d must be at least max index + 1 (%d)", ErrInvalidConfig, c.MaxLength, c.MaxIndex+1)
	}
	return nil
}
