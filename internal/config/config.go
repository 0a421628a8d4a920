// SPDX-License-Identifier: MIT
// Package config holds the CLI defaults that may come from a config file.
// Command-line flags always override what is loaded here.
//
// The file format follows the extension: .toml is decoded with
// BurntSushi/toml, .yaml and .yml with yaml.v3.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstgen/builder"
)

var (
	// ErrUnknownFormat indicates a config file extension we cannot decode.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid indicates a decoded config that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the set of tunable CLI defaults.
type Config struct {
	// InputsDir receives generated graphs when no output file is given.
	InputsDir string `toml:"inputs_dir" yaml:"inputs_dir"`
	// CatalogPath is the SQLite file tracking generated inputs.
	CatalogPath string `toml:"catalog" yaml:"catalog"`

	Precision int     `toml:"precision" yaml:"precision"`
	MinWeight float64 `toml:"min_weight" yaml:"min_weight"`
	MaxWeight float64 `toml:"max_weight" yaml:"max_weight"`

	// DenseThreshold enables the heap strategy above this percent of max.
	// Zero leaves it disabled.
	DenseThreshold float64 `toml:"dense_threshold" yaml:"dense_threshold"`

	// Workers bounds concurrent generations in the batch command.
	Workers int `toml:"workers" yaml:"workers"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		InputsDir:   "inputs",
		CatalogPath: filepath.Join("inputs", "inputs.db"),
		Precision:   builder.DefaultPrecision,
		MinWeight:   builder.DefaultMinWeight,
		MaxWeight:   builder.DefaultMaxWeight,
		Workers:     runtime.NumCPU(),
	}
}

// Load reads path over the defaults. An empty path yields Default().
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config: %s: %w", path, ErrUnknownFormat)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.InputsDir == "":
		return fmt.Errorf("inputs_dir is empty: %w", ErrInvalid)
	case c.Precision < builder.MinPrecision || c.Precision > builder.MaxPrecision:
		return fmt.Errorf("precision %d outside [%d,%d]: %w",
			c.Precision, builder.MinPrecision, builder.MaxPrecision, ErrInvalid)
	case c.MinWeight < 0 || c.MinWeight > c.MaxWeight || math.IsInf(c.MaxWeight, 0):
		return fmt.Errorf("weight range [%g,%g]: %w", c.MinWeight, c.MaxWeight, ErrInvalid)
	case c.DenseThreshold < 0 || c.DenseThreshold > 1 || math.IsNaN(c.DenseThreshold):
		return fmt.Errorf("dense_threshold %g outside [0,1]: %w", c.DenseThreshold, ErrInvalid)
	case c.Workers < 1:
		return fmt.Errorf("workers %d < 1: %w", c.Workers, ErrInvalid)
	}

	return nil
}

// BuilderOptions translates the library-facing settings into options.
func (c Config) BuilderOptions() []builder.BuilderOption {
	if c.DenseThreshold == 0 {
		return nil
	}

	return []builder.BuilderOption{builder.WithDenseThreshold(c.DenseThreshold)}
}
