// SPDX-License-Identifier: MIT

// Package config holds the runtime settings of the bayesnet tools.
//
// Settings come from an optional YAML file layered over Default and are
// checked with struct tags before use:
//
//	log_level: debug
//	max_depth: 64
//	lenient_normalization: false
//	workers: 4
//	metrics: true
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bayesnet/enumeration"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full set of tool settings.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`

	// MaxDepth bounds the enumeration recursion; -1 means unbounded.
	MaxDepth int `yaml:"max_depth" validate:"gte=-1"`

	// LenientNormalization returns all-zero distributions without an error.
	LenientNormalization bool `yaml:"lenient_normalization"`

	// Workers caps concurrent queries in batch commands.
	Workers int `yaml:"workers" validate:"gte=1"`

	// Metrics enables the Prometheus registry.
	Metrics bool `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		MaxDepth: -1,
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	errs := make([]error, 0, len(verrs))
	for _, e := range verrs {
		errs = append(errs, fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalid, e.Field(), e.Tag(), e.Value()))
	}

	return errors.Join(errs...)
}

// EngineOptions translates the settings into enumeration options.
func (c *Config) EngineOptions() []enumeration.Option {
	opts := []enumeration.Option{enumeration.WithMaxDepth(c.MaxDepth)}
	if c.LenientNormalization {
		opts = append(opts, enumeration.WithLenientNormalization())
	}

	return opts
}

// ZapLevel maps LogLevel onto a zap level, defaulting to info.
func (c *Config) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}
