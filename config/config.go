// SPDX-License-Identifier: MIT
// Package config loads rotgraph settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Defaults applied by Load and Parse to unset fields.
const (
	DefaultCacheSize = 8
	DefaultLogLevel  = "info"
)

// Sentinel errors for configuration.
var (
	ErrBadCacheSize = errors.New("config: cacheSize must be >= 0")
	ErrBadLogLevel  = errors.New("config: unknown logLevel")
	ErrBadTime      = errors.New("config: reconstructionTime is NaN or Inf")
)

// Config is the on-disk configuration.
type Config struct {
	AnchorPlateID      uint32  `yaml:"anchorPlateId"`
	ReconstructionTime float64 `yaml:"reconstructionTime"`
	CacheSize          int     `yaml:"cacheSize"`
	LogLevel           string  `yaml:"logLevel"`
	DataFile           string  `yaml:"dataFile"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{CacheSize: DefaultCacheSize, LogLevel: DefaultLogLevel}
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys, then fills defaults and validates.
func Parse(data []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if c.CacheSize == 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("%w (%d)", ErrBadCacheSize, c.CacheSize)
	}
	if math.IsNaN(c.ReconstructionTime) || math.IsInf(c.ReconstructionTime, 0) {
		return ErrBadTime
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w %q", ErrBadLogLevel, c.LogLevel)
	}

	return nil
}

// NewLogger returns a logrus logger at the configured level.
func (c Config) NewLogger() (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrBadLogLevel, c.LogLevel)
	}
	l := logrus.New()
	l.SetLevel(lvl)

	return l, nil
}
