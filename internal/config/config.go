// SPDX-License-Identifier: MIT

// Package config holds the graphsample CLI settings: built-in defaults,
// optionally overlaid by a strict YAML file, then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphsample/internal/logging"
	"github.com/katalvlaran/graphsample/render"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// DefaultGraphPath is the SNAP Amazon co-purchasing edge list.
const DefaultGraphPath = "amazon0302.txt"

// MaxRandomNodes bounds Random.Nodes: G(n, p) generation makes n² edge
// trials, so larger graphs should be loaded from a file.
const MaxRandomNodes = 20000

// DefaultTop is how many entries of each closeness ranking are printed.
const DefaultTop = 10

// Config is the complete CLI configuration.
type Config struct {
	// Graph is the edge-list path. Ignored when Random.Nodes > 0.
	Graph string `yaml:"graph"`
	// Samples is the sample size; 0 means ask on stdin.
	Samples int `yaml:"samples"`
	// Seed seeds the sampler; 0 means derive one from the clock.
	Seed int64 `yaml:"seed"`
	// Workers bounds parallel BFS runs; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	Top     int `yaml:"top"`
	Width   int `yaml:"width"`

	Random  RandomConfig   `yaml:"random"`
	Log     logging.Config `yaml:"log"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

// RandomConfig selects a synthetic G(n, p) graph instead of a file.
// Generation costs O(Nodes²) regardless of P.
type RandomConfig struct {
	Nodes int     `yaml:"nodes"`
	P     float64 `yaml:"p"`
	Seed  int64   `yaml:"seed"`
}

// MetricsConfig controls the prometheus textfile export.
type MetricsConfig struct {
	// File receives the metrics in text exposition format after the run.
	// Empty disables the export.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Graph: DefaultGraphPath,
		Top:   DefaultTop,
		Width: render.DefaultWidth,
		Random: RandomConfig{
			P: 0.001,
		},
		Log: logging.DefaultConfig(),
	}
}

// Load reads the YAML file at path over Default. Unknown keys are an error.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err = Decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the YAML document in r onto cfg. An empty document
// leaves cfg untouched.
func Decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Samples < 0:
		return fmt.Errorf("%w: samples must be >= 0, got %d", ErrInvalid, c.Samples)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	case c.Top < 0:
		return fmt.Errorf("%w: top must be >= 0, got %d", ErrInvalid, c.Top)
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be > 0, got %d", ErrInvalid, c.Width)
	case c.Random.Nodes < 0 || c.Random.Nodes > MaxRandomNodes:
		return fmt.Errorf("%w: random.nodes must be in [0,%d], got %d", ErrInvalid, MaxRandomNodes, c.Random.Nodes)
	case c.Random.P < 0 || c.Random.P > 1:
		return fmt.Errorf("%w: random.p must be in [0,1], got %v", ErrInvalid, c.Random.P)
	case c.Random.Nodes == 0 && c.Graph == "":
		return fmt.Errorf("%w: graph path is empty", ErrInvalid)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Synthetic reports whether the run uses a generated graph.
func (c Config) Synthetic() bool { return c.Random.Nodes > 0 }
