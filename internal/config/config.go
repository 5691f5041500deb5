// Package config holds the settings of a training session, read from YAML and overridden by
// command-line flags.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config captures the runtime knobs for a training session.
type Config struct {
	// Data is the path to a CSV file. If empty, the built-in multiplication table is used.
	Data     string `yaml:"data"`
	Outputs  int    `yaml:"outputs"`
	Reserved int    `yaml:"reserved"`

	// Network is "example" for the hand-built mixed network, or "generated" for Layers and
	// PerLayer of sigmoid Neurons.
	Network  string `yaml:"network"`
	Layers   int    `yaml:"layers"`
	PerLayer int    `yaml:"per_layer"`

	Initializer  string  `yaml:"initializer"`
	Schedule     string  `yaml:"schedule"`
	LearningRate float64 `yaml:"learning_rate"`
	Decay        float64 `yaml:"decay"`
	DecayEvery   int     `yaml:"decay_every"`
	Iterations   int     `yaml:"iterations"`

	Seed     int64  `yaml:"seed"`
	LogEvery int    `yaml:"log_every"`
	Runs     int    `yaml:"runs"`
	Workers  int    `yaml:"workers"`
	Plot     string `yaml:"plot"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Data         string
	Network      string
	Layers       int
	PerLayer     int
	LearningRate float64
	Iterations   int
	Seed         int64
	LogEvery     int
	Runs         int
	Workers      int
	Plot         string
}

// Default returns the settings of the classic demo: the example network trained on
// the multiplication table for a million iterations.
func Default() *Config {
	return &Config{
		Outputs:      1,
		Reserved:     1,
		Network:      "example",
		Layers:       4,
		PerLayer:     3,
		Initializer:  "uniform",
		Schedule:     "decay",
		LearningRate: 0.1,
		Decay:        0.91,
		DecayEvery:   100000,
		Iterations:   1000000,
		Seed:         1,
		LogEvery:     10000,
		Runs:         1,
	}
}

// Load reads and validates a Config from YAML. Keys that are not set keep their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes a Config from YAML on top of the defaults. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "decode yaml")
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Data != "" {
		c.Data = o.Data
	}
	if o.Network != "" {
		c.Network = o.Network
	}
	if o.Layers > 0 {
		c.Layers = o.Layers
	}
	if o.PerLayer > 0 {
		c.PerLayer = o.PerLayer
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LogEvery > 0 {
		c.LogEvery = o.LogEvery
	}
	if o.Runs > 0 {
		c.Runs = o.Runs
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.Plot != "" {
		c.Plot = o.Plot
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Outputs < 1 {
		return errors.Errorf("outputs must be > 0 (got %d)", c.Outputs)
	}
	if c.Reserved < 0 {
		return errors.Errorf("reserved must be >= 0 (got %d)", c.Reserved)
	}
	switch c.Network {
	case "example":
	case "generated":
		if c.Layers < 3 {
			return errors.Errorf("layers must be >= 3, counting the inputs (got %d)", c.Layers)
		}
		if c.PerLayer < 1 {
			return errors.Errorf("per_layer must be > 0 (got %d)", c.PerLayer)
		}
	default:
		return errors.Errorf("network must be \"example\" or \"generated\" (got %q)", c.Network)
	}
	if !(c.LearningRate > 0) {
		return errors.Errorf("learning_rate must be > 0 (got %v)", c.LearningRate)
	}
	switch c.Schedule {
	case "constant":
	case "decay":
		if !(c.Decay > 0) {
			return errors.Errorf("decay must be > 0 (got %v)", c.Decay)
		}
		if c.DecayEvery < 1 {
			return errors.Errorf("decay_every must be > 0 (got %d)", c.DecayEvery)
		}
	default:
		return errors.Errorf("schedule must be \"constant\" or \"decay\" (got %q)", c.Schedule)
	}
	if c.Iterations <= 0 {
		return errors.Errorf("iterations must be > 0 (got %d)", c.Iterations)
	}
	if c.Runs <= 0 {
		return errors.Errorf("runs must be > 0 (got %d)", c.Runs)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 10000
	}
	return nil
}
