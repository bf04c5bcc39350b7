package bench

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config selects what the runner measures.
//
// It can be loaded from a TOML file:
//
//	sizes = [8, 64, 1024]
//	iterations = 10000
//	rounds = 5
//	workloads = ["drop-front"]
//	contenders = ["cyclic", "channel", "eapache"]
//	progress = "2s"
type Config struct {
	Sizes      []int    `toml:"sizes"`
	Iterations int      `toml:"iterations"`
	Rounds     int      `toml:"rounds"`
	Workloads  []string `toml:"workloads"`
	Contenders []string `toml:"contenders"`

	// Progress is how often the runner logs progress, as a
	// time.ParseDuration string. Empty or "0" disables progress logs.
	Progress string `toml:"progress"`
	// ProgressEvery checks the clock only every N measurements.
	ProgressEvery int `toml:"progress_every"`
}

// DefaultConfig returns the sizes the drop-front comparison is usually run at.
func DefaultConfig() Config {
	return Config{
		Sizes:         []int{8, 64, 1024, 16384},
		Iterations:    1000,
		Rounds:        3,
		Progress:      "2s",
		ProgressEvery: 1,
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates the result.
// Keys absent from the file keep their default; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and that every named workload/contender exists.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s < 1 {
			return fmt.Errorf("%w: size %d must be at least 1", ErrInvalidConfig, s)
		}
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations %d must be at least 1", ErrInvalidConfig, c.Iterations)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds %d must be at least 1", ErrInvalidConfig, c.Rounds)
	}
	if _, err := c.progressInterval(); err != nil {
		return err
	}
	if _, err := LookupWorkloads(c.Workloads); err != nil {
		return err
	}
	if _, err := LookupContenders(c.Contenders); err != nil {
		return err
	}
	return nil
}

func (c Config) progressInterval() (time.Duration, error) {
	if c.Progress == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Progress)
	if err != nil {
		return 0, fmt.Errorf("%w: progress %q: %v", ErrInvalidConfig, c.Progress, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: progress %s is negative", ErrInvalidConfig, d)
	}
	return d, nil
}
