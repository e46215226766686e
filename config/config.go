// Package config holds the harness configuration: which implementation pair
// to compare, how strictly exhaustion is judged, corpus replay settings and
// logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/huffdual/errors"
	"github.com/wippyai/huffdual/huffman"
	"github.com/wippyai/huffdual/oracle"
)

// Config is the top-level harness configuration.
type Config struct {
	Pair    PairConfig    `yaml:"pair"`
	Replay  ReplayConfig  `yaml:"replay"`
	Logging LoggingConfig `yaml:"logging"`

	// StrictExhaustion requires both sides to run out of bits on the same
	// step before exhaustion counts as uninteresting.
	StrictExhaustion bool `yaml:"strict_exhaustion"`
}

// PairConfig names the implementations under test.
type PairConfig struct {
	Impl0 string `yaml:"impl0"` // tree, vector, lookup
	Impl1 string `yaml:"impl1"`
	Tag   string `yaml:"tag"` // baseline, symbol8
}

// ReplayConfig configures corpus replay.
type ReplayConfig struct {
	Jobs     int  `yaml:"jobs"`      // concurrent inputs, 0 = GOMAXPROCS
	AllPairs bool `yaml:"all_pairs"` // ignore Pair and run every ordered pair
}

// DefaultConfig returns the default configuration: tree against lookup on
// baseline tables, lenient exhaustion.
func DefaultConfig() *Config {
	return &Config{
		Pair: PairConfig{
			Impl0: oracle.DefaultPair.Impl0.String(),
			Impl1: oracle.DefaultPair.Impl1.String(),
			Tag:   oracle.DefaultPair.Tag.Name,
		},
		Replay: ReplayConfig{
			Jobs: runtime.GOMAXPROCS(0),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("HUFFDUAL_IMPL0"); v != "" {
		c.Pair.Impl0 = v
	}
	if v := os.Getenv("HUFFDUAL_IMPL1"); v != "" {
		c.Pair.Impl1 = v
	}
	if v := os.Getenv("HUFFDUAL_TAG"); v != "" {
		c.Pair.Tag = v
	}
	if v := os.Getenv("HUFFDUAL_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "HUFFDUAL_STRICT")
		}
		c.StrictExhaustion = strict
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	p, err := c.OraclePair()
	if err != nil {
		return err
	}
	if p.Impl0 == p.Impl1 && !c.Replay.AllPairs {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("impl0 and impl1 are both %s", p.Impl0))
	}
	if c.Replay.Jobs < 0 {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("replay.jobs must not be negative, got %d", c.Replay.Jobs))
	}
	return c.Logging.validate()
}

// OraclePair resolves the configured names.
func (c *Config) OraclePair() (oracle.Pair, error) {
	impl0, err := huffman.ParseImpl(c.Pair.Impl0)
	if err != nil {
		return oracle.Pair{}, err
	}
	impl1, err := huffman.ParseImpl(c.Pair.Impl1)
	if err != nil {
		return oracle.Pair{}, err
	}
	tag, err := huffman.ParseTag(c.Pair.Tag)
	if err != nil {
		return oracle.Pair{}, err
	}
	return oracle.Pair{Impl0: impl0, Impl1: impl1, Tag: tag}, nil
}

// Pairs returns the pairs a replay runs: the configured one, or every
// ordered pair of the configured tag when AllPairs is set.
func (c *Config) Pairs() ([]oracle.Pair, error) {
	p, err := c.OraclePair()
	if err != nil {
		return nil, err
	}
	if c.Replay.AllPairs {
		return oracle.AllPairs(p.Tag), nil
	}
	return []oracle.Pair{p}, nil
}

// Harnesses builds one harness per replayed pair.
func (c *Config) Harnesses() ([]*oracle.Harness, error) {
	pairs, err := c.Pairs()
	if err != nil {
		return nil, err
	}
	hs := make([]*oracle.Harness, len(pairs))
	for i, p := range pairs {
		hs[i] = oracle.New(p, oracle.WithStrictExhaustion(c.StrictExhaustion))
	}
	return hs, nil
}
