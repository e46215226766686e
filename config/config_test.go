package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/huffdual/errors"
	"github.com/wippyai/huffdual/huffman"
	"github.com/wippyai/huffdual/oracle"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	p, err := cfg.OraclePair()
	require.NoError(t, err)
	assert.Equal(t, oracle.DefaultPair, p)
	assert.False(t, cfg.StrictExhaustion)
	assert.Positive(t, cfg.Replay.Jobs)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Pair, cfg.Pair)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffdual.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pair:
  impl0: vector
  impl1: lookup
  tag: symbol8
strict_exhaustion: true
replay:
  jobs: 3
  all_pairs: true
logging:
  level: debug
  format: json
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	p, err := cfg.OraclePair()
	require.NoError(t, err)
	assert.Equal(t, oracle.Pair{Impl0: huffman.Vector, Impl1: huffman.Lookup, Tag: huffman.Symbol8}, p)
	assert.True(t, cfg.StrictExhaustion)
	assert.Equal(t, 3, cfg.Replay.Jobs)

	pairs, err := cfg.Pairs()
	require.NoError(t, err)
	assert.Len(t, pairs, 6)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pair: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "huffdual.yaml")
	cfg := DefaultConfig()
	cfg.Pair.Impl0 = "vector"
	cfg.StrictExhaustion = true

	require.NoError(t, cfg.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("pair and tag", func(t *testing.T) {
		t.Setenv("HUFFDUAL_IMPL0", "lookup")
		t.Setenv("HUFFDUAL_IMPL1", "vector")
		t.Setenv("HUFFDUAL_TAG", "symbol8")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, PairConfig{Impl0: "lookup", Impl1: "vector", Tag: "symbol8"}, cfg.Pair)
	})

	t.Run("strict", func(t *testing.T) {
		t.Setenv("HUFFDUAL_STRICT", "true")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.True(t, cfg.StrictExhaustion)
	})

	t.Run("strict not a bool", func(t *testing.T) {
		t.Setenv("HUFFDUAL_STRICT", "maybe")

		cfg := DefaultConfig()
		err := cfg.applyEnvOverrides()
		require.Error(t, err)
		assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown impl", func(c *Config) { c.Pair.Impl0 = "lut" }},
		{"unknown tag", func(c *Config) { c.Pair.Tag = "vc5" }},
		{"same impl twice", func(c *Config) { c.Pair.Impl1 = c.Pair.Impl0 }},
		{"negative jobs", func(c *Config) { c.Replay.Jobs = -1 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, errors.KindInvalidInput, errors.KindOf(err))
		})
	}
}

func TestHarnesses(t *testing.T) {
	cfg := DefaultConfig()
	hs, err := cfg.Harnesses()
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, oracle.DefaultPair, hs[0].Pair())
}

func TestLoggingConfig_Build(t *testing.T) {
	for _, lc := range []LoggingConfig{
		{Level: "debug", Format: "console", Development: true},
		{Level: "warn", Format: "json"},
	} {
		log, err := lc.Build()
		require.NoError(t, err)
		require.NotNil(t, log)
	}

	_, err := (&LoggingConfig{Level: "nope", Format: "json"}).Build()
	require.Error(t, err)
}
