package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/huffdual/errors"
)

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // json, console
	Development bool   `yaml:"development"`
}

func (c *LoggingConfig) validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "logging.level")
	}
	switch c.Format {
	case "json", "console":
		return nil
	}
	return errors.InvalidInput(errors.PhaseConfig,
		fmt.Sprintf("logging.format must be json or console, got %q", c.Format))
}

// Build creates the zap logger described by c.
func (c *LoggingConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "logging.level")
	}

	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Format
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
