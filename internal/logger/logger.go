package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and encoding of the process logger.
type Config struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // console or json
}

// Validate checks the level and format without building a logger.
func (c Config) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	_, err := c.format()
	return err
}

func (c Config) level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(orDefault(c.Level, "info"))))
	if err != nil {
		return level, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

func (c Config) format() (string, error) {
	f := strings.ToLower(strings.TrimSpace(orDefault(c.Format, "console")))
	switch f {
	case "json", "console":
		return f, nil
	}
	return "", fmt.Errorf("log format must be 'console' or 'json', got %q", c.Format)
}

// New builds a zap logger writing to stderr so command output on
// stdout stays clean for piping.
func New(cfg Config) (*zap.Logger, error) {
	level, err := cfg.level()
	if err != nil {
		return nil, err
	}
	f, err := cfg.format()
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if f == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
