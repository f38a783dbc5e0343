package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rustyeddy/intraday/calc"
	"github.com/rustyeddy/intraday/charges"
	"github.com/rustyeddy/intraday/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is the complete simulator configuration.
type Config struct {
	Trade      calc.TradeInput  `json:"trade" yaml:"trade"`
	Charges    charges.Schedule `json:"charges" yaml:"charges"`
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Log        logger.Config    `json:"log" yaml:"log"`
}

// SimulationConfig controls the P/L curve.
type SimulationConfig struct {
	CurveSteps int `json:"curve_steps" yaml:"curve_steps"`
}

// JournalConfig selects where committed simulations are kept.
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "memory", "sqlite" or "file"
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Environment variables consulted by ApplyEnv.
const (
	EnvJournalType = "INTRADAY_JOURNAL_TYPE"
	EnvJournalPath = "INTRADAY_JOURNAL_PATH"
	EnvLogLevel    = "INTRADAY_LOG_LEVEL"
	EnvLogFormat   = "INTRADAY_LOG_FORMAT"
)

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = &Config{}
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", jerr)
		}
	}

	if cfg.Trade.Direction != "" {
		d, err := calc.ParseDirection(string(cfg.Trade.Direction))
		if err != nil {
			return nil, fmt.Errorf("invalid config: trade.direction: %w", err)
		}
		cfg.Trade.Direction = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Trade.Validate(); err != nil {
		return fmt.Errorf("trade: %w", err)
	}
	if err := c.Charges.Validate(); err != nil {
		return fmt.Errorf("charges: %w", err)
	}
	if c.Simulation.CurveSteps <= 0 {
		return fmt.Errorf("simulation.curve_steps must be positive")
	}
	switch c.Journal.Type {
	case "memory":
	case "sqlite", "file":
		if c.Journal.Path == "" {
			return fmt.Errorf("journal.path required for %s type", c.Journal.Type)
		}
	default:
		return fmt.Errorf("journal.type must be 'memory', 'sqlite' or 'file'")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// DefaultJournalPath is the path used for a journal type when none is
// configured.
func DefaultJournalPath(typ string) string {
	switch typ {
	case "sqlite":
		return "./intraday.sqlite"
	case "file":
		return "./intraday.json"
	}
	return ""
}

// ApplyEnv overrides journal and log settings from the environment.
// lookup is normally os.LookupEnv. Switching the journal type without
// also setting a path resets the path to the new type's default. The
// result is not validated; call Validate afterwards.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvJournalType); ok && v != "" {
		if typ := strings.ToLower(strings.TrimSpace(v)); typ != c.Journal.Type {
			c.Journal.Type = typ
			c.Journal.Path = DefaultJournalPath(typ)
		}
	}
	if v, ok := lookup(EnvJournalPath); ok && v != "" {
		c.Journal.Path = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when
// none are named). Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Trade: calc.TradeInput{
			Stock:           "NIFTY 50",
			Direction:       calc.Long,
			EntryPrice:      100,
			Quantity:        10,
			StopLossPercent: calc.Pct(calc.DefaultStopLossPercent),
			TargetPercent:   calc.Pct(calc.DefaultTargetPercent),
		},
		Charges: charges.IndiaIntraday(),
		Simulation: SimulationConfig{
			CurveSteps: calc.DefaultCurveSteps,
		},
		Journal: JournalConfig{
			Type: "sqlite",
			Path: DefaultJournalPath("sqlite"),
		},
		Log: logger.Config{
			Level:  "info",
			Format: "console",
		},
	}
}
