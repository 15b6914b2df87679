package app

import (
	"fmt"
	"strings"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory, optional

	LogFormat string
	LogLevel  string

	Bits   int  // 0 keeps the value from the config files
	UseAnd bool // forces British style when set

	// Numbers switches the app to one-shot mode: each is converted and
	// printed, and no prompts are shown.
	Numbers []string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Bits {
	case 0, 32, 64:
	default:
		return nil, fmt.Errorf("bits must be 32 or 64, got %d", cfg.Bits)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if _, ok := parseLevel(cfg.LogLevel); !ok && cfg.LogLevel != "" {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
