package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/numwords/internal/config"
	"github.com/vk/numwords/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// NewApp is the constructor for the main application. Dialogue goes to outW
// and logs to logW, so the two never interleave on a terminal. The returned
// App has its configuration loaded, overridden by appConfig, and validated.
func NewApp(in io.Reader, outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var configPaths []string
	if appConfig.ConfigPath != "" {
		configPaths = append(configPaths, appConfig.ConfigPath)
	}

	model, err := loader.Load(ctx, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "paths", configPaths)

	if appConfig.Bits != 0 {
		model.Style.Bits = appConfig.Bits
	}
	if appConfig.UseAnd {
		model.Style.UseAnd = true
	}
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration validated.", "bits", model.Style.Bits, "use_and", model.Style.UseAnd, "hyphenate", model.Style.Hyphenate)

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: appConfig,
		model:  model,
	}, nil
}

// Model returns the effective configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
