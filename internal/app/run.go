package app

import (
	"context"
	"fmt"

	"github.com/vk/numwords/internal/ctxlog"
	"github.com/vk/numwords/internal/repl"
	"github.com/vk/numwords/internal/words"
)

// Run executes the application: one-shot conversion when numbers were given
// on the command line, the interactive session otherwise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.config.Numbers) > 0 {
		return a.convertAll(ctxlog.With(ctx, "mode", "one-shot"))
	}

	ctx = ctxlog.With(ctx, "mode", "interactive")
	session := repl.NewSession(a.in, a.outW, a.model)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// convertAll prints "<n>: <words>" for every number. All numbers are parsed
// before anything is printed, so a bad argument produces no partial output.
func (a *App) convertAll(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	opts := words.Options{
		UseAnd:    a.model.Style.UseAnd,
		Hyphenate: a.model.Style.Hyphenate,
	}

	values := make([]uint64, 0, len(a.config.Numbers))
	for _, arg := range a.config.Numbers {
		n, err := words.Parse(arg, a.model.Style.Bits)
		if err != nil {
			return fmt.Errorf("invalid number argument: %w", err)
		}
		values = append(values, n)
	}

	for _, n := range values {
		fmt.Fprintf(a.outW, "%d: %s\n", n, words.Convert(n, opts))
	}
	logger.Info("One-shot conversion finished.", "count", len(values))
	return nil
}
