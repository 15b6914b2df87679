package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/numwords/internal/app"
	"github.com/vk/numwords/internal/cli"
	"github.com/vk/numwords/internal/config"
	"github.com/vk/numwords/internal/hcl_adapter"
)

// main is the entrypoint for the numwords application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, logW io.Writer, args []string) error {
	return runWith(in, outW, logW, args, hcl_adapter.NewLoader())
}

// runWith is run with the configuration loader supplied by the caller.
func runWith(in io.Reader, outW, logW io.Writer, args []string, loader config.Loader) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	numwordsApp, err := app.NewApp(in, outW, logW, appConfig, loader)
	if err != nil {
		return err
	}

	return numwordsApp.Run(context.Background())
}
