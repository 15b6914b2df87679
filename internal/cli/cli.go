package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/numwords/internal/app"
	"github.com/vk/numwords/internal/words"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("numwords", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
numwords - spells unsigned integers out in English.

Usage:
  numwords [options]              interactive session
  numwords [options] NUMBER...    convert the numbers and exit

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL config file or a directory of them.")
	cFlag := flagSet.String("c", "", "Path to an HCL config file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	bitsFlag := flagSet.Int("bits", 0, "Width of accepted numbers: 32 or 64. 0 uses the config file value.")
	andFlag := flagSet.Bool("and", false, "Use British style, e.g. 'one hundred and five'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *configFlag != "" && *cFlag != "" {
		return nil, false, usageError("-config and -c are the same option: give only one")
	}
	configPath := *configFlag
	if configPath == "" {
		configPath = *cFlag
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	// Width-specific limits are checked once the config files are loaded.
	numbers := flagSet.Args()
	for _, arg := range numbers {
		if _, err := words.Parse(arg, 64); err != nil {
			return nil, false, usageError("invalid number argument: %v", err)
		}
	}
	slog.Debug("CLI parameter validation complete.", "numbers", len(numbers))

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Bits:       *bitsFlag,
		UseAnd:     *andFlag,
		Numbers:    numbers,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
