package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/gridcalc/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridcalc - evaluates reference grids of comma-separated integer and cell-reference cells.

Usage:
  gridcalc [options] INPUT_PATH

Arguments:
  INPUT_PATH
    Path to a single .csv grid file or a directory containing .csv grid files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the grid file or directory.")
	iFlag := flagSet.String("i", "", "Path to the grid file or directory (shorthand).")
	optionsFlag := flagSet.String("options", "", "Path to an HCL options file.")
	markerFlag := flagSet.String("marker", "", "Token rendered for cells that fail to evaluate (default \"#ERR\").")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *inputFlag != "" {
		path = *inputFlag
	} else if *iFlag != "" {
		path = *iFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		// A missing input path is a usage error with a non-zero status, not
		// a clean exit.
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "missing required INPUT_PATH argument"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid; empty defers to the options file or the default
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:   path,
		OptionsPath: *optionsFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		ErrorMarker: *markerFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
