package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/vk/daylayout/internal/app"
	"github.com/vk/daylayout/internal/encode"
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

// envDefaults are read from the environment and become the flag defaults.
type envDefaults struct {
	Width            int    `env:"DAYLAYOUT_WIDTH"`
	Output           string `env:"DAYLAYOUT_OUTPUT"            envDefault:"json"`
	LogFormat        string `env:"DAYLAYOUT_LOG_FORMAT"        envDefault:"text"`
	LogLevel         string `env:"DAYLAYOUT_LOG_LEVEL"         envDefault:"info"`
	PublishURL       string `env:"DAYLAYOUT_PUBLISH_URL"`
	PublishNamespace string `env:"DAYLAYOUT_PUBLISH_NAMESPACE" envDefault:"/"`
}

// Parse processes command-line arguments on top of the defaults found in
// environ (KEY=value pairs, as returned by os.Environ). It returns a
// populated Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, environ []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.ParseWithOptions(&defaults, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("daylayout", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
daylayout - Lays out the events of a single day side by side.

Usage:
  daylayout [options] [EVENTS_PATH]

Arguments:
  EVENTS_PATH
    Path to a .hcl, .yaml, .yml or .json file, or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
		fmt.Fprint(output, `
Environment:
  DAYLAYOUT_WIDTH, DAYLAYOUT_OUTPUT, DAYLAYOUT_LOG_FORMAT, DAYLAYOUT_LOG_LEVEL,
  DAYLAYOUT_PUBLISH_URL and DAYLAYOUT_PUBLISH_NAMESPACE set the option defaults.
`)
	}

	eventsFlag := flagSet.String("events", "", "Path to the events file or directory.")
	eFlag := flagSet.String("e", "", "Path to the events file or directory (shorthand).")
	widthFlag := flagSet.Int("width", defaults.Width, "Total layout width in pixels. 0 uses the width from the event files, or 600.")
	outputFlag := flagSet.String("output", defaults.Output, "Output format. Options: 'json' or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	publishURLFlag := flagSet.String("publish-url", defaults.PublishURL, "socket.io URL of a renderer to publish the layout to. Empty disables publishing.")
	publishNSFlag := flagSet.String("publish-namespace", defaults.PublishNamespace, "socket.io namespace used when publishing.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *eventsFlag != "" {
		path = *eventsFlag
	} else if *eFlag != "" {
		path = *eFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Events path determined.", "path", path)

	if path == "" {
		slog.Debug("No events path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *widthFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid width: must not be negative"}
	}

	outputFormat, err := encode.ParseFormat(*outputFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid output: %v", err)}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		EventsPath:       path,
		Width:            *widthFlag,
		OutputFormat:     string(outputFormat),
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		PublishURL:       *publishURLFlag,
		PublishNamespace: *publishNSFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
