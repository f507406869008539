package app

import "errors"

// Config holds everything an App instance needs to run. Empty LogLevel,
// LogFormat, and ErrorMarker mean "not set on the command line" and are
// filled from the options file or the built-in defaults.
type Config struct {
	InputPath   string // .csv file or directory of .csv files
	OptionsPath string // optional .hcl options file

	LogFormat   string
	LogLevel    string
	ErrorMarker string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
