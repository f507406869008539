package app

import (
	"io"
	"log/slog"

	"github.com/vk/gridcalc/internal/options"
	"github.com/vk/gridcalc/internal/render"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Results go to outW, diagnostics to the logger on errW; the two
// channels never mix.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	renderer *render.Renderer
}

// NewApp constructs a fully initialized App: options file loaded (when one
// was named), flag-over-file precedence applied, and an isolated logger
// configured on errW.
func NewApp(outW, errW io.Writer, cfg *Config) (*App, error) {
	opts := options.Defaults()
	if cfg.OptionsPath != "" {
		var err error
		opts, err = options.LoadFile(cfg.OptionsPath)
		if err != nil {
			// A bad options file is a fatal startup error.
			return nil, err
		}
	}

	// Explicit flags win over file values.
	if cfg.LogLevel == "" {
		cfg.LogLevel = opts.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = opts.LogFormat
	}
	if cfg.ErrorMarker == "" {
		cfg.ErrorMarker = opts.ErrorMarker
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.",
		"level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		renderer: render.New(cfg.ErrorMarker),
	}, nil
}

// Marker returns the effective error-marker token. This is primarily for
// testing.
func (a *App) Marker() string {
	return a.config.ErrorMarker
}
