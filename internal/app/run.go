package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/eval"
	"github.com/vk/gridcalc/internal/fsutil"
	"github.com/vk/gridcalc/internal/grid"
	"github.com/vk/gridcalc/internal/source"
)

// fieldDelim is the wire-format field separator within a row.
const fieldDelim = ","

// Run executes the main application logic: discover grid files, then
// load, build, evaluate, and render each one. Structural input errors abort
// the run; per-cell failures surface as marker tokens in the output.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	files, err := fsutil.FindGridFiles(a.config.InputPath, ".csv")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", source.ErrNotFound, a.config.InputPath)
		}
		return fmt.Errorf("failed to discover grid files in %s: %w", a.config.InputPath, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .csv grid files under %s", source.ErrNotFound, a.config.InputPath)
	}
	a.logger.Debug("Grid files discovered.", "count", len(files))

	for _, file := range files {
		if err := a.evaluateFile(ctx, file); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// evaluateFile runs one grid file through the whole pipeline and writes the
// rendered result exactly once.
func (a *App) evaluateFile(ctx context.Context, path string) error {
	a.logger.Info("Evaluating grid.", "file", path)

	text, err := source.Load(path)
	if err != nil {
		return err
	}

	g, err := grid.FromRows(source.SplitRows(text), fieldDelim)
	if err != nil {
		return fmt.Errorf("failed to build grid from %s: %w", path, err)
	}

	results, err := eval.Grid(ctx, g)
	if err != nil {
		return fmt.Errorf("evaluation of %s failed: %w", path, err)
	}

	if _, err := fmt.Fprint(a.outW, a.renderer.Render(results)); err != nil {
		return fmt.Errorf("failed to write result for %s: %w", path, err)
	}
	return nil
}
