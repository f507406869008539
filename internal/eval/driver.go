package eval

import (
	"context"
	"fmt"

	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/grid"
)

// Grid evaluates every cell of g, rows then columns, and returns a result
// grid of the same shape. Each top-level cell gets its own visited set; a row
// whose width disagrees with the grid's column count aborts the whole run,
// because such a row cannot be meaningfully indexed at all.
func Grid(ctx context.Context, g *grid.Grid) ([][]Result, error) {
	logger := ctxlog.FromContext(ctx)

	ev := New(g)
	out := make([][]Result, g.NumRows())
	for r := 0; r < g.NumRows(); r++ {
		row := g.Row(r)
		if len(row) != g.NumCols() {
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w",
				r+1, len(row), g.NumCols(), grid.ErrInconsistentColumns)
		}

		out[r] = make([]Result, g.NumCols())
		for c := 0; c < g.NumCols(); c++ {
			out[r][c] = ev.Cell(ctx, grid.Pos{Row: r, Col: c})
		}
	}

	logger.Debug("grid evaluated", "rows", g.NumRows(), "cols", g.NumCols())
	return out, nil
}
