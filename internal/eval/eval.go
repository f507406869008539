package eval

import (
	"context"
	"strconv"
	"strings"

	"github.com/vk/gridcalc/internal/cellref"
	"github.com/vk/gridcalc/internal/ctxlog"
	"github.com/vk/gridcalc/internal/grid"
)

// Evaluator resolves cell text against a read-only grid. One Evaluator serves
// a whole grid pass; the visited set is scoped per top-level cell instead, so
// unrelated cells can never falsely flag each other as cyclic.
type Evaluator struct {
	grid *grid.Grid
}

// New creates an evaluator over g. The grid must not be mutated while the
// evaluator is in use.
func New(g *grid.Grid) *Evaluator {
	return &Evaluator{grid: g}
}

// Cell evaluates the cell at pos with a fresh visited set. This is the
// top-level entry point used by the grid driver.
func (e *Evaluator) Cell(ctx context.Context, pos grid.Pos) Result {
	text, ok := e.grid.Cell(pos)
	if !ok {
		ctxlog.FromContext(ctx).Error("cell missing from grid",
			"cell", cellref.Name(pos), "row", pos.Row, "col", pos.Col)
		return Failure()
	}
	return e.text(ctx, pos, text, map[grid.Pos]bool{})
}

// text evaluates one cell's normalized content. visited holds the positions
// on the active recursion path; entries are added before descending into a
// reference and removed once that branch resolves.
func (e *Evaluator) text(ctx context.Context, pos grid.Pos, text string, visited map[grid.Pos]bool) Result {
	logger := ctxlog.FromContext(ctx)

	sum := 0
	for _, token := range strings.Split(text, " ") {
		switch {
		case token == "":
			// An originally empty cell splits into one empty token. Empty is
			// an error, never zero.
			logger.Error("empty token",
				"cell", cellref.Name(pos), "row", pos.Row, "col", pos.Col)
			return Failure()

		case cellref.IsReference(token):
			ref, err := cellref.Resolve(token)
			if err != nil {
				logger.Error("unresolvable reference",
					"cell", cellref.Name(pos), "token", token, "error", err)
				return Failure()
			}
			if !e.grid.Contains(ref) {
				logger.Error("reference out of bounds",
					"cell", cellref.Name(pos), "token", token,
					"rows", e.grid.NumRows(), "cols", e.grid.NumCols())
				return Failure()
			}
			if visited[ref] {
				logger.Error("circular dependency",
					"cell", cellref.Name(pos), "token", token, "via", cellref.Name(ref))
				return Failure()
			}

			refText, ok := e.grid.Cell(ref)
			if !ok {
				logger.Error("referenced cell missing from grid",
					"cell", cellref.Name(pos), "token", token)
				return Failure()
			}

			visited[ref] = true
			res := e.text(ctx, ref, refText, visited)
			if res.Failed() {
				// A failed dependency fails every dependent cell.
				return Failure()
			}
			delete(visited, ref)
			sum += res.Int()

		default:
			n, err := strconv.Atoi(token)
			if err != nil {
				logger.Error("invalid token format",
					"cell", cellref.Name(pos), "token", token)
				return Failure()
			}
			sum += n
		}
	}

	return Value(sum)
}
