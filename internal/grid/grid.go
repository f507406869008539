package grid

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDimensions indicates a requested row or column count that is not
// a positive integer. It is fatal for the whole run.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// ErrInconsistentColumns indicates a row whose field count disagrees with the
// grid's column count. It is fatal for the whole run.
var ErrInconsistentColumns = errors.New("inconsistent column count")

// Pos identifies a single cell by zero-based row and column.
type Pos struct {
	Row int
	Col int
}

// Grid is a rectangular collection of cells holding normalized text content.
type Grid struct {
	cells [][]string
	cols  int
}

// New creates a grid of the given dimensions with every cell empty.
func New(numRows, numCols int) (*Grid, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, numRows, numCols)
	}

	cells := make([][]string, numRows)
	for r := range cells {
		cells[r] = make([]string, numCols)
	}
	return &Grid{cells: cells, cols: numCols}, nil
}

// FromRows builds a grid from raw row strings, splitting each on fieldDelim.
// The first row determines the column count; any row with a different field
// count fails the build. Every field is whitespace-normalized before storage.
func FromRows(rawRows []string, fieldDelim string) (*Grid, error) {
	if len(rawRows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}

	cols := len(strings.Split(rawRows[0], fieldDelim))

	cells := make([][]string, len(rawRows))
	for r, raw := range rawRows {
		fields := strings.Split(raw, fieldDelim)
		if len(fields) != cols {
			// Row numbers are 1-based in user-facing messages.
			return nil, fmt.Errorf("row %d has %d fields, want %d: %w", r+1, len(fields), cols, ErrInconsistentColumns)
		}
		for i, f := range fields {
			fields[i] = NormalizeField(f)
		}
		cells[r] = fields
	}

	return &Grid{cells: cells, cols: cols}, nil
}

// NormalizeField trims a raw field and collapses internal whitespace runs to
// single spaces.
func NormalizeField(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NumRows returns the number of rows in the grid.
func (g *Grid) NumRows() int {
	return len(g.cells)
}

// NumCols returns the number of columns in the grid.
func (g *Grid) NumCols() int {
	return g.cols
}

// Row returns the cell contents of one row. The returned slice is owned by
// the grid and must not be mutated.
func (g *Grid) Row(r int) []string {
	return g.cells[r]
}

// Cell returns the content at p and whether p lies within the grid.
func (g *Grid) Cell(p Pos) (string, bool) {
	if !g.Contains(p) {
		return "", false
	}
	return g.cells[p.Row][p.Col], true
}

// Contains reports whether p lies within the grid's dimensions.
func (g *Grid) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < g.cols
}
