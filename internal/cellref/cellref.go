// Package cellref parses A1-style cell reference tokens into zero-based grid
// positions. Bounds checking against a concrete grid is the caller's job.
package cellref

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/gridcalc/internal/grid"
)

// refPattern is the shape of a reference token: one or more uppercase
// letters followed by one or two digits. Case-sensitive, no whitespace.
var refPattern = regexp.MustCompile(`^[A-Z]+\d{1,2}$`)

// IsReference reports whether token has reference shape. A token that fails
// this check falls through to literal or invalid handling by the caller.
func IsReference(token string) bool {
	return refPattern.MatchString(token)
}

// Resolve converts a reference token into a zero-based position. The column
// is taken from the first letter only (A-Z), the row from the trailing digits
// minus one. The result may lie outside any particular grid.
func Resolve(token string) (grid.Pos, error) {
	if !IsReference(token) {
		return grid.Pos{}, fmt.Errorf("not a cell reference: %q", token)
	}

	digitsAt := strings.IndexAny(token, "0123456789")
	row, err := strconv.Atoi(token[digitsAt:])
	if err != nil {
		return grid.Pos{}, fmt.Errorf("bad row number in %q: %w", token, err)
	}

	return grid.Pos{Row: row - 1, Col: int(token[0] - 'A')}, nil
}

// Name renders a position back into A1 form for diagnostics. Columns beyond
// Z have no token form and render numerically.
func Name(p grid.Pos) string {
	if p.Col >= 0 && p.Col < 26 {
		return fmt.Sprintf("%c%d", rune('A'+p.Col), p.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
