// Package render turns an evaluated result grid back into delimited text,
// mirroring the input wire format: comma-separated fields, CRLF rows.
package render

import (
	"strings"

	"github.com/vk/gridcalc/internal/eval"
)

const (
	fieldDelim = ","
	rowDelim   = "\r\n"
)

// Renderer formats result grids. Failed cells render as the marker token.
type Renderer struct {
	marker string
}

// New creates a renderer using marker for failed cells.
func New(marker string) *Renderer {
	return &Renderer{marker: marker}
}

// Render joins one result per input cell, preserving grid shape. The
// returned text ends with a single row delimiter.
func (r *Renderer) Render(results [][]eval.Result) string {
	var b strings.Builder
	for _, row := range results {
		fields := make([]string, len(row))
		for i, res := range row {
			fields[i] = res.Render(r.marker)
		}
		b.WriteString(strings.Join(fields, fieldDelim))
		b.WriteString(rowDelim)
	}
	return b.String()
}
