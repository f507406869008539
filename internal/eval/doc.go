// Package eval is the cell-evaluation engine: it resolves a cell's text to an
// integer sum or a failure, following references recursively and detecting
// cycles along the active resolution path. Per-cell failures are values, not
// errors; only structural problems with the grid abort a run.
package eval
