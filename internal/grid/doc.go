// Package grid defines the rectangular cell grid and its construction from
// raw row strings. A grid is built once per run and is read-only afterwards;
// rectangularity violations are construction errors, never per-cell errors.
package grid
