// Package app wires the gridcalc pipeline together: option loading, logger
// construction, grid file discovery, and the load-build-evaluate-render run
// loop. It owns the process lifecycle between CLI parsing and output.
package app
