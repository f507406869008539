package eval

import "strconv"

// Result is the outcome of evaluating one cell: either a resolved integer or
// a failure. Failures carry no message themselves; the evaluator emits a
// structured diagnostic on the logging channel for every failure path.
type Result struct {
	value  int
	failed bool
}

// Value wraps a resolved integer.
func Value(v int) Result {
	return Result{value: v}
}

// Failure is the per-cell error result.
func Failure() Result {
	return Result{failed: true}
}

// Failed reports whether the cell failed to evaluate.
func (r Result) Failed() bool {
	return r.failed
}

// Int returns the resolved value. Only meaningful when Failed is false.
func (r Result) Int() int {
	return r.value
}

// Render formats the result for output: the decimal value, or marker when
// the cell failed.
func (r Result) Render(marker string) string {
	if r.failed {
		return marker
	}
	return strconv.Itoa(r.value)
}
