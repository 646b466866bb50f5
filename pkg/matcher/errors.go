package matcher

import "fmt"

// InvalidLeniencyError is returned by ParseLeniency when the string does
// not name one of the four leniency levels.
type InvalidLeniencyError struct {
	Value string
}

func (e *InvalidLeniencyError) Error() string {
	return fmt.Sprintf("matcher: %q is not a valid leniency (want POSSIBLE, VALID, STRICT_GROUPING, or EXACT_GROUPING)", e.Value)
}

// ErrNilParser is returned by New when the supplied Library is nil. It is a
// programmer error: construction aborts and no Scanner is produced, per
// spec.md §7.
var ErrNilParser = fmt.Errorf("matcher: parser must not be nil")

// NegativeTryBudgetError is returned by New when maxTries is negative.
type NegativeTryBudgetError struct {
	MaxTries int
}

func (e *NegativeTryBudgetError) Error() string {
	return fmt.Sprintf("matcher: max_tries must be >= 0, got %d", e.MaxTries)
}

// ResetUnsupportedError is the fatal programmer error raised by Reset: the
// iterator has no rewind semantics, per spec.md §4.G and §7.
type ResetUnsupportedError struct{}

func (e *ResetUnsupportedError) Error() string {
	return "matcher: Scanner does not support Reset; construct a new Scanner instead"
}
