package assign

import (
	"errors"
	"fmt"
)

// Fatal input errors: no partial results are produced when these occur.
var (
	ErrNoWorkers = errors.New("assign: worker registry is empty")
	ErrNoTasks   = errors.New("assign: task registry is empty")
)

// DayError reports a per-day solver fault. The assignment model is trivially
// feasible (all variables zero), so a solver-reported infeasibility or error
// is an adapter fault, not a combinatorial dead end.
type DayError struct {
	Date string
	Err  error
}

func (e *DayError) Error() string { return fmt.Sprintf("optimize day %s: %v", e.Date, e.Err) }

func (e *DayError) Unwrap() error { return e.Err }
