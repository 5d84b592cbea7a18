package fluentrx

import "errors"

// Construction errors. Callers branch on them with errors.Is; the builder
// always reports them wrapped in an *OpError naming the failing call.
var (
	// ErrEmptyTarget indicates a quantifier was applied to a builder with
	// no nodes.
	ErrEmptyTarget = errors.New("empty target")

	// ErrInvalidExclusionTarget indicates Excluding was called when the last
	// node is neither a character class nor a quantified character class.
	ErrInvalidExclusionTarget = errors.New("invalid exclusion target")

	// ErrInvalidRepeat indicates a negative repeat count or a range whose
	// minimum exceeds its maximum.
	ErrInvalidRepeat = errors.New("invalid repeat count")
)

// OpError records the builder call that failed and why.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return "fluentrx: " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
