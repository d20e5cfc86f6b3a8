package qcheck

import "fmt"

// Kind identifies one of the error conditions the core can raise. Modelled
// as a sum-type-by-enum rather than distinct Go error types, so a driver
// adapting to its own host convention only needs to switch on Kind, never
// on a type hierarchy.
type Kind int

const (
	// KindNoPositiveFrequencies: Frequency/FrequencyOf given only
	// zero-or-negative weights.
	KindNoPositiveFrequencies Kind = iota
	// KindTooManyFilterMisses: a Filter rejected 10000 consecutive draws.
	KindTooManyFilterMisses
	// KindTooManyUniqueMisses: Unique collided 10000 consecutive times.
	KindTooManyUniqueMisses
	// KindEmptySequence: an ActionSequence produced zero actions.
	KindEmptySequence
	// KindInvariantFailed: a stateful invariant rejected the model.
	KindInvariantFailed
	// KindAssertionFailed: a user action or predicate panicked/errored.
	KindAssertionFailed
	// KindExhaustiveNotAvailable: ExhaustiveGenerator requested from an
	// arbitrary that cannot enumerate.
	KindExhaustiveNotAvailable
	// KindSetSizeUnreachable: a set arbitrary could not fill to its
	// minimum size within the uniqueness retry budget.
	KindSetSizeUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindNoPositiveFrequencies:
		return "NoPositiveFrequencies"
	case KindTooManyFilterMisses:
		return "TooManyFilterMisses"
	case KindTooManyUniqueMisses:
		return "TooManyUniqueMisses"
	case KindEmptySequence:
		return "EmptySequence"
	case KindInvariantFailed:
		return "InvariantFailedError"
	case KindAssertionFailed:
		return "AssertionFailedError"
	case KindExhaustiveNotAvailable:
		return "ExhaustiveNotAvailable"
	case KindSetSizeUnreachable:
		return "SetSizeUnreachable"
	default:
		return "Unknown"
	}
}

// Error is the one error type the core raises, carrying a Kind a caller
// can switch on plus an optional wrapped cause: a stable classification
// field and a wrapped message, exposed through package-level constructors
// instead of ad-hoc fmt.Errorf calls scattered through the codebase.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError builds an *Error of the given kind with a formatted message.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds an *Error of the given kind wrapping cause.
func WrapError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}
