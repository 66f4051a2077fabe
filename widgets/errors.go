package widgets

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an Error.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindTypeMismatch: an injected variable has the wrong value type.
	KindTypeMismatch
	// KindConversion: an input element has no string form.
	KindConversion
	// KindOutOfRange: a selection targets an empty item region.
	KindOutOfRange
	// KindConfiguration: a constructor argument names nothing known.
	KindConfiguration
	// KindValidation: a value is outside the set a control accepts.
	KindValidation
	// KindState: an operation is not valid in the current lifecycle state.
	KindState
)

var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrConversion    = errors.New("conversion failed")
	ErrOutOfRange    = errors.New("out of range")
	ErrConfiguration = errors.New("invalid configuration")
	ErrValidation    = errors.New("invalid value")
	ErrState         = errors.New("invalid state")
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeMismatch:
		return "type mismatch"
	case KindConversion:
		return "conversion"
	case KindOutOfRange:
		return "out of range"
	case KindConfiguration:
		return "configuration"
	case KindValidation:
		return "validation"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindConversion:
		return ErrConversion
	case KindOutOfRange:
		return ErrOutOfRange
	case KindConfiguration:
		return ErrConfiguration
	case KindValidation:
		return ErrValidation
	case KindState:
		return ErrState
	default:
		return nil
	}
}

// Error is returned by every control operation that fails.
type Error struct {
	// Op is the failed operation, e.g. "checkbox.set".
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind, so callers can test with
// errors.Is(err, ErrOutOfRange).
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(op string, kind ErrorKind, format string, a ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, a...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
