package model

import "fmt"

// ErrorCode is the closed set of error variants the engine can surface.
// It mirrors the status codes returned by adaptived's C causes and
// effects, but as an explicit sum type instead of negated errno values.
type ErrorCode int

const (
	// CodeOK is not an error; zero value of ErrorCode is never used as
	// a real code so a zero-valued EngineError is always a bug.
	CodeOK ErrorCode = iota
	CodeInvalidArgument
	CodeNotFound
	CodeAlreadyExists
	CodeOutOfRange
	// CodeAlreadyHandled is the effect-snooze sentinel. It rides the same
	// channel as errors but is not one: an effect returning it tells the
	// loop to stop running the rest of that rule's effects this tick.
	CodeAlreadyHandled
	CodeTimeout
	CodeIOFailure
	CodeParse
	CodeOutOfMemory
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeNotFound:
		return "NotFound"
	case CodeAlreadyExists:
		return "AlreadyExists"
	case CodeOutOfRange:
		return "OutOfRange"
	case CodeAlreadyHandled:
		return "AlreadyHandled"
	case CodeTimeout:
		return "Timeout"
	case CodeIOFailure:
		return "IOFailure"
	case CodeParse:
		return "Parse"
	case CodeOutOfMemory:
		return "OutOfMemory"
	default:
		return "OK"
	}
}

// EngineError carries one of the ErrorCode variants plus the underlying
// cause, if any. Causes and effects, the registry, the parser, and the
// context/loop all return *EngineError (or nil) rather than ad-hoc errors,
// so callers can switch on Code without string matching.
type EngineError struct {
	Code ErrorCode
	Op   string
	Err  error
}

func (e *EngineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Code)
}

func (e *EngineError) Unwrap() error { return e.Err }

// NewError builds an *EngineError for op with the given code, optionally
// wrapping a lower-level error.
func NewError(op string, code ErrorCode, err error) *EngineError {
	return &EngineError{Code: code, Op: op, Err: err}
}

// CodeOf extracts the ErrorCode from err, returning CodeOK if err is nil
// and CodeIOFailure (a reasonable default for "something went wrong that
// we don't have a taxonomy entry for") if err is a plain error.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ee *EngineError
	if as, ok := err.(*EngineError); ok {
		ee = as
		return ee.Code
	}
	return CodeIOFailure
}

// IsSnooze reports whether err is the AlreadyHandled sentinel.
func IsSnooze(err error) bool {
	return CodeOf(err) == CodeAlreadyHandled
}
