package notation

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when no unit token matches at the current position.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrMissingDigits is returned when a term does not start with a decimal digit.
var ErrMissingDigits = errors.New("expected digits")

// ErrNumberRange is returned when a digit run does not fit in a signed 64-bit integer.
var ErrNumberRange = errors.New("number out of range")

// ErrNoTerms is returned when a sequence contains no terms at all.
var ErrNoTerms = errors.New("no terms")

// ErrTrailingInput is returned when input remains after a full-string parse.
var ErrTrailingInput = errors.New("unexpected trailing input")

// ErrorKind classifies a ParseError by the grammar layer that produced it.
type ErrorKind int

const (
	KindLex      ErrorKind = iota // no unit token at the position
	KindNumber                    // missing or oversized digit run
	KindSequence                  // empty sequence or trailing input
)

// String returns the lower-case name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindNumber:
		return "number"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseError reports a failure to parse duration notation. Pos is the byte
// offset into Input where the failure occurred. Err is one of the package
// sentinels; Cause, when set, is the lower-level failure that led to it.
type ParseError struct {
	Kind  ErrorKind
	Pos   int
	Input string
	Err   error
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at offset %d in %q", e.Err, e.Pos, e.Input)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func newParseError(kind ErrorKind, src string, pos int, err error) *ParseError {
	return &ParseError{Kind: kind, Pos: pos, Input: src, Err: err}
}
