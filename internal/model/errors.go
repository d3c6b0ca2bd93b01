// Package model defines the Zinc data model: scalars, ordered dicts, and
// the Grid/GridBuilder pair that the codec package parses into and emits
// from.
//
// What: a closed tagged-variant Scalar type, an insertion-ordered Dict, and
// an immutable Grid built by a mutable GridBuilder.
// How: Scalar is a single struct keyed by a Kind tag rather than an
// interface hierarchy, so equality and printing stay simple and allocation
// free for the common sentinel cases (Marker, Null, Remove, NA).
// Why: the source format's tokenizer/parser dispatch on a closed set of
// value shapes; a closed sum type mirrors that directly instead of
// reaching for runtime type-switches over an interface.
package model

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrorKind is the closed set of error categories a Grid read or write can
// fail with.
type ErrorKind int

const (
	// IoError indicates the underlying byte source failed to read.
	IoError ErrorKind = iota
	// ScanError indicates the tokenizer could not form a legal token.
	ScanError
	// ParseError indicates the token stream does not form a legal grid.
	ParseError
	// ErrorGrid indicates the grid-info dict carried the err marker tag.
	ErrorGrid
	// Unsupported indicates a construct this implementation does not
	// handle (nested grids, lists, inline dicts, XStr, hex numeric literals).
	Unsupported
)

func (k ErrorKind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case ScanError:
		return "ScanError"
	case ParseError:
		return "ParseError"
	case ErrorGrid:
		return "ErrorGrid"
	case Unsupported:
		return "Unsupported"
	default:
		return "UnknownError"
	}
}

// ZincError is the error type returned by every Read/Parse failure. It
// carries enough context (kind, line, offending lexeme) to let callers
// build an actionable message without re-parsing.
type ZincError struct {
	Kind   ErrorKind
	Line   int
	Lexeme string
	cause  error
}

func (e *ZincError) Error() string {
	msg := e.Kind.String()
	if e.Line > 0 {
		msg += " at line " + strconv.Itoa(e.Line)
	}
	if e.Lexeme != "" {
		msg += ": " + e.Lexeme
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As compose with
// github.com/pkg/errors and the standard errors package alike.
func (e *ZincError) Unwrap() error { return e.cause }

// Cause exists for code still using the github.com/pkg/errors idiom of
// errors.Cause rather than errors.Unwrap.
func (e *ZincError) Cause() error { return e.cause }

// NewError builds a ZincError of the given kind with an optional wrapped
// cause, line number, and offending lexeme.
func NewError(kind ErrorKind, line int, lexeme string, cause error) *ZincError {
	return &ZincError{Kind: kind, Line: line, Lexeme: lexeme, cause: cause}
}

// Wrapf wraps an existing error with Zinc error context, using
// github.com/pkg/errors to preserve a stack trace on the cause.
func Wrapf(kind ErrorKind, line int, lexeme string, cause error, format string, args ...any) *ZincError {
	return NewError(kind, line, lexeme, errors.Wrapf(cause, format, args...))
}

// IsKind reports whether err is a *ZincError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ze *ZincError
	if errors.As(err, &ze) {
		return ze.Kind == kind
	}
	return false
}
