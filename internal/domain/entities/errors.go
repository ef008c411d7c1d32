package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes the failures a deck build can report
type ErrorKind string

const (
	ErrorKindUnknown    ErrorKind = ""
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindNotFound   ErrorKind = "resource_not_found"
	ErrorKindFormat     ErrorKind = "format"
	ErrorKindIO         ErrorKind = "io"
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindValidation:
		return "validation error"
	case ErrorKindNotFound:
		return "resource not found"
	case ErrorKindFormat:
		return "format error"
	case ErrorKindIO:
		return "I/O error"
	default:
		return "error"
	}
}

// ValidationError reports a malformed outline. Index is the position of
// the offending slide spec, or -1 when the problem is at the outline level.
type ValidationError struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	var b strings.Builder

	if e.Index >= 0 {
		fmt.Fprintf(&b, "slide %d", e.Index)
	} else {
		b.WriteString("outline")
	}

	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}

	b.WriteString(": ")
	b.WriteString(e.Reason)

	if e.Value != "" {
		fmt.Fprintf(&b, " (got %q)", e.Value)
	}

	return b.String()
}

// Kind always reports ErrorKindValidation
func (e *ValidationError) Kind() ErrorKind {
	return ErrorKindValidation
}

// DeckError wraps a failure from the filesystem or the document library
type DeckError struct {
	Kind  ErrorKind
	Op    string
	Path  string
	Cause error
}

func (e *DeckError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg = fmt.Sprintf("%s %q", e.Op, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Kind, e.Cause)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *DeckError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError reports a missing image, template or input file
func NewNotFoundError(op, path string, cause error) error {
	return &DeckError{Kind: ErrorKindNotFound, Op: op, Path: path, Cause: cause}
}

// NewFormatError reports an unreadable or corrupt document or outline
func NewFormatError(op, path string, cause error) error {
	return &DeckError{Kind: ErrorKindFormat, Op: op, Path: path, Cause: cause}
}

// NewIOError reports a write failure
func NewIOError(op, path string, cause error) error {
	return &DeckError{Kind: ErrorKindIO, Op: op, Path: path, Cause: cause}
}

// KindOf classifies err by the first taxonomy error found in its chain
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return ErrorKindValidation
	}

	var derr *DeckError
	if errors.As(err, &derr) {
		return derr.Kind
	}

	return ErrorKindUnknown
}

// IsKind reports whether err classifies as kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
