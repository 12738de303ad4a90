package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the abort-or-continue decision made by callers.
type Kind string

const (
	KindConfig   Kind = "config"
	KindPath     Kind = "path"
	KindEmptyDir Kind = "empty_dir"
	KindGPSData  Kind = "gps_data"
	KindExport   Kind = "export"
)

// Error is a failure tied to a filesystem path.
type Error struct {
	Kind    Kind
	Op      string
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Kind, e.Op, msg, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Kind, e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns a failure without an underlying cause.
func New(kind Kind, op, message, path string) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Message: message}
}

// Wrap attaches kind, op and path to err. A nil err yields nil and an
// already typed err is returned as is.
func Wrap(kind Kind, op, message, path string, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return &Error{Kind: kind, Op: op, Path: path, Message: message, Cause: err}
}

// IsKind reports whether the first typed failure in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind == kind
	}
	return false
}
