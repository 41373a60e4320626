package imexport

import (
	"errors"
	"fmt"
)

// Kind classifies a framework error.
type Kind string

const (
	// KindInvalidArgument marks a nil or otherwise invalid input to a
	// registry or mapper operation. Always synchronous, recoverable by the
	// caller.
	KindInvalidArgument Kind = "invalid_argument"

	// KindInvalidState marks an operation attempted before required setup,
	// such as a lookup against an empty registry. This is a configuration
	// defect in the embedding application, not a data error.
	KindInvalidState Kind = "invalid_state"

	// KindMalformedMapping marks a mapping file whose content does not parse
	// into a flat string-to-string document. Recoverable; surfaced to the
	// caller of [Mapper.Load].
	KindMalformedMapping Kind = "malformed_mapping"

	// KindCriticalIO marks a mapping file that vanished between check and
	// read. File existence is expected to be validated upstream, so this is
	// an internal defect, not normal control flow.
	KindCriticalIO Kind = "critical_io"

	// KindSubRunFailed marks a sub-run that returned an error mid-run. The
	// underlying cause is preserved as the wrapped error.
	KindSubRunFailed Kind = "sub_run_failed"
)

// Error is a structured error with a kind tag, the operation that failed,
// and an optional cause. It doubles as the payload pushed to observers via
// [Hub.PublishError].
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "registry.lookup"
	Message string
	Err     error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Fatal reports whether the error marks an unrecoverable internal defect.
func (e *Error) Fatal() bool {
	return e.Kind == KindCriticalIO
}

// newError creates an Error without a cause.
func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

// wrapError creates an Error with a cause.
func wrapError(kind Kind, op string, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err is (or wraps) an [Error] of the given kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	var fe *Error
	return errors.As(err, &fe) && fe.Kind == kind
}

// Warning is a non-fatal condition raised mid-run and fanned out to
// observers via [Hub.PublishWarning]. It carries a kind and a message built
// from the kind's template rather than free text.
type Warning struct {
	Kind    string
	Message string
}

// NewWarning creates a Warning with a formatted message.
func NewWarning(kind, format string, args ...any) Warning {
	return Warning{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
