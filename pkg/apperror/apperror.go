package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can map it to a status code
// without inspecting message strings.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindState
	KindNotFound
)

// Error is a failure with a classification attached.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Validation builds a rejection for malformed input. Nothing was written.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// State builds a rejection for an operation attempted in the wrong lifecycle
// status. Nothing was written.
func State(format string, args ...any) *Error {
	return &Error{Kind: KindState, Msg: fmt.Sprintf(format, args...)}
}

// NotFound builds a rejection for a missing record.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification of an error, defaulting to internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
