package models

import "fmt"

type ErrorKind string

const (
	KindConfiguration ErrorKind = "CONFIGURATION"
	KindValidation    ErrorKind = "VALIDATION"
	KindNotFound      ErrorKind = "NOT_FOUND"
	KindFetch         ErrorKind = "FETCH"
)

// ReleaseError classifies failures so callers can tell fatal setup
// problems from per-item fetch failures with errors.Is.
type ReleaseError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ReleaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReleaseError) Unwrap() error {
	return e.Err
}

// Is matches on Kind only.
func (e *ReleaseError) Is(target error) bool {
	if t, ok := target.(*ReleaseError); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrConfiguration = &ReleaseError{Kind: KindConfiguration, Message: "configuration error"}
	ErrValidation    = &ReleaseError{Kind: KindValidation, Message: "validation error"}
	ErrNotFound      = &ReleaseError{Kind: KindNotFound, Message: "resource not found"}
	ErrFetch         = &ReleaseError{Kind: KindFetch, Message: "fetch failed"}
)

func NewConfigurationError(format string, args ...any) *ReleaseError {
	return &ReleaseError{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

func NewValidationError(format string, args ...any) *ReleaseError {
	return &ReleaseError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports a resource lookup that came back empty.
func NewNotFoundError(resource, number string) *ReleaseError {
	return &ReleaseError{Kind: KindNotFound, Message: fmt.Sprintf("%s #%s not found", resource, number)}
}

func NewFetchError(resource, number string, err error) *ReleaseError {
	return &ReleaseError{Kind: KindFetch, Message: fmt.Sprintf("failed to fetch %s #%s", resource, number), Err: err}
}
