package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodePendingNotFound    = "RVW001"
	ErrCodeValidation         = "RVW002"
	ErrCodeStorageUnavailable = "RVW003"
	ErrCodeTooManyPhotos      = "RVW004"
)

// Errors
var (
	ErrPendingNotFound    = errors.New("pending review not found")
	ErrStorageUnavailable = errors.New("local storage unavailable")
	ErrTooManyPhotos      = errors.New("photo limit reached")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

// ValidationError names the first submission field that failed.
// The form state is untouched so the user can correct and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error constructors
func NewPendingNotFoundError(id string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodePendingNotFound,
		Message: fmt.Sprintf("Pending review %q not found", id),
		Err:     ErrPendingNotFound,
	}
}

func NewStorageUnavailableError(cause error) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeStorageUnavailable,
		Message: "Could not write to local storage",
		Err:     errors.Join(ErrStorageUnavailable, cause),
	}
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
