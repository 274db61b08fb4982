package service

import (
	"errors"
	"fmt"
)

var (
	// ErrExtraction is returned when an uploaded file cannot be parsed as a PDF.
	ErrExtraction = errors.New("extraction error")
	// ErrStorage is returned when a filesystem, database or index write fails.
	ErrStorage = errors.New("storage error")
	// ErrGeneration is returned when the external LLM or embedding call fails.
	ErrGeneration = errors.New("generation error")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
