package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrAlreadyVoted     = errors.New("identity has already voted for this project")
	ErrInternal         = errors.New("internal server error")
)

// ValidationError reports a rejected project field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
