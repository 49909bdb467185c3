package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by services and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError names the entity that was missing. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Entity string
}

// NewNotFound returns a NotFoundError for entity.
func NewNotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("none found for %s", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError carries one message per failed rule. It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Messages []string
}

// InvalidInput returns a ValidationError for msgs.
func InvalidInput(msgs []string) error {
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

