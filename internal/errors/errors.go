package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrEntryNotFound is returned when an entry is not found
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyDeck is returned when a deck file yields no entries
	ErrEmptyDeck = errors.New("deck contains no entries")
)

// EntryNotFoundError represents an entry not found error with context
type EntryNotFoundError struct {
	ID string
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry with ID '%s' not found", e.ID)
}

func (e *EntryNotFoundError) Is(target error) bool {
	return target == ErrEntryNotFound
}

// NewEntryNotFoundError creates a new EntryNotFoundError
func NewEntryNotFoundError(id string) *EntryNotFoundError {
	return &EntryNotFoundError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DeckFileError represents a problem with a deck file, such as a malformed
// entry or an unreadable path
type DeckFileError struct {
	Path    string
	Message string
}

func (e *DeckFileError) Error() string {
	return fmt.Sprintf("deck file '%s': %s", e.Path, e.Message)
}

// NewDeckFileError creates a new DeckFileError
func NewDeckFileError(path, message string) *DeckFileError {
	return &DeckFileError{Path: path, Message: message}
}
