package engine

import "fmt"

// ErrInvalidInput indicates a required text was missing or empty after
// trimming.
type ErrInvalidInput struct {
	Field string
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s is empty", e.Field)
}

// ErrDocumentTooLarge indicates a document exceeded the configured
// character ceiling.
type ErrDocumentTooLarge struct {
	Field string
	Size  int
	Limit int
}

func (e *ErrDocumentTooLarge) Error() string {
	return fmt.Sprintf("document too large: %s is %d characters, limit is %d", e.Field, e.Size, e.Limit)
}

// ErrInvalidConfig indicates the effective configuration (engine config
// plus request overrides) failed validation.
type ErrInvalidConfig struct {
	Cause error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %v", e.Cause)
}

func (e *ErrInvalidConfig) Unwrap() error {
	return e.Cause
}

// ErrDictionaryUnavailable indicates the keyword dictionary could not be
// loaded. This is fatal at startup; the engine never serves degraded
// results.
type ErrDictionaryUnavailable struct {
	Cause error
}

func (e *ErrDictionaryUnavailable) Error() string {
	return fmt.Sprintf("keyword dictionary unavailable: %v", e.Cause)
}

func (e *ErrDictionaryUnavailable) Unwrap() error {
	return e.Cause
}
