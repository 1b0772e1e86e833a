package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies the terminal failures of a generation run.
type Kind int

const (
	// KindNotFound means the outputs file does not exist or is unreadable.
	KindNotFound Kind = iota
	// KindMalformedInput means the outputs file is not valid JSON.
	KindMalformedInput
	// KindWriteFailure means the inventory could not be persisted.
	KindWriteFailure
	// KindValidationFailure means a requested validation pass rejected the tree.
	KindValidationFailure
)

// GenerationError is the single error type of the pipeline. All kinds
// are terminal; there is no in-process recovery.
type GenerationError struct {
	Kind    Kind
	Path    string // file involved, if any
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a GenerationError of the given kind.
func IsKind(err error, kind Kind) bool {
	var genErr *GenerationError
	if stderrors.As(err, &genErr) {
		return genErr.Kind == kind
	}
	return false
}

// NewNotFound reports a missing or unreadable outputs file.
func NewNotFound(path string, cause error) *GenerationError {
	return &GenerationError{
		Kind:    KindNotFound,
		Path:    path,
		Message: "Terraform outputs file not found",
		Cause:   cause,
	}
}

// NewMalformedInput reports an outputs file that is not valid JSON.
func NewMalformedInput(path string, cause error) *GenerationError {
	return &GenerationError{
		Kind:    KindMalformedInput,
		Path:    path,
		Message: fmt.Sprintf("Invalid JSON in outputs file: %v", cause),
		Cause:   cause,
	}
}

// NewWriteFailure reports a failed attempt to persist the inventory.
func NewWriteFailure(path string, cause error) *GenerationError {
	return &GenerationError{
		Kind:    KindWriteFailure,
		Path:    path,
		Message: fmt.Sprintf("Failed to save inventory: %v", cause),
		Cause:   cause,
	}
}

// NewValidationFailure reports a rejected inventory tree.
func NewValidationFailure(msg string) *GenerationError {
	return &GenerationError{
		Kind:    KindValidationFailure,
		Message: msg,
	}
}
