package core

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors for handling decisions.
type ErrorCategory string

const (
	ErrCatCollaborator ErrorCategory = "collaborator" // External dependency failed or timed out
	ErrCatValidation   ErrorCategory = "validation"   // Invalid input
	ErrCatLimit        ErrorCategory = "limit"        // Engine step budget exceeded
	ErrCatState        ErrorCategory = "state"        // Required state field missing or corrupt
	ErrCatConfig       ErrorCategory = "config"       // Graph or runtime misconfiguration
	ErrCatInternal     ErrorCategory = "internal"     // Unexpected internal error
)

// DomainError represents a structured error from the pipeline layer.
type DomainError struct {
	Category  ErrorCategory
	Code      string
	Message   string
	Retryable bool
	Cause     error
	Details   map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches a target.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause wraps an underlying error.
func (e *DomainError) WithCause(cause error) *DomainError {
	e.Cause = cause
	return e
}

// WithDetail adds contextual information.
func (e *DomainError) WithDetail(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ErrCollaborator creates an error for a failed external collaborator.
// These are recovered at the step boundary and never abort a run on
// their own.
func ErrCollaborator(code, message string) *DomainError {
	return &DomainError{
		Category:  ErrCatCollaborator,
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

// ErrInvalidInput creates a validation error for rejected input.
func ErrInvalidInput(code, message string) *DomainError {
	return &DomainError{
		Category:  ErrCatValidation,
		Code:      code,
		Message:   message,
		Retryable: false,
	}
}

// ErrRecursionLimit creates the error returned when a run exceeds its
// step budget. Fatal to the run.
func ErrRecursionLimit(steps int) *DomainError {
	return &DomainError{
		Category:  ErrCatLimit,
		Code:      CodeRecursionLimit,
		Message:   fmt.Sprintf("recursion limit exceeded after %d steps", steps),
		Retryable: false,
		Details:   map[string]interface{}{"steps": steps},
	}
}

// ErrMissingField creates the error a step returns when a required
// input field is absent from the shared state. Fatal to the run.
func ErrMissingField(field string) *DomainError {
	return &DomainError{
		Category:  ErrCatState,
		Code:      CodeMissingField,
		Message:   fmt.Sprintf("required field missing: %s", field),
		Retryable: false,
		Details:   map[string]interface{}{"field": field},
	}
}

// ErrGraphConfig creates a graph construction error.
func ErrGraphConfig(message string) *DomainError {
	return &DomainError{
		Category:  ErrCatConfig,
		Code:      CodeInvalidGraph,
		Message:   message,
		Retryable: false,
	}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Retryable
	}
	return false
}

// GetCategory extracts the error category.
func GetCategory(err error) ErrorCategory {
	var domErr *DomainError
	if errors.As(err, &domErr) {
		return domErr.Category
	}
	return ErrCatInternal
}

// IsCategory checks if an error belongs to a category.
func IsCategory(err error, cat ErrorCategory) bool {
	return GetCategory(err) == cat
}

// Predefined error codes
const (
	CodeRecursionLimit = "RECURSION_LIMIT_EXCEEDED"
	CodeMissingField   = "MISSING_FIELD"
	CodeInvalidGraph   = "INVALID_GRAPH"
	CodeUnknownLabel   = "UNKNOWN_ROUTE_LABEL"
	CodeModelFailed    = "MODEL_FAILED"
	CodeSearchFailed   = "SEARCH_FAILED"
	CodeRenderFailed   = "RENDER_FAILED"
	CodeWriteFailed    = "WRITE_FAILED"
	CodeOnlySelect     = "ONLY_SELECT_ALLOWED"
	CodeQueryFailed    = "QUERY_FAILED"
	CodeEmptyQuery     = "EMPTY_QUERY"
	CodeEmptyQuestion  = "EMPTY_QUESTION"
)
