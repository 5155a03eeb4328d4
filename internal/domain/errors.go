package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeContextUnavailable = "CONTEXT_UNAVAILABLE"
	ErrCodeGenerationFailed   = "GENERATION_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrInvalidPriority      = NewDomainError(ErrCodeValidation, "invalid priority")
	ErrInvalidCost          = NewDomainError(ErrCodeValidation, "invalid cost")
	ErrMissingRequiredField = NewDomainError(ErrCodeValidation, "missing required field")
)

// Not found errors
var (
	ErrKnowledgeItemNotFound = NewDomainError(ErrCodeNotFound, "knowledge item not found")
	ErrResourceItemNotFound  = NewDomainError(ErrCodeNotFound, "resource item not found")
)

// Pipeline errors. Every respond call recovers these into a PipelineResult;
// none of them is fatal to the process.
var (
	ErrRateLimited        = NewDomainError(ErrCodeRateLimited, "rate limit exceeded")
	ErrContextUnavailable = NewDomainError(ErrCodeContextUnavailable, "context assembly unavailable")
	ErrGenerationFailed   = NewDomainError(ErrCodeGenerationFailed, "response generation failed")
)
