package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code, so a reworded copy produced by
// WithMessage still matches its sentinel under errors.Is
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	return errors.As(target, &t) && t.Code == e.Code
}

// WithMessage returns a copy of the error carrying a more specific
// message under the same code
func (e *DomainError) WithMessage(message string) *DomainError {
	return &DomainError{Code: e.Code, Message: message}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound        = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput    = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState    = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrSessionNotFound = NewDomainError("SESSION_NOT_FOUND", "Session does not exist or has expired")
	ErrSubmitInFlight  = NewDomainError("SUBMIT_IN_FLIGHT", "An order submission is already in progress")
	ErrMissingCheckout = NewDomainError("MISSING_CHECKOUT_FIELDS", "Required checkout fields are missing")
)
