package dto

import "net/http"

// Error code constants
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeSessionNotFound is used when a session id is unknown or expired
	ErrCodeSessionNotFound = "ERR_SESSION_NOT_FOUND"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeSubmitInFlight is used when a checkout submission is already running
	ErrCodeSubmitInFlight = "ERR_SUBMIT_IN_FLIGHT"
	// ErrCodeMissingCheckout is used when required checkout fields are blank
	ErrCodeMissingCheckout = "ERR_MISSING_CHECKOUT_FIELDS"
	// ErrCodeInvalidPayment is used when the payment method is not supported
	ErrCodeInvalidPayment = "ERR_INVALID_PAYMENT_METHOD"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeSessionNotFound: http.StatusNotFound,

	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeSubmitInFlight:  http.StatusConflict,
	ErrCodeMissingCheckout: http.StatusBadRequest,
	ErrCodeInvalidPayment:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// domainErrorCodeMapping maps domain error codes to API error codes
var domainErrorCodeMapping = map[string]string{
	"NOT_FOUND":               ErrCodeNotFound,
	"INVALID_INPUT":           ErrCodeInvalidInput,
	"INVALID_STATE":           ErrCodeInvalidState,
	"SESSION_NOT_FOUND":       ErrCodeSessionNotFound,
	"SUBMIT_IN_FLIGHT":        ErrCodeSubmitInFlight,
	"MISSING_CHECKOUT_FIELDS": ErrCodeMissingCheckout,
	"INVALID_PAYMENT_METHOD":  ErrCodeInvalidPayment,
}

// NormalizeErrorCode converts a domain error code to the API format
// If the code is already in the API format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if apiCode, ok := domainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
