package dto

import (
	"errors"
	"net/http"

	"github.com/casepan/backend/internal/domain/shared"
)

// Error codes raised by the domain and application layers
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeRequiredField   = "REQUIRED_FIELD"
	ErrCodeInvalidCEP      = "INVALID_CEP"
	ErrCodeInvalidCPF      = "INVALID_CPF"
	ErrCodeInvalidCNPJ     = "INVALID_CNPJ"
	ErrCodeInvalidUF       = "INVALID_UF"
	ErrCodeCEPNotFound     = "CEP_NOT_FOUND"
	ErrCodeInvalidEnvelope = "INVALID_ENVELOPE"
)

// Error codes raised by the HTTP layer itself
const (
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeUnavailable     = "SERVICE_UNAVAILABLE"
	ErrCodeUpstream        = "UPSTREAM_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound: http.StatusNotFound,

	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeRequiredField:   http.StatusBadRequest,
	ErrCodeInvalidCEP:      http.StatusBadRequest,
	ErrCodeInvalidCPF:      http.StatusBadRequest,
	ErrCodeInvalidCNPJ:     http.StatusBadRequest,
	ErrCodeInvalidUF:       http.StatusBadRequest,
	ErrCodeCEPNotFound:     http.StatusBadRequest,
	ErrCodeInvalidEnvelope: http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeUnavailable:     http.StatusServiceUnavailable,
	ErrCodeUpstream:        http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes answer 400: a failed registration action is reported as a bad request.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusBadRequest
}

// StatusForError returns the HTTP status for err based on its domain code
func StatusForError(err error) int {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return GetHTTPStatus(domainErr.Code)
	}
	return http.StatusBadRequest
}

// ErrorCode returns the domain code of err, or "" for foreign errors
func ErrorCode(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a not-found domain error
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
