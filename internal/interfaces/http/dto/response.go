package dto

import (
	"errors"

	"github.com/casepan/backend/internal/domain/shared"
)

// SuccessResponse is the body of every successful JSON response
type SuccessResponse struct {
	CorrelationID string `json:"correlationId"`
	Message       string `json:"message,omitempty"`
	Data          any    `json:"data"`
}

// FailureResponse is the body of every failed JSON response
type FailureResponse struct {
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId"`
	Error         string `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(correlationID, message string, data any) SuccessResponse {
	return SuccessResponse{
		CorrelationID: correlationID,
		Message:       message,
		Data:          data,
	}
}

// NewFailureResponse creates a failure response. A nil err leaves Error empty.
func NewFailureResponse(correlationID, message string, err error) FailureResponse {
	resp := FailureResponse{
		Message:       message,
		CorrelationID: correlationID,
	}
	if err != nil {
		resp.Error = ErrorMessage(err)
	}
	return resp
}

// ErrorMessage returns the user-facing text of err. Domain errors expose
// their message without the code prefix.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}

// IDResponse carries the id of a created resource
type IDResponse struct {
	ID string `json:"id"`
}

// ListResponse carries a list together with its size
type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

// NewListResponse wraps items, never encoding a null list
func NewListResponse[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Items: items}
}
