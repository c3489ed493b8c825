package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/casepan/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInvalidCEP, http.StatusBadRequest},
		{ErrCodeRequiredField, http.StatusBadRequest},
		{ErrCodeCEPNotFound, http.StatusBadRequest},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeUnavailable, http.StatusServiceUnavailable},
		{ErrCodeUpstream, http.StatusBadGateway},
		{"SOMETHING_ELSE", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestStatusForError(t *testing.T) {
	notFound := shared.NewNotFoundError("Endereço não encontrado.")

	assert.Equal(t, http.StatusNotFound, StatusForError(fmt.Errorf("get: %w", notFound)))
	assert.Equal(t, http.StatusBadRequest, StatusForError(shared.NewDomainError("INVALID_CPF", "x")))
	assert.Equal(t, http.StatusBadRequest, StatusForError(errors.New("boom")))

	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", notFound)))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.Equal(t, "NOT_FOUND", ErrorCode(notFound))
	assert.Empty(t, ErrorCode(errors.New("boom")))
}

func TestNewFailureResponse(t *testing.T) {
	wrapped := fmt.Errorf("consultar CEP 01001000: %w", shared.NewDomainError("CEP_NOT_FOUND", "CEP não encontrado no ViaCEP."))

	resp := NewFailureResponse("abc123", "Houve um erro ao cadastrar o endereço.", wrapped)
	assert.Equal(t, "CEP não encontrado no ViaCEP.", resp.Error)

	body, err := json.Marshal(NewFailureResponse("abc123", "Endereço não encontrado.", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Endereço não encontrado.","correlationId":"abc123"}`, string(body))

	assert.Equal(t, "boom", NewFailureResponse("c", "m", errors.New("boom")).Error)
}

func TestNewSuccessResponse(t *testing.T) {
	body, err := json.Marshal(NewSuccessResponse("abc", "", IDResponse{ID: "1"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"correlationId":"abc","data":{"id":"1"}}`, string(body))
}

func TestNewListResponse(t *testing.T) {
	body, err := json.Marshal(NewListResponse[string](nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":0,"items":[]}`, string(body))

	assert.Equal(t, 2, NewListResponse([]int{1, 2}).Count)
}
