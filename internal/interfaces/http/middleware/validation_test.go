package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func bindMessage(t *testing.T, body string) string {
	t.Helper()
	type request struct {
		Cep    string `json:"cep" binding:"required"`
		Numero string `json:"numero" binding:"max=5"`
	}

	SetupValidator()

	var msg string
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req request
		if err := c.ShouldBindJSON(&req); err != nil {
			msg = ValidationMessage(err)
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)
	return msg
}

func TestValidationMessage(t *testing.T) {
	t.Run("uses json field names", func(t *testing.T) {
		msg := bindMessage(t, `{"numero":"1234567"}`)
		assert.Equal(t, "cep é obrigatório. numero deve ter no máximo 5 caracteres.", msg)
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Equal(t, "Corpo da requisição inválido.", bindMessage(t, `{"cep":`))
	})

	t.Run("valid body", func(t *testing.T) {
		assert.Empty(t, bindMessage(t, `{"cep":"01001000","numero":"10"}`))
	})

	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "Corpo da requisição inválido.", ValidationMessage(errors.New("x")))
	})
}
