package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/casepan/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Health(t *testing.T) {
	h := NewSystemHandler("casepan-backend", "1.0.0")
	r := gin.New()
	r.GET("/health", h.Health)

	w := get(r, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "casepan-backend", body["name"])
	assert.NotEmpty(t, body["goVersion"])
}

func TestSystemHandler_Ping(t *testing.T) {
	h := NewSystemHandler("casepan-backend", "1.0.0")
	r := gin.New()
	r.Use(middleware.CorrelationID())
	r.GET("/api/ping", h.Ping)

	w := get(r, "/api/ping")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, w.Header().Get(middleware.CorrelationIDHeader), body["correlationId"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "pong", data["message"])
	_, err := time.Parse(time.RFC3339, data["timestamp"].(string))
	assert.NoError(t, err)
}
