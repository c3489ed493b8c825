// Package middleware provides HTTP middleware for the registration API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CorrelationIDHeader carries the correlation id in and out of the API
	CorrelationIDHeader = "X-Correlation-Id"
	// UserMessageHeader carries a human readable outcome for bodies that cannot hold one
	UserMessageHeader = "X-User-Message"
	// CorrelationIDKey is the gin context key holding the correlation id
	CorrelationIDKey = "correlation_id"
	// MaxCorrelationIDLength caps inbound ids to keep logs and events bounded
	MaxCorrelationIDLength = 128
)

// CorrelationID resolves the request correlation id from the inbound header or
// generates a 12 character one, stores it in the gin context and echoes it in
// the response header.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SanitizeCorrelationID(c.GetHeader(CorrelationIDHeader))
		if id == "" {
			id = NewCorrelationID(12)
		}
		c.Set(CorrelationIDKey, id)
		c.Writer.Header().Set(CorrelationIDHeader, id)
		c.Next()
	}
}

// GetCorrelationID returns the id stored by CorrelationID, or ""
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(CorrelationIDKey)
}

// SanitizeCorrelationID trims an inbound id and caps its length
func SanitizeCorrelationID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > MaxCorrelationIDLength {
		id = id[:MaxCorrelationIDLength]
	}
	return id
}

// NewCorrelationID returns n lowercase hex characters (n <= 32)
func NewCorrelationID(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return hex[:min(n, len(hex))]
}
