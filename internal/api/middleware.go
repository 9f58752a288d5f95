package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Constants for context keys
const (
	ContextRequestIDKey = "requestID"

	requestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware tags every request with an id, honoring one supplied
// by the client. The id is echoed in the response header and used to
// correlate server-side error logs with individual requests.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// CORSMiddleware sets CORS headers so browser clients can call the API from
// any origin, and short-circuits preflight requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestID returns the id set by RequestIDMiddleware, or "" outside it.
func requestID(c *gin.Context) string {
	idRaw, exists := c.Get(ContextRequestIDKey)
	if !exists {
		return ""
	}
	id, ok := idRaw.(string)
	if !ok {
		return ""
	}
	return id
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithDetails is abortWithError plus an underlying cause, used for
// store failures on the exercise and log endpoints.
func abortWithDetails(c *gin.Context, code int, message string, cause error) {
	c.AbortWithStatusJSON(code, gin.H{"error": message, "details": cause.Error()})
}
