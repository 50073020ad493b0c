package respond

import (
	"github.com/gin-gonic/gin"

	"github.com/Veerenstael/QuickScan/internal/shared/telemetry"
)

// ErrorResponse is the wire shape of every error reply: a single message
// under the "error" key, matching what the companion form expects.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends the error response and aborts the request.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
