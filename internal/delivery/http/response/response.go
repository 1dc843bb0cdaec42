package response

import (
	"github.com/gin-gonic/gin"
)

// SuccessResponse is the body returned when a submission is accepted.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned on every failure path. Details is only
// present for validation failures and maps field names to messages.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

// Success sends the success envelope
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, SuccessResponse{
		Success: true,
		Message: message,
	})
}

// Error sends the error envelope
func Error(c *gin.Context, code int, message string, details map[string]string) {
	c.JSON(code, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
