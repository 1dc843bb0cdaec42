package middleware

import (
	"errors"
	"net/http"

	"fluxcapital-backend/internal/delivery/http/response"
	"fluxcapital-backend/pkg/apperror"
	"fluxcapital-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors collected on the context into JSON outcomes.
// Every server-side failure funnels through here; raw error details are
// logged for operators and never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", requestID,
					"error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unhandled error",
			"path", c.FullPath(),
			"request_id", requestID,
			"error", err)
		response.Error(c, http.StatusInternalServerError, "Something went wrong. Please try again later.", nil)
	}
}
