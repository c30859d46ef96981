package middleware

import (
	"net/http"
	"strconv"

	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached via c.Error into the structured JSON
// error response. Handlers attach at most one error and return; the last one
// wins.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()
			log.Errorw("Request failed",
				"error_type", string(appError.Type),
				"error_message", appError.Message,
				"error_detail", appError.Detail,
				"status", statusCode,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"request_id", c.GetString(RequestIDKey),
				"client_ip", c.ClientIP(),
			)
			c.JSON(statusCode, types.ErrorResponse{
				Type:    string(appError.Type),
				Message: appError.Message,
				Details: appError.Detail,
				Code:    strconv.Itoa(statusCode),
			})
			return
		}

		log.Errorw("Unhandled error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{
			Type:    string(apperrors.ServerError),
			Message: "internal server error",
			Code:    strconv.Itoa(http.StatusInternalServerError),
		})
	}
}
