// Package handlers contains the gin HTTP handlers for the kiosk API, the QR
// phone pages and operational endpoints.
package handlers

import (
	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/gin-gonic/gin"
)

// bindJSONOrError binds the request body into obj, attaching a validation
// error and returning false on failure.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("payload", err.Error()))
		return false
	}
	return true
}
