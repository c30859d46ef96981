package handlers

import (
	"net/http"

	"github.com/ncinga/temi-event-backend/services"
	"github.com/gin-gonic/gin"
)

// VisitorHandler serves name lookup against the static visitor directory.
type VisitorHandler struct {
	visitorService *services.VisitorService
}

// NewVisitorHandler creates a new VisitorHandler.
func NewVisitorHandler(visitorService *services.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

// SearchVisitors returns up to 20 visitors whose name contains the query.
// An empty query returns an empty list.
func (h *VisitorHandler) SearchVisitors(c *gin.Context) {
	c.JSON(http.StatusOK, h.visitorService.Search(c.Query("q")))
}
