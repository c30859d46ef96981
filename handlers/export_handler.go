package handlers

import (
	"net/http"

	"github.com/ncinga/temi-event-backend/services"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/gin-gonic/gin"
)

// ExportHandler triggers the bulk registration export delivered by email.
type ExportHandler struct {
	exportService *services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// EmailRegistrationsExport exports all registrations across all events as an
// emailed spreadsheet. The call blocks until delivery completes or fails;
// zero stored registrations is a 404 and no email is sent.
func (h *ExportHandler) EmailRegistrationsExport(c *gin.Context) {
	resp, err := h.exportService.EmailAllRegistrations(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EmailVisitorExport accepts a single visitor payload, builds a one-row
// spreadsheet from it and emails it to the export recipient. Nothing is
// persisted.
func (h *ExportHandler) EmailVisitorExport(c *gin.Context) {
	var req types.VisitorExportRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	resp, err := h.exportService.EmailVisitorExport(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
