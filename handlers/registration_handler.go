package handlers

import (
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/internal/store"
	"github.com/ncinga/temi-event-backend/internal/validation"
	"github.com/ncinga/temi-event-backend/services"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler handles kiosk registration submission and the
// per-event CSV export.
type RegistrationHandler struct {
	registrationStore store.RegistrationStore
	maxRows           int64
}

// NewRegistrationHandler creates a new RegistrationHandler. maxRows bounds
// how many records a single export reads; the most recent records win.
func NewRegistrationHandler(registrationStore store.RegistrationStore, maxRows int64) *RegistrationHandler {
	return &RegistrationHandler{registrationStore: registrationStore, maxRows: maxRows}
}

// CreateRegistration accepts a kiosk registration submission and echoes the
// normalized record.
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req types.RegistrationCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	reg, err := validation.Registration(req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	reg.EventID = c.Param("event_id")

	id, err := h.registrationStore.Insert(c.Request.Context(), reg, types.SourceKiosk)
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	c.JSON(http.StatusCreated, types.RegistrationResponse{
		OK:          true,
		ID:          id,
		Name:        reg.Name,
		Email:       reg.Email,
		Designation: reg.Designation,
		CreatedAt:   reg.CreatedAt,
		Source:      reg.Source,
	})
}

// ExportRegistrationsCSV streams the event's registrations as a CSV
// download, newest first. An event with no registrations yields a
// header-only file.
func (h *RegistrationHandler) ExportRegistrationsCSV(c *gin.Context) {
	eventID := c.Param("event_id")

	rows, err := h.registrationStore.ListByEvent(c.Request.Context(), eventID, h.maxRows)
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	csvText, err := services.RegistrationsCSV(rows)
	if err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.ServerError, "failed to build csv export"))
		return
	}

	filename := fmt.Sprintf("registrations_%s_%s.csv", eventID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}

// RegistrationsCount reports the total registration count with a small
// sample, for operational spot checks.
func (h *RegistrationHandler) RegistrationsCount(c *gin.Context) {
	count, err := h.registrationStore.Count(c.Request.Context())
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	sample, err := h.registrationStore.ListAll(c.Request.Context(), 3)
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  count,
		"sample": sample,
	})
}
