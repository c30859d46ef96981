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

// FeedbackHandler handles kiosk feedback submission and the per-event CSV
// export.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
	maxRows       int64
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackStore store.FeedbackStore, maxRows int64) *FeedbackHandler {
	return &FeedbackHandler{feedbackStore: feedbackStore, maxRows: maxRows}
}

// CreateFeedback accepts a kiosk feedback submission.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	fb, err := validation.Feedback(req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	fb.EventID = c.Param("event_id")

	id, err := h.feedbackStore.Insert(c.Request.Context(), fb, types.SourceKiosk)
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	c.JSON(http.StatusCreated, types.FeedbackResponse{OK: true, ID: id})
}

// ExportFeedbackCSV streams the event's feedback as a CSV download, newest
// first.
func (h *FeedbackHandler) ExportFeedbackCSV(c *gin.Context) {
	eventID := c.Param("event_id")

	rows, err := h.feedbackStore.ListByEvent(c.Request.Context(), eventID, h.maxRows)
	if err != nil {
		_ = c.Error(apperrors.NewStorageError(err))
		return
	}

	csvText, err := services.FeedbackCSV(rows)
	if err != nil {
		_ = c.Error(apperrors.Wrap(err, apperrors.ServerError, "failed to build csv export"))
		return
	}

	filename := fmt.Sprintf("feedback_%s_%s.csv", eventID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
