package handlers

import (
	"net/http"
	"strconv"

	apperrors "github.com/ncinga/temi-event-backend/errors"
	"github.com/ncinga/temi-event-backend/internal/store"
	"github.com/ncinga/temi-event-backend/internal/validation"
	"github.com/ncinga/temi-event-backend/logger"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/gin-gonic/gin"
)

// PagesHandler serves the QR phone pages: registration and feedback forms
// plus their submissions. Failed submissions re-render the form with the
// rejection; a confirmation page is only rendered after the write is
// confirmed.
type PagesHandler struct {
	registrationStore store.RegistrationStore
	feedbackStore     store.FeedbackStore
}

// NewPagesHandler creates a new PagesHandler.
func NewPagesHandler(registrationStore store.RegistrationStore, feedbackStore store.FeedbackStore) *PagesHandler {
	return &PagesHandler{
		registrationStore: registrationStore,
		feedbackStore:     feedbackStore,
	}
}

// RegisterPage renders the registration form.
func (h *PagesHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"EventID":     c.Param("event_id"),
		"Error":       "",
		"Name":        "",
		"Email":       "",
		"Designation": "",
	})
}

// SubmitRegisterForm accepts a registration form post.
func (h *PagesHandler) SubmitRegisterForm(c *gin.Context) {
	eventID := c.Param("event_id")
	req := types.RegistrationCreate{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Designation: c.PostForm("designation"),
	}

	reg, err := validation.Registration(req)
	if err != nil {
		h.renderRegisterError(c, http.StatusBadRequest, eventID, req, err)
		return
	}
	reg.EventID = eventID

	if _, err := h.registrationStore.Insert(c.Request.Context(), reg, types.SourceQRPhone); err != nil {
		logger.GetLogger().Errorw("Registration form insert failed",
			"event_id", eventID, "error", err)
		h.renderRegisterError(c, http.StatusInternalServerError, eventID, req,
			apperrors.NewStorageError(err))
		return
	}

	c.HTML(http.StatusOK, "thanks.html", gin.H{
		"Title": "Registration submitted!",
	})
}

// FeedbackPage renders the feedback form.
func (h *PagesHandler) FeedbackPage(c *gin.Context) {
	c.HTML(http.StatusOK, "feedback.html", gin.H{
		"EventID": c.Param("event_id"),
		"Error":   "",
		"Comment": "",
	})
}

// SubmitFeedbackForm accepts a feedback form post. Comment stays a free-text
// string.
func (h *PagesHandler) SubmitFeedbackForm(c *gin.Context) {
	eventID := c.Param("event_id")
	comment := c.PostForm("comment")

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil {
		h.renderFeedbackError(c, http.StatusBadRequest, eventID, comment,
			apperrors.ValidationFailed("rating", "rating must be an integer"))
		return
	}

	req := types.FeedbackCreate{Rating: rating, Comment: comment}
	fb, err := validation.Feedback(req)
	if err != nil {
		h.renderFeedbackError(c, http.StatusBadRequest, eventID, comment, err)
		return
	}
	fb.EventID = eventID

	if _, err := h.feedbackStore.Insert(c.Request.Context(), fb, types.SourceQRPhone); err != nil {
		logger.GetLogger().Errorw("Feedback form insert failed",
			"event_id", eventID, "error", err)
		h.renderFeedbackError(c, http.StatusInternalServerError, eventID, comment,
			apperrors.NewStorageError(err))
		return
	}

	c.HTML(http.StatusOK, "thanks.html", gin.H{
		"Title": "Feedback submitted. Thank you!",
	})
}

func (h *PagesHandler) renderRegisterError(c *gin.Context, status int, eventID string, req types.RegistrationCreate, err error) {
	c.HTML(status, "register.html", gin.H{
		"EventID":     eventID,
		"Error":       errorMessage(err),
		"Name":        req.Name,
		"Email":       req.Email,
		"Designation": req.Designation,
	})
}

func (h *PagesHandler) renderFeedbackError(c *gin.Context, status int, eventID string, comment string, err error) {
	c.HTML(status, "feedback.html", gin.H{
		"EventID": eventID,
		"Error":   errorMessage(err),
		"Comment": comment,
	})
}

// errorMessage picks a guest-appropriate message: validation details are
// shown verbatim, everything else collapses to a generic retry prompt.
func errorMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		if appErr.Type == apperrors.ValidationError {
			return appErr.Detail
		}
	}
	return "Something went wrong saving your submission. Please try again."
}
