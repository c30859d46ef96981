package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ncinga/temi-event-backend/internal/store/mocks"
	"github.com/ncinga/temi-event-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildPagesRouter(h *PagesHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.GET("/r/:event_id", h.RegisterPage)
	r.POST("/r/:event_id", h.SubmitRegisterForm)
	r.GET("/f/:event_id", h.FeedbackPage)
	r.POST("/f/:event_id", h.SubmitFeedbackForm)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterPageRendersForm(t *testing.T) {
	h := NewPagesHandler(new(mocks.RegistrationStore), new(mocks.FeedbackStore))
	r := buildPagesRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/r/expo-2025", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/r/expo-2025"`)
}

func TestSubmitRegisterFormSuccess(t *testing.T) {
	regStore := new(mocks.RegistrationStore)
	regStore.On("Insert", mock.Anything, mock.MatchedBy(func(reg *types.Registration) bool {
		return reg.EventID == "expo-2025" && reg.Name == "Jane" && reg.Email == "jane@example.com"
	}), types.SourceQRPhone).Return("64f1b2c3d4e5f60718293a4b", nil)

	h := NewPagesHandler(regStore, new(mocks.FeedbackStore))
	r := buildPagesRouter(h)

	w := postForm(r, "/r/expo-2025", url.Values{
		"name":  {" Jane "},
		"email": {"Jane@Example.com"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Registration submitted!")
	regStore.AssertExpectations(t)
}

func TestSubmitRegisterFormValidationFailure(t *testing.T) {
	regStore := new(mocks.RegistrationStore)
	h := NewPagesHandler(regStore, new(mocks.FeedbackStore))
	r := buildPagesRouter(h)

	w := postForm(r, "/r/expo-2025", url.Values{
		"name":  {"Jane"},
		"email": {"not-an-address"},
	})

	// the form is re-rendered with the rejection, never a confirmation
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "mailbox address")
	assert.NotContains(t, w.Body.String(), "Registration submitted!")
	regStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitRegisterFormStoreFailure(t *testing.T) {
	regStore := new(mocks.RegistrationStore)
	regStore.On("Insert", mock.Anything, mock.Anything, types.SourceQRPhone).
		Return("", errors.New("server selection timeout"))

	h := NewPagesHandler(regStore, new(mocks.FeedbackStore))
	r := buildPagesRouter(h)

	w := postForm(r, "/r/expo-2025", url.Values{
		"name":  {"Jane"},
		"email": {"jane@example.com"},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "Registration submitted!")
}

func TestSubmitFeedbackFormSuccess(t *testing.T) {
	fbStore := new(mocks.FeedbackStore)
	fbStore.On("Insert", mock.Anything, mock.MatchedBy(func(fb *types.Feedback) bool {
		return fb.EventID == "expo-2025" && fb.Rating == 5 && fb.Comment == "loved it"
	}), types.SourceQRPhone).Return("64f1b2c3d4e5f60718293a4c", nil)

	h := NewPagesHandler(new(mocks.RegistrationStore), fbStore)
	r := buildPagesRouter(h)

	w := postForm(r, "/f/expo-2025", url.Values{
		"rating":  {"5"},
		"comment": {" loved it "},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Feedback submitted. Thank you!")
	fbStore.AssertExpectations(t)
}

func TestSubmitFeedbackFormBadRating(t *testing.T) {
	fbStore := new(mocks.FeedbackStore)
	h := NewPagesHandler(new(mocks.RegistrationStore), fbStore)
	r := buildPagesRouter(h)

	for _, rating := range []string{"", "abc", "0", "9"} {
		w := postForm(r, "/f/expo-2025", url.Values{
			"rating":  {rating},
			"comment": {"fine"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %q", rating)
	}
	fbStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}
