package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		errType ErrorType
		status  int
	}{
		{ValidationError, http.StatusBadRequest},
		{NotFoundError, http.StatusNotFound},
		{StorageError, http.StatusInternalServerError},
		{ConfigurationError, http.StatusInternalServerError},
		{DeliveryError, http.StatusBadGateway},
		{ServerError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := New(tt.errType, "msg", "detail")
		assert.Equal(t, tt.status, err.GetHTTPStatus(), "type %s", tt.errType)
	}
}

func TestErrorStringIncludesDetail(t *testing.T) {
	err := ValidationFailed("email", "email is not a valid mailbox address")
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Contains(t, err.Error(), "email is not a valid mailbox address")

	bare := New(ServerError, "boom", "")
	assert.Equal(t, "SERVER_ERROR: boom", bare.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, StorageError, "insert failed")
	require.NotNil(t, err)

	assert.Equal(t, StorageError, err.Type)
	assert.True(t, errors.Is(err, cause))

	assert.Nil(t, Wrap(nil, StorageError, "nothing"))
}

func TestDeliveryAndConfigurationHelpers(t *testing.T) {
	d := NewDeliveryError(errors.New("550 relay denied"))
	assert.Equal(t, DeliveryError, d.Type)
	assert.Equal(t, http.StatusBadGateway, d.GetHTTPStatus())

	c := MissingConfiguration("SMTP_HOST must be set")
	assert.Equal(t, ConfigurationError, c.Type)
	assert.Contains(t, c.Detail, "SMTP_HOST")
}
