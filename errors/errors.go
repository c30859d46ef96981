// Package errors defines the structured application error type and the error
// categories used across the submission and export pipeline.
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError    ErrorType = "VALIDATION_ERROR"
	NotFoundError      ErrorType = "NOT_FOUND"
	StorageError       ErrorType = "STORAGE_ERROR"
	ConfigurationError ErrorType = "CONFIGURATION_ERROR"
	DeliveryError      ErrorType = "DELIVERY_ERROR"
	ServerError        ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error type,
// falling back to 500 for unknown types.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// New creates a new AppError.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a rejected submission field.
func ValidationFailed(field string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    fmt.Sprintf("invalid field: %s", field),
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound reports an empty result where at least one record was required.
func NotFound(entity string) *AppError {
	return &AppError{
		Type:       NotFoundError,
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewStorageError wraps a store read/write failure.
func NewStorageError(err error) *AppError {
	return &AppError{
		Type:       StorageError,
		Message:    "storage operation failed",
		Detail:     err.Error(),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// MissingConfiguration reports configuration absent before any I/O attempt.
func MissingConfiguration(detail string) *AppError {
	return &AppError{
		Type:       ConfigurationError,
		Message:    "missing configuration",
		Detail:     detail,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewDeliveryError wraps an outbound-mail transport failure.
func NewDeliveryError(err error) *AppError {
	return &AppError{
		Type:       DeliveryError,
		Message:    "email delivery failed",
		Detail:     err.Error(),
		HTTPStatus: http.StatusBadGateway,
		Raw:        err,
	}
}

// InternalServerError reports an unclassified server-side failure.
func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NotFoundError:
		return http.StatusNotFound
	case StorageError, ConfigurationError:
		return http.StatusInternalServerError
	case DeliveryError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
