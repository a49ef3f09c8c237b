package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Machine-readable status tags surfaced to callers alongside the
// human-readable message.
const (
	StatusValidationError     = "validation_error"
	StatusDriverNotFound      = "driver_not_found"
	StatusMissingPhoneNumber  = "missing_phone_number"
	StatusNoValidDrivers      = "no_valid_drivers"
	StatusNoValidPhoneNumbers = "no_valid_phone_numbers"
	StatusReportNotFound      = "report_not_found"
	StatusProviderAPIError    = "provider_api_error"
	StatusNetworkError        = "network_error"
	StatusConfigurationError  = "configuration_error"
	StatusInternalError       = "internal_error"
)

// AppError carries a machine-readable status tag, the HTTP code it maps
// to, and a human-readable message.
type AppError struct {
	Status  string
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(status string, code int, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// Wrap creates a new AppError wrapping an underlying cause
func Wrap(status string, code int, message string, err error) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Err: err}
}

// Validation constructors: caller-input errors, never retried.

func ValidationError(message string) *AppError {
	return New(StatusValidationError, http.StatusBadRequest, message)
}

func DriverNotFound(driverID string) *AppError {
	return New(StatusDriverNotFound, http.StatusNotFound, fmt.Sprintf("driver %s not found", driverID))
}

func MissingPhoneNumber(driverID string) *AppError {
	return New(StatusMissingPhoneNumber, http.StatusBadRequest, fmt.Sprintf("driver %s has no phone number", driverID))
}

func NoValidDrivers() *AppError {
	return New(StatusNoValidDrivers, http.StatusBadRequest, "no valid drivers found")
}

func NoValidPhoneNumbers() *AppError {
	return New(StatusNoValidPhoneNumbers, http.StatusBadRequest, "no drivers with valid phone numbers found")
}

func ReportNotFound(message string) *AppError {
	return New(StatusReportNotFound, http.StatusNotFound, message)
}

// Upstream provider constructors: the tag tells the caller whether to
// retry (network), alert (configuration), or inspect (API).

func ProviderAPIError(provider string, statusCode int, body string) *AppError {
	return New(StatusProviderAPIError, http.StatusBadGateway,
		fmt.Sprintf("%s API error: status %d: %s", provider, statusCode, body))
}

func NetworkError(provider string, err error) *AppError {
	return Wrap(StatusNetworkError, http.StatusServiceUnavailable,
		fmt.Sprintf("network error: unable to reach %s", provider), err)
}

func ConfigurationError(message string) *AppError {
	return New(StatusConfigurationError, http.StatusInternalServerError, message)
}

// AsAppError extracts an AppError from an error chain
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusOf returns the status tag for an error, defaulting to internal_error
func StatusOf(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Status
	}
	return StatusInternalError
}

// HTTPCode returns the HTTP status code for an error, defaulting to 500
func HTTPCode(err error) int {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
