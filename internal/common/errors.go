package common

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// APIError represents a standard structure for API errors.
type APIError struct {
	StatusCode int         `json:"-"`
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: StatusCode=%d, Code=%s, Message=%s", e.StatusCode, e.Code, e.Message)
}

func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy of the error carrying extra detail, so the
// sentinel values below are never mutated.
func (e *APIError) WithDetails(details interface{}) *APIError {
	c := *e
	c.Details = details
	return &c
}

var (
	ErrBadRequest     = NewAPIError(http.StatusBadRequest, "BAD_REQUEST", "The request is invalid.")
	ErrUnauthorized   = NewAPIError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required and has failed or has not yet been provided.")
	ErrForbidden      = NewAPIError(http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource.")
	ErrNotFound       = NewAPIError(http.StatusNotFound, "NOT_FOUND", "The requested resource could not be found.")
	ErrConflict       = NewAPIError(http.StatusConflict, "CONFLICT", "A conflict occurred with the current state of the resource.")
	ErrInternalServer = NewAPIError(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred on the server.")

	// Credential errors. Unknown username and wrong password are deliberately
	// distinct: login resolves the username first and must report which step
	// failed.
	ErrUnknownUsername = NewAPIError(http.StatusUnauthorized, "UNKNOWN_USERNAME", "This username is not registered.")
	ErrWrongPassword   = NewAPIError(http.StatusUnauthorized, "WRONG_PASSWORD", "The password is incorrect.")
	ErrEmailInUse      = NewAPIError(http.StatusConflict, "EMAIL_IN_USE", "This email address is already registered.")
	ErrWeakPassword    = NewAPIError(http.StatusBadRequest, "WEAK_PASSWORD", "The password is too weak.")
	ErrUsernameTaken   = NewAPIError(http.StatusConflict, "USERNAME_TAKEN", "This username is already taken.")

	// ErrStoreUnavailable covers document store write failures that have a
	// user-facing action attached (chat send, settings save).
	ErrStoreUnavailable = NewAPIError(http.StatusBadGateway, "STORE_UNAVAILABLE", "The operation could not be completed. Please try again.")
)

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func NewValidationAPIError(details interface{}) *APIError {
	return &APIError{
		StatusCode: http.StatusUnprocessableEntity,
		Code:       "VALIDATION_ERROR",
		Message:    "Input validation failed.",
		Details:    details,
	}
}

// FormatValidationErrors converts validator.ValidationErrors into a
// field-to-message map.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMap := make(map[string]string)
	for _, e := range errs {
		field := strings.ToLower(e.Field())
		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", field)
		case "email":
			message = fmt.Sprintf("The %s field must be a valid email address.", field)
		case "min":
			message = fmt.Sprintf("The %s field must be at least %s characters long.", field, e.Param())
		case "max":
			message = fmt.Sprintf("The %s field may not be greater than %s characters.", field, e.Param())
		case "url":
			message = fmt.Sprintf("The %s field must be a valid URL.", field)
		default:
			message = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", e.Field(), e.Tag())
		}
		errorMap[field] = message
	}
	return errorMap
}
