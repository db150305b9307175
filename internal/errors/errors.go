package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrIncorrectStudentID is returned when no user matches the student id.
	ErrIncorrectStudentID = errors.New("incorrect student ID")
	// ErrIncorrectUsername is returned when no admin matches the username.
	ErrIncorrectUsername = errors.New("incorrect username")
	// ErrIncorrectPassword is returned when password verification fails.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrStudentIDTaken is returned when registering an already used student id.
	ErrStudentIDTaken = errors.New("student ID already registered")
	// ErrEventNotFound is returned when an event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrRequestNotFound is returned when an event request does not exist.
	ErrRequestNotFound = errors.New("event request not found")
	// ErrInvalidStatus is returned when a status value is outside the known set.
	ErrInvalidStatus = errors.New("invalid request status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrIncorrectStudentID):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_STUDENT_ID")
	case errors.Is(err, ErrIncorrectUsername):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_USERNAME")
	case errors.Is(err, ErrIncorrectPassword):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INCORRECT_PASSWORD")
	case errors.Is(err, ErrStudentIDTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "STUDENT_ID_TAKEN")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrRequestNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
