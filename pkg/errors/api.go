package errors

import (
	"net/http"
)

// APIError is the typed error surface of the HTTP layer
type APIError interface {
	error
	GetStatus() int
	SetTitle(string)
}

type apiError struct {
	Code   string `json:"Code"`
	Status int    `json:"Status"`
	Title  string `json:"Title"`
}

func (e *apiError) Error() string { return e.Title }

// GetStatus returns the HTTP status code for the error
func (e *apiError) GetStatus() int { return e.Status }

// SetTitle overrides the human readable error title
func (e *apiError) SetTitle(title string) { e.Title = title }

// InternalServerError type to specifically handle internal server errors
type InternalServerError struct {
	apiError
}

// NewInternalServerError creates a new InternalServerError
func NewInternalServerError() *InternalServerError {
	err := new(InternalServerError)
	err.Code = "ERROR"
	err.Title = "Something wrong happened."
	err.Status = http.StatusInternalServerError
	return err
}

// BadRequest type to specifically handle bad requests
type BadRequest struct {
	apiError
}

// NewBadRequest creates a new BadRequest error
func NewBadRequest(message string) *BadRequest {
	err := new(BadRequest)
	err.Code = "BAD_REQUEST"
	err.Title = message
	err.Status = http.StatusBadRequest
	return err
}

// NotFound type to specifically handle 404s
type NotFound struct {
	apiError
}

// NewNotFound creates a new NotFound error
func NewNotFound(message string) *NotFound {
	err := new(NotFound)
	err.Code = "NOT_FOUND"
	err.Title = message
	err.Status = http.StatusNotFound
	return err
}

// Conflict type to handle uniqueness and state-transition violations
type Conflict struct {
	apiError
}

// NewConflict creates a new Conflict error
func NewConflict(message string) *Conflict {
	err := new(Conflict)
	err.Code = "CONFLICT"
	err.Title = message
	err.Status = http.StatusConflict
	return err
}

// Gone type to handle terminal token lifecycle states
type Gone struct {
	apiError
}

// NewGone creates a new Gone error
func NewGone(message string) *Gone {
	err := new(Gone)
	err.Code = "GONE"
	err.Title = message
	err.Status = http.StatusGone
	return err
}

// FailedDependency type to handle storage collaborator failures
type FailedDependency struct {
	apiError
}

// NewFailedDependency creates a new FailedDependency error
func NewFailedDependency(message string) *FailedDependency {
	err := new(FailedDependency)
	err.Code = "FAILED_DEPENDENCY"
	err.Title = message
	err.Status = http.StatusFailedDependency
	return err
}
