package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound                = errors.New("resource not found")
	ErrConstraintViolation     = errors.New("constraint violation")
	ErrInvalidState            = errors.New("invalid state transition")
	ErrInsufficientQuantity    = errors.New("insufficient credit quantity")
	ErrNotAvailable            = errors.New("credit not available")
	ErrSameParty               = errors.New("buyer and seller must differ")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
	ErrInvalidInput            = errors.New("invalid input")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidCredentials      = errors.New("invalid credentials")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConstraintViolation)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func UnprocessableEntity(message string, err error) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, err)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// FromDomain maps a domain sentinel error to an AppError with the right status.
func FromDomain(err error) *AppError {
	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound(err.Error())
	case errors.Is(err, ErrConstraintViolation):
		return Conflict(err.Error())
	case errors.Is(err, ErrInvalidState),
		errors.Is(err, ErrInsufficientQuantity),
		errors.Is(err, ErrNotAvailable),
		errors.Is(err, ErrSameParty):
		return UnprocessableEntity(err.Error(), err)
	case errors.Is(err, ErrInvalidInput):
		return BadRequest(err.Error())
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthorized):
		return Unauthorized(err.Error())
	case errors.Is(err, ErrCollaboratorUnavailable):
		return NewAppError(http.StatusBadGateway, err.Error(), err)
	default:
		return InternalError(err)
	}
}
