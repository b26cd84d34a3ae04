package apierrors

import (
	"errors"
	"net/http"
)

// Status is the information a StatusError carries to the rest layer.
type Status struct {
	Code    int
	Message string
	Details string
}

type APIStatus interface {
	Status() Status
}

// StatusError is returned from endpoints when the response code matters.
type StatusError struct {
	ErrStatus Status
}

var _ APIStatus = (*StatusError)(nil)

func (s *StatusError) Error() string {
	if s.ErrStatus.Details != "" {
		return s.ErrStatus.Message + ": " + s.ErrStatus.Details
	}
	return s.ErrStatus.Message
}

func (s *StatusError) Status() Status {
	return s.ErrStatus
}

func newStatusError(code int, message string, details string) error {
	return &StatusError{
		ErrStatus: Status{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

func NewBadRequest(message, details string) error {
	return newStatusError(http.StatusBadRequest, message, details)
}

func NewUnauthorized(message, details string) error {
	return newStatusError(http.StatusUnauthorized, message, details)
}

func NewForbidden(message, details string) error {
	return newStatusError(http.StatusForbidden, message, details)
}

func NewNotFound(message, details string) error {
	return newStatusError(http.StatusNotFound, message, details)
}

func NewConflict(message, details string) error {
	return newStatusError(http.StatusConflict, message, details)
}

func NewInternalServerError(message, details string) error {
	return newStatusError(http.StatusInternalServerError, message, details)
}

func NewBadGateway(message, details string) error {
	return newStatusError(http.StatusBadGateway, message, details)
}

// AsAPIStatus returns the status of the first StatusError in the chain, or nil.
func AsAPIStatus(err error) APIStatus {
	var status *StatusError
	if errors.As(err, &status) {
		return status
	}
	return nil
}

func hasStatus(err error, code int) bool {
	if status := AsAPIStatus(err); status != nil {
		return status.Status().Code == code
	}
	return false
}

func IsBadRequestError(err error) bool {
	return hasStatus(err, http.StatusBadRequest)
}

func IsUnauthorizedError(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

func IsForbiddenError(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func IsNotFoundError(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsConflictError(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func IsInternalServerError(err error) bool {
	return hasStatus(err, http.StatusInternalServerError)
}

func IsBadGatewayError(err error) bool {
	return hasStatus(err, http.StatusBadGateway)
}
