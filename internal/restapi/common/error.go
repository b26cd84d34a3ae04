package common

import (
	"net/url"
	"time"
)

type APIErrorMessage string

const (
	AuthUnauthorizedMessage      APIErrorMessage = "auth.unauthorized"
	AuthForbiddenMessage         APIErrorMessage = "auth.forbidden"
	RequestParseErrorMessage     APIErrorMessage = "request.parse.failed"
	RequestConflictMessage       APIErrorMessage = "request.conflict"
	DownstreamNotFoundMessage    APIErrorMessage = "downstream.notfound"
	DownstreamUnavailableMessage APIErrorMessage = "downstream.unavailable"
	InternalErrorMessage         APIErrorMessage = "http.error.internal"
	UnknownErrorMessage          APIErrorMessage = "http.error.unknown"
)

// ErrorDetails is the payload of every failure envelope the service sends.
type ErrorDetails struct {
	RequestID string     `json:"requestid"`
	Details   url.Values `json:"details,omitempty"`
	Timestamp int64      `json:"timestamp"`
}

func NewErrorDetails(reqID string, details url.Values) ErrorDetails {
	return ErrorDetails{
		RequestID: reqID,
		Details:   details,
		Timestamp: time.Now().Unix(),
	}
}
