package common

import (
	"context"
	"net/http"

	"github.com/eurofurence/reg-response-result/internal/apierrors"
	"github.com/eurofurence/reg-response-result/internal/envelope"
	"github.com/eurofurence/reg-response-result/internal/logging"
)

type RequestHandler[Req any] func(r *http.Request) (*Req, error)
type ResponseHandler[Res any] func(ctx context.Context, res *Res, w http.ResponseWriter) error
type Endpoint[Req, Res any] func(ctx context.Context, request *Req, logger logging.Logger) (*Res, error)

func CreateHandler[Req, Res any](endpoint Endpoint[Req, Res],
	requestHandler RequestHandler[Req],
	responseHandler ResponseHandler[Res]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := GetRequestID(ctx)
		logger := logging.WithRequestID(ctx, reqID)

		defer func() {
			err := r.Body.Close()
			if err != nil {
				logger.Error("Error when closing the request body. [error]: %v", err)
			}
		}()

		if requestHandler == nil {
			logger.Error("No request handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		if responseHandler == nil {
			logger.Error("No response handler supplied")
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}

		request, err := requestHandler(r)
		if err != nil {
			logger.Error("An error occurred while parsing the request. [error]: %v", err)
			SendBadRequestResponse(w, reqID, logger, "")
			return
		}

		response, err := endpoint(ctx, request, logger)
		if err != nil {
			logger.Error("An error occurred during the request. [error]: %v", err)
			sendErrorResponse(w, reqID, err, logger)
			return
		}

		if err := responseHandler(ctx, response, w); err != nil {
			logger.Error("An error occurred during the handling of the response. [error]: %v", err)
			SendInternalServerError(w, reqID, UnknownErrorMessage, logger, "")
			return
		}
	})
}

func sendErrorResponse(w http.ResponseWriter, reqID string, err error, logger logging.Logger) {
	status := apierrors.AsAPIStatus(err)
	if status == nil {
		SendInternalServerError(w, reqID, InternalErrorMessage, logger, "")
		return
	}

	details := status.Status().Details
	switch {
	case apierrors.IsBadRequestError(err):
		SendBadRequestResponse(w, reqID, logger, details)
	case apierrors.IsUnauthorizedError(err):
		SendUnauthorizedResponse(w, reqID, logger, details)
	case apierrors.IsForbiddenError(err):
		SendForbiddenResponse(w, reqID, logger, details)
	case apierrors.IsNotFoundError(err):
		SendStatusNotFoundResponse(w, reqID, logger, details)
	case apierrors.IsConflictError(err):
		SendConflictResponse(w, reqID, logger, details)
	case apierrors.IsBadGatewayError(err):
		SendBadGatewayResponse(w, reqID, logger, details)
	case apierrors.IsInternalServerError(err):
		SendInternalServerError(w, reqID, APIErrorMessage(status.Status().Message), logger, details)
	default:
		SendResponseWithStatusAndMessage(w, status.Status().Code, reqID, APIErrorMessage(status.Status().Message), logger, details)
	}
}

// NoRequestBody is the request handler for endpoints that only read the url.
func NoRequestBody(r *http.Request) (*struct{}, error) {
	return &struct{}{}, nil
}

// SuccessResponseHandler wraps the endpoint result in a successful envelope with status 200.
func SuccessResponseHandler[Res any](message string) ResponseHandler[Res] {
	return func(ctx context.Context, res *Res, w http.ResponseWriter) error {
		result := envelope.New(envelope.CodeSuccess, message, res)
		SendResult(w, http.StatusOK, result, logging.LoggerFromContext(ctx))
		return nil
	}
}
