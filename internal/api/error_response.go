package api

// error_response.go implements the error response format for the custody API.
// it includes functions to map lower level errors to the error response returned to the client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
)

// ErrorResponse is the body returned for failed requests
type ErrorResponse struct {

	// The HTTP method used to make the request e.g. GET, POST, etc
	HTTPMethod string `json:"httpMethod"`

	// The URI that was requested
	RequestURI string `json:"requestUri"`

	// The HTTP status code returned
	StatusCode int `json:"statusCode"`

	// A standard short description corresponding to the HTTP status code
	StatusCodeText string `json:"statusCodeText"`

	// A long description corresponding to the HTTP status code with additional information
	StatusCodeMessage string `json:"statusCodeMessage,omitempty"`

	// A unique identifier to the HTTP request within the scope of the API provider
	ProviderCorrelationReference string `json:"providerCorrelationReference,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime"`

	// An array of errors providing more detail about the root cause
	Errors []DetailedError `json:"errors"`
}

// DetailedError represents a detailed error in the error response
type DetailedError struct {
	// error code: 7000-7999 for technical errors, 8000-8999 for functional errors
	ErrorCode        ErrorCode `json:"errorCode"`
	Property         string    `json:"property,omitempty"`
	ErrorCodeText    string    `json:"errorCodeText"`
	ErrorCodeMessage string    `json:"errorCodeMessage"`
}

// MapErrorToResponse maps api.ApiError, crypto.CryptoError or generic errors to an error response.
//
// The mapping also establishes the HTTP status code based on the error type.
// Internal errors are returned with a generic message; the full error is logged server-side.
//
// Call this function to set up the error response before sending it to the client (using RespondWithErrorResponse).
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	// Try to extract the most specific error type first
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return errorResponseFromApi(apiErr, r, requestID)
	}

	var cryptoErr *crypto.CryptoError
	if errors.As(err, &cryptoErr) {
		return errorResponseFromCrypto(cryptoErr, r, requestID)
	}

	// fallback - this is not expected - if it does happen, return an internal error response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return newErrorResponse(r, requestID, http.StatusInternalServerError, ErrCodeInternalError, "Internal Error", "An internal error occurred")
}

// errorResponseFromApi maps api.ApiError to API error responses
func errorResponseFromApi(err *ApiError, r *http.Request, requestID string) *ErrorResponse {
	var statusCode int
	var errorCodeText string

	switch err.Code() {
	case ErrCodeBadSignature:
		statusCode = http.StatusBadRequest
		errorCodeText = "Bad signature"
	case ErrCodeInvalidRecord:
		statusCode = http.StatusBadRequest
		errorCodeText = "Invalid transfer record"
	case ErrCodeKeyError:
		statusCode = http.StatusBadRequest
		errorCodeText = "Invalid key"
	case ErrCodeMalformedRequest:
		statusCode = http.StatusBadRequest
		errorCodeText = "Malformed request"
	case ErrCodeKeyMismatch:
		statusCode = http.StatusBadRequest
		errorCodeText = "Key mismatch"
	case ErrCodeBatchTooLarge:
		statusCode = http.StatusBadRequest
		errorCodeText = "Batch too large"
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
		errorCodeText = "Rate limit exceeded"
	case ErrCodeRequestTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
		errorCodeText = "Request too large"
	default:
		return newErrorResponse(r, requestID, http.StatusInternalServerError, ErrCodeInternalError, "Internal Error", "An internal error occurred")
	}

	return newErrorResponse(r, requestID, statusCode, err.Code(), errorCodeText, err.Error())
}

// errorResponseFromCrypto maps crypto.CryptoError to API error responses
func errorResponseFromCrypto(err *crypto.CryptoError, r *http.Request, requestID string) *ErrorResponse {
	switch err.Code() {
	case crypto.ErrCodeKeyFormat:
		return newErrorResponse(r, requestID, http.StatusBadRequest, ErrCodeKeyError, "Invalid key", err.Error())
	case crypto.ErrCodeEncoding:
		return newErrorResponse(r, requestID, http.StatusBadRequest, ErrCodeInvalidRecord, "Invalid transfer record", err.Error())
	case crypto.ErrCodeSignatureMismatch:
		return newErrorResponse(r, requestID, http.StatusBadRequest, ErrCodeBadSignature, "Bad signature", err.Error())
	case crypto.ErrCodeEntropyUnavailable:
		return newErrorResponse(r, requestID, http.StatusInternalServerError, ErrCodeEntropyUnavailable, "Key generation unavailable", "The server could not generate a key pair")
	default:
		return newErrorResponse(r, requestID, http.StatusInternalServerError, ErrCodeInternalError, "Internal Error", "An internal error occurred")
	}
}

func newErrorResponse(r *http.Request, requestID string, statusCode int, code ErrorCode, text, message string) *ErrorResponse {
	return &ErrorResponse{
		HTTPMethod:                   r.Method,
		RequestURI:                   r.RequestURI,
		StatusCode:                   statusCode,
		StatusCodeText:               http.StatusText(statusCode),
		StatusCodeMessage:            text,
		ProviderCorrelationReference: requestID,
		ErrorDateTime:                time.Now().UTC().Format(time.RFC3339),
		Errors: []DetailedError{
			{
				ErrorCode:        code,
				ErrorCodeText:    text,
				ErrorCodeMessage: message,
			},
		},
	}
}
