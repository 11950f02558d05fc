package api

// errors.go defines the error codes used by the custody API

import "fmt"

// ApiError represents a structured error from the api package.
type ApiError struct {
	// code is the API error code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *ApiError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *ApiError) Code() ErrorCode { return e.code }
func (e *ApiError) Unwrap() error   { return e.wrapped }

// ErrorCode is used in errors returned by the custody API.
//
//   - 7000-7999 for technical errors - the request could not be processed because of a problem with the supplied data.
//   - 8000-8999 for functional errors - the request is technically valid but a business rule prevents it being processed.
type ErrorCode int

const (

	// ErrCodeBadSignature is used when a signed transfer is submitted and the signature does not verify
	ErrCodeBadSignature ErrorCode = 7001

	// ErrCodeInvalidRecord is used when a transfer record field is missing, too long, not UTF-8 or not hex
	ErrCodeInvalidRecord ErrorCode = 7004

	// ErrCodeInternalError is used when an internal server error occurs
	ErrCodeInternalError ErrorCode = 7005

	// ErrCodeMalformedRequest is used when JSON or form parsing fails
	ErrCodeMalformedRequest ErrorCode = 7006

	// ErrCodeKeyError is used when a supplied key is not a valid RSA key of at least 2048 bits
	ErrCodeKeyError ErrorCode = 7007

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = 7009

	// ErrCodeRequestTooLarge is used when the request body is too large
	// - this is only used in the middleware
	ErrCodeRequestTooLarge ErrorCode = 7010

	// ErrCodeEntropyUnavailable is used when the server cannot generate keys because its random source failed
	ErrCodeEntropyUnavailable ErrorCode = 7011

	// ErrCodeKeyMismatch is used when the declared sender public key does not belong to the sender private key
	ErrCodeKeyMismatch ErrorCode = 8001

	// ErrCodeBatchTooLarge is used when a batch signing request has more records than the server allows
	ErrCodeBatchTooLarge ErrorCode = 8002
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &ApiError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &ApiError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewKeyMismatchError creates an error for a sender public key that does not match the private key.
//
// The returned error will have code ErrCodeKeyMismatch.
func NewKeyMismatchError(msg string) error {
	return &ApiError{code: ErrCodeKeyMismatch, message: msg}
}

// NewBatchTooLargeError creates an error for oversized batch requests.
//
// The returned error will have code ErrCodeBatchTooLarge.
func NewBatchTooLargeError(msg string) error {
	return &ApiError{code: ErrCodeBatchTooLarge, message: msg}
}

// NewInternalError creates an internal error for unexpected failures.
//
// The returned error will have code ErrCodeInternalError.
func NewInternalError(msg string) error {
	return &ApiError{code: ErrCodeInternalError, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
//
// The returned error will have code ErrCodeInternalError.
func WrapInternalError(err error, msg string) error {
	return &ApiError{code: ErrCodeInternalError, message: msg, wrapped: err}
}

// NewRateLimitError creates a rate limit exceeded error.
// Use this when the client has exceeded the rate limit.
//
// The returned error will have code ErrCodeRateLimitExceeded.
func NewRateLimitError(msg string) error {
	return &ApiError{code: ErrCodeRateLimitExceeded, message: msg}
}

// NewRequestTooLargeError creates a request too large error.
// Use this when the request body exceeds the maximum allowed size.
//
// The returned error will have code ErrCodeRequestTooLarge.
func NewRequestTooLargeError(msg string) error {
	return &ApiError{code: ErrCodeRequestTooLarge, message: msg}
}
