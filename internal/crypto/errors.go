package crypto

import (
	"errors"
	"fmt"
)

// Error represents a structured error from the crypto package
type Error interface {
	error
	Code() ErrorCode
	Unwrap() error
}

type ErrorCode string

const (
	ErrCodeKeyFormat          ErrorCode = "key_format"
	ErrCodeEncoding           ErrorCode = "encoding"
	ErrCodeSignatureMismatch  ErrorCode = "signature_mismatch"
	ErrCodeEntropyUnavailable ErrorCode = "entropy_unavailable"
	ErrCodeInternal           ErrorCode = "internal"
)

// CryptoError represents a structured error from the crypto package
type CryptoError struct {

	// code is the cryptoerror code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *CryptoError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *CryptoError) Code() ErrorCode { return e.code }
func (e *CryptoError) Unwrap() error   { return e.wrapped }

// CodeOf returns the code of the first CryptoError in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var cryptoErr *CryptoError
	if errors.As(err, &cryptoErr) {
		return cryptoErr.Code()
	}
	return ""
}

// NewKeyFormatError creates a key format error.
// Use this when key bytes do not decode to a structurally valid RSA key of the supported size.
//
// The returned error will have code ErrCodeKeyFormat.
func NewKeyFormatError(msg string) error {
	return &CryptoError{code: ErrCodeKeyFormat, message: msg}
}

// WrapKeyFormatError wraps an existing error as a key format error.
//
// The returned error will have code ErrCodeKeyFormat.
func WrapKeyFormatError(err error, msg string) error {
	return &CryptoError{code: ErrCodeKeyFormat, message: msg, wrapped: err}
}

// NewEncodingError creates an encoding error.
// Use this for transfer record fields that are empty, oversized or not valid UTF-8,
// and for signature or key text that is not hex.
//
// The returned error will have code ErrCodeEncoding.
func NewEncodingError(msg string) error {
	return &CryptoError{code: ErrCodeEncoding, message: msg}
}

// WrapEncodingError wraps an existing error as an encoding error.
//
// The returned error will have code ErrCodeEncoding.
func WrapEncodingError(err error, msg string) error {
	return &CryptoError{code: ErrCodeEncoding, message: msg, wrapped: err}
}

// NewSignatureMismatchError creates a signature mismatch error.
// This is a negative verification result for structurally valid input, not a failure of the inputs themselves.
//
// The returned error will have code ErrCodeSignatureMismatch.
func NewSignatureMismatchError(msg string) error {
	return &CryptoError{code: ErrCodeSignatureMismatch, message: msg}
}

// NewEntropyUnavailableError creates an entropy error.
// Key generation must stop when the secure random source fails.
//
// The returned error will have code ErrCodeEntropyUnavailable.
func NewEntropyUnavailableError(msg string) error {
	return &CryptoError{code: ErrCodeEntropyUnavailable, message: msg}
}

// WrapEntropyUnavailableError wraps a random source failure.
//
// The returned error will have code ErrCodeEntropyUnavailable.
func WrapEntropyUnavailableError(err error, msg string) error {
	return &CryptoError{code: ErrCodeEntropyUnavailable, message: msg, wrapped: err}
}

// NewInternalError creates an internal error for unexpected failures.
//
// The returned error will have code ErrCodeInternal.
func NewInternalError(msg string) error {
	return &CryptoError{code: ErrCodeInternal, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for crypto library failures that should not happen for well formed input.
//
// The returned error will have code ErrCodeInternal.
func WrapInternalError(err error, msg string) error {
	return &CryptoError{code: ErrCodeInternal, message: msg, wrapped: err}
}
