package protocol

import (
	"errors"
	"fmt"
)

// Error types for announcement decoding

// ErrorType represents the category of decode error that occurred
type ErrorType int

const (
	// ErrTypeShortPayload indicates a datagram shorter than the fixed header
	ErrTypeShortPayload ErrorType = iota
	// ErrTypeMalformedToken indicates a token without a '=' separator
	ErrTypeMalformedToken
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeShortPayload:
		return "Short Payload"
	case ErrTypeMalformedToken:
		return "Malformed Token"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// DecodeError represents a structural problem with a single discovery
// datagram. It is scoped to that datagram only; the listener that
// received it stays usable.
type DecodeError struct {
	Type    ErrorType // Category of error
	Token   string    // Offending token, for malformed-token errors
	Message string    // Human-readable error message
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s (token %q)", e.Type, e.Message, e.Token)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// newShortPayloadError reports a datagram too small to carry the header.
func newShortPayloadError(got, want int) *DecodeError {
	return &DecodeError{
		Type:    ErrTypeShortPayload,
		Message: fmt.Sprintf("datagram is %d bytes, need at least %d for the header", got, want),
	}
}

// newMalformedTokenError reports a token lacking the '=' separator.
func newMalformedTokenError(token string) *DecodeError {
	return &DecodeError{
		Type:    ErrTypeMalformedToken,
		Token:   token,
		Message: "token has no '=' separator",
	}
}

// IsShortPayload checks if an error is a short-payload decode error
func IsShortPayload(err error) bool {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr.Type == ErrTypeShortPayload
	}
	return false
}

// IsMalformedToken checks if an error is a malformed-token decode error
func IsMalformedToken(err error) bool {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return decErr.Type == ErrTypeMalformedToken
	}
	return false
}
