package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"

	"github.com/sashabaranov/go-openai"
)

// ErrorKind is the enumerated failure taxonomy shared by all backends.
// The batch driver branches on kinds, never on error text.
type ErrorKind string

const (
	ErrPathNotFound         ErrorKind = "path_not_found"
	ErrUnsupportedFormat    ErrorKind = "unsupported_format"
	ErrAuthenticationFailed ErrorKind = "authentication_failed"
	ErrRateLimited          ErrorKind = "rate_limited"
	ErrPayloadTooLarge      ErrorKind = "payload_too_large"
	ErrNetwork              ErrorKind = "network_error"
	ErrModelUnavailable     ErrorKind = "model_unavailable"
	ErrIO                   ErrorKind = "io_error"
	ErrUnknown              ErrorKind = "unknown"
)

// TranscriptionError carries an enumerated kind alongside the provider
// that produced it and the underlying cause.
type TranscriptionError struct {
	Kind     ErrorKind
	Provider string
	Message  string
	Err      error
}

func (e *TranscriptionError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// NewError builds a TranscriptionError wrapping cause.
func NewError(kind ErrorKind, provider, message string, cause error) *TranscriptionError {
	return &TranscriptionError{Kind: kind, Provider: provider, Message: message, Err: cause}
}

// KindOf recovers the error kind through any amount of wrapping.
// Errors that never went through a backend classify as ErrUnknown.
func KindOf(err error) ErrorKind {
	var te *TranscriptionError
	if errors.As(err, &te) {
		return te.Kind
	}
	return ErrUnknown
}

// ClassifyOpenAIError folds go-openai client failures into the shared
// taxonomy. Both the openai and azure backends go through here since
// they share the client library.
func ClassifyOpenAIError(provider string, err error) *TranscriptionError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return NewError(ErrAuthenticationFailed, provider, apiErr.Message, err)
		case http.StatusTooManyRequests:
			return NewError(ErrRateLimited, provider, apiErr.Message, err)
		case http.StatusRequestEntityTooLarge:
			return NewError(ErrPayloadTooLarge, provider, apiErr.Message, err)
		case http.StatusNotFound:
			return NewError(ErrModelUnavailable, provider, apiErr.Message, err)
		default:
			if apiErr.HTTPStatusCode >= 500 {
				return NewError(ErrNetwork, provider, apiErr.Message, err)
			}
			return NewError(ErrUnknown, provider, apiErr.Message, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrNetwork, provider, "request timed out", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewError(ErrNetwork, provider, netErr.Error(), err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewError(ErrNetwork, provider, urlErr.Error(), err)
	}

	if errors.Is(err, os.ErrNotExist) {
		return NewError(ErrPathNotFound, provider, err.Error(), err)
	}

	return NewError(ErrUnknown, provider, err.Error(), err)
}
