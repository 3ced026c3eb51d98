package provider

import (
	"context"
	"errors"
	"net/http"

	"github.com/Digital-Shane/imdbkit/internal/graphql"
	"github.com/Digital-Shane/imdbkit/internal/imageurl"
	"github.com/Digital-Shane/imdbkit/internal/page"
	"github.com/Digital-Shane/imdbkit/internal/transport"
)

// Error codes carried by ProviderError.
const (
	CodeTransportFailed = "TRANSPORT_FAILED"
	CodeRequestFailed   = "REQUEST_FAILED"
	CodeNotFound        = "NOT_FOUND"
	CodeHTTPStatus      = "HTTP_STATUS"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeUnknown         = "UNKNOWN"
)

// ErrNotFound signals that a lookup succeeded but carried no identity.
var ErrNotFound = errors.New("record not found")

// ProviderError represents an error from a provider
type ProviderError struct {
	Provider   string
	Code       string
	Message    string
	Retry      bool
	RetryAfter int // Seconds to wait before retry
	Err        error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error { return e.Err }

// MapError folds the typed failures of the lower layers into a
// ProviderError. Context errors pass through untouched. Retry is only a hint;
// nothing in this module retries.
func MapError(providerName string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe
	}

	out := &ProviderError{Provider: providerName, Code: CodeUnknown, Message: err.Error(), Err: err}

	var (
		te  *transport.Error
		rfe *graphql.RequestFailedError
		hse *page.HTTPStatusError
		ve  *imageurl.ValidationError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		out.Code = CodeNotFound
	case errors.As(err, &ve):
		out.Code = CodeInvalidRequest
	case errors.As(err, &rfe):
		out.Code = CodeRequestFailed
		switch {
		case errors.As(err, &te):
			out.Code = CodeTransportFailed
			out.Retry = true
		case rfe.StatusCode == http.StatusNotFound:
			out.Code = CodeNotFound
		case rfe.StatusCode == http.StatusTooManyRequests:
			out.Code = CodeRateLimited
			out.Retry = true
			out.RetryAfter = 5
		case rfe.StatusCode >= 500:
			out.Retry = true
		}
	case errors.As(err, &hse):
		out.Code = CodeHTTPStatus
		switch {
		case hse.StatusCode == http.StatusNotFound:
			out.Code = CodeNotFound
		case hse.StatusCode == http.StatusTooManyRequests:
			out.Code = CodeRateLimited
			out.Retry = true
			out.RetryAfter = 5
		case hse.StatusCode >= 500:
			out.Retry = true
		}
	case errors.As(err, &te):
		out.Code = CodeTransportFailed
		out.Retry = true
	}
	return out
}
