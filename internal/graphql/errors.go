package graphql

import (
	"errors"
	"fmt"
)

var errMissingData = errors.New("response has no data")

// RequestFailedError is returned for any failed query: transport failure,
// non-200 status or an absent data envelope. There is no partial success.
type RequestFailedError struct {
	Operation  string
	ID         string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *RequestFailedError) Error() string {
	msg := fmt.Sprintf("graphql request failed: operation=%s id=%s", e.Operation, e.ID)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" status=%d", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RequestFailedError) Unwrap() error { return e.Err }
