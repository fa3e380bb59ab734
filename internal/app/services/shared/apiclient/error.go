package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrUnexpectedStatus is the cause of every Error built from a non-2xx reply.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Error is returned by every API call that fails. StatusCode is zero when
// no response was received.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Timeout    bool
	Body       []byte
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: status %d: %v", e.Method, e.URL, e.StatusCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsClientError reports a 4xx reply from the upstream.
func (e *Error) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

func newTransportError(method, rawURL string, err error) *Error {
	return &Error{
		Method:  method,
		URL:     rawURL,
		Timeout: isTimeout(err),
		Err:     err,
	}
}

func newStatusError(method, rawURL string, statusCode int, body []byte) *Error {
	return &Error{
		Method:     method,
		URL:        rawURL,
		StatusCode: statusCode,
		Body:       body,
		Err:        ErrUnexpectedStatus,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
