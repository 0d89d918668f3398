package api

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Request is a single call to a JSON API.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    io.Reader
	Timeout time.Duration
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Request    *Request
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type ClientConfig struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	DialTimeout         time.Duration
	KeepAlive           time.Duration
	// RetryMaxAttempts is the number of extra attempts after a network or 5xx failure.
	RetryMaxAttempts int
	RetryBackoff     time.Duration
}

// StatusError is returned for non-2xx responses. Message is the API's own
// error text when the body carries one, the status text otherwise.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
}
