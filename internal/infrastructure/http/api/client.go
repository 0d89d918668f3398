package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"weblarek/pkg/logger"
)

// Client is a thin JSON-over-HTTP wrapper rooted at a base URL.
type Client struct {
	baseURL string
	client  *http.Client
	config  ClientConfig
	log     logger.Logger
}

func NewClient(baseURL string, config ClientConfig, log logger.Logger) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.DialTimeout == 0 {
		config.DialTimeout = 5 * time.Second
	}
	if config.KeepAlive == 0 {
		config.KeepAlive = 30 * time.Second
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}
	if config.RetryBackoff == 0 {
		config.RetryBackoff = time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		config:  config,
		log:     log,
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   config.DialTimeout,
					KeepAlive: config.KeepAlive,
				}).DialContext,
				MaxIdleConns:        config.MaxIdleConns,
				MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
			},
		},
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get decodes the JSON answer of GET base+uri into out.
func (c *Client) Get(ctx context.Context, uri string, out any) error {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		URL:     c.baseURL + uri,
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// Post sends body as JSON and decodes the answer into out.
func (c *Client) Post(ctx context.Context, uri string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	resp, err := c.Do(ctx, &Request{
		Method: http.MethodPost,
		URL:    c.baseURL + uri,
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
		},
		Body: bytes.NewReader(payload),
	})
	if err != nil {
		return err
	}
	return decode(resp, out)
}

// Do runs req, retrying network failures and 5xx answers up to RetryMaxAttempts times.
// Any non-2xx final answer becomes a *StatusError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		body = b
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * c.config.RetryBackoff
			c.log.Warn("retrying api request",
				logger.String("method", req.Method),
				logger.String("url", req.URL),
				logger.Int("attempt", attempt),
				logger.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.doRequest(ctx, req, body)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.OK() {
			return resp, nil
		}

		lastErr = statusError(resp)
		if resp.StatusCode < 500 {
			return resp, lastErr
		}
	}

	if c.config.RetryMaxAttempts == 0 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", c.config.RetryMaxAttempts+1, lastErr)
}

func (c *Client) doRequest(ctx context.Context, req *Request, body []byte) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       bodyBytes,
		Request:    req,
	}, nil
}

func statusError(resp *Response) *StatusError {
	msg := http.StatusText(resp.StatusCode)
	if gjson.ValidBytes(resp.Body) {
		if e := gjson.GetBytes(resp.Body, "error"); e.Exists() && e.String() != "" {
			msg = e.String()
		}
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}

func decode(resp *Response, out any) error {
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
