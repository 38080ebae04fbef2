// Package commerce is a typed client for the remote commerce API.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client // optional; overrides Timeout
}

// Client calls the commerce API. It is safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	locale  string
	http    *http.Client
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    hc,
	}
}

// WithLocale returns a copy of the client that requests localized content.
func (c *Client) WithLocale(locale string) *Client {
	cp := *c
	cp.locale = locale
	return &cp
}

// Locale returns the locale the client requests, if any.
func (c *Client) Locale() string {
	return c.locale
}

// APIError is a non-2xx answer from the commerce API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("commerce api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("commerce api: %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the commerce API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsClientError reports whether err is a 4xx answer the customer can act on.
func IsClientError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type requestOptions struct {
	query   url.Values
	body    any
	headers map[string]string
}

func (c *Client) do(ctx context.Context, method, path string, opts requestOptions, out any) error {
	endpoint := c.baseURL + path
	if len(opts.query) > 0 {
		endpoint += "?" + opts.query.Encode()
	}

	var body io.Reader
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var payload struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		if len(payload.Error) > 0 {
			// "error" is either a string or {"code", "message"}.
			var msg string
			if json.Unmarshal(payload.Error, &msg) == nil {
				apiErr.Message = msg
			} else {
				_ = json.Unmarshal(payload.Error, apiErr)
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
