// Package api implements the remote sync adapter over the task service's
// REST interface. It translates HTTP failures into the typed errors the
// use case layer dispatches on.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// defaultTimeout bounds every request in addition to the caller's context.
const defaultTimeout = 30 * time.Second

// TokenFunc returns the current bearer token, or "" when unauthenticated.
// Indirection keeps the client valid across login and logout.
type TokenFunc func() string

// Client is the shared HTTP client behind the task, auth, profile,
// analytics and chat adapters.
// Fields are ordered to minimize memory padding.
type Client struct {
	httpClient *http.Client
	logger     domain.Logger
	token      TokenFunc
	baseURL    string
}

// NewClient creates a Client for the given server base URL.
// baseURL must include the scheme, e.g. "http://localhost:8000".
func NewClient(baseURL string, token TokenFunc, logger domain.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured server base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// url joins the base URL with a path.
func (c *Client) url(path string) string {
	return c.baseURL + path
}

// detailBody is the error envelope the server wraps failures in.
type detailBody struct {
	Detail string `json:"detail"`
}

// getJSON issues a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out (which may be nil when the body is irrelevant).
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// postForm issues a form-encoded POST and decodes the response into out.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// do attaches the bearer token, executes the request and maps the
// response. Non-2xx statuses become typed errors; 2xx bodies are decoded
// into out when out is non-nil.
func (c *Client) do(req *http.Request, out any) error {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", req.Method, "url", req.URL.String(), "error", err)
		return &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// statusError converts a non-2xx response into the matching typed error.
func (c *Client) statusError(resp *http.Response) error {
	detail := readDetail(resp.Body)
	c.logger.Debug("request rejected",
		"method", resp.Request.Method,
		"url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"detail", detail)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &domain.AuthError{Message: detail}
	case http.StatusNotFound:
		return &domain.NotFoundError{Resource: "resource"}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if detail == "" {
			detail = "request rejected by server"
		}
		return &domain.ValidationError{Message: detail}
	default:
		if detail == "" {
			detail = resp.Status
		}
		return &domain.NetworkError{Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)}
	}
}

// readDetail extracts the "detail" field from an error body. The server
// sometimes returns structured validation details; those are flattened
// to their JSON form.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body detailBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	var generic struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &generic); err == nil && len(generic.Detail) > 0 {
		return string(generic.Detail)
	}
	return ""
}
