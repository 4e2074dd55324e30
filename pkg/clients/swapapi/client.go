package swapapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnauthorized is returned on HTTP 401. It is the only machine-readable
// signal that the stored credentials are no longer accepted; callers react by
// clearing the active role's session entry. The response body is never
// decoded on this path.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConnectivity wraps transport-level failures (DNS, refused connection,
// dropped socket). Presented to the user as a generic connectivity message.
var ErrConnectivity = errors.New("could not reach the server")

// APIError is a server-reported business failure: HTTP succeeded but the
// envelope carried success:false. Message is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// apiResponse is the envelope every endpoint wraps its payload in
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (r apiResponse) ok() bool           { return r.Success }
func (r apiResponse) errMessage() string { return r.Message }

type responder interface {
	ok() bool
	errMessage() string
}

// Client is a typed client for the swap coordination REST API. Every call
// forwards the session's bearer token verbatim and tags the request with a
// fresh X-Request-Id so a double-fired action can be traced server-side.
//
// No timeout is set on the underlying http.Client; calls that must be bounded
// should pass a context with a deadline.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for the given base URL and bearer token
func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// do executes one API call and decodes the envelope into out. out must embed
// apiResponse so the success flag can be checked after decoding.
func (c *Client) do(ctx context.Context, method, path string, body any, out responder) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req)

	c.logger.Debug("API call", zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	return c.decode(resp, out)
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
}

// decode maps the HTTP response to the error taxonomy: 401 short-circuits to
// ErrUnauthorized without reading the payload, anything else is decoded as
// the standard envelope.
func (c *Client) decode(resp *http.Response, out responder) error {
	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !out.ok() {
		c.logger.Debug("API reported failure",
			zap.Int("status", resp.StatusCode),
			zap.String("message", out.errMessage()))
		return &APIError{StatusCode: resp.StatusCode, Message: out.errMessage()}
	}

	return nil
}
