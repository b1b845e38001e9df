// Package apiclient issues every backend call for the portal: it attaches
// the session's bearer token, unwraps the {success, message, data}
// envelope and turns 401/403 into a forced logout.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"internhub/internal/metrics"
)

// ErrSessionExpired is returned after the backend rejected the token.
// By then the session has already been cleared.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError is a non-2xx answer other than 401/403.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Credentials is the part of a session the client needs.
type Credentials interface {
	Token() string
	Clear()
}

// Client calls the REST backend. It never retries and sets no timeout of
// its own; the caller's context bounds each call.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	creds         Credentials
	onAuthFailure func()
	logger        *zap.Logger
	expireOnce    sync.Once
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTP = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// OnAuthFailure registers the action taken after a 401/403, typically
// sending the user back to the login view. It runs at most once per client,
// possibly on a fan-out goroutine, so it must not touch the inbound request.
func OnAuthFailure(fn func()) Option {
	return func(c *Client) { c.onAuthFailure = fn }
}

// New creates a client bound to one session. creds may be nil for the
// unauthenticated login and register calls.
func New(baseURL string, creds Credentials, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{},
		creds:   creds,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FilePart is the file half of a multipart upload.
type FilePart struct {
	Field    string
	Filename string
	Content  io.Reader
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, out)
}

// Raw performs a JSON request and returns the unwrapped payload undecoded.
func (c *Client) Raw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	reader, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	respBody, _, err := c.send(ctx, method, path, reader, "application/json")
	if err != nil {
		return nil, err
	}
	return unwrap(respBody)
}

// Upload sends a multipart form. The Content-Type carries the form
// boundary, so no JSON content type is set.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, file FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return fmt.Errorf("write field %s: %w", k, err)
		}
	}

	field := file.Field
	if field == "" {
		field = "file"
	}
	part, err := w.CreateFormFile(field, file.Filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	respBody, _, err := c.send(ctx, http.MethodPost, path, &buf, w.FormDataContentType())
	if err != nil {
		return err
	}
	return decodeInto(respBody, out)
}

// Text returns a non-JSON body, such as rendered HTML, as a string. A JSON
// answer is unwrapped and must then hold a string.
func (c *Client) Text(ctx context.Context, path string) (string, error) {
	respBody, contentType, err := c.send(ctx, http.MethodGet, path, nil, "application/json")
	if err != nil {
		return "", err
	}
	if !strings.Contains(contentType, "json") {
		return string(respBody), nil
	}
	data, err := unwrap(respBody)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var wrapped struct {
			HTML string `json:"html"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil || wrapped.HTML == "" {
			return "", fmt.Errorf("decode text response: %w", err)
		}
		return wrapped.HTML, nil
	}
	return s, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := c.Raw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// send issues one request and classifies the status. On success it returns
// the body and the response content type.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.creds != nil {
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	metrics.BackendLatency.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.BackendRequests.WithLabelValues(method, "error").Inc()
		c.logger.Warn("backend request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, "", fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.BackendRequests.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.expire(method, path, resp.StatusCode)
		return nil, "", ErrSessionExpired
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		msg := errorMessage(respBody, resp.StatusCode)
		c.logger.Debug("backend error", zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return nil, "", &APIError{Status: resp.StatusCode, Message: msg}
	}

	c.logger.Debug("backend call", zap.String("method", method), zap.String("path", path), zap.Int("status", resp.StatusCode))
	return respBody, resp.Header.Get("Content-Type"), nil
}

// expire clears the credentials and runs the auth-failure hook, once per
// client however many concurrent calls were rejected.
func (c *Client) expire(method, path string, status int) {
	c.logger.Info("backend rejected session", zap.String("method", method), zap.String("path", path), zap.Int("status", status))
	c.expireOnce.Do(func() {
		if c.creds != nil {
			metrics.SessionsExpired.Inc()
			c.creds.Clear()
		}
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	})
}

func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	return bytes.NewReader(raw), nil
}

func decodeInto(respBody []byte, out any) error {
	data, err := unwrap(respBody)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
