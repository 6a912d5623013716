// Package backend is a typed client for the construction-management REST backend. Every
// endpoint answers with a {success, data} envelope.
package backend

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

	"github.com/noah-isme/construction-pm-api/pkg/config"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/middleware/requestid"
)

const maxErrorBody = 2048

// ErrUnsuccessful is wrapped when the backend answers 2xx with success=false.
var ErrUnsuccessful = errors.New("backend reported success=false")

// StatusError describes a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Observer receives timing for every upstream call.
type Observer interface {
	ObserveUpstream(resource string, status int, duration time.Duration)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type authKey struct{}

// WithAuthorization stores the caller's Authorization header so it is forwarded upstream.
func WithAuthorization(ctx context.Context, header string) context.Context {
	if header == "" {
		return ctx
	}
	return context.WithValue(ctx, authKey{}, header)
}

func authorizationFrom(ctx context.Context) string {
	v, _ := ctx.Value(authKey{}).(string)
	return v
}

// Client performs typed calls against the backend.
type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	observer Observer
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithObserver attaches an upstream timing observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// New constructs a Client for the configured backend.
func New(cfg config.BackendConfig, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List GETs path and decodes the envelope's data array into dest.
func (c *Client) List(ctx context.Context, path string, query url.Values, dest interface{}) error {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, target, nil, dest)
}

// Create POSTs a form submission and decodes the created record into dest.
func (c *Client) Create(ctx context.Context, path string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return appErrors.WrapAs(err, appErrors.ErrInternal, "failed to encode backend payload")
	}
	return c.do(ctx, http.MethodPost, path, body, dest)
}

// Ping checks the backend is reachable; any HTTP answer counts.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return appErrors.WrapAs(err, appErrors.ErrUpstreamUnavailable, "")
	}
	_ = resp.Body.Close()
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, dest interface{}) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.WrapAs(err, appErrors.ErrInternal, "failed to build backend request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := authorizationFrom(ctx); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	if reqID := requestid.FromContext(ctx); reqID != "" {
		req.Header.Set(requestid.HeaderKey, reqID)
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(resource, 0, time.Since(start))
		return appErrors.WrapAs(err, appErrors.ErrUpstreamUnavailable, fmt.Sprintf("backend %s unreachable", resource))
	}
	defer resp.Body.Close()
	c.observe(resource, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.WrapAs(err, appErrors.ErrUpstream, fmt.Sprintf("failed to read backend %s response", resource))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: truncate(raw)}
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return appErrors.WrapAs(statusErr, appErrors.ErrNotFound, fmt.Sprintf("%s not found", resource))
		case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
			return appErrors.WrapAs(statusErr, appErrors.ErrValidation, messageFrom(raw, "backend rejected payload"))
		case resp.StatusCode >= 500:
			return appErrors.WrapAs(statusErr, appErrors.ErrUpstreamUnavailable, fmt.Sprintf("backend %s failed", resource))
		default:
			return appErrors.WrapAs(statusErr, appErrors.ErrUpstream, fmt.Sprintf("backend %s returned %d", resource, resp.StatusCode))
		}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return appErrors.WrapAs(err, appErrors.ErrUpstream, fmt.Sprintf("malformed backend %s envelope", resource))
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("backend %s request unsuccessful", resource)
		}
		return appErrors.WrapAs(ErrUnsuccessful, appErrors.ErrUpstream, msg)
	}
	if dest == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, dest); err != nil {
		return appErrors.WrapAs(err, appErrors.ErrUpstream, fmt.Sprintf("malformed backend %s data", resource))
	}
	return nil
}

func (c *Client) observe(resource string, status int, d time.Duration) {
	if c.observer != nil {
		c.observer.ObserveUpstream(resource, status, d)
	}
}

// resourceLabel keeps metric cardinality bounded: "/equipment/42?x=1" -> "equipment".
func resourceLabel(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(path, "/?"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}

func messageFrom(raw []byte, fallback string) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return fallback
}

func truncate(raw []byte) string {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return strings.TrimSpace(string(raw))
}
