// Package apiclient is the single access point to the backend REST API. It
// attaches bearer tokens, serialises bodies and parses the uniform
// {status, data, message, meta} envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/pkg/kvstore"
	"github.com/noah-isme/edu-admin-client/pkg/metrics"
	"github.com/noah-isme/edu-admin-client/pkg/requestid"
	"github.com/noah-isme/edu-admin-client/pkg/response"

	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
)

const (
	refreshPath = "/auth/refresh"
	authPrefix  = "/auth/"
)

// Config configures a Client.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	UserAgent   string
	AutoRefresh bool
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = r }
}

// Client performs envelope-aware requests against the backend.
type Client struct {
	baseURL     string
	userAgent   string
	autoRefresh bool
	http        *http.Client
	store       kvstore.Store
	logger      *zap.Logger
	metrics     *metrics.Recorder

	refreshMu sync.Mutex
}

// New constructs a Client. Tokens are read from and persisted to store.
func New(cfg Config, store kvstore.Store, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("apiclient: base URL is required")
	}
	if store == nil {
		return nil, fmt.Errorf("apiclient: token store is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		autoRefresh: cfg.AutoRefresh,
		http:        &http.Client{Timeout: cfg.Timeout},
		store:       store,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get performs a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*response.Envelope, error) {
	return c.do(ctx, http.MethodGet, withQuery(path, query), nil)
}

// Post performs a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*response.Envelope, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*response.Envelope, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*response.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

// SetTokens persists a new token pair. An empty refresh token keeps the
// stored one.
func (c *Client) SetTokens(ctx context.Context, access, refresh string) error {
	if err := c.store.Set(ctx, kvstore.KeyAccessToken, access); err != nil {
		return fmt.Errorf("persist access token: %w", err)
	}
	if refresh != "" {
		if err := c.store.Set(ctx, kvstore.KeyRefreshToken, refresh); err != nil {
			return fmt.Errorf("persist refresh token: %w", err)
		}
	}
	return nil
}

// ClearTokens removes both tokens from durable storage.
func (c *Client) ClearTokens(ctx context.Context) error {
	if err := c.store.Delete(ctx, kvstore.KeyAccessToken, kvstore.KeyRefreshToken); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token or "".
func (c *Client) AccessToken(ctx context.Context) string {
	return c.token(ctx, kvstore.KeyAccessToken)
}

// RefreshToken returns the stored refresh token or "".
func (c *Client) RefreshToken(ctx context.Context) string {
	return c.token(ctx, kvstore.KeyRefreshToken)
}

func (c *Client) token(ctx context.Context, key string) string {
	v, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			c.logger.Warn("token store read failed", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return v
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*response.Envelope, error) {
	var env *response.Envelope
	err := c.withRefresh(ctx, path, func() (err error) {
		env, err = c.roundTrip(ctx, method, path, body)
		return err
	})
	return env, err
}

// withRefresh runs call and, when auto refresh applies, refreshes the token
// and runs it once more. A failed refresh returns the original error.
func (c *Client) withRefresh(ctx context.Context, path string, call func() error) error {
	err := call()
	if err == nil || !c.shouldRefresh(path, err) {
		return err
	}
	if rerr := c.refresh(ctx); rerr != nil {
		c.logger.Warn("token refresh failed", zap.Error(rerr))
		return err
	}
	return call()
}

func (c *Client) shouldRefresh(path string, err error) bool {
	return c.autoRefresh && !strings.HasPrefix(path, authPrefix) && appErrors.IsUnauthorized(err)
}

// refresh exchanges the stored refresh token once for a new access token.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.RefreshToken(ctx)
	if refreshToken == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "no refresh token stored")
	}
	env, err := c.roundTrip(ctx, http.MethodPost, refreshPath, map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return err
	}
	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(env.Data, &tokens); err != nil || tokens.AccessToken == "" {
		return appErrors.Clone(appErrors.ErrUnauthorized, "refresh returned no access token")
	}
	return c.SetTokens(ctx, tokens.AccessToken, tokens.RefreshToken)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body interface{}) (*response.Envelope, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(method, path, start, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(method, path, start, err)
	}
	c.observe(req, resp.StatusCode, start)

	env, err := decodeEnvelope(resp.StatusCode, raw)
	if err != nil {
		c.fail(method, path, err)
		return nil, err
	}
	return env, nil
}

// decodeEnvelope turns a raw response into an envelope or a typed error.
func decodeEnvelope(status int, raw []byte) (*response.Envelope, error) {
	fallback := http.StatusText(status)
	if fallback == "" {
		fallback = "request failed"
	}
	success := status >= 200 && status < 300

	if len(bytes.TrimSpace(raw)) == 0 {
		if success {
			return &response.Envelope{Status: response.StatusSuccess}, nil
		}
		return nil, appErrors.FromStatus(status, "", fallback)
	}

	var env response.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if success {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "invalid response from server")
		}
		return nil, appErrors.FromStatus(status, "", fallback)
	}

	if !success || !env.OK() {
		appErr := appErrors.FromStatus(status, env.Message, fallback)
		appErr.Fields = env.Errors
		return nil, appErr
	}
	return &env, nil
}

// Download fetches a binary resource, bypassing the JSON envelope. A 401
// takes the same refresh path as JSON calls.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (*Download, error) {
	var dl *Download
	err := c.withRefresh(ctx, path, func() (err error) {
		dl, err = c.download(ctx, withQuery(path, query))
		return err
	})
	return dl, err
}

func (c *Client) download(ctx context.Context, full string) (*Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, full, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf, application/octet-stream, */*")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(http.MethodGet, full, start, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(http.MethodGet, full, start, err)
	}
	c.observe(req, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, derr := decodeEnvelope(resp.StatusCode, raw)
		if derr == nil {
			derr = appErrors.FromStatus(resp.StatusCode, "", "download failed")
		}
		c.fail(http.MethodGet, full, derr)
		return nil, derr
	}

	c.metrics.AddDownloadBytes(len(raw))
	return &Download{
		Data:        raw,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
	}, nil
}

// Download is a raw binary payload.
type Download struct {
	Data        []byte
	ContentType string
	Filename    string
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build request")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set(requestid.Header, requestid.Ensure(ctx))
	if token := c.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) transportError(method, path string, start time.Time, err error) error {
	c.metrics.ObserveRequest(method, routeLabel(path), 0, time.Since(start))
	appErr := appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "unable to reach the server")
	c.fail(method, path, appErr)
	return appErr
}

func (c *Client) observe(req *http.Request, status int, start time.Time) {
	latency := time.Since(start)
	c.metrics.ObserveRequest(req.Method, routeLabel(req.URL.Path), status, latency)
	c.logger.Debug("api_request",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", status),
		zap.Duration("latency", latency),
		zap.String("request_id", req.Header.Get(requestid.Header)),
	)
}

func (c *Client) fail(method, path string, err error) {
	appErr := appErrors.FromError(err)
	c.metrics.RecordError(appErr.Code)
	c.logger.Warn("api_request_failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("code", appErr.Code),
		zap.Int("status", appErr.Status),
		zap.String("message", appErr.Message),
	)
}

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + query.Encode()
}

var numericSegment = regexp.MustCompile(`/\d+(/|$)`)

// routeLabel collapses numeric path segments so metrics keep low cardinality.
func routeLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	for numericSegment.MatchString(path) {
		path = numericSegment.ReplaceAllString(path, "/:id$1")
	}
	return path
}

func filenameFrom(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
