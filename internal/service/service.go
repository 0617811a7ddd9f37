// Package service holds one typed wrapper per backend resource. Every method
// is a single round trip through the API client; nothing is retried.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
	"github.com/noah-isme/edu-admin-client/pkg/apiclient"
	appErrors "github.com/noah-isme/edu-admin-client/pkg/errors"
	"github.com/noah-isme/edu-admin-client/pkg/query"
	"github.com/noah-isme/edu-admin-client/pkg/response"
)

// apiClient is the part of apiclient.Client the services depend on.
type apiClient interface {
	Get(ctx context.Context, path string, query url.Values) (*response.Envelope, error)
	Post(ctx context.Context, path string, body interface{}) (*response.Envelope, error)
	Put(ctx context.Context, path string, body interface{}) (*response.Envelope, error)
	Delete(ctx context.Context, path string) (*response.Envelope, error)
	Download(ctx context.Context, path string, query url.Values) (*apiclient.Download, error)
}

// Option customises a service.
type Option func(*base)

// WithLogger sets the service logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithPerPage overrides the page size reported when the backend omits meta.
func WithPerPage(n int) Option {
	return func(b *base) {
		if n > 0 {
			b.perPage = n
		}
	}
}

// WithScope serves the resource under the given panel prefix.
func WithScope(scope endpoints.Scope) Option {
	return func(b *base) {
		if scope != "" {
			b.scope = scope
		}
	}
}

// WithValidator shares a validator instance.
func WithValidator(v *validator.Validate) Option {
	return func(b *base) {
		if v != nil {
			b.validate = v
		}
	}
}

type base struct {
	client   apiClient
	logger   *zap.Logger
	validate *validator.Validate
	perPage  int
	scope    endpoints.Scope
}

func newBase(client apiClient, opts []Option) base {
	b := base{
		client:  client,
		logger:  zap.NewNop(),
		perPage: models.DefaultPerPage,
		scope:   endpoints.ScopeAdmin,
	}
	for _, opt := range opts {
		opt(&b)
	}
	if b.validate == nil {
		b.validate = validator.New()
	}
	return b
}

// fail keeps typed client errors and their backend message. A missing
// message, or the bare HTTP status text, is replaced by fallback.
func (b base) fail(err error, fallback string) error {
	if err == nil {
		return nil
	}
	var appErr *appErrors.Error
	if !errors.As(err, &appErr) {
		appErr = appErrors.Wrap(err, appErrors.ErrFetch.Code, appErrors.ErrFetch.Status, fallback)
	} else if appErr.Message == "" || appErr.Message == http.StatusText(appErr.Status) {
		appErr = appErrors.Clone(appErr, fallback)
	}
	b.logger.Debug("api call failed",
		zap.String("code", appErr.Code),
		zap.Int("status", appErr.Status),
		zap.String("message", appErr.Message),
	)
	return appErr
}

func (b base) invalidID(label string) error {
	return appErrors.Clone(appErrors.ErrValidation, "invalid "+label+" id")
}

func (b base) check(payload interface{}, message string) error {
	if err := b.validate.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message)
	}
	return nil
}

// decode projects the envelope payload into T.
func decode[T any](env *response.Envelope) (*T, error) {
	if !env.HasData() {
		return nil, appErrors.Clone(appErrors.ErrInternal, "response carried no data")
	}
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "invalid response payload")
	}
	return &out, nil
}

// fetchOne issues a GET and decodes the payload as T. A success envelope
// without data means the record is absent.
func fetchOne[T any](ctx context.Context, b base, path string, q url.Values, fallback string) (*T, error) {
	env, err := b.client.Get(ctx, path, q)
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	if !env.HasData() {
		return nil, b.fail(appErrors.Clone(appErrors.ErrNotFound, fallback), fallback)
	}
	out, err := decode[T](env)
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	return out, nil
}

// send issues a POST or PUT and decodes the payload as T.
func send[T any](ctx context.Context, b base, method, path string, body interface{}, fallback string) (*T, error) {
	var (
		env *response.Envelope
		err error
	)
	if method == http.MethodPut {
		env, err = b.client.Put(ctx, path, body)
	} else {
		env, err = b.client.Post(ctx, path, body)
	}
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	out, err := decode[T](env)
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	return out, nil
}

// fetchPage lists a collection, encoding filter into the query string and
// normalising whatever paging shape the backend used.
func fetchPage[T any](ctx context.Context, b base, path string, filter interface{}, fallback string) (*models.PaginatedResponse[T], error) {
	env, err := b.client.Get(ctx, path, query.Encode(filter))
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	perPage := b.perPage
	if sized, ok := filter.(interface{ PageSize() int }); ok && sized.PageSize() > 0 {
		perPage = sized.PageSize()
	}
	page, err := toPage[T](env, perPage)
	if err != nil {
		return nil, b.fail(err, fallback)
	}
	return page, nil
}

// nestedPage is the paginator object some endpoints return inside data.
type nestedPage[T any] struct {
	Data        []T            `json:"data"`
	CurrentPage int            `json:"current_page"`
	LastPage    int            `json:"last_page"`
	PerPage     int            `json:"per_page"`
	Total       int            `json:"total"`
	Meta        *response.Meta `json:"meta"`
}

func toPage[T any](env *response.Envelope, perPage int) (*models.PaginatedResponse[T], error) {
	page := models.NewPage[T](nil, perPage)
	meta := env.Meta
	if env.HasData() {
		raw := env.Data
		if len(raw) > 0 && raw[0] == '{' {
			var nested nestedPage[T]
			if err := json.Unmarshal(raw, &nested); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "invalid list payload")
			}
			if nested.Data != nil {
				page.Data = nested.Data
			}
			if meta == nil {
				meta = nested.Meta
			}
			if meta == nil && nested.CurrentPage > 0 {
				meta = &response.Meta{CurrentPage: nested.CurrentPage, LastPage: nested.LastPage, PerPage: nested.PerPage, Total: nested.Total}
			}
		} else {
			var items []T
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "invalid list payload")
			}
			if items != nil {
				page.Data = items
			}
		}
	}
	if meta != nil {
		if meta.CurrentPage > 0 {
			page.CurrentPage = meta.CurrentPage
		}
		if meta.LastPage > 0 {
			page.LastPage = meta.LastPage
		}
		if meta.PerPage > 0 {
			page.PerPage = meta.PerPage
		}
		page.Total = meta.Total
	}
	return page, nil
}
