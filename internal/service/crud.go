package service

import (
	"context"
	"net/http"

	"github.com/noah-isme/edu-admin-client/internal/endpoints"
	"github.com/noah-isme/edu-admin-client/internal/models"
)

// crud implements the list/get/create/update/delete contract shared by every
// resource served at /{scope}/{resource}[/:id].
type crud[T, F, I any] struct {
	base
	resource string
	singular string
}

func newCRUD[T, F, I any](client apiClient, resource, singular string, opts []Option) crud[T, F, I] {
	return crud[T, F, I]{base: newBase(client, opts), resource: resource, singular: singular}
}

func (c crud[T, F, I]) collection() string {
	return endpoints.Collection(c.scope, c.resource)
}

func (c crud[T, F, I]) item(id int64) string {
	return endpoints.Item(c.scope, c.resource, id)
}

// List returns one page of the collection matching filter.
func (c crud[T, F, I]) List(ctx context.Context, filter F) (*models.PaginatedResponse[T], error) {
	return fetchPage[T](ctx, c.base, c.collection(), filter, "failed to load "+c.resource)
}

// Get returns a single record.
func (c crud[T, F, I]) Get(ctx context.Context, id int64) (*T, error) {
	if id <= 0 {
		return nil, c.invalidID(c.singular)
	}
	return fetchOne[T](ctx, c.base, c.item(id), nil, c.singular+" not found")
}

// Create persists a new record and returns it as stored.
func (c crud[T, F, I]) Create(ctx context.Context, input I) (*T, error) {
	return send[T](ctx, c.base, http.MethodPost, c.collection(), input, "failed to create "+c.singular)
}

// Update replaces the editable fields of a record.
func (c crud[T, F, I]) Update(ctx context.Context, id int64, input I) (*T, error) {
	if id <= 0 {
		return nil, c.invalidID(c.singular)
	}
	return send[T](ctx, c.base, http.MethodPut, c.item(id), input, "failed to update "+c.singular)
}

// Delete removes a record. Backend rejections surface with their message.
func (c crud[T, F, I]) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return c.invalidID(c.singular)
	}
	if _, err := c.client.Delete(ctx, c.item(id)); err != nil {
		return c.fail(err, "failed to delete "+c.singular)
	}
	return nil
}

// action posts body to /{scope}/{resource}/{id}/{name} and decodes R.
func action[R, T, F, I any](ctx context.Context, c crud[T, F, I], method string, id int64, name string, body interface{}, fallback string) (*R, error) {
	if id <= 0 {
		return nil, c.invalidID(c.singular)
	}
	return send[R](ctx, c.base, method, endpoints.Action(c.scope, c.resource, id, name), body, fallback)
}
