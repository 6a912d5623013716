package repository

import (
	"context"
	"net/url"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

type backendClient interface {
	List(ctx context.Context, path string, query url.Values, dest interface{}) error
	Create(ctx context.Context, path string, payload, dest interface{}) error
	Ping(ctx context.Context) error
}

// BackendRepository reads and writes resource collections on the REST backend.
type BackendRepository struct {
	client backendClient
}

// NewBackendRepository wraps a backend client.
func NewBackendRepository(client backendClient) *BackendRepository {
	return &BackendRepository{client: client}
}

// Fetch loads a full collection snapshot into dest, which must point at a slice.
func (r *BackendRepository) Fetch(ctx context.Context, kind models.ResourceKind, query url.Values, dest interface{}) error {
	return r.client.List(ctx, kind.Path(), query, dest)
}

// Create submits a new record to the collection and decodes the stored record into dest.
func (r *BackendRepository) Create(ctx context.Context, kind models.ResourceKind, payload, dest interface{}) error {
	return r.client.Create(ctx, kind.Path(), payload, dest)
}

// Ping checks the backend is reachable.
func (r *BackendRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}
