package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	"github.com/noah-isme/construction-pm-api/pkg/backend"
	"github.com/noah-isme/construction-pm-api/pkg/config"
)

func TestBackendRepositoryFetchDecodesCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/equipment", r.URL.Path)
		assert.Equal(t, "s1", r.URL.Query().Get("siteId"))
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":"e1","name":"Excavator","siteId":"s1","status":"Available"}]}`)
	}))
	defer srv.Close()

	repo := NewBackendRepository(backend.New(config.BackendConfig{BaseURL: srv.URL + "/api"}))

	var equipment []models.Equipment
	err := repo.Fetch(context.Background(), models.ResourceEquipment, url.Values{"siteId": {"s1"}}, &equipment)
	require.NoError(t, err)
	require.Len(t, equipment, 1)
	assert.Equal(t, models.EquipmentAvailable, equipment[0].Status)
}

func TestBackendRepositoryCreatePostsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/materials", r.URL.Path)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cement", body["name"])
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"m9","name":"Cement","siteId":"s1","status":"LowStock","quantity":12}}`)
	}))
	defer srv.Close()

	repo := NewBackendRepository(backend.New(config.BackendConfig{BaseURL: srv.URL}))

	var created models.Material
	err := repo.Create(context.Background(), models.ResourceMaterials, map[string]interface{}{"name": "Cement"}, &created)
	require.NoError(t, err)
	assert.Equal(t, "m9", created.ID)
	assert.Equal(t, models.MaterialLowStock, created.Status)
}
