package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/pkg/config"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type site struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type recordingObserver struct {
	resource string
	status   int
}

func (o *recordingObserver) ObserveUpstream(resource string, status int, _ time.Duration) {
	o.resource = resource
	o.status = status
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.BackendConfig{BaseURL: srv.URL + "/api/", APIKey: "key-1", Timeout: time.Second}, opts...)
}

func TestListDecodesEnvelope(t *testing.T) {
	obs := &recordingObserver{}
	var gotAuth, gotKey, gotQuery, gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("X-API-Key")
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":"s1","name":"North Yard"}]}`))
	}, WithObserver(obs))

	ctx := WithAuthorization(context.Background(), "Bearer abc")
	var sites []site
	err := client.List(ctx, "/sites", url.Values{"status": {"active"}}, &sites)

	require.NoError(t, err)
	assert.Equal(t, []site{{ID: "s1", Name: "North Yard"}}, sites)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "key-1", gotKey)
	assert.Equal(t, "status=active", gotQuery)
	assert.Equal(t, "/api/sites", gotPath)
	assert.Equal(t, "sites", obs.resource)
	assert.Equal(t, http.StatusOK, obs.status)
}

func TestListNullDataLeavesDestination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	var sites []site
	require.NoError(t, client.List(context.Background(), "sites", nil, &sites))
	assert.Nil(t, sites)
}

func TestListUnsuccessfulEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"token expired"}`))
	})

	var sites []site
	err := client.List(context.Background(), "/sites", nil, &sites)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsuccessful))
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, "token expired", appErr.Message)
}

func TestListMapsStatusCodes(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{http.StatusNotFound, appErrors.ErrNotFound.Code},
		{http.StatusUnprocessableEntity, appErrors.ErrValidation.Code},
		{http.StatusBadGateway, appErrors.ErrUpstreamUnavailable.Code},
		{http.StatusForbidden, appErrors.ErrUpstream.Code},
	}
	for _, tc := range cases {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			_, _ = w.Write([]byte(`{"success":false}`))
		})
		err := client.List(context.Background(), "/equipment", nil, &[]site{})
		require.Error(t, err)
		assert.Equal(t, tc.code, appErrors.FromError(err).Code, "status %d", tc.status)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, tc.status, statusErr.StatusCode)
	}
}

func TestCreatePostsJSON(t *testing.T) {
	var received map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"s9","name":"Depot"}}`))
	})

	var created site
	err := client.Create(context.Background(), "/sites", map[string]string{"name": "Depot"}, &created)

	require.NoError(t, err)
	assert.Equal(t, "Depot", received["name"])
	assert.Equal(t, site{ID: "s9", Name: "Depot"}, created)
}

func TestListUnreachableBackend(t *testing.T) {
	client := New(config.BackendConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	err := client.List(context.Background(), "/sites", nil, &[]site{})

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUpstreamUnavailable.Code, appErrors.FromError(err).Code)
}

func TestResourceLabel(t *testing.T) {
	assert.Equal(t, "equipment", resourceLabel("/equipment/42"))
	assert.Equal(t, "labor", resourceLabel("/labor?siteId=1"))
	assert.Equal(t, "root", resourceLabel("/"))
}
