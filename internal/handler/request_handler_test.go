package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type fakeRequestSrv struct {
	requests   []models.EnrichedRequest
	approvals  []models.EnrichedApproval
	lastStatus string
	err        error
}

func (f *fakeRequestSrv) Requests(_ context.Context, status string) ([]models.EnrichedRequest, bool, error) {
	f.lastStatus = status
	return f.requests, true, f.err
}

func (f *fakeRequestSrv) Approvals(_ context.Context, status string) ([]models.EnrichedApproval, bool, error) {
	f.lastStatus = status
	return f.approvals, false, f.err
}

type fakeProjectSrv struct {
	projects []models.Project
	err      error
}

func (f *fakeProjectSrv) List(context.Context) ([]models.Project, bool, error) {
	return f.projects, false, f.err
}

func TestRequestHandlerRequestsForwardsStatus(t *testing.T) {
	srv := &fakeRequestSrv{requests: []models.EnrichedRequest{{ID: "r1", Status: "Pending"}}}
	handler := NewRequestHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/api/v1/requests?status=pending", "")

	handler.Requests(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", srv.lastStatus)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env.Meta["cache_hit"])
}

func TestRequestHandlerApprovalsUpstreamError(t *testing.T) {
	handler := NewRequestHandler(&fakeRequestSrv{err: appErrors.Clone(appErrors.ErrUpstream, "backend approvals returned 500")})
	c, rec := newTestContext(http.MethodGet, "/api/v1/approvals", "")

	handler.Approvals(c)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestProjectHandlerList(t *testing.T) {
	handler := NewProjectHandler(&fakeProjectSrv{projects: []models.Project{{ID: "p1", Name: "Bridge", ProjectSite: &models.Site{ID: "s1", Name: "River"}}}})
	c, rec := newTestContext(http.MethodGet, "/api/v1/projects", "")

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "River", projects[0].ProjectSite.Name)
}
