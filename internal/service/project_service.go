package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

type projectSnapshots interface {
	Projects(ctx context.Context) ([]models.Project, bool, error)
	Sites(ctx context.Context) ([]models.Site, bool, error)
}

// ProjectService lists projects with their site resolved.
type ProjectService struct {
	snapshots projectSnapshots
	logger    *zap.Logger
}

// NewProjectService constructs the service.
func NewProjectService(snapshots projectSnapshots, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{snapshots: snapshots, logger: logger}
}

// List returns every project. ProjectSite is taken from the site snapshot when siteId matches,
// falls back to the site the backend embedded, and is nil otherwise.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, bool, error) {
	projects, projectsHit, err := s.snapshots.Projects(ctx)
	if err != nil {
		return nil, false, err
	}
	sites, sitesHit, err := s.snapshots.Sites(ctx)
	if err != nil {
		return nil, false, err
	}

	index := make(map[string]models.Site, len(sites))
	for _, site := range sites {
		if _, exists := index[site.ID]; !exists {
			index[site.ID] = site
		}
	}

	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, resolveProjectSite(p, index))
	}
	return out, projectsHit && sitesHit, nil
}

func resolveProjectSite(p models.Project, sites map[string]models.Site) models.Project {
	if p.SiteID == "" && p.ProjectSite != nil {
		p.SiteID = p.ProjectSite.ID
	}
	if site, ok := sites[p.SiteID]; ok && p.SiteID != "" {
		p.ProjectSite = &site
		return p
	}
	if p.ProjectSite != nil && p.ProjectSite.ID == "" {
		p.ProjectSite = nil
	}
	return p
}
