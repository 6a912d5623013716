package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type announcementRepository interface {
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	MarkRead(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// AnnouncementStore keeps the announcement list in memory and writes every mutation through
// to the repository before applying it locally. Call Load once before serving reads.
type AnnouncementStore struct {
	repo      announcementRepository
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time

	mu     sync.RWMutex
	items  []models.Announcement
	loaded bool
}

// NewAnnouncementStore constructs an empty store.
func NewAnnouncementStore(repo announcementRepository, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *AnnouncementStore {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &AnnouncementStore{repo: repo, validator: validate, metrics: metrics, logger: logger, now: time.Now}
	mustRegisterValidation(store.validator, "priority", func(fl validator.FieldLevel) bool {
		switch models.AnnouncementPriority(strings.ToUpper(fl.Field().String())) {
		case models.AnnouncementPriorityLow, models.AnnouncementPriorityNormal, models.AnnouncementPriorityHigh:
			return true
		default:
			return false
		}
	})
	return store
}

// Load replaces the in-memory list with the persisted one.
func (s *AnnouncementStore) Load(ctx context.Context) error {
	start := time.Now()
	items, err := s.repo.List(ctx)
	s.metrics.ObserveDBQuery("announcements_list", time.Since(start))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load announcements")
	}
	if items == nil {
		items = []models.Announcement{}
	}
	s.mu.Lock()
	s.items = items
	s.loaded = true
	s.mu.Unlock()
	s.logger.Info("announcements loaded", zap.Int("count", len(items)))
	return nil
}

// Loaded reports whether Load has succeeded at least once.
func (s *AnnouncementStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// All returns every announcement, newest first.
func (s *AnnouncementStore) All() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Announcement, len(s.items))
	copy(out, s.items)
	return out
}

// Unread returns the announcements not yet marked read.
func (s *AnnouncementStore) Unread() []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Announcement, 0, len(s.items))
	for _, item := range s.items {
		if !item.Read {
			out = append(out, item)
		}
	}
	return out
}

// Add persists a new announcement and puts it at the head of the list.
func (s *AnnouncementStore) Add(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	priority := models.AnnouncementPriority(strings.ToUpper(req.Priority))
	if priority == "" {
		priority = models.AnnouncementPriorityNormal
	}
	announcement := models.Announcement{
		Title:     strings.TrimSpace(req.Title),
		Message:   req.Message,
		Priority:  priority,
		CreatedBy: req.CreatedBy,
		CreatedAt: s.now().UTC(),
	}

	start := time.Now()
	err := s.repo.Create(ctx, &announcement)
	s.metrics.ObserveDBQuery("announcements_create", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}

	s.mu.Lock()
	s.items = append([]models.Announcement{announcement}, s.items...)
	s.mu.Unlock()
	return &announcement, nil
}

// MarkRead flags one announcement as read.
func (s *AnnouncementStore) MarkRead(ctx context.Context, id string) (*models.Announcement, error) {
	at := s.now().UTC()
	start := time.Now()
	found, err := s.repo.MarkRead(ctx, id, at)
	s.metrics.ObserveDBQuery("announcements_mark_read", time.Since(start))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark announcement read")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if !s.items[i].Read {
				s.items[i].Read = true
				s.items[i].ReadAt = &at
			}
			updated := s.items[i]
			return &updated, nil
		}
	}
	return &models.Announcement{ID: id, Read: true, ReadAt: &at}, nil
}

// Remove deletes one announcement.
func (s *AnnouncementStore) Remove(ctx context.Context, id string) error {
	start := time.Now()
	found, err := s.repo.Delete(ctx, id)
	s.metrics.ObserveDBQuery("announcements_delete", time.Since(start))
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}
