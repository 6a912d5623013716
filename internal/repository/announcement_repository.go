package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/construction-pm-api/internal/models"
)

const announcementSchema = `CREATE TABLE IF NOT EXISTS announcements (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	priority TEXT NOT NULL DEFAULT 'NORMAL',
	is_read BOOLEAN NOT NULL DEFAULT FALSE,
	created_by TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	read_at TIMESTAMPTZ NULL
)`

// AnnouncementRepository provides persistence for announcements.
type AnnouncementRepository struct {
	db *sqlx.DB
}

// NewAnnouncementRepository creates the repository.
func NewAnnouncementRepository(db *sqlx.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// EnsureSchema creates the announcements table when missing.
func (r *AnnouncementRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, announcementSchema); err != nil {
		return fmt.Errorf("ensure announcements schema: %w", err)
	}
	return nil
}

// List returns every announcement, newest first.
func (r *AnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	const query = `SELECT id, title, message, priority, is_read, created_by, created_at, read_at
FROM announcements ORDER BY created_at DESC, id`
	var announcements []models.Announcement
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.ID == "" {
		announcement.ID = uuid.NewString()
	}
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO announcements (id, title, message, priority, is_read, created_by, created_at, read_at)
VALUES (:id, :title, :message, :priority, :is_read, :created_by, :created_at, :read_at)`
	if _, err := r.db.NamedExecContext(ctx, query, announcement); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// MarkRead flags an announcement as read. It reports false when no row matched.
func (r *AnnouncementRepository) MarkRead(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, "UPDATE announcements SET is_read = TRUE, read_at = $2 WHERE id = $1", id, at)
	if err != nil {
		return false, fmt.Errorf("mark announcement read: %w", err)
	}
	return affected(res)
}

// Delete removes an announcement. It reports false when no row matched.
func (r *AnnouncementRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	return affected(res)
}

// Ping checks the database connection.
func (r *AnnouncementRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowsResult interface {
	RowsAffected() (int64, error)
}

func affected(res rowsResult) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
