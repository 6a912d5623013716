package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/models"
	"github.com/noah-isme/construction-pm-api/pkg/config"
	"github.com/noah-isme/construction-pm-api/pkg/jobs"
)

const invalidateSnapshotJob = "invalidate_snapshot"

type snapshotInvalidator interface {
	Invalidate(ctx context.Context, kind models.ResourceKind) error
}

// InvalidationService drops stale snapshots in the background after the gateway proxies a
// write, so the next read re-fetches the full collection.
type InvalidationService struct {
	queue     *jobs.Queue
	snapshots snapshotInvalidator
	logger    *zap.Logger
}

// NewInvalidationService wires the worker queue. Call Start before enqueueing.
func NewInvalidationService(snapshots snapshotInvalidator, metrics *MetricsService, cfg config.InvalidationConfig, logger *zap.Logger) *InvalidationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &InvalidationService{snapshots: snapshots, logger: logger}
	svc.queue = jobs.NewQueue("snapshot-invalidation", svc.handle, jobs.QueueConfig{
		Workers:    cfg.Workers,
		BufferSize: cfg.BufferSize,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
		Logger:     logger,
		OnDone: func(job jobs.Job, err error) {
			metrics.RecordInvalidation(job.Key, err)
		},
	})
	return svc
}

// Start launches the workers. ctx should outlive the HTTP server so Stop can drain the queue.
func (s *InvalidationService) Start(ctx context.Context) {
	s.queue.Start(ctx)
}

// Stop refuses new jobs and returns once every queued invalidation has run.
func (s *InvalidationService) Stop() {
	s.queue.Stop()
}

// Enqueue schedules invalidation of each collection. When the queue refuses the job (full,
// stopped or never started) the snapshot is dropped inline instead.
func (s *InvalidationService) Enqueue(ctx context.Context, kinds ...models.ResourceKind) {
	for _, kind := range kinds {
		err := s.queue.Enqueue(jobs.Job{Type: invalidateSnapshotJob, Key: string(kind)})
		if err == nil {
			continue
		}
		s.logger.Warn("invalidation queue unavailable, invalidating inline", zap.String("resource", string(kind)), zap.Error(err))
		if err := s.snapshots.Invalidate(ctx, kind); err != nil {
			s.logger.Error("inline invalidation failed", zap.String("resource", string(kind)), zap.Error(err))
		}
	}
}

// Pending reports queued invalidations.
func (s *InvalidationService) Pending() int {
	return s.queue.Pending()
}

func (s *InvalidationService) handle(ctx context.Context, job jobs.Job) error {
	return s.snapshots.Invalidate(ctx, models.ResourceKind(job.Key))
}
