package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/construction-pm-api/internal/models"
	"github.com/noah-isme/construction-pm-api/pkg/config"
)

type fakeInvalidator struct {
	mu       sync.Mutex
	failures int
	calls    []models.ResourceKind
}

func (f *fakeInvalidator) Invalidate(_ context.Context, kind models.ResourceKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, kind)
	if f.failures > 0 {
		f.failures--
		return errors.New("redis timeout")
	}
	return nil
}

func (f *fakeInvalidator) recorded() []models.ResourceKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ResourceKind(nil), f.calls...)
}

func TestInvalidationServiceProcessesInBackground(t *testing.T) {
	inv := &fakeInvalidator{}
	metrics := NewMetricsService()
	svc := NewInvalidationService(inv, metrics, config.InvalidationConfig{Workers: 1, MaxRetries: 1, RetryDelay: time.Millisecond}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Enqueue(context.Background(), models.ResourceEquipment)

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.invalidations.WithLabelValues("equipment", "ok")) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, []models.ResourceKind{models.ResourceEquipment}, inv.recorded())
}

func TestInvalidationServiceRetries(t *testing.T) {
	inv := &fakeInvalidator{failures: 1}
	metrics := NewMetricsService()
	svc := NewInvalidationService(inv, metrics, config.InvalidationConfig{Workers: 1, MaxRetries: 2, RetryDelay: time.Millisecond}, nil)
	svc.Start(context.Background())
	defer svc.Stop()

	svc.Enqueue(context.Background(), models.ResourceLabor)

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.invalidations.WithLabelValues("labor", "ok")) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, inv.recorded(), 2)
	assert.Zero(t, testutil.ToFloat64(metrics.invalidations.WithLabelValues("labor", "failed")))
}

func TestInvalidationServiceFallsBackInline(t *testing.T) {
	inv := &fakeInvalidator{}
	svc := NewInvalidationService(inv, nil, config.InvalidationConfig{}, nil)

	svc.Enqueue(context.Background(), models.ResourceMaterials, models.ResourceSites)

	assert.Equal(t, []models.ResourceKind{models.ResourceMaterials, models.ResourceSites}, inv.recorded())
	assert.Zero(t, svc.Pending())
}

type gatedInvalidator struct {
	fakeInvalidator
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newGatedInvalidator() *gatedInvalidator {
	return &gatedInvalidator{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (g *gatedInvalidator) Invalidate(ctx context.Context, kind models.ResourceKind) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		g.started <- struct{}{}
		<-g.release
	}
	return g.fakeInvalidator.Invalidate(ctx, kind)
}

func TestInvalidationServiceInlineWhenQueueFull(t *testing.T) {
	inv := newGatedInvalidator()
	svc := NewInvalidationService(inv, NewMetricsService(), config.InvalidationConfig{Workers: 1, BufferSize: 1}, nil)
	svc.Start(context.Background())

	svc.Enqueue(context.Background(), models.ResourceEquipment)
	<-inv.started
	svc.Enqueue(context.Background(), models.ResourceLabor)

	done := make(chan struct{})
	go func() {
		svc.Enqueue(context.Background(), models.ResourceMaterials)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}
	assert.Equal(t, []models.ResourceKind{models.ResourceMaterials}, inv.recorded())

	close(inv.release)
	svc.Stop()
	assert.ElementsMatch(t, []models.ResourceKind{models.ResourceMaterials, models.ResourceEquipment, models.ResourceLabor}, inv.recorded())
}

func TestInvalidationServiceStopRunsQueuedJobs(t *testing.T) {
	inv := newGatedInvalidator()
	metrics := NewMetricsService()
	svc := NewInvalidationService(inv, metrics, config.InvalidationConfig{Workers: 1, BufferSize: 4}, nil)
	svc.Start(context.Background())

	svc.Enqueue(context.Background(), models.ResourceEquipment)
	<-inv.started
	svc.Enqueue(context.Background(), models.ResourceLabor, models.ResourceMaterials)
	assert.Equal(t, 2, svc.Pending())

	close(inv.release)
	svc.Stop()

	assert.ElementsMatch(t, []models.ResourceKind{models.ResourceEquipment, models.ResourceLabor, models.ResourceMaterials}, inv.recorded())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.invalidations.WithLabelValues("materials", "ok")))

	svc.Enqueue(context.Background(), models.ResourceSites)
	assert.Contains(t, inv.recorded(), models.ResourceSites)
}
