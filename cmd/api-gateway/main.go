package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/construction-pm-api/api/swagger"
	"github.com/noah-isme/construction-pm-api/internal/handler"
	internalmiddleware "github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/repository"
	"github.com/noah-isme/construction-pm-api/internal/service"
	"github.com/noah-isme/construction-pm-api/pkg/backend"
	"github.com/noah-isme/construction-pm-api/pkg/cache"
	"github.com/noah-isme/construction-pm-api/pkg/config"
	"github.com/noah-isme/construction-pm-api/pkg/database"
	"github.com/noah-isme/construction-pm-api/pkg/export"
	"github.com/noah-isme/construction-pm-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/construction-pm-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/construction-pm-api/pkg/middleware/requestid"
)

// @title Construction PM API
// @version 1.0.0
// @description Gateway for construction project management: site resource summaries, payroll and approvals.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()
	validate := validator.New()

	client := backend.New(cfg.Backend, backend.WithObserver(metrics))
	backendRepo := repository.NewBackendRepository(client)
	checks := map[string]handler.Pinger{"backend": backendRepo}

	var cacheRepo service.CacheRepository
	var redisClient *redis.Client
	if cfg.Snapshots.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("snapshot cache disabled: redis unavailable", "addr", cache.Addr(cfg.Redis), "error", err)
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			cacheRepo = repo
			checks["redis"] = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Snapshots.CacheTTL, logr, cacheRepo != nil)
	snapshots := service.NewSnapshotService(backendRepo, cacheSvc, cfg.Snapshots.CacheTTL, logr)

	invalidation := service.NewInvalidationService(snapshots, metrics, cfg.Invalidation, logr)
	invalidation.Start(context.Background())

	summarySvc := service.NewResourceSummaryService(snapshots, logr)
	resourceSvc := service.NewResourceService(backendRepo, invalidation, validate, logr)
	payrollSvc := service.NewPayrollService(snapshots, logr)
	requestSvc := service.NewRequestService(snapshots, logr)
	projectSvc := service.NewProjectService(snapshots, logr)
	exportSvc := service.NewExportService(summarySvc, payrollSvc, requestSvc, export.Renderers(), logr)

	var db *sqlx.DB
	var announcementStore *service.AnnouncementStore
	announcementsEnabled := cfg.Announcements.Enabled
	if announcementsEnabled {
		db, announcementStore, err = openAnnouncements(ctx, cfg.Database, validate, metrics, logr)
		if err != nil {
			logr.Sugar().Warnw("announcements disabled", "error", err)
			announcementsEnabled = false
		} else {
			checks["database"] = repository.NewAnnouncementRepository(db)
		}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))

	handler.Register(r, cfg.APIPrefix, handler.Routes{
		Resources:            handler.NewResourceHandler(summarySvc, resourceSvc),
		Payroll:              handler.NewPayrollHandler(payrollSvc),
		Requests:             handler.NewRequestHandler(requestSvc),
		Projects:             handler.NewProjectHandler(projectSvc),
		Announcements:        handler.NewAnnouncementHandler(announcementStore),
		Exports:              handler.NewExportHandler(exportSvc),
		Metrics:              handler.NewMetricsHandler(metrics, checks),
		AnnouncementsEnabled: announcementsEnabled,
		ExportsEnabled:       cfg.Exports.Enabled,
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "backend", cfg.Backend.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("server shutdown", "error", err)
	}
	invalidation.Stop()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if db != nil {
		_ = db.Close()
	}
}

func openAnnouncements(ctx context.Context, cfg config.DatabaseConfig, validate *validator.Validate, metrics *service.MetricsService, logr *zap.Logger) (*sqlx.DB, *service.AnnouncementStore, error) {
	db, err := database.NewPostgres(cfg)
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewAnnouncementRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ensure announcements schema: %w", err)
	}
	store := service.NewAnnouncementStore(repo, validate, metrics, logr)
	if err := store.Load(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("load announcements: %w", err)
	}
	return db, store, nil
}
