package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/config"
	dbpkg "github.com/BruksfildServices01/barberias/internal/db"
	"github.com/BruksfildServices01/barberias/internal/handlers"
	"github.com/BruksfildServices01/barberias/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/barberias/internal/infra/repository"
	"github.com/BruksfildServices01/barberias/internal/infra/storage"
	"github.com/BruksfildServices01/barberias/internal/logger"
	"github.com/BruksfildServices01/barberias/internal/media"
	"github.com/BruksfildServices01/barberias/internal/quota"
	"github.com/BruksfildServices01/barberias/internal/routes"
	"github.com/BruksfildServices01/barberias/internal/timezone"
	ucCatalog "github.com/BruksfildServices01/barberias/internal/usecase/catalog"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat, "barberias-api")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	timezone.SetDefault(cfg.DefaultTimezone)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	checks := map[string]handlers.Check{}

	// ======================================================
	// 🗄️ STORE
	// ======================================================
	var repos routes.Repositories
	switch cfg.Store {
	case config.StoreMemory:
		store := memstore.New()
		repos = routes.Repositories{
			Tenants:      store.Tenants(),
			Barbers:      store.Barbers(),
			Services:     store.Services(),
			Schedules:    store.Schedules(),
			Appointments: store.Appointments(),
			AuditLogs:    store.Audit(),
		}
		if cfg.SeedDemo {
			if err := dbpkg.SeedDemo(ctx, repos.Tenants, repos.Barbers, repos.Services, cfg.DemoPassword, zlog); err != nil {
				zlog.Fatal("failed to seed demo data", zap.Error(err))
			}
		}
		zlog.Warn("using in-memory store, data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg, zlog)
		if err != nil {
			zlog.Fatal("failed to open database", zap.Error(err))
		}
		sqlDB, err := db.DB()
		if err != nil {
			zlog.Fatal("failed to get sql.DB", zap.Error(err))
		}
		defer sqlDB.Close()
		checks["postgres"] = sqlDB.PingContext

		repos = routes.Repositories{
			Tenants:      infraRepo.NewTenantGormRepository(db),
			Barbers:      infraRepo.NewBarberGormRepository(db),
			Services:     infraRepo.NewServiceGormRepository(db),
			Schedules:    infraRepo.NewScheduleGormRepository(db),
			Appointments: infraRepo.NewAppointmentGormRepository(db),
			AuditLogs:    infraRepo.NewAuditGormRepository(db),
		}
	}

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var counter quota.Counter
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis unreachable, booking quota fails open", zap.Error(err))
		}
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		counter = quota.NewRedisCounter(rdb)
	}
	bookingQuota := quota.New(
		counter,
		cfg.Quota.Mode,
		cfg.Quota.Max,
		time.Duration(cfg.Quota.WindowHours)*time.Hour,
		zlog,
	)

	var mediaStore *ucCatalog.MediaStore
	processor := media.NewProcessor(cfg.Media.MaxWidth, cfg.Media.Quality, cfg.Media.MaxUploadMB)
	if cfg.MediaEnabled() {
		objects := storage.NewS3(storage.S3Config{
			Bucket:        cfg.Media.Bucket,
			Region:        cfg.Media.Region,
			Endpoint:      cfg.Media.Endpoint,
			AccessKey:     cfg.Media.AccessKey,
			SecretKey:     cfg.Media.SecretKey,
			PublicBaseURL: cfg.Media.PublicBaseURL,
		})
		mediaStore = ucCatalog.NewMediaStore(processor, objects, zlog)
	} else {
		zlog.Info("media storage not configured, image uploads disabled")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(repos.AuditLogs), zlog, 256)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, repos, routes.Infra{
		Tokens:         auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour),
		Quota:          bookingQuota,
		Media:          mediaStore,
		MaxUploadBytes: processor.MaxBytes(),
		Audit:          auditDispatcher,
		Checks:         checks,
		Log:            zlog,
	}, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("failed to start server", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}

	// requests are done, so nothing dispatches after this
	auditDispatcher.Close()
}
