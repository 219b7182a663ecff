package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"portfolioAPI/internal/cache"
	"portfolioAPI/internal/config"
	"portfolioAPI/internal/database"
	handlers "portfolioAPI/internal/handler"
	"portfolioAPI/internal/repository"
	"portfolioAPI/internal/service"
	"portfolioAPI/internal/storage"
)

// App holds the wired dependencies of one process.
type App struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	DB       *database.DB
	Redis    *redis.Client
	Repo     *repository.Repository
	Services *service.Service
	Seeder   *service.Seeder
	Storage  storage.Storage
}

// New connects to the database and cache and builds the service layer.
// Object storage is only connected when withStorage is set, so CLI tasks
// do not need MinIO.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, withStorage bool) (*App, error) {
	db, err := database.ConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	client := cache.NewRedisClient(cfg.Redis)
	store := cache.NewRedisStore(client)
	if err := store.Ping(ctx); err != nil {
		// the cache is optional at runtime: every read degrades to the store
		logger.Warn("redis unavailable, continuing without cache", slog.Any("err", err))
	}

	var st storage.Storage
	if withStorage {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			db.CloseDB()
			client.Close()
			return nil, fmt.Errorf("init minio: %w", err)
		}
		st = minioClient
	}

	repo := repository.NewRepository(db.DB)
	caches := cache.NewCaches(store, logger)

	return &App{
		Cfg:      cfg,
		Logger:   logger,
		DB:       db,
		Redis:    client,
		Repo:     repo,
		Services: service.NewService(repo, caches, cfg, st, logger),
		Seeder:   service.NewSeeder(repo, cfg.Seed, logger),
		Storage:  st,
	}, nil
}

// Server builds the HTTP server with health checks for every backing store.
func (a *App) Server() *http.Server {
	checks := map[string]handlers.HealthCheck{
		"database": a.DB.HealthCheck,
		"cache":    cache.NewRedisStore(a.Redis).Ping,
	}
	if a.Storage != nil {
		checks["storage"] = a.Storage.Ping
	}

	h := handlers.NewHandlers(a.Services, a.Cfg, checks, a.Logger)

	return &http.Server{
		Addr:              ":" + strconv.Itoa(a.Cfg.ServerPort),
		Handler:           h.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) Close() {
	if err := a.Redis.Close(); err != nil {
		a.Logger.Warn("close redis", slog.Any("err", err))
	}
	if err := a.DB.CloseDB(); err != nil {
		a.Logger.Warn("close database", slog.Any("err", err))
	}
}
