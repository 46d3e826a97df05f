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

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/nutrio-app/progress-engine/internal/adapters/cache"
	adapterHTTP "github.com/nutrio-app/progress-engine/internal/adapters/handler/http"
	"github.com/nutrio-app/progress-engine/internal/adapters/repository"
	"github.com/nutrio-app/progress-engine/internal/adapters/source"
	"github.com/nutrio-app/progress-engine/internal/config"
	"github.com/nutrio-app/progress-engine/internal/core/domain"
	"github.com/nutrio-app/progress-engine/internal/core/services"
)

func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: %v", err)
	}

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var snapshotCache domain.SnapshotCache
	rdb, err := connectRedis(cfg)
	if err != nil {
		log.Printf("Redis unavailable, using in-process snapshot cache: %v", err)
		snapshotCache = cache.NewMemorySnapshotCache(cfg.Cache.Freshness, nil)
	} else {
		defer rdb.Close()
		snapshotCache = cache.NewRedisSnapshotCache(rdb, cfg.Cache.Freshness)
	}

	userRepo := repository.NewPostgresUserRepository(db)
	goalRepo := repository.NewPostgresGoalRepository(db)

	backendClient := source.NewBackendClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	healthSource := source.NewDisconnectedHealthSource()

	progressService := services.NewProgressService(backendClient, healthSource, goalRepo, snapshotCache)
	summaryService := services.NewSummaryService(progressService)
	goalService := services.NewGoalService(goalRepo, snapshotCache)
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:     adapterHTTP.NewAuthHandler(authService, tokenService),
		ProgressHandler: adapterHTTP.NewProgressHandler(progressService, summaryService),
		GoalHandler:     adapterHTTP.NewGoalHandler(goalService),
		TokenService:    tokenService,
		DB:              db,
		Redis:           rdb,
		StartTime:       startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Progress Engine running on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}

func connectRedis(cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Host == "" {
		return nil, errors.New("no redis host configured")
	}
	return cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
}
