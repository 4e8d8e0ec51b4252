package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/api"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/cache"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/config"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/database"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/repository"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/scheduler"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/service"
	"github.com/sonihritik01/Holdings-Dashboard-Backend/internal/sheets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open snapshot database and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Optional Redis tier for the loader cache
	var rdb *redis.Client
	if cfg.Cache.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr})
		log.Printf("Using Redis cache at %s", cfg.Cache.RedisAddr)
	}

	// Build the loader chain: memo(redis(sheets client))
	sheetsClient := sheets.NewClient()
	redisLoader := cache.NewRedisLoader(rdb, cfg.Cache.TTL, cache.LoaderFunc(sheetsClient.FetchWorksheet), "sheets")
	memoLoader := cache.NewMemoLoader(redisLoader, cfg.Cache.TTL)

	// Create repositories and services
	snapshotRepo := repository.NewSnapshotRepository(db)

	systemService := service.NewSystemService(db)
	dashboardService := service.NewDashboardService(
		memoLoader,
		memoLoader,
		snapshotRepo,
		cfg.Sheet.URL,
		cfg.Sheet.Worksheets,
	)

	// Background refresh
	refresher, err := scheduler.New(cfg.Sheet.RefreshSchedule, dashboardService)
	if err != nil {
		log.Fatalf("Failed to create refresh scheduler: %v", err)
	}
	refresher.Start()
	defer refresher.Stop()

	// Create router
	router := api.NewRouter(systemService, dashboardService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
