package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "olms-backend/internal/api/http"
	"olms-backend/internal/config"
	"olms-backend/internal/logger"
	"olms-backend/internal/repository"
	"olms-backend/internal/repository/cache"
	"olms-backend/internal/repository/postgres"
	"olms-backend/internal/security"
	"olms-backend/internal/service"
	"olms-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OLMS backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	logger.Debug("Connecting to database...", "connection_string", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database))
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	var settings repository.SettingRepository = store.SettingRepository
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn("Settings cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			defer client.Close()
			settings = cache.NewSettingCache(store.SettingRepository, client, cfg.RedisTTL())
			logger.Info("Settings cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.RedisTTL())
		}
	}

	// Initialize Storage
	ctx := context.Background()
	uploads, err := storage.New(ctx, storage.Config{
		Type:      cfg.Storage.Type,
		UploadDir: cfg.Storage.UploadDir,
		Minio: storage.MinioOptions{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		},
	})
	if err != nil {
		logger.Error("Failed to initialize storage", "type", cfg.Storage.Type, "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.AccessTokenTTL())

	// Initialize Services
	services := httpapi.Services{
		Auth: service.NewAuthService(store.UserRepository, tokenManager),
		Customers: service.NewCustomerService(
			store.CustomerRepository,
			store.LoanRepository,
			store.OrnamentRepository,
			store.PaymentRepository,
			store.NoteRepository,
			settings,
			service.HistoryOptions{
				PaymentWindow: cfg.History.PaymentWindow,
				NotesLimit:    cfg.History.NotesLimit,
			},
		),
		Receipts: service.NewReceiptService(
			store.LoanRepository,
			store.PaymentRepository,
			store.CustomerRepository,
			store.OrnamentRepository,
			settings,
			uploads,
		),
		Uploads: service.NewUploadService(uploads, settings, service.UploadPolicy{
			MaxBytes:     cfg.MaxUploadBytes(),
			AllowedTypes: cfg.Storage.AllowedTypes,
		}),
		Bootstrap: service.NewBootstrapService(store.UserRepository, store.BranchRepository, settings),
		Seed: service.NewSeedService(
			store.CustomerRepository,
			store.OrnamentRepository,
			store.LoanRepository,
			store.PaymentRepository,
			store.MetalRateRepository,
		),
	}

	router := httpapi.NewRouter(services, httpapi.Options{
		MaxUploadBytes: cfg.MaxUploadBytes(),
		DB:             db,
	})

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
