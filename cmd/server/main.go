package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ridercritic/internal/clients/adminapi"
	"ridercritic/internal/config"
	"ridercritic/internal/handlers"
	fsrepo "ridercritic/internal/repositories/firestore"
	"ridercritic/internal/services"
	"ridercritic/pkg/cache"
	"ridercritic/pkg/database"
	"ridercritic/pkg/logger"
	"ridercritic/pkg/oauth"
	"ridercritic/pkg/storage"
	"ridercritic/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Caller: cfg.App.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	firestoreClient, err := database.Connect(ctx, cfg.Firebase)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to Firestore")
	}
	defer firestoreClient.Close()

	var cacheClient cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisCache.Close()
		cacheClient = redisCache
	}

	storageProvider, err := buildStorageProvider(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize storage")
	}

	// Repositories
	brandRepo := fsrepo.NewBrandRepository(firestoreClient, cacheClient)
	typeRepo := fsrepo.NewTypeRepository(firestoreClient)
	motorcycleRepo := fsrepo.NewMotorcycleRepository(firestoreClient, cacheClient)
	criticRepo := fsrepo.NewCriticRepository(firestoreClient)
	comparisonRepo := fsrepo.NewComparisonRepository(firestoreClient)
	commentRepo := fsrepo.NewCommentRepository(firestoreClient)
	userRepo := fsrepo.NewUserRepository(firestoreClient)

	// Services
	googleOAuth := oauth.NewGoogleProvider(cfg.Security.GoogleClientID, cfg.Security.GoogleClientSecret)
	authService := services.NewAuthService(userRepo, googleOAuth, cfg.Security, log)
	motorcycleService := services.NewMotorcycleService(motorcycleRepo, log)
	criticService := services.NewCriticService(criticRepo, log)
	comparisonService := services.NewComparisonService(comparisonRepo, motorcycleRepo, log)
	suggestService := services.NewSuggestService(motorcycleRepo, brandRepo, criticRepo, log)

	adminClient := adminapi.NewClient(cfg.AdminAPI, log)

	router := routes.SetupRouter(cfg, &routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, log),
		Brand:      handlers.NewBrandHandler(brandRepo, log),
		Type:       handlers.NewTypeHandler(typeRepo, log),
		Motorcycle: handlers.NewMotorcycleHandler(motorcycleService, motorcycleRepo, log),
		Critic:     handlers.NewCriticHandler(criticService, criticRepo, log),
		Comment:    handlers.NewCommentHandler(commentRepo, log),
		Comparison: handlers.NewComparisonHandler(comparisonService, comparisonRepo, log),
		Search:     handlers.NewSearchHandler(suggestService, log),
		Upload:     handlers.NewUploadHandler(storageProvider, log),
		User:       handlers.NewUserHandler(userRepo, log),
		Admin:      handlers.NewAdminHandler(adminClient, log),
	}, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.App.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Server stopped")
}

func buildStorageProvider(cfg *config.Config) (storage.Provider, error) {
	switch cfg.Storage.Provider {
	case "gcs":
		return storage.NewGCPStorage(cfg.Storage.Bucket, cfg.Firebase.CredentialsFile, cfg.Storage.CDNDomain)
	case "s3":
		return storage.NewS3Storage(cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.CDNDomain)
	case "local":
		return storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.App.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Storage.Provider)
	}
}
