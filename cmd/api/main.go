package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-insights/internal/auth"
	"product-insights/internal/cache"
	"product-insights/internal/config"
	"product-insights/internal/database"
	"product-insights/internal/handler"
	"product-insights/internal/ingest"
	"product-insights/internal/report"
	"product-insights/internal/repository"
	"product-insights/internal/router"
	"product-insights/internal/service"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("env", cfg.Env).Msg("starting product-insights API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	db, err := database.NewGorm(pool, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize ORM: %w", err)
	}

	if err := database.EnsureSchema(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	userRepo := repository.NewUserRepository(db, logger)

	// Initialize CSV loader and report writers with S3 and local fallback
	s3Client := newS3Client(ctx, cfg.S3, logger)

	var s3Loader ingest.Loader
	reportWriters := []report.Writer{report.NewFileWriter(cfg.Report.Path, logger)}
	if s3Client != nil {
		s3Loader = ingest.NewS3Loader(s3Client, cfg.S3.Bucket, logger)
		if cfg.S3.UploadReports {
			reportWriters = append(reportWriters, report.NewS3Writer(s3Client, cfg.S3.Bucket, cfg.S3.Prefix, logger))
		}
	}
	loader := ingest.NewSchemeLoader(s3Loader, ingest.NewFileLoader(logger), logger)
	reportWriter := report.MultiWriter(reportWriters...)

	// Initialize summary cache
	summaryCache := cache.NewNoop()
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect to redis, summary cache disabled")
		} else {
			defer redisClient.Close()
			summaryCache = cache.NewRedisCache(redisClient, cfg.Redis.TTL, logger)
		}
	}

	// Initialize auth
	hasher := auth.NewPasswordHasher(0)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, tokens, logger)
	productService := service.NewProductService(productRepo, loader, reportWriter, summaryCache, logger)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	productHandler := handler.NewProductHandler(productService, logger)

	// Initialize router
	mux := router.New(authHandler, productHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newS3Client returns nil when S3 is disabled or the AWS configuration cannot be loaded.
func newS3Client(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) *s3.Client {
	if !cfg.Enabled {
		logger.Info().Msg("using local file system for csv sources and reports (S3 disabled)")
		return nil
	}

	client, err := ingest.NewS3Client(ctx, cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 client, falling back to local file system only")
		return nil
	}
	return client
}
