// @title ShopDrive API
// @version 1.0
// @description Per-shop file and folder manager.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	errors "github.com/Laisky/errors/v2"
	"go.uber.org/zap"

	"github.com/rohits-web03/shopdrive/internal/api"
	"github.com/rohits-web03/shopdrive/internal/api/handlers"
	"github.com/rohits-web03/shopdrive/internal/config"
	"github.com/rohits-web03/shopdrive/internal/logging"
	"github.com/rohits-web03/shopdrive/internal/repositories"
	"github.com/rohits-web03/shopdrive/internal/services"
)

func main() {
	logger := logging.Must(os.Getenv("ENV"))
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(logger *zap.Logger) error {
	cfg := config.Load(logger)

	db, err := repositories.ConnectDatabase(cfg.DBDriver, cfg.DB_URL, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	blobs, err := newBlobStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	manager := services.NewFileManager(
		repositories.NewMetadataStore(db),
		blobs,
		logger,
		services.WithBulkWorkers(cfg.BulkWorkers),
	)
	router := api.SetupRouter(cfg, handlers.New(manager, logger, cfg.MaxUploadSize), logger)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting ShopDrive server", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrapf(err, "listen on port %s", cfg.Port)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newBlobStore picks the blob backend named by BLOB_BACKEND and prepares it.
func newBlobStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (services.BlobStore, error) {
	var (
		blobs services.BlobStore
		err   error
	)
	switch cfg.BlobBackend {
	case "", "local":
		blobs, err = repositories.NewLocalBlobStore(cfg.UploadDir)
	case "r2":
		blobs, err = repositories.NewR2BlobStore(cfg.R2)
	default:
		return nil, errors.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
	if err != nil {
		return nil, err
	}
	if err := blobs.EnsureReady(ctx); err != nil {
		return nil, err
	}
	logger.Info("blob store ready", zap.String("backend", cfg.BlobBackend))
	return blobs, nil
}
