package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dfryer1193/imgserve/images/application"
	"github.com/dfryer1193/imgserve/images/domain"
	"github.com/dfryer1193/imgserve/images/persistence"
	"github.com/dfryer1193/imgserve/internal/middleware"
	"github.com/dfryer1193/imgserve/internal/rest"
	"github.com/dfryer1193/imgserve/shared/config"
	"github.com/dfryer1193/imgserve/shared/db/sqlite"
	"github.com/dfryer1193/imgserve/shared/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}
	log.Info().Msgf("Loaded config:%s", cfg)

	store, err := newImageStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create image store")
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	err = store.Init(initCtx)
	cancelInit()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize image store")
	}

	checks := map[string]rest.HealthCheck{
		"store": store.Ping,
	}

	var ledger domain.UploadLedger
	if cfg.LedgerEnabled {
		dbConn := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLiteDBPath})
		if err := dbConn.Connect(); err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to database")
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}()

		ledger = persistence.NewUploadLedger(dbConn.DB())
		checks["ledger"] = dbConn.Ping
	}

	renderer, err := application.NewPlaceholderRenderer(cfg.JPEGQuality)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create placeholder renderer")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewApi(r, rest.Handlers{
		Images: rest.NewImageHandler(
			application.NewUploadService(store, ledger),
			application.NewTransformService(store, cfg.JPEGQuality, cfg.MaxTransformDimension),
		),
		Thumbnails:     rest.NewThumbnailHandler(renderer, cfg.MaxPlaceholderDimension),
		Health:         rest.NewHealthHandler(checks),
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.AppPort),
		Handler: r,
	}

	go func() {
		log.Info().Msg("Starting server on port :" + fmt.Sprint(cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shutdown server")
		return
	}

	log.Info().Msg("Server stopped")
}

func newImageStore(cfg *config.Config) (domain.ImageStore, error) {
	switch cfg.StorageBackend {
	case config.BackendS3:
		store, err := persistence.NewS3ImageStore(persistence.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return persistence.NewFileImageStore(cfg.UploadDir), nil
	}
}
