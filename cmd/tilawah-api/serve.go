package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/catalog"
	"github.com/MarcoPoloResearchLab/tilawah/internal/config"
	"github.com/MarcoPoloResearchLab/tilawah/internal/database"
	"github.com/MarcoPoloResearchLab/tilawah/internal/logging"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	"github.com/MarcoPoloResearchLab/tilawah/internal/scheduler"
	"github.com/MarcoPoloResearchLab/tilawah/internal/server"
	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func runServer(ctx context.Context) error {
	appConfig, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(appConfig.LogLevel, appConfig.Environment)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	db, err := database.Open(databaseConfig(appConfig), logger)
	if err != nil {
		return err
	}
	defer closeDatabase(db, logger)

	catalogService, err := catalog.NewService(catalog.ServiceConfig{Database: db, Logger: logger})
	if err != nil {
		return err
	}
	recitationsService, err := recitations.NewService(recitations.ServiceConfig{
		Database: db,
		Clock:    time.Now,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	store, err := newDiskStore(appConfig)
	if err != nil {
		return err
	}
	uploadConfig := uploadsConfig(appConfig)
	limiter := uploads.NewRateLimiter(uploadConfig.RateLimitMax, uploadConfig.RateLimitWindow, time.Now)
	pipeline, err := uploads.NewPipeline(uploads.PipelineConfig{
		Config:   uploadConfig,
		Limiter:  limiter,
		Store:    store,
		Recorder: recitationsService,
		Clock:    time.Now,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	sweeper, err := uploads.NewOrphanSweeper(store, recitationsService, appConfig.OrphanGrace, time.Now, logger)
	if err != nil {
		return err
	}

	jobs := scheduler.New(logger)
	if err := scheduler.RegisterMaintenance(jobs, scheduler.MaintenanceConfig{
		Limiter:       limiter,
		Sweeper:       sweeper,
		PruneSchedule: appConfig.PruneSchedule,
		SweepSchedule: appConfig.SweepSchedule,
		Logger:        logger,
	}); err != nil {
		return err
	}
	jobs.Start(ctx)
	defer jobs.Stop()

	if appConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	handler, err := server.NewHTTPHandler(server.Dependencies{
		CatalogService:     catalogService,
		RecitationsService: recitationsService,
		Pipeline:           pipeline,
		HealthCheck: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		Features: server.Features{
			UserUploads: true,
			Moderation:  true,
			Analytics:   appConfig.AnalyticsEnabled,
			OfflineMode: false,
		},
		StaticUploads: server.StaticUploads{
			Serve:     appConfig.ServeUploads,
			Directory: store.Directory(),
			URLPrefix: store.URLPrefix(),
		},
		MaxUploadBytes:   appConfig.MaxFileSize,
		SurahCache:       appConfig.SurahCache,
		RecitationsCache: appConfig.RecitationsCache,
		TrustedProxies:   appConfig.TrustedProxies,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              appConfig.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("address", appConfig.HTTPAddress),
			zap.String("environment", appConfig.Environment),
			zap.Bool("upload_auth", uploadConfig.RequireAuth))
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func databaseConfig(appConfig config.AppConfig) database.Config {
	return database.Config{
		URL:            appConfig.DatabaseURL,
		PoolSize:       appConfig.DatabasePoolSize,
		IdleTimeout:    appConfig.DatabaseIdleTimeout,
		ConnectTimeout: appConfig.DatabaseConnectTimeout,
		Environment:    appConfig.Environment,
	}
}

func uploadsConfig(appConfig config.AppConfig) uploads.Config {
	return uploads.Config{
		RequireAuth:       appConfig.UploadAPIKey != "",
		APIKey:            appConfig.UploadAPIKey,
		RateLimitMax:      appConfig.RateLimitMax,
		RateLimitWindow:   appConfig.RateLimitWindow,
		MaxFileSize:       appConfig.MaxFileSize,
		AllowedTypes:      appConfig.AllowedTypes,
		AllowedExtensions: appConfig.AllowedExtensions,
	}
}

func newDiskStore(appConfig config.AppConfig) (*uploads.DiskStore, error) {
	return uploads.NewDiskStore(uploads.DiskStoreConfig{
		Directory: appConfig.UploadsDir,
		URLPrefix: appConfig.UploadsURLPrefix,
	})
}

func closeDatabase(db *gorm.DB, logger *zap.Logger) {
	if err := database.Close(db); err != nil {
		logger.Warn("database close failed", zap.Error(err))
	}
}
