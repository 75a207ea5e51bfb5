package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MarcoPoloResearchLab/tilawah/internal/auth"
	"github.com/MarcoPoloResearchLab/tilawah/internal/catalog"
	"github.com/MarcoPoloResearchLab/tilawah/internal/config"
	"github.com/MarcoPoloResearchLab/tilawah/internal/recitations"
	"github.com/MarcoPoloResearchLab/tilawah/internal/uploads"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errMissingCatalogService     = errors.New("catalog service dependency required")
	errMissingRecitationsService = errors.New("recitations service dependency required")
	errMissingPipeline           = errors.New("upload pipeline dependency required")
)

// Features is the public feature-flag document.
type Features struct {
	UserUploads bool `json:"userUploads"`
	Moderation  bool `json:"moderation"`
	Analytics   bool `json:"analytics"`
	OfflineMode bool `json:"offlineMode"`
}

// StaticUploads exposes the uploads directory over HTTP.
type StaticUploads struct {
	Serve     bool
	Directory string
	URLPrefix string
}

type Dependencies struct {
	CatalogService     *catalog.Service
	RecitationsService *recitations.Service
	Pipeline           *uploads.Pipeline
	HealthCheck        func(ctx context.Context) error
	Features           Features
	StaticUploads      StaticUploads
	MaxUploadBytes     int64
	SurahCache         config.CachePolicy
	RecitationsCache   config.CachePolicy
	TrustedProxies     []string
	Logger             *zap.Logger
}

func NewHTTPHandler(deps Dependencies) (http.Handler, error) {
	if deps.CatalogService == nil {
		return nil, errMissingCatalogService
	}
	if deps.RecitationsService == nil {
		return nil, errMissingRecitationsService
	}
	if deps.Pipeline == nil {
		return nil, errMissingPipeline
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	var trustedProxies []string
	if len(deps.TrustedProxies) > 0 {
		trustedProxies = deps.TrustedProxies
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("configure trusted proxies: %w", err)
	}
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(corsMiddleware())

	handler := &httpHandler{
		catalogService:     deps.CatalogService,
		recitationsService: deps.RecitationsService,
		pipeline:           deps.Pipeline,
		healthCheck:        deps.HealthCheck,
		features:           deps.Features,
		maxUploadBytes:     deps.MaxUploadBytes,
		surahCache:         cacheControl(deps.SurahCache),
		recitationsCache:   cacheControl(deps.RecitationsCache),
		logger:             logger,
	}

	router.GET("/healthz", handler.handleHealth)
	router.GET("/features", handler.handleFeatures)
	router.GET("/surahs", handler.handleListSurahs)
	router.GET("/surahs/:id", handler.handleGetSurah)
	router.GET("/recitations", handler.handleListRecitations)
	router.POST("/recitations", handler.handleCreateRecitation)
	router.POST("/recitations/:id/play", handler.handleRecordPlay)

	if deps.StaticUploads.Serve && deps.StaticUploads.Directory != "" {
		router.Static(deps.StaticUploads.URLPrefix, deps.StaticUploads.Directory)
	}

	return router, nil
}

type httpHandler struct {
	catalogService     *catalog.Service
	recitationsService *recitations.Service
	pipeline           *uploads.Pipeline
	healthCheck        func(ctx context.Context) error
	features           Features
	maxUploadBytes     int64
	surahCache         string
	recitationsCache   string
	logger             *zap.Logger
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization", auth.HeaderAPIKey},
		MaxAge:       12 * time.Hour,
	})
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client", c.ClientIP()))
	}
}

func cacheControl(policy config.CachePolicy) string {
	if policy.MaxAge <= 0 {
		return "no-cache"
	}
	directive := fmt.Sprintf("public, max-age=%d", int64(policy.MaxAge/time.Second))
	if policy.StaleWhileRevalidate > 0 {
		directive += fmt.Sprintf(", stale-while-revalidate=%d", int64(policy.StaleWhileRevalidate/time.Second))
	}
	return directive
}

func (h *httpHandler) handleHealth(c *gin.Context) {
	if h.healthCheck != nil {
		if err := h.healthCheck(c.Request.Context()); err != nil {
			h.logger.Error("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *httpHandler) handleFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, h.features)
}

func (h *httpHandler) handleListSurahs(c *gin.Context) {
	surahs, err := h.catalogService.ListSurahs(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list surahs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch surahs"})
		return
	}
	c.Header("Cache-Control", h.surahCache)
	c.JSON(http.StatusOK, surahs)
}

func (h *httpHandler) handleGetSurah(c *gin.Context) {
	detail, err := h.catalogService.GetSurah(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrSurahNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Surah not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed to load surah", zap.String("surah_id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch surah"})
		return
	}
	c.Header("Cache-Control", h.surahCache)
	c.JSON(http.StatusOK, detail)
}

func (h *httpHandler) handleListRecitations(c *gin.Context) {
	records, err := h.recitationsService.ListApproved(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list recitations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recitations"})
		return
	}
	c.Header("Cache-Control", h.recitationsCache)
	c.JSON(http.StatusOK, records)
}

func clientKey(c *gin.Context) string {
	return strings.TrimSpace(c.ClientIP())
}
