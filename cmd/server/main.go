package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tmdb-explorer-service/internal/config"
	"tmdb-explorer-service/internal/handler"
	"tmdb-explorer-service/internal/middleware"
	"tmdb-explorer-service/internal/render"
	"tmdb-explorer-service/internal/repository"
	"tmdb-explorer-service/internal/service"
	"tmdb-explorer-service/internal/session"
	"tmdb-explorer-service/pkg/httpclient"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	// Load configuration; the process exits before any listener starts
	// when a required API key is missing
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	log.Info().
		Str("port", cfg.Port).
		Str("mode", cfg.GinMode).
		Int("grid_limit", cfg.GridLimit).
		Int("grid_columns", cfg.GridColumns).
		Msg("🚀 Starting tmdb-explorer-service")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Redis cache and metrics are optional; without REDIS_URL every
	// lookup is a miss and nothing is recorded
	var cache *repository.Cache
	var metrics *repository.Metrics
	if cfg.RedisURL != "" {
		cache, err = repository.NewCache(cfg.RedisURL, 1*time.Hour)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer cache.Close()

		metrics, err = repository.NewMetrics(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize metrics")
		}
		defer metrics.Close()
		metrics.RecordServerStart(context.Background())
		log.Info().Msg("📊 Metrics enabled")
	} else {
		log.Warn().Msg("⚠️  REDIS_URL not set, cache and metrics disabled")
	}

	// Initialize services
	client := httpclient.NewClient(cfg.HTTPTimeout)
	endpoints := service.NewEndpoints(cfg.TMDBBaseURL, cfg.TMDBImageBase, cfg.TMDBAPIKey)
	tmdbService := service.NewTMDBService(client, endpoints)

	renderer := render.New(endpoints.Image, render.Limits{
		GridCards:       cfg.GridLimit,
		GridColumns:     cfg.GridColumns,
		Cast:            cfg.CastLimit,
		Providers:       cfg.ProviderLimit,
		Recommendations: cfg.RecommendationLimit,
		Credits:         cfg.CreditsLimit,
		Gallery:         cfg.GalleryLimit,
	})

	// Session state resets on every start: trending movies of the day,
	// logged out, empty favorites
	sess := session.New()

	// Initialize handlers with configured cache TTLs
	ttl := handler.DefaultCacheTTL()
	listingHandler := handler.NewListingHandler(tmdbService, renderer, sess, cache, ttl.Listing)
	searchHandler := handler.NewSearchHandler(tmdbService, renderer, sess, cache, ttl.Search)
	detailHandler := handler.NewDetailHandler(tmdbService, renderer, cache, ttl.Detail)
	latestHandler := handler.NewLatestHandler(tmdbService, renderer, sess)
	favoritesHandler := handler.NewFavoritesHandler(sess)
	authHandler := handler.NewAuthHandler(sess)
	imageHandler := handler.NewImageHandler(tmdbService)
	adminHandler := handler.NewAdminHandler(cache, metrics)

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.Metrics(metrics))
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	// API routes
	api := r.Group("/api/v1")
	{
		api.GET("/status", adminHandler.GetStatus)
		api.GET("/listing", listingHandler.GetListing)
		api.GET("/grid", listingHandler.GetGrid)
		api.GET("/search", searchHandler.Search)
		api.GET("/detail/:kind/:id", detailHandler.GetDetail)
		api.GET("/latest", latestHandler.GetLatest)
		api.GET("/image", imageHandler.GetImage)
		api.GET("/favorites", favoritesHandler.GetFavorites)
		api.POST("/favorites/:id", favoritesHandler.ToggleFavorite)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.GetSession)
	}

	// Admin routes, authenticated when ADMIN_API_KEY is configured
	admin := r.Group("/api/v1")
	admin.Use(middleware.AdminAuth(cfg.AdminAPIKey))
	{
		admin.GET("/analytics", adminHandler.GetAnalytics)
		admin.GET("/analytics/endpoint", adminHandler.GetEndpointStats)
		admin.DELETE("/analytics", adminHandler.ResetAnalytics)

		admin.DELETE("/listing", listingHandler.DeleteListingCache)
		admin.DELETE("/search", searchHandler.DeleteSearchCache)
		admin.DELETE("/detail/:kind/:id", detailHandler.DeleteDetailCache)
		admin.DELETE("/detail", detailHandler.DeleteAllDetailCache)
	}

	if cfg.AdminAPIKey != "" {
		log.Info().Msg("🔐 Admin API authentication enabled")
	} else {
		log.Warn().Msg("⚠️  Admin API runs without authentication")
	}

	// Create HTTP server with graceful shutdown support
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("🌐 Server listening")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("🛑 Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("👋 Server exited")
}
