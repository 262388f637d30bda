package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VirtuGrowDigital/LucknowZone/internal/cache"
	"github.com/VirtuGrowDigital/LucknowZone/internal/classifier"
	"github.com/VirtuGrowDigital/LucknowZone/internal/config"
	"github.com/VirtuGrowDigital/LucknowZone/internal/handler"
	"github.com/VirtuGrowDigital/LucknowZone/internal/infrastructure/database"
	"github.com/VirtuGrowDigital/LucknowZone/internal/logger"
	"github.com/VirtuGrowDigital/LucknowZone/internal/metrics"
	"github.com/VirtuGrowDigital/LucknowZone/internal/middleware"
	"github.com/VirtuGrowDigital/LucknowZone/internal/provider"
	"github.com/VirtuGrowDigital/LucknowZone/internal/repository"
	"github.com/VirtuGrowDigital/LucknowZone/internal/service"
	"github.com/VirtuGrowDigital/LucknowZone/internal/validator"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	keywords, err := classifier.Load(cfg.KeywordsConfig)
	if err != nil {
		logger.Fatal("Failed to load keyword tables",
			slog.String("error", err.Error()))
	}

	var listingCache cache.ListingCache
	if cfg.RedisAddr != "" {
		listingCache = cache.NewRedisListingCache(cfg.RedisAddr, cfg.CacheTTL)
		logger.Info("Listing cache enabled", slog.String("addr", cfg.RedisAddr))
	} else {
		listingCache = cache.NewNoopListingCache()
	}

	newsProvider := provider.NewClient(cfg.NewsAPIBaseURL, cfg.NewsAPIKey, cfg.NewsAPITimeout)
	if !newsProvider.Configured() {
		logger.Warn("News provider API key not set; imports will be rejected")
	}

	articleRepo := repository.NewPostgresArticleRepository(pool)
	breakingRepo := repository.NewPostgresBreakingNewsRepository(pool)

	v := validator.NewValidator()

	newsService := service.NewNewsService(
		articleRepo,
		newsProvider,
		keywords,
		listingCache,
		v,
		cfg.AllowAPIArticleEdits,
	)
	breakingService := service.NewBreakingService(breakingRepo, v)

	newsHandler := handler.NewNewsHandler(newsService)
	breakingHandler := handler.NewBreakingHandler(breakingService)
	healthHandler := handler.NewHealthHandler(pool)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	news := router.Group("/news")
	{
		news.GET("", newsHandler.List)
		news.GET("/paginated", newsHandler.ListPaginated)
		news.GET("/by-region", newsHandler.ListByRegion)
		news.GET("/pending", newsHandler.ListPending)
		news.GET("/dont-miss", newsHandler.ListDontMiss)
		news.GET("/import", newsHandler.Import)

		news.POST("", newsHandler.Create)
		news.PUT("/:id", newsHandler.Update)
		news.DELETE("/:id", newsHandler.Delete)
		news.PUT("/toggle/:id", newsHandler.ToggleHidden)

		news.PATCH("/:id/approve", newsHandler.Approve)
		news.PATCH("/:id/reject", newsHandler.Reject)
		news.PATCH("/:id/undo", newsHandler.UndoApprove)
		news.PATCH("/:id/dont-miss", newsHandler.ToggleDontMiss)

		breaking := news.Group("/breaking")
		{
			breaking.GET("", breakingHandler.List)
			breaking.POST("", breakingHandler.Create)
			breaking.PATCH("/:id/toggle", breakingHandler.Toggle)
			breaking.DELETE("/:id", breakingHandler.Delete)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
