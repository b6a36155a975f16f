package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rukio/nx-repo-sub005/internal/config"
	"github.com/Rukio/nx-repo-sub005/internal/domain/carerequest"
	"github.com/Rukio/nx-repo-sub005/internal/domain/channelitem"
	"github.com/Rukio/nx-repo-sub005/internal/domain/insurancenetwork"
	"github.com/Rukio/nx-repo-sub005/internal/domain/market"
	"github.com/Rukio/nx-repo-sub005/internal/domain/riskstratification"
	"github.com/Rukio/nx-repo-sub005/internal/domain/selfschedule"
	"github.com/Rukio/nx-repo-sub005/internal/platform/auth"
	"github.com/Rukio/nx-repo-sub005/internal/platform/middleware"
	"github.com/Rukio/nx-repo-sub005/internal/platform/sessioncache"
	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "onboarding-server",
		Short: "Onboarding API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the onboarding API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Redis session cache
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid REDIS_URL")
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()
	userCache := sessioncache.NewStore(sessioncache.NewRedisKV(redisClient), logger)

	// Station client
	var tokens station.TokenSource
	if cfg.IsDev() && cfg.AuthTokenURL == "" {
		tokens = auth.StaticTokenSource(os.Getenv("STATION_TOKEN"))
	} else {
		tokens = auth.NewCachedTokenSource(auth.ClientCredentials{
			TokenURL:     cfg.AuthTokenURL,
			ClientID:     cfg.AuthClientID,
			ClientSecret: cfg.AuthClientSecret,
			Audience:     cfg.AuthAudience,
		}, logger)
	}
	stationClient := station.NewClient(cfg.StationURL, tokens, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API group
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Auth middleware
	if cfg.IsDev() {
		apiV1.Use(auth.DevGuard())
	} else {
		apiV1.Use(auth.BearerGuard(auth.GuardConfig{
			SigningKey: []byte(cfg.AuthSigningKey),
			Audience:   cfg.AuthAudience,
		}))
	}

	// Cached GET responses for slow-changing upstream lookups. The cache
	// middleware only touches unauthenticated GETs, so applying it to the
	// whole group is safe.
	responseCache := middleware.NewInMemoryCacheStore()
	cacheCtx, cacheCancel := context.WithCancel(context.Background())
	defer cacheCancel()
	responseCache.StartCleanup(cacheCtx, time.Minute)
	apiV1.Use(middleware.ResponseCache(responseCache, cfg.ResponseCacheDuration()))

	// -- Register domain handlers --

	careRequestSvc := carerequest.NewService(stationClient, logger)
	carerequest.NewHandler(careRequestSvc, logger).RegisterRoutes(apiV1)

	selfScheduleSvc := selfschedule.NewService(stationClient, userCache, logger)
	selfschedule.NewHandler(selfScheduleSvc, logger).RegisterRoutes(apiV1)

	channelItemSvc := channelitem.NewService(stationClient, logger)
	channelitem.NewHandler(channelItemSvc, logger).RegisterRoutes(apiV1)

	networkSvc := insurancenetwork.NewService(stationClient, logger)
	insurancenetwork.NewHandler(networkSvc, logger).RegisterRoutes(apiV1)

	riskSvc := riskstratification.NewService(stationClient, logger)
	riskstratification.NewHandler(riskSvc, logger).RegisterRoutes(apiV1)

	marketSvc := market.NewService(stationClient, logger)
	market.NewHandler(marketSvc, logger).RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting onboarding server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server terminated")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
		return err
	}
	return nil
}
