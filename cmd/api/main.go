package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fluxcapital-backend/config"
	_ "fluxcapital-backend/docs" // Important for Swagger
	v1 "fluxcapital-backend/internal/delivery/http/v1"
	"fluxcapital-backend/internal/domain"
	"fluxcapital-backend/internal/ratelimiter"
	"fluxcapital-backend/internal/usecase"
	"fluxcapital-backend/pkg/email"
	"fluxcapital-backend/pkg/logger"
	"fluxcapital-backend/pkg/redis"
)

// @title           FluxCapital Contact API
// @version         1.0
// @description     Contact-submission backend for the FluxCapital marketing site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting fluxcapital backend", "port", cfg.Port)

	// 3. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable")
	}

	// 4. Setup Rate Limiting
	// The in-memory store is always built: it is the default store and the
	// fallback when the shared Redis store is unreachable.
	memoryLimiter := ratelimiter.NewMemory(ratelimiter.MemoryConfig{
		Limit:  cfg.ContactRateLimit,
		Window: cfg.ContactRateWindow,
	})
	defer memoryLimiter.Close()

	var contactLimiter ratelimiter.Limiter = memoryLimiter
	var fallbackLimiter ratelimiter.Limiter
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting stays in-memory", "error", err)
		} else {
			contactLimiter = ratelimiter.NewRedis(ratelimiter.RedisConfig{
				Client: redis.Client(),
				Limit:  cfg.ContactRateLimit,
				Window: cfg.ContactRateWindow,
			})
			fallbackLimiter = memoryLimiter
			defer redis.Close()
		}
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:       contactUC,
		Site:            domain.DefaultSiteConfig(cfg.WhatsAppNumber),
		ContactLimiter:  contactLimiter,
		FallbackLimiter: fallbackLimiter,
		Config:          cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
