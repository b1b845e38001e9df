package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"internhub/internal/config"
	"internhub/internal/handler"
	"internhub/internal/httpmiddleware"
	"internhub/internal/logging"
	"internhub/internal/session"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := runHTTP(cfg, logger); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}

func runHTTP(cfg config.App, logger *zap.Logger) error {
	var (
		store  session.Store
		health func(*gin.Context) bool
	)
	switch cfg.SessionBackend {
	case "redis":
		client := session.NewRedisClient(cfg.RedisAddr)
		defer func() { _ = client.Close() }()
		rs := session.NewRedisStore(client, "")
		store = rs
		health = func(c *gin.Context) bool { return rs.Healthy(c.Request.Context()) }
		logger.Info("session store: redis", zap.String("addr", cfg.RedisAddr))
	default:
		store = session.NewMemoryStore()
		logger.Info("session store: memory")
	}

	sessions := session.NewManager(store, cfg.SessionTTL, logger)
	h := handler.New(handler.Options{
		BackendURL:    cfg.BackendURL,
		JWTIssuer:     cfg.JWTIssuer,
		JWTSigningKey: cfg.JWTSigningKey,
		SessionTTL:    cfg.SessionTTL,
		CookieSecure:  cfg.CookieSecure,
		ChartRadius:   cfg.ChartRadius,
	}, sessions, logger)

	r := handler.NewRouter(h, handler.RouterOptions{
		Limiter:        httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin),
		Health:         health,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting portal gateway", zap.String("port", cfg.HTTPPort), zap.String("backend", cfg.BackendURL))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
	return nil
}
