package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/NattanSilva/curd-user-and-admin/internal/handler"
	"github.com/NattanSilva/curd-user-and-admin/internal/metrics"
	"github.com/NattanSilva/curd-user-and-admin/internal/repository/sqlite"
	"github.com/NattanSilva/curd-user-and-admin/internal/service"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "users.db")

	// The signing secret is never defaulted: a missing secret is a startup
	// failure, not a runtime fallback.
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if len(jwtSecret) < 32 {
		slog.Error("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
		os.Exit(1)
	}

	tokenLifetime := 24 * time.Hour
	if v := os.Getenv("TOKEN_LIFETIME"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("invalid TOKEN_LIFETIME", "error", err)
			os.Exit(1)
		}
		if parsed <= 0 {
			slog.Error("TOKEN_LIFETIME must be positive", "value", v)
			os.Exit(1)
		}
		tokenLifetime = parsed
	}

	bcryptCost := service.DefaultBcryptCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("invalid BCRYPT_COST", "error", err)
			os.Exit(1)
		}
		if parsed < 4 || parsed > 14 {
			slog.Error("BCRYPT_COST must be between 4 and 14", "value", parsed)
			os.Exit(1)
		}
		bcryptCost = parsed
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	hasher := service.NewPasswordHasher(bcryptCost)
	tokens := service.NewTokenService(jwtSecret, tokenLifetime)
	authService := service.NewAuthService(db.Users(), hasher, tokens)
	userService := service.NewUserService(db.Users(), hasher)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, userService)
	mux.Handle("GET /metrics", metrics.Handler(registry))

	root := handler.Instrument(collector,
		handler.RequestLogger(
			handler.Recover(
				handler.SecurityHeaders(mux))))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
