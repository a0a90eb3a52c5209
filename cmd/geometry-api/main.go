// Package main is the entry point for the geometry API service.
// The service exposes a cube measurement surface over HTTP, plus the kitchen
// menu endpoint backed by the stand-in chef adapter.
//
// Usage:
//
//	go run cmd/geometry-api/main.go
//
// Environment Variables:
//
//	GEO_ENVIRONMENT  - Deployment environment (development, production)
//	GEO_SERVER_PORT  - HTTP server port (default: 8080)
//	GEO_LOG_LEVEL    - Minimum log level (default: info)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jonboulle/clockwork"

	"github.com/hapkiduki/geometry-go/internal/application/dto"
	"github.com/hapkiduki/geometry-go/internal/application/port"
	"github.com/hapkiduki/geometry-go/internal/infrastructure/config"
	"github.com/hapkiduki/geometry-go/internal/infrastructure/kitchen"
	"github.com/hapkiduki/geometry-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/geometry-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/geometry-go/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	cfg := config.MustLoad()

	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.App.Environment == "development",
	})
	defer log.Sync()

	log.Info("Starting geometry API",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := &loggerAdapter{log}

	cubeHandler := handler.NewCubeHandler(logAdapter, clockwork.NewRealClock())
	menuHandler := handler.NewMenuHandler(logAdapter, kitchen.NewChef())

	r := chi.NewRouter()

	// Middleware chain; order matters.
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logAdapter))
	r.Use(middleware.Recoverer(logAdapter))
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "X-API-Version"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.DefaultRateLimiterConfig()))
	r.Use(middleware.APIVersion(version))
	r.Use(middleware.ContentTypeJSON)

	// Routes
	r.Get("/health", healthHandler())
	r.Route("/v1", func(r chi.Router) {
		cubeHandler.Register(r)
		menuHandler.Register(r)
	})

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}

// healthHandler returns the health check handler.
func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(dto.NewSuccessResponse(dto.HealthResponse{
			Status:  "healthy",
			Version: version,
			Uptime:  time.Since(startTime).String(),
		}))
	}
}

// notFoundHandler handles 404 responses.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(dto.NewErrorResponse[any]("NOT_FOUND", "The requested resource was not found"))
}

// methodNotAllowedHandler handles 405 responses.
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	json.NewEncoder(w).Encode(dto.NewErrorResponse[any]("METHOD_NOT_ALLOWED", "The requested method is not allowed for this resource"))
}

// loggerAdapter adapts logger.Logger to the port.Logger interface.
type loggerAdapter struct {
	*logger.Logger
}

// Debug implements port.Logger.
func (l *loggerAdapter) Debug(msg string, keysAndValues ...any) {
	l.Logger.Debug(msg, keysAndValues...)
}

// Info implements port.Logger.
func (l *loggerAdapter) Info(msg string, keysAndValues ...any) {
	l.Logger.Info(msg, keysAndValues...)
}

// Warn implements port.Logger.
func (l *loggerAdapter) Warn(msg string, keysAndValues ...any) {
	l.Logger.Warn(msg, keysAndValues...)
}

// Error implements port.Logger.
func (l *loggerAdapter) Error(msg string, keysAndValues ...any) {
	l.Logger.Error(msg, keysAndValues...)
}

// With implements port.Logger.
func (l *loggerAdapter) With(keysAndValues ...any) port.Logger {
	return &loggerAdapter{l.Logger.With(keysAndValues...)}
}

// WithContext implements port.Logger.
func (l *loggerAdapter) WithContext(ctx context.Context) port.Logger {
	return &loggerAdapter{l.Logger.WithContext(ctx)}
}
