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
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/amanahlab/sahabat/internal/config"
	logpkg "github.com/amanahlab/sahabat/internal/logger"
	"github.com/amanahlab/sahabat/internal/metrics"
	"github.com/amanahlab/sahabat/internal/nlp"
	"github.com/amanahlab/sahabat/internal/repository/dataset"
	"github.com/amanahlab/sahabat/internal/transport/aladhan"
	chiTransport "github.com/amanahlab/sahabat/internal/transport/chi"
	cataloguc "github.com/amanahlab/sahabat/internal/usecase/catalog"
	chatuc "github.com/amanahlab/sahabat/internal/usecase/chat"
	intentuc "github.com/amanahlab/sahabat/internal/usecase/intent"
	"github.com/amanahlab/sahabat/internal/usecase/match"
	searchuc "github.com/amanahlab/sahabat/internal/usecase/search"
	"github.com/amanahlab/sahabat/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sahabat API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	// Load the corpora and intent rules once; they are shared read-only for
	// the lifetime of the process.
	loader := dataset.New(logger)
	doa, err := loader.LoadDoa(cfg.Data.DoaPath)
	if err != nil {
		logger.Fatal("Failed to load doa dataset", zap.Error(err))
	}
	hadis, err := loader.LoadHadis(cfg.Data.HadisPath)
	if err != nil {
		logger.Fatal("Failed to load hadis dataset", zap.Error(err))
	}
	intents, err := loader.LoadIntents(cfg.Data.IntentPath)
	if err != nil {
		logger.Fatal("Failed to load intent rules", zap.Error(err))
	}
	logger.Info("Datasets loaded",
		zap.Int("doa", len(doa)),
		zap.Int("hadis", len(hadis)),
		zap.Int("intents", len(intents)),
	)

	// Register chat metrics explicitly (no init())
	metrics.RegisterChatMetrics()

	// Build the engine — composition root
	analyzer := nlp.NewAnalyzer(nlp.NewSastrawiStemmer())
	scorer := match.NewScorer(analyzer)
	searcher := searchuc.New(scorer)
	intentSvc := intentuc.New(intents, analyzer)

	greeter := aladhan.NewClient(&aladhan.Config{
		BaseURL:         cfg.Greeting.BaseURL,
		Timeout:         time.Duration(cfg.Greeting.TimeoutSec) * time.Second,
		DefaultTimezone: cfg.Greeting.DefaultTimezone,
		Logger:          logger,
	})

	chatSvc := chatuc.New(analyzer, intentSvc, searcher, greeter, doa, hadis)
	catalogSvc := cataloguc.New(doa, hadis, intents)

	server := chiTransport.NewServer(chatSvc, catalogSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns the ERROR payload
// instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"status":  "ERROR",
						"message": "Maaf, terjadi kesalahan server 😔",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
