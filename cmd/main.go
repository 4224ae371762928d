// cmd/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_kanji_srs/internal/config"
	"go_5_kanji_srs/internal/handlers"
	"go_5_kanji_srs/internal/middleware"
	"go_5_kanji_srs/internal/repository"
	"go_5_kanji_srs/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" || cfg.Log.Format == "text" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...",
		slog.String("app", config.AppName),
		slog.String("version", config.AppVersion),
	)

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	vocabRepo := repository.NewGormVocabularyRepository()
	cardRepo := repository.NewGormFlashcardRepository()
	sessionRepo := repository.NewGormReviewSessionRepository()
	shotRepo := repository.NewGormScreenshotRepository()

	vocabService := service.NewVocabularyService(db, vocabRepo, cfg)
	cardService := service.NewFlashcardService(db, cardRepo, vocabRepo, sessionRepo, cfg)
	statsService := service.NewStatsService(db, vocabRepo, cardRepo, sessionRepo)
	shotService := service.NewScreenshotService(db, shotRepo)

	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	cardHandler := handlers.NewFlashcardHandler(cardService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)
	shotHandler := handlers.NewScreenshotHandler(shotService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vocabulary", func(r chi.Router) {
			r.Post("/", vocabHandler.PostVocabulary)
			r.Get("/", vocabHandler.SearchVocabulary)
			r.Get("/status/{status}", vocabHandler.ListVocabularyByStatus)
			r.Get("/{vocab_id}", vocabHandler.GetVocabulary)
			r.Put("/{vocab_id}/status", vocabHandler.PutVocabularyStatus)
			r.Delete("/{vocab_id}", vocabHandler.DeleteVocabulary)
		})

		r.Route("/flashcards", func(r chi.Router) {
			r.Post("/", cardHandler.PostFlashcard)
			r.Get("/due", cardHandler.GetDueFlashcards)
			r.Post("/{flashcard_id}/review", cardHandler.PostReview)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/vocabulary", statsHandler.GetVocabularyStatistics)
			r.Get("/reviews", statsHandler.GetReviewStatistics)
		})

		r.Route("/screenshots", func(r chi.Router) {
			r.Post("/", shotHandler.PostScreenshot)
			r.Get("/{screenshot_id}", shotHandler.GetScreenshot)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}
