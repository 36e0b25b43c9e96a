// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
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

	"reel_lingo_backend/internal/config"
	"reel_lingo_backend/internal/handlers"
	"reel_lingo_backend/internal/middleware"
	"reel_lingo_backend/internal/repository"
	"reel_lingo_backend/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger so config loading failures are visible.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
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
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
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

	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	// Dependency injection.
	catalogRepo := repository.NewGormCatalogRepository()
	attemptRepo := repository.NewGormAttemptRepository()
	feedbackRepo := repository.NewGormFeedbackRepository()
	progressRepo := repository.NewGormProgressRepository()
	userRepo := repository.NewGormUserRepository()
	reelRepo := repository.NewGormReelRepository()

	evaluator := service.NewEvaluator(config.Cfg.App.OpenAIAPIKey)
	progressService := service.NewProgressService(db, catalogRepo, attemptRepo, progressRepo)
	submissionService := service.NewSubmissionService(db, catalogRepo, attemptRepo, feedbackRepo, reelRepo, progressService, evaluator)
	catalogService := service.NewCatalogService(db, catalogRepo, progressRepo, progressService)
	feedbackService := service.NewFeedbackService(db, feedbackRepo, config.Cfg.App.FeedbackLimit)
	reelService := service.NewReelService(db, reelRepo, catalogRepo)
	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	userService := service.NewUserService(db, userRepo)
	speechService := service.NewSpeechService(db, userRepo, service.NewNoopSynthesizer())

	authHandler := handlers.NewAuthHandler(authService, userService, logger)
	userHandler := handlers.NewUserHandler(userService, progressService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	readingHandler := handlers.NewReadingHandler(catalogService, submissionService, logger)
	listeningHandler := handlers.NewListeningHandler(catalogService, submissionService, logger)
	writingHandler := handlers.NewWritingHandler(catalogService, submissionService, logger)
	speakingHandler := handlers.NewSpeakingHandler(catalogService, submissionService, logger)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, logger)
	reelHandler := handlers.NewReelHandler(reelService, submissionService, logger)
	speechHandler := handlers.NewSpeechHandler(speechService, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Patch("/profile", userHandler.UpdateProfile)
				r.Get("/progress", userHandler.GetProgress)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", catalogHandler.GetCategories)
				r.Get("/{slug}/levels", catalogHandler.GetCategoryLevels)
			})

			r.Route("/reading", func(r chi.Router) {
				r.Get("/levels/{level_id}/texts", readingHandler.ListTexts)
				r.Get("/texts/{text_id}", readingHandler.GetText)
				r.Post("/texts/{text_id}/submit", readingHandler.Submit)
			})

			r.Route("/listening", func(r chi.Router) {
				r.Get("/levels/{level_id}/audios", listeningHandler.ListAudios)
				r.Post("/audios/{audio_id}/submit", listeningHandler.Submit)
			})

			r.Route("/writing", func(r chi.Router) {
				r.Get("/levels/{level_id}/topics", writingHandler.ListTopics)
				r.Post("/topics/{topic_id}/submit", writingHandler.Submit)
			})

			r.Route("/speaking", func(r chi.Router) {
				r.Get("/levels/{level_id}/exercises", speakingHandler.ListExercises)
				r.Post("/exercises/{exercise_id}/submit", speakingHandler.Submit)
			})

			r.Route("/feedback", func(r chi.Router) {
				r.Get("/", feedbackHandler.List)
				r.Get("/{type}/{attempt_id}", feedbackHandler.GetForAttempt)
			})

			r.Route("/reels", func(r chi.Router) {
				r.Get("/", reelHandler.ListReels)
				r.Get("/batches", reelHandler.ListBatches)
				r.Post("/batches", reelHandler.CreateBatch)
				r.Get("/batches/{batch_id}", reelHandler.GetBatch)
				r.Post("/batches/{batch_id}/question", reelHandler.SetQuestion)
				r.Post("/batches/{batch_id}/submit", reelHandler.Submit)
				r.Get("/{reel_id}", reelHandler.GetReel)
				r.Get("/{reel_id}/dubbing", reelHandler.GetDubbing)
			})

			r.Route("/speech", func(r chi.Router) {
				r.Get("/status", speechHandler.Status)
				r.Post("/tts", speechHandler.Synthesize)
				r.Post("/stt", speechHandler.Transcribe)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
