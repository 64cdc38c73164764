// cmd/serve.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"go_4_track_keep/internal/config"
	"go_4_track_keep/internal/handlers"
	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/repository"
	"go_4_track_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "APIサーバーを起動します",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, db, err := bootstrap()
			if err != nil {
				slog.Error("Bootstrap failed", slog.Any("error", err))
				return err
			}
			defer closeDB(db, logger)
			return runServer(logger, db)
		},
	}
}

func runServer(logger *slog.Logger, db *gorm.DB) error {
	cfg := &config.Cfg

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	trackRepo := repository.NewGormTrackRepository()
	moduleRepo := repository.NewGormModuleRepository()
	logRepo := repository.NewGormStatusLogRepository()
	reminderRepo := repository.NewGormReminderRepository()

	var mailer service.Mailer
	if cfg.Mailer.Type == "ses" {
		mailer = service.NewSESMailer(cfg)
	} else {
		mailer = service.NewLogMailer()
	}

	authService := service.NewAuthService(db, userRepo, cfg)
	trackService := service.NewTrackService(db, trackRepo, moduleRepo)
	moduleService := service.NewModuleService(db, trackRepo, moduleRepo, logRepo)
	dashboardService := service.NewDashboardService(db, trackRepo, moduleRepo, logRepo, reminderRepo, cfg)
	reminderService := service.NewReminderService(db, reminderRepo, moduleRepo)

	authHandler := handlers.NewAuthHandler(authService, logger)
	trackHandler := handlers.NewTrackHandler(trackService, logger)
	moduleHandler := handlers.NewModuleHandler(moduleService, logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, logger)
	reminderHandler := handlers.NewReminderHandler(reminderService, logger)

	// リマインダー送信スケジューラ
	scheduler := service.NewReminderScheduler(db, reminderRepo, userRepo, mailer, logger)
	if cfg.Scheduler.Enabled {
		if err := scheduler.Start(cfg.Scheduler.Spec); err != nil {
			logger.Error("Failed to start reminder scheduler", slog.Any("error", err))
			return err
		}
		defer scheduler.Stop()
	} else {
		logger.Info("Reminder scheduler is disabled")
	}

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(cfg))

			r.Route("/tracks", func(r chi.Router) {
				r.Post("/", trackHandler.PostTrack)
				r.Get("/", trackHandler.GetTracks)
				r.Get("/{track_id}", trackHandler.GetTrack)
				r.Patch("/{track_id}", trackHandler.PatchTrack)
				r.Delete("/{track_id}", trackHandler.DeleteTrack)

				r.Post("/{track_id}/modules", moduleHandler.PostModule)
				r.Get("/{track_id}/modules", moduleHandler.GetModules)
			})

			r.Route("/modules", func(r chi.Router) {
				r.Get("/{module_id}", moduleHandler.GetModule)
				r.Patch("/{module_id}", moduleHandler.PatchModule)
				r.Delete("/{module_id}", moduleHandler.DeleteModule)
				r.Get("/{module_id}/logs", moduleHandler.GetStatusLogs)
			})

			r.Get("/dashboard", dashboardHandler.GetDashboard)

			r.Route("/reminders", func(r chi.Router) {
				r.Post("/", reminderHandler.PostReminder)
				r.Get("/", reminderHandler.GetReminders)
				r.Delete("/{reminder_id}", reminderHandler.DeleteReminder)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(req.Context(), "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(req.Context()); err != nil {
			slog.ErrorContext(req.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// HTTP Server with graceful shutdown
	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Server listening", slog.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Error("Server error", slog.Any("error", err))
		return err
	case sig := <-quit:
		logger.Info("Shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.Any("error", err))
		return err
	}

	logger.Info("Server stopped gracefully")
	return nil
}
