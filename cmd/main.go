// cmd/main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"go_4_track_keep/internal/config"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"
	"go_4_track_keep/internal/service"

	"gorm.io/gorm"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "学習トラック管理サービス",
		Version:      config.AppVersion,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "設定ファイルのディレクトリ")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newReconcileCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogger はConfig読み込み後にアプリケーション全体のロガーを初期化します。
// APP_ENV=dev のときだけ人間向けのtintハンドラを使います。
func setupLogger() *slog.Logger {
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
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// bootstrap はConfigを読み込み、ロガーとDB接続を初期化します。
func bootstrap() (*slog.Logger, *gorm.DB, error) {
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig(configPath); err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	logger := setupLogger()
	logger.Info("Application starting...", slog.String("version", config.AppVersion))

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing database: %w", err)
	}
	return logger, db, nil
}

func closeDB(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", slog.Any("error", err))
	} else {
		logger.Info("Database connection closed.")
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "データベーススキーマを最新化します",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, db, err := bootstrap()
			if err != nil {
				slog.Error("Bootstrap failed", slog.Any("error", err))
				return err
			}
			defer closeDB(db, logger)

			logger.Info("Running migrations...")
			if err := db.AutoMigrate(
				&model.User{},
				&model.Track{},
				&model.Module{},
				&model.StatusLog{},
				&model.Reminder{},
			); err != nil {
				logger.Error("Migration failed", slog.Any("error", err))
				return err
			}
			logger.Info("Migrations applied successfully")
			return nil
		},
	}
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Moduleの現在ステータスを監査ログと突き合わせて修復します",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, db, err := bootstrap()
			if err != nil {
				slog.Error("Bootstrap failed", slog.Any("error", err))
				return err
			}
			defer closeDB(db, logger)

			trackRepo := repository.NewGormTrackRepository()
			moduleRepo := repository.NewGormModuleRepository()
			logRepo := repository.NewGormStatusLogRepository()
			moduleService := service.NewModuleService(db, trackRepo, moduleRepo, logRepo)

			repaired, err := moduleService.ReconcileStatuses(cmd.Context())
			if err != nil {
				logger.Error("Reconcile failed", slog.Any("error", err))
				return err
			}
			fmt.Printf("reconciled %d module(s)\n", repaired)
			return nil
		},
	}
}
