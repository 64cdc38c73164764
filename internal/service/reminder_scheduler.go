package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const dueReminderBatchSize = 100

// ReminderScheduler は期限を迎えたReminderを定期的に拾い、メールで送信します。
type ReminderScheduler struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	userRepo     repository.UserRepository
	mailer       Mailer
	logger       *slog.Logger
	cron         *cron.Cron
}

func NewReminderScheduler(db *gorm.DB, reminderRepo repository.ReminderRepository, userRepo repository.UserRepository, mailer Mailer, logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		db:           db,
		reminderRepo: reminderRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		logger:       logger,
		cron:         cron.New(),
	}
}

// Start は指定されたcron仕様で送信ジョブを登録し、スケジューラを起動します。
func (s *ReminderScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := s.DispatchDue(ctx); err != nil {
			s.logger.Error("Reminder dispatch run failed", "error", err)
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Reminder scheduler started", "spec", spec)
	return nil
}

// Stop は実行中のジョブの完了を待ってスケジューラを停止します。
func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}

// DispatchDue は期限を迎えた未送信Reminderをまとめて送信します。
// 送信成功したものだけをsent_atでマークするため、失敗分は次回の実行で再試行されます。
func (s *ReminderScheduler) DispatchDue(ctx context.Context) error {
	now := time.Now()

	due, err := s.reminderRepo.FindDueUnsent(ctx, s.db, now, dueReminderBatchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	s.logger.Info("Dispatching due reminders", "count", len(due))

	for _, r := range due {
		user, err := s.userRepo.FindByID(ctx, s.db, r.UserID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				// ユーザーが消えたReminderは送信済み扱いにして打ち止めにする
				s.logger.Warn("Reminder owner not found, marking as sent", "reminder_id", r.ReminderID)
				_ = s.markSent(ctx, r.ReminderID, now)
				continue
			}
			s.logger.Error("Failed to load reminder owner", "error", err, "reminder_id", r.ReminderID)
			continue
		}

		if err := s.mailer.Send(ctx, user.Email, "学習リマインダー", r.Message); err != nil {
			s.logger.Error("Failed to send reminder email", "error", err, "reminder_id", r.ReminderID)
			continue
		}

		if err := s.markSent(ctx, r.ReminderID, now); err != nil {
			s.logger.Error("Failed to mark reminder as sent", "error", err, "reminder_id", r.ReminderID)
		}
	}
	return nil
}

func (s *ReminderScheduler) markSent(ctx context.Context, reminderID uuid.UUID, sentAt time.Time) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.reminderRepo.MarkSent(ctx, tx, reminderID, sentAt)
	})
}
