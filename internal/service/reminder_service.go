package service

import (
	"context"
	"errors"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderService interface {
	CreateReminder(ctx context.Context, userID uuid.UUID, req *model.CreateReminderRequest) (*model.Reminder, error)
	ListReminders(ctx context.Context, userID uuid.UUID) ([]*model.Reminder, error)
	DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error
}

type reminderService struct {
	db           *gorm.DB
	reminderRepo repository.ReminderRepository
	moduleRepo   repository.ModuleRepository
}

func NewReminderService(db *gorm.DB, reminderRepo repository.ReminderRepository, moduleRepo repository.ModuleRepository) ReminderService {
	return &reminderService{
		db:           db,
		reminderRepo: reminderRepo,
		moduleRepo:   moduleRepo,
	}
}

func (s *reminderService) CreateReminder(ctx context.Context, userID uuid.UUID, req *model.CreateReminderRequest) (*model.Reminder, error) {
	logger := middleware.GetLogger(ctx)

	var created *model.Reminder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Moduleに紐づける場合は所有チェック
		if req.ModuleID != nil {
			if _, err := s.moduleRepo.FindByID(ctx, tx, userID, *req.ModuleID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "module_id", model.ErrNotFound)
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
		}

		reminder := &model.Reminder{
			ReminderID: uuid.New(),
			UserID:     userID,
			ModuleID:   req.ModuleID,
			Message:    req.Message,
			RunAt:      req.RunAt,
		}
		if err := s.reminderRepo.Create(ctx, tx, reminder); err != nil {
			logger.Error("Failed to create reminder in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リマインダーの作成に失敗しました。", "", err)
		}
		created = reminder
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reminder created", "reminder_id", created.ReminderID, "user_id", userID)
	return created, nil
}

func (s *reminderService) ListReminders(ctx context.Context, userID uuid.UUID) ([]*model.Reminder, error) {
	reminders, err := s.reminderRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return reminders, nil
}

func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reminderRepo.Delete(ctx, tx, userID, reminderID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("REMINDER_NOT_FOUND", "リマインダーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete reminder in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "リマインダーの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Reminder deleted", "reminder_id", reminderID, "user_id", userID)
	return nil
}
