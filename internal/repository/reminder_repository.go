//go:generate mockery --name ReminderRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reminder *model.Reminder) error
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reminder, error)
	// FindDueUnsent は runAt <= now かつ未送信のReminderを返します (スケジューラ用)。
	FindDueUnsent(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.Reminder, error)
	MarkSent(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID, sentAt time.Time) error
	Delete(ctx context.Context, tx *gorm.DB, userID, reminderID uuid.UUID) error
}

type gormReminderRepository struct{}

func NewGormReminderRepository() ReminderRepository {
	return &gormReminderRepository{}
}

func (r *gormReminderRepository) Create(ctx context.Context, tx *gorm.DB, reminder *model.Reminder) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(reminder)
	if result.Error != nil {
		logger.Error("Error creating reminder in DB",
			"error", result.Error,
			"user_id", reminder.UserID.String(),
		)
		return fmt.Errorf("gormReminderRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReminderRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Reminder, error) {
	var reminders []*model.Reminder
	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("run_at ASC").
		Find(&reminders)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReminderRepository.FindByUser: %w", result.Error)
	}
	return reminders, nil
}

func (r *gormReminderRepository) FindDueUnsent(ctx context.Context, db *gorm.DB, now time.Time, limit int) ([]*model.Reminder, error) {
	var reminders []*model.Reminder
	result := db.WithContext(ctx).
		Where("run_at <= ? AND sent_at IS NULL", now).
		Order("run_at ASC").
		Limit(limit).
		Find(&reminders)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReminderRepository.FindDueUnsent: %w", result.Error)
	}
	return reminders, nil
}

func (r *gormReminderRepository) MarkSent(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID, sentAt time.Time) error {
	result := tx.WithContext(ctx).Model(&model.Reminder{}).
		Where("reminder_id = ? AND sent_at IS NULL", reminderID).
		Update("sent_at", sentAt)
	if result.Error != nil {
		return fmt.Errorf("gormReminderRepository.MarkSent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormReminderRepository) Delete(ctx context.Context, tx *gorm.DB, userID, reminderID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("user_id = ? AND reminder_id = ?", userID, reminderID).
		Delete(&model.Reminder{})
	if result.Error != nil {
		return fmt.Errorf("gormReminderRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
