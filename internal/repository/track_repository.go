//go:generate mockery --name TrackRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrackRepository interface {
	Create(ctx context.Context, tx *gorm.DB, track *model.Track) error
	// FindByID は所有者スコープで検索します。他ユーザーのTrackは存在しない扱い (ErrNotFound)。
	FindByID(ctx context.Context, db *gorm.DB, userID, trackID uuid.UUID) (*model.Track, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Track, error)
	Update(ctx context.Context, tx *gorm.DB, userID, trackID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID, trackID uuid.UUID) error
}

type gormTrackRepository struct{}

func NewGormTrackRepository() TrackRepository {
	return &gormTrackRepository{}
}

func (r *gormTrackRepository) Create(ctx context.Context, tx *gorm.DB, track *model.Track) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(track)
	if result.Error != nil {
		logger.Error("Error creating track in DB",
			"error", result.Error,
			"user_id", track.UserID.String(),
			"title", track.Title,
		)
		return fmt.Errorf("gormTrackRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTrackRepository) FindByID(ctx context.Context, db *gorm.DB, userID, trackID uuid.UUID) (*model.Track, error) {
	var track model.Track
	result := db.WithContext(ctx).Where("user_id = ? AND track_id = ?", userID, trackID).First(&track)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormTrackRepository.FindByID: %w", result.Error)
	}
	return &track, nil
}

func (r *gormTrackRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Track, error) {
	var tracks []*model.Track
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&tracks)
	if result.Error != nil {
		return nil, fmt.Errorf("gormTrackRepository.FindByUser: %w", result.Error)
	}
	return tracks, nil
}

func (r *gormTrackRepository) Update(ctx context.Context, tx *gorm.DB, userID, trackID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Track{}).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormTrackRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormTrackRepository) Delete(ctx context.Context, tx *gorm.DB, userID, trackID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	// Track配下のModuleとそのStatusLogを同一トランザクションでカスケード削除する。
	// DB側のFK制約にも OnDelete:CASCADE を張っているが、ドライバ差異に依存しないよう明示的に消す。
	var moduleIDs []uuid.UUID
	if err := tx.WithContext(ctx).Model(&model.Module{}).
		Where("track_id = ?", trackID).
		Pluck("module_id", &moduleIDs).Error; err != nil {
		return fmt.Errorf("gormTrackRepository.Delete: %w", err)
	}
	if len(moduleIDs) > 0 {
		if err := tx.WithContext(ctx).Where("module_id IN ?", moduleIDs).Delete(&model.StatusLog{}).Error; err != nil {
			return fmt.Errorf("gormTrackRepository.Delete: %w", err)
		}
		if err := tx.WithContext(ctx).Where("track_id = ?", trackID).Delete(&model.Module{}).Error; err != nil {
			return fmt.Errorf("gormTrackRepository.Delete: %w", err)
		}
	}

	result := tx.WithContext(ctx).Where("user_id = ? AND track_id = ?", userID, trackID).Delete(&model.Track{})
	if result.Error != nil {
		logger.Error("Error deleting track in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"track_id", trackID.String(),
		)
		return fmt.Errorf("gormTrackRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
