//go:generate mockery --name ModuleRepository --output ./mocks --outpkg mocks --case=underscore
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

type ModuleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, module *model.Module) error
	// FindByID は module → track → user の所有チェーンで検索します。
	// 他ユーザーのModuleは存在しない扱い (ErrNotFound)。
	FindByID(ctx context.Context, db *gorm.DB, userID, moduleID uuid.UUID) (*model.Module, error)
	FindByTrack(ctx context.Context, db *gorm.DB, trackID uuid.UUID) ([]*model.Module, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Module, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Module, error)
	MaxPosition(ctx context.Context, tx *gorm.DB, trackID uuid.UUID) (int, error)
	Update(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) error
}

type gormModuleRepository struct{}

func NewGormModuleRepository() ModuleRepository {
	return &gormModuleRepository{}
}

func (r *gormModuleRepository) Create(ctx context.Context, tx *gorm.DB, module *model.Module) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(module)
	if result.Error != nil {
		logger.Error("Error creating module in DB",
			"error", result.Error,
			"track_id", module.TrackID.String(),
			"title", module.Title,
		)
		return fmt.Errorf("gormModuleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormModuleRepository) FindByID(ctx context.Context, db *gorm.DB, userID, moduleID uuid.UUID) (*model.Module, error) {
	var module model.Module
	result := db.WithContext(ctx).
		Joins("JOIN tracks ON tracks.track_id = modules.track_id").
		Where("tracks.user_id = ? AND modules.module_id = ?", userID, moduleID).
		First(&module)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormModuleRepository.FindByID: %w", result.Error)
	}
	return &module, nil
}

func (r *gormModuleRepository) FindByTrack(ctx context.Context, db *gorm.DB, trackID uuid.UUID) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).
		Where("track_id = ?", trackID).
		Order("position ASC").
		Find(&modules)
	if result.Error != nil {
		return nil, fmt.Errorf("gormModuleRepository.FindByTrack: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).
		Joins("JOIN tracks ON tracks.track_id = modules.track_id").
		Where("tracks.user_id = ?", userID).
		Find(&modules)
	if result.Error != nil {
		return nil, fmt.Errorf("gormModuleRepository.FindByUser: %w", result.Error)
	}
	return modules, nil
}

func (r *gormModuleRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Module, error) {
	var modules []*model.Module
	result := db.WithContext(ctx).Find(&modules)
	if result.Error != nil {
		return nil, fmt.Errorf("gormModuleRepository.FindAll: %w", result.Error)
	}
	return modules, nil
}

// MaxPosition はTrack内の最大positionを返します。Moduleが存在しない場合は0。
func (r *gormModuleRepository) MaxPosition(ctx context.Context, tx *gorm.DB, trackID uuid.UUID) (int, error) {
	var max int
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("track_id = ?", trackID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max)
	if result.Error != nil {
		return 0, fmt.Errorf("gormModuleRepository.MaxPosition: %w", result.Error)
	}
	return max, nil
}

func (r *gormModuleRepository) Update(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Module{}).
		Where("module_id = ?", moduleID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("gormModuleRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はModuleと、そのModuleに属するStatusLogを同一トランザクションで削除します。
// StatusLogの削除はこのカスケードだけで起こり、StatusLogRepositoryは削除APIを持ちません。
func (r *gormModuleRepository) Delete(ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("module_id = ?", moduleID).Delete(&model.StatusLog{}).Error; err != nil {
		logger.Error("Error deleting status logs in DB",
			"error", err,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormModuleRepository.Delete: %w", err)
	}

	result := tx.WithContext(ctx).Where("module_id = ?", moduleID).Delete(&model.Module{})
	if result.Error != nil {
		logger.Error("Error deleting module in DB",
			"error", result.Error,
			"module_id", moduleID.String(),
		)
		return fmt.Errorf("gormModuleRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
