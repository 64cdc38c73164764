//go:generate mockery --name StatusLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusLogRepository はステータス監査ログへのアクセスを提供します。
// インターフェースは意図的に追記と読み取りだけを公開します。
// 更新・削除APIは存在せず、削除はModule/Trackのカスケードでのみ起こります。
type StatusLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.StatusLog) error
	// FindInRange は changedAt ∈ [since, until) のエントリを、指定ユーザーが所有する
	// Track配下のModuleに限定して返します。newStatus が非nilの場合はその値で絞り込みます。
	// 並び順は契約外であり、呼び出し側は順序に依存してはいけません。
	FindInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, newStatus *model.ModuleStatus, since, until time.Time) ([]*model.StatusLog, error)
	FindByModule(ctx context.Context, db *gorm.DB, userID, moduleID uuid.UUID) ([]*model.StatusLog, error)
	FindLatestByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.StatusLog, error)
}

type gormStatusLogRepository struct{}

func NewGormStatusLogRepository() StatusLogRepository {
	return &gormStatusLogRepository{}
}

func (r *gormStatusLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.StatusLog) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(log)
	if result.Error != nil {
		logger.Error("Error appending status log in DB",
			"error", result.Error,
			"module_id", log.ModuleID.String(),
			"new_status", string(log.NewStatus),
		)
		return fmt.Errorf("gormStatusLogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStatusLogRepository) FindInRange(ctx context.Context, db *gorm.DB, userID uuid.UUID, newStatus *model.ModuleStatus, since, until time.Time) ([]*model.StatusLog, error) {
	var logs []*model.StatusLog
	query := db.WithContext(ctx).Model(&model.StatusLog{}).
		Joins("JOIN modules ON modules.module_id = status_logs.module_id").
		Joins("JOIN tracks ON tracks.track_id = modules.track_id").
		Where("tracks.user_id = ?", userID).
		Where("status_logs.changed_at >= ? AND status_logs.changed_at < ?", since, until)
	if newStatus != nil {
		query = query.Where("status_logs.new_status = ?", *newStatus)
	}
	result := query.Find(&logs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStatusLogRepository.FindInRange: %w", result.Error)
	}
	return logs, nil
}

func (r *gormStatusLogRepository) FindByModule(ctx context.Context, db *gorm.DB, userID, moduleID uuid.UUID) ([]*model.StatusLog, error) {
	var logs []*model.StatusLog
	result := db.WithContext(ctx).Model(&model.StatusLog{}).
		Joins("JOIN modules ON modules.module_id = status_logs.module_id").
		Joins("JOIN tracks ON tracks.track_id = modules.track_id").
		Where("tracks.user_id = ? AND status_logs.module_id = ?", userID, moduleID).
		Order("status_logs.changed_at ASC").
		Find(&logs)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStatusLogRepository.FindByModule: %w", result.Error)
	}
	return logs, nil
}

func (r *gormStatusLogRepository) FindLatestByModule(ctx context.Context, db *gorm.DB, moduleID uuid.UUID) (*model.StatusLog, error) {
	var log model.StatusLog
	result := db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("changed_at DESC").
		First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormStatusLogRepository.FindLatestByModule: %w", result.Error)
	}
	return &log, nil
}
