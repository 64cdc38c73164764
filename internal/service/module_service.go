package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleService interface {
	CreateModule(ctx context.Context, userID, trackID uuid.UUID, req *model.CreateModuleRequest) (*model.Module, error)
	GetModule(ctx context.Context, userID, moduleID uuid.UUID) (*model.Module, error)
	ListModules(ctx context.Context, userID, trackID uuid.UUID) ([]*model.Module, error)
	UpdateModule(ctx context.Context, userID, moduleID uuid.UUID, req *model.UpdateModuleRequest) (*model.Module, error)
	DeleteModule(ctx context.Context, userID, moduleID uuid.UUID) error
	ListStatusLogs(ctx context.Context, userID, moduleID uuid.UUID) ([]*model.StatusLog, error)
	// ReconcileStatuses は全Moduleの現在ステータスを最新のStatusLogに合わせて修復し、
	// 修復した件数を返します。新しいログは書き込みません。
	ReconcileStatuses(ctx context.Context) (int, error)
}

type moduleService struct {
	db         *gorm.DB // トランザクション用にDB接続を持つ
	trackRepo  repository.TrackRepository
	moduleRepo repository.ModuleRepository
	logRepo    repository.StatusLogRepository
}

func NewModuleService(db *gorm.DB, trackRepo repository.TrackRepository, moduleRepo repository.ModuleRepository, logRepo repository.StatusLogRepository) ModuleService {
	return &moduleService{
		db:         db,
		trackRepo:  trackRepo,
		moduleRepo: moduleRepo,
		logRepo:    logRepo,
	}
}

// CreateModule はTrack末尾に新しいModuleを追加し、作成エントリをログに記録します。
// Module本体と最初のStatusLogは同一トランザクションで書き込まれます。
func (s *moduleService) CreateModule(ctx context.Context, userID, trackID uuid.UUID, req *model.CreateModuleRequest) (*model.Module, error) {
	logger := middleware.GetLogger(ctx)

	status := model.StatusTodo
	if req.Status != "" {
		if !req.Status.IsValid() {
			return nil, model.NewAppError("INVALID_STATUS", "モジュールのステータスが不正です。", "status", model.ErrInvalidInput)
		}
		status = req.Status
	}

	var createdModule *model.Module

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 所有チェック
		if _, err := s.trackRepo.FindByID(ctx, tx, userID, trackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TRACK_NOT_FOUND", "トラックが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find track for module creation", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// 末尾position = 現在の最大値 + 1 (Moduleが無ければ1)
		maxPos, err := s.moduleRepo.MaxPosition(ctx, tx, trackID)
		if err != nil {
			logger.Error("Failed to get max position", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		module := &model.Module{
			ModuleID:    uuid.New(),
			TrackID:     trackID,
			Title:       req.Title,
			ExternalURL: req.ExternalURL,
			StartDate:   req.StartDate,
			DueDate:     req.DueDate,
			Status:      status,
			Position:    maxPos + 1,
		}
		if err := s.moduleRepo.Create(ctx, tx, module); err != nil {
			logger.Error("Failed to create module in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの作成に失敗しました。", "", err)
		}

		// 作成エントリ。OldStatusはnil、Noteは固定文字列
		entry := &model.StatusLog{
			LogID:     uuid.New(),
			ModuleID:  module.ModuleID,
			OldStatus: nil,
			NewStatus: module.Status,
			Note:      "created",
			ChangedAt: time.Now(),
		}
		if err := s.logRepo.Create(ctx, tx, entry); err != nil {
			logger.Error("Failed to append creation log", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの作成に失敗しました。", "", err)
		}

		createdModule = module
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Module created",
		"module_id", createdModule.ModuleID,
		"track_id", trackID,
		"position", createdModule.Position,
	)
	return createdModule, nil
}

func (s *moduleService) GetModule(ctx context.Context, userID, moduleID uuid.UUID) (*model.Module, error) {
	module, err := s.moduleRepo.FindByID(ctx, s.db, userID, moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return module, nil
}

func (s *moduleService) ListModules(ctx context.Context, userID, trackID uuid.UUID) ([]*model.Module, error) {
	if _, err := s.trackRepo.FindByID(ctx, s.db, userID, trackID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TRACK_NOT_FOUND", "トラックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	modules, err := s.moduleRepo.FindByTrack(ctx, s.db, trackID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return modules, nil
}

// UpdateModule はModuleを部分更新します。ステータスが実際に変化する場合のみ
// 遷移チェックを行い、更新と同一トランザクションで遷移ログを追記します。
// 同じステータスへの更新はログを生みません。
func (s *moduleService) UpdateModule(ctx context.Context, userID, moduleID uuid.UUID, req *model.UpdateModuleRequest) (*model.Module, error) {
	logger := middleware.GetLogger(ctx)

	var updatedModule *model.Module

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.moduleRepo.FindByID(ctx, tx, userID, moduleID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to find module for update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.ExternalURL != nil {
			updates["external_url"] = *req.ExternalURL
		}
		if req.StartDate != nil {
			updates["start_date"] = *req.StartDate
		}
		if req.DueDate != nil {
			updates["due_date"] = *req.DueDate
		}

		statusChanged := req.Status != nil && *req.Status != current.Status
		if statusChanged {
			if !req.Status.IsValid() {
				return model.NewAppError("INVALID_STATUS", "モジュールのステータスが不正です。", "status", model.ErrInvalidInput)
			}
			if !model.CanTransition(current.Status, *req.Status) {
				return model.NewAppError("INVALID_TRANSITION",
					fmt.Sprintf("ステータスを %s から %s に変更できません。", current.Status, *req.Status),
					"status", model.ErrInvalidInput)
			}
			updates["status"] = *req.Status
		}

		if err := s.moduleRepo.Update(ctx, tx, moduleID, updates); err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to update module in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの更新に失敗しました。", "", err)
		}

		if statusChanged {
			oldStatus := current.Status
			entry := &model.StatusLog{
				LogID:     uuid.New(),
				ModuleID:  moduleID,
				OldStatus: &oldStatus,
				NewStatus: *req.Status,
				Note:      fmt.Sprintf("status changed %s → %s", oldStatus, *req.Status),
				ChangedAt: time.Now(),
			}
			if err := s.logRepo.Create(ctx, tx, entry); err != nil {
				logger.Error("Failed to append transition log", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの更新に失敗しました。", "", err)
			}
		}

		module, err := s.moduleRepo.FindByID(ctx, tx, userID, moduleID)
		if err != nil {
			logger.Error("Failed to reload module after update", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		updatedModule = module
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Module updated", "module_id", moduleID, "user_id", userID)
	return updatedModule, nil
}

func (s *moduleService) DeleteModule(ctx context.Context, userID, moduleID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 所有チェック。他ユーザーのModuleはNotFound扱い
		if _, err := s.moduleRepo.FindByID(ctx, tx, userID, moduleID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.moduleRepo.Delete(ctx, tx, moduleID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete module in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "モジュールの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Module deleted", "module_id", moduleID, "user_id", userID)
	return nil
}

func (s *moduleService) ListStatusLogs(ctx context.Context, userID, moduleID uuid.UUID) ([]*model.StatusLog, error) {
	// 所有チェックを兼ねてModuleの存在を確認する
	if _, err := s.moduleRepo.FindByID(ctx, s.db, userID, moduleID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("MODULE_NOT_FOUND", "モジュールが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	logs, err := s.logRepo.FindByModule(ctx, s.db, userID, moduleID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	return logs, nil
}

// ReconcileStatuses は全Moduleを走査し、現在ステータスが最新のStatusLogの
// NewStatusと食い違っているものをログ側に合わせて修復します。
// ログが1件も無いModuleは todo に戻します。
func (s *moduleService) ReconcileStatuses(ctx context.Context) (int, error) {
	logger := middleware.GetLogger(ctx)
	repaired := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		modules, err := s.moduleRepo.FindAll(ctx, tx)
		if err != nil {
			logger.Error("Failed to list modules for reconcile", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		for _, m := range modules {
			expected := model.StatusTodo
			latest, err := s.logRepo.FindLatestByModule(ctx, tx, m.ModuleID)
			if err != nil {
				if !errors.Is(err, model.ErrNotFound) {
					logger.Error("Failed to find latest status log", "error", err, "module_id", m.ModuleID)
					return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
				}
			} else {
				expected = latest.NewStatus
			}

			if m.Status == expected {
				continue
			}

			logger.Warn("Module status diverged from ledger, repairing",
				"module_id", m.ModuleID,
				"current", string(m.Status),
				"expected", string(expected),
			)
			if err := s.moduleRepo.Update(ctx, tx, m.ModuleID, map[string]interface{}{"status": expected}); err != nil {
				logger.Error("Failed to repair module status", "error", err, "module_id", m.ModuleID)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "ステータスの修復に失敗しました。", "", err)
			}
			repaired++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("Status reconcile finished", "repaired", repaired)
	return repaired, nil
}
