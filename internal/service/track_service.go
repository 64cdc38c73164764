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

type TrackService interface {
	CreateTrack(ctx context.Context, userID uuid.UUID, req *model.CreateTrackRequest) (*model.Track, error)
	GetTrack(ctx context.Context, userID, trackID uuid.UUID) (*model.TrackResponse, error)
	ListTracks(ctx context.Context, userID uuid.UUID) ([]*model.TrackResponse, error)
	UpdateTrack(ctx context.Context, userID, trackID uuid.UUID, req *model.UpdateTrackRequest) (*model.Track, error)
	DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error
}

type trackService struct {
	db         *gorm.DB // トランザクション用にDB接続を持つ
	trackRepo  repository.TrackRepository
	moduleRepo repository.ModuleRepository
}

func NewTrackService(db *gorm.DB, trackRepo repository.TrackRepository, moduleRepo repository.ModuleRepository) TrackService {
	return &trackService{
		db:         db,
		trackRepo:  trackRepo,
		moduleRepo: moduleRepo,
	}
}

func (s *trackService) CreateTrack(ctx context.Context, userID uuid.UUID, req *model.CreateTrackRequest) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)

	status := model.TrackDraft
	if req.Status != "" {
		status = model.TrackStatus(req.Status)
		if !status.IsValid() {
			return nil, model.NewAppError("INVALID_STATUS", "トラックのステータスが不正です。", "status", model.ErrInvalidInput)
		}
	}

	track := &model.Track{
		TrackID:     uuid.New(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Goals:       req.Goals,
		Status:      status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.trackRepo.Create(ctx, tx, track); err != nil {
			logger.Error("Failed to create track in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トラックの作成に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Track created", "track_id", track.TrackID, "user_id", userID)
	return track, nil
}

func (s *trackService) GetTrack(ctx context.Context, userID, trackID uuid.UUID) (*model.TrackResponse, error) {
	track, err := s.trackRepo.FindByID(ctx, s.db, userID, trackID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TRACK_NOT_FOUND", "トラックが見つかりません。", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	modules, err := s.moduleRepo.FindByTrack(ctx, s.db, trackID)
	if err != nil {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	resp := buildTrackResponse(track, modules)
	return resp, nil
}

func (s *trackService) ListTracks(ctx context.Context, userID uuid.UUID) ([]*model.TrackResponse, error) {
	logger := middleware.GetLogger(ctx)

	tracks, err := s.trackRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list tracks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	modules, err := s.moduleRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list modules for tracks", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	// Track単位にModuleをまとめてから集計する
	byTrack := make(map[uuid.UUID][]*model.Module, len(tracks))
	for _, m := range modules {
		byTrack[m.TrackID] = append(byTrack[m.TrackID], m)
	}

	responses := make([]*model.TrackResponse, 0, len(tracks))
	for _, t := range tracks {
		responses = append(responses, buildTrackResponse(t, byTrack[t.TrackID]))
	}
	return responses, nil
}

func (s *trackService) UpdateTrack(ctx context.Context, userID, trackID uuid.UUID, req *model.UpdateTrackRequest) (*model.Track, error) {
	logger := middleware.GetLogger(ctx)

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Goals != nil {
		updates["goals"] = *req.Goals
	}
	if req.Status != nil {
		status := model.TrackStatus(*req.Status)
		if !status.IsValid() {
			return nil, model.NewAppError("INVALID_STATUS", "トラックのステータスが不正です。", "status", model.ErrInvalidInput)
		}
		updates["status"] = status
	}

	var updated *model.Track
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.trackRepo.FindByID(ctx, tx, userID, trackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TRACK_NOT_FOUND", "トラックが見つかりません。", "", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		if err := s.trackRepo.Update(ctx, tx, userID, trackID, updates); err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to update track in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トラックの更新に失敗しました。", "", err)
		}

		track, err := s.trackRepo.FindByID(ctx, tx, userID, trackID)
		if err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		updated = track
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Track updated", "track_id", trackID, "user_id", userID)
	return updated, nil
}

func (s *trackService) DeleteTrack(ctx context.Context, userID, trackID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.trackRepo.Delete(ctx, tx, userID, trackID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("TRACK_NOT_FOUND", "トラックが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete track in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "トラックの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Track deleted", "track_id", trackID, "user_id", userID)
	return nil
}

func buildTrackResponse(track *model.Track, modules []*model.Module) *model.TrackResponse {
	done := 0
	for _, m := range modules {
		if m.Status == model.StatusDone {
			done++
		}
	}
	return &model.TrackResponse{
		TrackID:     track.TrackID,
		Title:       track.Title,
		Description: track.Description,
		Goals:       track.Goals,
		Status:      track.Status,
		ModuleCount: len(modules),
		DoneCount:   done,
		Progress:    model.TrackProgress(done, len(modules)),
		CreatedAt:   track.CreatedAt,
		UpdatedAt:   track.UpdatedAt,
	}
}
