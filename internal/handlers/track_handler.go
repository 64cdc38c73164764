package handlers

import (
	"log/slog"
	"net/http"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/service"
	"go_4_track_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TrackHandler struct {
	service service.TrackService
	logger  *slog.Logger
}

func NewTrackHandler(s service.TrackService, logger *slog.Logger) *TrackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackHandler{
		service: s,
		logger:  logger,
	}
}

// PostTrack は新しいTrackを作成するハンドラ
func (h *TrackHandler) PostTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostTrack"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateTrackRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	track, err := h.service.CreateTrack(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating track in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track created successfully", slog.String("track_id", track.TrackID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, track, logger)
}

// GetTracks はTrack一覧を取得するハンドラ。各Trackには進捗率が含まれる
func (h *TrackHandler) GetTracks(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTracks"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	tracks, err := h.service.ListTracks(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing tracks in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if tracks == nil {
		tracks = []*model.TrackResponse{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, tracks, logger)
}

// GetTrack は特定のTrackを取得するハンドラ
func (h *TrackHandler) GetTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTrack"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}

	track, err := h.service.GetTrack(r.Context(), userID, trackID)
	if err != nil {
		logger.Warn("Error getting track in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, track, logger)
}

// PatchTrack はTrackを部分更新するハンドラ
func (h *TrackHandler) PatchTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchTrack"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}

	var req model.UpdateTrackRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.ValidateStruct(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	track, err := h.service.UpdateTrack(r.Context(), userID, trackID, &req)
	if err != nil {
		logger.Error("Error updating track in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track updated successfully", slog.String("track_id", trackID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, track, logger)
}

// DeleteTrack はTrackを削除するハンドラ。配下のModuleとStatusLogも消える
func (h *TrackHandler) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTrack"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	trackID, ok := parseUUIDParam(w, r, logger, "track_id")
	if !ok {
		return
	}

	if err := h.service.DeleteTrack(r.Context(), userID, trackID); err != nil {
		logger.Error("Error deleting track in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Track deleted successfully", slog.String("track_id", trackID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// parseUUIDParam はURLパラメータをUUIDとしてパースします。失敗時はレスポンス書き込み済み。
func parseUUIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger, name string) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, name)
	id, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid UUID format in URL", slog.String("param", name), slog.String("value", idStr))
		appErr := model.NewAppError("INVALID_URL_PARAM", name+"の形式が正しくありません。", name, model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return id, true
}
