package handlers

import (
	"log/slog"
	"net/http"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/service"
	"go_4_track_keep/internal/webutil"
)

type ModuleHandler struct {
	service service.ModuleService
	logger  *slog.Logger
}

func NewModuleHandler(s service.ModuleService, logger *slog.Logger) *ModuleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModuleHandler{
		service: s,
		logger:  logger,
	}
}

// PostModule はTrack末尾に新しいModuleを追加するハンドラ
func (h *ModuleHandler) PostModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostModule"))

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

	var req model.CreateModuleRequest
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

	module, err := h.service.CreateModule(r.Context(), userID, trackID, &req)
	if err != nil {
		logger.Error("Error creating module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module created successfully", slog.String("module_id", module.ModuleID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, module, logger)
}

// GetModules はTrack内のModule一覧をposition順で取得するハンドラ
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModules"))

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

	modules, err := h.service.ListModules(r.Context(), userID, trackID)
	if err != nil {
		logger.Warn("Error listing modules in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if modules == nil {
		modules = []*model.Module{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, modules, logger)
}

// GetModule は特定のModuleを取得するハンドラ
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModule"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	moduleID, ok := parseUUIDParam(w, r, logger, "module_id")
	if !ok {
		return
	}

	module, err := h.service.GetModule(r.Context(), userID, moduleID)
	if err != nil {
		logger.Warn("Error getting module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

// PatchModule はModuleを部分更新するハンドラ。
// ステータスが変化する場合は遷移ログが自動的に追記される
func (h *ModuleHandler) PatchModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchModule"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	moduleID, ok := parseUUIDParam(w, r, logger, "module_id")
	if !ok {
		return
	}

	var req model.UpdateModuleRequest
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

	module, err := h.service.UpdateModule(r.Context(), userID, moduleID, &req)
	if err != nil {
		logger.Error("Error updating module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module updated successfully", slog.String("module_id", moduleID.String()))
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

// DeleteModule はModuleを削除するハンドラ。StatusLogもカスケード削除される
func (h *ModuleHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteModule"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	moduleID, ok := parseUUIDParam(w, r, logger, "module_id")
	if !ok {
		return
	}

	if err := h.service.DeleteModule(r.Context(), userID, moduleID); err != nil {
		logger.Error("Error deleting module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module deleted successfully", slog.String("module_id", moduleID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// GetStatusLogs はModuleのステータス変更履歴を取得するハンドラ
func (h *ModuleHandler) GetStatusLogs(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStatusLogs"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	moduleID, ok := parseUUIDParam(w, r, logger, "module_id")
	if !ok {
		return
	}

	logs, err := h.service.ListStatusLogs(r.Context(), userID, moduleID)
	if err != nil {
		logger.Warn("Error listing status logs in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if logs == nil {
		logs = []*model.StatusLog{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, logs, logger)
}
