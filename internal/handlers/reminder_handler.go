package handlers

import (
	"log/slog"
	"net/http"

	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/service"
	"go_4_track_keep/internal/webutil"
)

type ReminderHandler struct {
	service service.ReminderService
	logger  *slog.Logger
}

func NewReminderHandler(s service.ReminderService, logger *slog.Logger) *ReminderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderHandler{
		service: s,
		logger:  logger,
	}
}

// PostReminder は新しいReminderを作成するハンドラ
func (h *ReminderHandler) PostReminder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostReminder"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	var req model.CreateReminderRequest
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

	reminder, err := h.service.CreateReminder(r.Context(), userID, &req)
	if err != nil {
		logger.Error("Error creating reminder in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reminder created successfully", slog.String("reminder_id", reminder.ReminderID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, reminder, logger)
}

// GetReminders はReminder一覧を通知予定時刻順で取得するハンドラ
func (h *ReminderHandler) GetReminders(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetReminders"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	reminders, err := h.service.ListReminders(r.Context(), userID)
	if err != nil {
		logger.Error("Error listing reminders in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if reminders == nil {
		reminders = []*model.Reminder{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, reminders, logger)
}

// DeleteReminder はReminderを削除するハンドラ
func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteReminder"))

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}
	logger = logger.With(slog.String("user_id", userID.String()))

	reminderID, ok := parseUUIDParam(w, r, logger, "reminder_id")
	if !ok {
		return
	}

	if err := h.service.DeleteReminder(r.Context(), userID, reminderID); err != nil {
		logger.Error("Error deleting reminder in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Reminder deleted successfully", slog.String("reminder_id", reminderID.String()))
	w.WriteHeader(http.StatusNoContent)
}
