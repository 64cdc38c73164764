package service

import (
	"context"
	"math"
	"time"

	"go_4_track_keep/internal/config"
	"go_4_track_keep/internal/middleware"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error)
}

type dashboardService struct {
	db           *gorm.DB
	trackRepo    repository.TrackRepository
	moduleRepo   repository.ModuleRepository
	logRepo      repository.StatusLogRepository
	reminderRepo repository.ReminderRepository
	cfg          *config.Config
}

func NewDashboardService(db *gorm.DB, trackRepo repository.TrackRepository, moduleRepo repository.ModuleRepository, logRepo repository.StatusLogRepository, reminderRepo repository.ReminderRepository, cfg *config.Config) DashboardService {
	return &dashboardService{
		db:           db,
		trackRepo:    trackRepo,
		moduleRepo:   moduleRepo,
		logRepo:      logRepo,
		reminderRepo: reminderRepo,
		cfg:          cfg,
	}
}

// GetDashboard はユーザーのKPI一式を読み取り時に計算して返します。
// 集計結果は保存もキャッシュもされません。
func (s *dashboardService) GetDashboard(ctx context.Context, userID uuid.UUID) (*model.DashboardResponse, error) {
	logger := middleware.GetLogger(ctx)
	now := time.Now()

	tracks, err := s.trackRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list tracks for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	modules, err := s.moduleRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list modules for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	reminders, err := s.reminderRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list reminders for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	resp := &model.DashboardResponse{
		TotalTracks:  len(tracks),
		TotalModules: len(modules),
	}

	for _, t := range tracks {
		if t.Status == model.TrackPublished {
			resp.PublishedTracks++
		}
	}

	// ステータス別の件数、期限超過、所要期間系の集計を1パスで行う
	onTimeDone := 0
	durationTotalDays := 0
	durationCount := 0
	for _, m := range modules {
		switch m.Status {
		case model.StatusTodo:
			resp.TodoModules++
		case model.StatusInProgress:
			resp.InProgressModules++
		case model.StatusDone:
			resp.DoneModules++
		}

		if m.DueDate != nil && m.DueDate.Before(now) && m.Status != model.StatusDone {
			resp.OverdueModules++
		}

		if m.StartDate != nil && m.DueDate != nil {
			durationTotalDays += int(math.Round(m.DueDate.Sub(*m.StartDate).Hours() / 24))
			durationCount++
			// 期限が開始日以降に設定されていれば「期限内」とみなす近似指標
			if m.Status == model.StatusDone && !m.DueDate.Before(*m.StartDate) {
				onTimeDone++
			}
		}
	}

	if resp.TotalModules > 0 {
		resp.OverallProgress = int(math.Round(float64(resp.DoneModules) / float64(resp.TotalModules) * 100))
	}
	if resp.DoneModules > 0 {
		resp.OnTimeRate = int(math.Round(float64(onTimeDone) / float64(resp.DoneModules) * 100))
	}
	if durationCount > 0 {
		resp.AverageDurationDays = int(math.Round(float64(durationTotalDays) / float64(durationCount)))
	}

	// リマインダー: 今後lookahead日以内の件数と次回予定
	lookahead := now.AddDate(0, 0, s.cfg.App.ReminderLookahead)
	for _, r := range reminders {
		if r.SentAt != nil {
			continue
		}
		if r.RunAt.After(now) && r.RunAt.Before(lookahead) {
			resp.Upcoming7dReminders++
		}
		if r.RunAt.After(now) && (resp.NextReminderAt == nil || r.RunAt.Before(*resp.NextReminderAt)) {
			runAt := r.RunAt
			resp.NextReminderAt = &runAt
		}
	}

	// 週次: done遷移のみ。日次: 全ステータス変更
	weekBuckets := buildWeekBuckets(now, s.cfg.App.WeekBuckets)
	dayBuckets := buildDayBuckets(now, s.cfg.App.DayBuckets)

	done := model.StatusDone
	doneLogs, err := s.logRepo.FindInRange(ctx, s.db, userID, &done, weekBuckets[0].Start, weekBuckets[len(weekBuckets)-1].End)
	if err != nil {
		logger.Error("Failed to load completion logs for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	resp.WeeklyCompletions = countInBuckets(weekBuckets, doneLogs)

	allLogs, err := s.logRepo.FindInRange(ctx, s.db, userID, nil, dayBuckets[0].Start, dayBuckets[len(dayBuckets)-1].End)
	if err != nil {
		logger.Error("Failed to load activity logs for dashboard", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}
	resp.DailyActivity = countInBuckets(dayBuckets, allLogs)

	return resp, nil
}
