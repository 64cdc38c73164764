package service

import (
	"context"
	"testing"
	"time"

	"go_4_track_keep/internal/config"
	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDashboardConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.WeekBuckets = 8
	cfg.App.DayBuckets = 14
	cfg.App.ReminderLookahead = 7
	return cfg
}

func matchDoneStatus() interface{} {
	return mock.MatchedBy(func(s *model.ModuleStatus) bool {
		return s != nil && *s == model.StatusDone
	})
}

func matchNilStatus() interface{} {
	return mock.MatchedBy(func(s *model.ModuleStatus) bool {
		return s == nil
	})
}

func Test_dashboardService_GetDashboard(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	ptrTime := func(t time.Time) *time.Time { return &t }

	tracks := []*model.Track{
		{TrackID: uuid.New(), UserID: userID, Status: model.TrackPublished},
		{TrackID: uuid.New(), UserID: userID, Status: model.TrackDraft},
	}

	// done 3件 / todo 1件。うち2件は開始日と期限日が両方設定されている
	modules := []*model.Module{
		{
			ModuleID:  uuid.New(),
			Status:    model.StatusDone,
			StartDate: ptrTime(now.AddDate(0, 0, -10)),
			DueDate:   ptrTime(now.AddDate(0, 0, -5)), // 期間5日、期限は開始日以降
		},
		{
			ModuleID:  uuid.New(),
			Status:    model.StatusDone,
			StartDate: ptrTime(now.AddDate(0, 0, -8)),
			DueDate:   ptrTime(now.AddDate(0, 0, -3)), // 期間5日
		},
		{
			ModuleID: uuid.New(),
			Status:   model.StatusDone, // 日付なし → 期限内には数えない
		},
		{
			ModuleID: uuid.New(),
			Status:   model.StatusTodo,
			DueDate:  ptrTime(now.AddDate(0, 0, -1)), // 期限超過
		},
	}

	reminders := []*model.Reminder{
		{ReminderID: uuid.New(), UserID: userID, RunAt: now.AddDate(0, 0, 2)},                                   // 7日以内
		{ReminderID: uuid.New(), UserID: userID, RunAt: now.AddDate(0, 0, 1), SentAt: ptrTime(now)},             // 送信済み → 無視
		{ReminderID: uuid.New(), UserID: userID, RunAt: now.AddDate(0, 0, 10)},                                  // 7日より先
	}

	doneLogs := []*model.StatusLog{
		{LogID: uuid.New(), NewStatus: model.StatusDone, ChangedAt: now},
	}
	allLogs := []*model.StatusLog{
		{LogID: uuid.New(), NewStatus: model.StatusDone, ChangedAt: now},
		{LogID: uuid.New(), NewStatus: model.StatusInProgress, ChangedAt: now},
	}

	db := setupTestDB()
	trackRepo := new(mocks.TrackRepository)
	moduleRepo := new(mocks.ModuleRepository)
	logRepo := new(mocks.StatusLogRepository)
	reminderRepo := new(mocks.ReminderRepository)

	trackRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(tracks, nil).Once()
	moduleRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(modules, nil).Once()
	reminderRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return(reminders, nil).Once()
	logRepo.On("FindInRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, matchDoneStatus(),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(doneLogs, nil).Once()
	logRepo.On("FindInRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, matchNilStatus(),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(allLogs, nil).Once()

	s := NewDashboardService(db, trackRepo, moduleRepo, logRepo, reminderRepo, testDashboardConfig())
	resp, err := s.GetDashboard(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, 2, resp.TotalTracks)
	assert.Equal(t, 1, resp.PublishedTracks)

	assert.Equal(t, 4, resp.TotalModules)
	assert.Equal(t, 1, resp.TodoModules)
	assert.Equal(t, 0, resp.InProgressModules)
	assert.Equal(t, 3, resp.DoneModules)

	assert.Equal(t, 75, resp.OverallProgress) // round(3/4*100)
	assert.Equal(t, 1, resp.OverdueModules)

	assert.Equal(t, 1, resp.Upcoming7dReminders)
	require.NotNil(t, resp.NextReminderAt)
	assert.WithinDuration(t, now.AddDate(0, 0, 2), *resp.NextReminderAt, time.Second)

	assert.Equal(t, 67, resp.OnTimeRate)          // round(期限内2件 / 完了3件 * 100)
	assert.Equal(t, 5, resp.AverageDurationDays)  // (5+5)/2

	// 週次は今週のバケット (末尾) に1件
	require.Len(t, resp.WeeklyCompletions, 8)
	assert.Equal(t, "S8", resp.WeeklyCompletions[7].Label)
	assert.Equal(t, 1, resp.WeeklyCompletions[7].Count)

	// 日次は今日のバケット (末尾) に2件
	require.Len(t, resp.DailyActivity, 14)
	assert.Equal(t, 2, resp.DailyActivity[13].Count)

	trackRepo.AssertExpectations(t)
	moduleRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
	reminderRepo.AssertExpectations(t)
}

func Test_dashboardService_GetDashboard_Empty(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	db := setupTestDB()
	trackRepo := new(mocks.TrackRepository)
	moduleRepo := new(mocks.ModuleRepository)
	logRepo := new(mocks.StatusLogRepository)
	reminderRepo := new(mocks.ReminderRepository)

	trackRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return([]*model.Track{}, nil).Once()
	moduleRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return([]*model.Module{}, nil).Once()
	reminderRepo.On("FindByUser", ctx, mock.AnythingOfType("*gorm.DB"), userID).
		Return([]*model.Reminder{}, nil).Once()
	logRepo.On("FindInRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, matchDoneStatus(),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*model.StatusLog{}, nil).Once()
	logRepo.On("FindInRange", ctx, mock.AnythingOfType("*gorm.DB"), userID, matchNilStatus(),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]*model.StatusLog{}, nil).Once()

	s := NewDashboardService(db, trackRepo, moduleRepo, logRepo, reminderRepo, testDashboardConfig())
	resp, err := s.GetDashboard(ctx, userID)

	require.NoError(t, err)

	// モジュール0件では進捗・各レートはゼロ除算せず0になる
	assert.Equal(t, 0, resp.OverallProgress)
	assert.Equal(t, 0, resp.OnTimeRate)
	assert.Equal(t, 0, resp.AverageDurationDays)
	assert.Nil(t, resp.NextReminderAt)
	require.Len(t, resp.WeeklyCompletions, 8)
	require.Len(t, resp.DailyActivity, 14)
	for _, p := range resp.WeeklyCompletions {
		assert.Equal(t, 0, p.Count)
	}
}
