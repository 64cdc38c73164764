package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// --- テストヘルパー関数 ---
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func Test_moduleService_CreateModule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	trackID := uuid.New()

	tests := []struct {
		name       string
		req        *model.CreateModuleRequest
		setupMock  func(trackRepo *mocks.TrackRepository, moduleRepo *mocks.ModuleRepository, logRepo *mocks.StatusLogRepository)
		wantErr    error
		wantStatus model.ModuleStatus
		wantPos    int
	}{
		{
			name: "正常系: 末尾に追加され、作成エントリがログに記録される",
			req:  &model.CreateModuleRequest{Title: "Go基礎"},
			setupMock: func(trackRepo *mocks.TrackRepository, moduleRepo *mocks.ModuleRepository, logRepo *mocks.StatusLogRepository) {
				trackRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, trackID).
					Return(&model.Track{TrackID: trackID, UserID: userID}, nil).Once()
				moduleRepo.On("MaxPosition", ctx, mock.AnythingOfType("*gorm.DB"), trackID).
					Return(2, nil).Once()
				moduleRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Module")).
					Run(func(args mock.Arguments) {
						module := args.Get(2).(*model.Module)
						assert.Equal(t, trackID, module.TrackID)
						assert.Equal(t, "Go基礎", module.Title)
						assert.Equal(t, model.StatusTodo, module.Status)
						assert.Equal(t, 3, module.Position)
						assert.NotEqual(t, uuid.Nil, module.ModuleID)
					}).Return(nil).Once()
				logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StatusLog")).
					Run(func(args mock.Arguments) {
						entry := args.Get(2).(*model.StatusLog)
						assert.Nil(t, entry.OldStatus)
						assert.Equal(t, model.StatusTodo, entry.NewStatus)
						assert.Equal(t, "created", entry.Note)
						assert.WithinDuration(t, time.Now(), entry.ChangedAt, time.Second*5)
					}).Return(nil).Once()
			},
			wantErr:    nil,
			wantStatus: model.StatusTodo,
			wantPos:    3,
		},
		{
			name: "正常系: Moduleが空のTrackでは最初のpositionは1",
			req:  &model.CreateModuleRequest{Title: "最初のモジュール", Status: model.StatusInProgress},
			setupMock: func(trackRepo *mocks.TrackRepository, moduleRepo *mocks.ModuleRepository, logRepo *mocks.StatusLogRepository) {
				trackRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, trackID).
					Return(&model.Track{TrackID: trackID, UserID: userID}, nil).Once()
				moduleRepo.On("MaxPosition", ctx, mock.AnythingOfType("*gorm.DB"), trackID).
					Return(0, nil).Once()
				moduleRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Module")).
					Return(nil).Once()
				logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StatusLog")).
					Run(func(args mock.Arguments) {
						entry := args.Get(2).(*model.StatusLog)
						assert.Nil(t, entry.OldStatus)
						assert.Equal(t, model.StatusInProgress, entry.NewStatus)
					}).Return(nil).Once()
			},
			wantErr:    nil,
			wantStatus: model.StatusInProgress,
			wantPos:    1,
		},
		{
			name: "異常系: Trackが存在しない",
			req:  &model.CreateModuleRequest{Title: "Go基礎"},
			setupMock: func(trackRepo *mocks.TrackRepository, moduleRepo *mocks.ModuleRepository, logRepo *mocks.StatusLogRepository) {
				trackRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, trackID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "異常系: 不正なステータス",
			req:  &model.CreateModuleRequest{Title: "Go基礎", Status: model.ModuleStatus("archived")},
			setupMock: func(trackRepo *mocks.TrackRepository, moduleRepo *mocks.ModuleRepository, logRepo *mocks.StatusLogRepository) {
				// リポジトリは呼ばれないはず
			},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB()
			trackRepo := new(mocks.TrackRepository)
			moduleRepo := new(mocks.ModuleRepository)
			logRepo := new(mocks.StatusLogRepository)
			tt.setupMock(trackRepo, moduleRepo, logRepo)

			s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
			module, err := s.CreateModule(ctx, userID, trackID, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
				assert.Nil(t, module)
			} else {
				require.NoError(t, err)
				require.NotNil(t, module)
				assert.Equal(t, tt.wantStatus, module.Status)
				assert.Equal(t, tt.wantPos, module.Position)
			}

			trackRepo.AssertExpectations(t)
			moduleRepo.AssertExpectations(t)
			logRepo.AssertExpectations(t)
		})
	}
}

func Test_moduleService_UpdateModule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	moduleID := uuid.New()
	trackID := uuid.New()

	baseModule := func(status model.ModuleStatus) *model.Module {
		return &model.Module{
			ModuleID: moduleID,
			TrackID:  trackID,
			Title:    "Go基礎",
			Status:   status,
			Position: 1,
		}
	}
	statusDone := model.StatusDone
	statusTodo := model.StatusTodo

	t.Run("正常系: done遷移で遷移ログが追記される", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(baseModule(model.StatusTodo), nil).Once()
		moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), moduleID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(3).(map[string]interface{})
				assert.Equal(t, model.StatusDone, updates["status"])
			}).Return(nil).Once()
		logRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.StatusLog")).
			Run(func(args mock.Arguments) {
				entry := args.Get(2).(*model.StatusLog)
				require.NotNil(t, entry.OldStatus)
				assert.Equal(t, model.StatusTodo, *entry.OldStatus)
				assert.Equal(t, model.StatusDone, entry.NewStatus)
				assert.Equal(t, "status changed todo → done", entry.Note)
			}).Return(nil).Once()
		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(baseModule(model.StatusDone), nil).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		module, err := s.UpdateModule(ctx, userID, moduleID, &model.UpdateModuleRequest{Status: &statusDone})

		require.NoError(t, err)
		assert.Equal(t, model.StatusDone, module.Status)
		moduleRepo.AssertExpectations(t)
		logRepo.AssertExpectations(t)
	})

	t.Run("正常系: 同じステータスへの更新はログを生まない", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(baseModule(model.StatusTodo), nil).Twice()
		moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), moduleID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(3).(map[string]interface{})
				_, hasStatus := updates["status"]
				assert.False(t, hasStatus)
			}).Return(nil).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		_, err := s.UpdateModule(ctx, userID, moduleID, &model.UpdateModuleRequest{Status: &statusTodo})

		require.NoError(t, err)
		logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		moduleRepo.AssertExpectations(t)
	})

	t.Run("正常系: タイトルのみの更新でもログは生まれない", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		newTitle := "Go応用"
		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(baseModule(model.StatusInProgress), nil).Twice()
		moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), moduleID, mock.AnythingOfType("map[string]interface {}")).
			Run(func(args mock.Arguments) {
				updates := args.Get(3).(map[string]interface{})
				assert.Equal(t, newTitle, updates["title"])
			}).Return(nil).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		_, err := s.UpdateModule(ctx, userID, moduleID, &model.UpdateModuleRequest{Title: &newTitle})

		require.NoError(t, err)
		logRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		moduleRepo.AssertExpectations(t)
	})

	t.Run("異常系: Moduleが存在しない", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(nil, model.ErrNotFound).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		_, err := s.UpdateModule(ctx, userID, moduleID, &model.UpdateModuleRequest{Status: &statusDone})

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		moduleRepo.AssertExpectations(t)
	})
}

func Test_moduleService_DeleteModule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	moduleID := uuid.New()

	t.Run("正常系: 削除成功", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(&model.Module{ModuleID: moduleID}, nil).Once()
		moduleRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), moduleID).
			Return(nil).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		err := s.DeleteModule(ctx, userID, moduleID)

		require.NoError(t, err)
		moduleRepo.AssertExpectations(t)
	})

	t.Run("異常系: 他ユーザーのModuleはNotFound", func(t *testing.T) {
		db := setupTestDB()
		trackRepo := new(mocks.TrackRepository)
		moduleRepo := new(mocks.ModuleRepository)
		logRepo := new(mocks.StatusLogRepository)

		moduleRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), userID, moduleID).
			Return(nil, model.ErrNotFound).Once()

		s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
		err := s.DeleteModule(ctx, userID, moduleID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		moduleRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func Test_moduleService_ReconcileStatuses(t *testing.T) {
	ctx := context.Background()

	m1 := &model.Module{ModuleID: uuid.New(), Status: model.StatusDone}       // ログと一致
	m2 := &model.Module{ModuleID: uuid.New(), Status: model.StatusInProgress} // ログはdone
	m3 := &model.Module{ModuleID: uuid.New(), Status: model.StatusDone}       // ログなし → todoへ

	db := setupTestDB()
	trackRepo := new(mocks.TrackRepository)
	moduleRepo := new(mocks.ModuleRepository)
	logRepo := new(mocks.StatusLogRepository)

	moduleRepo.On("FindAll", ctx, mock.AnythingOfType("*gorm.DB")).
		Return([]*model.Module{m1, m2, m3}, nil).Once()
	logRepo.On("FindLatestByModule", ctx, mock.AnythingOfType("*gorm.DB"), m1.ModuleID).
		Return(&model.StatusLog{ModuleID: m1.ModuleID, NewStatus: model.StatusDone}, nil).Once()
	logRepo.On("FindLatestByModule", ctx, mock.AnythingOfType("*gorm.DB"), m2.ModuleID).
		Return(&model.StatusLog{ModuleID: m2.ModuleID, NewStatus: model.StatusDone}, nil).Once()
	logRepo.On("FindLatestByModule", ctx, mock.AnythingOfType("*gorm.DB"), m3.ModuleID).
		Return(nil, model.ErrNotFound).Once()
	moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), m2.ModuleID,
		map[string]interface{}{"status": model.StatusDone}).Return(nil).Once()
	moduleRepo.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), m3.ModuleID,
		map[string]interface{}{"status": model.StatusTodo}).Return(nil).Once()

	s := NewModuleService(db, trackRepo, moduleRepo, logRepo)
	repaired, err := s.ReconcileStatuses(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, repaired)
	moduleRepo.AssertExpectations(t)
	logRepo.AssertExpectations(t)
}
