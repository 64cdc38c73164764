package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupPostgres はdockertestでPostgreSQLコンテナを起動し、マイグレーション済みの
// DB接続を返します。Dockerが利用できない環境ではテストをスキップします。
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("Docker is not available, skipping integration test: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("Docker is not reachable, skipping integration test: %v", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=track_keep_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %v", err)
		}
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=track_keep_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}
		sqlDB, pingErr := db.DB()
		if pingErr != nil {
			return pingErr
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Track{},
		&model.Module{},
		&model.StatusLog{},
		&model.Reminder{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		UserID:       uuid.New(),
		Name:         "テストユーザー",
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTrack(t *testing.T, db *gorm.DB, userID uuid.UUID) *model.Track {
	t.Helper()
	track := &model.Track{
		TrackID: uuid.New(),
		UserID:  userID,
		Title:   "Goを学ぶ",
		Status:  model.TrackDraft,
	}
	require.NoError(t, db.Create(track).Error)
	return track
}

func TestModuleRepository_Lifecycle(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := createTestUser(t, db, "lifecycle@example.com")
	other := createTestUser(t, db, "other@example.com")
	track := createTestTrack(t, db, user.UserID)

	moduleRepo := repository.NewGormModuleRepository()
	logRepo := repository.NewGormStatusLogRepository()

	// Moduleが空のTrackではMaxPositionは0
	maxPos, err := moduleRepo.MaxPosition(ctx, db, track.TrackID)
	require.NoError(t, err)
	assert.Equal(t, 0, maxPos)

	module := &model.Module{
		ModuleID: uuid.New(),
		TrackID:  track.TrackID,
		Title:    "Go基礎",
		Status:   model.StatusTodo,
		Position: 1,
	}
	require.NoError(t, moduleRepo.Create(ctx, db, module))
	require.NoError(t, logRepo.Create(ctx, db, &model.StatusLog{
		LogID:     uuid.New(),
		ModuleID:  module.ModuleID,
		NewStatus: model.StatusTodo,
		Note:      "created",
		ChangedAt: time.Now(),
	}))

	maxPos, err = moduleRepo.MaxPosition(ctx, db, track.TrackID)
	require.NoError(t, err)
	assert.Equal(t, 1, maxPos)

	// 所有者は取得できる
	found, err := moduleRepo.FindByID(ctx, db, user.UserID, module.ModuleID)
	require.NoError(t, err)
	assert.Equal(t, module.ModuleID, found.ModuleID)

	// 他ユーザーからは存在しない扱い
	_, err = moduleRepo.FindByID(ctx, db, other.UserID, module.ModuleID)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	// 削除するとStatusLogもカスケードで消える
	require.NoError(t, moduleRepo.Delete(ctx, db, module.ModuleID))

	var logCount int64
	require.NoError(t, db.Model(&model.StatusLog{}).Where("module_id = ?", module.ModuleID).Count(&logCount).Error)
	assert.Equal(t, int64(0), logCount)

	_, err = moduleRepo.FindByID(ctx, db, user.UserID, module.ModuleID)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestTrackRepository_CascadeDelete(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := createTestUser(t, db, "cascade@example.com")
	track := createTestTrack(t, db, user.UserID)

	moduleRepo := repository.NewGormModuleRepository()
	logRepo := repository.NewGormStatusLogRepository()
	trackRepo := repository.NewGormTrackRepository()

	for i := 1; i <= 2; i++ {
		module := &model.Module{
			ModuleID: uuid.New(),
			TrackID:  track.TrackID,
			Title:    fmt.Sprintf("モジュール%d", i),
			Status:   model.StatusTodo,
			Position: i,
		}
		require.NoError(t, moduleRepo.Create(ctx, db, module))
		require.NoError(t, logRepo.Create(ctx, db, &model.StatusLog{
			LogID:     uuid.New(),
			ModuleID:  module.ModuleID,
			NewStatus: model.StatusTodo,
			Note:      "created",
			ChangedAt: time.Now(),
		}))
	}

	require.NoError(t, trackRepo.Delete(ctx, db, user.UserID, track.TrackID))

	var moduleCount, logCount int64
	require.NoError(t, db.Model(&model.Module{}).Where("track_id = ?", track.TrackID).Count(&moduleCount).Error)
	require.NoError(t, db.Model(&model.StatusLog{}).Count(&logCount).Error)
	assert.Equal(t, int64(0), moduleCount)
	assert.Equal(t, int64(0), logCount)
}

func TestStatusLogRepository_FindInRange_Scoping(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := createTestUser(t, db, "range@example.com")
	other := createTestUser(t, db, "range-other@example.com")

	moduleRepo := repository.NewGormModuleRepository()
	logRepo := repository.NewGormStatusLogRepository()

	now := time.Now()
	addModuleWithLog := func(userID uuid.UUID, status model.ModuleStatus, changedAt time.Time) {
		track := createTestTrack(t, db, userID)
		module := &model.Module{
			ModuleID: uuid.New(),
			TrackID:  track.TrackID,
			Title:    "モジュール",
			Status:   status,
			Position: 1,
		}
		require.NoError(t, moduleRepo.Create(ctx, db, module))
		require.NoError(t, logRepo.Create(ctx, db, &model.StatusLog{
			LogID:     uuid.New(),
			ModuleID:  module.ModuleID,
			NewStatus: status,
			ChangedAt: changedAt,
		}))
	}

	addModuleWithLog(user.UserID, model.StatusDone, now)                     // 対象
	addModuleWithLog(user.UserID, model.StatusInProgress, now)               // ステータスフィルタで除外
	addModuleWithLog(user.UserID, model.StatusDone, now.AddDate(0, 0, -30))  // 期間外
	addModuleWithLog(other.UserID, model.StatusDone, now)                    // 他ユーザー

	done := model.StatusDone
	since := now.AddDate(0, 0, -7)
	until := now.AddDate(0, 0, 1)

	logs, err := logRepo.FindInRange(ctx, db, user.UserID, &done, since, until)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	// ステータスフィルタなしなら期間内の自分のログが2件
	logs, err = logRepo.FindInRange(ctx, db, user.UserID, nil, since, until)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	userRepo := repository.NewGormUserRepository()

	user := &model.User{
		UserID:       uuid.New(),
		Name:         "太郎",
		Email:        "dup@example.com",
		PasswordHash: "hash",
	}
	require.NoError(t, userRepo.Create(ctx, db, user))

	dup := &model.User{
		UserID:       uuid.New(),
		Name:         "次郎",
		Email:        "dup@example.com",
		PasswordHash: "hash",
	}
	err := userRepo.Create(ctx, db, dup)
	assert.True(t, errors.Is(err, model.ErrConflict))
}
