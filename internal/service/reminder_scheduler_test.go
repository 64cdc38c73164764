package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeMailer は送信先を記録するテスト用のMailerです。
type fakeMailer struct {
	sent   []string
	failTo string
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if to == m.failTo {
		return assert.AnError
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestReminderScheduler_DispatchDue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	user1 := &model.User{UserID: uuid.New(), Email: "ok@example.com"}
	user2 := &model.User{UserID: uuid.New(), Email: "fail@example.com"}

	r1 := &model.Reminder{ReminderID: uuid.New(), UserID: user1.UserID, Message: "復習の時間です", RunAt: time.Now().Add(-time.Minute)}
	r2 := &model.Reminder{ReminderID: uuid.New(), UserID: user2.UserID, Message: "復習の時間です", RunAt: time.Now().Add(-time.Minute)}

	reminderRepo := new(mocks.ReminderRepository)
	userRepo := new(mocks.UserRepository)
	mailer := &fakeMailer{failTo: user2.Email}

	reminderRepo.On("FindDueUnsent", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time"), 100).
		Return([]*model.Reminder{r1, r2}, nil).Once()
	userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), user1.UserID).
		Return(user1, nil).Once()
	userRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), user2.UserID).
		Return(user2, nil).Once()

	// 送信成功したr1だけがsent_atでマークされる
	reminderRepo.On("MarkSent", ctx, mock.AnythingOfType("*gorm.DB"), r1.ReminderID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	scheduler := NewReminderScheduler(db, reminderRepo, userRepo, mailer, discard)
	err := scheduler.DispatchDue(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{user1.Email}, mailer.sent)
	reminderRepo.AssertExpectations(t)
	reminderRepo.AssertNotCalled(t, "MarkSent", ctx, mock.Anything, r2.ReminderID, mock.Anything)
	userRepo.AssertExpectations(t)
}

func TestReminderScheduler_DispatchDue_NoneDue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	reminderRepo := new(mocks.ReminderRepository)
	userRepo := new(mocks.UserRepository)

	reminderRepo.On("FindDueUnsent", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("time.Time"), 100).
		Return([]*model.Reminder{}, nil).Once()

	scheduler := NewReminderScheduler(db, reminderRepo, userRepo, &fakeMailer{}, discard)
	err := scheduler.DispatchDue(ctx)

	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}
