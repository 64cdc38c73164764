// internal/model/reminder.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder はユーザーへの通知予定を表します。
// 送信はスケジューラが行い、ダッシュボードは件数と次回予定のみを参照します。
type Reminder struct {
	ReminderID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"reminder_id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	ModuleID   *uuid.UUID `gorm:"type:uuid;index" json:"module_id,omitempty"`
	Message    string     `gorm:"not null" json:"message"`
	RunAt      time.Time  `gorm:"not null;index" json:"run_at"`
	SentAt     *time.Time `json:"sent_at,omitempty"` // 未送信ならnil
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}

// Reminder作成リクエストDTO
type CreateReminderRequest struct {
	ModuleID *uuid.UUID `json:"module_id,omitempty"`
	Message  string     `json:"message" validate:"required,min=1,max=500"`
	RunAt    time.Time  `json:"run_at" validate:"required"`
}
