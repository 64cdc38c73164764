// internal/model/module.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ModuleStatus string

const (
	StatusTodo       ModuleStatus = "todo"
	StatusInProgress ModuleStatus = "in_progress"
	StatusDone       ModuleStatus = "done"
)

func (s ModuleStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// CanTransition はステータス遷移の可否を判定します。
// 現方針では有効なステータス同士の遷移はすべて許可されます（doneの再オープンを含む）。
// 将来遷移を制限する場合はこの関数だけを変更すること。
func CanTransition(from, to ModuleStatus) bool {
	return from.IsValid() && to.IsValid()
}

// Module はTrack内の学習単位を表します
type Module struct {
	ModuleID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"module_id"`
	TrackID     uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_track_position" json:"track_id"`
	Title       string       `gorm:"not null" json:"title"`
	ExternalURL *string      `json:"external_url,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      ModuleStatus `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Position    int          `gorm:"not null;uniqueIndex:idx_track_position" json:"position"` // Track内での表示・処理順
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// 関連 (Preload用)。Module削除時にStatusLogもカスケード削除される
	StatusLogs []StatusLog `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Module) TableName() string {
	return "modules"
}

// Module作成リクエストDTO
type CreateModuleRequest struct {
	Title       string       `json:"title" validate:"required,min=1,max=160"`
	ExternalURL *string      `json:"external_url,omitempty" validate:"omitempty,url,max=2048"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Status      ModuleStatus `json:"status" validate:"omitempty,oneof=todo in_progress done"`
}

// Module更新（部分）リクエストDTO
type UpdateModuleRequest struct {
	Title       *string       `json:"title,omitempty" validate:"omitempty,min=1,max=160"`
	ExternalURL *string       `json:"external_url,omitempty" validate:"omitempty,url,max=2048"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
	Status      *ModuleStatus `json:"status,omitempty" validate:"omitempty,oneof=todo in_progress done"`
}
