// internal/model/track.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type TrackStatus string

const (
	TrackDraft     TrackStatus = "draft"
	TrackPublished TrackStatus = "published"
)

func (s TrackStatus) IsValid() bool {
	return s == TrackDraft || s == TrackPublished
}

// Track はユーザーが所有する学習パス（モジュールの順序付きコレクション）を表します
type Track struct {
	TrackID     uuid.UUID   `gorm:"type:uuid;primaryKey" json:"track_id"`
	UserID      uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Title       string      `gorm:"not null" json:"title"`
	Description string      `json:"description"`
	Goals       string      `json:"goals"`
	Status      TrackStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	// 関連 (Preload用)。Track削除時にModuleもカスケード削除される
	Modules []Module `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Track) TableName() string {
	return "tracks"
}

// Track作成リクエストDTO
type CreateTrackRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=120"`
	Description string `json:"description" validate:"max=5000"`
	Goals       string `json:"goals" validate:"max=5000"`
	Status      string `json:"status" validate:"omitempty,oneof=draft published"`
}

// Track更新（部分）リクエストDTO
type UpdateTrackRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Goals       *string `json:"goals,omitempty" validate:"omitempty,max=5000"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=draft published"`
}

// TrackResponse は進捗率などの導出値を含むレスポンスDTO
type TrackResponse struct {
	TrackID     uuid.UUID   `json:"track_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Goals       string      `json:"goals"`
	Status      TrackStatus `json:"status"`
	ModuleCount int         `json:"module_count"`
	DoneCount   int         `json:"done_count"`
	Progress    int         `json:"progress"` // 0-100
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// TrackProgress は完了モジュール数から進捗率（0-100）を導出します。
// 進捗率は保存されず、常に読み取り時に計算されます。
func TrackProgress(doneCount, totalCount int) int {
	if totalCount == 0 {
		return 0
	}
	return int(math.Round(float64(doneCount) / float64(totalCount) * 100))
}
