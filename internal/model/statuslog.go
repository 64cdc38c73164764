// internal/model/statuslog.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StatusLog はModuleのステータス遷移1件を表す不変の監査レコードです。
// 追記のみ: 書き込み後に更新・並べ替えされることはなく、削除は
// 所属Moduleのカスケード削除によってのみ起こります。
// Moduleの現在ステータスは常に最新のStatusLogのNewStatusと一致します
// （ログが存在しない場合は todo）。
type StatusLog struct {
	LogID     uuid.UUID     `gorm:"type:uuid;primaryKey" json:"log_id"`
	ModuleID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"module_id"`
	OldStatus *ModuleStatus `gorm:"type:varchar(20)" json:"old_status,omitempty"` // 作成エントリのみnil
	NewStatus ModuleStatus  `gorm:"type:varchar(20);not null;index" json:"new_status"`
	Note      string        `json:"note"`
	ChangedAt time.Time     `gorm:"not null;index" json:"changed_at"`
}

func (StatusLog) TableName() string {
	return "status_logs"
}
