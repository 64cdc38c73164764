// internal/model/dashboard.go
package model

import "time"

// SeriesPoint はチャート用の1バケット分の集計値です
type SeriesPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DashboardResponse はダッシュボードのKPI一式のレスポンスDTOです。
// すべて読み取り時に計算される導出値で、キャッシュされません。
type DashboardResponse struct {
	TotalTracks     int `json:"total_tracks"`
	PublishedTracks int `json:"published_tracks"`

	TotalModules      int `json:"total_modules"`
	TodoModules       int `json:"todo_modules"`
	InProgressModules int `json:"in_progress_modules"`
	DoneModules       int `json:"done_modules"`

	OverallProgress int `json:"overall_progress"` // 0-100
	OverdueModules  int `json:"overdue_modules"`

	Upcoming7dReminders int        `json:"upcoming_7d_reminders"`
	NextReminderAt      *time.Time `json:"next_reminder_at,omitempty"`

	OnTimeRate          int `json:"on_time_rate"`          // 0-100
	AverageDurationDays int `json:"average_duration_days"` // 予定期間（開始〜期限）の平均

	WeeklyCompletions []SeriesPoint `json:"weekly_completions"` // done遷移のみ
	DailyActivity     []SeriesPoint `json:"daily_activity"`     // 全ステータス変更
}
