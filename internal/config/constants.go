// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "track_keep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort            = ":8080"
	DefaultLogLevel              = "info"
	DefaultWeekBuckets           = 8  // 週次完了数チャートのバケット数
	DefaultDayBuckets            = 14 // 日次アクティビティチャートのバケット数
	DefaultReminderLookaheadDays = 7
	DefaultJWTExpiryHours        = 24
	DefaultMailerType            = "log"
	DefaultSchedulerSpec         = "@every 1m"
)
