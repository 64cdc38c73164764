package service

import (
	"context"

	"go_4_track_keep/internal/middleware"
)

// Mailer はメール送信の抽象です。リマインダー通知の送信に使用します。
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer は実際には送信せず、ログに出力するだけの実装です (開発・テスト用)。
type LogMailer struct{}

func NewLogMailer() Mailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("LogMailer: email send skipped",
		"to", to,
		"subject", subject,
		"body", body,
	)
	return nil
}
