package middleware

import (
	"context"
	"net/http"

	"go_4_track_keep/internal/model"
	"go_4_track_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevUserContextMiddleware はテスト・開発用の認証ミドルウェアです。
// X-User-ID ヘッダーの値をそのまま操作ユーザーとしてコンテキストに格納します。
// 本番環境では使用しないこと。
func DevUserContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		header := r.Header.Get("X-User-ID")
		if header == "" {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーが必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil {
			appErr := model.NewAppError("UNAUTHORIZED", "X-User-IDヘッダーの形式が正しくありません。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}

		ctx := context.WithValue(r.Context(), model.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
