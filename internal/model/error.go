// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用
)

// ErrorDetail はクライアントに返すエラーの詳細です。
// バリデーションエラーの場合は Fields にフィールド名ごとのメッセージリストが入ります。
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Field   string              `json:"field,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・クライアント向けメッセージと根本原因をまとめたエラー型です。
// errors.Is / errors.As でのハンドリングのため、根本原因の sentinel エラーをラップします。
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

// NewFieldErrors はフィールド名 → メッセージリスト形式のバリデーションエラーを生成します。
func NewFieldErrors(code, message string, fields map[string][]string) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Fields: fields},
		Err:    ErrInvalidInput,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Detail.Code, e.Detail.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
