package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModuleStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status ModuleStatus
		want   bool
	}{
		{"正常系: todo", StatusTodo, true},
		{"正常系: in_progress", StatusInProgress, true},
		{"正常系: done", StatusDone, true},
		{"異常系: 空文字", ModuleStatus(""), false},
		{"異常系: 未知の値", ModuleStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestCanTransition(t *testing.T) {
	valid := []ModuleStatus{StatusTodo, StatusInProgress, StatusDone}

	// 有効なステータス同士はすべて遷移可能 (doneからの再オープンを含む)
	for _, from := range valid {
		for _, to := range valid {
			if from == to {
				continue
			}
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(StatusTodo, ModuleStatus("archived")))
	assert.False(t, CanTransition(ModuleStatus(""), StatusDone))
}

func TestTrackProgress(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		want  int
	}{
		{"正常系: モジュール0件は0", 0, 0, 0},
		{"正常系: 全完了は100", 4, 4, 100},
		{"正常系: 3/4は75", 3, 4, 75},
		{"正常系: 1/3は四捨五入で33", 1, 3, 33},
		{"正常系: 2/3は四捨五入で67", 2, 3, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrackProgress(tt.done, tt.total))
		})
	}
}
