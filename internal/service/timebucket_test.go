package service

import (
	"testing"
	"time"

	"go_4_track_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "正常系: 水曜日はその週の月曜0時",
			now:  time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC), // 水曜
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "正常系: 月曜日はその日の0時",
			now:  time.Date(2025, 6, 2, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "正常系: 日曜日は前の月曜0時",
			now:  time.Date(2025, 6, 8, 0, 0, 1, 0, time.UTC),
			want: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, startOfWeek(tt.now))
		})
	}
}

func TestBuildWeekBuckets(t *testing.T) {
	now := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC) // 水曜
	buckets := buildWeekBuckets(now, 8)

	require.Len(t, buckets, 8)

	// ラベルは古い順にS1..S8
	assert.Equal(t, "S1", buckets[0].Label)
	assert.Equal(t, "S8", buckets[7].Label)

	// 末尾バケットは今週 (月曜0時から次の月曜0時まで)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), buckets[7].Start)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), buckets[7].End)

	// 隙間も重なりもなく連続していること
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].End, buckets[i].Start)
	}
	for _, b := range buckets {
		assert.Equal(t, b.Start.AddDate(0, 0, 7), b.End)
	}
}

func TestBuildDayBuckets(t *testing.T) {
	now := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)
	buckets := buildDayBuckets(now, 14)

	require.Len(t, buckets, 14)

	// 末尾は今日、先頭は13日前
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), buckets[13].Start)
	assert.Equal(t, time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC), buckets[0].Start)
	assert.Equal(t, "06/04", buckets[13].Label)
	assert.Equal(t, "05/22", buckets[0].Label)

	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i-1].End, buckets[i].Start)
	}
}

func TestCountInBuckets(t *testing.T) {
	now := time.Date(2025, 6, 4, 15, 30, 0, 0, time.UTC)
	buckets := buildWeekBuckets(now, 2) // [5/26..6/2) と [6/2..6/9)

	newLog := func(changedAt time.Time) *model.StatusLog {
		return &model.StatusLog{
			LogID:     uuid.New(),
			ModuleID:  uuid.New(),
			NewStatus: model.StatusDone,
			ChangedAt: changedAt,
		}
	}

	logs := []*model.StatusLog{
		newLog(time.Date(2025, 5, 28, 12, 0, 0, 0, time.UTC)),  // 前週
		newLog(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),    // 境界ちょうど: 今週に入る
		newLog(time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)),    // 今週
		newLog(time.Date(2025, 5, 25, 23, 59, 59, 0, time.UTC)), // 範囲外 (過去)
		newLog(time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)),    // 範囲外 (未来、End境界は含まない)
	}

	points := countInBuckets(buckets, logs)

	require.Len(t, points, 2)
	assert.Equal(t, "S1", points[0].Label)
	assert.Equal(t, 1, points[0].Count)
	assert.Equal(t, "S2", points[1].Label)
	assert.Equal(t, 2, points[1].Count)
}

func TestCountInBuckets_EmptyLogs(t *testing.T) {
	now := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	points := countInBuckets(buildDayBuckets(now, 14), nil)

	require.Len(t, points, 14)
	for _, p := range points {
		assert.Equal(t, 0, p.Count)
	}
}
