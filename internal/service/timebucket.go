package service

import (
	"fmt"
	"time"

	"go_4_track_keep/internal/model"
)

// timeBucket は [Start, End) の半開区間を表します。
type timeBucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// startOfDay はローカルタイムでその日の0時を返します。
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek はその時刻が属する週の月曜0時を返します (ISO週)。
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	// Weekdayは日曜=0なので、月曜起点のオフセットに変換する
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// buildWeekBuckets は今週を末尾として過去weeks週分のバケットを古い順に返します。
// ラベルは古い方からS1..Sn。
func buildWeekBuckets(now time.Time, weeks int) []timeBucket {
	currentWeek := startOfWeek(now)
	buckets := make([]timeBucket, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		start := currentWeek.AddDate(0, 0, -7*i)
		buckets = append(buckets, timeBucket{
			Label: fmt.Sprintf("S%d", weeks-i),
			Start: start,
			End:   start.AddDate(0, 0, 7),
		})
	}
	return buckets
}

// buildDayBuckets は今日を末尾として過去days日分の日次バケットを古い順に返します。
// ラベルは "月/日" 形式。
func buildDayBuckets(now time.Time, days int) []timeBucket {
	today := startOfDay(now)
	buckets := make([]timeBucket, 0, days)
	for i := days - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		buckets = append(buckets, timeBucket{
			Label: start.Format("01/02"),
			Start: start,
			End:   start.AddDate(0, 0, 1),
		})
	}
	return buckets
}

// countInBuckets は各ログのChangedAtを [Start, End) 判定でバケットに振り分け、
// バケットごとの件数を返します。入力の並び順には依存しません。
func countInBuckets(buckets []timeBucket, logs []*model.StatusLog) []model.SeriesPoint {
	points := make([]model.SeriesPoint, len(buckets))
	for i, b := range buckets {
		points[i] = model.SeriesPoint{Label: b.Label}
	}
	for _, log := range logs {
		for i, b := range buckets {
			if !log.ChangedAt.Before(b.Start) && log.ChangedAt.Before(b.End) {
				points[i].Count++
				break
			}
		}
	}
	return points
}
