package domain

import "time"

// DailyStats is the per-calendar-day aggregate of completions and the
// running streak as of the last recomputation of that day.
// Fields are ordered to minimize memory padding.
type DailyStats struct {
	Date                string `json:"date"` // Day key in YYYY-MM-DD form (local time), primary key
	CompletedTasksCount int    `json:"completedTasksCount"`
	Streak              int    `json:"streak"`
}

// dayKeyLayout is fixed-width and zero-padded so that lexical ordering
// of day keys matches chronological ordering. Changing it would silently
// break the latest-stats lookup that seeds streak continuity.
const dayKeyLayout = "2006-01-02"

// DayKey returns the day key for t in the local time zone.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// PrevDayKey returns the day key for the calendar day before t.
func PrevDayKey(t time.Time) string {
	return DayKey(t.AddDate(0, 0, -1))
}
