package calendar

import (
	"time"

	"internhub/internal/model"
)

// Month is a classified calendar month ready for grid rendering.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	// LeadingBlanks is the number of empty cells before day 1 in a
	// Sunday-first grid.
	LeadingBlanks int   `json:"leadingBlanks"`
	Days          []Day `json:"days"`
}

// AttendanceIndex keys records by date string. If two records share a date
// the first one in input order is kept.
func AttendanceIndex(records []model.AttendanceRecord) map[string]*model.AttendanceRecord {
	idx := make(map[string]*model.AttendanceRecord, len(records))
	for i := range records {
		key := records[i].Date.String()
		if _, seen := idx[key]; !seen {
			idx[key] = &records[i]
		}
	}
	return idx
}

// ProgressIndex keys logs by date string, first log wins.
func ProgressIndex(logs []model.ProgressLog) map[string]*model.ProgressLog {
	idx := make(map[string]*model.ProgressLog, len(logs))
	for i := range logs {
		key := logs[i].LogDate.String()
		if _, seen := idx[key]; !seen {
			idx[key] = &logs[i]
		}
	}
	return idx
}

// AttendanceMonth classifies every day of year/month.
func AttendanceMonth(year int, month time.Month, today, joinDate model.Date, records []model.AttendanceRecord) Month {
	idx := AttendanceIndex(records)
	out := newMonth(year, month)
	for d := 1; d <= len(out.Days); d++ {
		date := model.NewDate(year, month, d)
		out.Days[d-1] = ClassifyAttendance(date, today, joinDate, idx[date.String()])
	}
	return out
}

// ProgressMonth classifies every day of year/month against progress logs.
func ProgressMonth(year int, month time.Month, today, joinDate model.Date, logs []model.ProgressLog) Month {
	idx := ProgressIndex(logs)
	out := newMonth(year, month)
	for d := 1; d <= len(out.Days); d++ {
		date := model.NewDate(year, month, d)
		out.Days[d-1] = ClassifyProgress(date, today, joinDate, idx[date.String()])
	}
	return out
}

func newMonth(year int, month time.Month) Month {
	return Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(model.NewDate(year, month, 1).Weekday()),
		Days:          make([]Day, model.DaysIn(year, month)),
	}
}

// Count returns how many days of m are in state s.
func (m Month) Count(s State) int {
	n := 0
	for _, d := range m.Days {
		if d.State == s {
			n++
		}
	}
	return n
}
