// Package calendar turns attendance records and progress logs into per-day
// display states and monthly totals for the portal's calendar views.
package calendar

import (
	"fmt"

	"internhub/internal/model"
)

// State is how a single calendar cell is displayed.
type State string

const (
	StateLogged        State = "LOGGED"
	StateMissing       State = "MISSING"
	StateWeekend       State = "WEEKEND"
	StateFuture        State = "FUTURE"
	StateNotApplicable State = "NOT_APPLICABLE"
)

const (
	labelFuture        = "-"
	labelNotApplicable = "N/A"
	labelWeekend       = "Weekend"
	labelAbsent        = "Absent"
	labelMissing       = "Missing"
)

// Day is one classified calendar cell.
type Day struct {
	Date  model.Date `json:"date"`
	State State      `json:"state"`
	Label string     `json:"label"`

	// Status is set for logged attendance days.
	Status     model.AttendanceStatus  `json:"status,omitempty"`
	Attendance *model.AttendanceRecord `json:"attendance,omitempty"`
	Progress   *model.ProgressLog      `json:"progress,omitempty"`
}

// ClassifyAttendance classifies one day of an attendance calendar. Weekends
// get no exception: an unrecorded past weekday or weekend is absent.
func ClassifyAttendance(date, today, joinDate model.Date, rec *model.AttendanceRecord) Day {
	if rec != nil {
		return Day{
			Date:       date,
			State:      StateLogged,
			Label:      rec.Status.Label(),
			Status:     rec.Status,
			Attendance: rec,
		}
	}
	if st, lbl, ok := unrecorded(date, today, joinDate, false); ok {
		return Day{Date: date, State: st, Label: lbl}
	}
	return Day{Date: date, State: StateMissing, Label: labelAbsent}
}

// ClassifyProgress classifies one day of a progress-log calendar. Unlike
// attendance, weekends without a log are not counted as missing.
func ClassifyProgress(date, today, joinDate model.Date, log *model.ProgressLog) Day {
	if log != nil {
		return Day{
			Date:     date,
			State:    StateLogged,
			Label:    fmt.Sprintf("%d%%", log.CompletionPercentage),
			Progress: log,
		}
	}
	if st, lbl, ok := unrecorded(date, today, joinDate, true); ok {
		return Day{Date: date, State: st, Label: lbl}
	}
	return Day{Date: date, State: StateMissing, Label: labelMissing}
}

// unrecorded applies rules 2-4 for a day with no record. A zero joinDate
// means the intern has no join date and never gates a day.
func unrecorded(date, today, joinDate model.Date, weekendExempt bool) (State, string, bool) {
	switch {
	case date.After(today):
		return StateFuture, labelFuture, true
	case !joinDate.IsZero() && date.Before(joinDate):
		return StateNotApplicable, labelNotApplicable, true
	case weekendExempt && date.IsWeekend():
		return StateWeekend, labelWeekend, true
	}
	return "", "", false
}
