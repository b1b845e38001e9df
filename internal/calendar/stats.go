package calendar

import (
	"math"
	"time"

	"internhub/internal/model"
)

// Stats are the monthly attendance totals. Present+HalfDay+Absent == Total.
type Stats struct {
	Present int `json:"present"`
	HalfDay int `json:"halfDay"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

// MonthlyStats counts days 1..end of month, skipping days after today and
// before joinDate. A day with a record counts as its status, a day without
// one counts as absent.
func MonthlyStats(year int, month time.Month, today, joinDate model.Date, records []model.AttendanceRecord) Stats {
	idx := AttendanceIndex(records)
	var s Stats
	for d := 1; d <= model.DaysIn(year, month); d++ {
		date := model.NewDate(year, month, d)
		if date.After(today) {
			continue
		}
		if !joinDate.IsZero() && date.Before(joinDate) {
			continue
		}
		status := model.AttendanceAbsent
		if rec, ok := idx[date.String()]; ok {
			status = rec.Status
		}
		switch status {
		case model.AttendancePresent:
			s.Present++
		case model.AttendanceHalfDay:
			s.HalfDay++
		default:
			s.Absent++
		}
		s.Total++
	}
	return s
}

// Percentages returns the share of each bucket in percent, one decimal.
func (s Stats) Percentages() (present, halfDay, absent float64) {
	if s.Total == 0 {
		return 0, 0, 0
	}
	pct := func(n int) float64 {
		return math.Round(float64(n)*1000/float64(s.Total)) / 10
	}
	return pct(s.Present), pct(s.HalfDay), pct(s.Absent)
}

// Rate is the attendance rate in percent where a half day counts as 0.5.
func (s Stats) Rate() float64 {
	if s.Total == 0 {
		return 0
	}
	return math.Round((float64(s.Present)+0.5*float64(s.HalfDay))*1000/float64(s.Total)) / 10
}

// Arc holds stroke-dash offsets for the circular breakdown. Slices are
// stacked with absent as the base ring, half-day drawn over it and present
// drawn last.
type Arc struct {
	Circumference float64 `json:"circumference"`
	// PresentOffset is C*(1 - present/total).
	PresentOffset float64 `json:"presentOffset"`
	// HalfDayOffset is C*(1 - (present+halfDay)/total).
	HalfDayOffset float64 `json:"halfDayOffset"`
}

// Circumference of a circle with radius r.
func Circumference(r float64) float64 {
	return 2 * math.Pi * r
}

// ArcOffset is the dash offset for a slice boundary at cumulative fraction f.
func ArcOffset(c, f float64) float64 {
	return c * (1 - f)
}

// ArcFor computes the offsets for s on a circle of radius r. With no
// classified days both slices are empty and the offsets equal C.
func ArcFor(s Stats, r float64) Arc {
	c := Circumference(r)
	a := Arc{Circumference: c, PresentOffset: c, HalfDayOffset: c}
	if s.Total == 0 {
		return a
	}
	total := float64(s.Total)
	a.PresentOffset = ArcOffset(c, float64(s.Present)/total)
	a.HalfDayOffset = ArcOffset(c, float64(s.Present+s.HalfDay)/total)
	return a
}
