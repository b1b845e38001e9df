package calendar

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"internhub/internal/model"
)

func date(y int, m time.Month, d int) model.Date { return model.NewDate(y, m, d) }

func TestClassifyAttendancePriority(t *testing.T) {
	t.Parallel()

	today := date(2024, time.March, 15)
	join := date(2024, time.March, 4)

	cases := []struct {
		name  string
		day   model.Date
		rec   *model.AttendanceRecord
		state State
		label string
	}{
		{"record wins over future", date(2024, time.March, 20), &model.AttendanceRecord{Status: model.AttendancePresent}, StateLogged, "Present"},
		{"record wins over pre-join", date(2024, time.March, 1), &model.AttendanceRecord{Status: model.AttendanceHalfDay}, StateLogged, "Half Day"},
		{"future", date(2024, time.March, 16), nil, StateFuture, "-"},
		{"before join", date(2024, time.March, 3), nil, StateNotApplicable, "N/A"},
		{"weekend is absent for attendance", date(2024, time.March, 9), nil, StateMissing, "Absent"},
		{"weekday missing", date(2024, time.March, 12), nil, StateMissing, "Absent"},
		{"today missing", today, nil, StateMissing, "Absent"},
		{"join day itself counts", join, nil, StateMissing, "Absent"},
		{"unknown status shown verbatim", date(2024, time.March, 5), &model.AttendanceRecord{Status: "ON_LEAVE"}, StateLogged, "ON_LEAVE"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ClassifyAttendance(tc.day, today, join, tc.rec)
			if got.State != tc.state || got.Label != tc.label {
				t.Fatalf("got %s/%q, want %s/%q", got.State, got.Label, tc.state, tc.label)
			}
		})
	}
}

func TestClassifyProgressWeekend(t *testing.T) {
	t.Parallel()

	today := date(2024, time.March, 15)

	sat := ClassifyProgress(date(2024, time.March, 9), today, model.Date{}, nil)
	if sat.State != StateWeekend {
		t.Fatalf("saturday state = %s, want WEEKEND", sat.State)
	}
	mon := ClassifyProgress(date(2024, time.March, 11), today, model.Date{}, nil)
	if mon.State != StateMissing || mon.Label != "Missing" {
		t.Fatalf("monday = %s/%q, want MISSING/Missing", mon.State, mon.Label)
	}
	logged := ClassifyProgress(date(2024, time.March, 10), today, model.Date{}, &model.ProgressLog{CompletionPercentage: 40})
	if logged.State != StateLogged || logged.Label != "40%" {
		t.Fatalf("logged sunday = %s/%q, want LOGGED/40%%", logged.State, logged.Label)
	}
	futureWeekend := ClassifyProgress(date(2024, time.March, 16), today, model.Date{}, nil)
	if futureWeekend.State != StateFuture {
		t.Fatalf("future weekend = %s, want FUTURE", futureWeekend.State)
	}
}

func TestMonthBeforeJoinIsNotApplicable(t *testing.T) {
	t.Parallel()

	today := date(2024, time.March, 15)
	join := date(2024, time.March, 10)

	att := AttendanceMonth(2024, time.February, today, join, nil)
	if len(att.Days) != 29 {
		t.Fatalf("february 2024 has %d days, want 29", len(att.Days))
	}
	if n := att.Count(StateNotApplicable); n != 29 {
		t.Fatalf("attendance N/A days = %d, want 29", n)
	}
	prog := ProgressMonth(2024, time.February, today, join, nil)
	if n := prog.Count(StateNotApplicable); n != 29 {
		t.Fatalf("progress N/A days = %d, want 29 (weekends included)", n)
	}
	if s := MonthlyStats(2024, time.February, today, join, nil); s.Total != 0 {
		t.Fatalf("stats total = %d, want 0", s.Total)
	}
}

func TestMonthFutureDays(t *testing.T) {
	t.Parallel()

	today := date(2024, time.March, 15)

	att := AttendanceMonth(2024, time.March, today, model.Date{}, nil)
	for _, d := range att.Days {
		want := StateMissing
		if d.Date.Day() > 15 {
			want = StateFuture
		}
		if d.State != want {
			t.Fatalf("attendance %s = %s, want %s", d.Date, d.State, want)
		}
	}
	if att.LeadingBlanks != int(time.Friday) {
		t.Fatalf("leading blanks = %d, want %d", att.LeadingBlanks, time.Friday)
	}

	prog := ProgressMonth(2024, time.March, today, model.Date{}, nil)
	if got := prog.Count(StateFuture); got != 16 {
		t.Fatalf("future days = %d, want 16", got)
	}
	// March 2, 3, 9 and 10 are the weekend days up to the 15th.
	if got := prog.Count(StateWeekend); got != 4 {
		t.Fatalf("weekend days = %d, want 4", got)
	}
	if got := prog.Count(StateMissing); got != 11 {
		t.Fatalf("missing days = %d, want 11", got)
	}
}

func TestDuplicateRecordFirstWins(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: date(2024, time.March, 5), Status: model.AttendanceHalfDay},
		{Date: date(2024, time.March, 5), Status: model.AttendancePresent},
	}
	m := AttendanceMonth(2024, time.March, date(2024, time.March, 31), model.Date{}, records)
	if got := m.Days[4].Status; got != model.AttendanceHalfDay {
		t.Fatalf("status = %s, want HALF_DAY", got)
	}
}

func TestMonthlyStatsPartition(t *testing.T) {
	t.Parallel()

	today := date(2024, time.August, 20)
	join := date(2024, time.February, 12)
	var records []model.AttendanceRecord
	statuses := []model.AttendanceStatus{model.AttendancePresent, model.AttendanceHalfDay, model.AttendanceAbsent}
	for d := join; !d.After(today); d = d.AddDays(3) {
		records = append(records, model.AttendanceRecord{Date: d, Status: statuses[d.Day()%3]})
	}

	for m := time.January; m <= time.December; m++ {
		month := AttendanceMonth(2024, m, today, join, records)
		stats := MonthlyStats(2024, m, today, join, records)

		classified := len(month.Days) - month.Count(StateFuture) - month.Count(StateNotApplicable)
		if stats.Total != classified {
			t.Fatalf("%s: total = %d, want %d", m, stats.Total, classified)
		}
		if stats.Present+stats.HalfDay+stats.Absent != stats.Total {
			t.Fatalf("%s: %+v does not sum to total", m, stats)
		}
		sum := 0
		for _, s := range []State{StateLogged, StateMissing, StateWeekend, StateFuture, StateNotApplicable} {
			sum += month.Count(s)
		}
		if sum != len(month.Days) {
			t.Fatalf("%s: states cover %d of %d days", m, sum, len(month.Days))
		}
	}
}

func TestMonthlyStatsCounts(t *testing.T) {
	t.Parallel()

	records := []model.AttendanceRecord{
		{Date: date(2024, time.March, 1), Status: model.AttendancePresent},
		{Date: date(2024, time.March, 4), Status: model.AttendanceHalfDay},
		{Date: date(2024, time.March, 5), Status: model.AttendancePresent},
		{Date: date(2024, time.March, 20), Status: model.AttendancePresent},
	}
	got := MonthlyStats(2024, time.March, date(2024, time.March, 5), model.Date{}, records)
	want := Stats{Present: 2, HalfDay: 1, Absent: 2, Total: 5}
	if got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
	if r := got.Rate(); r != 50 {
		t.Fatalf("rate = %v, want 50", r)
	}
	p, h, a := got.Percentages()
	if p != 40 || h != 20 || a != 40 {
		t.Fatalf("percentages = %v/%v/%v, want 40/20/40", p, h, a)
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	in := model.NewTimestamp(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))
	out := model.NewTimestamp(time.Date(2024, time.March, 15, 17, 30, 15, 900_000_000, time.UTC))

	if got := FormatDuration(WorkedSeconds(&in, &out)); got != "08:30:15" {
		t.Fatalf("duration = %q, want 08:30:15", got)
	}
	if got := WorkedSeconds(&in, nil); got != 0 {
		t.Fatalf("missing checkout = %d, want 0", got)
	}
	if got := FormatDuration(WorkedSeconds(&in, nil)); got != "" {
		t.Fatalf("missing checkout formatted = %q, want empty", got)
	}
	if got := WorkedSeconds(&out, &in); got != 0 {
		t.Fatalf("negative span = %d, want 0", got)
	}
	if got := FormatDuration(100*3600 + 61); got != "100:01:01" {
		t.Fatalf("long duration = %q", got)
	}
}

func TestDurationFromBackendShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"clock times", `{"date":"2024-03-15","checkInTime":"09:00:00","checkOutTime":"17:30:15"}`},
		{"zone-less iso", `{"date":"2024-03-15","checkInTime":"2024-03-15T09:00:00","checkOutTime":"2024-03-15T17:30:15.250"}`},
		{"rfc3339", `{"date":"2024-03-15","checkInTime":"2024-03-15T09:00:00Z","checkOutTime":"2024-03-15T17:30:15Z"}`},
	}
	for _, tc := range cases {
		var rec model.AttendanceRecord
		if err := json.Unmarshal([]byte(tc.body), &rec); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if got := FormatDuration(WorkedSeconds(rec.CheckInTime, rec.CheckOutTime)); got != "08:30:15" {
			t.Fatalf("%s: duration = %q, want 08:30:15", tc.name, got)
		}
	}

	var open model.AttendanceRecord
	if err := json.Unmarshal([]byte(`{"date":"2024-03-15","checkInTime":"09:00:00","checkOutTime":null}`), &open); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := FormatDuration(WorkedSeconds(open.CheckInTime, open.CheckOutTime)); got != "" {
		t.Fatalf("open shift = %q, want empty", got)
	}
	if open.CheckInTime.String() != "2024-03-15T09:00:00Z" {
		t.Fatalf("clock time not anchored to the record date: %s", open.CheckInTime)
	}
}

func TestArcOffsets(t *testing.T) {
	t.Parallel()

	const r = 40.0
	c := Circumference(r)
	arc := ArcFor(Stats{Present: 10, HalfDay: 5, Absent: 5, Total: 20}, r)

	if !near(arc.PresentOffset, 0.5*c) {
		t.Fatalf("present offset = %v, want %v", arc.PresentOffset, 0.5*c)
	}
	if !near(arc.HalfDayOffset, 0.25*c) {
		t.Fatalf("half-day offset = %v, want %v", arc.HalfDayOffset, 0.25*c)
	}

	empty := ArcFor(Stats{}, r)
	if empty.PresentOffset != c || empty.HalfDayOffset != c {
		t.Fatalf("empty arc = %+v, want offsets equal to circumference", empty)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
