package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2024-03-10", "2024-03-10"},
		{"2024-03-10T00:00:00.000Z", "2024-03-10"},
		{"2024-03-10T23:30:00+05:30", "2024-03-10"},
		{" 2024-02-29 ", "2024-02-29"},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseDate("10/03/2024"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDateJSONNullIsZero(t *testing.T) {
	t.Parallel()

	var in Intern
	if err := json.Unmarshal([]byte(`{"id":"i1","joinDate":null}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.JoinDate.IsZero() {
		t.Fatalf("join date = %s, want zero", in.JoinDate)
	}

	if err := json.Unmarshal([]byte(`{"id":"i1","joinDate":"2024-03-10T00:00:00Z"}`), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !in.JoinDate.Equal(NewDate(2024, time.March, 10)) {
		t.Fatalf("join date = %s", in.JoinDate)
	}
}

func TestDaysIn(t *testing.T) {
	t.Parallel()

	if n := DaysIn(2024, time.February); n != 29 {
		t.Fatalf("feb 2024 = %d", n)
	}
	if n := DaysIn(2023, time.February); n != 28 {
		t.Fatalf("feb 2023 = %d", n)
	}
	if n := DaysIn(2024, time.December); n != 31 {
		t.Fatalf("dec 2024 = %d", n)
	}
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	if l := AttendanceHalfDay.Label(); l != "Half Day" {
		t.Fatalf("half day label = %q", l)
	}
	if l := InternDocumentsPending.Label(); l != "Documents Pending" {
		t.Fatalf("intern label = %q", l)
	}
	if l := OfferStatus("WITHDRAWN").Label(); l != "WITHDRAWN" {
		t.Fatalf("unknown offer label = %q", l)
	}
}

func TestIDAcceptsNumberOrString(t *testing.T) {
	t.Parallel()

	var v struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":1,"b":"c-7","c":null}`), &v); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v.A != "1" || v.B != "c-7" || v.C != "" {
		t.Fatalf("ids = %+v", v)
	}
	if err := json.Unmarshal([]byte(`{"a":true}`), &v); err == nil {
		t.Fatal("boolean id should be rejected")
	}
	if !ID("9").Less("10") || ID("b").Less("a") {
		t.Fatal("Less ordering wrong")
	}
}

func TestParseTimestampShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in    string
		want  string
		clock bool
	}{
		{"2024-03-15T09:00:00Z", "2024-03-15T09:00:00Z", false},
		{"2024-03-15T09:00:00.000+05:30", "2024-03-15T09:00:00+05:30", false},
		{"2024-03-15T09:00:00", "2024-03-15T09:00:00Z", false},
		{"2024-03-15 09:00:00", "2024-03-15T09:00:00Z", false},
		{"09:00:00", "09:00:00", true},
	}
	for _, tc := range cases {
		ts, err := ParseTimestamp(tc.in)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if ts.String() != tc.want || ts.ClockOnly() != tc.clock {
			t.Fatalf("%q = %s (clock %v), want %s", tc.in, ts, ts.ClockOnly(), tc.want)
		}
	}
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected error")
	}

	anchored, _ := ParseTimestamp("17:30:15")
	if got := anchored.On(NewDate(2024, time.March, 15)).String(); got != "2024-03-15T17:30:15Z" {
		t.Fatalf("anchored = %s", got)
	}
}
