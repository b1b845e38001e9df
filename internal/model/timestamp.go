package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04:05"

// timestampLayouts are tried in order. Zone-less forms are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a point in time as the backend writes it: RFC3339, ISO
// without a zone, or a bare "HH:MM:SS" clock time. A clock time carries no
// date until it is anchored with On.
type Timestamp struct {
	t         time.Time
	clockOnly bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t}
}

func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t}, nil
		}
	}
	for _, layout := range []string{clockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t: t, clockOnly: true}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("parse timestamp %q: unsupported format", s)
}

func (ts Timestamp) IsZero() bool    { return ts.t.IsZero() && !ts.clockOnly }
func (ts Timestamp) ClockOnly() bool { return ts.clockOnly }
func (ts Timestamp) Time() time.Time { return ts.t }

// Sub is ts-o. Two clock times compare within the same day.
func (ts Timestamp) Sub(o Timestamp) time.Duration {
	return ts.t.Sub(o.t)
}

// On anchors a clock time to d. Full timestamps and a zero d are returned
// unchanged.
func (ts Timestamp) On(d Date) Timestamp {
	if !ts.clockOnly || d.IsZero() {
		return ts
	}
	h, m, s := ts.t.Clock()
	return Timestamp{t: time.Date(d.Year(), d.Month(), d.Day(), h, m, s, ts.t.Nanosecond(), time.UTC)}
}

func (ts Timestamp) String() string {
	switch {
	case ts.IsZero():
		return ""
	case ts.clockOnly:
		return ts.t.Format(clockLayout)
	}
	return ts.t.Format(time.RFC3339Nano)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*ts = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*ts = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
