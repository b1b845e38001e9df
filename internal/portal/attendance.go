package portal

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"internhub/internal/model"
)

func (s *Service) CheckIn(ctx context.Context) (model.AttendanceRecord, error) {
	var out model.AttendanceRecord
	err := s.api.Post(ctx, "/attendance/check-in", struct{}{}, &out)
	return out, err
}

func (s *Service) CheckOut(ctx context.Context) (model.AttendanceRecord, error) {
	var out model.AttendanceRecord
	err := s.api.Post(ctx, "/attendance/check-out", struct{}{}, &out)
	return out, err
}

// TodayAttendance returns today's record, or nil before check-in.
func (s *Service) TodayAttendance(ctx context.Context) (*model.AttendanceRecord, error) {
	var out *model.AttendanceRecord
	if err := s.api.Get(ctx, "/attendance/today", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MonthlyAttendance lists records for one month. An empty internID means
// the signed-in intern.
func (s *Service) MonthlyAttendance(ctx context.Context, year int, month time.Month, internID string) ([]model.AttendanceRecord, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(int(month)))
	if internID != "" {
		q.Set("internId", internID)
	}
	var out []model.AttendanceRecord
	if err := s.api.Get(ctx, "/attendance/monthly?"+q.Encode(), &out); err != nil {
		return nil, fmt.Errorf("monthly attendance: %w", err)
	}
	return out, nil
}
