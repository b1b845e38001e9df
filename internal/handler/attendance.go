package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"internhub/internal/auth"
	"internhub/internal/calendar"
	"internhub/internal/model"
	"internhub/internal/portal"
)

type percentages struct {
	Present float64 `json:"present"`
	HalfDay float64 `json:"halfDay"`
	Absent  float64 `json:"absent"`
}

type attendanceCalendarView struct {
	JoinDate      model.Date     `json:"joinDate"`
	JoinDateKnown bool           `json:"joinDateKnown"`
	Calendar      calendar.Month `json:"calendar"`
	Stats         calendar.Stats `json:"stats"`
	Percentages   percentages    `json:"percentages"`
	Rate          float64        `json:"rate"`
	Arc           calendar.Arc   `json:"arc"`
}

type todayView struct {
	Record     *model.AttendanceRecord `json:"record"`
	CheckedIn  bool                    `json:"checkedIn"`
	CheckedOut bool                    `json:"checkedOut"`
	Duration   string                  `json:"duration"`
}

// monthParam reads ?month=YYYY-MM, defaulting to the current month.
func (h *Handler) monthParam(c *gin.Context) (int, time.Month, error) {
	raw := c.Query("month")
	if raw == "" {
		now := h.today()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, fmt.Errorf("month must be YYYY-MM, got %q", raw)
	}
	return t.Year(), t.Month(), nil
}

// joinDate finds the date that gates a calendar. With ?internId= it is that
// intern's join date. Otherwise it is ?joinDate=, then the signed-in user's
// profile. The bool is false when none of these has one, in which case no
// day is gated.
func (h *Handler) joinDate(c *gin.Context, svc *portal.Service) (model.Date, bool, error) {
	if id := c.Query("internId"); id != "" {
		intern, err := svc.GetIntern(c.Request.Context(), id)
		if err != nil {
			return model.Date{}, false, err
		}
		return intern.JoinDate, !intern.JoinDate.IsZero(), nil
	}
	if raw := c.Query("joinDate"); raw != "" {
		d, err := model.ParseDate(raw)
		if err != nil {
			return model.Date{}, false, errBadQuery{err}
		}
		return d, true, nil
	}
	sess := auth.SessionFrom(c)
	if sess == nil {
		return model.Date{}, false, nil
	}
	user := sess.User()
	if !user.JoinDate.IsZero() {
		return user.JoinDate, true, nil
	}
	if user.InternID != "" {
		intern, err := svc.GetIntern(c.Request.Context(), string(user.InternID))
		if err != nil {
			return model.Date{}, false, err
		}
		return intern.JoinDate, !intern.JoinDate.IsZero(), nil
	}
	return model.Date{}, false, nil
}

// AttendanceCalendar renders one month of attendance with its summary
// stats, for the signed-in intern or, with ?internId=, for that intern.
func (h *Handler) AttendanceCalendar(c *gin.Context) {
	year, month, err := h.monthParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	svc := h.portalFor(c)

	joinDate, known, err := h.joinDate(c, svc)
	if err != nil {
		h.respondError(c, err)
		return
	}
	records, err := svc.MonthlyAttendance(ctx, year, month, c.Query("internId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	today := h.today()
	stats := calendar.MonthlyStats(year, month, today, joinDate, records)
	p, hd, a := stats.Percentages()
	c.JSON(http.StatusOK, attendanceCalendarView{
		JoinDate:      joinDate,
		JoinDateKnown: known,
		Calendar:      calendar.AttendanceMonth(year, month, today, joinDate, records),
		Stats:         stats,
		Percentages:   percentages{Present: p, HalfDay: hd, Absent: a},
		Rate:          stats.Rate(),
		Arc:           calendar.ArcFor(stats, h.opts.ChartRadius),
	})
}

func (h *Handler) TodayAttendance(c *gin.Context) {
	rec, err := h.portalFor(c).TodayAttendance(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTodayView(rec))
}

func (h *Handler) CheckIn(c *gin.Context) {
	rec, err := h.portalFor(c).CheckIn(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTodayView(&rec))
}

func (h *Handler) CheckOut(c *gin.Context) {
	rec, err := h.portalFor(c).CheckOut(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTodayView(&rec))
}

func newTodayView(rec *model.AttendanceRecord) todayView {
	v := todayView{Record: rec}
	if rec == nil {
		return v
	}
	v.CheckedIn = rec.CheckInTime != nil && !rec.CheckInTime.IsZero()
	v.CheckedOut = rec.CheckOutTime != nil && !rec.CheckOutTime.IsZero()
	v.Duration = calendar.FormatDuration(calendar.WorkedSeconds(rec.CheckInTime, rec.CheckOutTime))
	return v
}
