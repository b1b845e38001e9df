package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"internhub/internal/calendar"
	"internhub/internal/model"
	"internhub/internal/portal"
)

type progressCalendarView struct {
	ProjectID     string         `json:"projectId"`
	JoinDate      model.Date     `json:"joinDate"`
	JoinDateKnown bool           `json:"joinDateKnown"`
	Calendar      calendar.Month `json:"calendar"`
	Logged        int            `json:"logged"`
	Missing       int            `json:"missing"`
	Completion    int            `json:"completion"`
}

func (h *Handler) MyLearning(c *gin.Context) {
	out, err := h.portalFor(c).MyLearning(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) Pools(c *gin.Context) {
	out, err := h.portalFor(c).Pools(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ProgressCalendar renders one month of progress logs for a project.
// Completion is the percentage of the latest log on or before today.
func (h *Handler) ProgressCalendar(c *gin.Context) {
	projectID := c.Query("projectId")
	if projectID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "projectId is required"})
		return
	}
	year, month, err := h.monthParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	svc := h.portalFor(c)
	joinDate, known, err := h.joinDate(c, svc)
	if err != nil {
		h.respondError(c, err)
		return
	}

	overview, err := svc.MyLearning(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	today := h.today()
	var logs []model.ProgressLog
	var latest *model.ProgressLog
	for i := range overview.ProgressLogs {
		l := &overview.ProgressLogs[i]
		if string(l.ProjectID) != projectID {
			continue
		}
		logs = append(logs, *l)
		if l.LogDate.After(today) {
			continue
		}
		if latest == nil || l.LogDate.After(latest.LogDate) {
			latest = l
		}
	}

	m := calendar.ProgressMonth(year, month, today, joinDate, logs)
	view := progressCalendarView{
		ProjectID:     projectID,
		JoinDate:      joinDate,
		JoinDateKnown: known,
		Calendar:      m,
		Logged:        m.Count(calendar.StateLogged),
		Missing:       m.Count(calendar.StateMissing),
	}
	if latest != nil {
		view.Completion = latest.CompletionPercentage
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) CreateProgress(c *gin.Context) {
	var in portal.ProgressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	if in.LogDate.IsZero() {
		in.LogDate = h.today()
	}
	out, err := h.portalFor(c).CreateProgress(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *Handler) UpdateProgress(c *gin.Context) {
	var in portal.ProgressInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).UpdateProgress(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) CommentProgress(c *gin.Context) {
	var body struct {
		AdminComment string `json:"adminComment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.portalFor(c).CommentProgress(c.Request.Context(), c.Param("id"), body.AdminComment)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
