package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"internhub/internal/auth"
	"internhub/internal/httpmiddleware"
)

// RouterOptions carries the pieces of the router that main wires.
type RouterOptions struct {
	Limiter        *httpmiddleware.TokenBucket
	Health         func(*gin.Context) bool
	AllowedOrigins []string
}

// rateKey draws from the caller's session bucket, or their address before
// they have one.
func rateKey(c *gin.Context) string {
	if claims, ok := auth.ClaimsFrom(c); ok && claims.SessionID != "" {
		return "sid:" + claims.SessionID
	}
	return "ip:" + httpmiddleware.ClientIP(c)
}

func NewRouter(h *Handler, ro RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthz", "/metrics"},
	}))
	r.Use(httpmiddleware.CORS(ro.AllowedOrigins))
	r.Use(httpmiddleware.SecurityHeaders())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", Healthz(ro.Health))

	var limit gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if ro.Limiter != nil {
		limit = ro.Limiter.Middleware(rateKey)
	}

	public := r.Group("/api", limit)
	public.POST("/login", h.Login)
	public.POST("/register", h.Register)

	api := r.Group("/api", auth.SessionAuth(h.opts.JWTSigningKey, h.opts.JWTIssuer, h.sessions, h.opts.CookieSecure), limit)
	api.POST("/logout", h.Logout)
	api.GET("/me", h.Me)

	api.GET("/attendance/calendar", h.AttendanceCalendar)
	api.GET("/attendance/today", h.TodayAttendance)
	api.POST("/attendance/check-in", h.CheckIn)
	api.POST("/attendance/check-out", h.CheckOut)

	api.GET("/learning", h.MyLearning)
	api.GET("/learning/pools", h.Pools)
	api.GET("/learning/calendar", h.ProgressCalendar)
	api.POST("/progress", h.CreateProgress)
	api.PUT("/progress/:id", h.UpdateProgress)
	api.PATCH("/progress/:id/comment", h.CommentProgress)

	api.GET("/colleges", h.ListColleges)
	api.POST("/colleges", h.CreateCollege)
	api.PUT("/colleges/:id", h.UpdateCollege)
	api.DELETE("/colleges/:id", h.DeleteCollege)

	api.GET("/interns", h.ListInterns)
	api.POST("/interns", h.CreateIntern)
	api.GET("/interns/:id", h.GetIntern)
	api.PUT("/interns/:id", h.UpdateIntern)
	api.DELETE("/interns/:id", h.DeleteIntern)
	api.GET("/interns/:id/documents", h.InternDocuments)
	api.GET("/roster", h.Roster)

	api.GET("/documents", h.AllDocuments)
	api.POST("/documents", h.UploadDocument)
	api.PATCH("/documents/:id/verify", h.VerifyDocument)
	api.PATCH("/documents/:id/reject", h.RejectDocument)

	api.GET("/offers", h.ListOffers)
	api.POST("/offers", h.CreateOffer)
	api.GET("/offers/:id/preview", h.OfferPreview)
	api.PATCH("/offers/:id/:action", h.OfferAction)

	return r
}
