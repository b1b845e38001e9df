package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"internhub/internal/apiclient"
	"internhub/internal/auth"
	"internhub/internal/model"
	"internhub/internal/portal"
	"internhub/internal/session"
)

// Options configures the gateway handlers.
type Options struct {
	BackendURL    string
	JWTIssuer     string
	JWTSigningKey string
	SessionTTL    time.Duration
	CookieSecure  bool
	ChartRadius   float64
	HTTPClient    *http.Client
}

type Handler struct {
	opts     Options
	sessions *session.Manager
	logger   *zap.Logger
	now      func() time.Time
}

func New(opts Options, sessions *session.Manager, logger *zap.Logger) *Handler {
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{}
	}
	if opts.ChartRadius <= 0 {
		opts.ChartRadius = 40
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{opts: opts, sessions: sessions, logger: logger, now: time.Now}
}

// today is the current date with the time of day dropped.
func (h *Handler) today() model.Date {
	return model.DateOf(h.now())
}

// portalFor builds a backend client bound to the request's session. A
// rejected token clears the session; respondError then drops the cookie and
// answers with a login redirect.
func (h *Handler) portalFor(c *gin.Context) *portal.Service {
	var creds apiclient.Credentials
	if sess := auth.SessionFrom(c); sess != nil {
		creds = sess
	}
	route := c.FullPath()
	api := apiclient.New(h.opts.BackendURL, creds,
		apiclient.WithHTTPClient(h.opts.HTTPClient),
		apiclient.WithLogger(h.logger),
		apiclient.OnAuthFailure(func() {
			h.logger.Info("redirecting to login", zap.String("route", route))
		}),
	)
	return portal.New(api, h.logger)
}

// errBadQuery marks a malformed query parameter found while resolving a
// view.
type errBadQuery struct{ err error }

func (e errBadQuery) Error() string { return e.err.Error() }
func (e errBadQuery) Unwrap() error { return e.err }

// respondError maps a backend failure onto the gateway response.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		apiErr *apiclient.APIError
		badQ   errBadQuery
	)
	switch {
	case errors.As(err, &badQ):
		badRequest(c, badQ)
	case errors.Is(err, apiclient.ErrSessionExpired):
		auth.Unauthorized(c, err.Error(), h.opts.CookieSecure)
	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.AbortWithStatusJSON(status, gin.H{"error": apiErr.Message})
	default:
		h.logger.Error("backend unavailable", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "could not reach the server, please try again"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Healthz reports liveness; check reports the session store.
func Healthz(check func(*gin.Context) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		healthy := check == nil || check(c)
		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"status": "ok", "sessionStore": healthy})
	}
}
