package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"internhub/internal/apiclient"
	"internhub/internal/auth"
	"internhub/internal/portal"
)

func (h *Handler) Login(c *gin.Context) {
	var req portal.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.portalFor(c).Login(c.Request.Context(), req)
	if errors.Is(err, apiclient.ErrSessionExpired) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.startSession(c, res, http.StatusOK)
}

func (h *Handler) Register(c *gin.Context) {
	var req portal.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.portalFor(c).Register(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.startSession(c, res, http.StatusCreated)
}

func (h *Handler) startSession(c *gin.Context, res portal.AuthResult, status int) {
	sess, err := h.sessions.Create(c.Request.Context(), res.Token, res.User)
	if err != nil {
		h.logger.Error("session create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}
	tok, err := auth.Issue(sess.ID, res.User.UserType, h.opts.JWTIssuer, h.opts.JWTSigningKey, h.opts.SessionTTL)
	if err != nil {
		h.logger.Error("token issue failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}
	auth.SetCookie(c, tok.Value, int(h.opts.SessionTTL.Seconds()), h.opts.CookieSecure)
	c.JSON(status, gin.H{
		"token":      tok.Value,
		"expires_at": tok.ExpiresAt.Unix(),
		"user":       res.User,
	})
}

// Logout clears the session; the backend keeps no gateway state.
func (h *Handler) Logout(c *gin.Context) {
	if sess := auth.SessionFrom(c); sess != nil {
		sess.Clear()
	}
	auth.ClearCookie(c, h.opts.CookieSecure)
	c.JSON(http.StatusOK, gin.H{"status": "logged out", "redirect": auth.LoginPath})
}

func (h *Handler) Me(c *gin.Context) {
	sess := auth.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"user": sess.User()})
}
