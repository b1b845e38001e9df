package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"internhub/internal/session"
)

const (
	// CookieName carries the gateway token for browser clients.
	CookieName = "internhub_session"
	// LoginPath is where clients are sent when the session is gone.
	LoginPath = "/login"

	ctxSession = "session"
	ctxClaims  = "claims"
)

// SessionAuth accepts the gateway token from the session cookie or a bearer
// header, restores the session and stores it on the context. secureCookie
// must match the flag the cookie was set with.
func SessionAuth(signingKey, issuer string, sessions *session.Manager, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			tokenStr, _ = c.Cookie(CookieName)
		}
		if tokenStr == "" {
			Unauthorized(c, "missing session token", secureCookie)
			return
		}
		claims, err := Parse(tokenStr, signingKey, issuer)
		if err != nil {
			Unauthorized(c, "invalid session token", secureCookie)
			return
		}
		sess, err := sessions.Restore(c.Request.Context(), claims.SessionID)
		if err != nil {
			Unauthorized(c, "session expired, please log in again", secureCookie)
			return
		}
		c.Set(ctxClaims, claims)
		c.Set(ctxSession, sess)
		c.Next()
	}
}

// Unauthorized drops the session cookie, aborts with 401 and points the
// client at the login view.
func Unauthorized(c *gin.Context, msg string, secureCookie bool) {
	ClearCookie(c, secureCookie)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "redirect": LoginPath})
}

// SetCookie stores the gateway token in the session cookie.
func SetCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetCookie(CookieName, token, maxAge, "/", "", secure, true)
}

func ClearCookie(c *gin.Context, secure bool) {
	SetCookie(c, "", -1, secure)
}

// SessionFrom returns the session stored by SessionAuth.
func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}

// ClaimsFrom returns the claims stored by SessionAuth.
func ClaimsFrom(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

func bearer(header string) string {
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[len("bearer "):])
}
