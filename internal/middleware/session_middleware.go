package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"leavedesk/internal/session"
	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionCookie carries the opaque session id; the upstream bearer
	// token never leaves the gateway.
	SessionCookie = "leavedesk_session"

	LoginPath = "/login"

	ctxSessionID   = "session_id"
	ctxToken       = "token"
	ctxUserName    = "user_name"
	ctxRole        = "role"
	ctxSidebarOpen = "sidebar_open"

	expiredHandledKey = "session_expired_handled"
)

// SessionAuth resolves the cookie against the store and loads the
// session into the request context. Anything without a live session is
// bounced to the login page before reaching a handler.
func SessionAuth(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			RedirectToLogin(c, store, "")
			return
		}

		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			RedirectToLogin(c, store, sid)
			return
		}

		// A token that is already expired locally would only bounce off
		// the upstream as a 401; tear the session down without the round
		// trip. Opaque tokens skip the check.
		if tokenExpired(sess.Token) {
			RedirectToLogin(c, store, sid)
			return
		}

		c.Set(ctxSessionID, sid)
		c.Set(ctxToken, sess.Token)
		c.Set(ctxUserName, sess.UserName)
		c.Set(ctxRole, sess.Role)
		c.Set(ctxSidebarOpen, sess.SidebarOpen)

		c.Next()
	}
}

func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// RedirectToLogin tears the session down (idempotent) and sends the
// browser to /login?returnTo=<path>&reason=auth. It fires at most once
// per request, and never redirects a request already under /login, so
// an expired session cannot loop.
func RedirectToLogin(c *gin.Context, store session.Store, sid string) {
	if c.GetBool(expiredHandledKey) {
		c.Abort()
		return
	}
	c.Set(expiredHandledKey, true)

	if sid != "" {
		_ = store.Teardown(c.Request.Context(), sid)
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)

	if strings.HasPrefix(c.Request.URL.Path, LoginPath) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
		c.Abort()
		return
	}

	q := url.Values{}
	q.Set("returnTo", c.Request.URL.Path)
	q.Set("reason", "auth")
	c.Redirect(http.StatusFound, LoginPath+"?"+q.Encode())
	c.Abort()
}

// SessionID, Token, UserName, Role read what SessionAuth stored.
func SessionID(c *gin.Context) string { return c.GetString(ctxSessionID) }
func Token(c *gin.Context) string     { return c.GetString(ctxToken) }
func UserName(c *gin.Context) string  { return c.GetString(ctxUserName) }
func Role(c *gin.Context) string      { return c.GetString(ctxRole) }
func SidebarOpen(c *gin.Context) bool { return c.GetBool(ctxSidebarOpen) }
