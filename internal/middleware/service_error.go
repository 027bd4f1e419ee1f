package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
	upstreamerrors "leavedesk/internal/upstream/errors"
)

// WriteServiceError maps a service failure into the response envelope.
// An expired upstream session is never a page-level error: the session
// is torn down and the client is bounced to login, same as the guard.
func WriteServiceError(c *gin.Context, store session.Store, logger *zap.Logger, err error) {
	if errors.Is(err, upstreamerrors.ErrSessionExpired) {
		RedirectToLogin(c, store, SessionID(c))
		return
	}

	httpErr := apperror.ToHTTP(err)
	logger.Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
