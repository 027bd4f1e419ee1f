package auth

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
)

// RegisterRoutes wires sign-in under /login and logout behind the
// session guard. Login is throttled per source address.
func RegisterRoutes(r *gin.Engine, handler *Handler, store session.Store) {
	r.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
	r.POST("/logout", middleware.SessionAuth(store), handler.Logout)
}
