package employee

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

// RegisterRoutes mounts the employee tree. The group already carries
// session and role guards; appliers get a per-session throttle.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	emp := r.Group("/employee")
	{
		emp.GET("/dashboard", handler.Dashboard)
		emp.GET("/leave/history", handler.History)
		emp.GET("/leave/balances", handler.Balances)
		emp.GET("/calendar", handler.Calendar)
		emp.GET("/profile", handler.Profile)

		emp.POST("/leave/apply/open", handler.OpenApply)
		emp.POST("/leave/apply", middleware.RateLimitBySession(2, 5), handler.Apply)
		emp.POST("/modal/close", handler.CloseModal)
	}
}

// RegisterSharedRoutes mounts the pages every role tree carries under
// the given prefix. Managers and admins see the same profile and team
// calendar an employee does.
func RegisterSharedRoutes(r *gin.RouterGroup, prefix string, handler *Handler) {
	g := r.Group(prefix)
	{
		g.GET("/profile", handler.Profile)
		g.GET("/calendar", handler.Calendar)
	}
}
