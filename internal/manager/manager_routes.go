package manager

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

// RegisterRoutes mounts the manager tree. Decisions get a per-session
// throttle; pages are unthrottled.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	mgr := r.Group("/manager")
	{
		mgr.GET("/dashboard", handler.Dashboard)
		mgr.GET("/team/requests", handler.TeamRequests)
		mgr.GET("/reports", handler.Reports)
		mgr.GET("/team/calendar", handler.TeamCalendar)

		mgr.POST("/leave/:id/review", handler.OpenReview)
		mgr.POST("/leave/:id/reject/open", handler.OpenRejection)
		mgr.PUT("/leave/:id/approve", middleware.RateLimitBySession(2, 5), handler.Approve)
		mgr.PUT("/leave/:id/reject", middleware.RateLimitBySession(2, 5), handler.Reject)
		mgr.POST("/modal/close", handler.CloseModal)
	}
}
