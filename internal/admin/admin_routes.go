package admin

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adm := r.Group("/admin")
	{
		adm.GET("/dashboard", handler.Dashboard)

		adm.GET("/employees", handler.Employees)
		adm.POST("/employees", handler.CreateEmployee)
		adm.PUT("/employees/:id", handler.UpdateEmployee)
		adm.DELETE("/employees/:id", middleware.RateLimitBySession(2, 5), handler.DeleteEmployee)

		adm.GET("/leave-types", handler.LeaveTypes)
		adm.POST("/leave-types", handler.CreateLeaveType)
		adm.PUT("/leave-types/:id", handler.UpdateLeaveType)
		adm.DELETE("/leave-types/:id", middleware.RateLimitBySession(2, 5), handler.DeleteLeaveType)

		adm.GET("/holidays", handler.Holidays)
		adm.POST("/holidays", handler.CreateHoliday)
		adm.PUT("/holidays/:id", handler.UpdateHoliday)
		adm.DELETE("/holidays/:id", middleware.RateLimitBySession(2, 5), handler.DeleteHoliday)

		adm.PUT("/settings", handler.SaveSettings)
	}
}
