package cancellation

import (
	"github.com/gin-gonic/gin"
)

// The flow spans two trees: employees raise and track cancellations,
// managers resolve the ones that need approval.

func RegisterEmployeeRoutes(r *gin.RouterGroup, handler *Handler) {
	emp := r.Group("/employee")
	{
		emp.GET("/cancellations", handler.MyRequests)
		emp.POST("/leave/:id/cancel/open", handler.Open)
		emp.POST("/leave/:id/cancel", handler.Submit)
	}
}

func RegisterManagerRoutes(r *gin.RouterGroup, handler *Handler) {
	mgr := r.Group("/manager")
	{
		mgr.GET("/cancellations/pending", handler.Pending)
		mgr.PUT("/cancellations/:id", handler.Handle)
	}
}
