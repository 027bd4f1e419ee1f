package shell

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the shared shell endpoints. The group is
// expected to already carry the session guard.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	shell := r.Group("/shell")
	{
		shell.GET("/me", handler.Me)
		shell.PUT("/sidebar", handler.ToggleSidebar)
	}
}
