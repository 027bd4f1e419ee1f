package middleware

import (
	"net/http"

	"leavedesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is a local interface; any type with Enforce(role, path)
// fits, which keeps this package decoupled from the casbin wiring.
type RBACService interface {
	Enforce(role, path string) (bool, error)
}

// RBACAuthorize gates a route tree by the session role. A 403 here is a
// page-level access-denied, not a session failure, so no redirect.
func RBACAuthorize(service RBACService) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, c.Request.URL.Path)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
