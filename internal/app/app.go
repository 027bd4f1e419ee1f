package app

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/modal"
	"leavedesk/internal/rbac"
	"leavedesk/internal/session"
	"leavedesk/internal/shared/connection"
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

const defaultSessionTTL = 24 * time.Hour

// BuildApp assembles the gateway from the environment: redis for
// sessions, the upstream base URL, the authorization policy, and every
// module's routes.
func BuildApp(router *gin.Engine) error {
	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	zap.L().Info("redis connection established")

	ttl := defaultSessionTTL
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		}
	}

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	RegisterModules(router, Deps{
		API:    upstream.NewClient(os.Getenv("UPSTREAM_BASE_URL")),
		Store:  session.NewRedisStore(redisClient, ttl),
		RBAC:   rbac.NewService(enforcer),
		Modals: modal.NewRegistry(),
		Pagers: view.NewRegistry(view.DefaultPageSize),
		Logger: zap.L(),
	})
	return nil
}
