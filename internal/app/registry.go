package app

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/admin"
	"leavedesk/internal/auth"
	"leavedesk/internal/cancellation"
	"leavedesk/internal/employee"
	"leavedesk/internal/manager"
	"leavedesk/internal/middleware"
	"leavedesk/internal/modal"
	"leavedesk/internal/rbac"
	"leavedesk/internal/session"
	"leavedesk/internal/shell"
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

// Deps carries the shared infrastructure every module hangs off. Tests
// swap the store and point the client at a fake upstream.
type Deps struct {
	API    *upstream.Client
	Store  session.Store
	RBAC   rbac.Service
	Modals *modal.Registry
	Pagers *view.Registry
	Logger *zap.Logger
}

// RegisterModules wires the whole gateway: the open login endpoint,
// the session-guarded shell, and the three role trees behind the
// authorization policy.
func RegisterModules(router *gin.Engine, deps Deps) {
	if deps.Logger == nil {
		deps.Logger = zap.L()
	}
	if deps.Pagers == nil {
		deps.Pagers = view.NewRegistry(view.DefaultPageSize)
	}
	router.Use(middleware.RequestID(), middleware.ContextLogger(deps.Logger))

	// --- Services ---
	authService := auth.NewService(deps.API, deps.Store, deps.Modals, deps.Pagers, deps.Logger)
	employeeService := employee.NewService(deps.API, deps.Modals, deps.Pagers, deps.Logger)
	cancellationService := cancellation.NewService(deps.API, deps.Modals, deps.Logger)
	managerService := manager.NewService(deps.API, deps.Modals, deps.Pagers, deps.Logger)
	adminService := admin.NewService(deps.API, deps.Pagers, deps.Logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	shellHandler := shell.NewHandler(deps.Store, deps.Logger)
	employeeHandler := employee.NewHandler(employeeService, deps.Store, deps.Logger)
	cancellationHandler := cancellation.NewHandler(cancellationService, deps.Store, deps.Logger)
	managerHandler := manager.NewHandler(managerService, deps.Store, deps.Logger)
	adminHandler := admin.NewHandler(adminService, deps.Store, deps.Logger)

	// --- Routes ---
	auth.RegisterRoutes(router, authHandler, deps.Store)

	protected := router.Group("", middleware.SessionAuth(deps.Store))
	shell.RegisterRoutes(protected, shellHandler)

	roleTree := protected.Group("", middleware.RBACAuthorize(deps.RBAC))
	{
		employee.RegisterRoutes(roleTree, employeeHandler)
		cancellation.RegisterEmployeeRoutes(roleTree, cancellationHandler)

		manager.RegisterRoutes(roleTree, managerHandler)
		cancellation.RegisterManagerRoutes(roleTree, cancellationHandler)

		admin.RegisterRoutes(roleTree, adminHandler)

		// Profile and calendar exist in every tree, not just the
		// employee one.
		employee.RegisterSharedRoutes(roleTree, "/manager", employeeHandler)
		employee.RegisterSharedRoutes(roleTree, "/admin", employeeHandler)
	}
}
