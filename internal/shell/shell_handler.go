// Package shell serves the layout chrome shared by every role tree:
// who is signed in and the sidebar flag.
package shell

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
)

type Handler struct {
	store  session.Store
	logger *zap.Logger
}

func NewHandler(store session.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("shell.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shell.handler")
	}
	return &Handler{store: store, logger: l}
}

type meResponse struct {
	UserName    string `json:"userName"`
	Role        string `json:"role"`
	SidebarOpen bool   `json:"sidebarOpen"`
}

func (h *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, meResponse{
		UserName:    middleware.UserName(c),
		Role:        middleware.Role(c),
		SidebarOpen: middleware.SidebarOpen(c),
	}, nil)
}

type sidebarRequest struct {
	Open bool `json:"open"`
}

// ToggleSidebar persists the layout flag for the rest of the session.
// A fresh session always starts closed.
func (h *Handler) ToggleSidebar(c *gin.Context) {
	var req sidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	sid := middleware.SessionID(c)
	if err := h.store.SetSidebar(c.Request.Context(), sid, req.Open); err != nil {
		h.logger.Warn("sidebar update failed", zap.Error(err))
		he := apperror.ToHTTP(err)
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sidebarOpen": req.Open}, nil)
}
