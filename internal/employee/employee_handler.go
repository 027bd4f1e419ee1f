package employee

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/forms"
	"leavedesk/internal/middleware"
	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/view"
)

type Handler struct {
	service Service
	store   session.Store
	logger  *zap.Logger
}

func NewHandler(service Service, store session.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, store: store, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	middleware.WriteServiceError(c, h.store, h.logger, err)
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	term := c.Query("term")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	resp, err := h.service.History(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), term, page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewPaginationMeta(int64(resp.Total), resp.Page, view.DefaultPageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Balances(c *gin.Context) {
	resp, err := h.service.Balances(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Calendar(c *gin.Context) {
	resp, err := h.service.Calendar(c.Request.Context(), middleware.Token(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Profile(c *gin.Context) {
	resp, err := h.service.Profile(c.Request.Context(),
		middleware.Token(c), middleware.UserName(c), middleware.Role(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OpenApply(c *gin.Context) {
	resp, err := h.service.OpenApply(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Apply(c *gin.Context) {
	var form forms.ApplyLeaveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	created, err := h.service.Apply(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) CloseModal(c *gin.Context) {
	if err := h.service.CloseModal(middleware.SessionID(c)); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"state": "closed"}, nil)
}
