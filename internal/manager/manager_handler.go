package manager

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
	l := zap.L().Named("manager.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.handler")
	}
	return &Handler{service: service, store: store, logger: l}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid id", nil)
		return 0, false
	}
	return id, true
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamRequests(c *gin.Context) {
	status := c.DefaultQuery("status", view.StatusAll)
	term := c.Query("term")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	resp, err := h.service.TeamRequests(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), status, term, page)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	meta := response.NewPaginationMeta(int64(resp.Total), resp.Page, view.DefaultPageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) OpenReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.OpenReview(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), id)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	updated, err := h.service.Approve(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), id)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, updated, nil)
}

func (h *Handler) OpenRejection(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.OpenRejection(middleware.SessionID(c), id); err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"state": "rejection"}, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.RejectionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	updated, err := h.service.Reject(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, updated, nil)
}

func (h *Handler) CloseModal(c *gin.Context) {
	if err := h.service.CloseModal(middleware.SessionID(c)); err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"state": "closed"}, nil)
}

func (h *Handler) Reports(c *gin.Context) {
	resp, err := h.service.Reports(c.Request.Context(), middleware.Token(c),
		c.Query("department"), c.Query("leaveType"))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TeamCalendar(c *gin.Context) {
	resp, err := h.service.TeamCalendar(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
