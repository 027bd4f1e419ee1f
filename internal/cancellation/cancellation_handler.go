package cancellation

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
)

type Handler struct {
	service Service
	store   session.Store
	logger  *zap.Logger
}

func NewHandler(service Service, store session.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cancellation.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cancellation.handler")
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

func (h *Handler) Open(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.Open(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), id)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Submit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.CancellationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MyRequests(c *gin.Context) {
	items, err := h.service.MyRequests(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Pending(c *gin.Context) {
	items, err := h.service.Pending(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) Handle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form forms.CancellationDecisionForm
	if err := c.ShouldBindJSON(&form); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	resolved, err := h.service.Handle(c.Request.Context(), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resolved, nil)
}
