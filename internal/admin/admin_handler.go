package admin

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
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
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

func bindForm[T any](c *gin.Context) (T, bool) {
	var form T
	if err := c.ShouldBindJSON(&form); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return form, false
	}
	return form, true
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Employees(c *gin.Context) {
	term := c.Query("term")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	resp, err := h.service.Employees(c.Request.Context(),
		middleware.SessionID(c), middleware.Token(c), term, page)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	meta := response.NewPaginationMeta(int64(resp.Total), resp.Page, view.DefaultPageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	form, ok := bindForm[forms.EmployeeForm](c)
	if !ok {
		return
	}
	created, err := h.service.CreateEmployee(c.Request.Context(), middleware.Token(c), form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, ok := bindForm[forms.EmployeeForm](c)
	if !ok {
		return
	}
	updated, err := h.service.UpdateEmployee(c.Request.Context(), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, updated, nil)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteEmployee(c.Request.Context(), middleware.Token(c), id); err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}

func (h *Handler) LeaveTypes(c *gin.Context) {
	items, err := h.service.LeaveTypes(c.Request.Context(), middleware.Token(c))
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) CreateLeaveType(c *gin.Context) {
	form, ok := bindForm[forms.LeaveTypeForm](c)
	if !ok {
		return
	}
	resp, err := h.service.CreateLeaveType(c.Request.Context(), middleware.Token(c), form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) UpdateLeaveType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, ok := bindForm[forms.LeaveTypeForm](c)
	if !ok {
		return
	}
	resp, err := h.service.UpdateLeaveType(c.Request.Context(), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteLeaveType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteLeaveType(c.Request.Context(), middleware.Token(c), id); err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"deleted": id,
		"warning": LeaveTypeDeleteWarning,
	}, nil)
}

func (h *Handler) Holidays(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	items, err := h.service.Holidays(c.Request.Context(), middleware.Token(c), year)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) CreateHoliday(c *gin.Context) {
	form, ok := bindForm[forms.HolidayForm](c)
	if !ok {
		return
	}
	created, err := h.service.CreateHoliday(c.Request.Context(), middleware.Token(c), form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusCreated, created, nil)
}

func (h *Handler) UpdateHoliday(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	form, ok := bindForm[forms.HolidayForm](c)
	if !ok {
		return
	}
	updated, err := h.service.UpdateHoliday(c.Request.Context(), middleware.Token(c), id, form)
	if err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, updated, nil)
}

func (h *Handler) DeleteHoliday(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteHoliday(c.Request.Context(), middleware.Token(c), id); err != nil {
		middleware.WriteServiceError(c, h.store, h.logger, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id}, nil)
}

func (h *Handler) SaveSettings(c *gin.Context) {
	form, ok := bindForm[SettingsForm](c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, h.service.SaveSettings(form), nil)
}
