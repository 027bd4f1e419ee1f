package employee_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leavedesk/internal/employee"
	"leavedesk/internal/forms"
	"leavedesk/internal/session"
	"leavedesk/internal/upstream"
	upstreamerrors "leavedesk/internal/upstream/errors"
)

type fakeService struct {
	dashboard employee.DashboardResponse
	history   employee.HistoryResponse
	err       error

	gotTerm string
	gotPage int
	applied []forms.ApplyLeaveForm
}

func (f *fakeService) Dashboard(_ context.Context, _ string) (employee.DashboardResponse, error) {
	return f.dashboard, f.err
}

func (f *fakeService) History(_ context.Context, _, _, term string, page int) (employee.HistoryResponse, error) {
	f.gotTerm = term
	f.gotPage = page
	return f.history, f.err
}

func (f *fakeService) Balances(_ context.Context, _ string) ([]upstream.LeaveBalance, error) {
	return nil, f.err
}

func (f *fakeService) Calendar(_ context.Context, _ string) (employee.CalendarResponse, error) {
	return employee.CalendarResponse{}, f.err
}

func (f *fakeService) Profile(_ context.Context, _, _, _ string) (employee.ProfileResponse, error) {
	return employee.ProfileResponse{}, f.err
}

func (f *fakeService) OpenApply(_ context.Context, _, _ string) (employee.ApplyFormResponse, error) {
	return employee.ApplyFormResponse{}, f.err
}

func (f *fakeService) Apply(_ context.Context, _, _ string, form forms.ApplyLeaveForm) (upstream.LeaveRequest, error) {
	if f.err != nil {
		return upstream.LeaveRequest{}, f.err
	}
	f.applied = append(f.applied, form)
	return upstream.LeaveRequest{ID: 7, Status: upstream.StatusPending}, nil
}

func (f *fakeService) CloseModal(_ string) error { return f.err }

type fakeStore struct{}

func (fakeStore) Init(_ context.Context, _ string, _ session.Session) error { return nil }
func (fakeStore) Get(_ context.Context, _ string) (session.Session, error) {
	return session.Session{}, session.ErrNoSession
}
func (fakeStore) SetSidebar(_ context.Context, _ string, _ bool) error { return nil }
func (fakeStore) Teardown(_ context.Context, _ string) error           { return nil }

func setupRouter(svc employee.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", "sid-1")
		c.Set("token", "tok")
		c.Set("user_name", "Ravi")
		c.Set("role", "employee")
	})
	employee.RegisterRoutes(&r.RouterGroup, employee.NewHandler(svc, fakeStore{}))
	return r
}

func TestHandlerHistoryQuery(t *testing.T) {
	svc := &fakeService{history: employee.HistoryResponse{Page: 1, Pages: 3, Total: 20}}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employee/leave/history?term=sick&page=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sick", svc.gotTerm)
	assert.Equal(t, 1, svc.gotPage)

	var res map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	meta := res["meta"].(map[string]interface{})
	assert.Equal(t, float64(20), meta["total"])
	assert.Equal(t, float64(3), meta["totalPages"])
}

func TestHandlerDashboardError(t *testing.T) {
	svc := &fakeService{err: upstreamerrors.ErrUnreachable}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var res map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, false, res["ok"])
}

func TestHandlerExpiredSessionRedirects(t *testing.T) {
	svc := &fakeService{err: upstreamerrors.ErrSessionExpired}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employee/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "/login")
	assert.Contains(t, loc, "reason=auth")
}

func TestHandlerApplyCreated(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	body, _ := json.Marshal(forms.ApplyLeaveForm{
		LeaveTypeID: 1,
		FromDate:    "2026-09-10",
		ToDate:      "2026-09-11",
		Reason:      "family function",
	})
	req := httptest.NewRequest(http.MethodPost, "/employee/leave/apply", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, svc.applied, 1)
}

func TestHandlerApplyRejectsMissingFields(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/employee/leave/apply",
		bytes.NewBufferString(`{"fromDate":"2026-09-10"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.applied)
}
