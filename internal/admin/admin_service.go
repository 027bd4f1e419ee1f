package admin

import (
	"context"

	"go.uber.org/zap"

	"leavedesk/internal/forms"
	"leavedesk/internal/resource"
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

// UpstreamAPI is the slice of the leave service the admin pages use.
type UpstreamAPI interface {
	AllEmployees(ctx context.Context, token string) ([]upstream.Employee, error)
	CreateEmployee(ctx context.Context, token string, in upstream.EmployeeInput) (upstream.Employee, error)
	UpdateEmployee(ctx context.Context, token string, id int, in upstream.EmployeeInput) (upstream.Employee, error)
	DeleteEmployee(ctx context.Context, token string, id int) error

	AllLeaveTypes(ctx context.Context, token string) ([]upstream.LeaveType, error)
	CreateLeaveType(ctx context.Context, token string, in upstream.LeaveTypeInput) (upstream.LeaveType, error)
	UpdateLeaveType(ctx context.Context, token string, id int, in upstream.LeaveTypeInput) (upstream.LeaveType, error)
	DeleteLeaveType(ctx context.Context, token string, id int) error

	AllHolidays(ctx context.Context, token string, year int) ([]upstream.Holiday, error)
	CreateHoliday(ctx context.Context, token string, in upstream.HolidayInput) (upstream.Holiday, error)
	UpdateHoliday(ctx context.Context, token string, id int, in upstream.HolidayInput) (upstream.Holiday, error)
	DeleteHoliday(ctx context.Context, token string, id int) error

	AdminMetrics(ctx context.Context, token string) (upstream.AdminMetrics, error)
	SystemStats(ctx context.Context, token string) (upstream.SystemStats, error)
}

//go:generate mockgen -source=admin_service.go -destination=mock/admin_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, token string) (DashboardResponse, error)

	Employees(ctx context.Context, sid, token, term string, page int) (EmployeesResponse, error)
	CreateEmployee(ctx context.Context, token string, form forms.EmployeeForm) (upstream.Employee, error)
	UpdateEmployee(ctx context.Context, token string, id int, form forms.EmployeeForm) (upstream.Employee, error)
	DeleteEmployee(ctx context.Context, token string, id int) error

	LeaveTypes(ctx context.Context, token string) ([]upstream.LeaveType, error)
	CreateLeaveType(ctx context.Context, token string, form forms.LeaveTypeForm) (LeaveTypeResponse, error)
	UpdateLeaveType(ctx context.Context, token string, id int, form forms.LeaveTypeForm) (LeaveTypeResponse, error)
	DeleteLeaveType(ctx context.Context, token string, id int) error

	Holidays(ctx context.Context, token string, year int) ([]upstream.Holiday, error)
	CreateHoliday(ctx context.Context, token string, form forms.HolidayForm) (upstream.Holiday, error)
	UpdateHoliday(ctx context.Context, token string, id int, form forms.HolidayForm) (upstream.Holiday, error)
	DeleteHoliday(ctx context.Context, token string, id int) error

	// SaveSettings validates and acknowledges; nothing is stored.
	SaveSettings(form SettingsForm) SettingsResponse
}

type service struct {
	api    UpstreamAPI
	pagers *view.Registry
	logger *zap.Logger
}

func NewService(api UpstreamAPI, pagers *view.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("admin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.service")
	}
	return &service{api: api, pagers: pagers, logger: l}
}

func (s *service) Dashboard(ctx context.Context, token string) (DashboardResponse, error) {
	var resp DashboardResponse

	err := resource.FetchAll(ctx,
		resource.Task{Name: "metrics", Run: func(ctx context.Context) error {
			var err error
			resp.Metrics, err = s.api.AdminMetrics(ctx, token)
			return err
		}},
		resource.Task{Name: "stats", Run: func(ctx context.Context) error {
			var err error
			resp.Stats, err = s.api.SystemStats(ctx, token)
			return err
		}},
	)
	if err != nil {
		return DashboardResponse{}, err
	}
	return resp, nil
}

func (s *service) Employees(ctx context.Context, sid, token, term string, page int) (EmployeesResponse, error) {
	items, err := s.api.AllEmployees(ctx, token)
	if err != nil {
		return EmployeesResponse{}, err
	}

	filtered := view.Filter(items, func(e upstream.Employee) bool {
		return view.MatchesTerm(term, e.FirstName, e.LastName, e.Email, e.Designation, e.Role)
	})

	p := s.pagers.For(sid, "employees")
	page = p.Apply(term, page, len(filtered))

	return EmployeesResponse{
		Items: view.Page(filtered, page, view.DefaultPageSize),
		Term:  term,
		Page:  page,
		Pages: view.PageCount(len(filtered), view.DefaultPageSize),
		Total: len(filtered),
	}, nil
}

func employeeInput(form forms.EmployeeForm) upstream.EmployeeInput {
	return upstream.EmployeeInput{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Email:       form.Email,
		Designation: form.Designation,
		Role:        form.Role,
		Gender:      form.Gender,
		DOB:         form.DOB,
		ManagerID:   form.ManagerID,
	}
}

func (s *service) CreateEmployee(ctx context.Context, token string, form forms.EmployeeForm) (upstream.Employee, error) {
	if err := form.Validate(); err != nil {
		return upstream.Employee{}, err
	}
	return s.api.CreateEmployee(ctx, token, employeeInput(form))
}

func (s *service) UpdateEmployee(ctx context.Context, token string, id int, form forms.EmployeeForm) (upstream.Employee, error) {
	if err := form.Validate(); err != nil {
		return upstream.Employee{}, err
	}
	return s.api.UpdateEmployee(ctx, token, id, employeeInput(form))
}

func (s *service) DeleteEmployee(ctx context.Context, token string, id int) error {
	return s.api.DeleteEmployee(ctx, token, id)
}

func (s *service) LeaveTypes(ctx context.Context, token string) ([]upstream.LeaveType, error) {
	return s.api.AllLeaveTypes(ctx, token)
}

func leaveTypeInput(form forms.LeaveTypeForm) upstream.LeaveTypeInput {
	return upstream.LeaveTypeInput{
		LeaveName: form.LeaveName,
		MaxDays:   form.MaxDays,
		Year:      form.Year,
	}
}

func (s *service) CreateLeaveType(ctx context.Context, token string, form forms.LeaveTypeForm) (LeaveTypeResponse, error) {
	if err := form.Validate(); err != nil {
		return LeaveTypeResponse{}, err
	}
	created, err := s.api.CreateLeaveType(ctx, token, leaveTypeInput(form))
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	return LeaveTypeResponse{LeaveType: created}, nil
}

func (s *service) UpdateLeaveType(ctx context.Context, token string, id int, form forms.LeaveTypeForm) (LeaveTypeResponse, error) {
	if err := form.Validate(); err != nil {
		return LeaveTypeResponse{}, err
	}
	updated, err := s.api.UpdateLeaveType(ctx, token, id, leaveTypeInput(form))
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	return LeaveTypeResponse{LeaveType: updated, Warning: LeaveTypeEditWarning}, nil
}

func (s *service) DeleteLeaveType(ctx context.Context, token string, id int) error {
	return s.api.DeleteLeaveType(ctx, token, id)
}

func (s *service) Holidays(ctx context.Context, token string, year int) ([]upstream.Holiday, error) {
	return s.api.AllHolidays(ctx, token, year)
}

func (s *service) CreateHoliday(ctx context.Context, token string, form forms.HolidayForm) (upstream.Holiday, error) {
	if err := form.Validate(); err != nil {
		return upstream.Holiday{}, err
	}
	return s.api.CreateHoliday(ctx, token, upstream.HolidayInput{Name: form.Name, Date: form.Date})
}

func (s *service) UpdateHoliday(ctx context.Context, token string, id int, form forms.HolidayForm) (upstream.Holiday, error) {
	if err := form.Validate(); err != nil {
		return upstream.Holiday{}, err
	}
	return s.api.UpdateHoliday(ctx, token, id, upstream.HolidayInput{Name: form.Name, Date: form.Date})
}

func (s *service) DeleteHoliday(ctx context.Context, token string, id int) error {
	return s.api.DeleteHoliday(ctx, token, id)
}

func (s *service) SaveSettings(form SettingsForm) SettingsResponse {
	s.logger.Info("settings accepted",
		zap.String("notification_email", form.NotificationEmail),
		zap.Int("default_annual_quota", form.DefaultAnnualQuota),
		zap.Bool("allow_half_day", form.AllowHalfDay),
		zap.Int("fiscal_year_start_month", form.FiscalYearStartMonth),
	)
	return SettingsResponse{
		Accepted:  true,
		Persisted: false,
		Note:      "Settings are validated but not stored yet.",
	}
}
