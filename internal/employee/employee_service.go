package employee

import (
	"context"
	"time"

	"go.uber.org/zap"

	"leavedesk/internal/forms"
	"leavedesk/internal/modal"
	"leavedesk/internal/resource"
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

// UpstreamAPI is the slice of the leave service the employee pages use.
type UpstreamAPI interface {
	LeaveBalances(ctx context.Context, token string) ([]upstream.LeaveBalance, error)
	LeaveRequests(ctx context.Context, token string) ([]upstream.LeaveRequest, error)
	LeaveActivities(ctx context.Context, token string) ([]upstream.Activity, error)
	LeaveTypes(ctx context.Context, token string) ([]upstream.LeaveType, error)
	UpcomingHolidays(ctx context.Context) ([]upstream.Holiday, error)
	TeamTimeOff(ctx context.Context, token string) ([]upstream.TeamTimeOff, error)
	TeamLeaveHistory(ctx context.Context, token string) ([]upstream.LeaveRequest, error)
	ApplyLeave(ctx context.Context, token string, in upstream.ApplyLeaveInput) (upstream.LeaveRequest, error)
	MyProfile(ctx context.Context, token string) (upstream.Profile, error)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, token string) (DashboardResponse, error)
	History(ctx context.Context, sid, token, term string, page int) (HistoryResponse, error)
	Balances(ctx context.Context, token string) ([]upstream.LeaveBalance, error)
	Calendar(ctx context.Context, token string) (CalendarResponse, error)
	Profile(ctx context.Context, token, userName, role string) (ProfileResponse, error)

	// Apply dialog lifecycle. OpenApply loads the form options and marks
	// the dialog open; Apply validates, submits and resolves the dialog.
	OpenApply(ctx context.Context, sid, token string) (ApplyFormResponse, error)
	Apply(ctx context.Context, sid, token string, form forms.ApplyLeaveForm) (upstream.LeaveRequest, error)
	CloseModal(sid string) error
}

// holidayTTL bounds how stale the shared holiday list may get. The
// list is identical for every session, so concurrent page loads share
// one upstream call.
const holidayTTL = 10 * time.Minute

type service struct {
	api      UpstreamAPI
	modals   *modal.Registry
	pagers   *view.Registry
	holidays *resource.Single[[]upstream.Holiday]
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(api UpstreamAPI, modals *modal.Registry, pagers *view.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		api:      api,
		modals:   modals,
		pagers:   pagers,
		holidays: resource.NewSingle(api.UpcomingHolidays, holidayTTL),
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Dashboard(ctx context.Context, token string) (DashboardResponse, error) {
	var resp DashboardResponse

	err := resource.FetchAll(ctx,
		resource.Task{Name: "balances", Run: func(ctx context.Context) error {
			var err error
			resp.Balances, err = s.api.LeaveBalances(ctx, token)
			return err
		}},
		resource.Task{Name: "requests", Run: func(ctx context.Context) error {
			var err error
			resp.Requests, err = s.api.LeaveRequests(ctx, token)
			return err
		}},
		resource.Task{Name: "holidays", Run: func(ctx context.Context) error {
			var err error
			resp.UpcomingHolidays, err = s.holidays.Load(ctx)
			return err
		}},
		resource.Task{Name: "activities", Run: func(ctx context.Context) error {
			var err error
			resp.Activities, err = s.api.LeaveActivities(ctx, token)
			return err
		}},
		resource.Task{Name: "team_timeoff", Run: func(ctx context.Context) error {
			var err error
			resp.TeamTimeOff, err = s.api.TeamTimeOff(ctx, token)
			return err
		}},
	)
	if err != nil {
		return DashboardResponse{}, err
	}

	if h, until, ok := view.NextHoliday(resp.UpcomingHolidays, s.now()); ok {
		resp.NextHoliday = &NextHoliday{Holiday: h, DaysUntil: until}
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, sid, token, term string, page int) (HistoryResponse, error) {
	items, err := s.api.LeaveRequests(ctx, token)
	if err != nil {
		return HistoryResponse{}, err
	}

	filtered := view.Filter(items, func(r upstream.LeaveRequest) bool {
		return view.MatchesTerm(term, r.Type, r.Status, r.Approver, r.Reason)
	})

	p := s.pagers.For(sid, "leave_history")
	page = p.Apply(term, page, len(filtered))

	return HistoryResponse{
		Items: view.Page(filtered, page, view.DefaultPageSize),
		Term:  term,
		Page:  page,
		Pages: view.PageCount(len(filtered), view.DefaultPageSize),
		Total: len(filtered),
	}, nil
}

func (s *service) Balances(ctx context.Context, token string) ([]upstream.LeaveBalance, error) {
	return s.api.LeaveBalances(ctx, token)
}

func (s *service) Calendar(ctx context.Context, token string) (CalendarResponse, error) {
	var (
		history  []upstream.LeaveRequest
		holidays []upstream.Holiday
	)

	err := resource.FetchAll(ctx,
		resource.Task{Name: "team_history", Run: func(ctx context.Context) error {
			var err error
			history, err = s.api.TeamLeaveHistory(ctx, token)
			return err
		}},
		resource.Task{Name: "holidays", Run: func(ctx context.Context) error {
			var err error
			holidays, err = s.holidays.Load(ctx)
			return err
		}},
	)
	if err != nil {
		return CalendarResponse{}, err
	}

	return CalendarResponse{Days: view.MergeCalendar(history, holidays)}, nil
}

func (s *service) Profile(ctx context.Context, token, userName, role string) (ProfileResponse, error) {
	p, err := s.api.MyProfile(ctx, token)
	if err != nil {
		return ProfileResponse{}, err
	}
	return ProfileResponse{UserName: userName, Role: role, Profile: p}, nil
}

func (s *service) OpenApply(ctx context.Context, sid, token string) (ApplyFormResponse, error) {
	types, err := s.api.LeaveTypes(ctx, token)
	if err != nil {
		return ApplyFormResponse{}, err
	}

	if err := s.modals.For(sid).OpenApply(); err != nil {
		return ApplyFormResponse{}, err
	}
	return ApplyFormResponse{LeaveTypes: types}, nil
}

func (s *service) Apply(ctx context.Context, sid, token string, form forms.ApplyLeaveForm) (upstream.LeaveRequest, error) {
	form = form.WithDefaults()
	// Validation failures keep the dialog open without touching the
	// submit latch.
	if err := form.Validate(s.now()); err != nil {
		return upstream.LeaveRequest{}, err
	}

	m := s.modals.For(sid)
	if err := m.BeginSubmit(); err != nil {
		return upstream.LeaveRequest{}, err
	}

	created, err := s.api.ApplyLeave(ctx, token, upstream.ApplyLeaveInput{
		LeaveTypeID: form.LeaveTypeID,
		FromDate:    form.FromDate,
		FromSession: form.FromSession,
		ToDate:      form.ToDate,
		ToSession:   form.ToSession,
		Reason:      form.Reason,
	})
	m.FinishSubmit(err)
	if err != nil {
		return upstream.LeaveRequest{}, err
	}

	s.logger.Info("leave applied",
		zap.Int("leave_id", created.ID),
		zap.String("from", created.From),
		zap.String("to", created.To),
	)
	return created, nil
}

func (s *service) CloseModal(sid string) error {
	return s.modals.For(sid).Close()
}
