package manager

import (
	"context"
	"time"

	"go.uber.org/zap"

	"leavedesk/internal/forms"
	managererrors "leavedesk/internal/manager/errors"
	"leavedesk/internal/modal"
	"leavedesk/internal/resource"
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

// UpstreamAPI is the slice of the leave service the manager pages use.
type UpstreamAPI interface {
	TeamRequests(ctx context.Context, token string) ([]upstream.LeaveRequest, error)
	UpdateLeaveStatus(ctx context.Context, token string, leaveID int, status, remarks string) (upstream.LeaveRequest, error)
	ManagerReports(ctx context.Context, token string) (upstream.ReportData, error)
	TeamLeaveHistory(ctx context.Context, token string) ([]upstream.LeaveRequest, error)
	UpcomingHolidays(ctx context.Context) ([]upstream.Holiday, error)
	LeaveBalances(ctx context.Context, token string) ([]upstream.LeaveBalance, error)
	TeamTimeOff(ctx context.Context, token string) ([]upstream.TeamTimeOff, error)
}

//go:generate mockgen -source=manager_service.go -destination=mock/manager_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, token string) (DashboardResponse, error)
	TeamRequests(ctx context.Context, sid, token, status, term string, page int) (TeamRequestsResponse, error)

	// Review dialog lifecycle: details first, then either a one-click
	// approve or the rejection hand-off with a mandatory reason.
	OpenReview(ctx context.Context, sid, token string, leaveID int) (ReviewResponse, error)
	Approve(ctx context.Context, sid, token string, leaveID int) (upstream.LeaveRequest, error)
	OpenRejection(sid string, leaveID int) error
	Reject(ctx context.Context, sid, token string, leaveID int, form forms.RejectionForm) (upstream.LeaveRequest, error)
	CloseModal(sid string) error

	Reports(ctx context.Context, token, department, leaveType string) (ReportsResponse, error)
	TeamCalendar(ctx context.Context, token string) (CalendarResponse, error)
}

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
	l := zap.L().Named("manager.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("manager.service")
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
		resource.Task{Name: "team_timeoff", Run: func(ctx context.Context) error {
			var err error
			resp.TeamTimeOff, err = s.api.TeamTimeOff(ctx, token)
			return err
		}},
		resource.Task{Name: "team_requests", Run: func(ctx context.Context) error {
			var err error
			resp.TeamRequests, err = s.api.TeamRequests(ctx, token)
			return err
		}},
		resource.Task{Name: "holidays", Run: func(ctx context.Context) error {
			var err error
			resp.UpcomingHolidays, err = s.holidays.Load(ctx)
			return err
		}},
		resource.Task{Name: "team_history", Run: func(ctx context.Context) error {
			var err error
			resp.TeamHistory, err = s.api.TeamLeaveHistory(ctx, token)
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

func (s *service) TeamRequests(ctx context.Context, sid, token, status, term string, page int) (TeamRequestsResponse, error) {
	items, err := s.api.TeamRequests(ctx, token)
	if err != nil {
		return TeamRequestsResponse{}, err
	}

	filtered := view.Filter(items, func(r upstream.LeaveRequest) bool {
		return view.MatchesStatus(status, r.Status) &&
			view.MatchesTerm(term, r.Employee, r.Type, r.Status, r.Reason)
	})

	p := s.pagers.For(sid, "team_requests")
	page = p.Apply(term, page, len(filtered))

	return TeamRequestsResponse{
		Items:  view.Page(filtered, page, view.DefaultPageSize),
		Status: status,
		Term:   term,
		Page:   page,
		Pages:  view.PageCount(len(filtered), view.DefaultPageSize),
		Total:  len(filtered),
	}, nil
}

func (s *service) findRequest(ctx context.Context, token string, leaveID int) (upstream.LeaveRequest, error) {
	items, err := s.api.TeamRequests(ctx, token)
	if err != nil {
		return upstream.LeaveRequest{}, err
	}
	for _, r := range items {
		if r.ID == leaveID {
			return r, nil
		}
	}
	return upstream.LeaveRequest{}, managererrors.ErrRequestNotFound
}

func (s *service) OpenReview(ctx context.Context, sid, token string, leaveID int) (ReviewResponse, error) {
	req, err := s.findRequest(ctx, token, leaveID)
	if err != nil {
		return ReviewResponse{}, err
	}
	if req.Status != upstream.StatusPending {
		return ReviewResponse{}, managererrors.ErrNotReviewable
	}

	if err := s.modals.For(sid).OpenDetails(leaveID); err != nil {
		return ReviewResponse{}, err
	}
	return ReviewResponse{Request: req}, nil
}

// decide forwards a verdict for the request whose details dialog is
// open. The dialog closes on success and reopens with the server
// message on failure.
func (s *service) decide(ctx context.Context, sid, token string, leaveID int, status, remarks string) (upstream.LeaveRequest, error) {
	m := s.modals.For(sid)
	if m.State() == modal.StateClosed {
		return upstream.LeaveRequest{}, managererrors.ErrNoReviewOpen
	}
	if m.Subject() != leaveID {
		return upstream.LeaveRequest{}, modal.ErrWrongSubject
	}
	if err := m.BeginSubmit(); err != nil {
		return upstream.LeaveRequest{}, err
	}

	updated, err := s.api.UpdateLeaveStatus(ctx, token, leaveID, status, remarks)
	m.FinishSubmit(err)
	if err != nil {
		return upstream.LeaveRequest{}, err
	}

	s.logger.Info("leave request decided",
		zap.Int("leave_id", leaveID),
		zap.String("status", status),
	)
	return updated, nil
}

func (s *service) Approve(ctx context.Context, sid, token string, leaveID int) (upstream.LeaveRequest, error) {
	return s.decide(ctx, sid, token, leaveID, upstream.StatusApproved, "")
}

func (s *service) OpenRejection(sid string, leaveID int) error {
	return s.modals.For(sid).OpenRejection(leaveID)
}

func (s *service) Reject(ctx context.Context, sid, token string, leaveID int, form forms.RejectionForm) (upstream.LeaveRequest, error) {
	if err := form.Validate(); err != nil {
		return upstream.LeaveRequest{}, err
	}
	return s.decide(ctx, sid, token, leaveID, upstream.StatusRejected, form.Reason)
}

func (s *service) CloseModal(sid string) error {
	return s.modals.For(sid).Close()
}

func (s *service) Reports(ctx context.Context, token, department, leaveType string) (ReportsResponse, error) {
	data, err := s.api.ManagerReports(ctx, token)
	if err != nil {
		return ReportsResponse{}, err
	}

	rows := view.Filter(data.LeaveStatistics, func(r upstream.ReportRow) bool {
		if department != "" && r.Department != department {
			return false
		}
		if leaveType != "" && r.LeaveType != leaveType {
			return false
		}
		return true
	})

	trends := data.MonthlyTrends
	if leaveType != "" {
		trends = view.Filter(trends, func(t upstream.MonthlyTrend) bool {
			return t.LeaveType == leaveType
		})
	}

	return ReportsResponse{
		Department:       department,
		LeaveType:        leaveType,
		DepartmentTotals: departmentTotals(rows),
		TypeDistribution: typeDistribution(rows),
		MonthlyTrends:    trends,
		TeamSummary:      data.TeamSummary,
	}, nil
}

func departmentTotals(rows []upstream.ReportRow) []DepartmentTotal {
	byDept := map[string]float64{}
	for _, r := range rows {
		byDept[r.Department] += r.TotalDays
	}

	totals := make([]DepartmentTotal, 0, len(byDept))
	for dept, days := range byDept {
		totals = append(totals, DepartmentTotal{Department: dept, TotalDays: days})
	}
	return view.SortBy(totals, func(a, b DepartmentTotal) bool { return a.Department < b.Department })
}

func typeDistribution(rows []upstream.ReportRow) []TypeShare {
	byType := map[string]float64{}
	for _, r := range rows {
		byType[r.LeaveType] += r.TotalDays
	}

	shares := make([]TypeShare, 0, len(byType))
	for lt, days := range byType {
		shares = append(shares, TypeShare{LeaveType: lt, TotalDays: days})
	}
	return view.SortBy(shares, func(a, b TypeShare) bool { return a.LeaveType < b.LeaveType })
}

func (s *service) TeamCalendar(ctx context.Context, token string) (CalendarResponse, error) {
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
