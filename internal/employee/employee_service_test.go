package employee_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/employee"
	"leavedesk/internal/forms"
	formerrors "leavedesk/internal/forms/errors"
	"leavedesk/internal/modal"
	"leavedesk/internal/upstream"
	upstreamerrors "leavedesk/internal/upstream/errors"
	"leavedesk/internal/view"
)

type fakeAPI struct {
	balances   []upstream.LeaveBalance
	requests   []upstream.LeaveRequest
	activities []upstream.Activity
	types      []upstream.LeaveType
	holidays   []upstream.Holiday
	timeOff    []upstream.TeamTimeOff
	history    []upstream.LeaveRequest
	profile    upstream.Profile

	balancesErr error
	applyErr    error

	applied    []upstream.ApplyLeaveInput
	applyCalls int
}

func (f *fakeAPI) LeaveBalances(_ context.Context, _ string) ([]upstream.LeaveBalance, error) {
	return f.balances, f.balancesErr
}

func (f *fakeAPI) LeaveRequests(_ context.Context, _ string) ([]upstream.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeAPI) LeaveActivities(_ context.Context, _ string) ([]upstream.Activity, error) {
	return f.activities, nil
}

func (f *fakeAPI) LeaveTypes(_ context.Context, _ string) ([]upstream.LeaveType, error) {
	return f.types, nil
}

func (f *fakeAPI) UpcomingHolidays(_ context.Context) ([]upstream.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeAPI) TeamTimeOff(_ context.Context, _ string) ([]upstream.TeamTimeOff, error) {
	return f.timeOff, nil
}

func (f *fakeAPI) TeamLeaveHistory(_ context.Context, _ string) ([]upstream.LeaveRequest, error) {
	return f.history, nil
}

func (f *fakeAPI) ApplyLeave(_ context.Context, _ string, in upstream.ApplyLeaveInput) (upstream.LeaveRequest, error) {
	f.applyCalls++
	if f.applyErr != nil {
		return upstream.LeaveRequest{}, f.applyErr
	}
	f.applied = append(f.applied, in)
	return upstream.LeaveRequest{
		ID:     101,
		From:   in.FromDate,
		To:     in.ToDate,
		Status: upstream.StatusPending,
	}, nil
}

func (f *fakeAPI) MyProfile(_ context.Context, _ string) (upstream.Profile, error) {
	return f.profile, nil
}

func TestDashboardFanIn(t *testing.T) {
	api := &fakeAPI{
		balances: []upstream.LeaveBalance{{Label: "Casual", Current: 4, Total: 10, Taken: 6}},
		requests: []upstream.LeaveRequest{{ID: 1, Status: upstream.StatusPending}},
		holidays: []upstream.Holiday{
			{ID: 1, Name: "Diwali", Date: "2026-11-08"},
			{ID: 2, Name: "Founders Day", Date: "2026-09-10"},
		},
		activities: []upstream.Activity{{ID: 5, Employee: "Ravi"}},
		timeOff:    []upstream.TeamTimeOff{{Employee: "Mira"}},
	}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.Dashboard(context.Background(), "tok")

	assert.NoError(t, err)
	assert.Len(t, resp.Balances, 1)
	assert.Len(t, resp.Requests, 1)
	assert.Len(t, resp.UpcomingHolidays, 2)
	assert.Len(t, resp.Activities, 1)
	assert.Len(t, resp.TeamTimeOff, 1)

	if assert.NotNil(t, resp.NextHoliday) {
		assert.Equal(t, "Founders Day", resp.NextHoliday.Name)
		assert.GreaterOrEqual(t, resp.NextHoliday.DaysUntil, 0)
	}
}

func TestDashboardOneFailureFailsAll(t *testing.T) {
	api := &fakeAPI{balancesErr: upstreamerrors.ErrUnreachable}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	_, err := svc.Dashboard(context.Background(), "tok")

	assert.ErrorIs(t, err, upstreamerrors.ErrUnreachable)
}

func historyFixture(n int) []upstream.LeaveRequest {
	items := make([]upstream.LeaveRequest, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, upstream.LeaveRequest{
			ID:     i + 1,
			Type:   "Casual Leave",
			Status: upstream.StatusApproved,
			Reason: fmt.Sprintf("reason %d", i+1),
		})
	}
	return items
}

func TestHistoryPaginates(t *testing.T) {
	api := &fakeAPI{requests: historyFixture(20)}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.History(context.Background(), "sid", "tok", "", 0)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 8)
	assert.Equal(t, 3, resp.Pages)
	assert.Equal(t, 20, resp.Total)
	assert.Equal(t, 1, resp.Items[0].ID)

	last, err := svc.History(context.Background(), "sid", "tok", "", 2)
	assert.NoError(t, err)
	assert.Len(t, last.Items, 4)
}

func TestHistoryTermChangeResetsPage(t *testing.T) {
	api := &fakeAPI{requests: historyFixture(20)}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	// Walk to the last page, then search: the page index starts over.
	resp, err := svc.History(context.Background(), "sid", "tok", "", 2)
	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Page)

	resp, err = svc.History(context.Background(), "sid", "tok", "casual", 2)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Page)
	assert.Equal(t, 1, resp.Items[0].ID)

	// Another session's pager is untouched by the first one's term.
	other, err := svc.History(context.Background(), "sid-2", "tok", "", 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, other.Page)
}

func TestHistoryClampsPage(t *testing.T) {
	api := &fakeAPI{requests: historyFixture(10)}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.History(context.Background(), "sid", "tok", "", 99)

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.Items, 2)
}

func TestHistoryTermFilter(t *testing.T) {
	api := &fakeAPI{requests: []upstream.LeaveRequest{
		{ID: 1, Type: "Sick Leave", Status: upstream.StatusApproved, Reason: "flu"},
		{ID: 2, Type: "Casual Leave", Status: upstream.StatusPending, Reason: "family visit"},
		{ID: 3, Type: "Casual Leave", Status: upstream.StatusRejected, Approver: "Dana", Reason: "trip"},
	}}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.History(context.Background(), "sid", "tok", "CASUAL", 0)
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	resp, err = svc.History(context.Background(), "sid", "tok", "dana", 0)
	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].ID)
}

func TestCalendarMergesByDate(t *testing.T) {
	api := &fakeAPI{
		holidays: []upstream.Holiday{{Name: "Diwali", Date: "2026-11-08"}},
		history: []upstream.LeaveRequest{
			{ID: 1, Employee: "Mira", From: "2026-11-08", To: "2026-11-09"},
			{ID: 2, Employee: "Ravi", From: "2026-10-01", To: "2026-10-02"},
		},
	}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.Calendar(context.Background(), "tok")

	assert.NoError(t, err)
	if assert.Len(t, resp.Days, 2) {
		assert.Equal(t, "2026-10-01", resp.Days[0].Date)
		assert.Equal(t, "2026-11-08", resp.Days[1].Date)
		assert.Len(t, resp.Days[1].Holidays, 1)
		assert.Len(t, resp.Days[1].OnLeave, 1)
	}
}

func TestProfileCombinesSessionAndUpstream(t *testing.T) {
	api := &fakeAPI{profile: upstream.Profile{Name: "Ravi Kumar", Department: "Platform"}}
	svc := employee.NewService(api, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.Profile(context.Background(), "tok", "Ravi Kumar", "employee")

	assert.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", resp.UserName)
	assert.Equal(t, "employee", resp.Role)
	assert.Equal(t, "Platform", resp.Profile.Department)
}

func TestOpenApplyLoadsTypes(t *testing.T) {
	api := &fakeAPI{types: []upstream.LeaveType{{ID: 1, Name: "Casual Leave", MaxDays: 12}}}
	modals := modal.NewRegistry()
	svc := employee.NewService(api, modals, view.NewRegistry(view.DefaultPageSize))

	resp, err := svc.OpenApply(context.Background(), "sid-1", "tok")

	assert.NoError(t, err)
	assert.Len(t, resp.LeaveTypes, 1)
	assert.Equal(t, modal.StateApply, modals.For("sid-1").State())

	_, err = svc.OpenApply(context.Background(), "sid-1", "tok")
	assert.ErrorIs(t, err, modal.ErrAlreadyOpen)
}

func applyForm(from, to string) forms.ApplyLeaveForm {
	return forms.ApplyLeaveForm{
		LeaveTypeID: 1,
		FromDate:    from,
		ToDate:      to,
		Reason:      "family function",
	}
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestApplySubmitsAndCloses(t *testing.T) {
	api := &fakeAPI{types: []upstream.LeaveType{{ID: 1}}}
	modals := modal.NewRegistry()
	svc := employee.NewService(api, modals, view.NewRegistry(view.DefaultPageSize))

	_, err := svc.OpenApply(context.Background(), "sid-1", "tok")
	assert.NoError(t, err)

	created, err := svc.Apply(context.Background(), "sid-1", "tok",
		applyForm(futureDate(3), futureDate(5)))

	assert.NoError(t, err)
	assert.Equal(t, upstream.StatusPending, created.Status)
	assert.Equal(t, modal.StateClosed, modals.For("sid-1").State())

	if assert.Len(t, api.applied, 1) {
		assert.Equal(t, forms.SessionForenoon, api.applied[0].FromSession)
		assert.Equal(t, forms.SessionAfternoon, api.applied[0].ToSession)
	}
}

func TestApplyValidationFailureSkipsUpstream(t *testing.T) {
	api := &fakeAPI{}
	modals := modal.NewRegistry()
	svc := employee.NewService(api, modals, view.NewRegistry(view.DefaultPageSize))
	assert.NoError(t, modals.For("sid-1").OpenApply())

	form := applyForm(futureDate(5), futureDate(3))
	_, err := svc.Apply(context.Background(), "sid-1", "tok", form)

	assert.ErrorIs(t, err, formerrors.ErrInvalidDateRange)
	assert.Zero(t, api.applyCalls)
	assert.Equal(t, modal.StateApply, modals.For("sid-1").State())
}

func TestApplyUpstreamRejectionReopensForm(t *testing.T) {
	api := &fakeAPI{applyErr: upstreamerrors.ErrBadPayload}
	modals := modal.NewRegistry()
	svc := employee.NewService(api, modals, view.NewRegistry(view.DefaultPageSize))
	assert.NoError(t, modals.For("sid-1").OpenApply())

	_, err := svc.Apply(context.Background(), "sid-1", "tok",
		applyForm(futureDate(3), futureDate(5)))

	assert.Error(t, err)
	m := modals.For("sid-1")
	assert.Equal(t, modal.StateApply, m.State())
	assert.NotEmpty(t, m.Message())

	// The form can be resubmitted.
	api.applyErr = nil
	_, err = svc.Apply(context.Background(), "sid-1", "tok",
		applyForm(futureDate(3), futureDate(5)))
	assert.NoError(t, err)
}

func TestCloseModal(t *testing.T) {
	modals := modal.NewRegistry()
	svc := employee.NewService(&fakeAPI{}, modals, view.NewRegistry(view.DefaultPageSize))
	assert.NoError(t, modals.For("sid-1").OpenApply())

	assert.NoError(t, svc.CloseModal("sid-1"))
	assert.Equal(t, modal.StateClosed, modals.For("sid-1").State())
}
