package manager

import (
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

type NextHoliday struct {
	upstream.Holiday
	DaysUntil int `json:"daysUntil"`
}

// DashboardResponse joins the five dashboard resources; a failure in
// any one of them fails the whole page.
type DashboardResponse struct {
	Balances         []upstream.LeaveBalance `json:"balances"`
	TeamTimeOff      []upstream.TeamTimeOff  `json:"teamTimeOff"`
	TeamRequests     []upstream.LeaveRequest `json:"teamRequests"`
	UpcomingHolidays []upstream.Holiday      `json:"upcomingHolidays"`
	NextHoliday      *NextHoliday            `json:"nextHoliday"`
	TeamHistory      []upstream.LeaveRequest `json:"teamHistory"`
}

type TeamRequestsResponse struct {
	Items  []upstream.LeaveRequest `json:"items"`
	Status string                  `json:"status"`
	Term   string                  `json:"term"`
	Page   int                     `json:"page"`
	Pages  int                     `json:"pages"`
	Total  int                     `json:"total"`
}

type ReviewResponse struct {
	Request upstream.LeaveRequest `json:"request"`
}

type DepartmentTotal struct {
	Department string  `json:"department"`
	TotalDays  float64 `json:"totalDays"`
}

type TypeShare struct {
	LeaveType string  `json:"leaveType"`
	TotalDays float64 `json:"totalDays"`
}

// ReportsResponse holds the groupings the reports page charts. All of
// them are computed here from the raw statistics, sorted by key, so the
// same payload always renders the same charts.
type ReportsResponse struct {
	Department       string                       `json:"department"`
	LeaveType        string                       `json:"leaveType"`
	DepartmentTotals []DepartmentTotal            `json:"departmentTotals"`
	TypeDistribution []TypeShare                  `json:"typeDistribution"`
	MonthlyTrends    []upstream.MonthlyTrend      `json:"monthlyTrends"`
	TeamSummary      []upstream.TeamMemberSummary `json:"teamSummary"`
}

type CalendarResponse struct {
	Days []view.CalendarDay `json:"days"`
}
