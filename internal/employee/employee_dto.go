package employee

import (
	"leavedesk/internal/upstream"
	"leavedesk/internal/view"
)

// NextHoliday is the dashboard highlight card: the first upcoming
// holiday and how many days away it is.
type NextHoliday struct {
	upstream.Holiday
	DaysUntil int `json:"daysUntil"`
}

// DashboardResponse is the fan-in of every dashboard panel. It is
// all-or-nothing: one failed panel fails the whole page.
type DashboardResponse struct {
	Balances         []upstream.LeaveBalance `json:"balances"`
	Requests         []upstream.LeaveRequest `json:"requests"`
	UpcomingHolidays []upstream.Holiday      `json:"upcomingHolidays"`
	NextHoliday      *NextHoliday            `json:"nextHoliday"`
	Activities       []upstream.Activity     `json:"activities"`
	TeamTimeOff      []upstream.TeamTimeOff  `json:"teamTimeOff"`
}

type HistoryResponse struct {
	Items []upstream.LeaveRequest `json:"items"`
	Term  string                  `json:"term"`
	Page  int                     `json:"page"`
	Pages int                     `json:"pages"`
	Total int                     `json:"total"`
}

type CalendarResponse struct {
	Days []view.CalendarDay `json:"days"`
}

type ProfileResponse struct {
	UserName string           `json:"userName"`
	Role     string           `json:"role"`
	Profile  upstream.Profile `json:"profile"`
}

// ApplyFormResponse is what the apply dialog needs before it renders.
type ApplyFormResponse struct {
	LeaveTypes []upstream.LeaveType `json:"leaveTypes"`
}
