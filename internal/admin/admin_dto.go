package admin

import "leavedesk/internal/upstream"

// Side-effect copy shown before destructive leave-type changes. The
// upstream owns the actual recalculation; the gateway only warns.
const (
	LeaveTypeEditWarning   = "Changing the maximum days recalculates every employee's balance for this leave type."
	LeaveTypeDeleteWarning = "Deleting a leave type removes it from every employee's balance. Existing requests keep their history."
)

type DashboardResponse struct {
	Metrics upstream.AdminMetrics `json:"metrics"`
	Stats   upstream.SystemStats  `json:"stats"`
}

type EmployeesResponse struct {
	Items []upstream.Employee `json:"items"`
	Term  string              `json:"term"`
	Page  int                 `json:"page"`
	Pages int                 `json:"pages"`
	Total int                 `json:"total"`
}

type LeaveTypeResponse struct {
	LeaveType upstream.LeaveType `json:"leaveType"`
	Warning   string             `json:"warning,omitempty"`
}

// SettingsForm is accepted and logged only; there is no upstream
// endpoint to persist it yet.
type SettingsForm struct {
	NotificationEmail    string `json:"notificationEmail" binding:"required,email"`
	DefaultAnnualQuota   int    `json:"defaultAnnualQuota" binding:"required,gte=1,lte=365"`
	AllowHalfDay         bool   `json:"allowHalfDay"`
	FiscalYearStartMonth int    `json:"fiscalYearStartMonth" binding:"required,gte=1,lte=12"`
}

type SettingsResponse struct {
	Accepted  bool   `json:"accepted"`
	Persisted bool   `json:"persisted"`
	Note      string `json:"note"`
}
