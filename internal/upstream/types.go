package upstream

// Canonical records. The HR API is inconsistent about field casing
// (legacy endpoints send PascalCase database column names, newer ones
// send camelCase), so every payload is normalized into these types at
// the client boundary and nothing else in the gateway sees raw shapes.

const (
	StatusPending               = "Pending"
	StatusApproved              = "Approved"
	StatusRejected              = "Rejected"
	StatusCancelled             = "Cancelled"
	StatusCancellationRequested = "Cancellation Requested"
)

type LoginResult struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserName string `json:"userName"`
}

type LeaveRequest struct {
	ID       int     `json:"id"`
	Employee string  `json:"employee"`
	Type     string  `json:"type"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Days     float64 `json:"days"`
	Status   string  `json:"status"`
	Approver string  `json:"approver"`
	Reason   string  `json:"reason"`
	Remarks  string  `json:"remarks,omitempty"`
}

type LeaveBalance struct {
	Label   string  `json:"label"`
	Current float64 `json:"current"`
	Total   float64 `json:"total"`
	Taken   float64 `json:"taken"`
}

type Holiday struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Day  string `json:"day"`
}

type LeaveType struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	MaxDays int    `json:"maxDays"`
	Year    int    `json:"year"`
}

type Employee struct {
	ID          int    `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	ManagerID   *int   `json:"managerId,omitempty"`
}

type CancellationRequest struct {
	ID          int    `json:"id"`
	Employee    string `json:"employee"`
	Department  string `json:"department"`
	Type        string `json:"type"`
	From        string `json:"from"`
	To          string `json:"to"`
	Reason      string `json:"reason"`
	RequestedAt string `json:"requestedAt"`
	Status      string `json:"status"`
}

type Activity struct {
	ID       int    `json:"id"`
	Employee string `json:"employee"`
	Type     string `json:"type"`
	From     string `json:"from"`
	To       string `json:"to"`
	Status   string `json:"status"`
}

type TeamTimeOff struct {
	Employee string `json:"employee"`
	Type     string `json:"type"`
	From     string `json:"from"`
	To       string `json:"to"`
}

type ReportRow struct {
	Department    string  `json:"department"`
	LeaveType     string  `json:"leaveType"`
	TotalDays     float64 `json:"totalDays"`
	ApprovedCount int     `json:"approvedCount"`
	PendingCount  int     `json:"pendingCount"`
	RejectedCount int     `json:"rejectedCount"`
}

type MonthlyTrend struct {
	Month     string  `json:"month"`
	LeaveType string  `json:"leaveType"`
	Days      float64 `json:"days"`
}

type TeamMemberSummary struct {
	Employee  string  `json:"employee"`
	TakenDays float64 `json:"takenDays"`
	Pending   int     `json:"pending"`
}

type ReportData struct {
	LeaveStatistics []ReportRow         `json:"leaveStatistics"`
	MonthlyTrends   []MonthlyTrend      `json:"monthlyTrends"`
	TeamSummary     []TeamMemberSummary `json:"teamSummary"`
}

type AdminMetrics struct {
	TotalEmployees      int `json:"totalEmployees"`
	TotalLeaveDaysTaken int `json:"totalLeaveDaysTaken"`
	PendingRequests     int `json:"pendingRequests"`
	ApprovedToday       int `json:"approvedToday"`
}

type DepartmentStat struct {
	Department string `json:"department"`
	Employees  int    `json:"employees"`
	OnLeave    int    `json:"onLeave"`
}

type LeaveUtilization struct {
	LeaveType string  `json:"leaveType"`
	Allocated float64 `json:"allocated"`
	Used      float64 `json:"used"`
}

type SystemStats struct {
	DepartmentStats  []DepartmentStat   `json:"departmentStats"`
	LeaveUtilization []LeaveUtilization `json:"leaveUtilization"`
	MonthlyTrends    []MonthlyTrend     `json:"monthlyTrends"`
}

type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	JoinedAt    string `json:"joinedAt"`
}
