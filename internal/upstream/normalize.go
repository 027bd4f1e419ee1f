package upstream

import "encoding/json"

// The legacy endpoints expose raw column names (LeaveAppID, LeaveName,
// FromDate) while the rest sends camelCase. Each raw type lists every
// casing the API has been observed to use and folds them into one
// canonical record. first* pick the first non-zero variant in order.

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstInt(vals ...*int) int {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

func firstFloat(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}

type rawLeaveRequest struct {
	ID         *int     `json:"id"`
	LeaveAppID *int     `json:"LeaveAppID"`
	Employee   string   `json:"employee"`
	EmpName    string   `json:"EmployeeName"`
	Type       string   `json:"type"`
	LeaveName  string   `json:"LeaveName"`
	From       string   `json:"from"`
	FromDate   string   `json:"FromDate"`
	To         string   `json:"to"`
	ToDate     string   `json:"ToDate"`
	Days       *float64 `json:"days"`
	NoOfDays   *float64 `json:"NoOfDays"`
	Status     string   `json:"status"`
	StatusCaps string   `json:"Status"`
	Approver   string   `json:"approver"`
	ApprvName  string   `json:"ApproverName"`
	Reason     string   `json:"reason"`
	ReasonCaps string   `json:"Reason"`
	Remarks    string   `json:"remarks"`
	RemCaps    string   `json:"Remarks"`
}

func (r rawLeaveRequest) normalize() LeaveRequest {
	return LeaveRequest{
		ID:       firstInt(r.ID, r.LeaveAppID),
		Employee: firstString(r.Employee, r.EmpName),
		Type:     firstString(r.Type, r.LeaveName),
		From:     firstString(r.From, r.FromDate),
		To:       firstString(r.To, r.ToDate),
		Days:     firstFloat(r.Days, r.NoOfDays),
		Status:   firstString(r.Status, r.StatusCaps),
		Approver: firstString(r.Approver, r.ApprvName),
		Reason:   firstString(r.Reason, r.ReasonCaps),
		Remarks:  firstString(r.Remarks, r.RemCaps),
	}
}

type rawLeaveBalance struct {
	Label     string   `json:"label"`
	LeaveName string   `json:"LeaveName"`
	Current   *float64 `json:"current"`
	Remaining *float64 `json:"RemainingDays"`
	Total     *float64 `json:"total"`
	MaxDays   *float64 `json:"MaxDays"`
	Taken     *float64 `json:"taken"`
	UsedDays  *float64 `json:"UsedDays"`
}

func (r rawLeaveBalance) normalize() LeaveBalance {
	b := LeaveBalance{
		Label:   firstString(r.Label, r.LeaveName),
		Current: firstFloat(r.Current, r.Remaining),
		Total:   firstFloat(r.Total, r.MaxDays),
		Taken:   firstFloat(r.Taken, r.UsedDays),
	}
	if r.Taken == nil && r.UsedDays == nil {
		b.Taken = b.Total - b.Current
	}
	return b
}

type rawHoliday struct {
	ID        *int   `json:"id"`
	HolidayID *int   `json:"HolidayID"`
	Name      string `json:"name"`
	NameCaps  string `json:"HolidayName"`
	Date      string `json:"date"`
	DateCaps  string `json:"HolidayDate"`
	Day       string `json:"day"`
	DayOfWeek string `json:"DayOfWeek"`
}

func (r rawHoliday) normalize() Holiday {
	return Holiday{
		ID:   firstInt(r.ID, r.HolidayID),
		Name: firstString(r.Name, r.NameCaps),
		Date: firstString(r.Date, r.DateCaps),
		Day:  firstString(r.Day, r.DayOfWeek),
	}
}

type rawLeaveType struct {
	ID          *int   `json:"id"`
	LeaveTypeID *int   `json:"LeaveTypeID"`
	Name        string `json:"name"`
	LeaveName   string `json:"LeaveName"`
	MaxDays     *int   `json:"maxDays"`
	MaxDaysCaps *int   `json:"MaxDays"`
	Year        *int   `json:"year"`
	YearCaps    *int   `json:"Year"`
}

func (r rawLeaveType) normalize() LeaveType {
	return LeaveType{
		ID:      firstInt(r.ID, r.LeaveTypeID),
		Name:    firstString(r.Name, r.LeaveName),
		MaxDays: firstInt(r.MaxDays, r.MaxDaysCaps),
		Year:    firstInt(r.Year, r.YearCaps),
	}
}

type rawEmployee struct {
	ID        *int   `json:"id"`
	EmpID     *int   `json:"EmployeeID"`
	FirstName string `json:"firstName"`
	FirstCaps string `json:"FirstName"`
	LastName  string `json:"lastName"`
	LastCaps  string `json:"LastName"`
	Email     string `json:"email"`
	EmailCaps string `json:"Email"`
	Desig     string `json:"designation"`
	DesigCaps string `json:"Designation"`
	Role      string `json:"role"`
	RoleCaps  string `json:"Role"`
	Gender    string `json:"gender"`
	GendCaps  string `json:"Gender"`
	DOB       string `json:"dob"`
	DOBCaps   string `json:"DOB"`
	ManagerID *int   `json:"managerId"`
	MgrCaps   *int   `json:"ManagerID"`
}

func (r rawEmployee) normalize() Employee {
	e := Employee{
		ID:          firstInt(r.ID, r.EmpID),
		FirstName:   firstString(r.FirstName, r.FirstCaps),
		LastName:    firstString(r.LastName, r.LastCaps),
		Email:       firstString(r.Email, r.EmailCaps),
		Designation: firstString(r.Desig, r.DesigCaps),
		Role:        firstString(r.Role, r.RoleCaps),
		Gender:      firstString(r.Gender, r.GendCaps),
		DOB:         firstString(r.DOB, r.DOBCaps),
	}
	if r.ManagerID != nil {
		e.ManagerID = r.ManagerID
	} else if r.MgrCaps != nil {
		e.ManagerID = r.MgrCaps
	}
	return e
}

type rawCancellationRequest struct {
	ID          *int   `json:"id"`
	RequestID   *int   `json:"RequestID"`
	Employee    string `json:"employee"`
	EmpName     string `json:"EmployeeName"`
	Department  string `json:"department"`
	DeptCaps    string `json:"Department"`
	Type        string `json:"type"`
	LeaveName   string `json:"LeaveName"`
	From        string `json:"from"`
	FromDate    string `json:"FromDate"`
	To          string `json:"to"`
	ToDate      string `json:"ToDate"`
	Reason      string `json:"reason"`
	CancelRsn   string `json:"cancellationReason"`
	RequestedAt string `json:"requestedAt"`
	ReqAtCaps   string `json:"RequestedAt"`
	Status      string `json:"status"`
	StatusCaps  string `json:"Status"`
}

func (r rawCancellationRequest) normalize() CancellationRequest {
	return CancellationRequest{
		ID:          firstInt(r.ID, r.RequestID),
		Employee:    firstString(r.Employee, r.EmpName),
		Department:  firstString(r.Department, r.DeptCaps),
		Type:        firstString(r.Type, r.LeaveName),
		From:        firstString(r.From, r.FromDate),
		To:          firstString(r.To, r.ToDate),
		Reason:      firstString(r.Reason, r.CancelRsn),
		RequestedAt: firstString(r.RequestedAt, r.ReqAtCaps),
		Status:      firstString(r.Status, r.StatusCaps),
	}
}

type rawReportRow struct {
	Department string   `json:"department"`
	DeptCaps   string   `json:"Department"`
	LeaveType  string   `json:"leaveType"`
	TotalDays  *float64 `json:"totalDays"`
	Approved   *int     `json:"approvedCount"`
	Pending    *int     `json:"pendingCount"`
	Rejected   *int     `json:"rejectedCount"`
}

func (r rawReportRow) normalize() ReportRow {
	return ReportRow{
		Department:    firstString(r.Department, r.DeptCaps),
		LeaveType:     r.LeaveType,
		TotalDays:     firstFloat(r.TotalDays),
		ApprovedCount: firstInt(r.Approved),
		PendingCount:  firstInt(r.Pending),
		RejectedCount: firstInt(r.Rejected),
	}
}

func normalizeList[R any, T any](raws []R, fn func(R) T) []T {
	out := make([]T, len(raws))
	for i, r := range raws {
		out[i] = fn(r)
	}
	return out
}

func decodeNormalized[R any, T any](data []byte, fn func(R) T) ([]T, error) {
	var raws []R
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	return normalizeList(raws, fn), nil
}
