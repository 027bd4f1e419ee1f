// Package forms carries the modal form payloads and their validation.
// Every rule runs before any network call; a failing form never
// produces upstream traffic.
package forms

import (
	"strings"
	"time"
	"unicode/utf8"

	formerrors "leavedesk/internal/forms/errors"
)

const (
	// Sessions for half-day leave.
	SessionForenoon  = 1
	SessionAfternoon = 2

	ApplyReasonMaxLen     = 100
	RejectionReasonMaxLen = 200
)

const dateLayout = "2006-01-02"

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, formerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

type ApplyLeaveForm struct {
	LeaveTypeID int    `json:"leaveTypeId" binding:"required"`
	FromDate    string `json:"fromDate" binding:"required"`
	FromSession int    `json:"fromSession" binding:"omitempty,oneof=1 2"`
	ToDate      string `json:"toDate" binding:"required"`
	ToSession   int    `json:"toSession" binding:"omitempty,oneof=1 2"`
	Reason      string `json:"reason" binding:"required"`
}

// WithDefaults fills the session fields for a full-day leave: start of
// the first day through end of the last.
func (f ApplyLeaveForm) WithDefaults() ApplyLeaveForm {
	if f.FromSession == 0 {
		f.FromSession = SessionForenoon
	}
	if f.ToSession == 0 {
		f.ToSession = SessionAfternoon
	}
	return f
}

// Validate re-checks everything the binding tags cover plus the
// semantic rules: dates ordered, no past start, sessions ordered on a
// same-day leave. now anchors "today" so the rule is testable.
func (f ApplyLeaveForm) Validate(now time.Time) error {
	if f.LeaveTypeID == 0 {
		return formerrors.ErrLeaveTypeRequired
	}
	if blank(f.Reason) {
		return formerrors.ErrBlankReason
	}
	if utf8.RuneCountInString(f.Reason) > ApplyReasonMaxLen {
		return formerrors.ErrReasonTooLong
	}

	from, err := parseDate(f.FromDate)
	if err != nil {
		return err
	}
	to, err := parseDate(f.ToDate)
	if err != nil {
		return err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if from.Before(today) {
		return formerrors.ErrFromDateInPast
	}
	if to.Before(from) {
		return formerrors.ErrInvalidDateRange
	}

	fromSession, toSession := f.FromSession, f.ToSession
	if fromSession == 0 {
		fromSession = SessionForenoon
	}
	if toSession == 0 {
		toSession = SessionAfternoon
	}
	if fromSession != SessionForenoon && fromSession != SessionAfternoon {
		return formerrors.ErrInvalidSession
	}
	if toSession != SessionForenoon && toSession != SessionAfternoon {
		return formerrors.ErrInvalidSession
	}
	if from.Equal(to) && fromSession > toSession {
		return formerrors.ErrInvalidSessionOrder
	}
	return nil
}

type RejectionForm struct {
	Reason string `json:"reason" binding:"required,max=200"`
}

func (f RejectionForm) Validate() error {
	if blank(f.Reason) {
		return formerrors.ErrBlankReason
	}
	if utf8.RuneCountInString(f.Reason) > RejectionReasonMaxLen {
		return formerrors.ErrReasonTooLong
	}
	return nil
}

type CancellationForm struct {
	Reason string `json:"reason" binding:"required"`
}

func (f CancellationForm) Validate() error {
	if blank(f.Reason) {
		return formerrors.ErrBlankReason
	}
	return nil
}

type CancellationDecisionForm struct {
	Action          string `json:"action" binding:"required,oneof=approve reject"`
	ManagerComments string `json:"managerComments"`
}

func (f CancellationDecisionForm) Validate() error {
	if f.Action == "reject" && blank(f.ManagerComments) {
		return formerrors.ErrBlankManagerComment
	}
	return nil
}

type LeaveTypeForm struct {
	LeaveName string `json:"leaveName" binding:"required"`
	MaxDays   int    `json:"maxDays" binding:"required,gte=1,lte=365"`
	Year      int    `json:"year" binding:"required,gte=2000"`
}

func (f LeaveTypeForm) Validate() error {
	if blank(f.LeaveName) {
		return formerrors.ErrBlankReason
	}
	return nil
}

type EmployeeForm struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Designation string `json:"designation"`
	Role        string `json:"role" binding:"required,oneof=Employee Manager Admin"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	ManagerID   *int   `json:"managerId"`
}

func (f EmployeeForm) Validate() error {
	if f.DOB != "" {
		if _, err := parseDate(f.DOB); err != nil {
			return err
		}
	}
	return nil
}

type HolidayForm struct {
	Name string `json:"name" binding:"required"`
	Date string `json:"date" binding:"required"`
}

func (f HolidayForm) Validate() error {
	if blank(f.Name) {
		return formerrors.ErrBlankReason
	}
	_, err := parseDate(f.Date)
	return err
}
