package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	upstreamerrors "leavedesk/internal/upstream/errors"
)

type EmployeeInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Gender      string `json:"gender"`
	DOB         string `json:"dob"`
	ManagerID   *int   `json:"managerId,omitempty"`
}

func (c *Client) AllEmployees(ctx context.Context, token string) ([]Employee, error) {
	data, err := c.get(ctx, "/admin/employees", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawEmployee.normalize)
}

func (c *Client) CreateEmployee(ctx context.Context, token string, in EmployeeInput) (Employee, error) {
	data, err := c.send(ctx, http.MethodPost, "/admin/employees", token, in)
	if err != nil {
		return Employee{}, err
	}
	return decodeOne(data, rawEmployee.normalize)
}

func (c *Client) UpdateEmployee(ctx context.Context, token string, id int, in EmployeeInput) (Employee, error) {
	data, err := c.send(ctx, http.MethodPut, "/admin/employees/"+itoa(id), token, in)
	if err != nil {
		return Employee{}, err
	}
	return decodeOne(data, rawEmployee.normalize)
}

func (c *Client) DeleteEmployee(ctx context.Context, token string, id int) error {
	_, err := c.send(ctx, http.MethodDelete, "/admin/employees/"+itoa(id), token, nil)
	return err
}

type LeaveTypeInput struct {
	LeaveName string `json:"leaveName"`
	MaxDays   int    `json:"maxDays"`
	Year      int    `json:"year"`
}

func (c *Client) AllLeaveTypes(ctx context.Context, token string) ([]LeaveType, error) {
	data, err := c.get(ctx, "/admin/leave-types", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveType.normalize)
}

func (c *Client) CreateLeaveType(ctx context.Context, token string, in LeaveTypeInput) (LeaveType, error) {
	data, err := c.send(ctx, http.MethodPost, "/admin/leave-types", token, in)
	if err != nil {
		return LeaveType{}, err
	}
	return decodeOne(data, rawLeaveType.normalize)
}

func (c *Client) UpdateLeaveType(ctx context.Context, token string, id int, in LeaveTypeInput) (LeaveType, error) {
	data, err := c.send(ctx, http.MethodPut, "/admin/leave-types/"+itoa(id), token, in)
	if err != nil {
		return LeaveType{}, err
	}
	return decodeOne(data, rawLeaveType.normalize)
}

func (c *Client) DeleteLeaveType(ctx context.Context, token string, id int) error {
	_, err := c.send(ctx, http.MethodDelete, "/admin/leave-types/"+itoa(id), token, nil)
	return err
}

type HolidayInput struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (c *Client) AllHolidays(ctx context.Context, token string, year int) ([]Holiday, error) {
	path := "/admin/holidays"
	if year > 0 {
		path += "?" + url.Values{"year": {itoa(year)}}.Encode()
	}
	data, err := c.get(ctx, path, token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawHoliday.normalize)
}

func (c *Client) CreateHoliday(ctx context.Context, token string, in HolidayInput) (Holiday, error) {
	data, err := c.send(ctx, http.MethodPost, "/admin/holidays", token, in)
	if err != nil {
		return Holiday{}, err
	}
	return decodeOne(data, rawHoliday.normalize)
}

func (c *Client) UpdateHoliday(ctx context.Context, token string, id int, in HolidayInput) (Holiday, error) {
	data, err := c.send(ctx, http.MethodPut, "/admin/holidays/"+itoa(id), token, in)
	if err != nil {
		return Holiday{}, err
	}
	return decodeOne(data, rawHoliday.normalize)
}

func (c *Client) DeleteHoliday(ctx context.Context, token string, id int) error {
	_, err := c.send(ctx, http.MethodDelete, "/admin/holidays/"+itoa(id), token, nil)
	return err
}

func (c *Client) AdminMetrics(ctx context.Context, token string) (AdminMetrics, error) {
	data, err := c.get(ctx, "/admin/metrics", token)
	if err != nil {
		return AdminMetrics{}, err
	}
	var m AdminMetrics
	if err := json.Unmarshal(data, &m); err != nil {
		return AdminMetrics{}, upstreamerrors.ErrBadPayload
	}
	return m, nil
}

func (c *Client) SystemStats(ctx context.Context, token string) (SystemStats, error) {
	data, err := c.get(ctx, "/admin/stats", token)
	if err != nil {
		return SystemStats{}, err
	}
	var s SystemStats
	if err := json.Unmarshal(data, &s); err != nil {
		return SystemStats{}, upstreamerrors.ErrBadPayload
	}
	return s, nil
}
