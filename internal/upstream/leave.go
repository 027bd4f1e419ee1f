package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	upstreamerrors "leavedesk/internal/upstream/errors"
)

func (c *Client) LeaveBalances(ctx context.Context, token string) ([]LeaveBalance, error) {
	data, err := c.get(ctx, "/employees/leave/balances", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveBalance.normalize)
}

func (c *Client) LeaveRequests(ctx context.Context, token string) ([]LeaveRequest, error) {
	data, err := c.get(ctx, "/employees/leave/requests", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveRequest.normalize)
}

func (c *Client) LeaveActivities(ctx context.Context, token string) ([]Activity, error) {
	data, err := c.get(ctx, "/employees/leave/activities", token)
	if err != nil {
		return nil, err
	}
	var items []Activity
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, upstreamerrors.ErrBadPayload
	}
	return items, nil
}

func (c *Client) LeaveTypes(ctx context.Context, token string) ([]LeaveType, error) {
	data, err := c.get(ctx, "/employees/leave/types", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveType.normalize)
}

type ApplyLeaveInput struct {
	LeaveTypeID int    `json:"leaveTypeId"`
	FromDate    string `json:"fromDate"`
	FromSession int    `json:"fromSession"`
	ToDate      string `json:"toDate"`
	ToSession   int    `json:"toSession"`
	Reason      string `json:"reason"`
}

func (c *Client) ApplyLeave(ctx context.Context, token string, in ApplyLeaveInput) (LeaveRequest, error) {
	data, err := c.send(ctx, http.MethodPost, "/employees/leave/apply", token, in)
	if err != nil {
		return LeaveRequest{}, err
	}
	return decodeOne(data, rawLeaveRequest.normalize)
}

type updateStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

func (c *Client) UpdateLeaveStatus(ctx context.Context, token string, leaveID int, status, remarks string) (LeaveRequest, error) {
	path := "/employees/leave/" + itoa(leaveID) + "/status"
	data, err := c.send(ctx, http.MethodPut, path, token, updateStatusRequest{
		Status:  status,
		Remarks: remarks,
	})
	if err != nil {
		return LeaveRequest{}, err
	}
	return decodeOne(data, rawLeaveRequest.normalize)
}

type cancelLeaveRequest struct {
	Reason string `json:"reason"`
}

// CancelLeave removes a still-pending request outright. Approved leave
// goes through the cancellation-request flow instead.
func (c *Client) CancelLeave(ctx context.Context, token string, leaveID int, reason string) error {
	path := "/employees/leave/" + itoa(leaveID) + "/cancel"
	_, err := c.send(ctx, http.MethodDelete, path, token, cancelLeaveRequest{Reason: reason})
	return err
}

func (c *Client) UpcomingHolidays(ctx context.Context) ([]Holiday, error) {
	data, err := c.get(ctx, "/holidays/upcoming", "")
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawHoliday.normalize)
}
