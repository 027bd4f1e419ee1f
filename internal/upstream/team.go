package upstream

import (
	"context"
	"encoding/json"
	"strconv"

	upstreamerrors "leavedesk/internal/upstream/errors"
)

func itoa(v int) string {
	return strconv.Itoa(v)
}

func (c *Client) TeamTimeOff(ctx context.Context, token string) ([]TeamTimeOff, error) {
	data, err := c.get(ctx, "/employees/team/timeoff", token)
	if err != nil {
		return nil, err
	}
	var items []TeamTimeOff
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, upstreamerrors.ErrBadPayload
	}
	return items, nil
}

func (c *Client) TeamLeaveHistory(ctx context.Context, token string) ([]LeaveRequest, error) {
	data, err := c.get(ctx, "/employees/team/leave-history", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveRequest.normalize)
}

func (c *Client) TeamRequests(ctx context.Context, token string) ([]LeaveRequest, error) {
	data, err := c.get(ctx, "/employees/leave/team-requests", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawLeaveRequest.normalize)
}

type rawReportData struct {
	LeaveStatistics []rawReportRow      `json:"leaveStatistics"`
	MonthlyTrends   []MonthlyTrend      `json:"monthlyTrends"`
	TeamSummary     []TeamMemberSummary `json:"teamSummary"`
}

func (c *Client) ManagerReports(ctx context.Context, token string) (ReportData, error) {
	data, err := c.get(ctx, "/employees/manager/reports", token)
	if err != nil {
		return ReportData{}, err
	}

	var raw rawReportData
	if err := json.Unmarshal(data, &raw); err != nil {
		return ReportData{}, upstreamerrors.ErrBadPayload
	}
	return ReportData{
		LeaveStatistics: normalizeList(raw.LeaveStatistics, rawReportRow.normalize),
		MonthlyTrends:   raw.MonthlyTrends,
		TeamSummary:     raw.TeamSummary,
	}, nil
}
