package upstream

import (
	"context"
	"net/http"
)

type cancellationRequestBody struct {
	LeaveAppID         int    `json:"leaveAppId"`
	CancellationReason string `json:"cancellationReason"`
}

func (c *Client) RequestCancellation(ctx context.Context, token string, leaveAppID int, reason string) (CancellationRequest, error) {
	data, err := c.send(ctx, http.MethodPost, "/leave-cancellation/request", token, cancellationRequestBody{
		LeaveAppID:         leaveAppID,
		CancellationReason: reason,
	})
	if err != nil {
		return CancellationRequest{}, err
	}
	return decodeOne(data, rawCancellationRequest.normalize)
}

func (c *Client) MyCancellationRequests(ctx context.Context, token string) ([]CancellationRequest, error) {
	data, err := c.get(ctx, "/leave-cancellation/my-requests", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawCancellationRequest.normalize)
}

func (c *Client) PendingCancellationRequests(ctx context.Context, token string) ([]CancellationRequest, error) {
	data, err := c.get(ctx, "/leave-cancellation/pending", token)
	if err != nil {
		return nil, err
	}
	return decodeListOrFail(data, rawCancellationRequest.normalize)
}

type handleCancellationBody struct {
	Action          string `json:"action"`
	ManagerComments string `json:"managerComments"`
}

// HandleCancellation resolves a pending cancellation request;
// action is "approve" or "reject".
func (c *Client) HandleCancellation(ctx context.Context, token string, requestID int, action, comments string) (CancellationRequest, error) {
	data, err := c.send(ctx, http.MethodPut, "/leave-cancellation/handle/"+itoa(requestID), token, handleCancellationBody{
		Action:          action,
		ManagerComments: comments,
	})
	if err != nil {
		return CancellationRequest{}, err
	}
	return decodeOne(data, rawCancellationRequest.normalize)
}
