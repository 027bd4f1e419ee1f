package cancellation

import (
	"context"

	"go.uber.org/zap"

	cancellationerrors "leavedesk/internal/cancellation/errors"
	"leavedesk/internal/forms"
	"leavedesk/internal/modal"
	"leavedesk/internal/upstream"
)

// UpstreamAPI is the slice of the leave service this flow touches.
type UpstreamAPI interface {
	LeaveRequests(ctx context.Context, token string) ([]upstream.LeaveRequest, error)
	CancelLeave(ctx context.Context, token string, leaveID int, reason string) error
	RequestCancellation(ctx context.Context, token string, leaveAppID int, reason string) (upstream.CancellationRequest, error)
	MyCancellationRequests(ctx context.Context, token string) ([]upstream.CancellationRequest, error)
	PendingCancellationRequests(ctx context.Context, token string) ([]upstream.CancellationRequest, error)
	HandleCancellation(ctx context.Context, token string, requestID int, action, comments string) (upstream.CancellationRequest, error)
}

//go:generate mockgen -source=cancellation_service.go -destination=mock/cancellation_service_mock.go -package=mock
type Service interface {
	// Open checks eligibility and opens the dialog with the matching
	// notice copy. Eligible statuses are Pending and Approved.
	Open(ctx context.Context, sid, token string, leaveID int) (OpenResponse, error)

	// Submit resolves the dialog: pending leave is removed outright,
	// approved leave becomes a cancellation request for the manager.
	Submit(ctx context.Context, sid, token string, leaveID int, form forms.CancellationForm) (SubmitResponse, error)

	MyRequests(ctx context.Context, token string) ([]upstream.CancellationRequest, error)
	Pending(ctx context.Context, token string) ([]upstream.CancellationRequest, error)

	// Handle is the manager decision. All transition authority stays
	// upstream; this only forwards the verdict.
	Handle(ctx context.Context, token string, requestID int, form forms.CancellationDecisionForm) (upstream.CancellationRequest, error)
}

type service struct {
	api    UpstreamAPI
	modals *modal.Registry
	logger *zap.Logger
}

func NewService(api UpstreamAPI, modals *modal.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("cancellation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cancellation.service")
	}
	return &service{api: api, modals: modals, logger: l}
}

func eligible(status string) bool {
	return status == upstream.StatusPending || status == upstream.StatusApproved
}

func (s *service) findRequest(ctx context.Context, token string, leaveID int) (upstream.LeaveRequest, error) {
	items, err := s.api.LeaveRequests(ctx, token)
	if err != nil {
		return upstream.LeaveRequest{}, err
	}
	for _, r := range items {
		if r.ID == leaveID {
			return r, nil
		}
	}
	return upstream.LeaveRequest{}, cancellationerrors.ErrRequestNotFound
}

func (s *service) Open(ctx context.Context, sid, token string, leaveID int) (OpenResponse, error) {
	req, err := s.findRequest(ctx, token, leaveID)
	if err != nil {
		return OpenResponse{}, err
	}
	if !eligible(req.Status) {
		return OpenResponse{}, cancellationerrors.ErrNotEligible
	}

	if err := s.modals.For(sid).OpenCancellation(leaveID); err != nil {
		return OpenResponse{}, err
	}

	notice := NoticePending
	if req.Status == upstream.StatusApproved {
		notice = NoticeApproved
	}
	return OpenResponse{Request: req, Notice: notice}, nil
}

func (s *service) Submit(ctx context.Context, sid, token string, leaveID int, form forms.CancellationForm) (SubmitResponse, error) {
	if err := form.Validate(); err != nil {
		return SubmitResponse{}, err
	}

	req, err := s.findRequest(ctx, token, leaveID)
	if err != nil {
		return SubmitResponse{}, err
	}
	if !eligible(req.Status) {
		return SubmitResponse{}, cancellationerrors.ErrNotEligible
	}

	m := s.modals.For(sid)
	if err := m.BeginSubmit(); err != nil {
		return SubmitResponse{}, err
	}

	var resp SubmitResponse
	if req.Status == upstream.StatusPending {
		err = s.api.CancelLeave(ctx, token, leaveID, form.Reason)
		resp = SubmitResponse{Removed: true}
	} else {
		var created upstream.CancellationRequest
		created, err = s.api.RequestCancellation(ctx, token, leaveID, form.Reason)
		resp = SubmitResponse{Request: &created}
	}
	m.FinishSubmit(err)
	if err != nil {
		return SubmitResponse{}, err
	}

	s.logger.Info("cancellation submitted",
		zap.Int("leave_id", leaveID),
		zap.Bool("removed", resp.Removed),
	)
	return resp, nil
}

func (s *service) MyRequests(ctx context.Context, token string) ([]upstream.CancellationRequest, error) {
	return s.api.MyCancellationRequests(ctx, token)
}

func (s *service) Pending(ctx context.Context, token string) ([]upstream.CancellationRequest, error) {
	return s.api.PendingCancellationRequests(ctx, token)
}

func (s *service) Handle(ctx context.Context, token string, requestID int, form forms.CancellationDecisionForm) (upstream.CancellationRequest, error) {
	if err := form.Validate(); err != nil {
		return upstream.CancellationRequest{}, err
	}
	return s.api.HandleCancellation(ctx, token, requestID, form.Action, form.ManagerComments)
}
