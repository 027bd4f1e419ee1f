package cancellation

import "leavedesk/internal/upstream"

// Notice copy shown in the dialog before the reason is asked for. The
// wording depends on whether the leave is still pending or already
// approved, because the consequences differ.
const (
	NoticePending  = "This request is still pending. Cancelling removes it immediately and restores your leave balance."
	NoticeApproved = "This leave is already approved. Your manager must approve the cancellation before your balance is restored."
)

type OpenResponse struct {
	Request upstream.LeaveRequest `json:"request"`
	Notice  string                `json:"notice"`
}

// SubmitResponse reports how the cancellation was resolved: a pending
// request is removed outright, an approved one waits for the manager.
type SubmitResponse struct {
	Removed bool                          `json:"removed"`
	Request *upstream.CancellationRequest `json:"cancellationRequest,omitempty"`
}
