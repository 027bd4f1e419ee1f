package cancellationerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrNotEligible = apperror.New(
		apperror.CodeInvalidState,
		"Only pending or approved leave can be cancelled",
		http.StatusConflict,
	)
)
