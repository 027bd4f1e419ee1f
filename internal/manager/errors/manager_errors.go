package managererrors

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
	ErrNotReviewable = apperror.New(
		apperror.CodeInvalidState,
		"Only pending requests can be reviewed",
		http.StatusConflict,
	)
	ErrNoReviewOpen = apperror.New(
		apperror.CodeInvalidState,
		"Open the request details before deciding",
		http.StatusConflict,
	)
)
