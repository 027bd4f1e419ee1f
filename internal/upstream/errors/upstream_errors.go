package upstreamerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	// ErrSessionExpired marks the 401 path. It is handled globally
	// (session teardown + login redirect) and must never surface as a
	// page-level error.
	ErrSessionExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Your session has expired, please sign in again",
		http.StatusUnauthorized,
	)
	ErrAccessDenied = apperror.New(
		apperror.CodeForbidden,
		"You do not have access to this page",
		http.StatusForbidden,
	)
	ErrUnreachable = apperror.New(
		apperror.CodeUpstreamUnavailable,
		"The leave service is unreachable, please try again",
		http.StatusBadGateway,
	)
	ErrBadPayload = apperror.New(
		apperror.CodeUpstreamUnavailable,
		"The leave service returned an unreadable response",
		http.StatusBadGateway,
	)
)
