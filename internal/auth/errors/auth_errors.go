package autherrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrSessionInitFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not start a session, please try again",
		http.StatusInternalServerError,
	)
)
