package employeeerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var ErrPageUnavailable = apperror.New(
	apperror.CodeUpstreamUnavailable,
	"Could not load the page, please refresh to try again",
	http.StatusBadGateway,
)
