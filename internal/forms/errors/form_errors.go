package formerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrFromDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"fromDate must not be before today",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"toDate must not be before fromDate",
		http.StatusBadRequest,
	)
	ErrInvalidSessionOrder = apperror.New(
		apperror.CodeInvalidInput,
		"fromSession must not be after toSession on a same-day leave",
		http.StatusBadRequest,
	)
	ErrInvalidSession = apperror.New(
		apperror.CodeInvalidInput,
		"session must be 1 (forenoon) or 2 (afternoon)",
		http.StatusBadRequest,
	)
	ErrLeaveTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"leaveTypeId is required",
		http.StatusBadRequest,
	)
	ErrBlankReason = apperror.New(
		apperror.CodeInvalidInput,
		"reason must not be empty",
		http.StatusBadRequest,
	)
	ErrReasonTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"reason exceeds the maximum length",
		http.StatusBadRequest,
	)
	ErrBlankManagerComment = apperror.New(
		apperror.CodeInvalidInput,
		"managerComments must not be empty when rejecting",
		http.StatusBadRequest,
	)
)
