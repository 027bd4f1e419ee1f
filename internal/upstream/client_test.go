package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/upstream"
	upstreamerrors "leavedesk/internal/upstream/errors"

	"github.com/stretchr/testify/assert"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	_, err := client.LeaveRequests(context.Background(), "tok-123")

	assert.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_LoginSendsNoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"token":"tok-9","role":"Manager","userName":"Dev Mehta"}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	res, err := client.Login(context.Background(), "dev@corp.test", "secret")

	assert.NoError(t, err)
	assert.Equal(t, "tok-9", res.Token)
	assert.Equal(t, "Manager", res.Role)
}

func TestClient_MapsUnauthorizedToSessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	_, err := client.LeaveBalances(context.Background(), "stale")

	assert.ErrorIs(t, err, upstreamerrors.ErrSessionExpired)
}

func TestClient_MapsForbiddenToAccessDenied(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	_, err := client.AdminMetrics(context.Background(), "tok")

	assert.ErrorIs(t, err, upstreamerrors.ErrAccessDenied)
}

func TestClient_KeepsServerMessageOnRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Leave overlaps an existing request"}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	_, err := client.ApplyLeave(context.Background(), "tok", upstream.ApplyLeaveInput{})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPStatus)
	assert.Equal(t, "Leave overlaps an existing request", appErr.Message)
}

func TestClient_FallbackMessageWhenBodyEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	_, err := client.LeaveTypes(context.Background(), "tok")

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "The leave service rejected the request", appErr.Message)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := upstream.NewClient(srv.URL)
	_, err := client.UpcomingHolidays(context.Background())

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeUpstreamUnavailable, appErr.Code)
}

func TestClient_ContextCancellationStopsCall(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.TeamRequests(ctx, "tok")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled) || errors.As(err, new(*apperror.AppError)))
}

func TestClient_HolidayYearFilter(t *testing.T) {
	var gotYear string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotYear = r.URL.Query().Get("year")
		_, _ = w.Write([]byte(`[{"HolidayID":1,"HolidayName":"Diwali","HolidayDate":"2025-10-20","DayOfWeek":"Monday"}]`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL)
	got, err := client.AllHolidays(context.Background(), "tok", 2025)

	assert.NoError(t, err)
	assert.Equal(t, "2025", gotYear)
	assert.Equal(t, "Diwali", got[0].Name)
	assert.Equal(t, "Monday", got[0].Day)
}
