package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/auth"
	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/modal"
	"leavedesk/internal/session"
	"leavedesk/internal/upstream"
	upstreamerrors "leavedesk/internal/upstream/errors"
	"leavedesk/internal/view"
)

type fakeAPI struct {
	result upstream.LoginResult
	err    error

	gotEmail    string
	gotPassword string
}

func (f *fakeAPI) Login(_ context.Context, email, password string) (upstream.LoginResult, error) {
	f.gotEmail = email
	f.gotPassword = password
	return f.result, f.err
}

type fakeStore struct {
	sessions map[string]session.Session
	initErr  error
	tornDown []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]session.Session{}}
}

func (f *fakeStore) Init(_ context.Context, sid string, s session.Session) error {
	if f.initErr != nil {
		return f.initErr
	}
	f.sessions[sid] = s
	return nil
}

func (f *fakeStore) Get(_ context.Context, sid string) (session.Session, error) {
	s, ok := f.sessions[sid]
	if !ok {
		return session.Session{}, session.ErrNoSession
	}
	return s, nil
}

func (f *fakeStore) SetSidebar(_ context.Context, sid string, open bool) error {
	s := f.sessions[sid]
	s.SidebarOpen = open
	f.sessions[sid] = s
	return nil
}

func (f *fakeStore) Teardown(_ context.Context, sid string) error {
	delete(f.sessions, sid)
	f.tornDown = append(f.tornDown, sid)
	return nil
}

func TestLoginOpensSession(t *testing.T) {
	api := &fakeAPI{result: upstream.LoginResult{
		Token:    "tok-1",
		Role:     "Manager",
		UserName: "Dana Reed",
	}}
	store := newFakeStore()
	svc := auth.NewService(api, store, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	sid, resp, err := svc.Login(context.Background(), "dana@corp.test", "secret")

	assert.NoError(t, err)
	assert.NotEmpty(t, sid)
	assert.Equal(t, "dana@corp.test", api.gotEmail)
	assert.Equal(t, "secret", api.gotPassword)

	assert.Equal(t, "Dana Reed", resp.UserName)
	assert.Equal(t, session.RoleManager, resp.Role)
	assert.Equal(t, "/manager/dashboard", resp.LandingPath)

	sess := store.sessions[sid]
	assert.Equal(t, "tok-1", sess.Token)
	assert.Equal(t, session.RoleManager, sess.Role)
	assert.False(t, sess.SidebarOpen)
}

func TestLoginLandingPathPerRole(t *testing.T) {
	cases := []struct {
		role string
		want string
	}{
		{"Admin", "/admin/dashboard"},
		{"Employee", "/employee/dashboard"},
		{"intern", "/employee/dashboard"},
	}

	for _, tc := range cases {
		api := &fakeAPI{result: upstream.LoginResult{Token: "t", Role: tc.role}}
		svc := auth.NewService(api, newFakeStore(), modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

		_, resp, err := svc.Login(context.Background(), "a@b.test", "pw")

		assert.NoError(t, err)
		assert.Equal(t, tc.want, resp.LandingPath, "role %q", tc.role)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	api := &fakeAPI{err: upstreamerrors.ErrSessionExpired}
	store := newFakeStore()
	svc := auth.NewService(api, store, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	sid, _, err := svc.Login(context.Background(), "a@b.test", "wrong")

	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	assert.Empty(t, sid)
	assert.Empty(t, store.sessions)
}

func TestLoginUpstreamErrorPassesThrough(t *testing.T) {
	api := &fakeAPI{err: upstreamerrors.ErrUnreachable}
	svc := auth.NewService(api, newFakeStore(), modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	_, _, err := svc.Login(context.Background(), "a@b.test", "pw")

	assert.ErrorIs(t, err, upstreamerrors.ErrUnreachable)
}

func TestLoginSessionInitFailure(t *testing.T) {
	api := &fakeAPI{result: upstream.LoginResult{Token: "t"}}
	store := newFakeStore()
	store.initErr = errors.New("redis down")
	svc := auth.NewService(api, store, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	_, _, err := svc.Login(context.Background(), "a@b.test", "pw")

	assert.ErrorIs(t, err, autherrors.ErrSessionInitFailed)
}

func TestLogoutTearsDownSessionAndModals(t *testing.T) {
	store := newFakeStore()
	store.sessions["sid-1"] = session.Session{Token: "t"}
	modals := modal.NewRegistry()
	m := modals.For("sid-1")
	assert.NoError(t, m.OpenApply())

	svc := auth.NewService(&fakeAPI{}, store, modals, view.NewRegistry(view.DefaultPageSize))

	assert.NoError(t, svc.Logout(context.Background(), "sid-1"))
	assert.Equal(t, []string{"sid-1"}, store.tornDown)
	assert.NotSame(t, m, modals.For("sid-1"))
}

func TestLogoutIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := auth.NewService(&fakeAPI{}, store, modal.NewRegistry(), view.NewRegistry(view.DefaultPageSize))

	assert.NoError(t, svc.Logout(context.Background(), "gone"))
}
