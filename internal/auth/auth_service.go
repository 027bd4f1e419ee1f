package auth

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/modal"
	"leavedesk/internal/session"
	"leavedesk/internal/upstream"
	upstreamerrors "leavedesk/internal/upstream/errors"
	"leavedesk/internal/view"
)

// UpstreamAPI is the slice of the leave service this package talks to.
type UpstreamAPI interface {
	Login(ctx context.Context, email, password string) (upstream.LoginResult, error)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login exchanges credentials for an upstream token and opens a
	// session around it. The returned sid goes into the session cookie.
	Login(ctx context.Context, email, password string) (sid string, resp LoginResponse, err error)

	// Logout tears the session down. Safe to call for sessions that are
	// already gone.
	Logout(ctx context.Context, sid string) error
}

type service struct {
	api    UpstreamAPI
	store  session.Store
	modals *modal.Registry
	pagers *view.Registry
	logger *zap.Logger
}

func NewService(api UpstreamAPI, store session.Store, modals *modal.Registry, pagers *view.Registry, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{api: api, store: store, modals: modals, pagers: pagers, logger: l}
}

func landingPath(role string) string {
	switch session.NormalizeRole(role) {
	case session.RoleAdmin:
		return "/admin/dashboard"
	case session.RoleManager:
		return "/manager/dashboard"
	default:
		return "/employee/dashboard"
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, LoginResponse, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		// The upstream answers 401 for bad credentials; everything else
		// passes through as-is.
		if err == upstreamerrors.ErrSessionExpired {
			return "", LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", LoginResponse{}, err
	}

	sid := uuid.NewString()
	sess := session.New(res.Token, res.UserName, res.Role)
	if err := s.store.Init(ctx, sid, sess); err != nil {
		s.logger.Error("session init failed", zap.Error(err))
		return "", LoginResponse{}, autherrors.ErrSessionInitFailed
	}

	s.logger.Info("login",
		zap.String("user", res.UserName),
		zap.String("role", sess.Role),
	)

	return sid, LoginResponse{
		UserName:    res.UserName,
		Role:        sess.Role,
		LandingPath: landingPath(sess.Role),
	}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	s.modals.Drop(sid)
	s.pagers.Drop(sid)
	if err := s.store.Teardown(ctx, sid); err != nil {
		s.logger.Warn("session teardown failed", zap.Error(err))
		return err
	}
	return nil
}
