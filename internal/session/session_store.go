package session

import (
	"context"
	"net/http"
	"time"

	"leavedesk/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrNoSession = apperror.New(
	apperror.CodeUnauthorized,
	"No active session",
	http.StatusUnauthorized,
)

// Store owns the explicit session lifecycle: Init at login, Teardown at
// logout or on the first upstream 401. No ambient global reads.
//
//go:generate mockgen -source=session_store.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	Init(ctx context.Context, sid string, s Session) error
	Get(ctx context.Context, sid string) (Session, error)
	SetSidebar(ctx context.Context, sid string, open bool) error
	Teardown(ctx context.Context, sid string) error
}

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Store {
	l := zap.L().Named("session.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.store")
	}
	return &redisStore{rdb: rdb, ttl: ttl, logger: l}
}

func key(sid string) string {
	return "session:" + sid
}

func (s *redisStore) Init(ctx context.Context, sid string, sess Session) error {
	sidebar := "0"
	if sess.SidebarOpen {
		sidebar = "1"
	}
	if err := s.rdb.HSet(ctx, key(sid),
		"token", sess.Token,
		"userName", sess.UserName,
		"userRole", sess.Role,
		"sidebarOpen", sidebar,
	).Err(); err != nil {
		s.logger.Error("session init failed", zap.Error(err))
		return err
	}
	if err := s.rdb.Expire(ctx, key(sid), s.ttl).Err(); err != nil {
		s.logger.Error("session expire failed", zap.Error(err))
		return err
	}
	s.logger.Info("session initialized",
		zap.String("session_id", sid),
		zap.String("role", sess.Role),
	)
	return nil
}

func (s *redisStore) Get(ctx context.Context, sid string) (Session, error) {
	fields, err := s.rdb.HGetAll(ctx, key(sid)).Result()
	if err != nil {
		return Session{}, err
	}
	if len(fields) == 0 {
		return Session{}, ErrNoSession
	}
	return Session{
		Token:       fields["token"],
		UserName:    fields["userName"],
		Role:        NormalizeRole(fields["userRole"]),
		SidebarOpen: fields["sidebarOpen"] == "1",
	}, nil
}

func (s *redisStore) SetSidebar(ctx context.Context, sid string, open bool) error {
	sidebar := "0"
	if open {
		sidebar = "1"
	}
	return s.rdb.HSet(ctx, key(sid), "sidebarOpen", sidebar).Err()
}

// Teardown is idempotent; tearing down a missing session is not an error.
func (s *redisStore) Teardown(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, key(sid)).Err(); err != nil {
		s.logger.Error("session teardown failed", zap.Error(err))
		return err
	}
	s.logger.Info("session torn down", zap.String("session_id", sid))
	return nil
}
