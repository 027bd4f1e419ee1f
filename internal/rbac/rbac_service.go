package rbac

import (
	"sync"

	"leavedesk/internal/session"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, path string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) Service {
	return &service{enforcer: enforcer}
}

// Enforce answers whether the role may reach the path. Unknown roles
// were already normalized to employee at session construction, but the
// same defaulting is applied here so a stale record cannot escalate.
func (s *service) Enforce(role, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(session.NormalizeRole(role), path)
}
