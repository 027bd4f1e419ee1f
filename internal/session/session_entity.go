package session

import "strings"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Session replaces the browser-local token/userRole/userName triple.
// It lives from login until logout or the first upstream 401.
type Session struct {
	Token       string
	UserName    string
	Role        string
	SidebarOpen bool
}

// New builds a session with the role normalized to lowercase. Unknown
// or missing roles land in the employee tree. The sidebar always starts
// closed; the flag is never carried across sessions.
func New(token, userName, role string) Session {
	return Session{
		Token:    token,
		UserName: userName,
		Role:     NormalizeRole(role),
	}
}

func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleManager:
		return RoleManager
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleEmployee
	}
}
