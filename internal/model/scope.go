package model

import "github.com/google/uuid"

// Scope is the per-request session context. It is built by the auth middleware
// and passed explicitly into every usecase call.
type Scope struct {
	UserID      string
	Email       string
	DisplayName string
	Demo        bool
}

const (
	DemoEmail       = "demo@sehrimilan.com"
	DemoDisplayName = "Demo Guest"
)

// DemoScope returns the shared demo-mode session. Its user id is the nil UUID.
func DemoScope() Scope {
	return Scope{
		UserID:      uuid.Nil.String(),
		Email:       DemoEmail,
		DisplayName: DemoDisplayName,
		Demo:        true,
	}
}

// Name returns the display name, falling back to a generic greeting.
func (sc Scope) Name() string {
	if sc.DisplayName != "" {
		return sc.DisplayName
	}
	return "User"
}

// IsZero reports whether no user is attached.
func (sc Scope) IsZero() bool {
	return sc.UserID == ""
}
