package domain

import "time"

// Action is a module permission verb granted by the host.
type Action string

const (
	ActionView Action = "VIEW"
	ActionEdit Action = "EDIT"
)

// Capability is one grant the host attaches to a caller. The concrete kinds are
// Superuser, AdminRole and ModulePermission.
type Capability interface {
	isCapability()
}

// Superuser is the host-wide superuser flag.
type Superuser struct{}

// AdminRole means the caller holds the host's administrator role.
type AdminRole struct{}

// ModulePermission is an explicit permission on one module.
type ModulePermission struct {
	ModuleID int
	Action   Action
}

func (Superuser) isCapability()        {}
func (AdminRole) isCapability()        {}
func (ModulePermission) isCapability() {}

// Caller is the identity attached to a request. UserID <= 0 means anonymous.
type Caller struct {
	UserID       int
	Capabilities []Capability
	// Location is the caller's time zone for single-item responses; nil means UTC.
	Location *time.Location
}

// Anonymous returns a caller with no identity and no capabilities.
func Anonymous() Caller {
	return Caller{}
}

// IsAuthenticated reports whether the caller carries a user identity.
func (c Caller) IsAuthenticated() bool {
	return c.UserID > 0
}

// TokenIssuer issues caller tokens (e.g. JWT) for development and tests.
type TokenIssuer interface {
	Issue(caller Caller, tz string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a bearer token and returns the caller it describes.
type TokenVerifier interface {
	Verify(token string) (Caller, error)
}
