// Package auth contains domain-level types for identity and authorization.
// It is pure and free of framework/adapter concerns.
package auth

import "time"

// Role represents an application's authorization role.
// The string values are part of the external contract: they are stored in
// the users table and embedded in issued tokens.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "tecnico"
	RoleUser       Role = "user"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	r := Role(value)
	if r.Valid() {
		return r, true
	}
	return "", false
}

// Identity is the principal a token is issued for.
type Identity struct {
	UserID int64
	Email  string
	Role   Role
}

// Claims is the decoded payload of a verified token. It is reconstructed
// fresh from the signed token on every verification and never stored
// server-side.
type Claims struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Identity returns the identity fields of the claims.
func (c Claims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email, Role: c.Role}
}

// ExpiredAt reports whether the claims are expired relative to now.
// A claim is only valid while its expiry is strictly in the future.
func (c Claims) ExpiredAt(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// IsAdmin reports whether the claims carry the administrator role.
func (c Claims) IsAdmin() bool { return c.Role == RoleAdmin }
