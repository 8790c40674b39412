package domain

import (
	"errors"
	"time"
)

// Roles recognised by the platform. Role checks are exact-match: holding
// RoleAdmin does not satisfy a route gated on RoleDriver.
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAuthority = "authority"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the four recognised roles.
func ValidRole(role string) bool {
	switch role {
	case RolePassenger, RoleDriver, RoleAuthority, RoleAdmin:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Token verification failures. The API layer collapses all three into a
// single unauthenticated response so a caller cannot tell which check failed.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// User models an authenticated actor in the system.
type User struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IdentityClaim is the payload embedded in every issued token. It is fixed at
// issuance: changing a user's role never alters tokens already in flight.
type IdentityClaim struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
