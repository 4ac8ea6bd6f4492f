package domain

import "time"

// Role is the closed set of authorities a user can hold.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
	// RoleNone is assigned to principals whose token carries no role claim
	// or an unrecognised one. It authenticates but grants no authority.
	RoleNone Role = ""
)

// ParseRole maps a raw claim value onto the closed Role set. Unknown values
// degrade to RoleNone rather than passing through.
func ParseRole(s string) Role {
	switch s {
	case string(RoleUser):
		return RoleUser
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleNone
	}
}

// IsAdmin reports whether the role carries administrative authority.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User models a registered account.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         Role      `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
