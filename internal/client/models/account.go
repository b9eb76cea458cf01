package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the platform-wide role of an account. Exactly one role is
// assigned at registration; admin is reachable only through the signup
// secret, never by direct selection.
type Role string

const (
	RoleJunior Role = "junior"
	RoleMentor Role = "mentor"
	RoleAdmin  Role = "admin"
)

// ParseRole parses a string into a Role, reporting whether it is one of
// the known roles.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

func (r Role) IsValid() bool {
	switch r {
	case RoleJunior, RoleMentor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Selectable reports whether the role may be chosen directly on the
// signup form. Admin is excluded: it is granted only via the admin code.
func (r Role) Selectable() bool {
	return r == RoleJunior || r == RoleMentor
}

// Account is a registered identity with its profile.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Age       string    `json:"age"`
	College   string    `json:"college"`
	Stream    string    `json:"stream"`
	Role      Role      `json:"role"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
