package models

// Role is the marketplace role carried by an authenticated user.
type Role string

const (
	RoleGuest  Role = "guest"
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleUser, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// User is the authenticated identity returned by the auth endpoints and
// persisted as the session record.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token"`
}
