package domain

import "time"

// Role controls what an authenticated user may do. Comparison is exact and
// case-sensitive: "ADMIN" is not RoleAdmin.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an authenticated actor in the system. Users are created
// out-of-band and are read-only for the request path.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
