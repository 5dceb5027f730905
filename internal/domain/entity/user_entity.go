package entity

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash; it must never be serialized or logged.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
