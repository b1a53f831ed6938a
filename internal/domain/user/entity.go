package user

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"  // Full access including worker and factory management
	RoleFarmer Role = "farmer" // Day-to-day recording and reporting
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user has administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
