package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Manages catalogs and review queue
	RoleManager  Role = "manager"  // Can approve/reject submitted timesheets
	RoleEmployee Role = "employee" // Records and submits timesheets
)

type User struct {
	ID              string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if user can approve or reject submitted timesheets
func (u *User) CanReview() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
