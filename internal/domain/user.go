package domain

import "time"

type UserRole string

const (
	RoleOwner  UserRole = "owner"
	RoleSitter UserRole = "sitter"
	RoleBoth   UserRole = "both"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleSitter, RoleBoth:
		return true
	}
	return false
}

// CanSit reports whether a user with this role may own sitter listings.
func (r UserRole) CanSit() bool {
	return r == RoleSitter || r == RoleBoth
}

type User struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email" validate:"required,email"`
	PasswordHash    string    `json:"-"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Phone           *string   `json:"phone"`
	ProfileImageURL *string   `json:"profile_image_url"`
	Role            UserRole  `json:"role"`
	Location        *string   `json:"location"`
	Bio             *string   `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
