package user

type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role" binding:"required"`
	Location  *string `json:"location"`
	Bio       *string `json:"bio"`
}

// UpdateUserRequest applies only the provided fields.
type UpdateUserRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Phone           *string `json:"phone"`
	ProfileImageURL *string `json:"profile_image_url"`
	Location        *string `json:"location"`
	Bio             *string `json:"bio"`
}
