package types

// User is a registered API user. The password hash never leaves the server.
type User struct {
	ID           int64  `json:"id" example:"1"`
	Email        string `json:"email" example:"luke@rebellion.org"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active" example:"true"`
}

type CreateUserRequest struct {
	Email    *string `json:"email" validate:"required,email,max=120" example:"luke@rebellion.org"`
	Password *string `json:"password" validate:"required,min=1,max=72" example:"usetheforce"`
	IsActive *bool   `json:"is_active" validate:"required" example:"true"`
}

// UpdateUserRequest fields are optional; only the ones present are applied.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
	IsActive *bool   `json:"is_active,omitempty"`
}
