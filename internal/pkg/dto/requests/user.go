package requests

type CreateUser struct {
	FullName string `json:"full_name" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"password"`
	Role     string `json:"role" validate:"required,role"`
}

type UpdateUser struct {
	FullName string `json:"full_name" validate:"omitempty,min=3,max=80"`
	Role     string `json:"role" validate:"omitempty,role"`
	Active   *bool  `json:"active"`
}
