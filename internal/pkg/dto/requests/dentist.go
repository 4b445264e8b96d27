package requests

type CreateDentist struct {
	UserID    string `json:"user_id" validate:"required"`
	FullName  string `json:"full_name" validate:"required,min=3,max=80"`
	Specialty string `json:"specialty" validate:"omitempty,max=80"`
}

type UpdateDentist struct {
	FullName  string `json:"full_name" validate:"omitempty,min=3,max=80"`
	Specialty string `json:"specialty" validate:"omitempty,max=80"`
}
