package requests

type CreatePatient struct {
	DentistID string `json:"dentist_id" validate:"required"`
	FullName  string `json:"full_name" validate:"required,min=3,max=80"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	BirthDate string `json:"birth_date" validate:"omitempty"`
}

type UpdatePatient struct {
	FullName string `json:"full_name" validate:"omitempty,min=3,max=80"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

type TransferPatient struct {
	DentistID string `json:"dentist_id" validate:"required"`
}
