package requests

type RegisterTenant struct {
	ClinicName     string `json:"clinic_name" validate:"required,min=3,max=80"`
	Slug           string `json:"slug" validate:"required,min=3,max=40"`
	AdminFullName  string `json:"admin_full_name" validate:"required,min=3,max=80"`
	AdminEmail     string `json:"admin_email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	Plan           string `json:"plan" validate:"omitempty,oneof=starter clinic enterprise"`
}

type UpdateTenant struct {
	ClinicName string `json:"clinic_name" validate:"omitempty,min=3,max=80"`
	Email      string `json:"email" validate:"omitempty,email"`
}
