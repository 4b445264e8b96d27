package requests

type CreateAppointment struct {
	DentistID string `json:"dentist_id" validate:"required"`
	PatientID string `json:"patient_id" validate:"required"`
	StartsAt  string `json:"starts_at" validate:"required"`
	EndsAt    string `json:"ends_at" validate:"required"`
	Notes     string `json:"notes" validate:"omitempty,max=500"`
}

type UpdateAppointment struct {
	StartsAt string `json:"starts_at" validate:"omitempty"`
	EndsAt   string `json:"ends_at" validate:"omitempty"`
	Status   string `json:"status" validate:"omitempty,oneof=booked fulfilled cancelled noshow"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}
