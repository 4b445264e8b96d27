package responses

type Appointment struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	DentistID string `json:"dentist_id"`
	PatientID string `json:"patient_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}
