package responses

type Dentist struct {
	ID           string `json:"id"`
	TenantID     string `json:"tenant_id"`
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Specialty    string `json:"specialty,omitempty"`
	PatientCount int    `json:"patient_count"`
	CreatedAt    string `json:"created_at"`
}
