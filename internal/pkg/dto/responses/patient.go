package responses

type Patient struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	DentistID string `json:"dentist_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}
