package responses

type User struct {
	ID        string `json:"id"`
	TenantID  string `json:"tenant_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}
