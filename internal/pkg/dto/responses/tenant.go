package responses

type RegisterTenant struct {
	TenantID    string `json:"tenant_id"`
	AdminUserID string `json:"admin_user_id"`
	Slug        string `json:"slug"`
}

type Tenant struct {
	ID                 string `json:"id"`
	ClinicName         string `json:"clinic_name"`
	Slug               string `json:"slug"`
	Email              string `json:"email"`
	Plan               Plan   `json:"plan"`
	SubscriptionStatus string `json:"subscription_status"`
	CreatedAt          string `json:"created_at"`
}

type Plan struct {
	Name                    string `json:"name"`
	MaxUsers                int    `json:"max_users"`
	MaxPatients             int    `json:"max_patients"`
	MaxAppointmentsPerMonth int    `json:"max_appointments_per_month"`
}
