package requests

type LoginUser struct {
	TenantSlug string `json:"tenant_slug" validate:"required,min=3,max=40"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
}
