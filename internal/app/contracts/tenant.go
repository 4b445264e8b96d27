package contracts

import (
	"context"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type TenantRepository interface {
	CreateTenant(ctx context.Context, tenant *models.Tenant) (tenantID string, err error)
	FindByID(ctx context.Context, tenantID string) (*models.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Tenant, int, error)
	UpdateTenant(ctx context.Context, tenant *models.Tenant) error
	UpdateSubscriptionStatus(ctx context.Context, tenantID, status string) error
	DeleteByID(ctx context.Context, tenantID string) error
}

type TenantUsecase interface {
	// RegisterTenant creates the clinic and its admin user, then queues a
	// welcome email. Registration succeeds even when the email cannot be
	// queued.
	RegisterTenant(ctx context.Context, request *requests.RegisterTenant) (*responses.RegisterTenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*responses.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, request *requests.UpdateTenant) (*responses.Tenant, error)
	// RefreshSubscriptionStatus pulls the current status from the payment
	// provider and stores it on the tenant.
	RefreshSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error)
	FindAllTenantIDs(ctx context.Context) ([]string, error)
}
