package contracts

import (
	"context"

	"dentora-service/internal/pkg/dto/responses"
)

type UsageUsecase interface {
	// GetTenantUsage computes a live usage snapshot for the tenant. The
	// component counts are read independently, not in one transaction.
	GetTenantUsage(ctx context.Context, tenantID string) (*responses.TenantUsage, error)
	// EnsureWithinPlanLimits returns a conflict error when creating one more
	// entity of the given kind would exceed the tenant's plan.
	EnsureWithinPlanLimits(ctx context.Context, tenantID, resource string) error
}
