package contracts

import (
	"context"

	"dentora-service/internal/pkg/dto/responses"
)

// PaymentGatewayService wraps the external subscription provider. It is a
// read-only collaborator here; billing itself lives with the provider.
type PaymentGatewayService interface {
	GetSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error)
}
