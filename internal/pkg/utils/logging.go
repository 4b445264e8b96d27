package utils

import (
	"context"

	"dentora-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetTenantID(ctx context.Context) string {
	if tenantID, ok := ctx.Value(constvars.CONTEXT_TENANT_ID_KEY).(string); ok {
		return tenantID
	}
	return ""
}
