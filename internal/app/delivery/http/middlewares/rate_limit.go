package middlewares

import (
	"net/http"
	"strconv"

	"dentora-service/internal/app/services/shared/ratelimiter"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"
)

const tenantLimiterGroup = "tenant-api"

// TenantRateLimit applies a per-tenant fixed-window quota on authenticated
// traffic. Must run after Authenticate so the tenant scope is resolved.
func (m *Middlewares) TenantRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		maxQuota := m.InternalConfig.App.TenantAPIRateLimit
		if maxQuota <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		tenantID := utils.GetTenantID(r.Context())
		if tenantID == "" {
			next.ServeHTTP(w, r)
			return
		}

		out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      tenantID,
			LimiterGroupName:  tenantLimiterGroup,
			WindowDurationSec: 60,
			MaxQuota:          maxQuota,
		})
		if err != nil {
			// Redis trouble should not take the API down with it.
			next.ServeHTTP(w, r)
			return
		}

		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
				constvars.StatusTooManyRequests,
				constvars.ErrClientTooManyRequests,
				constvars.ErrDevTenantRateLimited,
			))
			return
		}

		next.ServeHTTP(w, r)
	})
}
