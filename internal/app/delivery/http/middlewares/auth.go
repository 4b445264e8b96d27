package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a redis session and injects the
// tenant scope into the request context. Every authenticated handler reads
// its tenant from here, never from client input.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(strings.TrimPrefix(authHeader, constvars.AuthBearerPrefix), m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.AuthUsecase.ResolveSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_TENANT_ID_KEY, sessionData.TenantID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, sessionData.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, sessionData.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards management endpoints. Must run after Authenticate.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(string)
		if role != constvars.RoleAdmin {
			utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
				constvars.StatusForbidden,
				constvars.ErrClientNotAuthorized,
				fmt.Sprintf("role %s is not allowed on admin endpoints", role),
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}
