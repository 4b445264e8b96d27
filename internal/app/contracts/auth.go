package contracts

import (
	"context"

	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// LoginUser verifies credentials within the tenant identified by slug and
	// returns a JWT carrying the redis session ID.
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	// LogoutUser deletes the redis session referenced by the token.
	LogoutUser(ctx context.Context, sessionID string) error
	// ResolveSession maps a session ID back to its session data, or an
	// invalid-session error when it is gone.
	ResolveSession(ctx context.Context, sessionID string) (*SessionData, error)
}

// SessionData is what the auth middleware injects into the request context.
type SessionData struct {
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Role     string `json:"role"`
}
