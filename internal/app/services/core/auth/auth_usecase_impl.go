package auth

import (
	"context"
	"fmt"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	TenantRepository contracts.TenantRepository
	RedisRepository  contracts.RedisRepository
	JWTSecret        string
	JWTExpiryInHours int
	SessionTTL       time.Duration
	Log              *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	tenantRepository contracts.TenantRepository,
	redisRepository contracts.RedisRepository,
	jwtSecret string,
	jwtExpiryInHours int,
	sessionTTL time.Duration,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:   userRepository,
		TenantRepository: tenantRepository,
		RedisRepository:  redisRepository,
		JWTSecret:        jwtSecret,
		JWTExpiryInHours: jwtExpiryInHours,
		SessionTTL:       sessionTTL,
		Log:              logger,
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, sessionID)
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, request.TenantSlug),
	)

	tenant, err := uc.TenantRepository.FindBySlug(ctx, request.TenantSlug)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		// Same error as a bad password so slugs cannot be probed.
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("tenant slug %s not found", request.TenantSlug))
	}

	user, err := uc.UserRepository.FindByEmail(ctx, tenant.ID, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("no active user for email in tenant %s", tenant.ID))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("password mismatch for user %s", user.ID))
	}

	sessionID := uuid.NewString()
	sessionData := contracts.SessionData{
		UserID:   user.ID,
		TenantID: tenant.ID,
		Role:     user.Role,
	}

	if err := uc.RedisRepository.Set(ctx, sessionKey(sessionID), sessionData, uc.SessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.JWTSecret, uc.JWTExpiryInHours)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{Token: token}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func (uc *authUsecase) ResolveSession(ctx context.Context, sessionID string) (*contracts.SessionData, error) {
	data, err := uc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s not found or expired", sessionID))
	}

	var sessionData contracts.SessionData
	if err := json.Unmarshal([]byte(data), &sessionData); err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return &sessionData, nil
}
