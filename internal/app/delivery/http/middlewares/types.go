package middlewares

import (
	"dentora-service/internal/app/config"
	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/services/shared/ratelimiter"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	InternalConfig  *config.InternalConfig
	AuthUsecase     contracts.AuthUsecase
	ResourceLimiter *ratelimiter.ResourceLimiter
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	authUsecase contracts.AuthUsecase,
	resourceLimiter *ratelimiter.ResourceLimiter,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		InternalConfig:  internalConfig,
		AuthUsecase:     authUsecase,
		ResourceLimiter: resourceLimiter,
	}
}
