package contracts

import (
	"context"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, tenantID, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, tenantID, email string) (*models.User, error)
	FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.User, int, error)
	CountActiveByTenant(ctx context.Context, tenantID string) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, tenantID, userID string) error
}

type UserUsecase interface {
	CreateUser(ctx context.Context, tenantID string, request *requests.CreateUser) (*responses.User, error)
	GetUserByID(ctx context.Context, tenantID, userID string) (*responses.User, error)
	FindUsersByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.User, int, error)
	UpdateUser(ctx context.Context, tenantID, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, tenantID, userID string) error
}
