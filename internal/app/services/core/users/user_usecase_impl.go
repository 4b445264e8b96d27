package users

import (
	"context"
	"fmt"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	UsageUsecase   contracts.UsageUsecase
	Log            *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	usageUsecase contracts.UsageUsecase,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		UsageUsecase:   usageUsecase,
		Log:            logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, tenantID string, request *requests.CreateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if err := uc.UsageUsecase.EnsureWithinPlanLimits(ctx, tenantID, constvars.ResourceUsers); err != nil {
		return nil, err
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, tenantID, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s already registered in tenant %s", request.Email, tenantID))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		TenantID:  tenantID,
		FullName:  request.FullName,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      request.Role,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.CreateUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	user.ID = userID

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, tenantID, userID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found in tenant %s", userID, tenantID))
	}

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) FindUsersByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.User, int, error) {
	users, total, err := uc.UserRepository.FindByTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.User, len(users))
	for i, eachUser := range users {
		response[i] = eachUser.ConvertIntoResponse()
	}
	return response, total, nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, tenantID, userID string, request *requests.UpdateUser) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(fmt.Errorf("user %s not found in tenant %s", userID, tenantID))
	}

	if request.FullName != "" {
		user.FullName = request.FullName
	}
	if request.Role != "" {
		user.Role = request.Role
	}
	if request.Active != nil {
		user.Active = *request.Active
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	response := user.ConvertIntoResponse()
	return &response, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, tenantID, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, tenantID, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(fmt.Errorf("user %s not found in tenant %s", userID, tenantID))
	}

	return uc.UserRepository.DeleteByID(ctx, tenantID, userID)
}
