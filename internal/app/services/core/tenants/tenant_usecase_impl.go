package tenants

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

type tenantUsecase struct {
	TenantRepository      contracts.TenantRepository
	UserRepository        contracts.UserRepository
	MailerService         contracts.MailerService
	PaymentGatewayService contracts.PaymentGatewayService
	EmailSender           string
	Log                   *zap.Logger
}

func NewTenantUsecase(
	tenantRepository contracts.TenantRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	paymentGatewayService contracts.PaymentGatewayService,
	emailSender string,
	logger *zap.Logger,
) contracts.TenantUsecase {
	return &tenantUsecase{
		TenantRepository:      tenantRepository,
		UserRepository:        userRepository,
		MailerService:         mailerService,
		PaymentGatewayService: paymentGatewayService,
		EmailSender:           emailSender,
		Log:                   logger,
	}
}

func (uc *tenantUsecase) RegisterTenant(ctx context.Context, request *requests.RegisterTenant) (*responses.RegisterTenant, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	slug := utils.Slugify(request.Slug)
	uc.Log.Info("tenantUsecase.RegisterTenant called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantSlugKey, slug),
	)

	existing, err := uc.TenantRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrTenantSlugAlreadyExist(fmt.Errorf("slug %s already taken", slug))
	}

	plan, ok := models.DefaultPlans[request.Plan]
	if !ok {
		plan = models.DefaultPlans["starter"]
	}

	// Hash before touching the database so a hashing failure leaves nothing
	// behind.
	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	tenant := &models.Tenant{
		ClinicName:         request.ClinicName,
		Slug:               slug,
		Email:              request.AdminEmail,
		Plan:               plan,
		SubscriptionStatus: constvars.SubscriptionStatusTrialing,
		TimeModel:          models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	tenantID, err := uc.TenantRepository.CreateTenant(ctx, tenant)
	if err != nil {
		uc.Log.Error("tenantUsecase.RegisterTenant error creating tenant",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	adminUser := &models.User{
		TenantID:  tenantID,
		FullName:  request.AdminFullName,
		Email:     request.AdminEmail,
		Password:  hashedPassword,
		Role:      constvars.RoleAdmin,
		Active:    true,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	adminUserID, err := uc.UserRepository.CreateUser(ctx, adminUser)
	if err != nil {
		uc.Log.Error("tenantUsecase.RegisterTenant error creating admin user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
		// An admin-less tenant would hold the slug forever; roll the tenant
		// back so the registration can be retried.
		if deleteErr := uc.TenantRepository.DeleteByID(ctx, tenantID); deleteErr != nil {
			uc.Log.Error("tenantUsecase.RegisterTenant error rolling back tenant",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingTenantIDKey, tenantID),
				zap.Error(deleteErr),
			)
		}
		return nil, err
	}

	// Registration must not fail on mail problems; the clinic is already
	// created at this point.
	uc.sendWelcomeEmail(ctx, request.AdminFullName, request.ClinicName, request.AdminEmail)

	return &responses.RegisterTenant{
		TenantID:    tenantID,
		AdminUserID: adminUserID,
		Slug:        slug,
	}, nil
}

func (uc *tenantUsecase) sendWelcomeEmail(ctx context.Context, adminFullName, clinicName, adminEmail string) {
	payload := &requests.EmailPayload{
		Subject:  constvars.EmailWelcomeSubjectMessage,
		From:     uc.EmailSender,
		To:       []string{adminEmail},
		HTMLCode: fmt.Sprintf(constvars.EmailBodyWelcome, adminFullName, clinicName),
	}

	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Error("tenantUsecase.sendWelcomeEmail failed to queue welcome email",
			zap.String(constvars.LoggingEmailKey, adminEmail),
			zap.Error(err),
		)
	}
}

func (uc *tenantUsecase) GetTenantByID(ctx context.Context, tenantID string) (*responses.Tenant, error) {
	tenant, err := uc.TenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, exceptions.ErrTenantNotExist(fmt.Errorf("tenant %s not found", tenantID))
	}

	response := tenant.ConvertIntoResponse()
	return &response, nil
}

func (uc *tenantUsecase) UpdateTenant(ctx context.Context, tenantID string, request *requests.UpdateTenant) (*responses.Tenant, error) {
	tenant, err := uc.TenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, exceptions.ErrTenantNotExist(fmt.Errorf("tenant %s not found", tenantID))
	}

	if request.ClinicName != "" {
		tenant.ClinicName = request.ClinicName
	}
	if request.Email != "" {
		tenant.Email = request.Email
	}
	tenant.UpdatedAt = time.Now().UTC()

	if err := uc.TenantRepository.UpdateTenant(ctx, tenant); err != nil {
		return nil, err
	}

	response := tenant.ConvertIntoResponse()
	return &response, nil
}

func (uc *tenantUsecase) RefreshSubscriptionStatus(ctx context.Context, tenantID string) (*responses.SubscriptionStatus, error) {
	tenant, err := uc.TenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, exceptions.ErrTenantNotExist(fmt.Errorf("tenant %s not found", tenantID))
	}

	status, err := uc.PaymentGatewayService.GetSubscriptionStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if status.Status != tenant.SubscriptionStatus {
		if err := uc.TenantRepository.UpdateSubscriptionStatus(ctx, tenantID, status.Status); err != nil {
			return nil, err
		}
		uc.Log.Info("tenantUsecase.RefreshSubscriptionStatus status changed",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String("previous_status", tenant.SubscriptionStatus),
			zap.String("current_status", status.Status),
		)
	}

	return status, nil
}

func (uc *tenantUsecase) FindAllTenantIDs(ctx context.Context) ([]string, error) {
	const pageSize = 100

	var tenantIDs []string
	for page := 1; ; page++ {
		tenants, total, err := uc.TenantRepository.FindAll(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		for _, eachTenant := range tenants {
			tenantIDs = append(tenantIDs, eachTenant.ID)
		}
		if page*pageSize >= total || len(tenants) == 0 {
			break
		}
	}
	return tenantIDs, nil
}
