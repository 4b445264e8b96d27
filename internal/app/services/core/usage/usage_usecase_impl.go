package usage

import (
	"context"
	"fmt"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type usageUsecase struct {
	TenantRepository      contracts.TenantRepository
	UserRepository        contracts.UserRepository
	PatientRepository     contracts.PatientRepository
	AppointmentRepository contracts.AppointmentRepository
	Clock                 contracts.Clock
	Log                   *zap.Logger
}

func NewUsageUsecase(
	tenantRepository contracts.TenantRepository,
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	appointmentRepository contracts.AppointmentRepository,
	clock contracts.Clock,
	logger *zap.Logger,
) contracts.UsageUsecase {
	return &usageUsecase{
		TenantRepository:      tenantRepository,
		UserRepository:        userRepository,
		PatientRepository:     patientRepository,
		AppointmentRepository: appointmentRepository,
		Clock:                 clock,
		Log:                   logger,
	}
}

// GetTenantUsage reads the three component counts one after another, not in a
// transaction. The snapshot is advisory: a write landing between reads can
// skew a component by one, which is acceptable for dashboards and plan
// checks. Any component failing fails the whole snapshot.
func (uc *usageUsecase) GetTenantUsage(ctx context.Context, tenantID string) (*responses.TenantUsage, error) {
	if tenantID == "" {
		return nil, exceptions.ErrInvalidTenantScope(fmt.Errorf("usage requested without tenant scope"))
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("usageUsecase.GetTenantUsage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	activeUsers, err := uc.UserRepository.CountActiveByTenant(ctx, tenantID)
	if err != nil {
		uc.Log.Error("usageUsecase.GetTenantUsage error counting active users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
		return nil, err
	}

	patientCount, err := uc.PatientRepository.CountByTenant(ctx, tenantID)
	if err != nil {
		uc.Log.Error("usageUsecase.GetTenantUsage error counting patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentsThisMonth, err := uc.AppointmentRepository.CountCreatedSince(ctx, tenantID, uc.monthStart())
	if err != nil {
		uc.Log.Error("usageUsecase.GetTenantUsage error counting appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.Error(err),
		)
		return nil, err
	}

	// Storage and API-call metering are not collected yet; the snapshot
	// always carries the full shape with explicit zeros.
	response := &responses.TenantUsage{
		ActiveUsers:           int(activeUsers),
		PatientCount:          int(patientCount),
		AppointmentsThisMonth: int(appointmentsThisMonth),
		StorageUsedGb:         0.0,
		ApiCallsThisMonth:     0,
	}

	uc.Log.Info("usageUsecase.GetTenantUsage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.Int64(constvars.LoggingPatientCountKey, patientCount),
	)
	return response, nil
}

// EnsureWithinPlanLimits rejects the creation of one more entity of the given
// resource kind when the tenant's plan quota is already met. A limit of zero
// means unlimited.
func (uc *usageUsecase) EnsureWithinPlanLimits(ctx context.Context, tenantID, resource string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	tenant, err := uc.TenantRepository.FindByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return exceptions.ErrTenantNotExist(fmt.Errorf("tenant %s not found", tenantID))
	}

	snapshot, err := uc.GetTenantUsage(ctx, tenantID)
	if err != nil {
		return err
	}

	var used, limit int
	switch resource {
	case constvars.ResourceUsers:
		used, limit = snapshot.ActiveUsers, tenant.Plan.MaxUsers
	case constvars.ResourcePatients:
		used, limit = snapshot.PatientCount, tenant.Plan.MaxPatients
	case constvars.ResourceAppointments:
		used, limit = snapshot.AppointmentsThisMonth, tenant.Plan.MaxAppointmentsPerMonth
	default:
		return nil
	}

	if limit > 0 && used >= limit {
		uc.Log.Info("usageUsecase.EnsureWithinPlanLimits quota reached",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingResourceKey, resource),
		)
		return exceptions.ErrPlanLimitReached(fmt.Errorf("plan %s allows %d %s, tenant has %d", tenant.Plan.Name, limit, resource, used))
	}

	return nil
}

// monthStart returns midnight UTC on the first day of the current calendar
// month per the injected clock.
func (uc *usageUsecase) monthStart() time.Time {
	now := uc.Clock.Now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
