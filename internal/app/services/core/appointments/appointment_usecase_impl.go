package appointments

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

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DentistRepository     contracts.DentistRepository
	PatientRepository     contracts.PatientRepository
	UsageUsecase          contracts.UsageUsecase
	Coordinator           contracts.UpdateCoordinator
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	dentistRepository contracts.DentistRepository,
	patientRepository contracts.PatientRepository,
	usageUsecase contracts.UsageUsecase,
	updateCoordinator contracts.UpdateCoordinator,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DentistRepository:     dentistRepository,
		PatientRepository:     patientRepository,
		UsageUsecase:          usageUsecase,
		Coordinator:           updateCoordinator,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, tenantID string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDentistIDKey, request.DentistID),
	)

	if err := uc.UsageUsecase.EnsureWithinPlanLimits(ctx, tenantID, constvars.ResourceAppointments); err != nil {
		return nil, err
	}

	dentist, err := uc.DentistRepository.FindByID(ctx, tenantID, request.DentistID)
	if err != nil {
		return nil, err
	}
	if dentist == nil {
		return nil, exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", request.DentistID, tenantID))
	}

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", request.PatientID, tenantID))
	}

	startsAt, err := time.Parse(time.RFC3339, request.StartsAt)
	if err != nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("starts_at must be RFC3339: %w", err))
	}
	endsAt, err := time.Parse(time.RFC3339, request.EndsAt)
	if err != nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("ends_at must be RFC3339: %w", err))
	}
	if !endsAt.After(startsAt) {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("ends_at must be after starts_at"))
	}

	now := time.Now().UTC()
	appointment := &models.Appointment{
		TenantID:  tenantID,
		DentistID: request.DentistID,
		PatientID: request.PatientID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Status:    constvars.AppointmentStatusBooked,
		Notes:     request.Notes,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointment.ID = appointmentID

	uc.scheduleRecount(tenantID, request.DentistID)

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, tenantID, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found in tenant %s", appointmentID, tenantID))
	}

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

func (uc *appointmentUsecase) FindAppointmentsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Appointment, int, error) {
	appointments, total, err := uc.AppointmentRepository.FindByTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Appointment, len(appointments))
	for i, eachAppointment := range appointments {
		response[i] = eachAppointment.ConvertIntoResponse()
	}
	return response, total, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, tenantID, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found in tenant %s", appointmentID, tenantID))
	}

	if request.StartsAt != "" {
		startsAt, err := time.Parse(time.RFC3339, request.StartsAt)
		if err != nil {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("starts_at must be RFC3339: %w", err))
		}
		appointment.StartsAt = startsAt
	}
	if request.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, request.EndsAt)
		if err != nil {
			return nil, exceptions.ErrInputValidation(fmt.Errorf("ends_at must be RFC3339: %w", err))
		}
		appointment.EndsAt = endsAt
	}
	if request.Status != "" {
		appointment.Status = request.Status
	}
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

// CancelAppointment marks the appointment cancelled rather than deleting it,
// so it still counts against the month it was created in.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, tenantID, appointmentID string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, tenantID, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(fmt.Errorf("appointment %s not found in tenant %s", appointmentID, tenantID))
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now().UTC()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return err
	}

	uc.scheduleRecount(tenantID, appointment.DentistID)
	return nil
}

func (uc *appointmentUsecase) scheduleRecount(tenantID, dentistID string) {
	if err := uc.Coordinator.Schedule(tenantID, dentistID, 0); err != nil {
		uc.Log.Error("appointmentUsecase failed to schedule recount",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingDentistIDKey, dentistID),
			zap.Error(err),
		)
	}
}
