package patients

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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	DentistRepository contracts.DentistRepository
	UsageUsecase      contracts.UsageUsecase
	Coordinator       contracts.UpdateCoordinator
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	dentistRepository contracts.DentistRepository,
	usageUsecase contracts.UsageUsecase,
	updateCoordinator contracts.UpdateCoordinator,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		DentistRepository: dentistRepository,
		UsageUsecase:      usageUsecase,
		Coordinator:       updateCoordinator,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, tenantID string, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDentistIDKey, request.DentistID),
	)

	if err := uc.UsageUsecase.EnsureWithinPlanLimits(ctx, tenantID, constvars.ResourcePatients); err != nil {
		return nil, err
	}

	dentist, err := uc.DentistRepository.FindByID(ctx, tenantID, request.DentistID)
	if err != nil {
		return nil, err
	}
	if dentist == nil {
		return nil, exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", request.DentistID, tenantID))
	}

	now := time.Now().UTC()
	patient := &models.Patient{
		TenantID:  tenantID,
		DentistID: request.DentistID,
		FullName:  request.FullName,
		Email:     request.Email,
		Phone:     request.Phone,
		BirthDate: request.BirthDate,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	patient.ID = patientID

	uc.scheduleRecount(tenantID, request.DentistID)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, tenantID, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) FindPatientsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Patient, int, error) {
	patients, total, err := uc.PatientRepository.FindByTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Patient, len(patients))
	for i, eachPatient := range patients {
		response[i] = eachPatient.ConvertIntoResponse()
	}
	return response, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, tenantID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.Phone != "" {
		patient.Phone = request.Phone
	}
	patient.UpdatedAt = time.Now().UTC()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	// Field edits do not move the patient between dentists, so no recount.
	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) TransferPatient(ctx context.Context, tenantID, patientID string, request *requests.TransferPatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	newDentist, err := uc.DentistRepository.FindByID(ctx, tenantID, request.DentistID)
	if err != nil {
		return nil, err
	}
	if newDentist == nil {
		return nil, exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", request.DentistID, tenantID))
	}

	previousDentistID := patient.DentistID
	patient.DentistID = request.DentistID
	patient.UpdatedAt = time.Now().UTC()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.TransferPatient moved patient",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDentistIDKey, request.DentistID),
	)

	// Both sides of the transfer get a recount.
	uc.scheduleRecount(tenantID, previousDentistID)
	uc.scheduleRecount(tenantID, request.DentistID)

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, tenantID, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	if err := uc.PatientRepository.DeleteByID(ctx, tenantID, patientID); err != nil {
		return err
	}

	uc.scheduleRecount(tenantID, patient.DentistID)
	return nil
}

// scheduleRecount hands the affected dentist to the coordinator with the
// configured default delay. Scheduling failures are logged and swallowed;
// the write already committed and the nightly maintenance pass converges
// counters anyway.
func (uc *patientUsecase) scheduleRecount(tenantID, dentistID string) {
	if err := uc.Coordinator.Schedule(tenantID, dentistID, 0); err != nil {
		uc.Log.Error("patientUsecase failed to schedule recount",
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingDentistIDKey, dentistID),
			zap.Error(err),
		)
	}
}
