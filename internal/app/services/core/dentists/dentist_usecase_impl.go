package dentists

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

// DentistService implements contracts.DentistUsecase and, through
// RecomputePatientCount, contracts.DentistPatientCountRecomputer for the
// update coordinator.
type DentistService struct {
	DentistRepository contracts.DentistRepository
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	_ contracts.DentistUsecase                = (*DentistService)(nil)
	_ contracts.DentistPatientCountRecomputer = (*DentistService)(nil)
)

func NewDentistUsecase(
	dentistRepository contracts.DentistRepository,
	patientRepository contracts.PatientRepository,
	logger *zap.Logger,
) *DentistService {
	return &DentistService{
		DentistRepository: dentistRepository,
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *DentistService) CreateDentist(ctx context.Context, tenantID string, request *requests.CreateDentist) (*responses.Dentist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dentistUsecase.CreateDentist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	now := time.Now().UTC()
	dentist := &models.Dentist{
		TenantID:  tenantID,
		UserID:    request.UserID,
		FullName:  request.FullName,
		Specialty: request.Specialty,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	dentistID, err := uc.DentistRepository.CreateDentist(ctx, dentist)
	if err != nil {
		uc.Log.Error("dentistUsecase.CreateDentist error creating dentist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	dentist.ID = dentistID

	response := dentist.ConvertIntoResponse()
	return &response, nil
}

func (uc *DentistService) GetDentistByID(ctx context.Context, tenantID, dentistID string) (*responses.Dentist, error) {
	dentist, err := uc.DentistRepository.FindByID(ctx, tenantID, dentistID)
	if err != nil {
		return nil, err
	}
	if dentist == nil {
		return nil, exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", dentistID, tenantID))
	}

	response := dentist.ConvertIntoResponse()
	return &response, nil
}

func (uc *DentistService) FindDentistsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Dentist, int, error) {
	dentists, total, err := uc.DentistRepository.FindByTenant(ctx, tenantID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	response := make([]responses.Dentist, len(dentists))
	for i, eachDentist := range dentists {
		response[i] = eachDentist.ConvertIntoResponse()
	}
	return response, total, nil
}

func (uc *DentistService) UpdateDentist(ctx context.Context, tenantID, dentistID string, request *requests.UpdateDentist) (*responses.Dentist, error) {
	dentist, err := uc.DentistRepository.FindByID(ctx, tenantID, dentistID)
	if err != nil {
		return nil, err
	}
	if dentist == nil {
		return nil, exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", dentistID, tenantID))
	}

	if request.FullName != "" {
		dentist.FullName = request.FullName
	}
	if request.Specialty != "" {
		dentist.Specialty = request.Specialty
	}
	dentist.UpdatedAt = time.Now().UTC()

	if err := uc.DentistRepository.UpdateDentist(ctx, dentist); err != nil {
		return nil, err
	}

	response := dentist.ConvertIntoResponse()
	return &response, nil
}

func (uc *DentistService) DeleteDentist(ctx context.Context, tenantID, dentistID string) error {
	dentist, err := uc.DentistRepository.FindByID(ctx, tenantID, dentistID)
	if err != nil {
		return err
	}
	if dentist == nil {
		return exceptions.ErrDentistNotExist(fmt.Errorf("dentist %s not found in tenant %s", dentistID, tenantID))
	}

	return uc.DentistRepository.DeleteByID(ctx, tenantID, dentistID)
}

// RecomputePatientCount reads the live patient count from source truth and
// overwrites the dentist's denormalized counter. Count then set; replays
// converge on the same value.
func (uc *DentistService) RecomputePatientCount(ctx context.Context, tenantID, dentistID string) error {
	count, err := uc.PatientRepository.CountByDentist(ctx, tenantID, dentistID)
	if err != nil {
		return err
	}

	if err := uc.DentistRepository.UpdatePatientCount(ctx, tenantID, dentistID, count); err != nil {
		return err
	}

	uc.Log.Debug("dentistUsecase.RecomputePatientCount updated counter",
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDentistIDKey, dentistID),
		zap.Int64(constvars.LoggingPatientCountKey, count),
	)
	return nil
}
