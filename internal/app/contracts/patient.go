package contracts

import (
	"context"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, tenantID, patientID string) (*models.Patient, error)
	FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Patient, int, error)
	CountByTenant(ctx context.Context, tenantID string) (int64, error)
	CountByDentist(ctx context.Context, tenantID, dentistID string) (int64, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeleteByID(ctx context.Context, tenantID, patientID string) error
}

type PatientUsecase interface {
	// CreatePatient enforces the tenant's patient quota and schedules a
	// recount for the assigned dentist.
	CreatePatient(ctx context.Context, tenantID string, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatientByID(ctx context.Context, tenantID, patientID string) (*responses.Patient, error)
	FindPatientsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, tenantID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	// TransferPatient moves the patient to another dentist and schedules
	// recounts for both dentists involved.
	TransferPatient(ctx context.Context, tenantID, patientID string, request *requests.TransferPatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, tenantID, patientID string) error
}
