package contracts

import (
	"context"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type DentistRepository interface {
	CreateDentist(ctx context.Context, dentist *models.Dentist) (dentistID string, err error)
	FindByID(ctx context.Context, tenantID, dentistID string) (*models.Dentist, error)
	FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Dentist, int, error)
	FindIDsByTenant(ctx context.Context, tenantID string) ([]string, error)
	UpdateDentist(ctx context.Context, dentist *models.Dentist) error
	UpdatePatientCount(ctx context.Context, tenantID, dentistID string, count int64) error
	DeleteByID(ctx context.Context, tenantID, dentistID string) error
}

type DentistUsecase interface {
	CreateDentist(ctx context.Context, tenantID string, request *requests.CreateDentist) (*responses.Dentist, error)
	GetDentistByID(ctx context.Context, tenantID, dentistID string) (*responses.Dentist, error)
	FindDentistsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Dentist, int, error)
	UpdateDentist(ctx context.Context, tenantID, dentistID string, request *requests.UpdateDentist) (*responses.Dentist, error)
	DeleteDentist(ctx context.Context, tenantID, dentistID string) error
}

// DentistPatientCountRecomputer recalculates one dentist's denormalized
// patient counter from source truth. Implementations must be idempotent:
// count then set, never increment.
type DentistPatientCountRecomputer interface {
	RecomputePatientCount(ctx context.Context, tenantID, dentistID string) error
}
