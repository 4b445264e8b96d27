package contracts

import (
	"context"
	"time"

	"dentora-service/internal/app/models"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, tenantID, appointmentID string) (*models.Appointment, error)
	FindByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]models.Appointment, int, error)
	CountCreatedSince(ctx context.Context, tenantID string, since time.Time) (int64, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error
	DeleteByID(ctx context.Context, tenantID, appointmentID string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, tenantID string, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, tenantID, appointmentID string) (*responses.Appointment, error)
	FindAppointmentsByTenant(ctx context.Context, tenantID string, page, pageSize int) ([]responses.Appointment, int, error)
	UpdateAppointment(ctx context.Context, tenantID, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, tenantID, appointmentID string) error
}
