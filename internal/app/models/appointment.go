package models

import (
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type Appointment struct {
	ID        string    `bson:"_id,omitempty"`
	TenantID  string    `bson:"tenantId"`
	DentistID string    `bson:"dentistId"`
	PatientID string    `bson:"patientId"`
	StartsAt  time.Time `bson:"startsAt"`
	EndsAt    time.Time `bson:"endsAt"`
	Status    string    `bson:"status"`
	Notes     string    `bson:"notes,omitempty"`
	TimeModel `bson:",inline"`
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:        a.ID,
		TenantID:  a.TenantID,
		DentistID: a.DentistID,
		PatientID: a.PatientID,
		StartsAt:  a.StartsAt.Format(time.RFC3339),
		EndsAt:    a.EndsAt.Format(time.RFC3339),
		Status:    a.Status,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
