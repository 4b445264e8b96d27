package models

import (
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	TenantID  string `bson:"tenantId"`
	DentistID string `bson:"dentistId"`
	FullName  string `bson:"fullName"`
	Email     string `bson:"email,omitempty"`
	Phone     string `bson:"phone,omitempty"`
	BirthDate string `bson:"birthDate,omitempty"`
	TimeModel `bson:",inline"`
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:        p.ID,
		TenantID:  p.TenantID,
		DentistID: p.DentistID,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
