package models

import (
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type Dentist struct {
	ID        string `bson:"_id,omitempty"`
	TenantID  string `bson:"tenantId"`
	UserID    string `bson:"userId"`
	FullName  string `bson:"fullName"`
	Specialty string `bson:"specialty,omitempty"`
	// PatientCount is a denormalized display counter maintained by the
	// update coordinator; live figures come from the usage aggregator.
	PatientCount int `bson:"patientCount"`
	TimeModel    `bson:",inline"`
}

func (d Dentist) ConvertIntoResponse() responses.Dentist {
	return responses.Dentist{
		ID:           d.ID,
		TenantID:     d.TenantID,
		UserID:       d.UserID,
		FullName:     d.FullName,
		Specialty:    d.Specialty,
		PatientCount: d.PatientCount,
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
}
