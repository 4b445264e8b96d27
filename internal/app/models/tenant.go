package models

import (
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type Plan struct {
	Name                    string `bson:"name"`
	MaxUsers                int    `bson:"maxUsers"`
	MaxPatients             int    `bson:"maxPatients"`
	MaxAppointmentsPerMonth int    `bson:"maxAppointmentsPerMonth"`
}

type Tenant struct {
	ID                 string `bson:"_id,omitempty"`
	ClinicName         string `bson:"clinicName"`
	Slug               string `bson:"slug"`
	Email              string `bson:"email"`
	Plan               Plan   `bson:"plan"`
	SubscriptionStatus string `bson:"subscriptionStatus"`
	TimeModel          `bson:",inline"`
}

func (t Tenant) ConvertIntoResponse() responses.Tenant {
	return responses.Tenant{
		ID:         t.ID,
		ClinicName: t.ClinicName,
		Slug:       t.Slug,
		Email:      t.Email,
		Plan: responses.Plan{
			Name:                    t.Plan.Name,
			MaxUsers:                t.Plan.MaxUsers,
			MaxPatients:             t.Plan.MaxPatients,
			MaxAppointmentsPerMonth: t.Plan.MaxAppointmentsPerMonth,
		},
		SubscriptionStatus: t.SubscriptionStatus,
		CreatedAt:          t.CreatedAt.Format(time.RFC3339),
	}
}

// DefaultPlans are the built-in plan tiers. Limits of 0 mean unlimited.
var DefaultPlans = map[string]Plan{
	"starter":    {Name: "starter", MaxUsers: 3, MaxPatients: 200, MaxAppointmentsPerMonth: 300},
	"clinic":     {Name: "clinic", MaxUsers: 15, MaxPatients: 2000, MaxAppointmentsPerMonth: 3000},
	"enterprise": {Name: "enterprise", MaxUsers: 0, MaxPatients: 0, MaxAppointmentsPerMonth: 0},
}
