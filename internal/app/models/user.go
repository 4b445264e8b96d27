package models

import (
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type User struct {
	ID        string `bson:"_id,omitempty"`
	TenantID  string `bson:"tenantId"`
	FullName  string `bson:"fullName"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	Active    bool   `bson:"active"`
	TimeModel `bson:",inline"`
}

func (u User) ConvertIntoResponse() responses.User {
	return responses.User{
		ID:        u.ID,
		TenantID:  u.TenantID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
