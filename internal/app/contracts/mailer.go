package contracts

import (
	"context"

	"dentora-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail publishes the payload to the mailer queue for asynchronous
	// delivery.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	ValidateEmail(email string) bool
}
