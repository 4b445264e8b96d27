package contracts

import (
	"context"
	"io"
	"time"

	"dentora-service/internal/pkg/dto/responses"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

type DocumentUsecase interface {
	// UploadPatientDocument stores the file under the tenant's prefix and
	// returns a presigned download URL.
	UploadPatientDocument(ctx context.Context, tenantID, patientID, fileName, contentType string, file io.Reader, size int64) (*responses.PatientDocument, error)
	GetPatientDocumentURL(ctx context.Context, tenantID, patientID, fileName string) (*responses.PatientDocument, error)
}
