package patients

import (
	"context"
	"fmt"
	"io"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientDocumentUsecase struct {
	PatientRepository contracts.PatientRepository
	StorageService    contracts.StorageService
	PresignedExpiry   time.Duration
	Log               *zap.Logger
}

func NewPatientDocumentUsecase(
	patientRepository contracts.PatientRepository,
	storageService contracts.StorageService,
	presignedExpiry time.Duration,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	if presignedExpiry <= 0 {
		presignedExpiry = time.Hour
	}
	return &patientDocumentUsecase{
		PatientRepository: patientRepository,
		StorageService:    storageService,
		PresignedExpiry:   presignedExpiry,
		Log:               logger,
	}
}

// documentObjectName namespaces objects by tenant and patient so presigned
// URLs can never cross tenants.
func documentObjectName(tenantID, patientID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s", tenantID, patientID, fileName)
}

func (uc *patientDocumentUsecase) UploadPatientDocument(ctx context.Context, tenantID, patientID, fileName, contentType string, file io.Reader, size int64) (*responses.PatientDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	objectName := documentObjectName(tenantID, patientID, fileName)
	if err := uc.StorageService.UploadObject(ctx, objectName, file, size, contentType); err != nil {
		uc.Log.Error("patientDocumentUsecase.UploadPatientDocument upload failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, tenantID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildDocumentResponse(ctx, objectName)
}

func (uc *patientDocumentUsecase) GetPatientDocumentURL(ctx context.Context, tenantID, patientID, fileName string) (*responses.PatientDocument, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(fmt.Errorf("patient %s not found in tenant %s", patientID, tenantID))
	}

	return uc.buildDocumentResponse(ctx, documentObjectName(tenantID, patientID, fileName))
}

func (uc *patientDocumentUsecase) buildDocumentResponse(ctx context.Context, objectName string) (*responses.PatientDocument, error) {
	downloadURL, err := uc.StorageService.PresignedGetURL(ctx, objectName, uc.PresignedExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.PatientDocument{
		ObjectName:  objectName,
		DownloadURL: downloadURL,
		ExpiresAt:   time.Now().UTC().Add(uc.PresignedExpiry).Format(time.RFC3339),
	}, nil
}
