package requests

type UploadPatientDocument struct {
	PatientID   string `json:"patient_id" validate:"required"`
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type" validate:"required"`
}
