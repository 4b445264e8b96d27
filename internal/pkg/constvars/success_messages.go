package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Tenant messages
	TenantRegisteredSuccess = "clinic registered successfully"
	TenantGetSuccess        = "get clinic successfully"
	TenantUpdatedSuccess    = "clinic updated successfully"
	TenantUsageGetSuccess   = "get clinic usage successfully"
	TenantRecountSuccess    = "clinic counters recomputed successfully"

	// User messages
	UserCreatedSuccess = "user created successfully"
	UserUpdatedSuccess = "user updated successfully"
	UserDeletedSuccess = "user deleted successfully"
	UserGetSuccess     = "get user successfully"

	// Dentist messages
	DentistCreatedSuccess = "dentist created successfully"
	DentistUpdatedSuccess = "dentist updated successfully"
	DentistDeletedSuccess = "dentist deleted successfully"
	DentistGetSuccess     = "get dentist successfully"

	// Patient messages
	PatientCreatedSuccess     = "patient created successfully"
	PatientUpdatedSuccess     = "patient updated successfully"
	PatientDeletedSuccess     = "patient deleted successfully"
	PatientGetSuccess         = "get patient successfully"
	PatientTransferredSuccess = "patient transferred successfully"

	// Patient document messages
	PatientDocumentUploadedSuccess = "patient document uploaded successfully"
	PatientDocumentGetSuccess      = "get patient document successfully"

	// Appointment messages
	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentUpdatedSuccess   = "appointment updated successfully"
	AppointmentCancelledSuccess = "appointment cancelled successfully"
	AppointmentGetSuccess       = "get appointment successfully"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"
)
