package constvars

const (
	URLParamTenantID      = "tenant_id"
	URLParamUserID        = "user_id"
	URLParamDentistID     = "dentist_id"
	URLParamPatientID     = "patient_id"
	URLParamAppointmentID = "appointment_id"
)

const (
	URLQueryParamSearch   = "search"
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
)
