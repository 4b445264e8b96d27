package responses

// TenantUsage is a point-in-time snapshot of a tenant's resource consumption.
// The counts are read independently and may reflect slightly different
// instants under concurrent writes; callers needing billing-accurate figures
// must not rely on this shape alone. StorageUsedGb and ApiCallsThisMonth are
// reserved metrics and always present as explicit zero values.
type TenantUsage struct {
	ActiveUsers           int     `json:"active_users"`
	PatientCount          int     `json:"patient_count"`
	AppointmentsThisMonth int     `json:"appointments_this_month"`
	StorageUsedGb         float64 `json:"storage_used_gb"`
	ApiCallsThisMonth     int     `json:"api_calls_this_month"`
}
