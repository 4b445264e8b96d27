package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingTenantIDKey           = "tenant_id"
	LoggingSubjectIDKey          = "subject_id"
	LoggingDentistIDKey          = "dentist_id"
	LoggingDentistCountKey       = "dentist_count"
	LoggingPatientIDKey          = "patient_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingUserIDKey             = "user_id"
	LoggingTenantSlugKey         = "tenant_slug"
	LoggingEmailKey              = "email"
	LoggingResourceKey           = "resource"
	LoggingPatientCountKey       = "patient_count"
	LoggingResponseCountKey      = "response_count"
	LoggingDebounceDelayKey      = "debounce_delay"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
)
