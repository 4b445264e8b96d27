package constvars

type ContextKey string

const (
	ResourceAuth         = "auth"
	ResourceTenants      = "tenants"
	ResourceUsers        = "users"
	ResourceDentists     = "dentists"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
	ResourceUsage        = "usage"
)

const (
	MongoCollectionTenants      = "tenants"
	MongoCollectionUsers        = "users"
	MongoCollectionDentists     = "dentists"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_TENANT_ID_KEY            ContextKey = "tenant_id"
	CONTEXT_USER_ID_KEY              ContextKey = "user_id"
	CONTEXT_USER_ROLE_KEY            ContextKey = "user_role"
)

const (
	REQUEST_ID_PREFIX = "DNTR_SVC_"
)

const (
	RedisSessionKeyFormat = "session:%s"
)

const (
	RoleAdmin   = "admin"
	RoleDentist = "dentist"
	RoleStaff   = "staff"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusPastDue  = "past_due"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusTrialing = "trialing"
)

const (
	AppointmentStatusBooked    = "booked"
	AppointmentStatusFulfilled = "fulfilled"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "noshow"
)
