package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of [%s]",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be one of 'admin', 'dentist' or 'staff'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientClinicSlugAlreadyExists       = "clinic name already registered"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPlanLimitReached              = "your clinic plan limit has been reached, please upgrade your plan"
	ErrClientSubscriptionInactive          = "your clinic subscription is not active"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientResourceNotFound              = "the requested resource was not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevDocumentNotFound           = "document not found"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevUnauthorized               = "unauthorized access"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevURLParamIDValidationFailed = "url parameter %s is missing or malformed"
	ErrDevTenantRateLimited          = "tenant exceeded its api request quota for the current window"

	// Usecase messages
	ErrDevPasswordsDoNotMatch     = "passwords do not match"
	ErrDevEmailAlreadyExists      = "email already exists"
	ErrDevUsernameAlreadyExists   = "username already exists"
	ErrDevClinicSlugAlreadyExists = "tenant slug already exists"
	ErrDevTenantNotExists         = "tenant does not exist"
	ErrDevUserNotExists           = "user does not exist"
	ErrDevDentistNotExists        = "dentist does not exist"
	ErrDevPatientNotExists        = "patient does not exist"
	ErrDevAppointmentNotExists    = "appointment does not exist"
	ErrDevPlanLimitReached        = "tenant plan limit reached"

	// Scope messages
	ErrDevTenantScopeMissing  = "tenant identifier is missing or malformed"
	ErrDevSubjectScopeMissing = "subject identifier is missing or malformed"

	// Auth messages
	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected jwt signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"

	// Mongo DB messages
	ErrDevDBFailedToFindDocument     = "failed to find document from mongo"
	ErrDevDBFailedToCountDocuments   = "failed to count documents from mongo"
	ErrDevDBFailedToInsertDocument   = "failed to insert document to mongo"
	ErrDevDBFailedToUpdateDocument   = "failed to update document in mongo"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from mongo"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from mongo"
	ErrDevDBStringNotObjectID        = "given string is not a valid object id"

	// Redis messages
	ErrDevRedisSet           = "failed to set value to redis"
	ErrDevRedisGetNoData     = "failed to get value from redis for key %s"
	ErrDevRedisDelete        = "failed to delete value from redis"
	ErrDevRedisIncrement     = "failed to increment value in redis"
	ErrDevRedisUnlock        = "failed to release redis lock"
	ErrDevRedisStoreSession  = "failed to store session in redis"
	ErrDevRedisDeleteSession = "failed to delete session from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email via smtp host %s"

	// MinIO messages
	ErrDevMinioUploadObject  = "failed to upload object to minio"
	ErrDevMinioPresignObject = "failed to presign object url from minio"

	// Payment gateway messages
	ErrDevPaymentGatewayRequest = "failed to call payment gateway"
	ErrDevPaymentGatewayDecode  = "failed to decode payment gateway response"
)
