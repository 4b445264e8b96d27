package config

type InternalConfig struct {
	App            App               `mapstructure:"app"`
	JWT            AppJWT            `mapstructure:"jwt"`
	Mailer         AppMailer         `mapstructure:"mailer"`
	RabbitMQ       AppRabbitMQ       `mapstructure:"rabbitmq"`
	Minio          AppMinio          `mapstructure:"minio"`
	Coordinator    AppCoordinator    `mapstructure:"coordinator"`
	PaymentGateway AppPaymentGateway `mapstructure:"payment_gateway"`
}

type App struct {
	Env                            string `mapstructure:"env"`
	Port                           string `mapstructure:"port"`
	Version                        string `mapstructure:"version"`
	BaseUrl                        string `mapstructure:"base_url"`
	Timezone                       string `mapstructure:"timezone"`
	EndpointPrefix                 string `mapstructure:"endpoint_prefix"`
	MaxRequests                    int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds       int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte     int    `mapstructure:"request_body_limit_in_megabyte"`
	LoginSessionExpiredTimeInHours int    `mapstructure:"login_session_expired_time_in_hours"`
	// TenantAPIRateLimit is the number of allowed requests per 60-second
	// window per tenant (0 disables the limiter).
	TenantAPIRateLimit int `mapstructure:"tenant_api_rate_limit"`
	// MaintenanceCronSpec defines the cron expression for the nightly
	// maintenance worker (e.g., "@daily")
	MaintenanceCronSpec string `mapstructure:"maintenance_cron_spec"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppMailer struct {
	EmailSender string `mapstructure:"email_sender"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	DocumentMaxUploadSizeInMB       int    `mapstructure:"document_max_upload_size_in_mb"`
	PreSignedUrlObjectExpiryInHours int    `mapstructure:"pre_signed_url_object_expiry_in_hours"`
}

// AppCoordinator holds configuration for the debounced update coordinator.
type AppCoordinator struct {
	// DebounceDelayInMs is the default quiescence window before a scheduled
	// recompute runs.
	DebounceDelayInMs int `mapstructure:"debounce_delay_in_ms"`
	// RecomputeTimeoutInSeconds bounds a single recompute so a stuck
	// persistence call cannot hold its registry entry indefinitely.
	RecomputeTimeoutInSeconds int `mapstructure:"recompute_timeout_in_seconds"`
}

type AppPaymentGateway struct {
	ApiKey                  string `mapstructure:"api_key"`
	BaseUrl                 string `mapstructure:"base_url"`
	RequestTimeoutInSeconds int    `mapstructure:"request_timeout_in_seconds"`
	// MaxRequestsPerSecond throttles outbound calls to the provider.
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second"`
}
