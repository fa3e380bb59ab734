package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	DBAPI    AppUpstream `mapstructure:"db_api"`
	AIAPI    AppUpstream `mapstructure:"ai_api"`
	Session  AppSession  `mapstructure:"session"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	CLI      AppCLI      `mapstructure:"cli"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	LoginMaxRequestsPerMinute  int    `mapstructure:"login_max_requests_per_minute"`
	UploadRequestsPerSecond    int    `mapstructure:"upload_requests_per_second"`
	UploadBlockTimeInSeconds   int    `mapstructure:"upload_block_time_in_seconds"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppUpstream describes one backend the API client layer talks to.
type AppUpstream struct {
	BaseUrl          string `mapstructure:"base_url"`
	TimeoutInSeconds int    `mapstructure:"timeout_in_seconds"`
	// DefaultHeaders is a CSV list of "Key:Value" pairs sent on every call.
	DefaultHeaders string `mapstructure:"default_headers"`
}

type AppSession struct {
	// Store selects the session backend: "redis" or "memory".
	Store              string `mapstructure:"store"`
	ExpiredTimeInHours int    `mapstructure:"expired_time_in_hours"`
	CookieSecure       bool   `mapstructure:"cookie_secure"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryInHours int    `mapstructure:"pre_signed_url_object_expiry_in_hours"`
}

type AppRabbitMQ struct {
	DiagnosisEventQueue string `mapstructure:"diagnosis_event_queue"`
}

type AppMongoDB struct {
	DBName string `mapstructure:"db_name"`
}

type AppCLI struct {
	// SessionDir overrides the directory holding the drctl session file.
	SessionDir string `mapstructure:"session_dir"`
	// LogLevel of the drctl logger, which writes to stderr.
	LogLevel string `mapstructure:"log_level"`
}
