package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingOperationKey    = "operation"
	LoggingMethodKey       = "method"
	LoggingURLKey          = "url"
	LoggingStatusCodeKey   = "status_code"
	LoggingTimeoutKey      = "timeout"
	LoggingDiagnosisIDKey  = "diagnosis_id"
	LoggingReportIDKey     = "report_id"
	LoggingDoctorIDKey     = "doctor_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingRoleKey         = "role"
	LoggingRequiredRoleKey = "required_role"
	LoggingRequiresAuthKey = "requires_auth"
	LoggingHasTokenKey     = "has_token"
	LoggingToPathKey       = "to"
	LoggingFromPathKey     = "from"
	LoggingRedirectKey     = "redirect"
	LoggingSessionIDKey    = "session_id"
	LoggingQueueKey        = "queue"
	LoggingBucketKey       = "bucket"
	LoggingObjectKey       = "object"
	LoggingEventTypeKey    = "event_type"
	LoggingResponseLenKey  = "response_length"
)
