package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"oneof":    "must be one of %s",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
}

var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientUpstreamUnavailable           = "the diagnosis service is unavailable, please try again later"
	ErrClientInvalidImage                  = "please upload a valid image"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRouteNotFound                 = "page not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevServerProcess            = "server process failed"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevUpstreamRequestFailed    = "upstream request failed"
	ErrDevUpstreamTimeout          = "upstream request timed out"
	ErrDevRouteNotFound            = "route %s is not in the route table"

	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthTokenInvalid           = "invalid token"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevLoginPayloadMissingToken   = "login payload has no token"
	ErrDevSessionInconsistent        = "session has token and role out of step"
	ErrDevSessionStoreRead           = "failed to read session"
	ErrDevSessionStoreWrite          = "failed to write session"
	ErrDevSessionStoreClear          = "failed to clear session"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
)
