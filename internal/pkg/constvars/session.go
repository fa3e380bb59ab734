package constvars

// Keys of the persisted session. Token and role always travel together.
const (
	SessionKeyToken   = "token"
	SessionKeyRole    = "role"
	SessionKeyProfile = "profile"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

const (
	SessionCookieName        = "dr_session"
	SessionRedisKeyPrefix    = "session:"
	SessionJWTClaimID        = "session_id"
	SessionFileName          = "session.json"
	SessionFileDirName       = ".drctl"
	SessionFilePermission    = 0600
	SessionFileDirPermission = 0700
)

const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)
