package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the global per second limiter and the stricter
// per minute limiter for login attempts, both keyed by client IP.
func (m *Middlewares) CreateRateLimiters() (globalLimiter, loginLimiter func(next http.Handler) http.Handler) {
	globalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	loginLimiter = httprate.LimitByIP(m.InternalConfig.App.LoginMaxRequestsPerMinute, time.Minute)
	return globalLimiter, loginLimiter
}
