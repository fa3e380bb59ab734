package middlewares

import (
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// SessionCookie binds the visitor id carried by the session cookie to the
// request context. A missing or invalid cookie leaves the visitor anonymous.
func (m *Middlewares) SessionCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := utils.ParseSessionJWT(cookie.Value, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Ignoring invalid session cookie",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithVisitor(r.Context(), sessionID)))
	})
}
