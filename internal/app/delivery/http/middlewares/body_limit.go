package middlewares

import (
	"net/http"
)

const bytesPerMegabyte = 1 << 20

// BodyLimit caps the request body at the configured size. Reads past the
// limit fail inside the handler.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) * bytesPerMegabyte
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
