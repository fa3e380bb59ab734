package middlewares

import (
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var errRedirectLoop = errors.New("guard redirected to the requested path")

// Navigate serves the route table. The requested path is matched, table
// redirects are followed, and the guard decides before the view runs. A
// guard redirect answers 302 with Location; a redirect back to the path
// being requested answers 403 instead of looping.
func (m *Middlewares) Navigate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		match, ok := m.Routes.Match(r.URL.Path)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRouteNotFound(r.URL.Path))
			return
		}
		if match.Route.Redirect != "" {
			utils.BuildRedirectResponse(w, r, match.Route.Redirect)
			return
		}

		var decision navigation.Decision
		m.Guard.BeforeEach(r.Context(), match.Route, m.referrerRoute(r), func(d navigation.Decision) {
			decision = d
		})

		if !decision.Allowed() {
			if decision.Redirect == match.Path {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(errRedirectLoop))
				return
			}
			utils.BuildRedirectResponse(w, r, decision.Redirect)
			return
		}

		next.ServeHTTP(w, r.WithContext(navigation.ContextWithMatch(r.Context(), match)))
	})
}

// RequireMeta guards an action endpoint with explicit metadata. The same
// decision as for pages applies, answered as 401 when the visitor has to
// log in and 403 on a role mismatch.
func (m *Middlewares) RequireMeta(meta navigation.Meta) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			to := &navigation.Route{Path: r.URL.Path, Meta: meta}

			var decision navigation.Decision
			m.Guard.BeforeEach(r.Context(), to, m.referrerRoute(r), func(d navigation.Decision) {
				decision = d
			})

			switch {
			case decision.Allowed():
				next.ServeHTTP(w, r)
			case decision.Redirect == constvars.RoutePathLogin:
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid))
			default:
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role required: %s", meta.Role)))
			}
		})
	}
}

// referrerRoute resolves the Referer header against the route table, if it
// points to one of its pages.
func (m *Middlewares) referrerRoute(r *http.Request) *navigation.Route {
	referer := r.Header.Get(constvars.HeaderReferer)
	if referer == "" {
		return nil
	}
	parsed, err := url.Parse(referer)
	if err != nil {
		return nil
	}
	match, ok := m.Routes.Match(parsed.Path)
	if !ok {
		return nil
	}
	return match.Route
}
