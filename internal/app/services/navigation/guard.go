package navigation

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Decision is the outcome of one guard evaluation. An empty Redirect means
// the navigation proceeds unchanged.
type Decision struct {
	Redirect string
}

func (d Decision) Allowed() bool {
	return d.Redirect == ""
}

// NextFunc receives the guard's decision.
type NextFunc func(decision Decision)

// Decide applies, in order: authentication, then role, then allow.
func Decide(meta Meta, session models.Session) Decision {
	if meta.RequiresAuth && !session.HasToken() {
		return Decision{Redirect: constvars.RoutePathLogin}
	}
	if meta.Role != models.RoleNone && session.Role != meta.Role {
		return Decision{Redirect: DashboardFor(session.Role)}
	}
	return Decision{}
}

// DashboardFor is the landing page of role. Anything but doctor lands on
// the patient dashboard.
func DashboardFor(role models.Role) string {
	if role == models.RoleDoctor {
		return constvars.RoutePathDoctorDashboard
	}
	return constvars.RoutePathPatientDashboard
}

type Guard struct {
	Sessions contracts.SessionReader
	Log      *zap.Logger
}

func NewGuard(sessions contracts.SessionReader, logger *zap.Logger) *Guard {
	return &Guard{
		Sessions: sessions,
		Log:      logger,
	}
}

// BeforeEach runs before every transition to to. The session is read on
// each call; a session that cannot be read counts as anonymous.
func (g *Guard) BeforeEach(ctx context.Context, to, from *Route, next NextFunc) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := g.Sessions.Current(ctx)
	if err != nil {
		session = models.Session{}
	}

	fromPath := ""
	if from != nil {
		fromPath = from.Path
	}

	g.Log.Debug("navigationGuard.BeforeEach called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingToPathKey, to.Path),
		zap.String(constvars.LoggingFromPathKey, fromPath),
		zap.Bool(constvars.LoggingHasTokenKey, session.HasToken()),
		zap.String(constvars.LoggingRoleKey, string(session.Role)),
		zap.Bool(constvars.LoggingRequiresAuthKey, to.Meta.RequiresAuth),
		zap.String(constvars.LoggingRequiredRoleKey, string(to.Meta.Role)),
	)

	decision := Decide(to.Meta, session)
	switch {
	case decision.Allowed():
		g.Log.Info("navigationGuard.BeforeEach allowed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToPathKey, to.Path),
		)
	case decision.Redirect == constvars.RoutePathLogin:
		g.Log.Info("navigationGuard.BeforeEach redirecting unauthenticated visitor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToPathKey, to.Path),
			zap.String(constvars.LoggingRedirectKey, decision.Redirect),
		)
	default:
		g.Log.Info("navigationGuard.BeforeEach redirecting on role mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingToPathKey, to.Path),
			zap.String(constvars.LoggingRedirectKey, decision.Redirect),
		)
	}

	next(decision)
}
