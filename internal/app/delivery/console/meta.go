package console

import (
	"context"
	"dr-portal/internal/app/contracts"
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/utils"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/mitchellh/cli"
	"go.uber.org/zap"
)

const defaultCommandTimeout = 2 * time.Minute

// Meta is shared by every drctl command.
type Meta struct {
	Ui        cli.Ui
	Log       *zap.Logger
	Sessions  contracts.SessionService
	Dashboard contracts.DashboardUsecase
	DBAPI     contracts.DBAPIClient
	Guard     *navigation.Guard
	Routes    *navigation.Table
	Timeout   time.Duration
	Version   string
	Tag       string
}

func (m *Meta) context() (context.Context, context.CancelFunc) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	timeout := m.Timeout
	if timeout <= 0 {
		timeout = defaultCommandTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (m *Meta) flagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return flags
}

// enter runs the navigation guard for the page a command stands in for. On
// a redirect it explains where the visitor belongs and reports false.
func (m *Meta) enter(ctx context.Context, routeName string) (models.Session, bool) {
	route, ok := m.Routes.ByName(routeName)
	if !ok {
		m.Ui.Error(fmt.Sprintf("unknown page %q", routeName))
		return models.Session{}, false
	}

	var decision navigation.Decision
	m.Guard.BeforeEach(ctx, route, nil, func(d navigation.Decision) {
		decision = d
	})

	switch {
	case decision.Allowed():
	case decision.Redirect == constvars.RoutePathLogin:
		m.Ui.Error("Not logged in. Run: drctl login")
		return models.Session{}, false
	default:
		m.Ui.Error(fmt.Sprintf("%s is not available for your role, your dashboard is %s", route.Path, decision.Redirect))
		return models.Session{}, false
	}

	current, err := m.Sessions.Current(ctx)
	if err != nil {
		m.fail(err)
		return models.Session{}, false
	}
	return current, true
}

func (m *Meta) fail(err error) int {
	m.Ui.Error(fmt.Sprintf("Error: %s", err))
	return 1
}

func (m *Meta) usage(help string) int {
	m.Ui.Error(help)
	return cli.RunResultHelp
}
