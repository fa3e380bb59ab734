package console

import (
	"context"
	"dr-portal/internal/app/models"
	"dr-portal/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// fetchCommand runs the guard for its page, then renders what call returns.
type fetchCommand struct {
	Meta
	route    string
	synopsis string
	help     string
	argCount int
	call     func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error)
}

func (c *fetchCommand) Synopsis() string {
	return c.synopsis
}

func (c *fetchCommand) Help() string {
	return c.help
}

func (c *fetchCommand) Run(args []string) int {
	if len(args) != c.argCount {
		return c.usage(c.Help())
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, c.route)
	if !ok {
		return 1
	}

	payload, err := c.call(ctx, current, args)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}

func (m *Meta) output(payload []byte) int {
	rendered, err := renderJSON(payload)
	if err != nil {
		// Not JSON; show it as received.
		m.Ui.Output(string(payload))
		return 0
	}
	m.Ui.Output(rendered)
	return 0
}

func newStatsCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameDoctorDashboard,
		synopsis: "Show the doctor's statistics",
		help:     "Usage: drctl stats",
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.DBAPI.GetDoctorStats(ctx, current.Profile.DoctorID)
		},
	}
}

func newPendingCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNamePendingReports,
		synopsis: "List cases waiting for review",
		help:     "Usage: drctl pending",
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.PendingReports(ctx, current)
		},
	}
}

func newRecentCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameDoctorDashboard,
		synopsis: "List the doctor's recent diagnoses",
		help:     "Usage: drctl recent",
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.DBAPI.GetDoctorRecentDiagnoses(ctx, current.Profile.DoctorID)
		},
	}
}

func newReportsCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNamePatientDashboard,
		synopsis: "List the patient's reports",
		help:     "Usage: drctl reports",
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.PatientReports(ctx, current)
		},
	}
}

func newDetailCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameReportDetail,
		synopsis: "Show one diagnosis",
		help:     "Usage: drctl detail <diagnosis-id>",
		argCount: 1,
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.ReportDetail(ctx, current, args[0])
		},
	}
}

func newConfirmCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameReportDetail,
		synopsis: "Confirm a diagnosis",
		help:     "Usage: drctl confirm <diagnosis-id>",
		argCount: 1,
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.Confirm(ctx, current, args[0])
		},
	}
}

func newDeleteCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameReportDetail,
		synopsis: "Return a diagnosis for rework",
		help:     "Usage: drctl delete <diagnosis-id>",
		argCount: 1,
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.Delete(ctx, current, args[0])
		},
	}
}

func newAIReportCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameReportDetail,
		synopsis: "Show an AI diagnosis report",
		help:     "Usage: drctl ai-report <report-id>",
		argCount: 1,
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.Dashboard.AIReport(ctx, current, args[0])
		},
	}
}

func newUsersCommand(meta Meta) *fetchCommand {
	return &fetchCommand{
		Meta:     meta,
		route:    constvars.RouteNameSettings,
		synopsis: "List users",
		help:     "Usage: drctl users",
		call: func(ctx context.Context, current models.Session, args []string) (json.RawMessage, error) {
			return meta.DBAPI.ListUsers(ctx)
		},
	}
}

type HistoryCommand struct {
	Meta
}

func (c *HistoryCommand) Synopsis() string {
	return "List the doctor's diagnosis history"
}

func (c *HistoryCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl history [-confirmed=true|false]

  Without -confirmed every diagnosis is listed.
`)
}

func (c *HistoryCommand) Run(args []string) int {
	var confirmedFlag string
	flags := c.flagSet("history")
	flags.StringVar(&confirmedFlag, "confirmed", "", "")
	if err := flags.Parse(args); err != nil || flags.NArg() != 0 {
		return c.usage(c.Help())
	}

	var confirmed *bool
	if confirmedFlag != "" {
		value, err := strconv.ParseBool(confirmedFlag)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("invalid -confirmed value %q", confirmedFlag))
			return c.usage(c.Help())
		}
		confirmed = &value
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, constvars.RouteNameDiagnosisHistory)
	if !ok {
		return 1
	}

	payload, err := c.Dashboard.DoctorHistory(ctx, current, confirmed)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}

type AIHistoryCommand struct {
	Meta
}

func (c *AIHistoryCommand) Synopsis() string {
	return "Search the AI service's diagnosis history"
}

func (c *AIHistoryCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl ai-history [key=value ...]

  Every key=value pair is passed as a query parameter.
`)
}

func (c *AIHistoryCommand) Run(args []string) int {
	params := url.Values{}
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return c.usage(c.Help())
		}
		params.Add(key, value)
	}

	ctx, cancel := c.context()
	defer cancel()

	current, ok := c.enter(ctx, constvars.RouteNameReportsList)
	if !ok {
		return 1
	}

	payload, err := c.Dashboard.ReportsList(ctx, current, params)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}
