package console

import (
	"dr-portal/internal/app/models"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"fmt"
	"strings"
)

type LoginCommand struct {
	Meta
}

func (c *LoginCommand) Synopsis() string {
	return "Log in as a doctor or a patient"
}

func (c *LoginCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl login -username <name> -role <doctor|patient> [-password <password>]

  Logs in against the DB API and stores the session locally. The password
  is prompted for when not given.
`)
}

func (c *LoginCommand) Run(args []string) int {
	request := requests.Login{}
	flags := c.flagSet("login")
	flags.StringVar(&request.Username, "username", "", "")
	flags.StringVar(&request.Password, "password", "", "")
	flags.StringVar(&request.Role, "role", "", "")
	if err := flags.Parse(args); err != nil {
		return c.usage(c.Help())
	}

	if request.Password == "" && request.Username != "" {
		password, err := c.Ui.AskSecret("Password:")
		if err != nil {
			return c.fail(err)
		}
		request.Password = password
	}

	utils.SanitizeLoginRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		c.Ui.Error(exceptions.FormatFirstValidationError(err))
		return c.usage(c.Help())
	}

	ctx, cancel := c.context()
	defer cancel()

	current, err := c.Sessions.Login(ctx, request.Username, request.Password, models.Role(request.Role))
	if err != nil {
		return c.fail(err)
	}

	c.Ui.Output(fmt.Sprintf("Logged in as %s. Dashboard: %s", current.Role, navigation.DashboardFor(current.Role)))
	return 0
}

type LogoutCommand struct {
	Meta
}

func (c *LogoutCommand) Synopsis() string {
	return "Forget the stored session"
}

func (c *LogoutCommand) Help() string {
	return "Usage: drctl logout"
}

func (c *LogoutCommand) Run(args []string) int {
	ctx, cancel := c.context()
	defer cancel()

	if err := c.Sessions.Logout(ctx); err != nil {
		return c.fail(err)
	}
	c.Ui.Output("Logged out.")
	return 0
}

type WhoamiCommand struct {
	Meta
}

func (c *WhoamiCommand) Synopsis() string {
	return "Show the stored session"
}

func (c *WhoamiCommand) Help() string {
	return "Usage: drctl whoami"
}

func (c *WhoamiCommand) Run(args []string) int {
	ctx, cancel := c.context()
	defer cancel()

	current, err := c.Sessions.Current(ctx)
	if err != nil {
		return c.fail(err)
	}
	if !current.HasToken() {
		c.Ui.Output("Not logged in.")
		return 0
	}

	c.Ui.Output(renderObject(map[string]interface{}{
		"role":       string(current.Role),
		"user_id":    current.Profile.UserID,
		"doctor_id":  current.Profile.DoctorID,
		"patient_id": current.Profile.PatientID,
		"dashboard":  navigation.DashboardFor(current.Role),
	}))
	return 0
}

// NavigateCommand shows what the navigation guard decides for a path with
// the stored session.
type NavigateCommand struct {
	Meta
}

func (c *NavigateCommand) Synopsis() string {
	return "Show where a page navigation ends up"
}

func (c *NavigateCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl navigate <path>

  Resolves path against the route table and runs the navigation guard with
  the stored session. Prints "allow" with the page name, or "redirect" with
  the target.
`)
}

func (c *NavigateCommand) Run(args []string) int {
	if len(args) != 1 {
		return c.usage(c.Help())
	}

	match, ok := c.Routes.Match(args[0])
	if !ok {
		c.Ui.Error(fmt.Sprintf("No page at %s", args[0]))
		return 1
	}
	if match.Route.Redirect != "" {
		c.Ui.Output(fmt.Sprintf("redirect %s", match.Route.Redirect))
		return 0
	}

	ctx, cancel := c.context()
	defer cancel()

	var decision navigation.Decision
	c.Guard.BeforeEach(ctx, match.Route, nil, func(d navigation.Decision) {
		decision = d
	})

	if decision.Allowed() {
		c.Ui.Output(fmt.Sprintf("allow %s (%s)", match.Path, match.Route.Name))
		return 0
	}
	c.Ui.Output(fmt.Sprintf("redirect %s", decision.Redirect))
	return 0
}
