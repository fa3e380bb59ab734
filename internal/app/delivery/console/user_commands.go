package console

import (
	"dr-portal/internal/pkg/constvars"
	"dr-portal/internal/pkg/dto/requests"
	"dr-portal/internal/pkg/exceptions"
	"dr-portal/internal/pkg/utils"
	"strings"
)

type CreateUserCommand struct {
	Meta
}

func (c *CreateUserCommand) Synopsis() string {
	return "Create a user in the DB API"
}

func (c *CreateUserCommand) Help() string {
	return strings.TrimSpace(`
Usage: drctl create-user -username <name> -password <password> -role <doctor|patient>
`)
}

func (c *CreateUserCommand) Run(args []string) int {
	request := requests.CreateUser{}
	flags := c.flagSet("create-user")
	flags.StringVar(&request.Username, "username", "", "")
	flags.StringVar(&request.Password, "password", "", "")
	flags.StringVar(&request.Role, "role", "", "")
	if err := flags.Parse(args); err != nil {
		return c.usage(c.Help())
	}

	utils.SanitizeCreateUserRequest(&request)
	if err := utils.ValidateStruct(request); err != nil {
		c.Ui.Error(exceptions.FormatFirstValidationError(err))
		return c.usage(c.Help())
	}

	ctx, cancel := c.context()
	defer cancel()

	if _, ok := c.enter(ctx, constvars.RouteNameSettings); !ok {
		return 1
	}

	payload, err := c.DBAPI.CreateUser(ctx, request)
	if err != nil {
		return c.fail(err)
	}
	return c.output(payload)
}
