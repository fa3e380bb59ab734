package console

import "fmt"

type VersionCommand struct {
	Meta
}

func (c *VersionCommand) Synopsis() string {
	return "Print the drctl version"
}

func (c *VersionCommand) Help() string {
	return "Usage: drctl version"
}

func (c *VersionCommand) Run(args []string) int {
	c.Ui.Output(fmt.Sprintf("Version: %s", c.Version))
	c.Ui.Output(fmt.Sprintf("Tag: %s", c.Tag))
	return 0
}
