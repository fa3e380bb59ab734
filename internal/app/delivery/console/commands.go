package console

import (
	"github.com/mitchellh/cli"
)

// Commands is the drctl command table.
func Commands(meta Meta) map[string]cli.CommandFactory {
	fetch := func(build func(Meta) *fetchCommand) cli.CommandFactory {
		return func() (cli.Command, error) {
			return build(meta), nil
		}
	}

	return map[string]cli.CommandFactory{
		"login": func() (cli.Command, error) {
			return &LoginCommand{Meta: meta}, nil
		},
		"logout": func() (cli.Command, error) {
			return &LogoutCommand{Meta: meta}, nil
		},
		"whoami": func() (cli.Command, error) {
			return &WhoamiCommand{Meta: meta}, nil
		},
		"navigate": func() (cli.Command, error) {
			return &NavigateCommand{Meta: meta}, nil
		},
		"history": func() (cli.Command, error) {
			return &HistoryCommand{Meta: meta}, nil
		},
		"analyze": func() (cli.Command, error) {
			return &AnalyzeCommand{Meta: meta}, nil
		},
		"segment": func() (cli.Command, error) {
			return &SegmentCommand{Meta: meta}, nil
		},
		"submit": func() (cli.Command, error) {
			return &SubmitCommand{Meta: meta}, nil
		},
		"ai-history": func() (cli.Command, error) {
			return &AIHistoryCommand{Meta: meta}, nil
		},
		"create-user": func() (cli.Command, error) {
			return &CreateUserCommand{Meta: meta}, nil
		},
		"version": func() (cli.Command, error) {
			return &VersionCommand{Meta: meta}, nil
		},
		"stats":     fetch(newStatsCommand),
		"pending":   fetch(newPendingCommand),
		"recent":    fetch(newRecentCommand),
		"reports":   fetch(newReportsCommand),
		"detail":    fetch(newDetailCommand),
		"confirm":   fetch(newConfirmCommand),
		"delete":    fetch(newDeleteCommand),
		"ai-report": fetch(newAIReportCommand),
		"users":     fetch(newUsersCommand),
	}
}
