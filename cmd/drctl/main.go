package main

import (
	"dr-portal/internal/app/config"
	"dr-portal/internal/app/delivery/console"
	"dr-portal/internal/app/drivers/logger"
	"dr-portal/internal/app/services/aiapi"
	"dr-portal/internal/app/services/dashboard"
	"dr-portal/internal/app/services/dbapi"
	"dr-portal/internal/app/services/navigation"
	"dr-portal/internal/app/services/session"
	"dr-portal/internal/app/services/shared/apiclient"
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	internalConfig, err := config.LoadInternalConfig()
	if err != nil {
		ui.Error(fmt.Sprintf("Error loading config: %v", err))
		return 1
	}

	log, err := logger.BuildConsoleZapLogger(config.Logger{Level: internalConfig.CLI.LogLevel})
	if err != nil {
		ui.Error(fmt.Sprintf("Error initializing logger: %v", err))
		return 1
	}
	defer log.Sync()

	sessionDir, err := session.DefaultSessionDir(internalConfig.CLI.SessionDir)
	if err != nil {
		ui.Error(fmt.Sprintf("Error locating session directory: %v", err))
		return 1
	}

	dbapiClient := dbapi.NewClient(apiclient.NewJSONTransport(apiclient.ConfigFromUpstream(internalConfig.DBAPI)), log)
	aiapiClient := aiapi.NewClient(apiclient.NewMultipartTransport(apiclient.ConfigFromUpstream(internalConfig.AIAPI)), log)
	sessionService := session.NewService(dbapiClient, session.NewFileStore(sessionDir), log)

	meta := console.Meta{
		Ui:        ui,
		Log:       log,
		Sessions:  sessionService,
		Dashboard: dashboard.NewDashboardUsecase(dbapiClient, aiapiClient, nil, nil, nil, log),
		DBAPI:     dbapiClient,
		Guard:     navigation.NewGuard(sessionService, log),
		Routes:    navigation.NewTable(navigation.DefaultRoutes()),
		Version:   Version,
		Tag:       Tag,
	}

	c := cli.NewCLI("drctl", Version)
	c.Args = args
	c.Commands = console.Commands(meta)

	exitStatus, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
	}
	return exitStatus
}
