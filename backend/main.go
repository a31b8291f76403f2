//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package main

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/genhopie/CaseAI/backend/api"
	"github.com/genhopie/CaseAI/backend/data"
	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common"
	"github.com/genhopie/CaseAI/common/cservice"
	"github.com/genhopie/CaseAI/common/clogger"
	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/common/null"
	"github.com/genhopie/CaseAI/common/schema"
)

// Swaggo data
// @title CaseAI Local API
// @version 0.2
// @description Local backend for the CaseAI desktop application
// @host 127.0.0.1:8787
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var conf *global.BackendConfig
var logger interfaces.Logger
var apiInstance *api.API

func main() {

	// A .env file in the working directory can supply LCAI_* variables
	// during development. A missing file is not an error.
	_ = godotenv.Load()

	// Check for version request
	if len(os.Args) == 2 {
		if strings.ToLower(os.Args[1]) == "version" {
			common.Banner(global.Description, global.Version, global.Build)
			exit(0, false)
		}
	}

	// Set debug mode to on
	global.Debug = true

	console()
}

// OS-agnostic console mode. When the desktop shell spawns the backend it
// passes no arguments, so the default is to run in the foreground.
func console() {
	var err error

	if len(os.Args) < 2 {
		startService()
		return
	}

	switch strings.ToLower(os.Args[1]) {

	case "admin":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin <username> <password>")
			return
		}

		// Load or create configuration file
		conf, err = global.Config()
		if err != nil {
			fmt.Printf("Fatal config error: %v\n", err)
			return
		}

		// Set up data access
		d, dataErr := data.New(conf, null.Logger())
		if dataErr != nil {
			fmt.Printf("Data error: %s\n", dataErr.Error())
			return
		}

		user := os.Args[2]
		pass := os.Args[3]

		// Set the admin user
		err = d.SetAuth(user, pass, schema.RoleAdmin)
		if err != nil {
			fmt.Printf("Error setting admin user: %s\n", err.Error())
			return
		}

		fmt.Printf("Password set for admin user \"%s\"\n", os.Args[2])
		d.Close()
		return

	case "foreground":
		startService()

	case "listen":
		if len(os.Args) != 3 {
			fmt.Println("Usage: listen <address>")
			fmt.Println("Example: caseai-backend listen 127.0.0.1:8787")
			return
		}

		address := os.Args[2]
		if _, err := net.ResolveTCPAddr("tcp", address); err != nil {
			fmt.Printf("Invalid listen address: %v\n", err)
			return
		}

		global.ListenOverride = address
		startService()

	default:
		usage()
	}
}

func usage() {
	fmt.Printf("Usage: %s [foreground | listen <address> | admin <user> <pass> | version]\n", os.Args[0])
}

func exit(code int, delay bool) {
	if delay {
		fmt.Printf("\nExiting with code %d in %d seconds...\n\n", code, global.ConsoleExitDelay)
		time.Sleep(global.ConsoleExitDelay * time.Second)
	} else {
		fmt.Printf("\nExiting with code %d\n\n", code)
	}
	os.Exit(code)
}

func startService() {
	var err error

	// Load the configuration
	conf, err = global.Config()
	if err != nil {
		// Try to create a logger and write the fatal error
		var loggerErr error
		logger, loggerErr = clogger.New(
			clogger.WithPrefix(global.LogName),
			clogger.WithLogFile(global.DefaultLog()),
			clogger.WithLogStdout(true),
			clogger.WithRetention(0),
			clogger.WithDebug(global.Debug))

		if loggerErr != nil {
			fmt.Printf("Fatal logger error: %s\n", err.Error())
			exit(1, false)
		}
		logger.Fatalf(1001, "unable to load or create config: %s", err.Error())
		exit(1, false)
	}

	// Create a logger using the loaded configuration
	logger, err = clogger.New(
		clogger.WithPrefix(global.LogName),
		clogger.WithLogFile(conf.SC.Get(global.ConfigLogFile).String()),
		clogger.WithLogStdout(conf.SC.Get(global.ConfigLogStdout).Bool()),
		clogger.WithRetention(conf.SC.Get(global.ConfigLogRetention).Int()),
		clogger.WithDebug(global.Debug))

	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		// Continue so that a logging issue doesn't prevent startup
	}

	// Start the service
	s, err := cservice.New(
		cservice.WithServiceName(global.Name),
		cservice.WithServiceVersion(global.Version),
		cservice.WithServiceBuild(global.Build),
		cservice.WithLogger(logger),
		cservice.WithTaskTicker(global.TaskTicker),
		cservice.WithBackgroundFunc(ServiceBackground),
		cservice.WithStopFunc(ServiceStopping),
		cservice.WithSEid(1500))

	if err != nil {
		logger.Fatalf(1005, "unable to create service: %s", err.Error())
		exit(1, false)
	}

	//goland:noinspection GoDfaErrorMayBeNotNil
	err = s.Start()
	if err != nil {
		logger.Fatalf(1006, "service failed to start: %s", err.Error())
		exit(1, false)
	}
}

// ServiceBackground will be launched as a goroutine when the service starts
func ServiceBackground(logger interfaces.Logger) {
	logger.Infof(2000, "Starting background processes including API")

	// Start the API
	apiInstance = api.New(conf, logger)
	go apiInstance.Start()
}

// ServiceStopping is called when the service is about to exit
func ServiceStopping(logger interfaces.Logger) {
	// Stop the HTTP server and close the database
	apiInstance.Stop()
	apiInstance.Close()

	// Save the configuration
	err := conf.C.Checkpoint()
	if err != nil {
		logger.Infof(1007, "error saving configuration: %s", err.Error())
	}
}
