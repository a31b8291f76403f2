//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/genhopie/CaseAI/common"
	"github.com/genhopie/CaseAI/common/clogger"
	"github.com/genhopie/CaseAI/common/crypto"
	"github.com/genhopie/CaseAI/common/cservice"
	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/desktop/global"
	"github.com/genhopie/CaseAI/desktop/launcher"
)

var conf *global.DesktopConfig
var logger interfaces.Logger
var guard *launcher.Guard

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

	console()
}

// OS-agnostic console mode. Double-clicking the application passes no
// arguments, so the default is to start the shell.
func console() {

	if len(os.Args) < 2 {
		startShell()
		return
	}

	switch strings.ToLower(os.Args[1]) {

	case "foreground":
		startShell()

	case "debug":
		global.Debug = true
		startShell()

	default:
		usage()
	}
}

func usage() {
	fmt.Printf("Usage: %s [foreground | debug | version]\n", os.Args[0])
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

func startShell() {
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
		logger.Fatalf(4001, "unable to load or create config: %s", err.Error())
		exit(1, false)
	}

	// Create a logger using the loaded configuration
	logger, err = clogger.New(
		clogger.WithPrefix(global.LogName),
		clogger.WithLogFile(conf.DC.Get(global.ConfigLogFile).String()),
		clogger.WithLogStdout(conf.DC.Get(global.ConfigLogStdout).Bool()),
		clogger.WithRetention(conf.DC.Get(global.ConfigLogRetention).Int()),
		clogger.WithDebug(global.Debug))

	if err != nil {
		fmt.Printf("error creating logger: %v\n", err)
		// Continue so that a logging issue doesn't prevent startup
	}

	// The service container stands in for the window event loop: it blocks
	// until interrupted and runs the teardown hook on any exit path
	s, err := cservice.New(
		cservice.WithServiceName(global.Name),
		cservice.WithServiceVersion(global.Version),
		cservice.WithServiceBuild(global.Build),
		cservice.WithLogger(logger),
		cservice.WithTaskTicker(global.TaskTicker),
		cservice.WithStartFunc(ShellStarting),
		cservice.WithStopFunc(ShellStopping),
		cservice.WithSEid(4500))

	if err != nil {
		logger.Fatalf(4005, "unable to create service: %s", err.Error())
		exit(1, false)
	}

	//goland:noinspection GoDfaErrorMayBeNotNil
	err = s.Start()
	if err != nil {
		logger.Fatalf(4006, "service failed to start: %s", err.Error())
		exit(1, false)
	}
}

// ShellStarting resolves the bundled backend and starts it. A missing
// backend executable is not fatal - the desktop runs in degraded mode
// without a local API. An unresolvable resource directory is fatal
// because the application bundle is broken.
func ShellStarting(logger interfaces.Logger) {

	resourceDir, err := global.ResourceDir()
	if err != nil {
		logger.Fatalf(4101, "unable to resolve resource directory: %s", err.Error())
		exit(1, false)
	}

	path, err := launcher.BackendPath(resourceDir)
	if err != nil {
		logger.Fatalf(4102, "unable to resolve backend path: %s", err.Error())
		exit(1, false)
	}

	// A fresh secret is generated for each session and handed to the
	// backend through its environment
	secret, err := crypto.SessionSecret()
	if err != nil {
		logger.Fatalf(4103, "unable to generate session secret: %s", err.Error())
		exit(1, false)
	}

	l, err := launcher.New(launcher.WithLogger(logger), launcher.WithEid(4200))
	if err != nil {
		logger.Fatalf(4104, "unable to create launcher: %s", err.Error())
		exit(1, false)
	}

	child, ok := l.Spawn(path, launcher.Config{
		Port:   conf.DC.Get(global.ConfigPort).Int(),
		Secret: secret})

	if !ok {
		logger.Warningf(4105, "running without local API backend")
	}

	// The guard accepts a nil child, so degraded mode needs no special case
	guard = launcher.NewGuard(child, logger)
}

// ShellStopping is called when the shell is about to exit
func ShellStopping(logger interfaces.Logger) {

	// Terminate the backend process
	guard.Release()

	// Save the configuration
	err := conf.C.Checkpoint()
	if err != nil {
		logger.Infof(4007, "error saving configuration: %s", err.Error())
	}
}
