/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cservice

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// run starts the service loop and blocks until a signal or Stop() arrives.
// os.Interrupt is delivered on all supported platforms, so a single loop
// serves the desktop shell on Windows, macOS, and Linux alike.
func (s *Service) run() error {
	if s.logger == nil {
		return errors.New("refusing to start service with nil logger")
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	s.logger.Infof(s.SEid+1, "%s %s (build %d) service started", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	s.logger.Debugf(s.SEid+1, "Debug logging enabled")

	if s.BackgroundFunc != nil {
		go s.BackgroundFunc(s.logger)
	}

	ticker := time.NewTicker(s.TaskTicker * time.Second)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-s.tickerStop:
				return
			case newInterval := <-s.tickerUpdate:
				ticker.Stop()
				ticker = time.NewTicker(newInterval * time.Second)
			}
		}
	}()

	// Call the start function if defined
	if s.StartFunc != nil {
		s.StartFunc(s.logger)
	}

	// Loop, call the TasksFunc, and wait for an exit request
	for {
		select {
		case <-ticker.C:
			if s.TasksFunc != nil {
				s.TasksFunc(s.logger)
			}
		case <-signalChan:
			return s.shutdown()
		case <-s.stopRequest:
			return s.shutdown()
		}
	}
}

func (s *Service) shutdown() error {
	s.logger.Infof(s.SEid+2, "%s %s (build %d) service stopping", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	if s.StopFunc != nil {
		s.StopFunc(s.logger)
	}
	close(s.tickerStop)
	s.logger.Infof(s.SEid+3, "%s %s (build %d) service stopped", s.ServiceName, s.ServiceVersion, s.ServiceBuild)
	return nil
}
