//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package cserver

import "github.com/genhopie/CaseAI/common/interfaces"

// Functional options

//goland:noinspection GoUnusedExportedFunction
func WithLogger(logger interfaces.Logger) func(*Server) error {
	return func(e *Server) error {
		e.Logger = logger
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithListen(listen string) func(*Server) error {
	return func(e *Server) error {
		e.Listen = listen
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHTTPTimeout(t int) func(*Server) error {
	return func(e *Server) error {
		e.HTTPTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHTTPIdleTimeout(t int) func(*Server) error {
	return func(e *Server) error {
		e.HTTPIdleTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHandlerTimeout(t int) func(*Server) error {
	return func(e *Server) error {
		e.HandlerTimeout = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithPenaltyBox(min, max int) func(*Server) error {
	return func(e *Server) error {
		e.PenaltyBoxMin = min
		e.PenaltyBoxMax = max
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithMaxConcurrent(m int) func(*Server) error {
	return func(e *Server) error {
		e.MaxConcurrent = m
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithLogFile(logfile string) func(*Server) error {
	return func(e *Server) error {
		e.LogFile = logfile
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithSEid(seid uint32) func(*Server) error {
	return func(e *Server) error {
		e.SEid = seid
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithHealthHandler(h bool) func(*Server) error {
	return func(e *Server) error {
		e.HealthHandler = h
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithTestHandler(t bool) func(*Server) error {
	return func(e *Server) error {
		e.TestHandler = t
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithDefaultHeaders(d bool) func(*Server) error {
	return func(e *Server) error {
		e.DefaultHeaders = d
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithDebug(d bool) func(*Server) error {
	return func(e *Server) error {
		e.Debug = d
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithFileDir(pattern, dir string, authFunc AuthFunc) func(*Server) error {
	return func(e *Server) error {
		e.FileSrv.Dir = dir
		e.FileSrv.Pattern = pattern
		e.FileSrv.AuthFunc = authFunc
		return nil
	}
}

//goland:noinspection GoUnusedExportedFunction
func WithAuthFunc(authFunc AuthFunc) func(*Server) error {
	return func(e *Server) error {
		e.AuthFunc = authFunc
		return nil
	}
}
