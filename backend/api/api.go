//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/genhopie/CaseAI/backend/data"
	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common/cserver"
	"github.com/genhopie/CaseAI/common/interfaces"
	"github.com/genhopie/CaseAI/common/schema"
)

type API struct {
	logger interfaces.Logger
	conf   *global.BackendConfig
	data   *data.Data
	server *cserver.Server
}

func New(config *global.BackendConfig, logger interfaces.Logger) *API {
	return &API{logger: logger, conf: config}
}

func (a *API) Start() {
	var err error

	// Set up data access
	a.data, err = data.New(a.conf, a.logger)
	if err != nil {
		a.logger.Errorf(2004, "Data error: %s", err.Error())
		return
	}

	// Loop until stopped
	for {
		// Start the API
		a.logger.Infof(2001, "Starting API")
		err := a.startAPI()
		if err != nil {
			a.logger.Errorf(2003, "API error: %s", err.Error())
		} else {
			a.logger.Infof(2002, "API stopped")
			return
		}

		// Sleep before trying again
		time.Sleep(10 * time.Second)
	}
}

func (a *API) startAPI() error {

	// Obtain the listen address and check for command line override
	listen := a.conf.SC.Get(global.ConfigListen).String()
	if global.ListenOverride != "" {
		listen = global.ListenOverride
	}

	// Create a new server instance
	s, err := cserver.New(
		cserver.WithLogger(a.logger),
		cserver.WithSEid(2500),
		cserver.WithListen(listen),
		cserver.WithHTTPTimeout(a.conf.SC.Get(global.ConfigHTTPTimeout).Int()),
		cserver.WithHTTPIdleTimeout(a.conf.SC.Get(global.ConfigHTTPIdle).Int()),
		cserver.WithHandlerTimeout(a.conf.SC.Get(global.ConfigHandlerTimeout).Int()),
		cserver.WithMaxConcurrent(a.conf.SC.Get(global.ConfigMaxConcurrent).Int()),
		cserver.WithPenaltyBox(
			a.conf.SC.Get(global.ConfigPenaltyBoxMin).Int(),
			a.conf.SC.Get(global.ConfigPenaltyBoxMax).Int()),
		cserver.WithAuthFunc(a.NewAuthFunc(a.AuthAnyRole())))

	if err != nil {
		return err
	}

	if s == nil {
		return errors.New("cserver.New() returned nil")
	}

	s.AddRoute(cserver.Route{
		Name:     "ping",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointPing,
		JHandler: a.getPing,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "login",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointLogin,
		JHandler: a.postLogin,
		AuthFunc: nil})

	s.AddRoute(cserver.Route{
		Name:     "refresh",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointRefresh,
		JHandler: a.postRefresh,
		AuthFunc: nil})

	s.AddRoute(cserver.Route{
		Name:     "cases",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointCases, // All cases
		JHandler: a.getCases,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "cases",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointCases + "/{id}", // Single case
		JHandler: a.getCase,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "cases",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointCases,
		JHandler: a.postCase,
		AuthFunc: a.NewAuthFunc(a.AuthUsers())})

	s.AddRoute(cserver.Route{
		Name:     "cases",
		Methods:  []string{"POST", "PUT"}, // Allow either
		Pattern:  schema.EndpointCases + "/{id}",
		JHandler: a.putCase,
		AuthFunc: a.NewAuthFunc(a.AuthUsers())})

	s.AddRoute(cserver.Route{
		Name:     "cases",
		Methods:  []string{"DELETE"},
		Pattern:  schema.EndpointCases + "/{id}",
		JHandler: a.deleteCase,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(cserver.Route{
		Name:     "documents",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointDocuments,
		JHandler: a.getDocuments,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "documents",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointDocuments + "/{id}",
		JHandler: a.getDocument,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "documents",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointDocuments + "/{id}/download",
		Handler:  http.HandlerFunc(a.downloadDocument),
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "documents",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointDocuments,
		JHandler: a.postDocument,
		AuthFunc: a.NewAuthFunc(a.AuthUsers())})

	s.AddRoute(cserver.Route{
		Name:     "documents",
		Methods:  []string{"DELETE"},
		Pattern:  schema.EndpointDocuments + "/{id}",
		JHandler: a.deleteDocument,
		AuthFunc: a.NewAuthFunc(a.AuthUsers())})

	s.AddRoute(cserver.Route{
		Name:     "journal",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointJournal,
		JHandler: a.getJournal,
		AuthFunc: a.NewAuthFunc(a.AuthAnyRole())})

	s.AddRoute(cserver.Route{
		Name:     "journal",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointJournal,
		JHandler: a.postJournal,
		AuthFunc: a.NewAuthFunc(a.AuthUsers())})

	s.AddRoute(cserver.Route{
		Name:     "user",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointUser,
		JHandler: a.getUsers,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(cserver.Route{
		Name:     "user",
		Methods:  []string{"GET"},
		Pattern:  schema.EndpointUser + "/{id}",
		JHandler: a.getUser,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(cserver.Route{
		Name:     "user",
		Methods:  []string{"POST"},
		Pattern:  schema.EndpointUser,
		JHandler: a.postUser,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(cserver.Route{
		Name:     "user",
		Methods:  []string{"POST", "PUT"}, // Allow either
		Pattern:  schema.EndpointUser + "/{id}",
		JHandler: a.putUser,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	s.AddRoute(cserver.Route{
		Name:     "user",
		Methods:  []string{"DELETE"},
		Pattern:  schema.EndpointUser + "/{id}",
		JHandler: a.deleteUser,
		AuthFunc: a.NewAuthFunc(a.AuthAdmins())})

	// Keep a reference for graceful shutdown
	a.server = s

	// Start the server
	// A graceful Stop() surfaces as ErrServerClosed and is not an error
	err = s.Start()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("cserver Start(): %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server
func (a *API) Stop() {
	if a.server != nil {
		if err := a.server.Stop(); err != nil {
			a.logger.Errorf(2005, "server stop: %s", err.Error())
		}
	}
}

// Close closes open files, etc.
func (a *API) Close() {
	a.data.Close()
}
