/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package cserver

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// HandlerHealth implements a health check so the shell and CLI can
// confirm the backend is up
func (s *Server) HandlerHealth(_ *http.Request) JResponse {
	var r Response

	r.Status = "ok"
	r.Code = http.StatusOK
	r.Details = "health check ok"

	return JResponse{
		HTTPCode: r.Code,
		JSONData: r}
}

func (s *Server) Handler401(_ *http.Request) JResponse {
	s.PenaltyBox()

	return JResponse{
		HTTPCode: http.StatusUnauthorized,
		JSONData: Response{Details: "not authorized", Status: "error", Code: http.StatusUnauthorized}}
}

func (s *Server) Handler404(_ *http.Request) JResponse {
	s.PenaltyBox()
	return JResponse{
		HTTPCode: http.StatusNotFound,
		JSONData: Response{Details: "object does not exist", Status: "error", Code: http.StatusNotFound}}
}

func (s *Server) Handler405(_ *http.Request) JResponse {
	s.PenaltyBox()
	return JResponse{
		HTTPCode: http.StatusMethodNotAllowed,
		JSONData: Response{Details: "method not allowed", Status: "error", Code: http.StatusMethodNotAllowed}}
}

// HandlerTest accepts an optional 'id' variable and echos it back
// This is an example of a handler that can receive a variable in the URL or not
// Note that two routes are added in server.go, one with the variable and one without
func (s *Server) HandlerTest(req *http.Request) JResponse {
	var r Response

	// Get parameter
	vars := mux.Vars(req)
	id := vars["id"]

	// Create example response
	r.Status = "ok"
	r.Code = http.StatusOK

	if id == "" {
		r.Details = "no ID received"
	} else {
		r.Details = fmt.Sprintf("received ID %s", id)
	}

	// Send Response
	return JResponse{
		HTTPCode: r.Code,
		JSONData: r}
}
