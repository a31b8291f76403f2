//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package api

import (
	"net/http"

	"github.com/genhopie/CaseAI/common/cserver"
	"github.com/genhopie/CaseAI/common/fields"
	"github.com/genhopie/CaseAI/common/schema"
)

// @Summary Ping the backend
// @Description Pinging the backend tests authentication and communication
// @Security BearerAuth
// @Produce json
// @Tags Testing
// @Success 200 {object} schema.APIGenericResponse
// @Router /ping [get]
func (a *API) getPing(req *http.Request) cserver.JResponse {

	remoteIP := cserver.RemoteIP(req)

	authDetails := GetAuthDetails(req)

	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("role", authDetails.Role))

	a.logger.Info(2891, "ping", logFields)

	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{Details: "pong", Status: schema.APIStatusOK, Code: http.StatusOK}}
}
