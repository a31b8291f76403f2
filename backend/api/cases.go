/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/genhopie/CaseAI/common/cserver"
	"github.com/genhopie/CaseAI/common/fields"
	"github.com/genhopie/CaseAI/common/schema"
)

// @Summary List all cases
// @Description Retrieves a list of all cases
// @Tags Case management
// @Security BearerAuth
// @Produce json
// @Success 200 {object} schema.APICaseListResponse
// @Failure 401 {object} schema.API401
// @Failure 500 {object} schema.API500
// @Router /cases [get]
func (a *API) getCases(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("role", authDetails.Role),
	)

	cases, err := a.data.ListCases()
	if err != nil {
		a.logger.Error(3001, fmt.Sprintf("error retrieving cases: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusInternalServerError,
			JSONData: schema.API500{Details: "error retrieving cases", Status: "error", Code: http.StatusInternalServerError}}
	}
	a.logger.Info(3002, "cases listed", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICaseListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   schema.CaseList{Cases: cases}}}
}

// @Summary Get case by ID
// @Description Retrieves a single case
// @Tags Case management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} schema.APICaseResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /cases/{id} [get]
func (a *API) getCase(req *http.Request) cserver.JResponse {
	caseID := cserver.GetParam(req, "id")
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("case_id", caseID),
	)

	meta, err := a.data.GetCase(caseID)
	if err != nil {
		a.logger.Error(3003, fmt.Sprintf("error retrieving case: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusNotFound,
			JSONData: schema.API404{Details: "case not found", Status: "error", Code: http.StatusNotFound}}
	}
	a.logger.Info(3004, "case retrieved", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICaseResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   meta}}
}

// @Summary Open a new case
// @Description Creates a new case owned by the authenticated user
// @Tags Case management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param case body schema.CaseCreateRequest true "Case data"
// @Success 200 {object} schema.APICaseResponse
// @Failure 400 {object} schema.API400
// @Failure 401 {object} schema.API401
// @Router /cases [post]
func (a *API) postCase(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
	)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		a.logger.Error(3005, "error reading body", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error reading body", Status: "error", Code: http.StatusBadRequest}}
	}

	var createReq schema.CaseCreateRequest
	if err = json.Unmarshal(body, &createReq); err != nil {
		a.logger.Error(3006, "error unmarshalling JSON", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error unmarshalling JSON", Status: "error", Code: http.StatusBadRequest}}
	}

	meta, err := a.data.AddCase(createReq, authDetails.ID)
	if err != nil {
		a.logger.Error(3007, err.Error(), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: err.Error(), Status: "error", Code: http.StatusBadRequest}}
	}

	logFields.Append(fields.NewField("case_id", meta.CaseID))
	a.logger.Info(3008, "case created", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICaseResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "case created",
			Data:    meta}}
}

// @Summary Update a case
// @Description Updates mutable fields of an existing case
// @Tags Case management
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param case body schema.CaseUpdateRequest true "Fields to update"
// @Success 200 {object} schema.APICaseResponse
// @Failure 400 {object} schema.API400
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /cases/{id} [put]
func (a *API) putCase(req *http.Request) cserver.JResponse {
	caseID := cserver.GetParam(req, "id")
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("case_id", caseID),
	)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		a.logger.Error(3009, "error reading body", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error reading body", Status: "error", Code: http.StatusBadRequest}}
	}

	var updateReq schema.CaseUpdateRequest
	if err = json.Unmarshal(body, &updateReq); err != nil {
		a.logger.Error(3010, "error unmarshalling JSON", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error unmarshalling JSON", Status: "error", Code: http.StatusBadRequest}}
	}

	meta, err := a.data.UpdateCase(caseID, updateReq, authDetails.ID)
	if err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		a.logger.Error(3011, err.Error(), logFields)
		return cserver.JResponse{
			HTTPCode: code,
			JSONData: schema.API400{Details: err.Error(), Status: "error", Code: code}}
	}

	a.logger.Info(3012, "case updated", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APICaseResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "case updated",
			Data:    meta}}
}

// @Summary Delete a case
// @Description Deletes a case along with its documents and journal
// @Tags Case management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} schema.APIGenericResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /cases/{id} [delete]
func (a *API) deleteCase(req *http.Request) cserver.JResponse {
	caseID := cserver.GetParam(req, "id")
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("case_id", caseID),
	)

	if err := a.data.DeleteCase(caseID, authDetails.ID); err != nil {
		a.logger.Error(3013, fmt.Sprintf("error deleting case: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusNotFound,
			JSONData: schema.API404{Details: "case not found", Status: "error", Code: http.StatusNotFound}}
	}

	a.logger.Info(3014, "case deleted", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{Details: "case deleted", Status: schema.APIStatusOK, Code: http.StatusOK}}
}
