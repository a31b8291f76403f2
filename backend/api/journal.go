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
	"strconv"

	"github.com/genhopie/CaseAI/common/cserver"
	"github.com/genhopie/CaseAI/common/fields"
	"github.com/genhopie/CaseAI/common/schema"
)

// @Summary Query the journal
// @Description Retrieves journal entries. Query parameters: case (case ID, empty for the general journal), start and end (unix seconds), type (event type).
// @Tags Journal
// @Security BearerAuth
// @Produce json
// @Param case query string false "Case ID"
// @Param start query int false "Start time (unix seconds)"
// @Param end query int false "End time (unix seconds)"
// @Param type query string false "Event type"
// @Success 200 {object} schema.APIJournalListResponse
// @Failure 401 {object} schema.API401
// @Failure 500 {object} schema.API500
// @Router /journal [get]
func (a *API) getJournal(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)

	q := req.URL.Query()
	caseID := q.Get("case")
	eventType := q.Get("type")
	startTime, _ := strconv.ParseInt(q.Get("start"), 10, 64)
	endTime, _ := strconv.ParseInt(q.Get("end"), 10, 64)

	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("case_id", caseID),
	)

	entries, err := a.data.GetJournalEntries(caseID, startTime, endTime, eventType)
	if err != nil {
		a.logger.Error(3151, fmt.Sprintf("error retrieving journal: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusInternalServerError,
			JSONData: schema.API500{Details: "error retrieving journal", Status: "error", Code: http.StatusInternalServerError}}
	}

	a.logger.Info(3152, "journal queried", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIJournalListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   schema.JournalList{Entries: entries}}}
}

// @Summary Append a journal entry
// @Description Appends an entry to the journal. The payload hash is computed server side.
// @Tags Journal
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param entry body schema.JournalCreateRequest true "Journal entry"
// @Success 200 {object} schema.APIJournalResponse
// @Failure 400 {object} schema.API400
// @Failure 401 {object} schema.API401
// @Router /journal [post]
func (a *API) postJournal(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
	)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		a.logger.Error(3153, "error reading body", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error reading body", Status: "error", Code: http.StatusBadRequest}}
	}

	var createReq schema.JournalCreateRequest
	if err = json.Unmarshal(body, &createReq); err != nil {
		a.logger.Error(3154, "error unmarshalling JSON", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error unmarshalling JSON", Status: "error", Code: http.StatusBadRequest}}
	}

	entry, err := a.data.AddJournalEntry(createReq, authDetails.ID)
	if err != nil {
		a.logger.Error(3155, err.Error(), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: err.Error(), Status: "error", Code: http.StatusBadRequest}}
	}

	logFields.Append(fields.NewField("journal_id", entry.JournalID))
	a.logger.Info(3156, "journal entry recorded", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIJournalResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "journal entry recorded",
			Data:    entry}}
}
