/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common/cserver"
	"github.com/genhopie/CaseAI/common/fields"
	"github.com/genhopie/CaseAI/common/schema"
)

// @Summary List documents
// @Description Retrieves document metadata, optionally filtered with ?case=<id>
// @Tags Document management
// @Security BearerAuth
// @Produce json
// @Param case query string false "Case ID"
// @Success 200 {object} schema.APIDocumentListResponse
// @Failure 401 {object} schema.API401
// @Failure 500 {object} schema.API500
// @Router /documents [get]
func (a *API) getDocuments(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	caseID := req.URL.Query().Get("case")
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("case_id", caseID),
	)

	docs, err := a.data.ListDocuments(caseID)
	if err != nil {
		a.logger.Error(3101, fmt.Sprintf("error retrieving documents: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusInternalServerError,
			JSONData: schema.API500{Details: "error retrieving documents", Status: "error", Code: http.StatusInternalServerError}}
	}
	a.logger.Info(3102, "documents listed", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIDocumentListResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   schema.DocumentList{Documents: docs}}}
}

// @Summary Get document metadata
// @Description Retrieves metadata for a single document
// @Tags Document management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} schema.APIDocumentResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /documents/{id} [get]
func (a *API) getDocument(req *http.Request) cserver.JResponse {
	docID := cserver.GetParam(req, "id")
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("document_id", docID),
	)

	meta, err := a.data.GetDocument(docID)
	if err != nil {
		a.logger.Error(3103, fmt.Sprintf("error retrieving document: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusNotFound,
			JSONData: schema.API404{Details: "document not found", Status: "error", Code: http.StatusNotFound}}
	}
	a.logger.Info(3104, "document retrieved", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIDocumentResponse{
			Status: schema.APIStatusOK,
			Code:   http.StatusOK,
			Data:   meta}}
}

// @Summary Upload a document
// @Description Stores a document under a case. Expects multipart form data with 'case_id' and 'file' fields.
// @Tags Document management
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param case_id formData string true "Case ID"
// @Param file formData file true "Document file"
// @Success 200 {object} schema.APIDocumentResponse
// @Failure 400 {object} schema.API400
// @Failure 401 {object} schema.API401
// @Router /documents [post]
func (a *API) postDocument(req *http.Request) cserver.JResponse {
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
	)

	maxBytes := int64(a.conf.SC.Get(global.ConfigMaxDocumentMB).Int()) * 1024 * 1024
	if err := req.ParseMultipartForm(maxBytes); err != nil {
		a.logger.Error(3105, fmt.Sprintf("error parsing multipart form: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "invalid multipart form", Status: "error", Code: http.StatusBadRequest}}
	}

	caseID := req.FormValue("case_id")
	logFields.Append(fields.NewField("case_id", caseID))

	file, header, err := req.FormFile("file")
	if err != nil {
		a.logger.Error(3106, "missing file field", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "missing file field", Status: "error", Code: http.StatusBadRequest}}
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		a.logger.Error(3107, "error reading file", logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: "error reading file", Status: "error", Code: http.StatusBadRequest}}
	}

	meta, err := a.data.StoreDocument(caseID, header.Filename, header.Header.Get("Content-Type"), content, authDetails.ID)
	if err != nil {
		a.logger.Error(3108, err.Error(), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusBadRequest,
			JSONData: schema.API400{Details: err.Error(), Status: "error", Code: http.StatusBadRequest}}
	}

	logFields.Append(fields.NewField("document_id", meta.DocumentID), fields.NewField("sha256", meta.SHA256))
	a.logger.Info(3109, "document stored", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIDocumentResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "document stored",
			Data:    meta}}
}

// @Summary Delete a document
// @Description Deletes a document's content and metadata
// @Tags Document management
// @Security BearerAuth
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} schema.APIGenericResponse
// @Failure 401 {object} schema.API401
// @Failure 404 {object} schema.API404
// @Router /documents/{id} [delete]
func (a *API) deleteDocument(req *http.Request) cserver.JResponse {
	docID := cserver.GetParam(req, "id")
	remoteIP := cserver.RemoteIP(req)
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("src_ip", remoteIP),
		fields.NewField("id", authDetails.ID),
		fields.NewField("document_id", docID),
	)

	if err := a.data.DeleteDocument(docID, authDetails.ID); err != nil {
		a.logger.Error(3110, fmt.Sprintf("error deleting document: %s", err.Error()), logFields)
		return cserver.JResponse{
			HTTPCode: http.StatusNotFound,
			JSONData: schema.API404{Details: "document not found", Status: "error", Code: http.StatusNotFound}}
	}

	a.logger.Info(3111, "document deleted", logFields)
	return cserver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.APIGenericResponse{Details: "document deleted", Status: schema.APIStatusOK, Code: http.StatusOK}}
}

// downloadDocument streams the stored document content back to the client.
// This is a plain http.Handler because the response is not JSON.
func (a *API) downloadDocument(w http.ResponseWriter, req *http.Request) {
	docID := cserver.GetParam(req, "id")
	authDetails := GetAuthDetails(req)
	logFields := fields.NewFields(
		fields.NewField("id", authDetails.ID),
		fields.NewField("document_id", docID),
	)

	meta, content, err := a.data.GetDocumentContent(docID)
	if err != nil {
		a.logger.Error(3112, fmt.Sprintf("error retrieving document content: %s", err.Error()), logFields)
		http.Error(w, "document not found", http.StatusNotFound)
		return
	}

	contentType := meta.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(meta.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.FileName))
	_, _ = w.Write(content)

	a.logger.Info(3113, "document downloaded", logFields)
}
