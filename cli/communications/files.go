/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package communications

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// PostFile uploads a file to the specified endpoint as a multipart form,
// along with any additional form fields, and returns the response body.
func (c *Communications) PostFile(endpoint string, fields map[string]string, fileField string, filePath string) (int, []byte, error) {

	f, err := os.Open(filePath)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	// Build the multipart body
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for n, v := range fields {
		if err = writer.WriteField(n, v); err != nil {
			return 0, nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}

	part, err := writer.CreateFormFile(fileField, filepath.Base(filePath))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = io.Copy(part, f); err != nil {
		return 0, nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	if err = writer.Close(); err != nil {
		return 0, nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	return c.send("POST", endpoint, writer.FormDataContentType(), &body)
}

// GetFile sends a GET request to the specified endpoint and writes the
// response body to destPath.
func (c *Communications) GetFile(endpoint string, destPath string) (int, error) {

	status, data, err := c.sendRequest("GET", endpoint, nil)
	if err != nil {
		return status, err
	}

	if status != http.StatusOK {
		return status, fmt.Errorf("server returned HTTP %d", status)
	}

	if err = os.WriteFile(destPath, data, 0600); err != nil {
		return status, fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	return status, nil
}
