/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/genhopie/CaseAI/common"
)

// RandomBytes returns n bytes from the system CSPRNG
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("unable to read random data: %w", err)
	}
	return b, nil
}

// SessionSecret generates the per-session shared secret passed from the
// desktop shell to the backend. It must never be hardcoded or persisted.
func SessionSecret() (string, error) {
	b, err := RandomBytes(common.DefaultSecretLength)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
