/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package hasher

import (
	"crypto/sha256"
	"io"
	"os"
)

// SHA256File hashes the contents of a file, consulting the cache if enabled
func (h *Hasher) SHA256File(f string) *Hasher {
	if f == "" {
		return &Hasher{}
	}

	// If ttl is set, the cache is in use
	if h.useCache {
		b := h.cache.Get(f)
		if b != nil {
			// cache hit
			return &Hasher{bytes: b}
		}
	}

	// cache miss - hash the file
	file, err := os.Open(f)
	if err != nil {
		return &Hasher{}
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	hasher := sha256.New()
	if _, err = io.Copy(hasher, file); err != nil {
		return &Hasher{}
	}
	sum := hasher.Sum(nil)

	if h.useCache {
		h.cache.Set(f, sum)
	}

	return &Hasher{bytes: sum}
}

// SHA256Bytes hashes a byte slice. The cache is not consulted because
// the caller already holds the data.
func (h *Hasher) SHA256Bytes(data []byte) *Hasher {
	sum := sha256.Sum256(data)
	return &Hasher{bytes: sum[:]}
}

// SHA256Reader hashes everything readable from r
func (h *Hasher) SHA256Reader(r io.Reader) *Hasher {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return &Hasher{}
	}
	return &Hasher{bytes: hasher.Sum(nil)}
}
