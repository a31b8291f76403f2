//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// Please see the LICENSE file for details
//

package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/genhopie/CaseAI/backend/db"
	"github.com/genhopie/CaseAI/backend/global"
	"github.com/genhopie/CaseAI/common/crypto"
	"github.com/genhopie/CaseAI/common/hasher"
	"github.com/genhopie/CaseAI/common/interfaces"
)

type Data struct {
	logger   interfaces.Logger
	conf     *global.BackendConfig
	database *db.DB
	hasher   *hasher.Hasher
	jwtKey   []byte
}

// New creates a new Data instance.
//
// The JWT signing key comes from the LCAI_JWT_SECRET environment variable,
// which the desktop shell sets to a fresh random value each session. For
// manual runs a generated key is persisted in the private config set so
// tokens survive restarts. The fixed development key is a last resort and
// offers no protection, so its use is logged as a warning.
func New(conf *global.BackendConfig, logger interfaces.Logger) (*Data, error) {

	jwtKey := []byte(os.Getenv(global.EnvSecret))
	if len(jwtKey) == 0 {
		jwtKey = conf.SP.Get(global.ConfigJWTKey).Bytes()
	}
	if len(jwtKey) == 0 {
		generated, err := crypto.SessionSecret()
		if err == nil {
			conf.SP.Set(global.ConfigJWTKey, generated)
			jwtKey = []byte(generated)
		} else {
			logger.Warningf(2102, "%s not set and key generation failed, using development key - tokens are not secure", global.EnvSecret)
			jwtKey = []byte(global.DevSecret)
		}
	}

	// Get database path. If it doesn't exist, it will be created by global.Config()
	dbPath := conf.SC.Get(global.ConfigDBPath).String()
	if dbPath == "" {
		return nil, errors.New("database path missing from configuration")
	}

	dbInstance, err := db.Open(filepath.Join(dbPath, strings.ToLower(global.Name)+".db"), logger)
	if err != nil {
		return nil, fmt.Errorf("unable to open or create database: %w", err)
	}

	d := &Data{
		logger:   logger,
		conf:     conf,
		database: dbInstance,
		jwtKey:   jwtKey,
		hasher:   hasher.New(hasher.WithCache(global.MemoryCacheTTL)),
	}

	// Make sure the default admin exists so the app is usable on first start
	if err = d.ensureDefaultAdmin(); err != nil {
		dbInstance.Close()
		return nil, err
	}

	return d, nil
}

// Close anything data-related that requires it.
func (d *Data) Close() {

	// If the data instance is nil, bail
	if d == nil {
		return
	}

	// Close the database connection
	if d.database != nil {
		d.database.Close()
	}
}
