/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

// Environment variables shared between the desktop shell and the backend.
// EnvPort and EnvSecret form the contract the shell uses when it spawns the
// backend process. The others are user or test overrides.
const (
	EnvPort        = "LCAI_PORT"
	EnvSecret      = "LCAI_JWT_SECRET"
	EnvDataDir     = "LCAI_DATA_DIR"
	EnvResourceDir = "LCAI_RESOURCE_DIR"
)
