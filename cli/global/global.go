/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package global

import "github.com/genhopie/CaseAI/common"

//goland:noinspection GoUnusedConst
const (
	Version         = common.Version
	Build           = common.Build
	Name            = "CaseAI-CLI"
	Description     = "CaseAI CLI"
	LongDescription = "CaseAI command line interface"
	Copyright       = "Copyright (c) 2024-2025 Tenebris Technologies Inc."

	// DefaultServerURL is the local backend on its default port
	DefaultServerURL = "http://127.0.0.1:8787"
)

var ServerURL string
