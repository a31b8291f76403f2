/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

//goland:noinspection GoUnusedConst
const (
	RoleNone = iota
	RoleTest
	RoleUser
	RoleAuditor
	RoleAdmin
)

var (
	RolesAll = []int{RoleTest, RoleUser, RoleAuditor, RoleAdmin}
)
