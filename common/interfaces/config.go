/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

// Config abstracts the configuration store so that consumers do not
// depend on the cconfig implementation directly
type Config interface {
	Init()
	Save(filename string) error
	Load(filename string) error
	Delete(filename string) error
	Checkpoint() error
	GetSets() map[string]Parameters
	GetSet(set string) Parameters
	NewSet(key string) Parameters
}

// Parameters is a set of typed key/value parameters with constraints
type Parameters interface {
	Exists(key string) bool
	Set(key string, value any)
	SetDefault(key string, value any)
	SetConstraint(key string, min, max int, def any)
	SetMap(data map[string]any)
	SetStringMap(data map[string]string)
	Delete(key string)
	Get(key string) ParameterValue
	Keys() []string
	Dump() map[string]string
}

// ParameterValue converts a stored parameter to the required type
type ParameterValue interface {
	String() string
	Bytes() []byte
	Int() int
	Int64() int64
	Bool() bool
	Base64() []byte
	SplitMap() map[string]any
	SplitList() []string
}
