/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package params implements a simple key/value store with constraints that
// can be serialized to JSON.
package params

import (
	"fmt"
	"sort"

	"github.com/genhopie/CaseAI/common/interfaces"
)

// Ensure Params implements the Parameters interface
var _ interfaces.Parameters = (*Params)(nil)

type Element struct {
	Value   Value `json:"value"`
	Default Value `json:"default"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
}

type Params struct {
	Data map[string]Element
}

// New returns an initialized Params object
func New() Params {
	return Params{Data: make(map[string]Element)}
}

// Exists checks if a key exists in the Params object
func (p *Params) Exists(key string) bool {
	_, ok := p.Data[key]
	return ok
}

// Set a key/value pair in the Params object
func (p *Params) Set(key string, value any) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}

	// enforceAny deals with empty strings and out of range ints and returns a string
	element.Value = enforceAny(value, element.Min, element.Max, element.Default)
	p.Data[key] = element
}

// SetDefault sets a default value for a key in the Params object
func (p *Params) SetDefault(key string, value any) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}
	element.Default = Value(fmt.Sprintf("%v", value))
	p.Data[key] = element
}

// SetConstraint sets a min and max constraint and a default for a key in the Params object
func (p *Params) SetConstraint(key string, min, max int, def any) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}
	element.Default = Value(fmt.Sprintf("%v", def))
	element.Min = min
	element.Max = max
	p.Data[key] = element
}

// SetMap sets multiple key/value pairs in the Params object
func (p *Params) SetMap(data map[string]any) {
	for key, value := range data {
		// Use Set for constraint enforcement and type conversion
		p.Set(key, value)
	}
}

// SetStringMap sets multiple key/value pairs in the Params object
func (p *Params) SetStringMap(data map[string]string) {
	for key, value := range data {
		// Use Set for constraint enforcement and type conversion
		p.Set(key, value)
	}
}

// Delete the value for a key, do not enforce constraints, but leave them in place
func (p *Params) Delete(key string) {
	element, ok := p.Data[key]
	if !ok {
		element = Element{}
	}

	element.Value = ""
	p.Data[key] = element
}

// Get a Value from the Params object
func (p *Params) Get(key string) interfaces.ParameterValue {

	// Get the element if it exists
	element, ok := p.Data[key]
	if !ok {
		return NewValue()
	}

	// Enforce the constraints
	ret := enforce(element)

	// If changed, save it
	if ret != element.Value {
		element.Value = ret
		p.Data[key] = element
	}
	return ret
}

// Keys returns the keys in the Params object in sorted order
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.Data))
	for key := range p.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Dump returns the effective values as a string map for display
func (p *Params) Dump() map[string]string {
	out := make(map[string]string)
	for _, key := range p.Keys() {
		out[key] = p.Get(key).String()
	}
	return out
}
