/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package params

import (
	"testing"
)

func TestSetGet(t *testing.T) {
	p := New()
	p.Set("listen", "127.0.0.1:8787")

	if p.Get("listen").String() != "127.0.0.1:8787" {
		t.Errorf("unexpected value: %s", p.Get("listen").String())
	}
}

func TestDefaultApplied(t *testing.T) {
	p := New()
	p.SetDefault("port", 8787)

	if p.Get("port").Int() != 8787 {
		t.Errorf("expected default 8787, got %d", p.Get("port").Int())
	}
}

func TestConstraintEnforced(t *testing.T) {
	p := New()
	p.SetConstraint("retention", 1, 365, 30)

	p.Set("retention", 1000)
	if p.Get("retention").Int() != 30 {
		t.Errorf("expected out of range value to revert to default, got %d", p.Get("retention").Int())
	}

	p.Set("retention", 90)
	if p.Get("retention").Int() != 90 {
		t.Errorf("expected 90, got %d", p.Get("retention").Int())
	}
}

func TestEmptyStringReturnsDefault(t *testing.T) {
	p := New()
	p.SetDefault("actor", "admin")
	p.Set("actor", "")

	if p.Get("actor").String() != "admin" {
		t.Errorf("expected default actor, got %s", p.Get("actor").String())
	}
}

func TestBoolAndList(t *testing.T) {
	p := New()
	p.Set("stdout", "true")
	p.Set("tags", "ip,contract,appeal")

	if !p.Get("stdout").Bool() {
		t.Error("expected stdout to be true")
	}

	list := p.Get("tags").SplitList()
	if len(list) != 3 || list[1] != "contract" {
		t.Errorf("unexpected list: %v", list)
	}
}

func TestDeleteKeepsConstraints(t *testing.T) {
	p := New()
	p.SetConstraint("ttl", 1, 100, 10)
	p.Set("ttl", 50)
	p.Delete("ttl")

	if p.Get("ttl").Int() != 10 {
		t.Errorf("expected default after delete, got %d", p.Get("ttl").Int())
	}
}
