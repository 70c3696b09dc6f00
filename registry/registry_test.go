package registry

import (
	"testing"

	"github.com/dshills/modhook/apitypes"
)

func TestRegistry_GetOrCreate_SameInstance(t *testing.T) {
	r := New()

	first := r.GetOrCreate("ext.adblock")
	second := r.GetOrCreate("ext.adblock")

	if first != second {
		t.Fatal("GetOrCreate() returned different instances for the same identity")
	}

	// Mutations through one reference are visible through the other.
	first.AddLoadStartedHook(func(apitypes.Tab) {})
	if len(second.LoadStartedHooks()) != 1 {
		t.Error("mutation through first reference not visible through second")
	}
}

func TestRegistry_Get(t *testing.T) {
	r := New()

	if _, ok := r.Get("ext.missing"); ok {
		t.Error("Get() reported a never-registered module")
	}

	created := r.GetOrCreate("ext.adblock")
	got, ok := r.Get("ext.adblock")
	if !ok {
		t.Fatal("Get() did not find a registered module")
	}
	if got != created {
		t.Error("Get() returned a different instance than GetOrCreate()")
	}

	// Get must not create.
	if r.Len() != 1 {
		t.Errorf("Len() = %d after non-creating lookups, want 1", r.Len())
	}
}

func TestRegistry_All_Order(t *testing.T) {
	r := New()

	ids := []ModuleID{"ext.c", "ext.a", "ext.b"}
	for _, id := range ids {
		r.GetOrCreate(id)
	}
	// Re-access must not reorder.
	r.GetOrCreate("ext.c")

	entries := r.All()
	if len(entries) != len(ids) {
		t.Fatalf("All() returned %d entries, want %d", len(entries), len(ids))
	}
	for i, e := range entries {
		if e.ID != ids[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, e.ID, ids[i])
		}
		if e.Hooks == nil {
			t.Errorf("All()[%d].Hooks is nil", i)
		}
	}
}

func TestRegistry_All_IncludesEmptySets(t *testing.T) {
	r := New()

	// Created incidentally, never populated.
	r.GetOrCreate("ext.quiet")

	entries := r.All()
	if len(entries) != 1 {
		t.Fatalf("All() returned %d entries, want 1", len(entries))
	}
	if !entries[0].Hooks.Empty() {
		t.Error("incidentally created set is not empty")
	}
}

func TestRegistry_IndependentModules(t *testing.T) {
	r := New()

	var aRan, bRan bool
	if err := r.GetOrCreate("ext.a").SetInitHook(func(apitypes.InitContext) { aRan = true }); err != nil {
		t.Fatalf("SetInitHook(a) error: %v", err)
	}
	if err := r.GetOrCreate("ext.b").SetInitHook(func(apitypes.InitContext) { bRan = true }); err != nil {
		t.Fatalf("SetInitHook(b) error: %v", err)
	}

	a, _ := r.Get("ext.a")
	a.InitHook()(apitypes.InitContext{})

	if !aRan {
		t.Error("module a's init hook did not run")
	}
	if bRan {
		t.Error("module b's init hook ran when module a was dispatched")
	}
}

func TestRegistry_Reset(t *testing.T) {
	r := New()
	r.GetOrCreate("ext.a")
	r.GetOrCreate("ext.b")

	r.Reset()

	if r.Len() != 0 {
		t.Errorf("Len() = %d after Reset(), want 0", r.Len())
	}
	if len(r.All()) != 0 {
		t.Errorf("All() returned %d entries after Reset()", len(r.All()))
	}

	// A fresh registration starts a new order.
	r.GetOrCreate("ext.b")
	entries := r.All()
	if len(entries) != 1 || entries[0].ID != "ext.b" {
		t.Errorf("All() after Reset and re-register = %v", entries)
	}
}
