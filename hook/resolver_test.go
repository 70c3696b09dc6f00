package hook

import (
	"errors"
	"testing"

	"github.com/dshills/modhook/apitypes"
	"github.com/dshills/modhook/registry"
)

const thisPackage = registry.ModuleID("github.com/dshills/modhook/hook")

func namedCallbackA(apitypes.InitContext) {}

func namedCallbackB() {}

func TestPackageResolver_SamePackage(t *testing.T) {
	var r PackageResolver

	a, err := r.ResolveModule(namedCallbackA)
	if err != nil {
		t.Fatalf("ResolveModule(namedCallbackA) error: %v", err)
	}
	b, err := r.ResolveModule(namedCallbackB)
	if err != nil {
		t.Fatalf("ResolveModule(namedCallbackB) error: %v", err)
	}

	if a != b {
		t.Errorf("callbacks from one package resolved to %q and %q", a, b)
	}
	if a != thisPackage {
		t.Errorf("ResolveModule() = %q, want %q", a, thisPackage)
	}
}

func TestPackageResolver_Closure(t *testing.T) {
	var r PackageResolver

	closure := func() {}
	id, err := r.ResolveModule(closure)
	if err != nil {
		t.Fatalf("ResolveModule(closure) error: %v", err)
	}
	if id != thisPackage {
		t.Errorf("ResolveModule(closure) = %q, want %q", id, thisPackage)
	}
}

func TestPackageResolver_Stable(t *testing.T) {
	var r PackageResolver

	first, err := r.ResolveModule(namedCallbackA)
	if err != nil {
		t.Fatalf("ResolveModule() error: %v", err)
	}
	second, err := r.ResolveModule(namedCallbackA)
	if err != nil {
		t.Fatalf("ResolveModule() error: %v", err)
	}
	if first != second {
		t.Errorf("repeated resolution gave %q then %q", first, second)
	}
}

func TestPackageResolver_Unresolvable(t *testing.T) {
	var r PackageResolver

	tests := []struct {
		name     string
		callback any
	}{
		{"nil", nil},
		{"non-function", 42},
		{"string", "not a func"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ResolveModule(tt.callback)
			if !errors.Is(err, ErrUnresolvableModule) {
				t.Errorf("ResolveModule(%v) error = %v, want ErrUnresolvableModule", tt.callback, err)
			}
		})
	}
}

func TestStaticResolver(t *testing.T) {
	r := StaticResolver("ext.adblock")

	id, err := r.ResolveModule(namedCallbackB)
	if err != nil {
		t.Fatalf("ResolveModule() error: %v", err)
	}
	if id != "ext.adblock" {
		t.Errorf("ResolveModule() = %q, want %q", id, "ext.adblock")
	}

	// Identity is independent of the callback.
	other, err := r.ResolveModule(func() {})
	if err != nil {
		t.Fatalf("ResolveModule() error: %v", err)
	}
	if other != id {
		t.Errorf("static resolver gave %q and %q", id, other)
	}
}

func TestStaticResolver_Empty(t *testing.T) {
	r := StaticResolver("")
	if _, err := r.ResolveModule(namedCallbackB); !errors.Is(err, ErrUnresolvableModule) {
		t.Errorf("empty StaticResolver error = %v, want ErrUnresolvableModule", err)
	}
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(any) (registry.ModuleID, error) {
		return "ext.custom", nil
	})

	id, err := r.ResolveModule(nil)
	if err != nil {
		t.Fatalf("ResolveModule() error: %v", err)
	}
	if id != "ext.custom" {
		t.Errorf("ResolveModule() = %q, want %q", id, "ext.custom")
	}
}

func TestPackageOf(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"example.com/ext/adblock.onConfigChanged", "example.com/ext/adblock"},
		{"example.com/ext/adblock.(*blocker).init-fm", "example.com/ext/adblock"},
		{"example.com/ext/adblock.TestX.func1", "example.com/ext/adblock"},
		{"main.main", "main"},
		{"noDotsAtAll", ""},
	}

	for _, tt := range tests {
		if got := packageOf(tt.symbol); got != tt.want {
			t.Errorf("packageOf(%q) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}
