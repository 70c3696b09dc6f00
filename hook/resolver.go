package hook

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/dshills/modhook/registry"
)

// ErrUnresolvableModule is returned when a callback's defining module cannot
// be determined. It indicates a programming error and surfaces at
// registration time.
var ErrUnresolvableModule = errors.New("cannot resolve defining module")

// Resolver determines which extension module defined a callback. It must be
// deterministic and stable: repeated calls for callbacks from the same
// module return the same identity.
type Resolver interface {
	ResolveModule(callback any) (registry.ModuleID, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(callback any) (registry.ModuleID, error)

// ResolveModule implements Resolver.
func (f ResolverFunc) ResolveModule(callback any) (registry.ModuleID, error) {
	return f(callback)
}

// StaticResolver resolves every callback to a fixed module identity. Hosts
// that load one extension at a time bind a StaticResolver for the duration
// of that extension's load instead of introspecting callbacks.
type StaticResolver registry.ModuleID

// ResolveModule implements Resolver.
func (s StaticResolver) ResolveModule(any) (registry.ModuleID, error) {
	if s == "" {
		return "", fmt.Errorf("static resolver has empty identity: %w", ErrUnresolvableModule)
	}
	return registry.ModuleID(s), nil
}

// PackageResolver derives a callback's identity from the import path of the
// package that defined it, via the runtime's function symbol table. Two
// functions from the same package resolve to the same identity, functions
// from different packages never collide, and resolution is stable across
// calls.
type PackageResolver struct{}

// ResolveModule implements Resolver. It fails for nil values and for values
// that are not functions.
func (PackageResolver) ResolveModule(callback any) (registry.ModuleID, error) {
	if callback == nil {
		return "", fmt.Errorf("nil callback: %w", ErrUnresolvableModule)
	}
	v := reflect.ValueOf(callback)
	if v.Kind() != reflect.Func {
		return "", fmt.Errorf("callback %T is not a function: %w", callback, ErrUnresolvableModule)
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return "", fmt.Errorf("callback has no symbol: %w", ErrUnresolvableModule)
	}
	pkg := packageOf(fn.Name())
	if pkg == "" {
		return "", fmt.Errorf("symbol %q has no package: %w", fn.Name(), ErrUnresolvableModule)
	}
	return registry.ModuleID(pkg), nil
}

// packageOf extracts the package import path from a runtime symbol name such
// as "example.com/ext/adblock.onConfigChanged" or
// "example.com/ext/adblock.(*blocker).init-fm". The path is everything up to
// the first dot after the final slash; method receivers and closure suffixes
// all come after that dot.
func packageOf(symbol string) string {
	slash := strings.LastIndexByte(symbol, '/')
	dot := strings.IndexByte(symbol[slash+1:], '.')
	if dot < 0 {
		return ""
	}
	return symbol[:slash+1+dot]
}
