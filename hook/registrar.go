package hook

import (
	"fmt"

	"github.com/dshills/modhook/optfilter"
	"github.com/dshills/modhook/registry"
)

// Registrar records hook declarations into a registry, resolving each
// callback's defining module through its Resolver.
type Registrar struct {
	reg      *registry.Registry
	resolver Resolver
}

// NewRegistrar creates a registrar recording into reg, resolving module
// identity with resolver.
func NewRegistrar(reg *registry.Registry, resolver Resolver) *Registrar {
	return &Registrar{reg: reg, resolver: resolver}
}

// Registry returns the registry the registrar records into. The host uses
// it for event dispatch.
func (r *Registrar) Registry() *registry.Registry { return r.reg }

// hookSetFor resolves the callback's defining module and fetches or creates
// its hook set. Resolution failure is a programming error and panics.
func (r *Registrar) hookSetFor(callback any) *registry.HookSet {
	id, err := r.resolver.ResolveModule(callback)
	if err != nil {
		panic(fmt.Errorf("hook: %w", err))
	}
	return r.reg.GetOrCreate(id)
}

// Init declares a hook that runs when the host finishes initializing. A
// module may declare at most one init hook; a second declaration panics
// with an error wrapping registry.ErrDuplicateInitHook, leaving the first
// registration intact. The callback is returned unchanged.
func (r *Registrar) Init(fn registry.InitHook) registry.InitHook {
	if err := r.hookSetFor(fn).SetInitHook(fn); err != nil {
		panic(fmt.Errorf("hook: %w", err))
	}
	return fn
}

// ConfigChanged declares a hook that runs when the named option, or any
// option below it on a dot-segment boundary, changes. A module may declare
// any number of config-changed hooks, including duplicates; all matching
// hooks fire in declaration order. The callback is returned unchanged.
func (r *Registrar) ConfigChanged(option string, fn registry.ConfigChangedHook) registry.ConfigChangedHook {
	r.hookSetFor(fn).AddConfigChangedHook(optfilter.For(option), fn)
	return fn
}

// ConfigChangedAll declares a hook that runs on every configuration change.
// The callback is returned unchanged.
func (r *Registrar) ConfigChangedAll(fn registry.ConfigChangedHook) registry.ConfigChangedHook {
	r.hookSetFor(fn).AddConfigChangedHook(optfilter.Any(), fn)
	return fn
}

// BeforeLoad declares a hook that runs right before a tab loads a page. The
// hook may run multiple times before a single navigation completes. The
// callback is returned unchanged.
func (r *Registrar) BeforeLoad(fn registry.BeforeLoadHook) registry.BeforeLoadHook {
	r.hookSetFor(fn).AddBeforeLoadHook(fn)
	return fn
}

// LoadStarted declares a hook that runs when a tab starts loading a page.
// The callback is returned unchanged.
func (r *Registrar) LoadStarted(fn registry.LoadStartedHook) registry.LoadStartedHook {
	r.hookSetFor(fn).AddLoadStartedHook(fn)
	return fn
}

// LoadFinished declares a hook that runs when a tab finishes loading a
// page. The callback is returned unchanged.
func (r *Registrar) LoadFinished(fn registry.LoadFinishedHook) registry.LoadFinishedHook {
	r.hookSetFor(fn).AddLoadFinishedHook(fn)
	return fn
}
