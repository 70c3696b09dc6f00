package registry

import (
	"github.com/dshills/modhook/apitypes"
	"github.com/dshills/modhook/optfilter"
)

// InitHook runs once when the host finishes initializing.
type InitHook func(ctx apitypes.InitContext)

// ConfigChangedHook runs when a configuration option matching its filter
// changes.
type ConfigChangedHook func()

// BeforeLoadHook runs right before a tab loads a page. It may run multiple
// times before a single navigation completes.
type BeforeLoadHook func(tab apitypes.Tab, url apitypes.URL)

// LoadStartedHook runs when a tab starts loading a page.
type LoadStartedHook func(tab apitypes.Tab)

// LoadFinishedHook runs when a tab finishes loading a page. ok reports
// whether the page loaded correctly.
type LoadFinishedHook func(tab apitypes.Tab, ok bool)

// ConfigChangedEntry pairs a config-changed hook with its filter. The filter
// is fixed at registration time.
type ConfigChangedEntry struct {
	Filter optfilter.Filter
	Hook   ConfigChangedHook
}

// HookSet accumulates the hooks one extension module has registered. Lists
// are append-only; registration order is invocation order. Accessors return
// copies so the host's dispatch loop cannot disturb registration state.
type HookSet struct {
	initHook      InitHook
	configChanged []ConfigChangedEntry
	beforeLoad    []BeforeLoadHook
	loadStarted   []LoadStartedHook
	loadFinished  []LoadFinishedHook
}

// SetInitHook stores the module's init hook. A module gets at most one init
// hook for the lifetime of the registry; a second registration returns
// ErrDuplicateInitHook and leaves the first in place.
func (s *HookSet) SetInitHook(h InitHook) error {
	if s.initHook != nil {
		return ErrDuplicateInitHook
	}
	s.initHook = h
	return nil
}

// InitHook returns the module's init hook, or nil if none is registered.
func (s *HookSet) InitHook() InitHook { return s.initHook }

// AddConfigChangedHook appends a config-changed hook. Duplicate filters are
// allowed; every matching entry fires at dispatch time.
func (s *HookSet) AddConfigChangedHook(filter optfilter.Filter, h ConfigChangedHook) {
	s.configChanged = append(s.configChanged, ConfigChangedEntry{Filter: filter, Hook: h})
}

// ConfigChangedHooks returns every config-changed entry in registration
// order.
func (s *HookSet) ConfigChangedHooks() []ConfigChangedEntry {
	out := make([]ConfigChangedEntry, len(s.configChanged))
	copy(out, s.configChanged)
	return out
}

// ConfigChangedHooksFor returns, in registration order, the config-changed
// hooks whose filter matches the changed option name. The host calls this
// from its config-change dispatch loop.
func (s *HookSet) ConfigChangedHooksFor(option string) []ConfigChangedHook {
	var hooks []ConfigChangedHook
	for _, e := range s.configChanged {
		if e.Filter.Matches(option) {
			hooks = append(hooks, e.Hook)
		}
	}
	return hooks
}

// AddBeforeLoadHook appends a before-load hook.
func (s *HookSet) AddBeforeLoadHook(h BeforeLoadHook) {
	s.beforeLoad = append(s.beforeLoad, h)
}

// BeforeLoadHooks returns the before-load hooks in registration order.
func (s *HookSet) BeforeLoadHooks() []BeforeLoadHook {
	out := make([]BeforeLoadHook, len(s.beforeLoad))
	copy(out, s.beforeLoad)
	return out
}

// AddLoadStartedHook appends a load-started hook.
func (s *HookSet) AddLoadStartedHook(h LoadStartedHook) {
	s.loadStarted = append(s.loadStarted, h)
}

// LoadStartedHooks returns the load-started hooks in registration order.
func (s *HookSet) LoadStartedHooks() []LoadStartedHook {
	out := make([]LoadStartedHook, len(s.loadStarted))
	copy(out, s.loadStarted)
	return out
}

// AddLoadFinishedHook appends a load-finished hook.
func (s *HookSet) AddLoadFinishedHook(h LoadFinishedHook) {
	s.loadFinished = append(s.loadFinished, h)
}

// LoadFinishedHooks returns the load-finished hooks in registration order.
func (s *HookSet) LoadFinishedHooks() []LoadFinishedHook {
	out := make([]LoadFinishedHook, len(s.loadFinished))
	copy(out, s.loadFinished)
	return out
}

// Empty reports whether the set has no registrations of any kind.
func (s *HookSet) Empty() bool {
	return s.initHook == nil &&
		len(s.configChanged) == 0 &&
		len(s.beforeLoad) == 0 &&
		len(s.loadStarted) == 0 &&
		len(s.loadFinished) == 0
}
