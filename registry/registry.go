package registry

// ModuleID identifies the extension module that defined a callback. Two
// callbacks from the same module resolve to the same ModuleID; callbacks
// from different modules never collide.
type ModuleID string

// Entry pairs a module identity with its hook set, for iteration.
type Entry struct {
	ID    ModuleID
	Hooks *HookSet
}

// Registry maps extension module identities to their hook sets. It mirrors
// the set of currently loaded extension modules: populated during module
// load, read during dispatch, rebuilt wholesale on extension reload.
type Registry struct {
	modules map[ModuleID]*HookSet
	order   []ModuleID
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[ModuleID]*HookSet)}
}

// GetOrCreate returns the hook set for the given module, creating an empty
// one on first access. Repeated calls with the same identity return the same
// *HookSet, so mutations through any reference are visible through all of
// them. Creation never fails.
func (r *Registry) GetOrCreate(id ModuleID) *HookSet {
	if set, ok := r.modules[id]; ok {
		return set
	}
	set := &HookSet{}
	r.modules[id] = set
	r.order = append(r.order, id)
	return set
}

// Get returns the hook set for the given module without creating one. The
// host uses it for event dispatch.
func (r *Registry) Get(id ModuleID) (*HookSet, bool) {
	set, ok := r.modules[id]
	return set, ok
}

// All returns every registered module with its hook set, in registration
// order, for broadcasting an event across all extensions. Modules whose
// sets are still empty are included.
func (r *Registry) All() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, Entry{ID: id, Hooks: r.modules[id]})
	}
	return entries
}

// Len returns the number of registered modules.
func (r *Registry) Len() int { return len(r.order) }

// Reset discards every registration. The host calls this when unloading or
// reloading all extensions; per-module removal is deliberately unsupported.
func (r *Registry) Reset() {
	r.modules = make(map[ModuleID]*HookSet)
	r.order = nil
}
