// Package optfilter implements option-name filters for config-changed hooks.
//
// A filter restricts which configuration changes trigger a hook. Matching is
// aligned to dot-separated option-path segments: the filter "bindings"
// matches "bindings.commands" and "bindings.key_mappings" but not
// "bindingsextra.foo", and a raw substring like "bind" matches nothing under
// "bindings".
package optfilter

import "strings"

// Filter restricts a config-changed hook to a subtree of option names.
//
// Use Any for a hook that fires on every change and For to scope a hook to
// one option or option prefix. The zero value behaves like For("").
type Filter struct {
	option string
	any    bool
}

// Any returns a filter that matches every option name.
func Any() Filter { return Filter{any: true} }

// For returns a filter scoped to the given option name. It matches the name
// itself and any option below it on a dot-segment boundary.
func For(option string) Filter { return Filter{option: option} }

// IsAny reports whether the filter matches unconditionally.
func (f Filter) IsAny() bool { return f.any }

// Option returns the option name the filter is scoped to. It is empty for
// unconditional filters.
func (f Filter) Option() string {
	if f.any {
		return ""
	}
	return f.option
}

// Matches reports whether a change to the named option triggers hooks
// registered under this filter. A scoped filter matches on exact equality or
// when option begins with the filter followed by a dot.
//
// Comparison is byte-exact: no case folding and no normalization of leading
// or trailing dots. A filter differing from the option only in case does not
// match.
func (f Filter) Matches(option string) bool {
	if f.any {
		return true
	}
	return option == f.option || strings.HasPrefix(option, f.option+".")
}

// String describes the filter for diagnostics.
func (f Filter) String() string {
	if f.any {
		return "<any>"
	}
	return f.option
}
