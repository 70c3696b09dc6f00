// Package apitypes declares the value types handed through to extension
// hooks.
//
// The hook core treats all of these as opaque: it stores callbacks and passes
// these values to them at dispatch time without inspecting their contents.
// Hosts supply their own concrete tab representation; hooks that need more
// than identity assert the type they expect.
package apitypes

// URL is the address a tab is about to load or has loaded.
type URL string

// String returns the URL as a plain string.
func (u URL) String() string { return string(u) }

// Tab is the host's tab object. The hook core never inspects it.
type Tab any

// InitContext carries startup information passed to init hooks.
type InitContext struct {
	// Args are the host's remaining command-line arguments.
	Args []string

	// ConfigDir is the host's configuration directory.
	ConfigDir string

	// DataDir is the host's data directory.
	DataDir string
}
