package hook

import "github.com/dshills/modhook/registry"

// std is the process-wide registrar: initialized empty at process start,
// populated during extension load, read by the host during dispatch.
var std = NewRegistrar(registry.New(), PackageResolver{})

// Default returns the process-wide registrar. The package-level declaration
// functions delegate to it.
func Default() *Registrar { return std }

// Reset discards every registration in the process-wide registrar. The host
// calls it before reloading extensions en masse; there is no per-module
// removal.
func Reset() { std.Registry().Reset() }

// Init declares an init hook in the process-wide registrar.
func Init(fn registry.InitHook) registry.InitHook { return std.Init(fn) }

// ConfigChanged declares a filtered config-changed hook in the process-wide
// registrar.
func ConfigChanged(option string, fn registry.ConfigChangedHook) registry.ConfigChangedHook {
	return std.ConfigChanged(option, fn)
}

// ConfigChangedAll declares an unconditional config-changed hook in the
// process-wide registrar.
func ConfigChangedAll(fn registry.ConfigChangedHook) registry.ConfigChangedHook {
	return std.ConfigChangedAll(fn)
}

// BeforeLoad declares a before-load hook in the process-wide registrar.
func BeforeLoad(fn registry.BeforeLoadHook) registry.BeforeLoadHook { return std.BeforeLoad(fn) }

// LoadStarted declares a load-started hook in the process-wide registrar.
func LoadStarted(fn registry.LoadStartedHook) registry.LoadStartedHook { return std.LoadStarted(fn) }

// LoadFinished declares a load-finished hook in the process-wide registrar.
func LoadFinished(fn registry.LoadFinishedHook) registry.LoadFinishedHook {
	return std.LoadFinished(fn)
}
