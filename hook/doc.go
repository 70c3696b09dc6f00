// Package hook lets extension modules declare interest in host lifecycle
// events without a central dispatcher knowing about them in advance.
//
// An extension module declares hooks at load time, typically from an init
// function:
//
//	func init() {
//		hook.Init(onInit)
//		hook.ConfigChanged("bindings", onBindingsChanged)
//		hook.ConfigChangedAll(onAnyConfigChanged)
//		hook.BeforeLoad(onBeforeLoad)
//		hook.LoadFinished(onLoadFinished)
//	}
//
// Each declaration resolves the calling module's identity, records the
// callback in that module's hook set, and returns the callback unchanged,
// so declarations compose as non-invasive annotations.
//
// The host later queries the registry for dispatch:
//
//	for _, entry := range hook.Default().Registry().All() {
//		if h := entry.Hooks.InitHook(); h != nil {
//			h(ctx)
//		}
//	}
//
// and, for a changed option:
//
//	for _, h := range entry.Hooks.ConfigChangedHooksFor("content.javascript.enabled") {
//		h()
//	}
//
// # Registration contract
//
// Registration must happen during single-threaded module load, strictly
// before dispatch begins; see the registry package for the full concurrency
// contract. Declaring a second init hook for one module, or declaring a hook
// whose defining module cannot be resolved, is a programming error: the
// declaration panics immediately rather than deferring the failure to
// dispatch time. Existing registrations are never corrupted by a failed
// declaration.
package hook
