// Package luahook exposes the hook-declaration API to extension modules
// written in Lua.
//
// The host creates one Module per Lua extension and injects it into the
// extension's state before running its entry script:
//
//	reg := registry.New()
//	m := luahook.NewModule(reg, "adblock")
//	if err := m.Register(L); err != nil {
//		return err
//	}
//
// The extension then declares hooks the same way a Go module would:
//
//	local hook = require("hook")
//
//	hook.init(function(ctx)
//		print("starting with config in " .. ctx.config_dir)
//	end)
//
//	hook.config_changed("bindings", function()
//		rebuild_bindings()
//	end)
//
//	hook.before_load(function(tab, url)
//		print("loading " .. url)
//	end)
//
// Each declaration returns the callback unchanged. All callbacks land in
// the registry under the extension's identity; declared callbacks are
// pinned in a per-extension handler table so Lua garbage collection cannot
// reclaim them while the registry still references their wrappers.
//
// # Thread safety
//
// An LState is not goroutine-safe. The wrappers stored in the registry call
// back into the extension's state, so the host must run every dispatch that
// can reach a Lua extension on the goroutine that owns that extension's
// state.
package luahook
