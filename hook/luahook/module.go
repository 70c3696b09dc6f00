package luahook

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modhook/apitypes"
	"github.com/dshills/modhook/optfilter"
	"github.com/dshills/modhook/registry"
)

// ErrorHandler receives failures raised by an extension's Lua callbacks at
// dispatch time.
type ErrorHandler func(extension registry.ModuleID, err error)

// Module injects the hook-declaration functions into one extension's Lua
// state. Every callback declared through it is recorded in the registry
// under the extension's identity.
type Module struct {
	reg     *registry.Registry
	id      registry.ModuleID
	onError ErrorHandler

	L          *lua.LState
	handlerTbl *lua.LTable
	handlerKey string
	nextRef    int
}

// Option configures a Module.
type Option func(*Module)

// WithErrorHandler routes Lua callback failures to fn. Without one,
// failures are discarded; what to do about a failing callback is the
// host's concern, not the registry's.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(m *Module) {
		m.onError = fn
	}
}

// NewModule creates a hook module for the named extension, recording into
// reg.
func NewModule(reg *registry.Registry, extension string, opts ...Option) *Module {
	m := &Module{
		reg:        reg,
		id:         registry.ModuleID(extension),
		handlerKey: "_hook_handlers_" + extension,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the module name used in the Lua state.
func (m *Module) Name() string { return "hook" }

// Extension returns the identity the module registers under.
func (m *Module) Extension() registry.ModuleID { return m.id }

// Register injects the declaration functions into L as the _hook global and
// preloads them as the "hook" module, so require("hook") works. A Module is
// bound to a single state; registering it into a second state is an error.
func (m *Module) Register(L *lua.LState) error {
	if m.L != nil && m.L != L {
		return fmt.Errorf("hook module for extension %q is already bound to another state", m.id)
	}
	m.L = L

	// Handler table pins declared callbacks against Lua GC.
	m.handlerTbl = L.NewTable()
	L.SetGlobal(m.handlerKey, m.handlerTbl)

	mod := L.NewTable()
	L.SetField(mod, "init", L.NewFunction(m.init))
	L.SetField(mod, "config_changed", L.NewFunction(m.configChanged))
	L.SetField(mod, "before_load", L.NewFunction(m.beforeLoad))
	L.SetField(mod, "load_started", L.NewFunction(m.loadStarted))
	L.SetField(mod, "load_finished", L.NewFunction(m.loadFinished))
	L.SetGlobal("_hook", mod)

	L.PreloadModule("hook", func(L *lua.LState) int {
		L.Push(mod)
		return 1
	})

	return nil
}

// Cleanup drops the handler references so the callbacks can be collected.
// The host calls it after a wholesale registry rebuild, before discarding
// the extension's state.
func (m *Module) Cleanup() {
	if m.L != nil {
		m.L.SetGlobal(m.handlerKey, lua.LNil)
	}
	m.L = nil
	m.handlerTbl = nil
}

// hooks fetches or creates the extension's hook set.
func (m *Module) hooks() *registry.HookSet {
	return m.reg.GetOrCreate(m.id)
}

// pin stores a declared callback in the handler table so Lua GC cannot
// reclaim it while the registry still references its wrapper.
func (m *Module) pin(fn *lua.LFunction) {
	m.nextRef++
	m.handlerTbl.RawSetInt(m.nextRef, fn)
}

// call invokes a pinned Lua callback. Must run on the goroutine that owns
// the state.
func (m *Module) call(fn *lua.LFunction, args ...lua.LValue) {
	if m.L == nil {
		return
	}
	err := m.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if err != nil && m.onError != nil {
		m.onError(m.id, err)
	}
}

// init implements hook.init(fn).
func (m *Module) init(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.pin(fn)

	wrapper := func(ctx apitypes.InitContext) {
		m.call(fn, m.luaInitContext(ctx))
	}
	if err := m.hooks().SetInitHook(wrapper); err != nil {
		L.RaiseError("extension %q: %v", m.id, err)
	}

	L.Push(fn)
	return 1
}

// configChanged implements hook.config_changed(fn) and
// hook.config_changed(option, fn).
func (m *Module) configChanged(L *lua.LState) int {
	var filter optfilter.Filter
	var fn *lua.LFunction

	if L.GetTop() >= 2 {
		filter = optfilter.For(L.CheckString(1))
		fn = L.CheckFunction(2)
	} else {
		filter = optfilter.Any()
		fn = L.CheckFunction(1)
	}
	m.pin(fn)

	m.hooks().AddConfigChangedHook(filter, func() {
		m.call(fn)
	})

	L.Push(fn)
	return 1
}

// beforeLoad implements hook.before_load(fn).
func (m *Module) beforeLoad(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.pin(fn)

	m.hooks().AddBeforeLoadHook(func(tab apitypes.Tab, url apitypes.URL) {
		m.call(fn, m.luaTab(tab), lua.LString(url))
	})

	L.Push(fn)
	return 1
}

// loadStarted implements hook.load_started(fn).
func (m *Module) loadStarted(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.pin(fn)

	m.hooks().AddLoadStartedHook(func(tab apitypes.Tab) {
		m.call(fn, m.luaTab(tab))
	})

	L.Push(fn)
	return 1
}

// loadFinished implements hook.load_finished(fn).
func (m *Module) loadFinished(L *lua.LState) int {
	fn := L.CheckFunction(1)
	m.pin(fn)

	m.hooks().AddLoadFinishedHook(func(tab apitypes.Tab, ok bool) {
		m.call(fn, m.luaTab(tab), lua.LBool(ok))
	})

	L.Push(fn)
	return 1
}

// luaTab marshals the host's opaque tab value for a Lua callback. Values
// that are already Lua values pass through; everything else is wrapped in
// userdata the extension can hand back to the host.
func (m *Module) luaTab(tab apitypes.Tab) lua.LValue {
	if tab == nil {
		return lua.LNil
	}
	if lv, ok := tab.(lua.LValue); ok {
		return lv
	}
	ud := m.L.NewUserData()
	ud.Value = tab
	return ud
}

// luaInitContext marshals an InitContext into a Lua table.
func (m *Module) luaInitContext(ctx apitypes.InitContext) lua.LValue {
	args := m.L.NewTable()
	for _, a := range ctx.Args {
		args.Append(lua.LString(a))
	}

	tbl := m.L.NewTable()
	m.L.SetField(tbl, "args", args)
	m.L.SetField(tbl, "config_dir", lua.LString(ctx.ConfigDir))
	m.L.SetField(tbl, "data_dir", lua.LString(ctx.DataDir))
	return tbl
}
