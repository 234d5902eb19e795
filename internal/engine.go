package newt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"
)

type engine struct {
	config      IEngineConfig
	mod         api.Module
	fns         map[string]api.Function
	types       map[Kind]registeredType
	natives     map[string]*nativeFunction
	commands    []wrapperSpec
	handles     *handleRegistry
	texts       *textTable
	bridge      *bridge
	dispatch    *dispatchTable
	host        Host
	tk          *toolkit.Toolkit
	initialized bool
	nativeErr   error
	log         *zap.Logger
}

func (e *engine) Attach(ctx context.Context) context.Context {
	return context.WithValue(ctx, EngineKey{}, e)
}

func (e *engine) Toolkit() *toolkit.Toolkit {
	return e.tk
}

func (e *engine) Host() Host {
	return e.host
}

func (e *engine) Stderr() io.Writer {
	return e.config.GetStderr()
}

// Initialized reports whether Init ran without a matching Finished.
func (e *engine) Initialized() bool {
	return e.initialized
}

// LiveHandles is the number of handles the host currently holds.
func (e *engine) LiveHandles() int {
	return e.handles.Len()
}

// LiveTexts is the number of text slots in use. Zero between dispatches.
func (e *engine) LiveTexts() int {
	return e.texts.live()
}

// LiveCallbacks is the number of per-handle callback registrations.
func (e *engine) LiveCallbacks() int {
	return e.bridge.registrations()
}

// RegisterNative adds a native before the module is exported.
func (e *engine) RegisterNative(name string, params, results []Kind, fn NativeFunc) error {
	if e.dispatch != nil {
		return fmt.Errorf("could not register native %s, functions were already exported", name)
	}
	return e.registerNative(name, params, results, fn)
}

// RegisterCommand adds a command that walks the native's parameters and
// binds its first result to the -v variable.
func (e *engine) RegisterCommand(name, native, usage string) error {
	if e.dispatch != nil {
		return fmt.Errorf("could not register command %s, functions were already exported", name)
	}
	if _, ok := e.natives[native]; !ok {
		return fmt.Errorf("could not register command %s, native %s is not registered", name, native)
	}
	e.commands = append(e.commands, wrapperSpec{Name: name, Native: native, Style: styleReturn, Usage: usage})
	return nil
}

func (e *engine) nativeNames() []string {
	names := make([]string, 0, len(e.natives))
	for name := range e.natives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Commands lists every dispatchable command name.
func (e *engine) Commands() []string {
	if e.dispatch == nil {
		return nil
	}
	return e.dispatch.Names()
}

// ExportFunctions freezes the dispatch table and adds every native to b.
func (e *engine) ExportFunctions(b wazero.HostModuleBuilder) error {
	if e.dispatch != nil {
		return fmt.Errorf("functions were already exported")
	}

	specs := append(append([]wrapperSpec{}, catalogCommands...), e.commands...)
	for _, spec := range specs {
		if _, ok := e.natives[spec.Native]; !ok {
			return fmt.Errorf("command %s uses unknown native %s", spec.Name, spec.Native)
		}
	}

	e.dispatch = newDispatchTable(buildEntries(specs, customCommands(), catalogAliases))
	e.exportNatives(b)
	return nil
}

// UseModule sets the instantiated host module the adapter calls into. It
// fails when the runtime cannot call the module's host exports, which is
// the case for the compiler engine: use wazero.NewRuntimeConfigInterpreter.
func (e *engine) UseModule(ctx context.Context, mod api.Module) error {
	fns, err := exportedNatives(mod, e.nativeNames())
	if err != nil {
		return err
	}
	e.mod = mod
	e.fns = fns
	return e.bindConstants()
}

func exportedNatives(mod api.Module, names []string) (fns map[string]api.Function, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("runtime cannot call host exports of module %s (use wazero.NewRuntimeConfigInterpreter()): %v", mod.Name(), r)
		}
	}()

	fns = make(map[string]api.Function, len(names))
	for _, name := range names {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			return nil, fmt.Errorf("native %s is not exported by module %s", name, mod.Name())
		}
		fns[name] = fn
	}
	return fns, nil
}

// Instantiate exports the natives as a host module on r and binds the
// NEWT_* constants into the host. r must be built with
// wazero.NewRuntimeConfigInterpreter().
func (e *engine) Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	b := r.NewHostModuleBuilder(e.config.GetModuleName())
	if err := e.ExportFunctions(b); err != nil {
		return nil, err
	}
	mod, err := b.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not instantiate host module %s: %w", e.config.GetModuleName(), err)
	}
	if err := e.UseModule(ctx, mod); err != nil {
		_ = mod.Close(ctx)
		return nil, err
	}
	return mod, nil
}

// Dispatch runs one command. name must already be lower-cased. resultVar
// may be empty.
func (e *engine) Dispatch(ctx context.Context, name string, resultVar string, args []string) error {
	if e.dispatch == nil {
		return fmt.Errorf("engine is not instantiated")
	}

	ctx = e.Attach(ctx)

	entry, ok := e.dispatch.Lookup(name)
	if !ok {
		return newError(PhaseDispatch, KindUnknownCommand).Command(name, "").Build()
	}

	e.log.Debug("dispatch", zap.String("command", entry.name), zap.Strings("args", args))

	c := &call{
		command:   entry.name,
		usage:     entry.usage,
		args:      NewArgumentSequence(args),
		resultVar: resultVar,
	}

	err := entry.fn(ctx, e, c)
	if err != nil && isInvalidHandle(err) {
		e.log.Warn("rejected handle token", zap.String("command", entry.name), zap.Error(err))
	}
	return err
}

func (e *engine) destroyed(addr uint64) {
	e.handles.Invalidate(addr)
	e.bridge.drop(addr)
}

func (e *engine) registerTypes() {
	types := []registeredType{
		&voidType{baseType: baseType{kind: KindVoid}},
		&intType{baseType: baseType{kind: KindInt, nativeType: api.ValueTypeI32}, size: 4, signed: true},
		&intType{baseType: baseType{kind: KindUint, nativeType: api.ValueTypeI32}, size: 4, signed: false},
		&intType{baseType: baseType{kind: KindLongLong, nativeType: api.ValueTypeI64}, size: 8, signed: true},
		&intType{baseType: baseType{kind: KindULongLong, nativeType: api.ValueTypeI64}, size: 8, signed: false},
		&charType{baseType: baseType{kind: KindChar, nativeType: api.ValueTypeI32}},
		&textType{baseType: baseType{kind: KindText, nativeType: api.ValueTypeI32}},
		newHandleType[toolkit.Component](KindComponent, "toolkit.Component"),
		newHandleType[toolkit.Grid](KindGrid, "toolkit.Grid"),
		&cookieType{baseType: baseType{kind: KindCookie, nativeType: api.ValueTypeI64}},
		newEnumType[toolkit.FlagsSense](KindSense, "toolkit.FlagsSense"),
		newEnumType[toolkit.GridElement](KindGridElement, "toolkit.GridElement"),
		&callbackType{baseType: baseType{kind: KindFilter, nativeType: api.ValueTypeI32}, goType: "toolkit.EntryFilter", accepts: []CallbackSlot{slotEntryFilter}},
		&callbackType{baseType: baseType{kind: KindSuspend, nativeType: api.ValueTypeI32}, goType: "toolkit.SuspendCallback", accepts: []CallbackSlot{slotSuspend}},
		&callbackType{baseType: baseType{kind: KindCallback, nativeType: api.ValueTypeI32}, goType: "toolkit.Callback", accepts: []CallbackSlot{slotComponentEvent, slotHelp, slotDestroy}},
	}
	for _, t := range types {
		e.types[t.Kind()] = t
	}
}

// CreateEngine returns a new engine. It panics when the config has no host
// or the catalog does not register cleanly.
func CreateEngine(config IEngineConfig) IEngine {
	if config == nil {
		config = NewConfig()
	}
	if config.GetHost() == nil {
		panic(errors.New("could not create engine: no host configured, use NewConfig().WithHost()"))
	}

	tk := config.GetToolkit()
	if tk == nil {
		tk = toolkit.New(toolkit.NewConfig())
	}

	log := config.GetLogger()

	e := &engine{
		config:  config,
		types:   map[Kind]registeredType{},
		natives: map[string]*nativeFunction{},
		handles: newHandleRegistry(log),
		texts:   newTextTable(),
		host:    config.GetHost(),
		tk:      tk,
		log:     log,
	}
	e.bridge = newBridge(e, log)
	e.registerTypes()

	for i := range catalogNatives {
		nf := catalogNatives[i]
		if err := e.registerNative(nf.Name, nf.Params, nf.Results, nf.Call); err != nil {
			panic(err)
		}
	}
	if err := e.registerHandNatives(); err != nil {
		panic(err)
	}

	tk.OnDestroy(e.destroyed)

	return e
}
