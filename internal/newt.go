package newt

import (
	"context"
	"fmt"
	"io"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

type IEngine interface {
	Attach(ctx context.Context) context.Context
	// Dispatch runs the command name (already lower-cased) with args,
	// binding its primary result to resultVar when that is not empty.
	Dispatch(ctx context.Context, name string, resultVar string, args []string) error
	ExportFunctions(b wazero.HostModuleBuilder) error
	UseModule(ctx context.Context, mod api.Module) error
	Instantiate(ctx context.Context, r wazero.Runtime) (api.Module, error)
	RegisterNative(name string, params, results []Kind, fn NativeFunc) error
	RegisterCommand(name, native, usage string) error
	Commands() []string
	GetConstants() []IConstant
	Toolkit() *toolkit.Toolkit
	Host() Host
	Stderr() io.Writer
	Initialized() bool
	LiveHandles() int
	LiveTexts() int
	LiveCallbacks() int
}

func GetEngineFromContext(ctx context.Context) (IEngine, error) {
	raw := ctx.Value(EngineKey{})
	if raw == nil {
		return nil, fmt.Errorf("newt engine not found in context")
	}

	value, ok := raw.(IEngine)
	if !ok {
		return nil, fmt.Errorf("context value %v not of type %T", raw, new(IEngine))
	}

	return value, nil
}

func MustGetEngineFromContext(ctx context.Context) IEngine {
	e, err := GetEngineFromContext(ctx)
	if err != nil {
		panic(fmt.Errorf("could not get newt engine from context: %w, make sure to create an engine with newt.CreateEngine() and to attach it to the context with \"ctx = engine.Attach(ctx)\"", err))
	}
	return e
}

// EngineKey Use this key to add the engine to your context:
// ctx = context.WithValue(ctx, newt.EngineKey{}, engine)
type EngineKey struct{}
