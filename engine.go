package newt

import (
	"context"

	internal "github.com/jerbob92/wazero-newt/internal"

	"github.com/tetratelabs/wazero"
)

type Engine interface {
	internal.IEngine
	NewFunctionExporter() FunctionExporter
	// Builtin runs `newt [-v varname] SubCommand [args...]` and returns the
	// exit status for the host.
	Builtin(ctx context.Context, args []string) int
}

type EngineKey = internal.EngineKey

// NewRuntime returns a runtime that can call the engine's host exports.
func NewRuntime(ctx context.Context) wazero.Runtime {
	return wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
}

// CreateEngine returns an engine bound to the configured host. The engine
// is usable once Instantiate (or ExportFunctions + UseModule) ran on a
// runtime from NewRuntime.
func CreateEngine(config internal.IEngineConfig) Engine {
	return &wazeroEngine{
		IEngine: internal.CreateEngine(config),
	}
}

// Instantiate is a shortcut for CreateEngine followed by Instantiate on r.
// It fails when r cannot call host exports.
func Instantiate(ctx context.Context, r wazero.Runtime, config internal.IEngineConfig) (Engine, error) {
	e := CreateEngine(config)
	if _, err := e.Instantiate(ctx, r); err != nil {
		return nil, err
	}
	return e, nil
}
