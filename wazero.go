package newt

import (
	internal "github.com/jerbob92/wazero-newt/internal"

	"github.com/tetratelabs/wazero"
)

type wazeroEngine struct {
	internal.IEngine
}

func (we *wazeroEngine) NewFunctionExporter() FunctionExporter {
	return &functionExporter{
		engine: we.IEngine,
	}
}

// FunctionExporter adds the native library to a host module. Use it when
// the newt functions share a module with other host functions; otherwise
// Engine.Instantiate builds the module itself.
type FunctionExporter interface {
	// ExportFunctions adds one host function per native to b. Call
	// Engine.UseModule with the instantiated module afterwards.
	ExportFunctions(wazero.HostModuleBuilder) error
}

type functionExporter struct {
	engine internal.IEngine
}

// ExportFunctions implements FunctionExporter.ExportFunctions
func (e functionExporter) ExportFunctions(b wazero.HostModuleBuilder) error {
	return e.engine.ExportFunctions(b)
}
