package newt

//go:generate go run ../generator -catalog ../generator/catalog.yaml -out catalog_generated.go

import (
	"context"
	"fmt"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// NativeFunc runs one toolkit call. args hold the native-side Go values
// of the parameters, in order; the returned slice holds one value per
// result kind.
type NativeFunc func(ctx context.Context, tk *toolkit.Toolkit, args []any) ([]any, error)

type nativeFunction struct {
	Name    string
	Params  []Kind
	Results []Kind
	Call    NativeFunc
}

func (nf *nativeFunction) paramNames() []string {
	names := make([]string, len(nf.Params))
	for i, k := range nf.Params {
		names[i] = fmt.Sprintf("%s%d", k, i)
	}
	return names
}

// registerNative adds a native to the engine. void results are dropped so
// the wire signature only carries real values.
func (e *engine) registerNative(name string, params, results []Kind, fn NativeFunc) error {
	if _, ok := e.natives[name]; ok {
		return fmt.Errorf("native %s is already registered", name)
	}
	for _, k := range params {
		if k == KindVoid {
			return fmt.Errorf("native %s: void is not a parameter kind", name)
		}
		if _, ok := e.types[k]; !ok {
			return fmt.Errorf("native %s: unknown parameter kind %s", name, k)
		}
	}
	out := make([]Kind, 0, len(results))
	for _, k := range results {
		if k == KindVoid {
			continue
		}
		if _, ok := e.types[k]; !ok {
			return fmt.Errorf("native %s: unknown result kind %s", name, k)
		}
		out = append(out, k)
	}
	e.natives[name] = &nativeFunction{Name: name, Params: params, Results: out, Call: fn}
	return nil
}

func (e *engine) takeNativeError() error {
	err := e.nativeErr
	e.nativeErr = nil
	return err
}

// hostFunction adapts a native to the wasm calling convention. Failures
// panic; wazero turns the panic into an error returned from Call.
func (e *engine) hostFunction(nf *nativeFunction) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		engine := MustGetEngineFromContext(ctx).(*engine)
		release := engine.bridge.enter(ctx)
		defer release()

		args := make([]any, len(nf.Params))
		for i, k := range nf.Params {
			v, err := engine.types[k].ReadNative(ctx, stack[i])
			if err != nil {
				engine.nativeErr = fmt.Errorf("could not read argument %d (%s): %w", i, k, err)
				panic(engine.nativeErr)
			}
			args[i] = v
		}

		results, err := nf.Call(ctx, engine.tk, args)
		if err != nil {
			engine.nativeErr = err
			panic(fmt.Errorf("%s: %w", nf.Name, err))
		}

		if len(results) != len(nf.Results) {
			engine.nativeErr = fmt.Errorf("%s returned %d value(s), expected %d", nf.Name, len(results), len(nf.Results))
			panic(engine.nativeErr)
		}

		for i, k := range nf.Results {
			wt, err := engine.types[k].WriteNative(ctx, results[i])
			if err != nil {
				engine.nativeErr = fmt.Errorf("could not write result %d (%s): %w", i, k, err)
				panic(engine.nativeErr)
			}
			stack[i] = wt
		}
	}
}

// exportNatives adds every registered native to the host module builder.
func (e *engine) exportNatives(b wazero.HostModuleBuilder) {
	for _, name := range e.nativeNames() {
		nf := e.natives[name]
		paramTypes := make([]registeredType, len(nf.Params))
		for i, k := range nf.Params {
			paramTypes[i] = e.types[k]
		}
		resultTypes := make([]registeredType, len(nf.Results))
		for i, k := range nf.Results {
			resultTypes[i] = e.types[k]
		}

		b.NewFunctionBuilder().
			WithName(name).
			WithParameterNames(nf.paramNames()...).
			WithGoModuleFunction(e.hostFunction(nf), valueTypes(paramTypes), valueTypes(resultTypes)).
			Export(name)
	}
}

// setColorsNative takes the palette as ColorFieldCount text fields.
func setColorsNative(ctx context.Context, tk *toolkit.Toolkit, args []any) ([]any, error) {
	fields := make([]string, len(args))
	for i := range args {
		fields[i] = args[i].(string)
	}
	colors, err := toolkit.ColorsFromFields(fields)
	if err != nil {
		return nil, err
	}
	tk.SetColors(colors)
	return nil, nil
}

// formRunNative flattens the exit struct into reason, key, component and
// watched fd.
func formRunNative(ctx context.Context, tk *toolkit.Toolkit, args []any) ([]any, error) {
	es, err := tk.FormRun(args[0].(toolkit.Component))
	if err != nil {
		return nil, err
	}
	return []any{int32(es.Reason), es.Key, es.Component, es.Watch}, nil
}

func colorParams() []Kind {
	kinds := make([]Kind, toolkit.ColorFieldCount)
	for i := range kinds {
		kinds[i] = KindText
	}
	return kinds
}

// registerHandNatives registers the natives whose Go signature does not
// map one to one onto the kind set.
func (e *engine) registerHandNatives() error {
	if err := e.registerNative("SetColors", colorParams(), nil, setColorsNative); err != nil {
		return err
	}
	return e.registerNative("FormRun",
		[]Kind{KindComponent},
		[]Kind{KindInt, KindInt, KindComponent, KindInt},
		formRunNative)
}
