package newt

import (
	"context"
	"errors"
	"fmt"

	"github.com/jerbob92/wazero-newt/toolkit"
	"go.uber.org/zap"
)

// invoke lowers args to wire words, calls the exported native and lifts
// its results. Argument text slots are released whether or not the call
// succeeds.
func (e *engine) invoke(ctx context.Context, c *call, name string, args []any) ([]any, error) {
	native, ok := e.natives[name]
	if !ok {
		return nil, fmt.Errorf("native %s is not registered", name)
	}

	if len(args) != len(native.Params) {
		return nil, fmt.Errorf("native %s called with %d argument(s), expected %d arg(s)", name, len(args), len(native.Params))
	}

	if e.mod == nil {
		return nil, fmt.Errorf("native %s called before the engine was instantiated", name)
	}

	destructors := &[]*destructorFunc{}

	argsWired := make([]uint64, len(args))
	for i := range args {
		t := e.types[native.Params[i]]
		wired, err := t.ToWireType(ctx, destructors, args[i])
		if err != nil {
			_ = runDestructors(ctx, *destructors)
			return nil, fmt.Errorf("could not get wire type of argument %d (%s): %w", i, t.Name(), err)
		}
		argsWired[i] = wired
	}

	fn, ok := e.fns[name]
	if !ok {
		_ = runDestructors(ctx, *destructors)
		return nil, fmt.Errorf("native %s is not exported by module %s", name, e.mod.Name())
	}

	e.log.Debug("invoking native", zap.String("native", name), zap.Int("args", len(args)))

	res, callErr := fn.Call(ctx, argsWired...)

	if err := runDestructors(ctx, *destructors); err != nil {
		return nil, err
	}

	if callErr != nil {
		cause := e.takeNativeError()
		if cause == nil {
			cause = callErr
		}
		if errors.Is(cause, toolkit.ErrNotInitialized) {
			cause = newError(PhaseInvoke, KindNotInitialized).Cause(cause).Build()
		}
		e.log.Warn("native failed", zap.String("native", name), zap.Error(cause))
		return nil, newError(PhaseInvoke, KindNativeFailure).
			Command(c.command, c.usage).
			Detail("%s failed", name).
			Cause(cause).
			Build()
	}

	results := make([]any, len(native.Results))
	for i, kind := range native.Results {
		t := e.types[kind]
		v, err := t.FromWireType(ctx, res[i])
		if err != nil {
			return nil, fmt.Errorf("could not get wire type of return value %d (%s): %w", i, t.Name(), err)
		}
		results[i] = v
	}

	return results, nil
}

// bindValue encodes v and writes it to the host variable name.
func (e *engine) bindValue(ctx context.Context, c *call, name string, kind Kind, v any) error {
	token, err := e.types[kind].ToToken(ctx, v)
	if err != nil {
		return newError(PhaseEncode, KindHostFailure).
			Command(c.command, c.usage).
			Detail("could not encode %s", kind).
			Cause(err).
			Build()
	}
	if err := e.host.Bind(name, token); err != nil {
		return newError(PhaseBind, KindHostFailure).
			Command(c.command, c.usage).
			Detail("could not bind %s", name).
			Cause(err).
			Build()
	}
	return nil
}

// finish binds the first result to the -v variable, if one was given.
// Without a variable the result is dropped.
func (e *engine) finish(ctx context.Context, c *call, kinds []Kind, results []any) error {
	if c.resultVar == "" || len(results) == 0 {
		return nil
	}
	return e.bindValue(ctx, c, c.resultVar, kinds[0], results[0])
}
