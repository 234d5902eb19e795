package newt

import (
	"context"
	"strconv"

	"github.com/jerbob92/wazero-newt/toolkit"
)

// customCommands are the commands whose token shape or side effects do
// not fit one of the generated styles.
func customCommands() []*wrapperEntry {
	return []*wrapperEntry{
		{name: "Init", fn: wrapInit},
		{name: "Finished", fn: wrapFinished},
		{name: "FormRun", usage: "form reasonVar valueVar", fn: wrapFormRun},
		{name: "EntrySetFilter", usage: "co bashFunctionName", fn: wrapEntrySetFilter},
		{name: "SetSuspendCallback", usage: "bashFunctionName", fn: wrapSetSuspendCallback},
		{name: "SetHelpCallback", usage: "bashFunctionName", fn: wrapSetHelpCallback},
		{name: "ComponentAddCallback", usage: "co bashExpr [data]", fn: wrapComponentAddCallback},
		{name: "ComponentAddDestroyCallback", usage: "co bashExpression", fn: wrapComponentAddDestroyCallback},
	}
}

// wrapInit always succeeds so scripts can write `if newt Init; then`.
func wrapInit(ctx context.Context, e *engine, c *call) error {
	results, err := e.invoke(ctx, c, "Init", nil)
	if err != nil {
		return err
	}
	e.initialized = true
	return e.finish(ctx, c, e.natives["Init"].Results, results)
}

// wrapFinished only reaches the toolkit once per successful Init, so it is
// safe to call from both the script body and an exit trap.
func wrapFinished(ctx context.Context, e *engine, c *call) error {
	if !e.initialized {
		return nil
	}
	results, err := e.invoke(ctx, c, "Finished", nil)
	e.initialized = false
	if err != nil {
		return err
	}
	return e.finish(ctx, c, e.natives["Finished"].Results, results)
}

func wrapFormRun(ctx context.Context, e *engine, c *call) error {
	args, err := e.walk(ctx, c, []Kind{KindComponent})
	if err != nil {
		return err
	}
	names, err := e.walkNames(ctx, c, 2)
	if err != nil {
		return err
	}
	results, err := e.invoke(ctx, c, "FormRun", args)
	if err != nil {
		return err
	}

	reason := toolkit.ExitReason(results[0].(int32))
	value := "0"
	switch reason {
	case toolkit.ExitHotkey:
		value = strconv.FormatInt(int64(results[1].(int32)), 10)
	case toolkit.ExitComponent:
		value, err = e.types[KindComponent].ToToken(ctx, results[2])
		if err != nil {
			return err
		}
	case toolkit.ExitFDReady:
		value = strconv.FormatInt(int64(results[3].(int32)), 10)
	}

	if err := e.bindValue(ctx, c, names[0], KindText, reason.String()); err != nil {
		return err
	}
	return e.bindValue(ctx, c, names[1], KindText, value)
}

// wrapEntrySetFilter installs the filter shim on co and records the host
// code it runs. An empty name removes the filter.
func wrapEntrySetFilter(ctx context.Context, e *engine, c *call) error {
	args, err := e.walk(ctx, c, []Kind{KindComponent, KindText})
	if err != nil {
		return err
	}
	co, code := args[0].(toolkit.Component), args[1].(string)
	slot := slotEntryFilter
	if code == "" {
		slot = slotNone
	}
	if _, err := e.invoke(ctx, c, "EntrySetFilter", []any{co, slot, RawCookie(0)}); err != nil {
		return err
	}
	e.bridge.registerFilter(co, code)
	return nil
}

func wrapSetSuspendCallback(ctx context.Context, e *engine, c *call) error {
	return setGlobalCallback(ctx, e, c, "SetSuspendCallback", slotSuspend, RawCookie(0))
}

// wrapSetHelpCallback runs the host code with NEWT_COMPONENT set to the
// form and NEWT_CB_DATA to its help tag.
func wrapSetHelpCallback(ctx context.Context, e *engine, c *call) error {
	return setGlobalCallback(ctx, e, c, "SetHelpCallback", slotHelp)
}

func setGlobalCallback(ctx context.Context, e *engine, c *call, native string, slot CallbackSlot, extra ...any) error {
	args, err := e.walk(ctx, c, []Kind{KindText})
	if err != nil {
		return err
	}
	code := args[0].(string)
	wired := slot
	if code == "" {
		wired = slotNone
	}
	if _, err := e.invoke(ctx, c, native, append([]any{wired}, extra...)); err != nil {
		return err
	}
	e.bridge.setGlobal(slot, code)
	return nil
}

func wrapComponentAddCallback(ctx context.Context, e *engine, c *call) error {
	args, err := e.walkOptional(ctx, c, []Kind{KindComponent, KindText, KindText}, []string{""})
	if err != nil {
		return err
	}
	co, code, data := args[0].(toolkit.Component), args[1].(string), args[2].(string)
	slot := slotComponentEvent
	if code == "" {
		slot = slotNone
	}
	if _, err := e.invoke(ctx, c, "ComponentAddCallback", []any{co, slot, RawCookie(0)}); err != nil {
		return err
	}
	e.bridge.registerEvent(co, code, data)
	return nil
}

func wrapComponentAddDestroyCallback(ctx context.Context, e *engine, c *call) error {
	args, err := e.walk(ctx, c, []Kind{KindComponent, KindText})
	if err != nil {
		return err
	}
	co, code := args[0].(toolkit.Component), args[1].(string)
	slot := slotDestroy
	if code == "" {
		slot = slotNone
	}
	if _, err := e.invoke(ctx, c, "ComponentAddDestroyCallback", []any{co, slot, RawCookie(0)}); err != nil {
		return err
	}
	e.bridge.registerDestroy(co, code)
	return nil
}
