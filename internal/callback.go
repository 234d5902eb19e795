package newt

import (
	"context"
	"fmt"
	"slices"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero/api"
)

// CallbackSlot names one entry of the bridge's function table. Callback
// pointers cross the wire as slots; the host never sees or writes them.
type CallbackSlot int32

const (
	slotNone CallbackSlot = iota
	slotEntryFilter
	slotSuspend
	slotComponentEvent
	slotHelp
	slotDestroy
)

func (s CallbackSlot) String() string {
	switch s {
	case slotNone:
		return "none"
	case slotEntryFilter:
		return "entry-filter"
	case slotSuspend:
		return "suspend"
	case slotComponentEvent:
		return "component-event"
	case slotHelp:
		return "help"
	case slotDestroy:
		return "destroy"
	}
	return fmt.Sprintf("slot(%d)", int32(s))
}

// callbackType is one callback shape. Each shape accepts only the slots
// whose shim has the matching native signature.
type callbackType struct {
	baseType
	goType  string
	accepts []CallbackSlot
}

func (ct *callbackType) GoType() string {
	return ct.goType
}

func (ct *callbackType) FromToken(ctx context.Context, token string) (any, error) {
	return nil, fmt.Errorf("%s callbacks cannot be decoded from text", ct.Name())
}

func (ct *callbackType) ToToken(ctx context.Context, o any) (string, error) {
	return "", fmt.Errorf("%s callbacks cannot be encoded as text", ct.Name())
}

func (ct *callbackType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	slot, ok := o.(CallbackSlot)
	if !ok {
		return 0, typeMismatch(ct, o)
	}
	if slot != slotNone && !slices.Contains(ct.accepts, slot) {
		return 0, fmt.Errorf("slot %s does not have the %s shape", slot, ct.Name())
	}
	return api.EncodeI32(int32(slot)), nil
}

func (ct *callbackType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return CallbackSlot(api.DecodeI32(wt)), nil
}

// ReadNative turns a slot into the shim function the toolkit will call.
func (ct *callbackType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	slot := CallbackSlot(api.DecodeI32(wt))
	if slot != slotNone && !slices.Contains(ct.accepts, slot) {
		return nil, fmt.Errorf("slot %s does not have the %s shape", slot, ct.Name())
	}
	b := MustGetEngineFromContext(ctx).(*engine).bridge
	switch ct.kind {
	case KindFilter:
		if slot == slotNone {
			return toolkit.EntryFilter(nil), nil
		}
		return toolkit.EntryFilter(b.filter), nil
	case KindSuspend:
		if slot == slotNone {
			return toolkit.SuspendCallback(nil), nil
		}
		return toolkit.SuspendCallback(b.suspend), nil
	case KindCallback:
		switch slot {
		case slotComponentEvent:
			return toolkit.Callback(b.componentEvent), nil
		case slotHelp:
			return toolkit.Callback(b.help), nil
		case slotDestroy:
			return toolkit.Callback(b.destroy), nil
		}
		return toolkit.Callback(nil), nil
	}
	return nil, fmt.Errorf("kind %s is not a callback", ct.kind)
}

func (ct *callbackType) WriteNative(ctx context.Context, o any) (uint64, error) {
	return 0, fmt.Errorf("natives cannot return %s callbacks", ct.Name())
}
