package newt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero/api"
)

// RawCookie is a pointer-shaped user-data value. Unlike handles it is never
// checked against the registry: any parseable address is accepted.
type RawCookie uint64

// parsePointer accepts NULL in any case, (nil), the empty token, or hex
// digits with an optional 0x prefix.
func parsePointer(token string) (uint64, error) {
	s := strings.TrimSpace(token)
	if s == "" || strings.EqualFold(s, "null") || s == "(nil)" {
		return 0, nil
	}
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("not a pointer: %q", token)
	}
	return v, nil
}

func formatPointer(addr uint64) string {
	if addr == 0 {
		return "NULL"
	}
	return "0x" + strconv.FormatUint(addr, 16)
}

// handleType is a validated handle. A token only decodes when it names a
// live registry entry of the same kind; lifting a handle off the wire
// registers it.
type handleType struct {
	baseType
	goType string
	wrap   func(addr uint64) any
	unwrap func(o any) (uint64, bool)
}

func newHandleType[T ~uint64](kind Kind, goType string) *handleType {
	return &handleType{
		baseType: baseType{kind: kind, nativeType: api.ValueTypeI64},
		goType:   goType,
		wrap:     func(addr uint64) any { return T(addr) },
		unwrap: func(o any) (uint64, bool) {
			v, ok := o.(T)
			return uint64(v), ok
		},
	}
}

func (ht *handleType) GoType() string {
	return ht.goType
}

func (ht *handleType) FromToken(ctx context.Context, token string) (any, error) {
	e := MustGetEngineFromContext(ctx).(*engine)
	addr, err := e.handles.Resolve(ht.kind, token)
	if err != nil {
		return nil, err
	}
	return ht.wrap(addr), nil
}

func (ht *handleType) ToToken(ctx context.Context, o any) (string, error) {
	addr, ok := ht.unwrap(o)
	if !ok {
		return "", typeMismatch(ht, o)
	}
	if addr != 0 {
		e := MustGetEngineFromContext(ctx).(*engine)
		e.handles.Register(ht.kind, addr)
	}
	return formatPointer(addr), nil
}

func (ht *handleType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	return ht.WriteNative(ctx, o)
}

func (ht *handleType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	if wt != 0 {
		e := MustGetEngineFromContext(ctx).(*engine)
		e.handles.Register(ht.kind, wt)
	}
	return ht.wrap(wt), nil
}

func (ht *handleType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	return ht.wrap(wt), nil
}

func (ht *handleType) WriteNative(ctx context.Context, o any) (uint64, error) {
	addr, ok := ht.unwrap(o)
	if !ok {
		return 0, typeMismatch(ht, o)
	}
	return addr, nil
}

// cookieType carries a RawCookie. Natives see it as a plain uint64.
type cookieType struct {
	baseType
}

func (ct *cookieType) GoType() string {
	return "RawCookie"
}

func (ct *cookieType) FromToken(ctx context.Context, token string) (any, error) {
	addr, err := parsePointer(token)
	if err != nil {
		return nil, err
	}
	return RawCookie(addr), nil
}

func (ct *cookieType) ToToken(ctx context.Context, o any) (string, error) {
	c, ok := o.(RawCookie)
	if !ok {
		return "", typeMismatch(ct, o)
	}
	return formatPointer(uint64(c)), nil
}

func (ct *cookieType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	c, ok := o.(RawCookie)
	if !ok {
		return 0, typeMismatch(ct, o)
	}
	return uint64(c), nil
}

func (ct *cookieType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return RawCookie(wt), nil
}

func (ct *cookieType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	return wt, nil
}

func (ct *cookieType) WriteNative(ctx context.Context, o any) (uint64, error) {
	v, ok := o.(uint64)
	if !ok {
		return 0, fmt.Errorf("value must be of type uint64, is %T", o)
	}
	return v, nil
}

var (
	_ registeredType = newHandleType[toolkit.Component](KindComponent, "toolkit.Component")
	_ registeredType = &cookieType{}
)
