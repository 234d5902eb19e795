package newt

import (
	"context"
	"strconv"

	"github.com/tetratelabs/wazero/api"
)

// enumType is an int32-backed enum. Tokens are plain integers; values are
// not checked against the defined enumerators.
type enumType struct {
	baseType
	goType string
	wrap   func(v int32) any
	unwrap func(o any) (int32, bool)
}

func newEnumType[T ~int32](kind Kind, goType string) *enumType {
	return &enumType{
		baseType: baseType{kind: kind, nativeType: api.ValueTypeI32},
		goType:   goType,
		wrap:     func(v int32) any { return T(v) },
		unwrap: func(o any) (int32, bool) {
			v, ok := o.(T)
			return int32(v), ok
		},
	}
}

func (et *enumType) GoType() string {
	return et.goType
}

func (et *enumType) FromToken(ctx context.Context, token string) (any, error) {
	v, err := parseLegalNumber(token)
	if err != nil {
		return nil, err
	}
	return et.wrap(int32(v)), nil
}

func (et *enumType) ToToken(ctx context.Context, o any) (string, error) {
	v, ok := et.unwrap(o)
	if !ok {
		return "", typeMismatch(et, o)
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func (et *enumType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	return et.WriteNative(ctx, o)
}

func (et *enumType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return et.ReadNative(ctx, wt)
}

func (et *enumType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	return et.wrap(api.DecodeI32(wt)), nil
}

func (et *enumType) WriteNative(ctx context.Context, o any) (uint64, error) {
	v, ok := et.unwrap(o)
	if !ok {
		return 0, typeMismatch(et, o)
	}
	return api.EncodeI32(v), nil
}
