package newt

import (
	"context"
	"fmt"
)

// voidType only appears as the result of natives that return nothing.
type voidType struct {
	baseType
}

func (vt *voidType) GoType() string {
	return ""
}

func (vt *voidType) FromToken(ctx context.Context, token string) (any, error) {
	return nil, fmt.Errorf("void has no token form")
}

func (vt *voidType) ToToken(ctx context.Context, o any) (string, error) {
	return "", nil
}

func (vt *voidType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	return 0, fmt.Errorf("void cannot be passed to a native")
}

func (vt *voidType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return nil, nil
}

func (vt *voidType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	return nil, fmt.Errorf("void cannot be read from the wire")
}

func (vt *voidType) WriteNative(ctx context.Context, o any) (uint64, error) {
	return 0, fmt.Errorf("void cannot be written to the wire")
}
