package newt

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// Kind is one member of the closed set of value kinds that can cross the
// binding.
type Kind int32

const (
	KindVoid Kind = iota
	KindInt
	KindUint
	KindLongLong
	KindULongLong
	KindChar
	KindText
	KindComponent
	KindGrid
	KindCookie
	KindSense
	KindGridElement
	KindFilter
	KindSuspend
	KindCallback
)

var kindNames = [...]string{
	KindVoid:        "void",
	KindInt:         "int",
	KindUint:        "uint",
	KindLongLong:    "longlong",
	KindULongLong:   "ulonglong",
	KindChar:        "char",
	KindText:        "text",
	KindComponent:   "component",
	KindGrid:        "grid",
	KindCookie:      "cookie",
	KindSense:       "sense",
	KindGridElement: "gridelement",
	KindFilter:      "filter",
	KindSuspend:     "suspend",
	KindCallback:    "callback",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int32(k))
	}
	return kindNames[k]
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindVoid, fmt.Errorf("unknown kind %q", name)
}

type baseType struct {
	kind       Kind
	nativeType api.ValueType
}

func (bt *baseType) Kind() Kind {
	return bt.kind
}

func (bt *baseType) Name() string {
	return bt.kind.String()
}

func (bt *baseType) NativeType() api.ValueType {
	return bt.nativeType
}

func (bt *baseType) HasDestructorFunction() bool {
	return false
}

// registeredType converts one kind between its token, its Go value and
// its wire word. The caller side uses FromToken/ToWireType/FromWireType/
// ToToken; the native side uses ReadNative/WriteNative.
type registeredType interface {
	Kind() Kind
	Name() string
	NativeType() api.ValueType
	GoType() string
	HasDestructorFunction() bool
	FromToken(ctx context.Context, token string) (any, error)
	ToToken(ctx context.Context, o any) (string, error)
	ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error)
	FromWireType(ctx context.Context, wt uint64) (any, error)
	ReadNative(ctx context.Context, wt uint64) (any, error)
	WriteNative(ctx context.Context, o any) (uint64, error)
}

type destructorFunc struct {
	what string
	run  func(ctx context.Context) error
}

func runDestructors(ctx context.Context, destructors []*destructorFunc) error {
	for i := range destructors {
		if err := destructors[i].run(ctx); err != nil {
			return fmt.Errorf("could not run destructor for %s: %w", destructors[i].what, err)
		}
	}
	return nil
}

func valueTypes(types []registeredType) []api.ValueType {
	out := make([]api.ValueType, 0, len(types))
	for _, t := range types {
		out = append(out, t.NativeType())
	}
	return out
}

func typeMismatch(t registeredType, o any) error {
	return fmt.Errorf("value must be of type %s, is %T", t.GoType(), o)
}
