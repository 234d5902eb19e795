package newt

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

type textSlot struct {
	value string
}

// textTable hands strings across the wire as slot numbers. Slot 0 is the
// null string. Freed slots are reused through the freelist.
type textTable struct {
	allocated []*textSlot
	freelist  []int32
	reserved  int
}

func newTextTable() *textTable {
	return &textTable{
		allocated: []*textSlot{nil},
		freelist:  []int32{},
		reserved:  1,
	}
}

func (tt *textTable) get(id int32) (string, error) {
	if id == 0 {
		return "", nil
	}
	if id < 0 || int(id) > len(tt.allocated)-1 || tt.allocated[id] == nil {
		return "", fmt.Errorf("invalid text slot: %d", id)
	}
	return tt.allocated[id].value, nil
}

func (tt *textTable) allocate(value string) int32 {
	var id int32

	if len(tt.freelist) > 0 {
		id = tt.freelist[len(tt.freelist)-1]
		tt.freelist = tt.freelist[:len(tt.freelist)-1]
		tt.allocated[id] = &textSlot{value: value}
	} else {
		id = int32(len(tt.allocated))
		tt.allocated = append(tt.allocated, &textSlot{value: value})
	}

	return id
}

func (tt *textTable) free(id int32) error {
	if int(id) < tt.reserved || int(id) > len(tt.allocated)-1 || tt.allocated[id] == nil {
		return fmt.Errorf("invalid text slot: %d", id)
	}

	tt.allocated[id] = nil
	tt.freelist = append(tt.freelist, id)

	return nil
}

// live counts the slots in use.
func (tt *textTable) live() int {
	return len(tt.allocated) - tt.reserved - len(tt.freelist)
}

// textType borrows the token: the decoded string shares the token's
// storage and the text table only stores references to it.
type textType struct {
	baseType
}

func (tt *textType) GoType() string {
	return "string"
}

func (tt *textType) FromToken(ctx context.Context, token string) (any, error) {
	return token, nil
}

func (tt *textType) ToToken(ctx context.Context, o any) (string, error) {
	s, ok := o.(string)
	if !ok {
		return "", typeMismatch(tt, o)
	}
	return s, nil
}

// ToWireType places the string in a slot that is released by the
// destructor stack once the native returns.
func (tt *textType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	s, ok := o.(string)
	if !ok {
		return 0, typeMismatch(tt, o)
	}
	e := MustGetEngineFromContext(ctx).(*engine)
	id := e.texts.allocate(s)
	if destructors != nil {
		*destructors = append(*destructors, &destructorFunc{
			what: "text argument",
			run: func(ctx context.Context) error {
				return e.texts.free(id)
			},
		})
	}
	return api.EncodeI32(id), nil
}

// FromWireType reads a result slot and releases it.
func (tt *textType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	e := MustGetEngineFromContext(ctx).(*engine)
	id := api.DecodeI32(wt)
	s, err := e.texts.get(id)
	if err != nil {
		return nil, err
	}
	if id != 0 {
		if err := e.texts.free(id); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (tt *textType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	e := MustGetEngineFromContext(ctx).(*engine)
	return e.texts.get(api.DecodeI32(wt))
}

func (tt *textType) WriteNative(ctx context.Context, o any) (uint64, error) {
	s, ok := o.(string)
	if !ok {
		return 0, typeMismatch(tt, o)
	}
	e := MustGetEngineFromContext(ctx).(*engine)
	return api.EncodeI32(e.texts.allocate(s)), nil
}
