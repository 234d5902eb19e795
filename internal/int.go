package newt

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"
)

// parseLegalNumber accepts an optionally signed decimal integer with
// surrounding whitespace that fits in 64 bits. Anything else is rejected.
func parseLegalNumber(token string) (int64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", token)
	}
	return v, nil
}

// intType covers the four integer widths. Narrower kinds truncate the
// parsed 64-bit value.
type intType struct {
	baseType
	size   int32
	signed bool
}

func (it *intType) GoType() string {
	if it.size == 8 {
		if !it.signed {
			return "uint64"
		}
		return "int64"
	}
	if !it.signed {
		return "uint32"
	}
	return "int32"
}

func (it *intType) FromToken(ctx context.Context, token string) (any, error) {
	v, err := parseLegalNumber(token)
	if err != nil {
		return nil, err
	}
	if it.size == 8 {
		if !it.signed {
			return uint64(v), nil
		}
		return v, nil
	}
	if !it.signed {
		return uint32(v), nil
	}
	return int32(v), nil
}

func (it *intType) ToToken(ctx context.Context, o any) (string, error) {
	switch v := o.(type) {
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	}
	return "", typeMismatch(it, o)
}

func (it *intType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	return it.WriteNative(ctx, o)
}

func (it *intType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return it.ReadNative(ctx, wt)
}

func (it *intType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	if it.size == 8 {
		if !it.signed {
			return wt, nil
		}
		return int64(wt), nil
	}
	if !it.signed {
		return api.DecodeU32(wt), nil
	}
	return api.DecodeI32(wt), nil
}

func (it *intType) WriteNative(ctx context.Context, o any) (uint64, error) {
	if it.size == 8 {
		if !it.signed {
			uint64Val, ok := o.(uint64)
			if ok {
				return uint64Val, nil
			}
			return 0, typeMismatch(it, o)
		}

		int64Val, ok := o.(int64)
		if ok {
			return uint64(int64Val), nil
		}
		return 0, typeMismatch(it, o)
	}

	if !it.signed {
		uint32Val, ok := o.(uint32)
		if ok {
			return api.EncodeU32(uint32Val), nil
		}
		return 0, typeMismatch(it, o)
	}

	int32Val, ok := o.(int32)
	if ok {
		return api.EncodeI32(int32Val), nil
	}
	return 0, typeMismatch(it, o)
}

// charType is a single byte. Decoding takes the first byte of the token;
// the empty token decodes to NUL.
type charType struct {
	baseType
}

func (ct *charType) GoType() string {
	return "byte"
}

func (ct *charType) FromToken(ctx context.Context, token string) (any, error) {
	if token == "" {
		return byte(0), nil
	}
	return token[0], nil
}

func (ct *charType) ToToken(ctx context.Context, o any) (string, error) {
	b, ok := o.(byte)
	if !ok {
		return "", typeMismatch(ct, o)
	}
	if b == 0 {
		return "", nil
	}
	return string([]byte{b}), nil
}

func (ct *charType) ToWireType(ctx context.Context, destructors *[]*destructorFunc, o any) (uint64, error) {
	return ct.WriteNative(ctx, o)
}

func (ct *charType) FromWireType(ctx context.Context, wt uint64) (any, error) {
	return ct.ReadNative(ctx, wt)
}

func (ct *charType) ReadNative(ctx context.Context, wt uint64) (any, error) {
	return byte(api.DecodeU32(wt)), nil
}

func (ct *charType) WriteNative(ctx context.Context, o any) (uint64, error) {
	b, ok := o.(byte)
	if !ok {
		return 0, typeMismatch(ct, o)
	}
	return api.EncodeU32(uint32(b)), nil
}
