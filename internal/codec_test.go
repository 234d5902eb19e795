package newt

import (
	"context"

	"github.com/jerbob92/wazero-newt/toolkit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Value codec", func() {
	var tb *testBed
	var ctx context.Context

	BeforeEach(func() {
		tb = newTestBed(nil)
		ctx = tb.e.Attach(tb.ctx)
	})

	decode := func(kind Kind, token string) (any, error) {
		return tb.e.types[kind].FromToken(ctx, token)
	}

	encode := func(kind Kind, v any) (string, error) {
		return tb.e.types[kind].ToToken(ctx, v)
	}

	Context("integers", func() {
		It("accepts surrounding whitespace and a sign", func() {
			Expect(decode(KindInt, " -42 ")).To(Equal(int32(-42)))
			Expect(decode(KindInt, "+7")).To(Equal(int32(7)))
		})

		It("truncates values wider than the target", func() {
			Expect(decode(KindInt, "4294967297")).To(Equal(int32(1)))
			Expect(decode(KindUint, "-1")).To(Equal(uint32(0xffffffff)))
		})

		It("keeps 64-bit values intact", func() {
			Expect(decode(KindLongLong, "-9223372036854775808")).To(Equal(int64(-9223372036854775808)))
			Expect(decode(KindULongLong, "9223372036854775807")).To(Equal(uint64(9223372036854775807)))
		})

		It("rejects malformed numbers", func() {
			for _, token := range []string{"", "12abc", "0x10", "1.5", "--1", "99999999999999999999"} {
				_, err := decode(KindInt, token)
				Expect(err).ToNot(BeNil(), token)
			}
		})

		It("encodes as decimal", func() {
			Expect(encode(KindInt, int32(-3))).To(Equal("-3"))
			Expect(encode(KindULongLong, uint64(18446744073709551615))).To(Equal("18446744073709551615"))
		})

		It("refuses a value of the wrong Go type", func() {
			_, err := encode(KindInt, "3")
			Expect(err).ToNot(BeNil())
		})
	})

	Context("chars", func() {
		It("takes the first byte", func() {
			Expect(decode(KindChar, "abc")).To(Equal(byte('a')))
			Expect(decode(KindChar, "")).To(Equal(byte(0)))
		})

		It("encodes a single byte", func() {
			Expect(encode(KindChar, byte('*'))).To(Equal("*"))
			Expect(encode(KindChar, byte(0))).To(Equal(""))
		})
	})

	Context("text", func() {
		It("passes the token through", func() {
			Expect(decode(KindText, "hello world")).To(Equal("hello world"))
			Expect(encode(KindText, "")).To(Equal(""))
		})

		It("releases argument slots after a call", func() {
			tb.mustRun("Label", "1", "1", "some text")
			Expect(tb.e.LiveTexts()).To(Equal(0))
		})

		It("releases result slots after a call", func() {
			en := tb.mustRun("Entry", "1", "1", "initial", "10")
			Expect(tb.mustRun("EntryGetValue", en)).To(Equal("initial"))
			Expect(tb.e.LiveTexts()).To(Equal(0))
		})
	})

	Context("pointers", func() {
		It("parses the accepted spellings of null", func() {
			for _, token := range []string{"NULL", "null", "Null", "(nil)", "", "0", "0x0"} {
				Expect(parsePointer(token)).To(Equal(uint64(0)), token)
			}
		})

		It("parses hex with or without a prefix", func() {
			Expect(parsePointer("0x1F")).To(Equal(uint64(31)))
			Expect(parsePointer("0X1f")).To(Equal(uint64(31)))
			Expect(parsePointer("1f")).To(Equal(uint64(31)))
		})

		It("rejects anything else", func() {
			for _, token := range []string{"0x", "zz", "0xg1", "-1"} {
				_, err := parsePointer(token)
				Expect(err).ToNot(BeNil(), token)
			}
		})

		It("formats null and lowercase hex", func() {
			Expect(formatPointer(0)).To(Equal("NULL"))
			Expect(formatPointer(0xABCDEF)).To(Equal("0xabcdef"))
		})
	})

	Context("cookies", func() {
		It("accepts any parseable address without checking the registry", func() {
			Expect(decode(KindCookie, "0xdead")).To(Equal(RawCookie(0xdead)))
			Expect(tb.e.LiveHandles()).To(Equal(0))
		})

		It("round-trips through a listbox", func() {
			lb := tb.mustRun("Listbox", "1", "1", "5", "0")
			tb.mustRun("ListboxAppendEntry", lb, "first", "0x10")
			Expect(tb.mustRun("ListboxGetCurrent", lb)).To(Equal("0x10"))
		})
	})

	Context("enums", func() {
		It("decodes plain integers", func() {
			Expect(decode(KindSense, "2")).To(Equal(toolkit.FlagsSense(2)))
			Expect(encode(KindGridElement, toolkit.GridElement(1))).To(Equal("1"))
		})
	})

	Context("callbacks", func() {
		It("are never decoded from text", func() {
			for _, kind := range []Kind{KindFilter, KindSuspend, KindCallback} {
				_, err := decode(kind, "0x1234")
				Expect(err).ToNot(BeNil())
			}
		})

		It("only accept slots of their own shape", func() {
			_, err := tb.e.types[KindFilter].ToWireType(ctx, nil, slotHelp)
			Expect(err).ToNot(BeNil())
			_, err = tb.e.types[KindCallback].ToWireType(ctx, nil, slotDestroy)
			Expect(err).To(BeNil())
			_, err = tb.e.types[KindSuspend].ToWireType(ctx, nil, slotNone)
			Expect(err).To(BeNil())
		})
	})

	Context("void", func() {
		It("has no token form", func() {
			_, err := decode(KindVoid, "")
			Expect(err).ToNot(BeNil())
		})
	})
})

var _ = Describe("Kinds", func() {
	It("parses every kind name back", func() {
		for k := KindVoid; k <= KindCallback; k++ {
			Expect(ParseKind(k.String())).To(Equal(k))
		}
	})

	It("rejects unknown names", func() {
		_, err := ParseKind("float")
		Expect(err).ToNot(BeNil())
	})
})
