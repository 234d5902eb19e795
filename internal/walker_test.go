package newt

import (
	"context"
	"errors"

	"github.com/jerbob92/wazero-newt/toolkit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Argument walker", func() {
	var tb *testBed
	var ctx context.Context

	BeforeEach(func() {
		tb = newTestBed(nil)
		ctx = tb.e.Attach(tb.ctx)
	})

	newCall := func(tokens ...string) *call {
		return &call{command: "Probe", usage: "left top text", args: NewArgumentSequence(tokens)}
	}

	It("decodes exactly the requested kinds in order", func() {
		c := newCall("5", "3", "OK", "extra")
		values, err := tb.e.walk(ctx, c, []Kind{KindInt, KindInt, KindText})
		Expect(err).To(BeNil())
		Expect(values).To(Equal([]any{int32(5), int32(3), "OK"}))
		Expect(c.args.Remaining()).To(Equal(1))
	})

	It("reports the position of a missing argument", func() {
		_, err := tb.e.walk(ctx, newCall("5", "3"), []Kind{KindInt, KindInt, KindText})
		var be *BindingError
		Expect(errors.As(err, &be)).To(BeTrue())
		Expect(be.Kind).To(Equal(KindMissingArgument))
		Expect(be.Phase).To(Equal(PhaseDecode))
		Expect(be.Position).To(Equal(2))
		Expect(be.UsageMessage()).To(Equal("newt: usage: newt Probe left top text"))
	})

	It("stops at the first unparseable token", func() {
		c := newCall("5", "x", "y")
		_, err := tb.e.walk(ctx, c, []Kind{KindInt, KindInt, KindInt})
		var be *BindingError
		Expect(errors.As(err, &be)).To(BeTrue())
		Expect(be.Kind).To(Equal(KindUnparseableArgument))
		Expect(be.Position).To(Equal(1))
		Expect(be.Token).To(Equal("x"))
		Expect(c.args.Remaining()).To(Equal(1))
	})

	It("fills in defaults for missing optional parameters", func() {
		values, err := tb.e.walkOptional(ctx, newCall("1", "2", "box"), []Kind{KindInt, KindInt, KindText, KindChar, KindText}, []string{" ", ""})
		Expect(err).To(BeNil())
		Expect(values).To(Equal([]any{int32(1), int32(2), "box", byte(' '), ""}))
	})

	It("prefers given optional parameters", func() {
		values, err := tb.e.walkOptional(ctx, newCall("1", "2", "box", "*"), []Kind{KindInt, KindInt, KindText, KindChar, KindText}, []string{" ", ""})
		Expect(err).To(BeNil())
		Expect(values[3]).To(Equal(byte('*')))
		Expect(values[4]).To(Equal(""))
	})

	It("still requires the required parameters", func() {
		_, err := tb.e.walkOptional(ctx, newCall("1"), []Kind{KindInt, KindInt, KindText}, []string{""})
		Expect(err).To(MatchError(ErrMissingArgument))
	})

	It("decodes every remaining token of a variadic tail", func() {
		a := tb.mustRun("Button", "1", "1", "A")
		b := tb.mustRun("Button", "1", "3", "B")
		values, err := tb.e.walkVariadic(ctx, newCall(a, b), KindComponent)
		Expect(err).To(BeNil())
		Expect(values).To(HaveLen(2))
		Expect(values[1]).To(BeAssignableToTypeOf(toolkit.Component(0)))
	})

	It("accepts an empty variadic tail", func() {
		values, err := tb.e.walkVariadic(ctx, newCall(), KindInt)
		Expect(err).To(BeNil())
		Expect(values).To(BeEmpty())
	})

	It("consumes variable names", func() {
		names, err := tb.e.walkNames(ctx, newCall("cols", "rows"), 2)
		Expect(err).To(BeNil())
		Expect(names).To(Equal([]string{"cols", "rows"}))

		_, err = tb.e.walkNames(ctx, newCall("cols"), 2)
		Expect(err).To(MatchError(ErrMissingArgument))
	})
})

var _ = Describe("Argument sequence", func() {
	It("is forward only", func() {
		s := NewArgumentSequence([]string{"a", "b"})
		Expect(s.Position()).To(Equal(0))
		token, ok := s.Next()
		Expect(ok).To(BeTrue())
		Expect(token).To(Equal("a"))
		Expect(s.Remaining()).To(Equal(1))
		token, _ = s.Next()
		Expect(token).To(Equal("b"))
		_, ok = s.Next()
		Expect(ok).To(BeFalse())
		Expect(s.Position()).To(Equal(2))
	})
})
