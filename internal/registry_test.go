package newt

import (
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handle registry", func() {
	var r *handleRegistry

	BeforeEach(func() {
		r = newHandleRegistry(zap.NewNop())
	})

	It("resolves what it registered", func() {
		r.Register(KindComponent, 0x5610)
		Expect(r.Resolve(KindComponent, "0x5610")).To(Equal(uint64(0x5610)))
		Expect(r.Len()).To(Equal(1))
	})

	It("resolves NULL without an entry", func() {
		Expect(r.Resolve(KindComponent, "NULL")).To(Equal(uint64(0)))
	})

	It("never registers null", func() {
		r.Register(KindGrid, 0)
		Expect(r.Len()).To(Equal(0))
	})

	It("rejects addresses it never handed out", func() {
		_, err := r.Resolve(KindComponent, "0xdeadbeef")
		Expect(err).To(MatchError(ErrInvalidHandle))
	})

	It("rejects a handle of another kind", func() {
		r.Register(KindGrid, 0x80)
		_, err := r.Resolve(KindComponent, "0x80")
		Expect(err).To(MatchError(ErrInvalidHandle))
	})

	It("rejects tokens that are not pointers", func() {
		_, err := r.Resolve(KindComponent, "button")
		Expect(err).ToNot(BeNil())
		Expect(err).ToNot(MatchError(ErrInvalidHandle))
	})

	It("forgets invalidated handles", func() {
		r.Register(KindComponent, 0x40)
		r.Invalidate(0x40)
		r.Invalidate(0x9999)
		_, err := r.Resolve(KindComponent, "0x40")
		Expect(err).To(MatchError(ErrInvalidHandle))
		Expect(r.String()).To(Equal("handleRegistry(0 live)"))
	})

	It("registering twice keeps one entry", func() {
		r.Register(KindComponent, 0x40)
		r.Register(KindComponent, 0x40)
		Expect(r.Len()).To(Equal(1))
	})
})

var _ = Describe("Handle lifetime", func() {
	var tb *testBed

	BeforeEach(func() {
		tb = newTestBed(nil)
	})

	It("registers handles lifted from natives", func() {
		btn := tb.mustRun("CompactButton", "5", "3", "OK")
		Expect(btn).To(Equal("0x561000000000"))
		Expect(tb.e.LiveHandles()).To(Equal(1))
	})

	It("invalidates handles the toolkit destroys", func() {
		btn := tb.mustRun("CompactButton", "5", "3", "OK")
		Expect(tb.run("ComponentDestroy", btn)).To(Succeed())
		Expect(tb.e.LiveHandles()).To(Equal(0))

		err := tb.run("LabelSetText", btn, "x")
		Expect(err).To(MatchError(ErrInvalidHandle))
	})

	It("invalidates the children of a destroyed form", func() {
		form := tb.mustRun("Form")
		a := tb.mustRun("Button", "1", "1", "A")
		b := tb.mustRun("Button", "1", "3", "B")
		Expect(tb.run("FormAddComponents", form, a, b)).To(Succeed())
		Expect(tb.e.LiveHandles()).To(Equal(3))

		Expect(tb.run("FormDestroy", form)).To(Succeed())
		Expect(tb.e.LiveHandles()).To(Equal(0))
	})

	It("rejects a grid where a component is expected", func() {
		grid := tb.mustRun("GridCreate", "1", "1")
		err := tb.run("LabelSetText", grid, "x")
		Expect(err).To(MatchError(ErrInvalidHandle))
		Expect(err).To(MatchError(ErrUnparseableArgument))
	})

	It("passes NULL through to the native", func() {
		err := tb.run("LabelSetText", "NULL", "x")
		Expect(err).To(MatchError(ErrNativeFailure))
		Expect(err).ToNot(MatchError(ErrInvalidHandle))
	})
})
