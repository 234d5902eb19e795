package toolkit

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestToolkit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Toolkit Suite")
}

var _ = Describe("Toolkit", func() {
	var tk *Toolkit

	BeforeEach(func() {
		tk = New(NewConfig().WithScreenSize(100, 30))
	})

	When("the screen is not initialized", func() {
		It("refuses to open windows", func() {
			_, err := tk.OpenWindow(1, 1, 10, 5, "x")
			Expect(err).To(MatchError(ErrNotInitialized))
		})

		It("still creates components", func() {
			Expect(tk.CompactButton(1, 1, "OK")).ToNot(BeZero())
		})
	})

	When("components are created", func() {
		It("hands out distinct, never reused addresses", func() {
			a := tk.Label(0, 0, "a")
			Expect(tk.ComponentDestroy(a)).To(Succeed())
			b := tk.Label(0, 0, "b")
			Expect(b).ToNot(Equal(a))
		})

		It("reports position and size", func() {
			co := tk.CompactButton(5, 3, "OK")
			left, top, err := tk.ComponentGetPosition(co)
			Expect(err).To(BeNil())
			Expect(left).To(Equal(int32(5)))
			Expect(top).To(Equal(int32(3)))

			w, h, err := tk.ComponentGetSize(co)
			Expect(err).To(BeNil())
			Expect(w).To(Equal(int32(5)))
			Expect(h).To(Equal(int32(1)))
		})

		It("rejects operations on the wrong widget type", func() {
			co := tk.Label(0, 0, "a")
			_, err := tk.EntryGetValue(co)
			Expect(err).To(MatchError(ErrWrongType))
		})

		It("rejects unknown addresses", func() {
			_, err := tk.EntryGetValue(Component(0x1234))
			Expect(err).To(MatchError(ErrInvalidObject))
		})
	})

	When("a component is destroyed", func() {
		It("runs the destroy callback once and then notifies", func() {
			var order []string
			tk.OnDestroy(func(addr uint64) { order = append(order, "notify") })

			co := tk.Button(1, 1, "Quit")
			Expect(tk.ComponentAddDestroyCallback(co, func(c Component, data uint64) {
				Expect(c).To(Equal(co))
				Expect(data).To(Equal(uint64(7)))
				order = append(order, "callback")
			}, 7)).To(Succeed())

			Expect(tk.ComponentDestroy(co)).To(Succeed())
			Expect(order).To(Equal([]string{"callback", "notify"}))
			Expect(tk.ComponentDestroy(co)).To(MatchError(ErrInvalidObject))
		})

		It("destroys the children of a form", func() {
			var freed []uint64
			tk.OnDestroy(func(addr uint64) { freed = append(freed, addr) })

			form, err := tk.Form(0, 0, 0)
			Expect(err).To(BeNil())
			b1 := tk.Button(0, 0, "a")
			b2 := tk.Button(0, 5, "b")
			Expect(tk.FormAddComponent(form, b1)).To(Succeed())
			Expect(tk.FormAddComponent(form, b2)).To(Succeed())

			Expect(tk.FormDestroy(form)).To(Succeed())
			Expect(freed).To(Equal([]uint64{uint64(b1), uint64(b2), uint64(form)}))
		})
	})

	Context("entries", func() {
		It("edits the value through the filter", func() {
			co := tk.Entry(0, 0, "", 10, 0)
			Expect(tk.EntrySetFilter(co, func(c Component, data uint64, ch, cursor int32) int32 {
				if ch >= '0' && ch <= '9' {
					return 0
				}
				return ch
			}, 0)).To(Succeed())

			Expect(tk.Init()).To(Equal(int32(0)))
			form, _ := tk.Form(0, 0, 0)
			Expect(tk.FormAddComponent(form, co)).To(Succeed())
			tk.Feed('a', '1', 'b', KeyBkspc, 'c')

			es, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(es.Reason).To(Equal(ExitError))

			v, err := tk.EntryGetValue(co)
			Expect(err).To(BeNil())
			Expect(v).To(Equal("ac"))
		})
	})

	Context("forms", func() {
		var form, ok Component

		BeforeEach(func() {
			tk.Init()
			_, err := tk.CenteredWindow(30, 10, "Question")
			Expect(err).To(BeNil())
			form, err = tk.Form(0, 0, 0)
			Expect(err).To(BeNil())
			ok = tk.CompactButton(5, 3, "OK")
			Expect(tk.FormAddComponent(form, ok)).To(Succeed())
		})

		It("exits on a hotkey", func() {
			Expect(tk.FormAddHotKey(form, KeyF2)).To(Succeed())
			tk.Feed(KeyF2)
			es, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(es.Reason).To(Equal(ExitHotkey))
			Expect(es.Key).To(Equal(KeyF2))
		})

		It("exits on a button press and fires its callback", func() {
			fired := 0
			Expect(tk.ComponentAddCallback(ok, func(Component, uint64) { fired++ }, 0)).To(Succeed())
			tk.Feed(KeyEnter)
			es, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(es.Reason).To(Equal(ExitComponent))
			Expect(es.Component).To(Equal(ok))
			Expect(fired).To(Equal(1))
		})

		It("exits on the timer when the queue is empty", func() {
			Expect(tk.FormSetTimer(form, 100)).To(Succeed())
			es, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(es.Reason).To(Equal(ExitTimer))
		})

		It("exits when a watched descriptor is ready", func() {
			Expect(tk.FormWatchFd(form, 3, FDRead)).To(Succeed())
			tk.SignalFD(3)
			es, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(es.Reason).To(Equal(ExitFDReady))
			Expect(es.Watch).To(Equal(int32(3)))
		})

		It("runs the suspend callback", func() {
			var got uint64
			tk.SetSuspendCallback(func(data uint64) { got = data }, 42)
			tk.Feed(KeySuspend, KeyEnter)
			_, err := tk.FormRun(form)
			Expect(err).To(BeNil())
			Expect(got).To(Equal(uint64(42)))
		})

		It("renders the window", func() {
			var out bytes.Buffer
			tk = New(NewConfig().WithOutput(&out))
			tk.Init()
			_, err := tk.CenteredWindow(20, 5, "Hello")
			Expect(err).To(BeNil())
			form, _ := tk.Form(0, 0, 0)
			Expect(tk.FormAddComponent(form, tk.CompactButton(2, 1, "OK"))).To(Succeed())
			Expect(tk.DrawForm(form)).To(Succeed())
			Expect(tk.Refresh()).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Hello"))
			Expect(out.String()).To(ContainSubstring("< OK >"))
		})
	})

	Context("radio groups", func() {
		It("tracks the current member", func() {
			r1, err := tk.Radiobutton(0, 0, "a", 1, 0)
			Expect(err).To(BeNil())
			r2, err := tk.Radiobutton(0, 1, "b", 0, r1)
			Expect(err).To(BeNil())

			cur, err := tk.RadioGetCurrent(r2)
			Expect(err).To(BeNil())
			Expect(cur).To(Equal(r1))

			Expect(tk.RadioSetCurrent(r2)).To(Succeed())
			cur, _ = tk.RadioGetCurrent(r1)
			Expect(cur).To(Equal(r2))
		})
	})

	Context("listboxes", func() {
		It("keeps items and data", func() {
			lb := tk.Listbox(0, 0, 5, 0)
			_, err := tk.ListboxAppendEntry(lb, "one", 0x10)
			Expect(err).To(BeNil())
			_, err = tk.ListboxAppendEntry(lb, "two", 0x20)
			Expect(err).To(BeNil())

			Expect(tk.ListboxSetCurrentByKey(lb, 0x20)).To(Succeed())
			cur, err := tk.ListboxGetCurrent(lb)
			Expect(err).To(BeNil())
			Expect(cur).To(Equal(uint64(0x20)))

			text, data, err := tk.ListboxGetEntry(lb, 0)
			Expect(err).To(BeNil())
			Expect(text).To(Equal("one"))
			Expect(data).To(Equal(uint64(0x10)))

			rc, _ := tk.ListboxDeleteEntry(lb, 0x99)
			Expect(rc).To(Equal(int32(-1)))
			n, _ := tk.ListboxItemCount(lb)
			Expect(n).To(Equal(int32(2)))
		})
	})

	Context("grids", func() {
		It("places components and frees subgrids", func() {
			var freed []uint64
			tk.OnDestroy(func(addr uint64) { freed = append(freed, addr) })

			text := tk.Label(0, 0, "Pick one")
			middle := tk.Entry(0, 0, "", 10, 0)
			buttons, err := tk.GridCreate(2, 1)
			Expect(err).To(BeNil())
			ok := tk.CompactButton(0, 0, "OK")
			Expect(tk.GridSetField(buttons, 0, 0, GridComponent, uint64(ok), 0, 0, 1, 0, 0, 0)).To(Succeed())
			Expect(tk.GridSetField(buttons, 1, 0, GridComponent, uint64(text), 0, 0, 0, 0, 0, 0)).To(Succeed())

			win, err := tk.GridSimpleWindow(text, middle, buttons)
			Expect(err).To(BeNil())
			w, h, err := tk.GridGetSize(win)
			Expect(err).To(BeNil())
			Expect(w).To(BeNumerically(">=", 10))
			Expect(h).To(Equal(int32(5)))

			Expect(tk.GridPlace(win, 1, 1)).To(Succeed())
			_, top, _ := tk.ComponentGetPosition(middle)
			Expect(top).To(Equal(int32(3)))

			Expect(tk.GridFree(win, 1)).To(Succeed())
			Expect(freed).To(ConsistOf(uint64(buttons), uint64(win)))
		})

		It("rejects a component stored as a subgrid", func() {
			g, _ := tk.GridCreate(1, 1)
			co := tk.Label(0, 0, "x")
			Expect(tk.GridSetField(g, 0, 0, GridSubgrid, uint64(co), 0, 0, 0, 0, 0, 0)).To(MatchError(ErrWrongType))
		})
	})

	Context("colors", func() {
		It("round-trips the flattened palette", func() {
			fields := DefaultColors().Fields()
			Expect(fields).To(HaveLen(ColorFieldCount))
			c, err := ColorsFromFields(fields)
			Expect(err).To(BeNil())
			Expect(c).To(Equal(DefaultColors()))
		})
	})
})
