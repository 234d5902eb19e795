package newt

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jerbob92/wazero-newt/toolkit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Callback bridge", func() {
	var tb *testBed
	var form string

	BeforeEach(func() {
		tb = newTestBed(nil)
		Expect(tb.run("Init")).To(Succeed())
		form = tb.mustRun("Form", "NULL", "0x77")
	})

	runForm := func() (string, string) {
		Expect(tb.run("FormRun", form, "reason", "value")).To(Succeed())
		return tb.host.vars["reason"], tb.host.vars["value"]
	}

	Context("FormRun", func() {
		It("binds the component that ended the form", func() {
			btn := tb.mustRun("CompactButton", "1", "1", "OK")
			Expect(tb.run("FormAddComponents", form, btn)).To(Succeed())
			tb.tk.Feed(toolkit.KeyEnter)

			reason, value := runForm()
			Expect(reason).To(Equal("COMPONENT"))
			Expect(value).To(Equal(btn))
		})

		It("binds the hotkey", func() {
			tb.tk.Feed(toolkit.KeyF12)
			reason, value := runForm()
			Expect(reason).To(Equal("HOTKEY"))
			Expect(value).To(Equal(strconv.Itoa(int(toolkit.KeyF12))))
		})

		It("binds the ready descriptor", func() {
			Expect(tb.run("FormWatchFd", form, "5", strconv.Itoa(int(toolkit.FDRead)))).To(Succeed())
			tb.tk.SignalFD(5)
			reason, value := runForm()
			Expect(reason).To(Equal("FDREADY"))
			Expect(value).To(Equal("5"))
		})

		It("binds the timer with a zero value", func() {
			Expect(tb.run("FormSetTimer", form, "100")).To(Succeed())
			reason, value := runForm()
			Expect(reason).To(Equal("TIMER"))
			Expect(value).To(Equal("0"))
		})

		It("needs both variable names", func() {
			Expect(tb.run("FormRun", form, "reason")).To(MatchError(ErrMissingArgument))
		})
	})

	Context("component callbacks", func() {
		var btn string

		BeforeEach(func() {
			btn = tb.mustRun("CompactButton", "1", "1", "OK")
			Expect(tb.run("FormAddComponents", form, btn)).To(Succeed())
		})

		It("binds the component and data before running the code", func() {
			var seen []string
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				seen = append(seen, tb.host.vars[VarComponent], tb.host.vars[VarData])
				return 0, nil
			}
			Expect(tb.run("ComponentAddCallback", btn, "pressed", "payload")).To(Succeed())
			tb.tk.Feed(toolkit.KeyEnter)
			runForm()

			Expect(tb.host.evals).To(Equal([]string{"pressed"}))
			Expect(seen).To(Equal([]string{btn, "payload"}))
		})

		It("lets host code dispatch again while the form runs", func() {
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				return 0, tb.e.Dispatch(ctx, "compactbutton", "inner", []string{"2", "2", "Nested"})
			}
			Expect(tb.run("ComponentAddCallback", btn, "pressed")).To(Succeed())
			callbacks, handles := tb.e.LiveCallbacks(), tb.e.LiveHandles()
			tb.tk.Feed(toolkit.KeyEnter)

			reason, value := runForm()
			Expect(reason).To(Equal("COMPONENT"))
			Expect(value).To(Equal(btn))
			Expect(tb.host.vars).To(HaveKey("inner"))
			Expect(tb.host.vars["inner"]).ToNot(Equal(btn))
			Expect(tb.run("ComponentGetSize", tb.host.vars["inner"], "w", "h")).To(Succeed())
			Expect(tb.host.vars).To(HaveKeyWithValue("w", "9"))
			Expect(tb.e.LiveTexts()).To(Equal(0))

			Expect(tb.e.LiveCallbacks()).To(Equal(callbacks))
			Expect(tb.e.LiveHandles()).To(Equal(handles + 1))

			tb.tk.Feed(toolkit.KeyEnter)
			reason, value = runForm()
			Expect(reason).To(Equal("COMPONENT"))
			Expect(value).To(Equal(btn))
			Expect(tb.host.evals).To(Equal([]string{"pressed", "pressed"}))
		})

		It("keeps the form running when host code fails", func() {
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				return 1, fmt.Errorf("syntax error")
			}
			Expect(tb.run("ComponentAddCallback", btn, "broken")).To(Succeed())
			tb.tk.Feed(toolkit.KeyEnter)
			reason, _ := runForm()
			Expect(reason).To(Equal("COMPONENT"))
		})

		It("removes the callback with empty code", func() {
			Expect(tb.run("ComponentAddCallback", btn, "pressed")).To(Succeed())
			Expect(tb.e.LiveCallbacks()).To(Equal(1))
			Expect(tb.run("ComponentAddCallback", btn, "")).To(Succeed())
			Expect(tb.e.LiveCallbacks()).To(Equal(0))

			tb.tk.Feed(toolkit.KeyEnter)
			runForm()
			Expect(tb.host.evals).To(BeEmpty())
		})

		It("runs a destroy callback once and forgets the handle", func() {
			Expect(tb.run("ComponentAddCallback", btn, "pressed")).To(Succeed())
			Expect(tb.run("ComponentAddDestroyCallback", btn, "gone")).To(Succeed())
			Expect(tb.e.LiveCallbacks()).To(Equal(2))

			Expect(tb.run("ComponentDestroy", btn)).To(Succeed())
			Expect(tb.host.evals).To(Equal([]string{"gone"}))
			Expect(tb.e.LiveCallbacks()).To(Equal(0))
			Expect(tb.run("ComponentAddCallback", btn, "pressed")).To(MatchError(ErrInvalidHandle))
		})
	})

	Context("entry filters", func() {
		var entry string

		BeforeEach(func() {
			entry = tb.mustRun("Entry", "1", "1", "", "10")
			Expect(tb.run("FormAddComponents", form, entry)).To(Succeed())
		})

		It("drops keys the host code rejects", func() {
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				Expect(tb.host.vars[VarEntry]).To(Equal(entry))
				if tb.host.vars[VarChar] == strconv.Itoa('x') {
					return 1, nil
				}
				return 0, nil
			}
			Expect(tb.run("EntrySetFilter", entry, "onlyNoX")).To(Succeed())
			tb.tk.Feed('a', 'x', 'b', toolkit.KeyF12)
			runForm()

			Expect(tb.mustRun("EntryGetValue", entry)).To(Equal("ab"))
			Expect(tb.host.evals).To(HaveLen(3))
			Expect(tb.host.vars[VarCursor]).To(Equal("1"))
		})

		It("passes every key through once removed", func() {
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				return 1, nil
			}
			Expect(tb.run("EntrySetFilter", entry, "rejectAll")).To(Succeed())
			Expect(tb.run("EntrySetFilter", entry, "")).To(Succeed())
			tb.tk.Feed('o', 'k', toolkit.KeyF12)
			runForm()

			Expect(tb.mustRun("EntryGetValue", entry)).To(Equal("ok"))
			Expect(tb.host.evals).To(BeEmpty())
		})
	})

	Context("global callbacks", func() {
		It("runs the help callback with the form and its help tag", func() {
			var seen []string
			tb.host.eval = func(ctx context.Context, code string) (int, error) {
				seen = append(seen, code, tb.host.vars[VarComponent], tb.host.vars[VarData])
				return 0, nil
			}
			Expect(tb.run("SetHelpCallback", "showHelp")).To(Succeed())
			tb.tk.Feed(toolkit.KeyF1, toolkit.KeyF12)
			runForm()
			Expect(seen).To(Equal([]string{"showHelp", form, "0x77"}))
		})

		It("runs the suspend callback", func() {
			Expect(tb.run("SetSuspendCallback", "onSuspend")).To(Succeed())
			tb.tk.Feed(toolkit.KeySuspend, toolkit.KeyF12)
			runForm()
			Expect(tb.host.evals).To(Equal([]string{"onSuspend"}))
		})

		It("clears a global callback with empty code", func() {
			Expect(tb.run("SetSuspendCallback", "onSuspend")).To(Succeed())
			Expect(tb.run("SetSuspendCallback", "")).To(Succeed())
			tb.tk.Feed(toolkit.KeySuspend, toolkit.KeyF12)
			runForm()
			Expect(tb.host.evals).To(BeEmpty())
		})
	})
})
