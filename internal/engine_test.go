package newt

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dispatch", func() {
	var tb *testBed

	BeforeEach(func() {
		tb = newTestBed(nil)
	})

	It("binds the result to the -v variable", func() {
		Expect(tb.run("-v", "btn", "CompactButton", "5", "3", "OK")).To(Succeed())
		Expect(tb.host.vars).To(HaveKeyWithValue("btn", "0x561000000000"))
	})

	It("drops the result without a variable", func() {
		bound := len(tb.host.vars)
		Expect(tb.run("CompactButton", "5", "3", "OK")).To(Succeed())
		Expect(tb.host.vars).To(HaveLen(bound))
	})

	It("reports the usage on a missing argument", func() {
		err := tb.run("-v", "btn", "CompactButton", "5", "3")
		var be *BindingError
		Expect(errors.As(err, &be)).To(BeTrue())
		Expect(be.Kind).To(Equal(KindMissingArgument))
		Expect(be.Position).To(Equal(2))
		Expect(be.UsageMessage()).To(Equal("newt: usage: newt CompactButton left top text"))
		Expect(tb.host.vars).ToNot(HaveKey("btn"))
	})

	It("separates unknown commands from wrapper failures", func() {
		err := tb.run("NoSuchThing")
		Expect(err).To(MatchError(ErrUnknownCommand))
		var be *BindingError
		Expect(errors.As(err, &be)).To(BeTrue())
		Expect(be.UsageMessage()).To(Equal("newt: unknown subcommand 'nosuchthing'"))

		err = tb.run("CompactButton")
		Expect(err).To(MatchError(ErrMissingArgument))
		Expect(err).ToNot(MatchError(ErrUnknownCommand))
	})

	It("expects lower-cased names", func() {
		err := tb.e.Dispatch(tb.ctx, "CompactButton", "", []string{"1", "1", "x"})
		Expect(err).To(MatchError(ErrUnknownCommand))
	})

	It("lists every command once, aliases included", func() {
		commands := tb.e.Commands()
		Expect(commands).To(ContainElements("CompactButton", "FormRun", "FormAddComponents", "ListboxAddEntry", "Init"))
		Expect(commands).To(HaveLen(len(tb.e.dispatch.entries)))
	})

	It("routes aliases to their target", func() {
		lb := tb.mustRun("Listbox", "1", "1", "5", "0")
		Expect(tb.run("ListboxAddEntry", lb, "one", "0x1")).To(Succeed())
		Expect(tb.mustRun("ListboxItemCount", lb)).To(Equal("1"))
	})

	It("binds out parameters to the named variables", func() {
		Expect(tb.run("GetScreenSize", "cols", "rows")).To(Succeed())
		Expect(tb.host.vars).To(HaveKeyWithValue("cols", "100"))
		Expect(tb.host.vars).To(HaveKeyWithValue("rows", "30"))

		btn := tb.mustRun("CompactButton", "5", "3", "OK")
		Expect(tb.run("ComponentGetPosition", btn, "l", "t")).To(Succeed())
		Expect(tb.host.vars).To(HaveKeyWithValue("l", "5"))
		Expect(tb.host.vars).To(HaveKeyWithValue("t", "3"))
	})

	It("fills optional parameters from their defaults", func() {
		cb := tb.mustRun("Checkbox", "1", "1", "Check")
		Expect(tb.mustRun("CheckboxGetValue", cb)).To(Equal(" "))

		cb = tb.mustRun("Checkbox", "1", "2", "Check", "*")
		Expect(tb.mustRun("CheckboxGetValue", cb)).To(Equal("*"))
	})

	It("validates every variadic token before the first call", func() {
		form := tb.mustRun("Form")
		a := tb.mustRun("Button", "1", "1", "A")
		err := tb.run("FormAddComponents", form, a, "0xbad")
		Expect(err).To(MatchError(ErrInvalidHandle))
		Expect(tb.run("FormDestroy", form)).To(Succeed())
		Expect(tb.e.LiveHandles()).To(Equal(1))
	})

	It("fails on a host that refuses the binding", func() {
		tb.host.failBind = "btn"
		err := tb.run("-v", "btn", "CompactButton", "5", "3", "OK")
		var be *BindingError
		Expect(errors.As(err, &be)).To(BeTrue())
		Expect(be.Phase).To(Equal(PhaseBind))
		Expect(be.Kind).To(Equal(KindHostFailure))
	})

	It("applies colors", func() {
		Expect(tb.run("SetColor", strconv.Itoa(int(toolkit.ColorsetRoot)), "white", "red")).To(Succeed())
		Expect(tb.tk.Palette()[0].Bg).To(Equal("red"))

		args := []string{"SetColors"}
		for i := 0; i < toolkit.ColorFieldCount; i++ {
			args = append(args, "blue")
		}
		Expect(tb.run(args...)).To(Succeed())
		Expect(tb.tk.Palette()[0].Fg).To(Equal("blue"))

		err := tb.run(args[:10]...)
		Expect(err).To(MatchError(ErrMissingArgument))
	})
})

var _ = Describe("Invocation adapter", func() {
	var tb *testBed
	var calls int

	BeforeEach(func() {
		calls = 0
		tb = newTestBed(func(e *engine) {
			Expect(e.RegisterNative("Probe", []Kind{KindInt, KindText}, []Kind{KindText}, func(ctx context.Context, tk *toolkit.Toolkit, args []any) ([]any, error) {
				calls++
				if args[0].(int32) < 0 {
					return nil, fmt.Errorf("negative %d", args[0].(int32))
				}
				return []any{fmt.Sprintf("%d:%s", args[0].(int32), args[1].(string))}, nil
			})).To(Succeed())
			Expect(e.RegisterCommand("Probe", "Probe", "n text")).To(Succeed())
		})
	})

	It("calls the native once with decoded arguments", func() {
		Expect(tb.mustRun("Probe", "7", "hi")).To(Equal("7:hi"))
		Expect(calls).To(Equal(1))
		Expect(tb.e.LiveTexts()).To(Equal(0))
	})

	It("never calls the native when decoding fails", func() {
		Expect(tb.run("Probe", "7")).To(MatchError(ErrMissingArgument))
		Expect(tb.run("Probe", "seven", "hi")).To(MatchError(ErrUnparseableArgument))
		Expect(calls).To(Equal(0))
	})

	It("wraps native failures", func() {
		err := tb.run("Probe", "-1", "hi")
		Expect(err).To(MatchError(ErrNativeFailure))
		Expect(err.Error()).To(ContainSubstring("negative -1"))
		Expect(calls).To(Equal(1))
		Expect(tb.e.LiveTexts()).To(Equal(0))
	})

	It("refuses registrations after export", func() {
		Expect(tb.e.RegisterNative("Late", nil, nil, nil)).ToNot(Succeed())
		Expect(tb.e.RegisterCommand("Late", "Probe", "")).ToNot(Succeed())
	})

	It("rejects duplicate and malformed natives", func() {
		e := CreateEngine(NewConfig().WithHost(newFakeHost())).(*engine)
		Expect(e.RegisterNative("CompactButton", nil, nil, nil)).ToNot(Succeed())
		Expect(e.RegisterNative("Void", []Kind{KindVoid}, nil, nil)).ToNot(Succeed())
		Expect(e.RegisterCommand("Nope", "Missing", "")).ToNot(Succeed())
	})
})

var _ = Describe("Screen session", func() {
	var tb *testBed

	BeforeEach(func() {
		tb = newTestBed(nil)
	})

	It("reports calls made before Init", func() {
		err := tb.run("Cls")
		Expect(err).To(MatchError(ErrNativeFailure))
		Expect(err).To(MatchError(ErrNotInitialized))
		Expect(err).To(MatchError(toolkit.ErrNotInitialized))
	})

	It("tracks Init and Finished", func() {
		Expect(tb.mustRun("Init")).To(Equal("0"))
		Expect(tb.e.Initialized()).To(BeTrue())
		Expect(tb.run("Cls")).To(Succeed())
		Expect(tb.run("CenteredWindow", "20", "5")).To(Succeed())

		Expect(tb.run("Finished")).To(Succeed())
		Expect(tb.e.Initialized()).To(BeFalse())
		Expect(tb.tk.Initialized()).To(BeFalse())
	})

	It("ignores Finished without Init", func() {
		Expect(tb.run("-v", "r", "Finished")).To(Succeed())
		Expect(tb.host.vars).ToNot(HaveKey("r"))
	})
})

var _ = Describe("Constants", func() {
	It("are bound read-only on instantiation", func() {
		tb := newTestBed(nil)
		Expect(tb.host.vars).To(HaveKeyWithValue("NEWT_KEY[F12]", strconv.Itoa(int(toolkit.KeyF12))))
		Expect(tb.host.vars).To(HaveKeyWithValue("NEWT_FLAG[RETURNEXIT]", strconv.Itoa(int(toolkit.FlagReturnExit))))
		Expect(tb.host.readonly).To(HaveKey("NEWT_COLORSET[ROOT]"))
		Expect(tb.host.Bind("NEWT_COLORSET[ROOT]", "9")).ToNot(Succeed())
	})

	It("are listed in order", func() {
		tb := newTestBed(nil)
		constants := tb.e.GetConstants()
		Expect(len(constants)).To(Equal(len(tb.host.readonly)))
		for i := 1; i < len(constants); i++ {
			Expect(constants[i-1].Name() < constants[i].Name()).To(BeTrue())
		}
	})
})

var _ = Describe("Instantiate", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	newEngine := func() *engine {
		return CreateEngine(NewConfig().
			WithHost(newFakeHost()).
			WithToolkit(toolkit.New(toolkit.NewConfig()))).(*engine)
	}

	It("fails or dispatches on the default runtime, never panics", func() {
		r := wazero.NewRuntime(ctx)
		DeferCleanup(func() {
			Expect(r.Close(ctx)).To(Succeed())
		})

		e := newEngine()
		_, err := e.Instantiate(ctx, r)
		if err != nil {
			Expect(err).To(MatchError(ContainSubstring("NewRuntimeConfigInterpreter")))
			return
		}
		Expect(func() {
			_ = e.Dispatch(ctx, "compactbutton", "btn", []string{"5", "3", "OK"})
		}).NotTo(Panic())
	})

	It("dispatches on the interpreter runtime", func() {
		r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
		DeferCleanup(func() {
			Expect(r.Close(ctx)).To(Succeed())
		})

		e := newEngine()
		_, err := e.Instantiate(ctx, r)
		Expect(err).To(BeNil())
		Expect(e.Dispatch(ctx, "init", "", nil)).To(Succeed())
		Expect(e.Dispatch(ctx, "compactbutton", "btn", []string{"5", "3", "OK"})).To(Succeed())
		Expect(e.host.(*fakeHost).vars).To(HaveKey("btn"))
	})

	It("rejects a module that lacks the natives", func() {
		r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
		DeferCleanup(func() {
			Expect(r.Close(ctx)).To(Succeed())
		})

		mod, err := r.NewHostModuleBuilder("empty").Instantiate(ctx)
		Expect(err).To(BeNil())

		e := newEngine()
		Expect(e.ExportFunctions(r.NewHostModuleBuilder("unused"))).To(Succeed())
		Expect(e.UseModule(ctx, mod)).To(MatchError(ContainSubstring("is not exported by module empty")))
		Expect(e.Dispatch(ctx, "init", "", nil)).ToNot(Succeed())
	})
})
