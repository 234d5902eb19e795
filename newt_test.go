package newt

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/jerbob92/wazero-newt/script"
	"github.com/jerbob92/wazero-newt/toolkit"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNewt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Newt Suite")
}

var _ = Describe("newt builtin", func() {
	var (
		ctx    context.Context
		in     *script.Interp
		tk     *toolkit.Toolkit
		engine Engine
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
		in = script.New(stdout, stderr)
		tk = toolkit.New(toolkit.NewConfig().WithScreenSize(80, 24))

		runtime := NewRuntime(ctx)
		DeferCleanup(func() {
			Expect(runtime.Close(ctx)).To(Succeed())
		})

		var err error
		engine, err = Instantiate(ctx, runtime, NewConfig().
			WithHost(in).
			WithToolkit(tk).
			WithStderr(stderr))
		Expect(err).To(BeNil())

		in.RegisterBuiltin("newt", func(ctx context.Context, _ *script.Interp, args []string) int {
			return engine.Builtin(ctx, args)
		})
	})

	run := func(src string) int {
		status, err := in.Run(ctx, src)
		Expect(err).To(BeNil())
		return status
	}

	get := func(name string) string {
		v, _ := in.Get(name)
		return v
	}

	It("runs a form from script code", func() {
		tk.Feed(toolkit.KeyEnter)
		Expect(run(`
newt Init
newt Cls
newt -v form Form
newt -v ok CompactButton 1 1 OK
newt FormAddComponents "$form" "$ok"
newt FormRun "$form" reason value
echo "$reason"
[ "$value" = "$ok" ] && echo same
newt FormDestroy "$form"
newt Finished
`)).To(Equal(0))
		Expect(stdout.String()).To(Equal("COMPONENT\nsame\n"))
		Expect(stderr.String()).To(BeEmpty())
		Expect(engine.LiveTexts()).To(Equal(0))
		Expect(engine.Initialized()).To(BeFalse())
	})

	It("matches subcommands case-insensitively", func() {
		Expect(run(`newt -v b COMPACTBUTTON 1 1 x`)).To(Equal(0))
		Expect(get("b")).To(HavePrefix("0x"))
	})

	It("binds results into array elements", func() {
		Expect(run(`k=btn; newt -v 'w[$k]' CompactButton 1 1 x`)).To(Equal(0))
		Expect(get("w[$k]")).To(HavePrefix("0x"))
	})

	DescribeTable("exit statuses",
		func(src string, status int, message string) {
			Expect(run(src)).To(Equal(status))
			Expect(stderr.String()).To(ContainSubstring(message))
		},
		Entry("no subcommand", `newt`, 2, "newt: usage: newt [-v varname] SubCommand"),
		Entry("-v without a name", `newt -v`, 2, "requires an argument"),
		Entry("-v with an illegal name", `newt -v 1bad Cls`, 2, "`1bad': not a valid identifier"),
		Entry("-v without a subcommand", `newt -v x`, 2, "newt: usage:"),
		Entry("unknown subcommand", `newt NoSuchThing`, 1, "newt: unknown subcommand 'NoSuchThing'"),
		Entry("missing argument", `newt CompactButton 1`, 1, "newt: usage: newt CompactButton left top text"),
		Entry("unparseable argument", `newt CompactButton one 1 x`, 1, "newt: usage: newt CompactButton left top text"),
		Entry("native failure", `newt Cls`, 1, "not_initialized"),
	)

	It("binds the constants read-only", func() {
		Expect(get("NEWT_KEY[F12]")).To(Equal(strconv.Itoa(int(toolkit.KeyF12))))
		Expect(run(`NEWT_KEY[F12]=1`)).To(Equal(1))
		Expect(get("NEWT_KEY[F12]")).To(Equal(strconv.Itoa(int(toolkit.KeyF12))))
	})

	It("runs script functions as component callbacks", func() {
		tk.Feed(toolkit.KeyEnter)
		Expect(run(`
onpress() { pressed="$NEWT_CB_DATA"; who="$NEWT_COMPONENT"; }
newt Init
newt -v form Form
newt -v ok CompactButton 1 1 OK
newt FormAddComponents "$form" "$ok"
newt ComponentAddCallback "$ok" onpress hello
newt FormRun "$form" reason value
`)).To(Equal(0))
		Expect(get("pressed")).To(Equal("hello"))
		Expect(get("who")).To(Equal(get("ok")))
	})

	It("filters entry keys through script code", func() {
		tk.Feed('a', 'x', 'b', toolkit.KeyF12)
		Expect(run(`
nox() { [ "$NEWT_CH" != 120 ]; }
newt Init
newt -v form Form
newt -v e Entry 1 1 "" 10
newt FormAddComponents "$form" "$e"
newt EntrySetFilter "$e" nox
newt FormRun "$form" reason value
newt -v text EntryGetValue "$e"
`)).To(Equal(0))
		Expect(get("reason")).To(Equal("HOTKEY"))
		Expect(get("text")).To(Equal("ab"))
	})

	It("rejects handles after their component is destroyed", func() {
		Expect(run(`
gone() { destroyed=yes; }
newt -v b CompactButton 1 1 x
newt ComponentAddDestroyCallback "$b" gone
newt ComponentDestroy "$b"
newt ComponentGetSize "$b" w h
`)).To(Equal(1))
		Expect(get("destroyed")).To(Equal("yes"))
		Expect(get("w")).To(BeEmpty())
		Expect(stderr.String()).To(ContainSubstring("newt: usage: newt ComponentGetSize co widthVar heightVar"))
		Expect(engine.LiveCallbacks()).To(Equal(0))
	})

	It("exposes the command list", func() {
		Expect(engine.Commands()).To(ContainElements("CompactButton", "FormRun", "ListboxAddEntry"))
	})
})

var _ = Describe("SetLogger", func() {
	It("is used by engines configured without a logger", func() {
		ctx := context.Background()
		previous := Logger()
		DeferCleanup(func() {
			SetLogger(previous)
		})
		core, logs := observer.New(zap.DebugLevel)
		SetLogger(zap.New(core))

		runtime := NewRuntime(ctx)
		DeferCleanup(func() {
			Expect(runtime.Close(ctx)).To(Succeed())
		})
		engine, err := Instantiate(ctx, runtime, NewConfig().
			WithHost(script.New(&bytes.Buffer{}, &bytes.Buffer{})).
			WithToolkit(toolkit.New(toolkit.NewConfig())))
		Expect(err).To(BeNil())

		_ = engine.Dispatch(ctx, "cls", "", nil)
		Expect(logs.FilterMessage("dispatch").Len()).To(Equal(1))
	})
})
