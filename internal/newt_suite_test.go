package newt

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/tetratelabs/wazero"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNewt(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Newt Suite")
}

// fakeHost records every binding and hands Eval to a test-provided func.
type fakeHost struct {
	vars     map[string]string
	readonly map[string]bool
	evals    []string
	eval     func(ctx context.Context, code string) (int, error)
	failBind string
}

func newFakeHost() *fakeHost {
	return &fakeHost{vars: map[string]string{}, readonly: map[string]bool{}}
}

func (h *fakeHost) Bind(name, value string) error {
	if h.failBind != "" && name == h.failBind {
		return fmt.Errorf("%s: cannot assign", name)
	}
	if h.readonly[name] {
		return fmt.Errorf("%s: readonly variable", name)
	}
	h.vars[name] = value
	return nil
}

func (h *fakeHost) BindReadonly(name, value string) error {
	if err := h.Bind(name, value); err != nil {
		return err
	}
	h.readonly[name] = true
	return nil
}

func (h *fakeHost) Eval(ctx context.Context, code string) (int, error) {
	h.evals = append(h.evals, code)
	if h.eval == nil {
		return 0, nil
	}
	return h.eval(ctx, code)
}

type testBed struct {
	ctx     context.Context
	host    *fakeHost
	tk      *toolkit.Toolkit
	e       *engine
	runtime wazero.Runtime
}

// newTestBed creates an engine. setup runs before the module is
// instantiated, so it may register natives and commands.
func newTestBed(setup func(e *engine)) *testBed {
	tb := &testBed{
		ctx:  context.Background(),
		host: newFakeHost(),
		tk:   toolkit.New(toolkit.NewConfig().WithScreenSize(100, 30)),
	}
	tb.e = CreateEngine(NewConfig().WithHost(tb.host).WithToolkit(tb.tk)).(*engine)
	if setup != nil {
		setup(tb.e)
	}
	tb.runtime = wazero.NewRuntimeWithConfig(tb.ctx, wazero.NewRuntimeConfigInterpreter())
	_, err := tb.e.Instantiate(tb.ctx, tb.runtime)
	Expect(err).To(BeNil())
	DeferCleanup(func() {
		Expect(tb.runtime.Close(tb.ctx)).To(Succeed())
	})
	return tb
}

// run dispatches a command line. A leading "-v name" pair sets the result
// variable.
func (tb *testBed) run(words ...string) error {
	resultVar := ""
	if len(words) >= 2 && words[0] == "-v" {
		resultVar = words[1]
		words = words[2:]
	}
	return tb.e.Dispatch(tb.ctx, strings.ToLower(words[0]), resultVar, words[1:])
}

// mustRun dispatches and returns the value bound to the result variable.
func (tb *testBed) mustRun(words ...string) string {
	delete(tb.host.vars, "REPLY")
	Expect(tb.run(append([]string{"-v", "REPLY"}, words...)...)).To(Succeed())
	return tb.host.vars["REPLY"]
}
