package newt

import (
	"context"
	"strconv"

	"github.com/jerbob92/wazero-newt/toolkit"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// Host is the interpreter on the other side of the binding.
type Host interface {
	// Bind writes a variable. Names may be array references (NAME[KEY]).
	Bind(name, value string) error
	// Eval runs host code synchronously and returns its exit status.
	Eval(ctx context.Context, code string) (int, error)
}

// ReadonlyBinder is implemented by hosts that can mark a variable read-only.
type ReadonlyBinder interface {
	BindReadonly(name, value string) error
}

// Names of the variables bound before host code runs.
const (
	VarEntry     = "NEWT_ENTRY"
	VarChar      = "NEWT_CH"
	VarCursor    = "NEWT_CURSOR"
	VarComponent = "NEWT_COMPONENT"
	VarData      = "NEWT_CB_DATA"
)

type hostCode struct {
	code string
	data string
}

// bridge routes toolkit callbacks into host code. Each callback shape has
// its own map; global callbacks live in globals keyed by slot. No lock is
// held while host code runs, so host code may dispatch again and register
// or drop callbacks for other handles.
type bridge struct {
	e        *engine
	filters  *xsync.MapOf[uint64, hostCode]
	events   *xsync.MapOf[uint64, hostCode]
	destroys *xsync.MapOf[uint64, hostCode]
	globals  *xsync.MapOf[CallbackSlot, hostCode]
	stack    []context.Context
	log      *zap.Logger
}

func newBridge(e *engine, log *zap.Logger) *bridge {
	return &bridge{
		e:        e,
		filters:  xsync.NewMapOf[uint64, hostCode](),
		events:   xsync.NewMapOf[uint64, hostCode](),
		destroys: xsync.NewMapOf[uint64, hostCode](),
		globals:  xsync.NewMapOf[CallbackSlot, hostCode](),
		log:      log,
	}
}

// enter makes ctx the context for callbacks fired until the returned
// function is called.
func (b *bridge) enter(ctx context.Context) func() {
	b.stack = append(b.stack, ctx)
	depth := len(b.stack)
	return func() {
		b.stack = b.stack[:depth-1]
	}
}

func (b *bridge) current() context.Context {
	if len(b.stack) == 0 {
		return b.e.Attach(context.Background())
	}
	return b.stack[len(b.stack)-1]
}

// The register functions remove the registration when code is empty.

func (b *bridge) registerFilter(co toolkit.Component, code string) {
	b.store(b.filters, uint64(co), hostCode{code: code})
}

func (b *bridge) registerEvent(co toolkit.Component, code, data string) {
	b.store(b.events, uint64(co), hostCode{code: code, data: data})
}

func (b *bridge) registerDestroy(co toolkit.Component, code string) {
	b.store(b.destroys, uint64(co), hostCode{code: code})
}

func (b *bridge) store(m *xsync.MapOf[uint64, hostCode], addr uint64, reg hostCode) {
	if reg.code == "" {
		m.Delete(addr)
		return
	}
	m.Store(addr, reg)
}

func (b *bridge) setGlobal(slot CallbackSlot, code string) {
	if code == "" {
		b.globals.Delete(slot)
		return
	}
	b.globals.Store(slot, hostCode{code: code})
}

// drop forgets every registration for a destroyed handle.
func (b *bridge) drop(addr uint64) {
	b.filters.Delete(addr)
	b.events.Delete(addr)
	b.destroys.Delete(addr)
}

// registrations counts the live per-handle registrations.
func (b *bridge) registrations() int {
	return b.filters.Size() + b.events.Size() + b.destroys.Size()
}

func (b *bridge) bind(ctx context.Context, name, value string) error {
	if err := b.e.host.Bind(name, value); err != nil {
		return newError(PhaseCallback, KindHostFailure).
			Detail("could not bind %s", name).Cause(err).Build()
	}
	return nil
}

func (b *bridge) componentToken(ctx context.Context, co toolkit.Component) string {
	token, err := b.e.types[KindComponent].ToToken(ctx, co)
	if err != nil {
		return formatPointer(uint64(co))
	}
	return token
}

func (b *bridge) run(ctx context.Context, what string, code string) (int, error) {
	b.log.Debug("firing callback", zap.String("callback", what), zap.String("code", code))
	status, err := b.e.host.Eval(ctx, code)
	if err != nil {
		err = newError(PhaseCallback, KindHostFailure).Detail("%s callback failed", what).Cause(err).Build()
		b.log.Warn("callback failed", zap.String("callback", what), zap.Error(err))
	}
	return status, err
}

// filter passes ch through untouched when no filter is registered. A zero
// status from the host code accepts ch; anything else drops the key.
func (b *bridge) filter(co toolkit.Component, data uint64, ch, cursor int32) int32 {
	reg, ok := b.filters.Load(uint64(co))
	if !ok {
		return ch
	}
	ctx := b.current()
	if err := b.bind(ctx, VarEntry, b.componentToken(ctx, co)); err != nil {
		return 0
	}
	if err := b.bind(ctx, VarChar, strconv.FormatInt(int64(ch), 10)); err != nil {
		return 0
	}
	if err := b.bind(ctx, VarCursor, strconv.FormatInt(int64(cursor), 10)); err != nil {
		return 0
	}
	status, err := b.run(ctx, "entry filter", reg.code)
	if err != nil || status != 0 {
		return 0
	}
	return ch
}

func (b *bridge) suspend(data uint64) {
	reg, ok := b.globals.Load(slotSuspend)
	if !ok {
		return
	}
	_, _ = b.run(b.current(), "suspend", reg.code)
}

func (b *bridge) componentEvent(co toolkit.Component, data uint64) {
	reg, ok := b.events.Load(uint64(co))
	if !ok {
		return
	}
	ctx := b.current()
	if b.bind(ctx, VarComponent, b.componentToken(ctx, co)) != nil {
		return
	}
	if b.bind(ctx, VarData, reg.data) != nil {
		return
	}
	_, _ = b.run(ctx, "component", reg.code)
}

// help is called with the form and its help tag.
func (b *bridge) help(form toolkit.Component, tag uint64) {
	reg, ok := b.globals.Load(slotHelp)
	if !ok {
		return
	}
	ctx := b.current()
	if b.bind(ctx, VarComponent, b.componentToken(ctx, form)) != nil {
		return
	}
	if b.bind(ctx, VarData, formatPointer(tag)) != nil {
		return
	}
	_, _ = b.run(ctx, "help", reg.code)
}

// destroy fires at most once per handle: the registration is removed
// before the host code runs.
func (b *bridge) destroy(co toolkit.Component, data uint64) {
	reg, ok := b.destroys.LoadAndDelete(uint64(co))
	if !ok {
		return
	}
	_, _ = b.run(b.current(), "destroy", reg.code)
}
