// Package toolkit is a headless, in-process widget library shaped after
// libnewt. Objects live on a pseudo heap and are identified by address;
// addresses are never reused within one Toolkit.
package toolkit

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

var (
	ErrNotInitialized = errors.New("toolkit: screen is not initialized")
	ErrInvalidObject  = errors.New("toolkit: invalid object")
	ErrWrongType      = errors.New("toolkit: object has the wrong type")
)

// Component is the address of a widget on the toolkit heap. 0 is null.
type Component uint64

// Grid is the address of a layout grid on the toolkit heap. 0 is null.
type Grid uint64

// EntryFilter sees every key delivered to an entry. Returning 0 drops the
// key, anything else is processed in its place.
type EntryFilter func(co Component, data uint64, ch, cursor int32) int32

// SuspendCallback runs when the suspend key is pressed inside a form.
type SuspendCallback func(data uint64)

// Callback is the generic component event shape. It is also used for help
// and destroy notifications.
type Callback func(co Component, data uint64)

const heapBase uint64 = 0x5610_0000_0000

// Config configures a Toolkit. The zero value is not usable, start from
// NewConfig.
type Config struct {
	cols, rows int32
	keys       []int32
	output     io.Writer
}

// NewConfig returns the default configuration: an 80x24 screen and an
// empty key queue.
func NewConfig() Config {
	return Config{cols: 80, rows: 24}
}

// WithScreenSize sets the screen dimensions reported after Init.
func (c Config) WithScreenSize(cols, rows int32) Config {
	c.cols = cols
	c.rows = rows
	return c
}

// WithKeys preloads the key queue read by modal calls.
func (c Config) WithKeys(keys ...int32) Config {
	c.keys = append(append([]int32(nil), c.keys...), keys...)
	return c
}

// WithOutput makes Refresh write a screen snapshot to w.
func (c Config) WithOutput(w io.Writer) Config {
	c.output = w
	return c
}

type window struct {
	left, top     int32
	width, height int32
	title         string
	forms         []Component
}

type rootText struct {
	col, row int32
	text     string
}

// Toolkit holds all state of one screen session.
type Toolkit struct {
	config      Config
	heap        map[uint64]any
	next        uint64
	initialized bool
	suspended   bool
	cursor      bool
	bells       int
	cols, rows  int32
	keys        []int32
	fdReady     []int32
	windows     []*window
	helpLines   []string
	rootTexts   []rootText
	colors      Colors
	suspendCb   SuspendCallback
	suspendData uint64
	helpCb      Callback
	notify      []func(addr uint64)
}

// New creates a Toolkit from config.
func New(config Config) *Toolkit {
	return &Toolkit{
		config: config,
		heap:   map[uint64]any{},
		next:   heapBase,
		cols:   config.cols,
		rows:   config.rows,
		keys:   append([]int32(nil), config.keys...),
		colors: DefaultColors(),
	}
}

// OnDestroy registers fn to be told the address of every object the
// toolkit frees. Hooks run after the object's own destroy callback.
func (tk *Toolkit) OnDestroy(fn func(addr uint64)) {
	tk.notify = append(tk.notify, fn)
}

// Feed appends keys to the input queue.
func (tk *Toolkit) Feed(keys ...int32) {
	tk.keys = append(tk.keys, keys...)
}

// SignalFD marks fd as ready. A running form watching fd exits with
// ExitFDReady.
func (tk *Toolkit) SignalFD(fd int32) {
	tk.fdReady = append(tk.fdReady, fd)
}

// Initialized reports whether Init was called without a matching Finished.
func (tk *Toolkit) Initialized() bool {
	return tk.initialized
}

// Bells returns how many times Bell was called.
func (tk *Toolkit) Bells() int {
	return tk.bells
}

func (tk *Toolkit) alloc(obj any) uint64 {
	addr := tk.next
	tk.next += 0x40
	tk.heap[addr] = obj
	return addr
}

func (tk *Toolkit) free(addr uint64) {
	delete(tk.heap, addr)
	for _, fn := range tk.notify {
		fn(addr)
	}
}

func (tk *Toolkit) component(co Component) (*component, error) {
	if co == 0 {
		return nil, fmt.Errorf("%w: null component", ErrInvalidObject)
	}
	obj, ok := tk.heap[uint64(co)]
	if !ok {
		return nil, fmt.Errorf("%w: no component at %#x", ErrInvalidObject, uint64(co))
	}
	c, ok := obj.(*component)
	if !ok {
		return nil, fmt.Errorf("%w: %#x is not a component", ErrWrongType, uint64(co))
	}
	return c, nil
}

func (tk *Toolkit) widget(co Component, kinds ...widgetKind) (*component, error) {
	c, err := tk.component(co)
	if err != nil {
		return nil, err
	}
	for _, k := range kinds {
		if c.kind == k {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %#x is a %s", ErrWrongType, uint64(co), c.kind)
}

func (tk *Toolkit) requireInit(op string) error {
	if !tk.initialized {
		return fmt.Errorf("%s: %w", op, ErrNotInitialized)
	}
	return nil
}

func (tk *Toolkit) nextKey() (int32, bool) {
	if len(tk.keys) == 0 {
		return 0, false
	}
	key := tk.keys[0]
	tk.keys = tk.keys[1:]
	return key, true
}

// Init starts a screen session.
func (tk *Toolkit) Init() int32 {
	tk.initialized = true
	tk.suspended = false
	tk.cursor = false
	Logger().Debug("screen initialized", zap.Int32("cols", tk.cols), zap.Int32("rows", tk.rows))
	return 0
}

// Finished ends the screen session. Objects stay alive.
func (tk *Toolkit) Finished() int32 {
	tk.initialized = false
	tk.windows = nil
	tk.helpLines = nil
	tk.rootTexts = nil
	Logger().Debug("screen finished")
	return 0
}

func (tk *Toolkit) Cls() error {
	if err := tk.requireInit("Cls"); err != nil {
		return err
	}
	tk.rootTexts = nil
	return nil
}

// Refresh writes a snapshot of the screen to the configured output.
func (tk *Toolkit) Refresh() error {
	if err := tk.requireInit("Refresh"); err != nil {
		return err
	}
	if tk.config.output != nil {
		_, err := io.WriteString(tk.config.output, tk.Screen()+"\n")
		return err
	}
	return nil
}

func (tk *Toolkit) Bell() {
	tk.bells++
}

func (tk *Toolkit) Suspend() {
	tk.suspended = true
}

func (tk *Toolkit) Resume() int32 {
	tk.suspended = false
	return 0
}

// WaitForKey consumes one key from the queue, if any.
func (tk *Toolkit) WaitForKey() {
	tk.nextKey()
}

func (tk *Toolkit) ClearKeyBuffer() {
	tk.keys = nil
}

func (tk *Toolkit) CursorOff() {
	tk.cursor = false
}

func (tk *Toolkit) CursorOn() {
	tk.cursor = true
}

// Delay is a no-op on a headless screen.
func (tk *Toolkit) Delay(usecs uint32) {
	Logger().Debug("delay", zap.Uint32("usecs", usecs))
}

func (tk *Toolkit) ResizeScreen(redraw int32) {
	tk.cols, tk.rows = tk.config.cols, tk.config.rows
	if redraw != 0 {
		_ = tk.Refresh()
	}
}

func (tk *Toolkit) GetScreenSize() (cols, rows int32) {
	return tk.cols, tk.rows
}

func (tk *Toolkit) DrawRootText(col, row int32, text string) {
	if col < 0 {
		col = tk.cols + col - int32(len(text))
	}
	if row < 0 {
		row = tk.rows + row
	}
	tk.rootTexts = append(tk.rootTexts, rootText{col: col, row: row, text: text})
}

func (tk *Toolkit) PushHelpLine(text string) {
	tk.helpLines = append(tk.helpLines, text)
}

func (tk *Toolkit) PopHelpLine() {
	if len(tk.helpLines) > 0 {
		tk.helpLines = tk.helpLines[:len(tk.helpLines)-1]
	}
}

func (tk *Toolkit) RedrawHelpLine() {}

// OpenWindow pushes a window. Returns 0 on success, 1 when it does not fit
// on the screen.
func (tk *Toolkit) OpenWindow(left, top int32, width, height uint32, title string) (int32, error) {
	if err := tk.requireInit("OpenWindow"); err != nil {
		return 1, err
	}
	w := &window{left: left, top: top, width: int32(width), height: int32(height), title: title}
	tk.windows = append(tk.windows, w)
	if left+w.width > tk.cols || top+w.height > tk.rows {
		return 1, nil
	}
	return 0, nil
}

func (tk *Toolkit) CenteredWindow(width, height uint32, title string) (int32, error) {
	left := (tk.cols - int32(width)) / 2
	top := (tk.rows - int32(height)) / 2
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	return tk.OpenWindow(left, top, width, height, title)
}

func (tk *Toolkit) PopWindow() {
	tk.PopWindowNoRefresh()
	_ = tk.Refresh()
}

func (tk *Toolkit) PopWindowNoRefresh() {
	if len(tk.windows) > 0 {
		tk.windows = tk.windows[:len(tk.windows)-1]
	}
}

func (tk *Toolkit) SetSuspendCallback(cb SuspendCallback, data uint64) {
	tk.suspendCb = cb
	tk.suspendData = data
}

func (tk *Toolkit) SetHelpCallback(cb Callback) {
	tk.helpCb = cb
}

func (tk *Toolkit) topWindow() *window {
	if len(tk.windows) == 0 {
		return nil
	}
	return tk.windows[len(tk.windows)-1]
}
