package toolkit

import (
	"strings"

	"go.uber.org/zap"
)

type widgetKind int

const (
	kindButton widgetKind = iota + 1
	kindCompactButton
	kindLabel
	kindCheckbox
	kindRadio
	kindEntry
	kindScale
	kindTextbox
	kindListbox
	kindScrollbar
	kindForm
)

func (k widgetKind) String() string {
	switch k {
	case kindButton:
		return "button"
	case kindCompactButton:
		return "compact button"
	case kindLabel:
		return "label"
	case kindCheckbox:
		return "checkbox"
	case kindRadio:
		return "radio button"
	case kindEntry:
		return "entry"
	case kindScale:
		return "scale"
	case kindTextbox:
		return "textbox"
	case kindListbox:
		return "listbox"
	case kindScrollbar:
		return "scrollbar"
	case kindForm:
		return "form"
	}
	return "unknown"
}

type hook struct {
	cb   Callback
	data uint64
}

type radioGroup struct {
	members []Component
	current Component
}

type listItem struct {
	text     string
	data     uint64
	selected bool
}

type component struct {
	addr                     uint64
	kind                     widgetKind
	left, top, width, height int32
	text                     string
	flags                    int32
	takesFocus               bool
	colors                   [2]int32
	callback                 *hook
	destroy                  *hook
	parent                   Component

	value byte
	seq   string
	group *radioGroup

	cursor     int32
	filter     EntryFilter
	filterData uint64

	full   int64
	amount uint64
	where  int32
	total  int32

	lines   []string
	items   []listItem
	current int

	form *formState
}

func (c *component) handle() Component {
	return Component(c.addr)
}

func (c *component) fire() {
	if c.callback == nil {
		return
	}
	h := *c.callback
	h.cb(c.handle(), h.data)
}

func (tk *Toolkit) newComponent(c *component) Component {
	c.addr = tk.alloc(c)
	Logger().Debug("component created", zap.Stringer("kind", c.kind), zap.Uint64("addr", c.addr))
	return c.handle()
}

// CompactButton creates a single-line button.
func (tk *Toolkit) CompactButton(left, top int32, text string) Component {
	return tk.newComponent(&component{
		kind: kindCompactButton, left: left, top: top,
		width: int32(len(text)) + 3, height: 1,
		text: text, takesFocus: true,
	})
}

// Button creates a framed button.
func (tk *Toolkit) Button(left, top int32, text string) Component {
	return tk.newComponent(&component{
		kind: kindButton, left: left, top: top,
		width: int32(len(text)) + 5, height: 4,
		text: text, takesFocus: true,
	})
}

func (tk *Toolkit) Label(left, top int32, text string) Component {
	return tk.newComponent(&component{
		kind: kindLabel, left: left, top: top,
		width: int32(len(text)), height: 1, text: text,
		colors: [2]int32{ColorsetLabel, ColorsetLabel},
	})
}

func (tk *Toolkit) LabelSetText(co Component, text string) error {
	c, err := tk.widget(co, kindLabel)
	if err != nil {
		return err
	}
	c.text = text
	c.width = int32(len(text))
	return nil
}

func (tk *Toolkit) LabelSetColors(co Component, colorset int32) error {
	c, err := tk.widget(co, kindLabel)
	if err != nil {
		return err
	}
	c.colors = [2]int32{colorset, colorset}
	return nil
}

// Checkbox creates a checkbox cycling through the characters of seq,
// " *" when seq is empty.
func (tk *Toolkit) Checkbox(left, top int32, text string, defValue byte, seq string) Component {
	if seq == "" {
		seq = " *"
	}
	return tk.newComponent(&component{
		kind: kindCheckbox, left: left, top: top,
		width: int32(len(text)) + 4, height: 1,
		text: text, value: defValue, seq: seq, takesFocus: true,
	})
}

func (tk *Toolkit) CheckboxGetValue(co Component) (byte, error) {
	c, err := tk.widget(co, kindCheckbox)
	if err != nil {
		return 0, err
	}
	return c.value, nil
}

func (tk *Toolkit) CheckboxSetValue(co Component, value byte) error {
	c, err := tk.widget(co, kindCheckbox)
	if err != nil {
		return err
	}
	c.value = value
	return nil
}

func (tk *Toolkit) CheckboxSetFlags(co Component, flags int32, sense FlagsSense) error {
	c, err := tk.widget(co, kindCheckbox)
	if err != nil {
		return err
	}
	c.flags = sense.apply(c.flags, flags)
	c.takesFocus = c.flags&FlagDisabled == 0
	return nil
}

func (c *component) toggle() {
	i := strings.IndexByte(c.seq, c.value)
	c.value = c.seq[(i+1)%len(c.seq)]
}

// Radiobutton creates a radio button. A non-null prev joins its group.
func (tk *Toolkit) Radiobutton(left, top int32, text string, isDefault int32, prev Component) (Component, error) {
	group := &radioGroup{}
	if prev != 0 {
		p, err := tk.widget(prev, kindRadio)
		if err != nil {
			return 0, err
		}
		group = p.group
	}
	c := &component{
		kind: kindRadio, left: left, top: top,
		width: int32(len(text)) + 4, height: 1,
		text: text, value: ' ', group: group, takesFocus: true,
	}
	co := tk.newComponent(c)
	group.members = append(group.members, co)
	if isDefault != 0 {
		tk.selectRadio(c)
	}
	return co, nil
}

func (tk *Toolkit) selectRadio(c *component) {
	for _, m := range c.group.members {
		if mc, err := tk.component(m); err == nil {
			mc.value = ' '
		}
	}
	c.value = '*'
	c.group.current = c.handle()
}

func (tk *Toolkit) RadioGetCurrent(setMember Component) (Component, error) {
	c, err := tk.widget(setMember, kindRadio)
	if err != nil {
		return 0, err
	}
	return c.group.current, nil
}

func (tk *Toolkit) RadioSetCurrent(setMember Component) error {
	c, err := tk.widget(setMember, kindRadio)
	if err != nil {
		return err
	}
	tk.selectRadio(c)
	return nil
}

func (tk *Toolkit) Scale(left, top, width int32, fullValue int64) Component {
	return tk.newComponent(&component{
		kind: kindScale, left: left, top: top,
		width: width, height: 1, full: fullValue,
		colors: [2]int32{ColorsetEmptyScale, ColorsetFullScale},
	})
}

func (tk *Toolkit) ScaleSet(co Component, amount uint64) error {
	c, err := tk.widget(co, kindScale)
	if err != nil {
		return err
	}
	c.amount = amount
	return nil
}

func (tk *Toolkit) ScaleSetColors(co Component, empty, full int32) error {
	c, err := tk.widget(co, kindScale)
	if err != nil {
		return err
	}
	c.colors = [2]int32{empty, full}
	return nil
}

func (tk *Toolkit) VerticalScrollbar(left, top, height, normalColorset, thumbColorset int32) Component {
	return tk.newComponent(&component{
		kind: kindScrollbar, left: left, top: top,
		width: 1, height: height,
		colors: [2]int32{normalColorset, thumbColorset},
	})
}

func (tk *Toolkit) ScrollbarSet(co Component, where, total int32) error {
	c, err := tk.widget(co, kindScrollbar)
	if err != nil {
		return err
	}
	c.where, c.total = where, total
	return nil
}

func (tk *Toolkit) ScrollbarSetColors(co Component, normal, thumb int32) error {
	c, err := tk.widget(co, kindScrollbar)
	if err != nil {
		return err
	}
	c.colors = [2]int32{normal, thumb}
	return nil
}

func (tk *Toolkit) ComponentTakesFocus(co Component, val int32) error {
	c, err := tk.component(co)
	if err != nil {
		return err
	}
	c.takesFocus = val != 0
	return nil
}

// ComponentAddCallback sets the component's event callback, replacing any
// previous one. A nil cb clears it.
func (tk *Toolkit) ComponentAddCallback(co Component, cb Callback, data uint64) error {
	c, err := tk.component(co)
	if err != nil {
		return err
	}
	if cb == nil {
		c.callback = nil
		return nil
	}
	c.callback = &hook{cb: cb, data: data}
	return nil
}

// ComponentAddDestroyCallback sets the callback run once when the
// component is destroyed.
func (tk *Toolkit) ComponentAddDestroyCallback(co Component, cb Callback, data uint64) error {
	c, err := tk.component(co)
	if err != nil {
		return err
	}
	if cb == nil {
		c.destroy = nil
		return nil
	}
	c.destroy = &hook{cb: cb, data: data}
	return nil
}

func (tk *Toolkit) ComponentGetPosition(co Component) (left, top int32, err error) {
	c, err := tk.component(co)
	if err != nil {
		return 0, 0, err
	}
	return c.left, c.top, nil
}

func (tk *Toolkit) ComponentGetSize(co Component) (width, height int32, err error) {
	c, err := tk.component(co)
	if err != nil {
		return 0, 0, err
	}
	if c.form != nil {
		tk.sizeForm(c)
	}
	return c.width, c.height, nil
}

// ComponentDestroy frees a component. Forms free their children first.
func (tk *Toolkit) ComponentDestroy(co Component) error {
	c, err := tk.component(co)
	if err != nil {
		return err
	}
	tk.destroyComponent(c)
	return nil
}

func (tk *Toolkit) destroyComponent(c *component) {
	if c.form != nil {
		children := append([]Component(nil), c.form.children...)
		for _, child := range children {
			if cc, err := tk.component(child); err == nil {
				tk.destroyComponent(cc)
			}
		}
		for _, w := range tk.windows {
			w.forms = removeComponent(w.forms, c.handle())
		}
	}
	if c.parent != 0 {
		if p, err := tk.component(c.parent); err == nil && p.form != nil {
			p.form.remove(c.handle())
		}
	}
	if c.group != nil {
		c.group.members = removeComponent(c.group.members, c.handle())
		if c.group.current == c.handle() {
			c.group.current = 0
		}
	}
	if c.destroy != nil {
		d := *c.destroy
		c.destroy = nil
		d.cb(c.handle(), d.data)
	}
	tk.free(c.addr)
	Logger().Debug("component destroyed", zap.Stringer("kind", c.kind), zap.Uint64("addr", c.addr))
}

func removeComponent(list []Component, co Component) []Component {
	out := list[:0]
	for _, c := range list {
		if c != co {
			out = append(out, c)
		}
	}
	return out
}
