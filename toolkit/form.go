package toolkit

import (
	"fmt"

	"go.uber.org/zap"
)

type formState struct {
	children   []Component
	current    Component
	hotkeys    map[int32]bool
	timer      int32
	helpTag    uint64
	vertBar    Component
	background int32
	fixedW     int32
	fixedH     int32
	scroll     int32
	watches    map[int32]int32
}

func (f *formState) remove(co Component) {
	f.children = removeComponent(f.children, co)
	if f.current == co {
		f.current = 0
	}
}

// Form creates an empty form. vertBar may be null or a scrollbar.
func (tk *Toolkit) Form(vertBar Component, helpTag uint64, flags int32) (Component, error) {
	if vertBar != 0 {
		if _, err := tk.widget(vertBar, kindScrollbar); err != nil {
			return 0, err
		}
	}
	return tk.newComponent(&component{
		kind: kindForm, flags: flags, takesFocus: true,
		form: &formState{
			hotkeys:    map[int32]bool{},
			helpTag:    helpTag,
			vertBar:    vertBar,
			background: ColorsetWindow,
			watches:    map[int32]int32{},
		},
	}), nil
}

func (tk *Toolkit) formOf(form Component) (*component, error) {
	return tk.widget(form, kindForm)
}

// FormAddComponent appends co to form. A component belongs to one form.
func (tk *Toolkit) FormAddComponent(form, co Component) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	c, err := tk.component(co)
	if err != nil {
		return err
	}
	if c == f {
		return fmt.Errorf("%w: form cannot contain itself", ErrWrongType)
	}
	if c.parent != 0 {
		if p, err := tk.component(c.parent); err == nil && p.form != nil {
			p.form.remove(co)
		}
	}
	c.parent = form
	f.form.children = append(f.form.children, co)
	return nil
}

func (tk *Toolkit) FormAddHotKey(form Component, key int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.hotkeys[key] = true
	return nil
}

// FormSetTimer makes FormRun return ExitTimer instead of ExitError when the
// key queue runs dry.
func (tk *Toolkit) FormSetTimer(form Component, millisecs int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.timer = millisecs
	return nil
}

func (tk *Toolkit) FormWatchFd(form Component, fd, fdFlags int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	if fdFlags == 0 {
		delete(f.form.watches, fd)
		return nil
	}
	f.form.watches[fd] = fdFlags
	return nil
}

func (tk *Toolkit) FormSetCurrent(form, co Component) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	for _, child := range f.form.children {
		if child == co {
			f.form.current = co
			return nil
		}
	}
	return fmt.Errorf("%w: %#x is not in form %#x", ErrInvalidObject, uint64(co), uint64(form))
}

func (tk *Toolkit) FormGetCurrent(form Component) (Component, error) {
	f, err := tk.formOf(form)
	if err != nil {
		return 0, err
	}
	return f.form.current, nil
}

func (tk *Toolkit) FormSetBackground(form Component, color int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.background = color
	return nil
}

func (tk *Toolkit) FormSetHeight(form Component, height int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.fixedH = height
	f.height = height
	return nil
}

func (tk *Toolkit) FormSetWidth(form Component, width int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.fixedW = width
	f.width = width
	return nil
}

// FormSetSize recomputes the form size from its children.
func (tk *Toolkit) FormSetSize(form Component) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	tk.sizeForm(f)
	return nil
}

func (tk *Toolkit) sizeForm(f *component) {
	var w, h int32
	for _, child := range f.form.children {
		c, err := tk.component(child)
		if err != nil {
			continue
		}
		if c.form != nil {
			tk.sizeForm(c)
		}
		if r := c.left + c.width; r > w {
			w = r
		}
		if b := c.top + c.height; b > h {
			h = b
		}
	}
	if f.form.fixedW != 0 {
		w = f.form.fixedW
	}
	if f.form.fixedH != 0 {
		h = f.form.fixedH
	}
	f.width, f.height = w, h
}

func (tk *Toolkit) FormGetScrollPosition(form Component) (int32, error) {
	f, err := tk.formOf(form)
	if err != nil {
		return 0, err
	}
	return f.form.scroll, nil
}

func (tk *Toolkit) FormSetScrollPosition(form Component, position int32) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	f.form.scroll = position
	return nil
}

// DrawForm attaches the form to the top window so it shows up in
// snapshots.
func (tk *Toolkit) DrawForm(form Component) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	if err := tk.requireInit("DrawForm"); err != nil {
		return err
	}
	tk.sizeForm(f)
	if w := tk.topWindow(); w != nil {
		w.forms = removeComponent(w.forms, form)
		w.forms = append(w.forms, form)
	}
	return nil
}

func (tk *Toolkit) FormDestroy(form Component) error {
	f, err := tk.formOf(form)
	if err != nil {
		return err
	}
	tk.destroyComponent(f)
	return nil
}

func (tk *Toolkit) focusable(f *component) []*component {
	var out []*component
	for _, child := range f.form.children {
		c, err := tk.component(child)
		if err != nil || !c.takesFocus || c.form != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (tk *Toolkit) moveFocus(f *component, step int) {
	items := tk.focusable(f)
	if len(items) == 0 {
		f.form.current = 0
		return
	}
	idx := -1
	for i, c := range items {
		if c.handle() == f.form.current {
			idx = i
		}
	}
	if idx < 0 {
		f.form.current = items[0].handle()
		return
	}
	idx = (idx + step + len(items)) % len(items)
	f.form.current = items[idx].handle()
}

func (tk *Toolkit) popReadyFD(f *component) (int32, bool) {
	for i, fd := range tk.fdReady {
		if _, ok := f.form.watches[fd]; ok {
			tk.fdReady = append(tk.fdReady[:i], tk.fdReady[i+1:]...)
			return fd, true
		}
	}
	return 0, false
}

// FormRun runs the form's modal loop over the key queue. Callbacks fire
// synchronously on this call stack.
func (tk *Toolkit) FormRun(form Component) (ExitStruct, error) {
	f, err := tk.formOf(form)
	if err != nil {
		return ExitStruct{Reason: ExitError}, err
	}
	if err := tk.DrawForm(form); err != nil {
		return ExitStruct{Reason: ExitError}, err
	}
	if f.form.current == 0 {
		tk.moveFocus(f, 0)
	}

	es := tk.runLoop(form, f)
	Logger().Debug("form exited",
		zap.Uint64("form", uint64(form)),
		zap.Stringer("reason", es.Reason),
		zap.Int32("key", es.Key),
		zap.Uint64("component", uint64(es.Component)))
	return es, nil
}

func (tk *Toolkit) runLoop(form Component, f *component) ExitStruct {
	for {
		if _, err := tk.formOf(form); err != nil {
			return ExitStruct{Reason: ExitError}
		}
		if fd, ok := tk.popReadyFD(f); ok {
			return ExitStruct{Reason: ExitFDReady, Watch: fd}
		}
		key, ok := tk.nextKey()
		if !ok {
			if f.form.timer > 0 {
				return ExitStruct{Reason: ExitTimer}
			}
			return ExitStruct{Reason: ExitError}
		}
		if f.form.hotkeys[key] || (key == KeyF12 && f.flags&FlagNoF12 == 0) {
			return ExitStruct{Reason: ExitHotkey, Key: key}
		}
		switch key {
		case KeySuspend:
			if tk.suspendCb != nil {
				tk.suspendCb(tk.suspendData)
			}
			continue
		case KeyF1:
			if tk.helpCb != nil {
				tk.helpCb(form, f.form.helpTag)
			}
			continue
		case KeyTab:
			tk.moveFocus(f, 1)
			continue
		case KeyUntab:
			tk.moveFocus(f, -1)
			continue
		}
		cur, err := tk.component(f.form.current)
		if err != nil {
			continue
		}
		if done, es := tk.deliver(f, cur, key); done {
			return es
		}
	}
}

func (tk *Toolkit) deliver(f, c *component, key int32) (bool, ExitStruct) {
	exit := ExitStruct{Reason: ExitComponent, Component: c.handle()}
	switch c.kind {
	case kindButton, kindCompactButton:
		if key == KeyEnter || key == ' ' {
			c.fire()
			return true, exit
		}
	case kindCheckbox:
		if key == ' ' {
			c.toggle()
			c.fire()
			return false, exit
		}
	case kindRadio:
		if key == ' ' {
			tk.selectRadio(c)
			c.fire()
			return false, exit
		}
	case kindEntry:
		if key != KeyEnter && c.entryKey(key) {
			return false, exit
		}
	case kindListbox:
		if key == KeyEnter {
			return true, exit
		}
		if c.listboxKey(key) {
			return false, exit
		}
	}
	if key == KeyEnter {
		if c.flags&FlagReturnExit != 0 {
			return true, exit
		}
		tk.moveFocus(f, 1)
		return false, exit
	}
	if key == KeyDown || key == KeyRight {
		tk.moveFocus(f, 1)
	} else if key == KeyUp || key == KeyLeft {
		tk.moveFocus(f, -1)
	}
	return false, exit
}

// RunForm runs the form and returns the component that ended it: the form
// itself for F12, null for other hotkeys and errors.
func (tk *Toolkit) RunForm(form Component) (Component, error) {
	es, err := tk.FormRun(form)
	if err != nil {
		return 0, err
	}
	switch es.Reason {
	case ExitComponent:
		return es.Component, nil
	case ExitHotkey:
		if es.Key == KeyF12 {
			return form, nil
		}
	}
	return 0, nil
}
