package toolkit

import "strings"

// Listbox creates an empty listbox showing height rows.
func (tk *Toolkit) Listbox(left, top, height, flags int32) Component {
	return tk.newComponent(&component{
		kind: kindListbox, left: left, top: top,
		width: 2, height: height, flags: flags, takesFocus: true,
		colors: [2]int32{ColorsetListbox, ColorsetActListbox},
	})
}

func (c *component) fitItems() {
	if c.flags&FlagScroll != 0 && c.width > 2 {
		return
	}
	for _, it := range c.items {
		if w := int32(len(it.text)) + 2; w > c.width {
			c.width = w
		}
	}
}

func (c *component) indexOfData(key uint64) int {
	for i, it := range c.items {
		if it.data == key {
			return i
		}
	}
	return -1
}

// ListboxAppendEntry adds an item. Returns 0.
func (tk *Toolkit) ListboxAppendEntry(co Component, text string, data uint64) (int32, error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return 0, err
	}
	c.items = append(c.items, listItem{text: text, data: data})
	c.fitItems()
	return 0, nil
}

// ListboxInsertEntry inserts an item after the one whose data is key, or
// first when key is 0. Returns 1 when key is not found.
func (tk *Toolkit) ListboxInsertEntry(co Component, text string, data, key uint64) (int32, error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return 0, err
	}
	at := 0
	if key != 0 {
		i := c.indexOfData(key)
		if i < 0 {
			return 1, nil
		}
		at = i + 1
	}
	c.items = append(c.items, listItem{})
	copy(c.items[at+1:], c.items[at:])
	c.items[at] = listItem{text: text, data: data}
	c.fitItems()
	return 0, nil
}

// ListboxDeleteEntry removes the item whose data is key. Returns -1 when
// it is not found.
func (tk *Toolkit) ListboxDeleteEntry(co Component, key uint64) (int32, error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return 0, err
	}
	i := c.indexOfData(key)
	if i < 0 {
		return -1, nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	if c.current >= len(c.items) && c.current > 0 {
		c.current = len(c.items) - 1
	}
	return 0, nil
}

// ListboxGetCurrent returns the data of the current item, 0 when empty.
func (tk *Toolkit) ListboxGetCurrent(co Component) (uint64, error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return 0, err
	}
	if c.current < 0 || c.current >= len(c.items) {
		return 0, nil
	}
	return c.items[c.current].data, nil
}

func (tk *Toolkit) ListboxSetCurrent(co Component, num int32) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	if num < 0 {
		num = 0
	}
	if int(num) >= len(c.items) {
		num = int32(len(c.items)) - 1
	}
	if num >= 0 {
		c.current = int(num)
	}
	return nil
}

func (tk *Toolkit) ListboxSetCurrentByKey(co Component, key uint64) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	if i := c.indexOfData(key); i >= 0 {
		c.current = i
	}
	return nil
}

func (tk *Toolkit) ListboxItemCount(co Component) (int32, error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return 0, err
	}
	return int32(len(c.items)), nil
}

// ListboxGetEntry returns the text and data of item num. Out of range
// items read as empty.
func (tk *Toolkit) ListboxGetEntry(co Component, num int32) (text string, data uint64, err error) {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return "", 0, err
	}
	if num < 0 || int(num) >= len(c.items) {
		return "", 0, nil
	}
	it := c.items[num]
	return it.text, it.data, nil
}

func (tk *Toolkit) ListboxSetEntry(co Component, num int32, text string) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	if num >= 0 && int(num) < len(c.items) {
		c.items[num].text = text
		c.fitItems()
	}
	return nil
}

func (tk *Toolkit) ListboxSetData(co Component, num int32, data uint64) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	if num >= 0 && int(num) < len(c.items) {
		c.items[num].data = data
	}
	return nil
}

func (tk *Toolkit) ListboxSetWidth(co Component, width int32) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	c.width = width
	c.flags |= FlagScroll
	return nil
}

func (tk *Toolkit) ListboxClear(co Component) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	c.items = nil
	c.current = 0
	return nil
}

func (tk *Toolkit) ListboxClearSelection(co Component) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	for i := range c.items {
		c.items[i].selected = false
	}
	return nil
}

func (tk *Toolkit) ListboxSelectItem(co Component, key uint64, sense FlagsSense) error {
	c, err := tk.widget(co, kindListbox)
	if err != nil {
		return err
	}
	i := c.indexOfData(key)
	if i < 0 {
		return nil
	}
	var cur int32
	if c.items[i].selected {
		cur = 1
	}
	c.items[i].selected = sense.apply(cur, 1) != 0
	return nil
}

func (c *component) listboxKey(key int32) bool {
	switch key {
	case KeyUp:
		if c.current > 0 {
			c.current--
			c.fire()
		}
	case KeyDown:
		if c.current < len(c.items)-1 {
			c.current++
			c.fire()
		}
	case KeyHome:
		c.current = 0
		c.fire()
	case KeyEnd:
		if len(c.items) > 0 {
			c.current = len(c.items) - 1
			c.fire()
		}
	case ' ':
		if c.flags&FlagMultiple != 0 && c.current < len(c.items) {
			c.items[c.current].selected = !c.items[c.current].selected
			c.fire()
		}
	default:
		return false
	}
	return true
}

// Textbox creates a read-only multi-line text area.
func (tk *Toolkit) Textbox(left, top, width, height, flags int32) Component {
	return tk.newComponent(&component{
		kind: kindTextbox, left: left, top: top,
		width: width, height: height, flags: flags,
		colors: [2]int32{ColorsetTextbox, ColorsetActTextbox},
	})
}

func (tk *Toolkit) TextboxSetText(co Component, text string) error {
	c, err := tk.widget(co, kindTextbox)
	if err != nil {
		return err
	}
	c.text = text
	c.lines = nil
	for _, line := range strings.Split(text, "\n") {
		if c.flags&FlagWrap != 0 {
			c.lines = append(c.lines, wrapLine(line, int(c.width))...)
			continue
		}
		c.lines = append(c.lines, line)
	}
	return nil
}

func wrapLine(line string, width int) []string {
	if width <= 0 || len(line) <= width {
		return []string{line}
	}
	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(line) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func (tk *Toolkit) TextboxGetNumLines(co Component) (int32, error) {
	c, err := tk.widget(co, kindTextbox)
	if err != nil {
		return 0, err
	}
	return int32(len(c.lines)), nil
}

func (tk *Toolkit) TextboxSetHeight(co Component, height int32) error {
	c, err := tk.widget(co, kindTextbox)
	if err != nil {
		return err
	}
	c.height = height
	return nil
}

func (tk *Toolkit) TextboxSetColors(co Component, normal, active int32) error {
	c, err := tk.widget(co, kindTextbox)
	if err != nil {
		return err
	}
	c.colors = [2]int32{normal, active}
	return nil
}
