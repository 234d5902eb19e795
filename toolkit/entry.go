package toolkit

// Entry creates a single-line text entry of the given width.
func (tk *Toolkit) Entry(left, top int32, initialValue string, width, flags int32) Component {
	return tk.newComponent(&component{
		kind: kindEntry, left: left, top: top,
		width: width, height: 1,
		text: initialValue, cursor: int32(len(initialValue)),
		flags: flags, takesFocus: flags&FlagDisabled == 0,
		colors: [2]int32{ColorsetEntry, ColorsetDisEntry},
	})
}

func (tk *Toolkit) EntrySet(co Component, value string, cursorAtEnd int32) error {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return err
	}
	c.text = value
	if cursorAtEnd != 0 {
		c.cursor = int32(len(value))
	} else if c.cursor > int32(len(value)) {
		c.cursor = int32(len(value))
	}
	return nil
}

func (tk *Toolkit) EntryGetValue(co Component) (string, error) {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return "", err
	}
	return c.text, nil
}

// EntrySetFilter installs filter for every key delivered to the entry.
func (tk *Toolkit) EntrySetFilter(co Component, filter EntryFilter, data uint64) error {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return err
	}
	c.filter = filter
	c.filterData = data
	return nil
}

func (tk *Toolkit) EntrySetFlags(co Component, flags int32, sense FlagsSense) error {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return err
	}
	c.flags = sense.apply(c.flags, flags)
	c.takesFocus = c.flags&FlagDisabled == 0
	return nil
}

func (tk *Toolkit) EntrySetColors(co Component, normal, disabled int32) error {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return err
	}
	c.colors = [2]int32{normal, disabled}
	return nil
}

func (tk *Toolkit) EntryGetCursorPosition(co Component) (int32, error) {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return 0, err
	}
	return c.cursor, nil
}

func (tk *Toolkit) EntrySetCursorPosition(co Component, position int32) error {
	c, err := tk.widget(co, kindEntry)
	if err != nil {
		return err
	}
	if position < 0 {
		position = 0
	}
	if position > int32(len(c.text)) {
		position = int32(len(c.text))
	}
	c.cursor = position
	return nil
}

// entryKey edits the entry for one key. It reports whether the key was
// consumed.
func (c *component) entryKey(key int32) bool {
	if c.filter != nil {
		key = c.filter(c.handle(), c.filterData, key, c.cursor)
		if key == 0 {
			return true
		}
	}
	switch {
	case key == KeyLeft:
		if c.cursor > 0 {
			c.cursor--
		}
	case key == KeyRight:
		if c.cursor < int32(len(c.text)) {
			c.cursor++
		}
	case key == KeyHome:
		c.cursor = 0
	case key == KeyEnd:
		c.cursor = int32(len(c.text))
	case key == KeyBkspc:
		if c.cursor > 0 {
			c.text = c.text[:c.cursor-1] + c.text[c.cursor:]
			c.cursor--
			c.fire()
		}
	case key == KeyDelete:
		if c.cursor < int32(len(c.text)) {
			c.text = c.text[:c.cursor] + c.text[c.cursor+1:]
			c.fire()
		}
	case key >= 0x20 && key < 0x7f:
		c.text = c.text[:c.cursor] + string(rune(key)) + c.text[c.cursor:]
		c.cursor++
		c.fire()
	default:
		return false
	}
	return true
}
