package toolkit

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var colorCodes = map[string]string{
	"black":         "0",
	"red":           "1",
	"green":         "2",
	"brown":         "3",
	"blue":          "4",
	"magenta":       "5",
	"cyan":          "6",
	"lightgray":     "7",
	"gray":          "8",
	"brightred":     "9",
	"brightgreen":   "10",
	"yellow":        "11",
	"brightblue":    "12",
	"brightmagenta": "13",
	"brightcyan":    "14",
	"white":         "15",
}

func termColor(name string) lipgloss.TerminalColor {
	if name == "" {
		return lipgloss.NoColor{}
	}
	if code, ok := colorCodes[strings.ToLower(name)]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(name)
}

func (tk *Toolkit) style(colorset int32) lipgloss.Style {
	p := tk.color(colorset)
	return lipgloss.NewStyle().
		Foreground(termColor(p.Fg)).
		Background(termColor(p.Bg))
}

type canvas [][]rune

func newCanvas(width, height int32) canvas {
	cv := make(canvas, height)
	for i := range cv {
		cv[i] = []rune(strings.Repeat(" ", int(width)))
	}
	return cv
}

func (cv canvas) put(x, y int32, s string) {
	if y < 0 || int(y) >= len(cv) {
		return
	}
	row := cv[y]
	for i, r := range []rune(s) {
		col := int(x) + i
		if col < 0 {
			continue
		}
		if col >= len(row) {
			return
		}
		row[col] = r
	}
}

func (cv canvas) String() string {
	lines := make([]string, len(cv))
	for i, row := range cv {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// Screen renders a snapshot of the root text, the window stack and the
// current help line.
func (tk *Toolkit) Screen() string {
	var blocks []string
	if len(tk.rootTexts) > 0 {
		var rows int32
		for _, rt := range tk.rootTexts {
			if rt.row+1 > rows {
				rows = rt.row + 1
			}
		}
		cv := newCanvas(tk.cols, rows)
		for _, rt := range tk.rootTexts {
			cv.put(rt.col, rt.row, rt.text)
		}
		blocks = append(blocks, tk.style(ColorsetRootText).Render(cv.String()))
	}
	for _, w := range tk.windows {
		blocks = append(blocks, tk.renderWindow(w))
	}
	if n := len(tk.helpLines); n > 0 {
		blocks = append(blocks, tk.style(ColorsetHelpLine).Render(tk.helpLines[n-1]))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (tk *Toolkit) renderWindow(w *window) string {
	cv := newCanvas(w.width, w.height)
	for _, form := range w.forms {
		if f, err := tk.formOf(form); err == nil {
			tk.drawForm(cv, f)
		}
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(termColor(tk.color(ColorsetBorder).Fg)).
		Render(tk.style(ColorsetWindow).Render(cv.String()))
	if w.title == "" {
		return box
	}
	title := tk.style(ColorsetTitle).Render(" " + w.title + " ")
	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}

func (tk *Toolkit) drawForm(cv canvas, f *component) {
	for _, child := range f.form.children {
		c, err := tk.component(child)
		if err != nil {
			continue
		}
		if c.form != nil {
			tk.drawForm(cv, c)
			continue
		}
		for i, line := range c.render() {
			cv.put(c.left, c.top+int32(i), line)
		}
	}
}

func printable(b byte) string {
	if b == 0 {
		return " "
	}
	return string(rune(b))
}

func (c *component) render() []string {
	switch c.kind {
	case kindButton:
		return []string{"[ " + c.text + " ]"}
	case kindCompactButton:
		return []string{"< " + c.text + " >"}
	case kindLabel:
		return []string{c.text}
	case kindCheckbox:
		return []string{"[" + printable(c.value) + "] " + c.text}
	case kindRadio:
		return []string{"(" + printable(c.value) + ") " + c.text}
	case kindEntry:
		v := c.text
		switch {
		case c.flags&FlagHidden != 0:
			v = ""
		case c.flags&FlagPassword != 0:
			v = strings.Repeat("*", len(v))
		}
		if pad := int(c.width) - len(v); pad > 0 {
			v += strings.Repeat("_", pad)
		}
		return []string{v}
	case kindScale:
		filled := int32(0)
		if c.full > 0 {
			filled = int32(int64(c.amount) * int64(c.width) / c.full)
		}
		if filled > c.width {
			filled = c.width
		}
		return []string{strings.Repeat("#", int(filled)) + strings.Repeat(".", int(c.width-filled))}
	case kindTextbox:
		if int32(len(c.lines)) > c.height {
			return c.lines[:c.height]
		}
		return c.lines
	case kindListbox:
		var out []string
		for i, it := range c.items {
			if int32(len(out)) >= c.height {
				break
			}
			prefix := "  "
			if i == c.current {
				prefix = "> "
			}
			if it.selected {
				prefix = prefix[:1] + "*"
			}
			out = append(out, prefix+it.text)
		}
		return out
	case kindScrollbar:
		out := make([]string, c.height)
		thumb := int32(-1)
		if c.total > 0 && c.height > 0 {
			thumb = c.where * (c.height - 1) / c.total
		}
		for i := range out {
			out[i] = "|"
			if int32(i) == thumb {
				out[i] = "#"
			}
		}
		return out
	}
	return nil
}
