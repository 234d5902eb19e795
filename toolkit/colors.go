package toolkit

import "fmt"

// ColorPair is a foreground and background color name.
type ColorPair struct {
	Fg, Bg string
}

// Colors is the palette, indexed by colorset minus ColorsetRoot.
type Colors [ColorsetSelListbox - ColorsetRoot + 1]ColorPair

// ColorFieldCount is the number of text fields in a flattened palette.
// The two scale colorsets carry a single field each.
const ColorFieldCount = 44

// DefaultColors returns the stock palette.
func DefaultColors() Colors {
	return Colors{
		{"white", "blue"},
		{"black", "lightgray"},
		{"black", "lightgray"},
		{"black", "black"},
		{"red", "lightgray"},
		{"lightgray", "red"},
		{"red", "lightgray"},
		{"lightgray", "blue"},
		{"lightgray", "red"},
		{"lightgray", "blue"},
		{"black", "lightgray"},
		{"black", "lightgray"},
		{"lightgray", "blue"},
		{"black", "lightgray"},
		{"lightgray", "blue"},
		{"black", "white"},
		{"lightgray", "blue"},
		{"", "blue"},
		{"", "red"},
		{"gray", "lightgray"},
		{"black", "lightgray"},
		{"white", "blue"},
		{"black", "cyan"},
	}
}

func isScaleColorset(cs int32) bool {
	return cs == ColorsetEmptyScale || cs == ColorsetFullScale
}

// ColorsFromFields builds a palette from its flattened field list, in
// colorset order: fg then bg for each colorset, a single bg for the scale
// colorsets.
func ColorsFromFields(fields []string) (Colors, error) {
	var c Colors
	if len(fields) != ColorFieldCount {
		return c, fmt.Errorf("palette needs %d fields, got %d", ColorFieldCount, len(fields))
	}
	i := 0
	for cs := ColorsetRoot; cs <= ColorsetSelListbox; cs++ {
		if isScaleColorset(cs) {
			c[cs-ColorsetRoot] = ColorPair{Bg: fields[i]}
			i++
			continue
		}
		c[cs-ColorsetRoot] = ColorPair{Fg: fields[i], Bg: fields[i+1]}
		i += 2
	}
	return c, nil
}

// Fields flattens the palette, the inverse of ColorsFromFields.
func (c Colors) Fields() []string {
	out := make([]string, 0, ColorFieldCount)
	for cs := ColorsetRoot; cs <= ColorsetSelListbox; cs++ {
		p := c[cs-ColorsetRoot]
		if isScaleColorset(cs) {
			out = append(out, p.Bg)
			continue
		}
		out = append(out, p.Fg, p.Bg)
	}
	return out
}

func (tk *Toolkit) SetColors(colors Colors) {
	tk.colors = colors
}

// SetColor changes a single colorset. Unknown colorsets are ignored.
func (tk *Toolkit) SetColor(colorset int32, fg, bg string) {
	if colorset < ColorsetRoot || colorset > ColorsetSelListbox {
		return
	}
	tk.colors[colorset-ColorsetRoot] = ColorPair{Fg: fg, Bg: bg}
}

// Palette returns the current palette.
func (tk *Toolkit) Palette() Colors {
	return tk.colors
}

func (tk *Toolkit) color(colorset int32) ColorPair {
	if colorset < ColorsetRoot || colorset > ColorsetSelListbox {
		return ColorPair{}
	}
	return tk.colors[colorset-ColorsetRoot]
}
