package toolkit

import (
	"fmt"

	"go.uber.org/zap"
)

type gridField struct {
	kind                                 GridElement
	value                                uint64
	padLeft, padTop, padRight, padBottom int32
	anchor, flags                        int32
}

type grid struct {
	addr       uint64
	cols, rows int32
	fields     []gridField
}

func (g *grid) field(col, row int32) *gridField {
	return &g.fields[row*g.cols+col]
}

func (tk *Toolkit) gridAt(gr Grid) (*grid, error) {
	if gr == 0 {
		return nil, fmt.Errorf("%w: null grid", ErrInvalidObject)
	}
	obj, ok := tk.heap[uint64(gr)]
	if !ok {
		return nil, fmt.Errorf("%w: no grid at %#x", ErrInvalidObject, uint64(gr))
	}
	g, ok := obj.(*grid)
	if !ok {
		return nil, fmt.Errorf("%w: %#x is not a grid", ErrWrongType, uint64(gr))
	}
	return g, nil
}

// GridCreate allocates an empty cols x rows grid.
func (tk *Toolkit) GridCreate(cols, rows int32) (Grid, error) {
	if cols <= 0 || rows <= 0 {
		return 0, fmt.Errorf("grid dimensions must be positive, got %dx%d", cols, rows)
	}
	g := &grid{cols: cols, rows: rows, fields: make([]gridField, cols*rows)}
	g.addr = tk.alloc(g)
	Logger().Debug("grid created", zap.Uint64("addr", g.addr), zap.Int32("cols", cols), zap.Int32("rows", rows))
	return Grid(g.addr), nil
}

// GridSetField stores a component or subgrid in a cell. value is checked
// against kind.
func (tk *Toolkit) GridSetField(gr Grid, col, row int32, kind GridElement, value uint64,
	padLeft, padTop, padRight, padBottom, anchor, flags int32) error {
	g, err := tk.gridAt(gr)
	if err != nil {
		return err
	}
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return fmt.Errorf("cell %d,%d outside %dx%d grid", col, row, g.cols, g.rows)
	}
	switch kind {
	case GridEmpty:
		value = 0
	case GridComponent:
		if _, err := tk.component(Component(value)); err != nil {
			return err
		}
	case GridSubgrid:
		if _, err := tk.gridAt(Grid(value)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown grid element type %d", kind)
	}
	*g.field(col, row) = gridField{
		kind: kind, value: value,
		padLeft: padLeft, padTop: padTop, padRight: padRight, padBottom: padBottom,
		anchor: anchor, flags: flags,
	}
	return nil
}

func (tk *Toolkit) fieldSize(f *gridField) (int32, int32) {
	var w, h int32
	switch f.kind {
	case GridComponent:
		if c, err := tk.component(Component(f.value)); err == nil {
			w, h = c.width, c.height
		}
	case GridSubgrid:
		if g, err := tk.gridAt(Grid(f.value)); err == nil {
			w, h = tk.gridSize(g)
		}
	}
	return w + f.padLeft + f.padRight, h + f.padTop + f.padBottom
}

func (tk *Toolkit) gridDims(g *grid) (colW, rowH []int32) {
	colW = make([]int32, g.cols)
	rowH = make([]int32, g.rows)
	for row := int32(0); row < g.rows; row++ {
		for col := int32(0); col < g.cols; col++ {
			w, h := tk.fieldSize(g.field(col, row))
			if w > colW[col] {
				colW[col] = w
			}
			if h > rowH[row] {
				rowH[row] = h
			}
		}
	}
	return colW, rowH
}

func (tk *Toolkit) gridSize(g *grid) (int32, int32) {
	colW, rowH := tk.gridDims(g)
	var w, h int32
	for _, v := range colW {
		w += v
	}
	for _, v := range rowH {
		h += v
	}
	return w, h
}

func (tk *Toolkit) GridGetSize(gr Grid) (width, height int32, err error) {
	g, err := tk.gridAt(gr)
	if err != nil {
		return 0, 0, err
	}
	width, height = tk.gridSize(g)
	return width, height, nil
}

// GridPlace positions every component of the grid, recursing into
// subgrids.
func (tk *Toolkit) GridPlace(gr Grid, left, top int32) error {
	g, err := tk.gridAt(gr)
	if err != nil {
		return err
	}
	tk.placeGrid(g, left, top)
	return nil
}

func (tk *Toolkit) placeGrid(g *grid, left, top int32) {
	colW, rowH := tk.gridDims(g)
	y := top
	for row := int32(0); row < g.rows; row++ {
		x := left
		for col := int32(0); col < g.cols; col++ {
			f := g.field(col, row)
			w, h := tk.fieldSize(f)
			cx, cy := x+f.padLeft, y+f.padTop
			if f.anchor&AnchorRight != 0 {
				cx += colW[col] - w
			} else if f.anchor&AnchorLeft == 0 {
				cx += (colW[col] - w) / 2
			}
			if f.anchor&AnchorBottom != 0 {
				cy += rowH[row] - h
			} else if f.anchor&AnchorTop == 0 {
				cy += (rowH[row] - h) / 2
			}
			switch f.kind {
			case GridComponent:
				if c, err := tk.component(Component(f.value)); err == nil {
					c.left, c.top = cx, cy
				}
			case GridSubgrid:
				if sub, err := tk.gridAt(Grid(f.value)); err == nil {
					tk.placeGrid(sub, cx, cy)
				}
			}
			x += colW[col]
		}
		y += rowH[row]
	}
}

// GridFree releases the grid, and its subgrids when recurse is non-zero.
// Components are not destroyed.
func (tk *Toolkit) GridFree(gr Grid, recurse int32) error {
	g, err := tk.gridAt(gr)
	if err != nil {
		return err
	}
	if recurse != 0 {
		for i := range g.fields {
			if g.fields[i].kind == GridSubgrid {
				_ = tk.GridFree(Grid(g.fields[i].value), recurse)
			}
		}
	}
	tk.free(g.addr)
	Logger().Debug("grid freed", zap.Uint64("addr", g.addr))
	return nil
}

func (tk *Toolkit) stack(fields ...gridField) (Grid, error) {
	gr, err := tk.GridCreate(1, int32(len(fields)))
	if err != nil {
		return 0, err
	}
	g, _ := tk.gridAt(gr)
	copy(g.fields, fields)
	return gr, nil
}

// GridSimpleWindow stacks text, middle and the buttons grid vertically.
func (tk *Toolkit) GridSimpleWindow(text, middle Component, buttons Grid) (Grid, error) {
	for _, co := range []Component{text, middle} {
		if _, err := tk.component(co); err != nil {
			return 0, err
		}
	}
	if _, err := tk.gridAt(buttons); err != nil {
		return 0, err
	}
	return tk.stack(
		gridField{kind: GridComponent, value: uint64(text), anchor: AnchorLeft},
		gridField{kind: GridComponent, value: uint64(middle), padTop: 1},
		gridField{kind: GridSubgrid, value: uint64(buttons), padTop: 1, flags: GridFlagGrowX},
	)
}

// GridBasicWindow is GridSimpleWindow with a grid in the middle.
func (tk *Toolkit) GridBasicWindow(text Component, middle, buttons Grid) (Grid, error) {
	if _, err := tk.component(text); err != nil {
		return 0, err
	}
	for _, gr := range []Grid{middle, buttons} {
		if _, err := tk.gridAt(gr); err != nil {
			return 0, err
		}
	}
	return tk.stack(
		gridField{kind: GridComponent, value: uint64(text), anchor: AnchorLeft},
		gridField{kind: GridSubgrid, value: uint64(middle), padTop: 1},
		gridField{kind: GridSubgrid, value: uint64(buttons), padTop: 1, flags: GridFlagGrowX},
	)
}

// GridWrappedWindow opens a centered window sized to the grid and places
// the grid inside it.
func (tk *Toolkit) GridWrappedWindow(gr Grid, title string) error {
	g, err := tk.gridAt(gr)
	if err != nil {
		return err
	}
	w, h := tk.gridSize(g)
	if tw := int32(len(title)) + 4; tw > w {
		w = tw
	}
	if _, err := tk.CenteredWindow(uint32(w+2), uint32(h+2), title); err != nil {
		return err
	}
	tk.placeGrid(g, 1, 1)
	return nil
}
