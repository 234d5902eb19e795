package newt

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jerbob92/wazero-newt/toolkit"
)

// IConstant is one entry of a NEWT_* array.
type IConstant interface {
	Array() string
	Key() string
	Value() int32
	// Name is the array reference the constant is bound to, NAME[KEY].
	Name() string
}

type registeredConstant struct {
	array string
	key   string
	value int32
}

func (rc *registeredConstant) Array() string {
	return rc.array
}

func (rc *registeredConstant) Key() string {
	return rc.key
}

func (rc *registeredConstant) Value() int32 {
	return rc.value
}

func (rc *registeredConstant) Name() string {
	return fmt.Sprintf("%s[%s]", rc.array, rc.key)
}

type constantGroup struct {
	array   string
	entries []registeredConstant
}

func group(array string, kv ...any) constantGroup {
	g := constantGroup{array: array}
	for i := 0; i < len(kv); i += 2 {
		g.entries = append(g.entries, registeredConstant{array: array, key: kv[i].(string), value: kv[i+1].(int32)})
	}
	return g
}

var constantGroups = []constantGroup{
	group("NEWT_COLORSET",
		"ROOT", toolkit.ColorsetRoot,
		"BORDER", toolkit.ColorsetBorder,
		"WINDOW", toolkit.ColorsetWindow,
		"SHADOW", toolkit.ColorsetShadow,
		"TITLE", toolkit.ColorsetTitle,
		"BUTTON", toolkit.ColorsetButton,
		"ACTBUTTON", toolkit.ColorsetActButton,
		"CHECKBOX", toolkit.ColorsetCheckbox,
		"ACTCHECKBOX", toolkit.ColorsetActCheckbox,
		"ENTRY", toolkit.ColorsetEntry,
		"LABEL", toolkit.ColorsetLabel,
		"LISTBOX", toolkit.ColorsetListbox,
		"ACTLISTBOX", toolkit.ColorsetActListbox,
		"TEXTBOX", toolkit.ColorsetTextbox,
		"ACTTEXTBOX", toolkit.ColorsetActTextbox,
		"HELPLINE", toolkit.ColorsetHelpLine,
		"ROOTTEXT", toolkit.ColorsetRootText,
		"EMPTYSCALE", toolkit.ColorsetEmptyScale,
		"FULLSCALE", toolkit.ColorsetFullScale,
		"DISENTRY", toolkit.ColorsetDisEntry,
		"COMPACTBUTTON", toolkit.ColorsetCompactButton,
		"ACTSELLISTBOX", toolkit.ColorsetActSelListbox,
		"SELLISTBOX", toolkit.ColorsetSelListbox,
	),
	group("NEWT_FLAG",
		"RETURNEXIT", toolkit.FlagReturnExit,
		"HIDDEN", toolkit.FlagHidden,
		"SCROLL", toolkit.FlagScroll,
		"DISABLED", toolkit.FlagDisabled,
		"BORDER", toolkit.FlagBorder,
		"WRAP", toolkit.FlagWrap,
		"NOF12", toolkit.FlagNoF12,
		"MULTIPLE", toolkit.FlagMultiple,
		"SELECTED", toolkit.FlagSelected,
		"CHECKBOX", toolkit.FlagCheckbox,
		"PASSWORD", toolkit.FlagPassword,
		"SHOWCURSOR", toolkit.FlagShowCursor,
	),
	group("NEWT_FD",
		"READ", toolkit.FDRead,
		"WRITE", toolkit.FDWrite,
		"EXCEPT", toolkit.FDExcept,
	),
	group("NEWT_ARG",
		"LAST", toolkit.ArgLast,
		"APPEND", toolkit.ArgAppend,
	),
	group("NEWT_CHECKBOXTREE",
		"UNSELECTABLE", toolkit.CheckboxTreeUnselectable,
		"HIDE_BOX", toolkit.CheckboxTreeHideBox,
		"COLLAPSED", toolkit.CheckboxTreeCollapsed,
		"EXPANDED", toolkit.CheckboxTreeExpanded,
		"UNSELECTED", toolkit.CheckboxTreeUnselected,
		"SELECTED", toolkit.CheckboxTreeSelected,
	),
	group("NEWT_KEY",
		"TAB", toolkit.KeyTab,
		"ENTER", toolkit.KeyEnter,
		"RETURN", toolkit.KeyReturn,
		"SUSPEND", toolkit.KeySuspend,
		"ESCAPE", toolkit.KeyEscape,
		"UP", toolkit.KeyUp,
		"DOWN", toolkit.KeyDown,
		"LEFT", toolkit.KeyLeft,
		"RIGHT", toolkit.KeyRight,
		"BKSPC", toolkit.KeyBkspc,
		"DELETE", toolkit.KeyDelete,
		"HOME", toolkit.KeyHome,
		"END", toolkit.KeyEnd,
		"UNTAB", toolkit.KeyUntab,
		"PGUP", toolkit.KeyPgUp,
		"PGDN", toolkit.KeyPgDn,
		"INSERT", toolkit.KeyInsert,
		"RESIZE", toolkit.KeyResize,
		"ERROR", toolkit.KeyError,
		"F1", toolkit.KeyF1,
		"F2", toolkit.KeyF2,
		"F3", toolkit.KeyF3,
		"F4", toolkit.KeyF4,
		"F5", toolkit.KeyF5,
		"F6", toolkit.KeyF6,
		"F7", toolkit.KeyF7,
		"F8", toolkit.KeyF8,
		"F9", toolkit.KeyF9,
		"F10", toolkit.KeyF10,
		"F11", toolkit.KeyF11,
		"F12", toolkit.KeyF12,
	),
	group("NEWT_ANCHOR",
		"LEFT", toolkit.AnchorLeft,
		"RIGHT", toolkit.AnchorRight,
		"TOP", toolkit.AnchorTop,
		"BOTTOM", toolkit.AnchorBottom,
	),
	group("NEWT_GRID_FLAG",
		"GROWX", toolkit.GridFlagGrowX,
		"GROWY", toolkit.GridFlagGrowY,
	),
}

// GetConstants lists every constant, sorted by array reference.
func (e *engine) GetConstants() []IConstant {
	constants := make([]IConstant, 0)
	for gi := range constantGroups {
		for i := range constantGroups[gi].entries {
			constants = append(constants, &constantGroups[gi].entries[i])
		}
	}
	sort.Slice(constants, func(i, j int) bool {
		return constants[i].Name() < constants[j].Name()
	})
	return constants
}

// bindConstants writes the NEWT_* arrays into the host, read-only when the
// host supports it.
func (e *engine) bindConstants() error {
	bind := e.host.Bind
	if rb, ok := e.host.(ReadonlyBinder); ok {
		bind = rb.BindReadonly
	}
	for _, c := range e.GetConstants() {
		if err := bind(c.Name(), strconv.FormatInt(int64(c.Value()), 10)); err != nil {
			return newError(PhaseBind, KindHostFailure).
				Detail("could not bind %s", c.Name()).
				Cause(err).
				Build()
		}
	}
	return nil
}
