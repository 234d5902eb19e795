package toolkit

// Colorsets, in the order the palette fields are laid out.
const (
	ColorsetRoot int32 = iota + 2
	ColorsetBorder
	ColorsetWindow
	ColorsetShadow
	ColorsetTitle
	ColorsetButton
	ColorsetActButton
	ColorsetCheckbox
	ColorsetActCheckbox
	ColorsetEntry
	ColorsetLabel
	ColorsetListbox
	ColorsetActListbox
	ColorsetTextbox
	ColorsetActTextbox
	ColorsetHelpLine
	ColorsetRootText
	ColorsetEmptyScale
	ColorsetFullScale
	ColorsetDisEntry
	ColorsetCompactButton
	ColorsetActSelListbox
	ColorsetSelListbox
)

const (
	FlagReturnExit int32 = 1 << 0
	FlagHidden     int32 = 1 << 1
	FlagScroll     int32 = 1 << 2
	FlagDisabled   int32 = 1 << 3
	FlagBorder     int32 = 1 << 5
	FlagWrap       int32 = 1 << 6
	FlagNoF12      int32 = 1 << 7
	FlagMultiple   int32 = 1 << 8
	FlagSelected   int32 = 1 << 9
	FlagCheckbox   int32 = 1 << 10
	FlagPassword   int32 = 1 << 11
	FlagShowCursor int32 = 1 << 12
)

const (
	FDRead   int32 = 1 << 0
	FDWrite  int32 = 1 << 1
	FDExcept int32 = 1 << 2
)

const (
	ArgLast   int32 = -100000
	ArgAppend int32 = -1
)

const (
	CheckboxTreeUnselectable int32 = 1 << 12
	CheckboxTreeHideBox      int32 = 1 << 13
	CheckboxTreeCollapsed    int32 = 0
	CheckboxTreeExpanded     int32 = 1
	CheckboxTreeUnselected   int32 = ' '
	CheckboxTreeSelected     int32 = '*'
)

const keyExtraBase int32 = 0x8000

const (
	KeyTab     int32 = '\t'
	KeyEnter   int32 = '\r'
	KeyReturn  int32 = KeyEnter
	KeySuspend int32 = 0x1a
	KeyEscape  int32 = 27

	KeyUp     = keyExtraBase + 1
	KeyDown   = keyExtraBase + 2
	KeyLeft   = keyExtraBase + 4
	KeyRight  = keyExtraBase + 5
	KeyBkspc  = keyExtraBase + 6
	KeyDelete = keyExtraBase + 7
	KeyHome   = keyExtraBase + 8
	KeyEnd    = keyExtraBase + 9
	KeyUntab  = keyExtraBase + 10
	KeyPgUp   = keyExtraBase + 11
	KeyPgDn   = keyExtraBase + 12
	KeyInsert = keyExtraBase + 13

	KeyF1  = keyExtraBase + 101
	KeyF2  = keyExtraBase + 102
	KeyF3  = keyExtraBase + 103
	KeyF4  = keyExtraBase + 104
	KeyF5  = keyExtraBase + 105
	KeyF6  = keyExtraBase + 106
	KeyF7  = keyExtraBase + 107
	KeyF8  = keyExtraBase + 108
	KeyF9  = keyExtraBase + 109
	KeyF10 = keyExtraBase + 110
	KeyF11 = keyExtraBase + 111
	KeyF12 = keyExtraBase + 112

	KeyResize = keyExtraBase + 113
	KeyError  = keyExtraBase + 114
)

const (
	AnchorLeft   int32 = 1 << 0
	AnchorRight  int32 = 1 << 1
	AnchorTop    int32 = 1 << 2
	AnchorBottom int32 = 1 << 3
)

const (
	GridFlagGrowX int32 = 1 << 0
	GridFlagGrowY int32 = 1 << 1
)

// FlagsSense selects how a flag mask is applied to a component.
type FlagsSense int32

const (
	FlagsSet FlagsSense = iota
	FlagsReset
	FlagsToggle
)

func (s FlagsSense) apply(current, flags int32) int32 {
	switch s {
	case FlagsSet:
		return current | flags
	case FlagsReset:
		return current &^ flags
	case FlagsToggle:
		return current ^ flags
	}
	return current
}

// GridElement is the kind of value stored in a grid cell.
type GridElement int32

const (
	GridEmpty GridElement = iota
	GridComponent
	GridSubgrid
)

// ExitReason tells why FormRun returned.
type ExitReason int32

const (
	ExitHotkey ExitReason = iota
	ExitComponent
	ExitFDReady
	ExitTimer
	ExitError
)

func (r ExitReason) String() string {
	switch r {
	case ExitHotkey:
		return "HOTKEY"
	case ExitComponent:
		return "COMPONENT"
	case ExitFDReady:
		return "FDREADY"
	case ExitTimer:
		return "TIMER"
	}
	return "ERROR"
}

// ExitStruct describes how a form run ended. Only the field matching
// Reason is meaningful.
type ExitStruct struct {
	Reason    ExitReason
	Key       int32
	Component Component
	Watch     int32
}
