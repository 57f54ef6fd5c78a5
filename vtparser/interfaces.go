package vtparser

// ScreenWriter is the grid/screen writer collaborator.
// The core never holds a concrete screen type; every effect of a recognized
// byte, control, or sequence is expressed as a call on this interface so a
// host can plug in its own grid, a test double, or (as internal/screen
// does) a reference implementation.
type ScreenWriter interface {
	Start()
	StartPane(paneID int)
	Stop()

	CollectAdd(r rune, width int)
	CollectEnd()

	Backspace()
	LineFeed()
	CarriageReturn()

	CursorUp(n int)
	CursorDown(n int)
	CursorLeft(n int)
	CursorRight(n int)
	CursorMove(x, y int, originRelative bool)

	ReverseIndex()
	BackIndex()
	ForwardIndex()
	AlignmentTest()

	ClearEndOfScreen()
	ClearStartOfScreen()
	ClearEndOfLine()
	ClearStartOfLine()
	ClearScreen()
	ClearLine()
	ClearCharacter(n int)
	ClearHistory()

	InsertCharacter(n int)
	DeleteCharacter(n int)
	InsertLine(n int)
	DeleteLine(n int)
	InsertColumn(n int)
	DeleteColumn(n int)

	ScrollUp(n int)
	ScrollDown(n int)
	ScrollLeft(n int)
	ScrollRight(n int)
	ScrollRegion(top, bottom int)
	ScrollMargin(left, right int)

	ModeSet(mode int)
	ModeClear(mode int)

	AlternateOn(cursorX, cursorY int, clear bool)
	AlternateOff()

	SetSelection(data []byte)

	SixelImage(payload []byte, firstParam int)

	Reset()
	SoftReset()
	FullRedraw()

	RawString(data []byte, wrap bool)

	SetTitle(title string)
	Title() string
	SetPath(path string)
	ShellIntegrationMark(kind byte)

	CurrentCell() Cell
	SetCurrentCell(Cell)
	CursorPosition() (x, y int)
	ScrollRegionBounds() (top, bottom, left, right int)
	Size() (width, height int)
}

// Cell is the minimal style/content description the core needs to read back
// from the screen writer, e.g. to answer DECRQSS SGR or to preserve a
// hyperlink handle across SGR reset. The authoritative grid cell type lives
// with the screen writer; this is a projection of it.
type Cell struct {
	Attr      CellAttr
	Fg, Bg    Colour
	Underline UnderlineColour
	Link      HyperlinkHandle
}

// CellAttr is a bitmask of SGR attributes.
type CellAttr uint16

const (
	AttrBold CellAttr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
	AttrDoubleUnderline
	AttrCurlyUnderline
	AttrDottedUnderline
	AttrDashedUnderline
)

// ColourKind distinguishes default/indexed/RGB colour specs.
type ColourKind uint8

const (
	ColourDefault ColourKind = iota
	ColourIndexed
	ColourRGB
)

// Colour is a terminal colour: default, an indexed palette slot, or 24-bit RGB.
type Colour struct {
	Kind           ColourKind
	Index          uint8
	R, G, B        uint8
}

// UnderlineColour carries the colon-subparameter SGR underline colour (when set).
type UnderlineColour struct {
	Set    bool
	Colour Colour
}

// HyperlinkHandle is an opaque handle into the hyperlink table.
type HyperlinkHandle uint32

// Palette is the colour-palette collaborator: 256 indexed slots plus the
// three named defaults used by OSC 10/11/12.
type Palette interface {
	Get(index int) (r, g, b uint8, ok bool)
	Set(index int, r, g, b uint8)
	Reset(index int)
	ResetAll()

	Foreground() (r, g, b uint8)
	SetForeground(r, g, b uint8)
	ResetForeground()

	Background() (r, g, b uint8)
	SetBackground(r, g, b uint8)
	ResetBackground()

	CursorColour() (r, g, b uint8, ok bool)
	SetCursorColour(r, g, b uint8)
	ResetCursorColour()
}

// Hyperlinks is the hyperlink interning table collaborator.
type Hyperlinks interface {
	Put(uri string, params map[string]string) HyperlinkHandle
	Get(h HyperlinkHandle) (uri string, params map[string]string, ok bool)
}

// PasteStore is the paste/clipboard collaborator (OSC 52 and tmux-style buffers).
type PasteStore interface {
	// Set stores raw bytes (already base64-decoded) as the top paste buffer.
	Set(data []byte)
	// Top returns the most recently stored buffer.
	Top() ([]byte, bool)
}

// Options is the option-store collaborator.
type Options interface {
	DefaultEmulationLevel() Level
	ExtendedKeys() ExtendedKeysMode
	AllowPassthrough() PassthroughMode
	AllowSetTitle() bool
	AllowRename() bool
	AutomaticRename() bool
	CursorStyle() int
	SetClipboard() ClipboardMode
}

// ExtendedKeysMode mirrors the extended-keys option values.
type ExtendedKeysMode uint8

const (
	ExtendedKeysOff ExtendedKeysMode = iota
	ExtendedKeysOn
	ExtendedKeysAlways
)

// PassthroughMode mirrors the allow-passthrough option values.
type PassthroughMode uint8

const (
	PassthroughOff PassthroughMode = iota
	PassthroughOn
	PassthroughOnAllowWrap
)

// ClipboardMode mirrors the set-clipboard option values.
type ClipboardMode uint8

const (
	ClipboardOff ClipboardMode = iota
	ClipboardInternal
	ClipboardExternal
)

// Sink is the outbound byte sink collaborator: every reply (DA, DSR, DECRPSS,
// colour queries, ...) is written here in dispatch order.
type Sink interface {
	Write(p []byte)
}

// Timer is the watchdog-timer collaborator. Arm schedules fn to run after
// the duration unless Disarm is called first; a second Arm call replaces
// any pending one. Implementations must be safe to call from the owning
// event loop only (the core never arms from more than one goroutine).
type Timer interface {
	Arm(fn func())
	Disarm()
}

// Notifier is the window/pane bookkeeping collaborator used for
// notifications that do not fit the ScreenWriter surface (title changes,
// rename requests, theme queries).
type Notifier interface {
	NotifyTitleChanged(title string)
	NotifyWindowRenamed(name string)

	// Theme answers DSR-private 996 (report theme): dark reports whether the
	// host's current theme is dark, known reports whether the host has an
	// opinion at all (false suppresses the reply entirely).
	Theme() (dark, known bool)
}

// SixelDecoder is the optional out-of-core sixel image decoder; image
// decoding itself is not implemented by this core. When unset, or when
// Decode reports failure, the raw payload goes to ScreenWriter.SixelImage.
type SixelDecoder interface {
	Decode(payload []byte, firstParam int) (image any, ok bool)
}
