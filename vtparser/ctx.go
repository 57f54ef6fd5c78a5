// Package vtparser implements a DEC ANSI control-sequence parser and
// dispatcher: a byte-exact state machine (per Paul Williams' parser)
// coupled with parameter collection, UTF-8 reassembly, conformance-level
// gating, and a dispatch table of terminal functions. It consumes bytes
// from a pseudoterminal and drives an external ScreenWriter; it never
// renders, never owns a tty, and never parses command-line options.
package vtparser

import "github.com/nexpane/vtcore/internal/logging"

// Collaborators bundles every external interface a Ctx needs. None of them
// are implemented by this package; internal/screen, internal/palette,
// internal/hyperlink, internal/clipboard, and internal/options ship
// reference implementations used by this package's own tests.
type Collaborators struct {
	Screen   ScreenWriter
	Palette  Palette
	Links    Hyperlinks
	Paste    PasteStore
	Options  Options
	Sink     Sink
	Timer    Timer
	Notifier Notifier
	Sixel    SixelDecoder // optional
}

// Ctx is the parser context owned by exactly one terminal attachment.
// It is created once per pane/attachment, mutated only on its owning event
// loop, and destroyed with the pane.
type Ctx struct {
	state State

	termLevel Level
	maxLevel  Level

	currentCell      Cell
	set              int // GL selector: 0 -> G0, 1 -> G1
	g0IsACS, g1IsACS bool

	savedCell Cell
	savedCX   int
	savedCY   int
	savedMode uint32

	intermBuf []byte
	paramBuf  []byte
	paramList []Param

	strBuf    []byte
	stringCap int

	strTerm stringTerminator

	utf8 utf8State

	lastGrapheme string
	lastWidth    int

	discard bool
	last    bool // LAST: previous action was a printable or top-bit emission

	// selfSetLast lets a CSI handler (REP) keep LAST true across its own
	// dispatch; dispatchCSI clears LAST after every other handler.
	selfSetLast bool

	sinceGround []byte

	timerArmed bool

	// dcsKind routes a completed dcs_handler payload to its handler; the
	// header (final, intermediates, parameters) is snapshotted here because
	// the collectors are reused while the payload accumulates.
	dcsKind      dcsKind
	dcsFinal     byte
	dcsInterm    string
	dcsParamList []Param

	// modeLRMargins tracks DECLRMM so the CSI 's' final can decide
	// between DECSLRM and save-cursor.
	modeLRMargins bool
	modeOrigin    bool
	modeInsert    bool
	modeLNM       bool // line feed / new line mode: LF also does CR

	tabs          []bool
	rleft, rright int

	cursorStyle    int
	cursorStyleSet bool

	titleStack []string

	extendedKeysMode int // 0 off, 1 modset-toggled on, 2 always (from options, cached at reset)

	freed bool

	col Collaborators
}

type stringTerminator uint8

const (
	termST stringTerminator = iota
	termBEL
)

type dcsKind uint8

const (
	dcsKindGeneric dcsKind = iota
	dcsKindRSPS // DECRSPS (restore cursor/tab state), final 't', intermediate "$"
	dcsKindRSTS // DECRSTS (restore terminal state), final 'p', intermediate "$"
	dcsKindSixel
)

// New creates a parser context wired to the given collaborators, with
// dimensions and tab stops matching a screen of the given width. The
// default-emulation-level option sets the maximum level the attachment may
// reach; DECSCL can move termLevel below it but never above. The screen
// writer's Start is called here and its Stop from Free.
func New(width int, col Collaborators) *Ctx {
	c := newCtx(width, col)
	if c.col.Screen != nil {
		c.col.Screen.Start()
	}
	return c
}

// NewPane is New for a context attached to a specific pane: the screen
// writer is started with StartPane(paneID) so a multiplexing host can route
// the write stream.
func NewPane(width, paneID int, col Collaborators) *Ctx {
	c := newCtx(width, col)
	if c.col.Screen != nil {
		c.col.Screen.StartPane(paneID)
	}
	return c
}

func newCtx(width int, col Collaborators) *Ctx {
	c := &Ctx{
		col:      col,
		maxLevel: LevelVT241,
		rright:   width - 1,
	}
	if col.Options != nil {
		c.maxLevel = col.Options.DefaultEmulationLevel()
	}
	c.termLevel = c.maxLevel
	c.cacheExtendedKeysMode()
	c.resetTabs(width)
	c.currentCell = Cell{}
	return c
}

// cacheExtendedKeysMode derives extendedKeysMode from the extended-keys
// option: "always" latches reporting on and MODSET/MODOFF cannot change it;
// "off"/"on" both start off, "on" leaving it toggleable via MODSET.
func (c *Ctx) cacheExtendedKeysMode() {
	c.extendedKeysMode = 0
	if c.col.Options != nil && c.col.Options.ExtendedKeys() == ExtendedKeysAlways {
		c.extendedKeysMode = 2
	}
}

func (c *Ctx) resetTabs(width int) {
	c.tabs = make([]bool, width)
	for x := 0; x < width; x += 8 {
		c.tabs[x] = true
	}
}

// Resize updates the tab-stop bitmap and right margin for a new screen
// width. Tab stops beyond the new width are dropped; stops within it are
// preserved.
func (c *Ctx) Resize(width int) {
	old := c.tabs
	c.tabs = make([]bool, width)
	for x := 0; x < width && x < len(old); x++ {
		c.tabs[x] = old[x]
	}
	if c.rright >= width {
		c.rright = width - 1
	}
}

// Reset returns the context to its power-on state: RIS semantics.
// This clears collectors, modes, saved cursor, and the since-ground log, and
// asks the screen writer to reset and fully redraw.
func (c *Ctx) Reset() {
	c.state = StateGround
	c.clearCollectors()
	c.sinceGround = c.sinceGround[:0]
	c.currentCell = Cell{}
	c.savedCell = Cell{}
	c.savedCX, c.savedCY = 0, 0
	c.savedMode = 0
	c.set = 0
	c.g0IsACS, c.g1IsACS = false, false
	c.modeLRMargins = false
	c.modeOrigin = false
	c.modeInsert = false
	c.modeLNM = false
	c.termLevel = c.maxLevel
	c.cacheExtendedKeysMode()
	c.last = false
	c.lastGrapheme = ""
	c.utf8 = utf8State{}
	c.cursorStyle = 0
	c.cursorStyleSet = false
	c.titleStack = nil
	c.strTerm = termST
	c.rleft = 0
	if len(c.tabs) > 0 {
		c.resetTabs(len(c.tabs))
		c.rright = len(c.tabs) - 1
	}
	if c.col.Palette != nil {
		c.col.Palette.ResetAll()
	}
	if c.col.Screen != nil {
		c.col.Screen.Reset()
		c.col.Screen.FullRedraw()
	}
}

// Free releases a context's buffers, disarms its timer, and stops the
// screen writer. Safe to call more than once.
func (c *Ctx) Free() {
	c.disarmTimer()
	if !c.freed && c.col.Screen != nil {
		c.col.Screen.Stop()
	}
	c.freed = true
	c.intermBuf = nil
	c.paramBuf = nil
	c.paramList = nil
	c.strBuf = nil
	c.sinceGround = nil
	c.tabs = nil
}

// State returns the context's current parser state, primarily for tests and
// diagnostics.
func (c *Ctx) State() State { return c.state }

// SetStringCap overrides the string-state buffer's hard cap (default 1 MiB).
// Bytes past the cap are consumed but discarded, and the sequence's handler
// does nothing.
func (c *Ctx) SetStringCap(n int) { c.stringCap = n }

// SinceGround returns the bytes observed since the last time the parser was
// in ground state. Empty iff State() == StateGround.
func (c *Ctx) SinceGround() []byte { return c.sinceGround }

// setState performs the transition bookkeeping shared by every state change:
// the exit side effects of the old state, then the entry side effects of the
// new one. The since-ground log is appended by feedByte, not here.
func (c *Ctx) setState(next State) {
	if c.state == next {
		return
	}
	c.exitState(c.state)
	c.state = next
	c.enterState(next)
}

func (c *Ctx) exitState(s State) {
	switch s {
	case StateOSCString:
		if !c.discard {
			c.dispatchOSC()
		}
	case StateAPCString:
		if !c.discard {
			c.dispatchAPC()
		}
	case StateRenameString:
		if !c.discard {
			c.dispatchRename()
		}
	}
}

func (c *Ctx) enterState(s State) {
	switch s {
	case StateEscEnter, StateCSIEnter, StateDCSEnter, StateOSCString, StateAPCString, StateRenameString, StateDECRQSSEnter, StateConsumeST:
		c.flushCollect()
		c.clearCollectors()
		c.disarmTimer()
	}
	switch s {
	case StateDCSEnter, StateOSCString, StateAPCString, StateRenameString:
		c.armTimer()
	case StateGround:
		c.disarmTimer()
		c.drainSinceGround()
		c.shrinkStringBuffer()
	}
}

// flushCollect closes the screen writer's print-collection run. Printables
// are allowed to keep collecting only while the parser stays in ground; any
// other handler flushes first, so grid effects land in byte order.
func (c *Ctx) flushCollect() {
	if c.col.Screen != nil {
		c.col.Screen.CollectEnd()
	}
}

func (c *Ctx) drainSinceGround() {
	c.sinceGround = c.sinceGround[:0]
}

func (c *Ctx) shrinkStringBuffer() {
	if cap(c.strBuf) > maxStringInit*4 {
		c.strBuf = make([]byte, 0, maxStringInit)
	} else {
		c.strBuf = c.strBuf[:0]
	}
}

func (c *Ctx) logUnknown(format string, args ...any) {
	logging.Warn(format, args...)
}
