package vtparser

// stepEsc runs the esc_enter/esc_intermediate states: collect intermediate
// bytes (0x20..0x2F), then dispatch on a final byte (0x30..0x7E). The
// special finals '[', ']', 'P', '_', 'k' switch directly into CSI/OSC/DCS/
// APC/rename-window framing instead of going through dispatchEsc.
func (c *Ctx) stepEsc(b byte) {
	if c.state == StateEscEnter {
		switch b {
		case '[':
			c.setState(StateCSIEnter)
			return
		case ']':
			c.strTerm = termST
			c.setState(StateOSCString)
			return
		case 'P':
			c.setState(StateDCSEnter)
			return
		case '_':
			c.setState(StateAPCString)
			return
		case 'k':
			c.setState(StateRenameString)
			return
		case '^': // PM (privacy message): framed like APC, payload unused.
			c.setState(StateConsumeST)
			return
		case '\\':
			// ST with no preceding string state: no-op, state already consumed.
			c.setState(StateGround)
			return
		}
	}
	switch {
	case b >= 0x20 && b <= 0x2F:
		c.collectIntermByte(b)
		c.setState(StateEscIntermediate)
	case b >= 0x30 && b <= 0x7E:
		if !c.discard {
			c.dispatchEsc(b)
		}
		c.setState(StateGround)
	default:
		// Unrecognized byte inside an escape sequence: drop it, stay put.
	}
}

// dispatchEsc executes the simple escape commands keyed by (final,
// intermediates).
func (c *Ctx) dispatchEsc(final byte) {
	c.flushCollect()
	interm := c.intermediates()
	sw := c.col.Screen
	switch {
	case interm == "" && final == '7': // DECSC
		c.saveCursorState()
	case interm == "" && final == '8': // DECRC
		c.restoreCursorState()
	case interm == "#" && final == '8': // DECALN
		if sw != nil {
			sw.AlignmentTest()
		}
	case interm == "" && final == '=': // DECKPAM
	case interm == "" && final == '>': // DECKPNM
	case interm == "" && final == 'D': // IND
		if sw != nil {
			sw.LineFeed()
		}
	case interm == "" && final == 'E': // NEL
		if sw != nil {
			sw.CarriageReturn()
			sw.LineFeed()
		}
	case interm == "" && final == 'H': // HTS
		if sw != nil {
			x, _ := sw.CursorPosition()
			if x >= 0 && x < len(c.tabs) {
				c.tabs[x] = true
			}
		}
	case interm == "" && final == 'Z': // DECID, answered like DA
		c.replyDA()
	case interm == "" && final == 'M': // RI
		if sw != nil {
			sw.ReverseIndex()
		}
	case interm == "" && final == 'c': // RIS
		c.fullReset()
	case interm == "" && final == '6': // DECBI (VT220+)
		if c.atLeastVT220() && sw != nil {
			sw.BackIndex()
		}
	case interm == "" && final == '9': // DECFI (VT220+)
		if c.atLeastVT220() && sw != nil {
			sw.ForwardIndex()
		}
	case interm == "(" && (final == '0' || final == 'B'): // G0 designate
		c.g0IsACS = final == '0'
	case interm == ")" && (final == '0' || final == 'B'): // G1 designate
		c.g1IsACS = final == '0'
	case interm == "" && final == '\\': // ST, already a no-op
	default:
		c.logUnknown("vtparser: unknown ESC final %q intermediates %q", final, interm)
	}
	c.last = false
}

// savedMode bit layout for DECSC/DECRC.
const (
	savedModeOrigin uint32 = 1 << iota
	savedModeGLIsG1
	savedModeG0ACS
	savedModeG1ACS
)

func (c *Ctx) saveCursorState() {
	x, y := 0, 0
	if c.col.Screen != nil {
		x, y = c.col.Screen.CursorPosition()
		c.currentCell = c.col.Screen.CurrentCell()
	}
	c.savedCell = c.currentCell
	c.savedCX, c.savedCY = x, y
	c.savedMode = 0
	if c.modeOrigin {
		c.savedMode |= savedModeOrigin
	}
	if c.set == 1 {
		c.savedMode |= savedModeGLIsG1
	}
	if c.g0IsACS {
		c.savedMode |= savedModeG0ACS
	}
	if c.g1IsACS {
		c.savedMode |= savedModeG1ACS
	}
}

func (c *Ctx) restoreCursorState() {
	c.modeOrigin = c.savedMode&savedModeOrigin != 0
	c.set = 0
	if c.savedMode&savedModeGLIsG1 != 0 {
		c.set = 1
	}
	c.g0IsACS = c.savedMode&savedModeG0ACS != 0
	c.g1IsACS = c.savedMode&savedModeG1ACS != 0
	c.currentCell = c.savedCell
	if c.col.Screen == nil {
		return
	}
	c.col.Screen.CursorMove(c.savedCX, c.savedCY, false)
	c.col.Screen.SetCurrentCell(c.savedCell)
}

// fullReset implements RIS: clear palette, clear cell, reset screen,
// full redraw.
func (c *Ctx) fullReset() {
	c.Reset()
}
