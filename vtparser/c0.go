package vtparser

// dispatchC0 executes single-byte C0 controls recognized in ground state.
// NUL and other unlisted codes fall through the switch and do nothing except
// clear LAST like every other code reaching this function.
func (c *Ctx) dispatchC0(b byte) {
	c.flushCollect()
	sw := c.col.Screen
	switch b {
	case 0x07: // BEL
		c.bell()
	case 0x08: // BS
		if sw != nil {
			sw.Backspace()
		}
	case 0x09: // HT
		c.horizontalTab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		if sw != nil {
			sw.LineFeed()
		}
		if c.modeLNM {
			if sw != nil {
				sw.CarriageReturn()
			}
		}
	case 0x0D: // CR
		if sw != nil {
			sw.CarriageReturn()
		}
	case 0x0E: // SO: GL <- G1
		c.set = 1
	case 0x0F: // SI: GL <- G0
		c.set = 0
	case 0x18, 0x1A: // CAN, SUB
		// handled by feedByte's "anywhere" rule before reaching here
	}
	c.last = false
}

// bell notifies the host of an alert; the core has no audio/visual bell
// collaborator of its own, so this does nothing (dispatchC0 clears LAST for
// every code). A host wanting a visible bell observes it through its own
// ScreenWriter/Notifier wiring.
func (c *Ctx) bell() {}

// horizontalTab advances to the next tab stop, bounded by the scroll
// region's right margin.
func (c *Ctx) horizontalTab() {
	x, y := 0, 0
	if c.col.Screen != nil {
		x, y = c.col.Screen.CursorPosition()
	}
	next := c.nextTabStop(x)
	if next > c.rright {
		next = c.rright
	}
	if c.col.Screen != nil {
		c.col.Screen.CursorMove(next, y, false)
	}
}

func (c *Ctx) nextTabStop(from int) int {
	for x := from + 1; x < len(c.tabs); x++ {
		if c.tabs[x] {
			return x
		}
	}
	if len(c.tabs) == 0 {
		return from
	}
	return len(c.tabs) - 1
}
