package vtparser

// eraseDisplay implements ED/DECSED modes 0/1/2/3. Mode 3 additionally
// clears scrollback history (a Linux-console extension) when the second
// parameter is zero or absent.
func (c *Ctx) eraseDisplay(mode int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	switch mode {
	case 0:
		sw.ClearEndOfScreen()
	case 1:
		sw.ClearStartOfScreen()
	case 2:
		sw.ClearScreen()
	case 3:
		sw.ClearScreen()
		if c.Get(1, 0, 0) == 0 {
			sw.ClearHistory()
		}
	}
}

// eraseLine implements EL/DECSEL modes 0/1/2.
func (c *Ctx) eraseLine(mode int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	switch mode {
	case 0:
		sw.ClearEndOfLine()
	case 1:
		sw.ClearStartOfLine()
	case 2:
		sw.ClearLine()
	}
}

// setScrollMargins implements DECSTBM: 1-based top/bottom, bottom 0 means
// "to the last line".
func (c *Ctx) setScrollMargins(top, bottom int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	_, height := sw.Size()
	if bottom <= 0 || bottom > height {
		bottom = height
	}
	if top >= bottom {
		return
	}
	sw.ScrollRegion(top-1, bottom-1)
	sw.CursorMove(0, 0, c.modeOrigin)
}

// setLRMargins implements DECSLRM: 1-based left/right, active only when
// left/right margin mode (DECLRMM) is set.
func (c *Ctx) setLRMargins(left, right int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	if right <= 0 {
		right = c.rright + 1
	}
	if left >= right {
		return
	}
	c.rleft = left - 1
	c.rright = right - 1
	sw.ScrollMargin(c.rleft, c.rright)
	sw.CursorMove(0, 0, c.modeOrigin)
}

// softReset implements DECSTR (VT220+): reset cell, cursor, and modes
// to power-on defaults without clearing the screen.
func (c *Ctx) softReset() {
	c.currentCell = Cell{}
	c.savedCell = Cell{}
	c.savedCX, c.savedCY = 0, 0
	c.savedMode = 0
	c.modeOrigin = false
	c.modeInsert = false
	c.modeLRMargins = false
	c.rleft = 0
	if len(c.tabs) > 0 {
		c.rright = len(c.tabs) - 1
	}
	if sw := c.col.Screen; sw != nil {
		sw.SoftReset()
		sw.SetCurrentCell(c.currentCell)
		sw.CursorMove(0, 0, false)
	}
}

// dispatchDECSCL implements the DECSCL conformance-level switch:
// argument 61 selects VT100/VT125-class behavior, 62 selects VT220/VT241.
// A soft reset follows a successful VT220+ switch.
func (c *Ctx) dispatchDECSCL() {
	level := c.Get(0, 0, 0)
	switch level {
	case 61:
		c.termLevel = LevelVT100
	case 62:
		if c.maxLevel.AtLeast(LevelVT220) {
			c.termLevel = LevelVT220
		}
	case 63:
		if c.maxLevel.AtLeast(LevelVT220) {
			c.termLevel = LevelVT220
		}
	case 64:
		if c.maxLevel.AtLeast(LevelVT241) {
			c.termLevel = LevelVT241
		}
	default:
		c.logUnknown("vtparser: unknown DECSCL level %d", level)
		return
	}
	if c.atLeastVT220() {
		c.softReset()
	}
}

// dispatchDECSCUSR sets the cursor style (0..=6).
func (c *Ctx) dispatchDECSCUSR() {
	style := c.Get(0, 0, 0)
	if style < 0 || style > 6 {
		return
	}
	c.cursorStyle = style
	c.cursorStyleSet = true
}

// clampCursorStyle keeps an Options.CursorStyle() value inside DECSCUSR's
// valid range (0..=6) before it is echoed back by DECRQSS.
func clampCursorStyle(style int) int {
	if style < 0 || style > 6 {
		return 0
	}
	return style
}

// dispatchWindowOps implements the window-ops sub-language: ops 14, 15, 16,
// 18 and 19 reply with a size report, 22 and 23 push and pop the title
// stack, and every other op is logged and ignored.
func (c *Ctx) dispatchWindowOps() {
	op := c.Get(0, 0, 0)
	switch op {
	case 14, 15, 16, 18, 19:
		c.replyWindowSize(op)
	case 22:
		c.pushTitle(c.Get(1, 0, 0))
	case 23:
		c.popTitle(c.Get(1, 0, 0))
	default:
		// Unknown ops skip their expected parameters by virtue of the
		// generic param-list accessor simply returning defaults; no
		// further bytes need to be consumed since CSI framing already
		// delivered the whole parameter list up front.
		c.logUnknown("vtparser: unhandled window op %d", op)
	}
}
