package vtparser

// cursorRelative implements CUU/CUD/CUB/CUF: move by (dy, dx) from the
// current position, clamped by the screen writer.
func (c *Ctx) cursorRelative(dy, dx int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	switch {
	case dy < 0:
		sw.CursorUp(-dy)
	case dy > 0:
		sw.CursorDown(dy)
	}
	switch {
	case dx < 0:
		sw.CursorLeft(-dx)
	case dx > 0:
		sw.CursorRight(dx)
	}
}

// cursorNextLine implements CNL (n>0) / CPL (n<0): move to column 1 of the
// line n rows below (CNL) or above (CPL).
func (c *Ctx) cursorNextLine(n int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	sw.CarriageReturn()
	switch {
	case n > 0:
		sw.CursorDown(n)
	case n < 0:
		sw.CursorUp(-n)
	}
}

// cursorHorizontalAbsolute implements CHA/HPA: 1-based column, 0-based
// internally.
func (c *Ctx) cursorHorizontalAbsolute(col int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	_, y := sw.CursorPosition()
	sw.CursorMove(col-1, y, false)
}

// cursorVerticalAbsolute implements VPA: 1-based row, origin-relative when
// DECOM is set. The column stays put, so the origin offset is applied here
// rather than through the screen writer's origin flag (which would also
// shift x by the left margin).
func (c *Ctx) cursorVerticalAbsolute(row int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	x, _ := sw.CursorPosition()
	y := row - 1
	if c.modeOrigin {
		top, _, _, _ := sw.ScrollRegionBounds()
		y += top
	}
	sw.CursorMove(x, y, false)
}

// cursorPosition implements CUP/HVP: 1-based (row, col), origin-sensitive.
func (c *Ctx) cursorPosition(row, col int) {
	if c.col.Screen == nil {
		return
	}
	c.col.Screen.CursorMove(col-1, row-1, c.modeOrigin)
}

// tabForward implements CHT: advance n tab stops, bounded by rright.
func (c *Ctx) tabForward(n int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	x, y := sw.CursorPosition()
	for i := 0; i < n; i++ {
		next := c.nextTabStop(x)
		if next > c.rright {
			next = c.rright
			x = next
			break
		}
		x = next
	}
	sw.CursorMove(x, y, false)
}

// tabBackward implements CBT: retreat n tab stops, bounded by rleft.
func (c *Ctx) tabBackward(n int) {
	sw := c.col.Screen
	if sw == nil {
		return
	}
	x, y := sw.CursorPosition()
	for i := 0; i < n; i++ {
		x = c.prevTabStop(x)
		if x < c.rleft {
			x = c.rleft
			break
		}
	}
	sw.CursorMove(x, y, false)
}

func (c *Ctx) prevTabStop(from int) int {
	for x := from - 1; x > 0; x-- {
		if x < len(c.tabs) && c.tabs[x] {
			return x
		}
	}
	return 0
}

// tabClear implements TBC: 0 clears the stop at the cursor, 3 clears all.
func (c *Ctx) tabClear(mode int) {
	switch mode {
	case 0:
		if c.col.Screen == nil {
			return
		}
		x, _ := c.col.Screen.CursorPosition()
		if x >= 0 && x < len(c.tabs) {
			c.tabs[x] = false
		}
	case 3:
		for i := range c.tabs {
			c.tabs[i] = false
		}
	}
}

// repeatLastGrapheme implements REP: repeat the last printed
// grapheme n times, capped to remaining columns, only if LAST is set.
func (c *Ctx) repeatLastGrapheme(n int) {
	if !c.last || c.lastGrapheme == "" || c.col.Screen == nil {
		return
	}
	x, _ := c.col.Screen.CursorPosition()
	remaining := c.rright - x + 1
	if remaining < 0 {
		remaining = 0
	}
	maxReps := remaining
	if c.lastWidth > 0 {
		maxReps = remaining / c.lastWidth
	}
	if n > maxReps {
		n = maxReps
	}
	r := []rune(c.lastGrapheme)[0]
	for i := 0; i < n; i++ {
		c.col.Screen.CollectAdd(r, c.lastWidth)
	}
	c.selfSetLast = true
}
