package vtparser

// dispatchSetMode implements SM/RM (ANSI modes) and DECSET/DECRST (DEC
// private modes), walking every parameter in the list since xterm-class
// terminals accept a batch of modes in one sequence.
func (c *Ctx) dispatchSetMode(set, private bool) {
	for _, p := range c.paramList {
		if p.Kind != ParamNumber {
			continue
		}
		mode := int(p.Num)
		if private {
			c.setDECMode(mode, set)
		} else {
			c.setANSIMode(mode, set)
		}
	}
}

func (c *Ctx) setANSIMode(mode int, set bool) {
	sw := c.col.Screen
	switch mode {
	case 4: // IRM insert/replace: the screen writer owns shifting cells on
		// write, so it is also told via ModeSet/ModeClear.
		c.modeInsert = set
		c.modeSetOrClear(sw, mode, set)
	case 20: // LNM linefeed/newline
		c.modeLNM = set
	default:
		c.logUnknown("vtparser: unknown ANSI mode %d", mode)
		c.modeSetOrClear(sw, mode, set)
	}
}

func (c *Ctx) setDECMode(mode int, set bool) {
	sw := c.col.Screen
	switch mode {
	case 1: // DECCKM application cursor keys: host-side concern, passed through
		c.modeSetOrClear(sw, mode, set)
	case 6: // DECOM origin mode: cursor homes on both set and clear
		c.modeOrigin = set
		if sw != nil {
			sw.CursorMove(0, 0, set)
		}
	case 7: // DECAWM autowrap
		c.modeSetOrClear(sw, mode, set)
	case 12, 13: // blinking cursor (att610) / blinking cursor (also xterm)
		c.modeSetOrClear(sw, mode, set)
	case 25: // DECTCEM cursor visibility
		c.modeSetOrClear(sw, mode, set)
	case 47, 1047: // alternate screen, no cursor save
		c.setAlternateScreen(sw, set, false)
	case 1048: // save/restore cursor only
		if set {
			c.saveCursorState()
		} else {
			c.restoreCursorState()
		}
	case 1049: // alternate screen with cursor save (xterm's combined form)
		if set {
			c.saveCursorState()
		}
		c.setAlternateScreen(sw, set, true)
		if !set {
			c.restoreCursorState()
		}
	case 69: // DECLRMM left/right margin mode
		c.modeLRMargins = set
		if !set {
			c.rleft = 0
			if len(c.tabs) > 0 {
				c.rright = len(c.tabs) - 1
			}
		}
	case 1000, 1002, 1003, 1004, 1005, 1006, 1015, 1016: // mouse reporting variants
		c.modeSetOrClear(sw, mode, set)
	case 2004: // bracketed paste
		c.modeSetOrClear(sw, mode, set)
	case 2026: // synchronized output
		c.modeSetOrClear(sw, mode, set)
	case 2031: // theme-change notification
		c.modeSetOrClear(sw, mode, set)
	case 9001: // extended keyboard protocol toggle, gated by the cached reporting level
		if c.extendedKeysMode != 0 {
			c.modeSetOrClear(sw, mode, set)
		}
	default:
		c.logUnknown("vtparser: unknown DEC private mode %d", mode)
		c.modeSetOrClear(sw, mode, set)
	}
}

// dispatchModSet implements CSI > Pp ; Pv m (MODSET). Only the
// extended-key-reporting resource (Pp == 4) is recognized; Pv toggles it on
// or off. The option gate is "on" only — "always" is already on and cached
// at Reset, and "off" refuses any reporting at all.
func (c *Ctx) dispatchModSet() {
	if c.Get(0, 0, 0) != 4 {
		return
	}
	if c.col.Options == nil || c.col.Options.ExtendedKeys() != ExtendedKeysOn {
		return
	}
	if c.Get(1, 1, 0) == 0 {
		c.extendedKeysMode = 0
	} else {
		c.extendedKeysMode = 1
	}
}

// dispatchModOff implements CSI > Pp n (MODOFF): resets the extended-key
// reporting resource (Pp == 4) back to off, under the same gating as MODSET.
func (c *Ctx) dispatchModOff() {
	if c.Get(0, 0, 0) != 4 {
		return
	}
	if c.col.Options == nil || c.col.Options.ExtendedKeys() != ExtendedKeysOn {
		return
	}
	c.extendedKeysMode = 0
}

func (c *Ctx) modeSetOrClear(sw ScreenWriter, mode int, set bool) {
	if sw == nil {
		return
	}
	if set {
		sw.ModeSet(mode)
	} else {
		sw.ModeClear(mode)
	}
}

func (c *Ctx) setAlternateScreen(sw ScreenWriter, on, clear bool) {
	if sw == nil {
		return
	}
	x, y := sw.CursorPosition()
	if on {
		sw.AlternateOn(x, y, clear)
	} else {
		sw.AlternateOff()
	}
}
