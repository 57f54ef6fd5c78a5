package vtparser

import (
	"fmt"
)

// reply writes a fully-formed escape sequence to the Sink collaborator. It
// is the single choke point for every outbound byte the core produces, so
// tests can assert on dispatch order against one fake.
func (c *Ctx) reply(s string) {
	if c.col.Sink == nil {
		return
	}
	c.col.Sink.Write([]byte(s))
}

// replyDA answers CSI c (Primary Device Attributes). VT220/VT241 advertise
// selective erase, user-defined keys, ANSI colour and the horizontal/
// vertical extensions; lower conformance levels advertise plain VT100.
func (c *Ctx) replyDA() {
	if c.maxLevel.AtLeast(LevelVT241) {
		c.reply("\x1b[?62;1;2;4;6;16;17;21;22c")
		return
	}
	if c.maxLevel.AtLeast(LevelVT220) {
		c.reply("\x1b[?62;1;2;6;16;17;21;22c")
		return
	}
	c.reply("\x1b[?1;2c")
}

// replyDA2 answers CSI > c (Secondary Device Attributes): terminal family,
// firmware version, cartridge id.
func (c *Ctx) replyDA2() {
	c.reply("\x1b[>84;0;0c")
}

// replyXDA answers CSI > q (XTVERSION-style extended device attributes).
func (c *Ctx) replyXDA() {
	c.reply("\x1bP>|vtcore 1.0\x1b\\")
}

// dispatchDSR answers CSI n (ANSI) and CSI ? n (DEC private) status
// requests.
func (c *Ctx) dispatchDSR(private bool) {
	n := c.Get(0, 0, 0)
	if !private {
		switch n {
		case 5:
			c.reply("\x1b[0n") // status: ok
		case 6:
			c.replyCursorPosition(false)
		}
		return
	}
	switch n {
	case 6:
		c.replyCursorPosition(true)
	case 15:
		c.reply("\x1b[?13n") // no printer attached
	case 25:
		c.reply("\x1b[?21n") // UDKs not locked
	case 26:
		c.reply("\x1b[?27;1n") // keyboard dialect: North American
	case 996:
		c.replyTheme()
	default:
		c.logUnknown("vtparser: unhandled DSR request %d (private=%v)", n, private)
	}
}

// replyTheme answers DSR-private 996 (report theme) with CSI ? 997 ; Th n,
// Th=1 for dark and Th=2 for light; if no Notifier is wired, or it has no
// opinion, no reply is sent at all (the host simply doesn't track a theme).
func (c *Ctx) replyTheme() {
	if c.col.Notifier == nil {
		return
	}
	dark, known := c.col.Notifier.Theme()
	if !known {
		return
	}
	th := 2
	if dark {
		th = 1
	}
	c.reply(fmt.Sprintf("\x1b[?997;%dn", th))
}

func (c *Ctx) replyCursorPosition(decPrivate bool) {
	x, y := 0, 0
	if c.col.Screen != nil {
		x, y = c.col.Screen.CursorPosition()
		if c.modeOrigin {
			top, _, left, _ := c.col.Screen.ScrollRegionBounds()
			x -= left
			y -= top
		}
	}
	if decPrivate {
		c.reply(fmt.Sprintf("\x1b[?%d;%dR", y+1, x+1))
	} else {
		c.reply(fmt.Sprintf("\x1b[%d;%dR", y+1, x+1))
	}
}

// dispatchDECRQM answers CSI Ps $ p / CSI ? Ps $ p (Request Mode): reports
// one of not-recognized(0)/set(2)/permanently-set(3)/reset(4).
func (c *Ctx) dispatchDECRQM(private bool) {
	mode := c.Get(0, 0, 0)
	state := c.queryModeState(mode, private)
	if private {
		c.reply(fmt.Sprintf("\x1b[?%d;%d$y", mode, state))
	} else {
		c.reply(fmt.Sprintf("\x1b[%d;%d$y", mode, state))
	}
}

// queryModeState returns the DECRQM state code for a mode this context
// tracks; modes it has no opinion on report not-recognized (0), matching
// the conservative default for a core that delegates most mode effects to
// ScreenWriter.ModeSet/ModeClear.
func (c *Ctx) queryModeState(mode int, private bool) int {
	if !private {
		switch mode {
		case 4: // IRM
			return boolToDECRQM(c.modeInsert)
		case 20: // LNM
			return boolToDECRQM(c.modeLNM)
		}
		return 0
	}
	switch mode {
	case 6: // DECOM
		return boolToDECRQM(c.modeOrigin)
	case 69: // DECLRMM
		return boolToDECRQM(c.modeLRMargins)
	}
	return 0
}

func boolToDECRQM(v bool) int {
	if v {
		return 2
	}
	return 4
}

// replyWindowSize answers the size/title-length queries inside the window
// ops sub-language (CSI t). Pixel-size queries (14, 16) report 0 since
// this core has no notion of a cell's pixel dimensions (that's the host
// renderer's concern); 18/19 report the character grid, and 15 (screen size
// in pixels) follows the same "unknown, report 0" convention.
func (c *Ctx) replyWindowSize(op int) {
	width, height := 0, 0
	if c.col.Screen != nil {
		width, height = c.col.Screen.Size()
	}
	switch op {
	case 14:
		c.reply("\x1b[4;0;0t")
	case 15:
		c.reply("\x1b[5;0;0t")
	case 16:
		c.reply("\x1b[6;0;0t")
	case 18:
		c.reply(fmt.Sprintf("\x1b[8;%d;%dt", height, width))
	case 19:
		c.reply(fmt.Sprintf("\x1b[9;%d;%dt", height, width))
	}
}

// pushTitle/popTitle implement the window-ops title stack (CSI 22/23 t).
func (c *Ctx) pushTitle(what int) {
	if what != 0 && what != 2 {
		return
	}
	title := ""
	if c.col.Screen != nil {
		title = c.col.Screen.Title()
	}
	c.titleStack = append(c.titleStack, title)
}

func (c *Ctx) popTitle(what int) {
	if what != 0 && what != 2 {
		return
	}
	if len(c.titleStack) == 0 {
		return
	}
	title := c.titleStack[len(c.titleStack)-1]
	c.titleStack = c.titleStack[:len(c.titleStack)-1]
	if c.col.Screen != nil {
		c.col.Screen.SetTitle(title)
	}
	if c.col.Notifier != nil {
		c.col.Notifier.NotifyTitleChanged(title)
	}
}

// replyDECRQSS writes a DECRPSS response: valid requests echo "1$r<Pt>",
// where Pt is the full reconstructed setting string (value plus the
// intermediate/final bytes that would set it); unrecognized requests report
// "0$r" with no Pt.
func (c *Ctx) replyDECRQSS(valid bool, pt string) {
	if !valid {
		c.reply("\x1bP0$r\x1b\\")
		return
	}
	c.reply("\x1bP1$r" + pt + "\x1b\\")
}

