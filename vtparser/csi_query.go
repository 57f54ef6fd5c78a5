package vtparser

import "fmt"

// dispatchDECRQPSR answers CSI Ps $ w (Request Presentation State Report):
// Ps selects which presentation-state report to return. Ps=1 returns the
// cursor information report (DECCIR); Ps=2 returns the tab-stop report
// (DECTABSR). Reports are DCS-framed with the "$ u" presentation-state
// intro, the inverse of DECRSPS's "$ t" restore.
func (c *Ctx) dispatchDECRQPSR() {
	if !c.atLeastVT220() {
		return
	}
	switch c.Get(0, 0, 0) {
	case 1:
		c.replyDECCIR()
	case 2:
		c.replyDECTABSR()
	default:
		c.logUnknown("vtparser: unknown DECRQPSR report selector %d", c.Get(0, 0, 0))
	}
}

// replyDECCIR encodes the cursor information report. Field positions (all
// numeric): row; column; page; SGR bits; SCA bits; mode bits (bit 0 origin,
// bit 3 last-column); GL selector; GR selector; charset-size flag; G0..G3
// designations (1 = DEC special graphics). The same positions are parsed
// back by DECRSPS selector 1.
func (c *Ctx) replyDECCIR() {
	x, y := 0, 0
	if c.col.Screen != nil {
		x, y = c.col.Screen.CursorPosition()
	}
	flags := 0
	if c.modeOrigin {
		flags |= 1
	}
	if x > c.rright {
		flags |= 8
	}
	body := fmt.Sprintf("%d;%d;1;%d;0;%d;%d;2;0;%d;%d;0;0",
		y+1, x+1, int(c.currentCell.Attr), flags, c.set,
		boolToBit(c.g0IsACS), boolToBit(c.g1IsACS))
	c.reply("\x1bP1$u" + body + "\x1b\\")
}

// replyDECTABSR encodes the tab-stop report: 1-based column numbers of every
// set stop, '/' separated, round-tripping through DECRSPS selector 2.
func (c *Ctx) replyDECTABSR() {
	first := true
	body := ""
	for x, set := range c.tabs {
		if !set {
			continue
		}
		if !first {
			body += "/"
		}
		body += fmt.Sprintf("%d", x+1)
		first = false
	}
	c.reply("\x1bP2$u" + body + "\x1b\\")
}

// dispatchDECRQTSR answers CSI Ps $ u (Request Terminal State Report),
// framed with the "$ s" terminal-state intro. Ps=1 requests DECTSR (the
// core tracks no terminal state beyond the palette, so this is an empty
// report); Ps=2 requests DECCTR, the colour-table report.
func (c *Ctx) dispatchDECRQTSR() {
	if !c.atLeastVT220() {
		return
	}
	switch c.Get(0, 0, 0) {
	case 1:
		c.reply("\x1bP1$s\x1b\\")
	case 2:
		c.replyDECCTR()
	default:
		c.logUnknown("vtparser: unknown DECRQTSR report selector %d", c.Get(0, 0, 0))
	}
}

// replyDECCTR encodes the colour-table report: one "Pc;Pu;Px;Py;Pz" entry
// per palette slot. The traditional DEC wire format is HLS, but since the
// Palette collaborator only exposes RGB, entries are encoded as Pu=2 (RGB)
// triples scaled to the 0-100 DEC colour-component range; DECRSTS accepts
// both forms back.
func (c *Ctx) replyDECCTR() {
	if c.col.Palette == nil {
		c.reply("\x1bP2$s\x1b\\")
		return
	}
	body := ""
	for i := 0; i < 256; i++ {
		r, g, b, ok := c.col.Palette.Get(i)
		if !ok {
			continue
		}
		if body != "" {
			body += "/"
		}
		body += fmt.Sprintf("%d;2;%d;%d;%d", i, scaleTo100(r), scaleTo100(g), scaleTo100(b))
	}
	c.reply("\x1bP2$s" + body + "\x1b\\")
}

func scaleTo100(v uint8) int {
	return (int(v)*100 + 127) / 255
}

func boolToBit(v bool) int {
	if v {
		return 1
	}
	return 0
}
