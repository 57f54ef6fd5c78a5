package vtparser

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// handleDECRSPS answers DCS Ps $ t Pt ST (Restore Presentation State), the
// inverse of DECRQPSR's reports. Ps=1 restores cursor
// position/rendition/charset from a DECCIR-shaped Pt; Ps=2 restores tab
// stops from a DECTABSR-shaped Pt.
func (c *Ctx) handleDECRSPS(payload []byte) {
	switch c.dcsFieldSelector() {
	case 1:
		c.restoreDECCIR(string(payload))
	case 2:
		c.restoreDECTABSR(string(payload))
	default:
		c.logUnknown("vtparser: unknown DECRSPS field selector")
	}
}

// handleDECRSTS answers DCS Ps $ p Pt ST (Restore Terminal State). Ps=2
// restores the colour table from a DECCTR-shaped Pt; other selectors are
// not modeled by this core.
func (c *Ctx) handleDECRSTS(payload []byte) {
	switch c.dcsFieldSelector() {
	case 2:
		c.restoreDECCTR(string(payload))
	default:
		c.logUnknown("vtparser: unknown DECRSTS field selector")
	}
}

func (c *Ctx) dcsFieldSelector() int {
	if len(c.dcsParamList) > 0 && c.dcsParamList[0].Kind == ParamNumber {
		return int(c.dcsParamList[0].Num)
	}
	return 0
}

// restoreDECCIR parses the fixed-position numeric fields replyDECCIR
// produces (row; column; page; SGR bits; SCA bits; mode bits; GL; GR;
// charset-size; G0..G3 designations) and restores cursor position,
// rendition, charset state, and origin mode. Unknown or truncated reports
// are logged and dropped.
func (c *Ctx) restoreDECCIR(body string) {
	fields := strings.Split(body, ";")
	if len(fields) < 13 {
		c.logUnknown("vtparser: truncated DECCIR report %q", body)
		return
	}
	row := atoiDefault(fields[0], 1)
	col := atoiDefault(fields[1], 1)
	rend := atoiDefault(fields[3], 0)
	flags := atoiDefault(fields[5], 0)
	gl := atoiDefault(fields[6], 0)
	g0 := atoiDefault(fields[9], 0)
	g1 := atoiDefault(fields[10], 0)

	c.currentCell.Attr = CellAttr(rend)
	if gl == 1 {
		c.set = 1
	} else {
		c.set = 0
	}
	c.g0IsACS = g0 != 0
	c.g1IsACS = g1 != 0
	c.modeOrigin = flags&1 != 0
	x := col - 1
	if flags&8 != 0 {
		// Last-column flag: the cursor sits past the right margin with a
		// wrap pending.
		x = c.rright + 1
	}
	if c.col.Screen != nil {
		c.col.Screen.CursorMove(x, row-1, false)
		c.col.Screen.SetCurrentCell(c.currentCell)
	}
}

// restoreDECTABSR parses a '/'-separated list of 1-based column numbers (the
// shape replyDECTABSR produces) and rebuilds the tab-stop bitmap.
func (c *Ctx) restoreDECTABSR(body string) {
	for i := range c.tabs {
		c.tabs[i] = false
	}
	if body == "" {
		return
	}
	for _, f := range strings.Split(body, "/") {
		col := atoiDefault(f, 0)
		if col >= 1 && col <= len(c.tabs) {
			c.tabs[col-1] = true
		}
	}
}

// restoreDECCTR parses a '/'-separated list of "idx;cs;x;y;z" entries (the
// shape replyDECCTR produces, plus any HLS-form DECRSTS a host sends):
// cs=2 is RGB (each component 0..=100 scaled to 0..=255); cs=1 is HLS
// (hue 0..=360, lightness/saturation 0..=100), converted to sRGB through
// go-colorful since the Palette collaborator only stores RGB. On any parse
// error for an entry, that entry is skipped and the existing palette slot
// is preserved.
func (c *Ctx) restoreDECCTR(body string) {
	if c.col.Palette == nil || body == "" {
		return
	}
	for _, entry := range strings.Split(body, "/") {
		fields := strings.Split(entry, ";")
		if len(fields) != 5 {
			continue
		}
		idx := atoiDefault(fields[0], -1)
		if idx < 0 || idx > 255 {
			continue
		}
		px, errX := strconv.Atoi(fields[2])
		py, errY := strconv.Atoi(fields[3])
		pz, errZ := strconv.Atoi(fields[4])
		if errX != nil || errY != nil || errZ != nil {
			continue
		}
		switch fields[1] {
		case "2": // RGB, components 0..=100
			r := scaleFrom100(px)
			g := scaleFrom100(py)
			b := scaleFrom100(pz)
			c.col.Palette.Set(idx, r, g, b)
		case "1": // HLS: Px=hue 0..=360, Py=lightness 0..=100, Pz=saturation 0..=100
			hue := float64(px)
			lightness := float64(py) / 100
			saturation := float64(pz) / 100
			col := colorful.Hsl(hue, saturation, lightness)
			r, g, b := col.Clamped().RGB255()
			c.col.Palette.Set(idx, r, g, b)
		default:
			continue
		}
	}
}

func scaleFrom100(v int) uint8 {
	return uint8((v*255 + 50) / 100)
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
