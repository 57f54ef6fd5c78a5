package vtparser

import (
	"fmt"
	"strings"
)

// stepDECRQSSMini runs decrqss_enter/decrqss_intermediate/decrqss_ignore:
// the DECRQSS payload (everything between "DCS $ q" and ST) is itself a
// CSI-like settings name, e.g. "m" for SGR, "\"p" for DECSCL, " q" for
// DECSCUSR, so it is parsed with fresh collectors using the same framing
// rules as CSI. The reply is emitted at the payload's final byte;
// the trailing ST is consumed by consume_st.
func (c *Ctx) stepDECRQSSMini(b byte) {
	switch {
	case b >= '0' && b <= '9', b == ';', b == ':':
		if c.state == StateDECRQSSIntermediate {
			c.setState(StateDECRQSSIgnore)
			return
		}
		c.collectParamByte(b)
	case b >= 0x20 && b <= 0x2F:
		c.collectIntermByte(b)
		c.setState(StateDECRQSSIntermediate)
	case b >= 0x40 && b <= 0x7E:
		ignored := c.state == StateDECRQSSIgnore || c.discard
		interm := c.intermediates()
		c.setState(StateConsumeST)
		if ignored {
			c.replyDECRQSS(false, "")
			return
		}
		c.dispatchDECRQSS(interm, b)
	default:
	}
}

// dispatchDECRQSS answers a DECRQSS settings query identified by the
// payload's intermediate and final bytes, echoing the current value
// reconstructed in the same syntax the query named, or reporting
// not-recognized.
func (c *Ctx) dispatchDECRQSS(interm string, final byte) {
	switch {
	case interm == "" && final == 'm': // SGR
		c.replyDECRQSS(true, c.sgrBody()+"m")
	case interm == "" && final == 'r': // DECSTBM
		top, bottom := 1, 1
		if c.col.Screen != nil {
			t, b, _, _ := c.col.Screen.ScrollRegionBounds()
			top, bottom = t+1, b+1
		}
		c.replyDECRQSS(true, fmt.Sprintf("%d;%dr", top, bottom))
	case interm == "" && final == 's': // DECSLRM
		c.replyDECRQSS(true, fmt.Sprintf("%d;%ds", c.rleft+1, c.rright+1))
	case interm == " " && final == 'q': // DECSCUSR
		style := c.cursorStyle
		if !c.cursorStyleSet {
			style = 0
			if c.col.Options != nil {
				style = clampCursorStyle(c.col.Options.CursorStyle())
			}
		}
		c.replyDECRQSS(true, fmt.Sprintf("%d q", style))
	case interm == "\"" && final == 'q': // DECSCA: no protected attribute support
		c.replyDECRQSS(true, "0\"q")
	case interm == "\"" && final == 'p': // DECSCL
		level := 61
		if c.termLevel.AtLeast(LevelVT220) {
			level = 62
		}
		c.replyDECRQSS(true, fmt.Sprintf("%d;1\"p", level))
	default:
		c.replyDECRQSS(false, "")
	}
}

// sgrBody reconstructs the current cell rendition as an SGR parameter list
// (used by the "m" DECRQSS reply and available for tests asserting
// SGR<->DECRQSS round trips). Extended colours (fg/bg/underline) use the
// same colon-subparameter form CSI m accepts on input, e.g.
// "38:2:0:1:2:3" for a 24-bit foreground, so the reply is re-parseable by
// the CSI m colon path.
func (c *Ctx) sgrBody() string {
	toks := []string{"0"}
	attr := c.currentCell.Attr
	if attr&AttrBold != 0 {
		toks = append(toks, "1")
	}
	if attr&AttrDim != 0 {
		toks = append(toks, "2")
	}
	if attr&AttrItalic != 0 {
		toks = append(toks, "3")
	}
	switch {
	case attr&AttrDoubleUnderline != 0:
		toks = append(toks, "21")
	case attr&AttrCurlyUnderline != 0:
		toks = append(toks, "4:3")
	case attr&AttrDottedUnderline != 0:
		toks = append(toks, "4:4")
	case attr&AttrDashedUnderline != 0:
		toks = append(toks, "4:5")
	case attr&AttrUnderline != 0:
		toks = append(toks, "4")
	}
	if attr&AttrBlink != 0 {
		toks = append(toks, "5")
	}
	if attr&AttrReverse != 0 {
		toks = append(toks, "7")
	}
	if attr&AttrHidden != 0 {
		toks = append(toks, "8")
	}
	if attr&AttrStrike != 0 {
		toks = append(toks, "9")
	}
	toks = append(toks, colourSGRTokens(c.currentCell.Fg, 38)...)
	toks = append(toks, colourSGRTokens(c.currentCell.Bg, 48)...)
	if c.currentCell.Underline.Set {
		toks = append(toks, colourSGRTokens(c.currentCell.Underline.Colour, 58)...)
	}
	return strings.Join(toks, ";")
}

// colourSGRTokens renders one extended-colour SGR token. Indexed and RGB
// forms use the colon-subparameter encoding (base:mode:[colourspace]:r:g:b
// or base:5:n) so a DECRQSS reply round-trips through the CSI m colon path;
// basic (0-15) foreground/background colours keep the plain 3x/4x/9x/10x
// final instead, since those have no extended base code.
func colourSGRTokens(col Colour, base int) []string {
	switch col.Kind {
	case ColourIndexed:
		if base == 38 || base == 48 {
			plainBase := 30
			if base == 48 {
				plainBase = 40
			}
			if col.Index < 8 {
				return []string{fmt.Sprintf("%d", plainBase+int(col.Index))}
			}
			if col.Index < 16 {
				alt := 90
				if base == 48 {
					alt = 100
				}
				return []string{fmt.Sprintf("%d", alt+int(col.Index)-8)}
			}
		}
		return []string{fmt.Sprintf("%d:5:%d", base, col.Index)}
	case ColourRGB:
		return []string{fmt.Sprintf("%d:2:0:%d:%d:%d", base, col.R, col.G, col.B)}
	default:
		return nil
	}
}
