package vtparser

import "bytes"

// stepDCSHeader runs dcs_enter/dcs_parameter/dcs_intermediate/dcs_ignore:
// CSI-like parameter and intermediate collection until a final byte in
// 0x40..=0x7E selects the payload handler. A "$ q" header is DECRQSS, whose
// payload is itself a CSI-like settings query, so it hands off to the
// dedicated decrqss_enter mini-parser states instead of raw collection.
func (c *Ctx) stepDCSHeader(b byte) {
	switch {
	case b >= '0' && b <= '9', b == ';', b == ':':
		if c.state == StateDCSIntermediate {
			c.setState(StateDCSIgnore)
			return
		}
		c.collectParamByte(b)
		c.setState(StateDCSParameter)
	case b >= 0x3C && b <= 0x3F:
		if c.state != StateDCSEnter {
			c.setState(StateDCSIgnore)
			return
		}
		c.collectIntermByte(b)
	case b >= 0x20 && b <= 0x2F:
		c.collectIntermByte(b)
		c.setState(StateDCSIntermediate)
	case b >= 0x40 && b <= 0x7E:
		if c.state != StateDCSIgnore && c.intermediates() == "$" && b == 'q' {
			c.setState(StateDECRQSSEnter)
			return
		}
		c.enterDCSPayload(b, c.state == StateDCSIgnore)
	default:
		// C0 controls inside DCS header bytes carry no meaning; drop them.
	}
}

// enterDCSPayload records the header (final, intermediates, parameters),
// classifies the DCS kind, and transitions into raw payload collection.
func (c *Ctx) enterDCSPayload(final byte, ignored bool) {
	c.splitParams()
	c.dcsFinal = final
	c.dcsInterm = c.intermediates()
	c.dcsParamList = append(c.dcsParamList[:0], c.paramList...)

	switch {
	case ignored:
		c.dcsKind = dcsKindGeneric
		c.discard = true
	case c.dcsInterm == "$" && final == 't':
		c.dcsKind = dcsKindRSPS
	case c.dcsInterm == "$" && final == 'p':
		c.dcsKind = dcsKindRSTS
	case c.dcsInterm == "" && final == 'q':
		c.dcsKind = dcsKindSixel
	case c.dcsInterm == "" && final == 't':
		// Candidate tmux-style passthrough: the leading 't' of "tmux;" is
		// consumed as the DCS final byte itself, so classification waits for
		// the payload.
		c.dcsKind = dcsKindGeneric
	default:
		c.dcsKind = dcsKindGeneric
		c.logUnknown("vtparser: unknown DCS header intermediates %q final %q", c.dcsInterm, final)
	}
	c.strBuf = c.strBuf[:0]
	c.setState(StateDCSHandler)
}

// stepDCSHandler collects the DCS string payload, watching for ESC (which
// might introduce the ST terminator).
func (c *Ctx) stepDCSHandler(b byte) {
	if b == 0x1B {
		c.setState(StateDCSEscape)
		return
	}
	c.appendString(b)
}

// stepDCSEscape implements the one-byte lookahead after an ESC seen inside a
// DCS payload: '\\' completes ST and dispatches; anything else means the ESC
// was data, not a terminator, so it (and the lookahead byte, reprocessed) go
// back into the payload.
func (c *Ctx) stepDCSEscape(b byte) {
	if b == '\\' {
		c.dispatchDCSPayload()
		c.setState(StateGround)
		return
	}
	c.appendString(0x1B)
	c.setState(StateDCSHandler)
	c.stepDCSHandler(b)
}

// dispatchDCSPayload routes the completed DCS string to its handler by kind.
func (c *Ctx) dispatchDCSPayload() {
	if c.discard {
		return
	}
	switch c.dcsKind {
	case dcsKindRSPS:
		c.handleDECRSPS(c.stringValue())
	case dcsKindRSTS:
		c.handleDECRSTS(c.stringValue())
	case dcsKindSixel:
		c.handleSixel(c.stringValue())
	default:
		// tmux-style passthrough is identified by payload shape, not
		// header shape: "ESC P tmux; ... ST" has no params/intermediates, so
		// the leading 't' of "tmux;" is consumed as the DCS final byte
		// itself, leaving "mux;..." as the collected payload.
		if c.dcsInterm == "" && c.dcsFinal == 't' {
			full := append([]byte{c.dcsFinal}, c.stringValue()...)
			if bytes.HasPrefix(full, []byte("tmux;")) {
				c.handlePassthrough(bytes.TrimPrefix(full, []byte("tmux;")))
				return
			}
		}
		// Anything else unrecognized is logged and dropped; raw forwarding
		// only ever happens through handlePassthrough's option gate.
		c.logUnknown("vtparser: dropped unknown DCS payload (intermediates %q final %q, %d bytes)",
			c.dcsInterm, c.dcsFinal, len(c.stringValue()))
	}
}

// handleSixel offers a sixel DCS payload to the SixelDecoder; when no
// decoder is set or it reports failure, the raw payload goes to
// ScreenWriter.SixelImage instead. Image decoding itself stays out of the
// core.
func (c *Ctx) handleSixel(payload []byte) {
	if !c.atLeastVT241() {
		return
	}
	firstParam := 0
	if len(c.dcsParamList) > 0 && c.dcsParamList[0].Kind == ParamNumber {
		firstParam = int(c.dcsParamList[0].Num)
	}
	if c.col.Sixel != nil {
		if _, ok := c.col.Sixel.Decode(payload, firstParam); ok {
			return
		}
	}
	if c.col.Screen != nil {
		c.col.Screen.SixelImage(payload, firstParam)
	}
}

// handlePassthrough implements tmux-style DCS passthrough (ESC P tmux; ...
// ESC \\), gated by Options.AllowPassthrough: "off" drops
// it, "on"/"on-allow-wrap" forward it verbatim, and "on-allow-wrap" further
// tells the screen writer the forwarded content may wrap the cursor to the
// next line instead of clipping at the margin.
func (c *Ctx) handlePassthrough(payload []byte) {
	mode := PassthroughOff
	if c.col.Options != nil {
		mode = c.col.Options.AllowPassthrough()
	}
	if mode == PassthroughOff {
		return
	}
	if c.col.Screen != nil {
		c.col.Screen.RawString(payload, mode == PassthroughOnAllowWrap)
	}
}
