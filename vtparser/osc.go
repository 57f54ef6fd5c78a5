package vtparser

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"
)

// stepOSC runs osc_string: OSC accepts either BEL or ST as its terminator
// for historical xterm compatibility, so BEL is recognized here directly
// (ST arrives through the generic "ESC is anywhere" transition in feed.go,
// which exits osc_string and calls dispatchOSC itself).
func (c *Ctx) stepOSC(b byte) {
	if b == 0x07 {
		c.strTerm = termBEL
		c.setState(StateGround)
		return
	}
	c.appendString(b)
}

func (c *Ctx) stepAPC(b byte) {
	c.appendString(b)
}

func (c *Ctx) stepRename(b byte) {
	c.appendString(b)
}

// stepConsumeST discards a privacy-message payload; PM carries no function
// this core implements, so bytes are simply not retained.
func (c *Ctx) stepConsumeST(b byte) {
	_ = b
}

// dispatchOSC implements the Operating System Command family: Ps
// selects the command, Pt (the remainder after the first ';') carries its
// argument(s).
func (c *Ctx) dispatchOSC() {
	s := string(c.stringValue())
	ps, pt, ok := splitOnce(s, ';')
	if !ok {
		// No-argument OSCs (104/110/111/112 reset forms) arrive with no
		// semicolon at all: the whole payload is Ps and Pt is empty.
		ps, pt = s, ""
	}
	n, err := strconv.Atoi(ps)
	if err != nil {
		c.logUnknown("vtparser: non-numeric OSC selector %q", ps)
		return
	}
	switch n {
	case 0, 2:
		c.setTitle(pt)
	case 1:
		// Icon name: accepted, nothing to do with it.
	case 4:
		c.oscPalette(pt)
	case 7:
		if c.col.Screen != nil && utf8.ValidString(pt) {
			c.col.Screen.SetPath(pt)
		}
	case 8:
		c.oscHyperlink(pt)
	case 10:
		c.oscNamedColour(pt, oscFg)
	case 11:
		c.oscNamedColour(pt, oscBg)
	case 12:
		c.oscNamedColour(pt, oscCursor)
	case 52:
		c.oscClipboard(pt)
	case 104:
		c.oscPaletteReset(pt)
	case 110:
		// Reset forms take no argument at all.
		if pt == "" && c.col.Palette != nil {
			c.col.Palette.ResetForeground()
			c.forceRedraw()
		}
	case 111:
		if pt == "" && c.col.Palette != nil {
			c.col.Palette.ResetBackground()
			c.forceRedraw()
		}
	case 112:
		if pt == "" && c.col.Palette != nil {
			c.col.Palette.ResetCursorColour()
		}
	case 133:
		if len(pt) > 0 && c.col.Screen != nil {
			c.col.Screen.ShellIntegrationMark(pt[0])
		}
	default:
		c.logUnknown("vtparser: unhandled OSC selector %d", n)
	}
}

func (c *Ctx) setTitle(title string) {
	if c.col.Options != nil && !c.col.Options.AllowSetTitle() {
		return
	}
	if c.col.Screen != nil {
		c.col.Screen.SetTitle(title)
	}
	if c.col.Notifier != nil {
		c.col.Notifier.NotifyTitleChanged(title)
	}
}

// oscPalette implements OSC 4 Ps;Spec(;Ps;Spec...): set or query indexed
// palette entries. A Spec of "?" queries the current value instead of
// setting it.
func (c *Ctx) oscPalette(pt string) {
	if c.col.Palette == nil {
		return
	}
	fields := strings.Split(pt, ";")
	for i := 0; i+1 < len(fields); i += 2 {
		idx, err := strconv.Atoi(fields[i])
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		spec := fields[i+1]
		if spec == "?" {
			r, g, b, ok := c.col.Palette.Get(idx)
			if ok {
				c.reply(c.oscColourReply(4, idx, r, g, b))
			}
			continue
		}
		if r, g, b, ok := parseColourSpec(spec); ok {
			c.col.Palette.Set(idx, r, g, b)
		}
	}
}

func (c *Ctx) oscPaletteReset(pt string) {
	if c.col.Palette == nil {
		return
	}
	if pt == "" {
		c.col.Palette.ResetAll()
		return
	}
	for _, f := range strings.Split(pt, ";") {
		idx, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		c.col.Palette.Reset(idx)
	}
}

type oscColourTarget int

const (
	oscFg oscColourTarget = iota
	oscBg
	oscCursor
)

// oscNamedColour implements OSC 10/11/12: set or query the foreground,
// background, or cursor colour.
func (c *Ctx) oscNamedColour(pt string, target oscColourTarget) {
	if c.col.Palette == nil {
		return
	}
	if pt == "?" {
		var r, g, b uint8
		switch target {
		case oscFg:
			r, g, b = c.col.Palette.Foreground()
		case oscBg:
			r, g, b = c.col.Palette.Background()
		case oscCursor:
			var ok bool
			r, g, b, ok = c.col.Palette.CursorColour()
			if !ok {
				return
			}
		}
		c.reply(c.oscColourReply(10+int(target), -1, r, g, b))
		return
	}
	r, g, b, ok := parseColourSpec(pt)
	if !ok {
		return
	}
	switch target {
	case oscFg:
		c.col.Palette.SetForeground(r, g, b)
		c.forceRedraw()
	case oscBg:
		c.col.Palette.SetBackground(r, g, b)
		c.forceRedraw()
	case oscCursor:
		c.col.Palette.SetCursorColour(r, g, b)
	}
}

// forceRedraw asks the screen writer to repaint after a default-colour
// change, which invalidates every already-drawn cell.
func (c *Ctx) forceRedraw() {
	if c.col.Screen != nil {
		c.col.Screen.FullRedraw()
	}
}

// oscTerminator renders the string terminator matching how the OSC request
// that triggered this reply itself arrived: BEL if the host sent
// BEL, ST otherwise.
func (c *Ctx) oscTerminator() string {
	if c.strTerm == termBEL {
		return "\x07"
	}
	return "\x1b\\"
}

func (c *Ctx) oscColourReply(selector, idx int, r, g, b uint8) string {
	spec := rgbSpec(r, g, b)
	if idx >= 0 {
		return "\x1b]" + strconv.Itoa(selector) + ";" + strconv.Itoa(idx) + ";" + spec + c.oscTerminator()
	}
	return "\x1b]" + strconv.Itoa(selector) + ";" + spec + c.oscTerminator()
}

func rgbSpec(r, g, b uint8) string {
	hex := func(v uint8) string {
		const digits = "0123456789abcdef"
		return string([]byte{digits[v>>4], digits[v&0xf]})
	}
	return "rgb:" + hex(r) + hex(r) + "/" + hex(g) + hex(g) + "/" + hex(b) + hex(b)
}

// parseColourSpec parses the "rgb:rr/gg/bb" (and plain "#rrggbb") forms used
// by OSC 4/10/11/12.
func parseColourSpec(spec string) (r, g, b uint8, ok bool) {
	spec = strings.TrimPrefix(spec, "rgb:")
	spec = strings.TrimPrefix(spec, "#")
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		if len(spec) == 6 {
			parts = []string{spec[0:2], spec[2:4], spec[4:6]}
		} else {
			return 0, 0, 0, false
		}
	}
	vals := make([]uint8, 3)
	for i, p := range parts {
		if len(p) > 2 {
			p = p[:2]
		}
		n, err := strconv.ParseUint(p, 16, 16)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = uint8(n)
	}
	return vals[0], vals[1], vals[2], true
}

// oscHyperlink implements OSC 8: ";"-separated params (an optional "id="
// amongst others, ':'-separated) followed by the URI. An empty URI closes
// the currently open link.
func (c *Ctx) oscHyperlink(pt string) {
	if c.col.Links == nil {
		return
	}
	paramStr, uri, _ := splitOnce(pt, ';')
	if uri == "" {
		c.currentCell.Link = 0
		c.commitCell()
		return
	}
	params := map[string]string{}
	if paramStr != "" {
		for _, kv := range strings.Split(paramStr, ":") {
			k, v, found := splitOnce(kv, '=')
			if found {
				params[k] = v
			}
		}
	}
	c.currentCell.Link = c.col.Links.Put(uri, params)
	c.commitCell()
}

// oscClipboard implements OSC 52: Pc (target buffer letters, ignored beyond
// selection) ; Pd (base64 payload, or "?" to query).
func (c *Ctx) oscClipboard(pt string) {
	if c.col.Options != nil && c.col.Options.SetClipboard() == ClipboardOff {
		return
	}
	_, pd, ok := splitOnce(pt, ';')
	if !ok {
		return
	}
	if pd == "?" {
		if c.col.Options == nil || c.col.Options.SetClipboard() != ClipboardExternal {
			return
		}
		if c.col.Paste == nil {
			return
		}
		data, ok := c.col.Paste.Top()
		if !ok {
			return
		}
		c.reply("\x1b]52;c;" + base64.StdEncoding.EncodeToString(data) + c.oscTerminator())
		return
	}
	data, err := base64.StdEncoding.DecodeString(pd)
	if err != nil {
		return
	}
	if c.col.Paste != nil {
		c.col.Paste.Set(data)
	}
}

func splitOnce(s string, sep byte) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
