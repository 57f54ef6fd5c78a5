package vtparser

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// utf8State tracks an in-progress multi-byte code point. Reassembly is
// active only in ground state; any non-print action stops it,
// emitting U+FFFD for a truncated code point.
type utf8State struct {
	buf  [4]byte
	need int // total bytes expected, 0 when idle
	have int // bytes collected so far
}

// feedUTF8 processes one ground-state byte in 0x80..=0xFF.
func (c *Ctx) feedUTF8(b byte) {
	u := &c.utf8

	if u.need == 0 {
		// Starting byte of a multi-byte sequence.
		switch {
		case b&0xE0 == 0xC0:
			u.need = 2
		case b&0xF0 == 0xE0:
			u.need = 3
		case b&0xF8 == 0xF0:
			u.need = 4
		default:
			// Invalid leading byte (stray continuation or 0xF8..0xFF).
			c.emitReplacement()
			return
		}
		u.have = 0
		u.buf[u.have] = b
		u.have++
		return
	}

	// Continuation byte expected.
	if b&0xC0 != 0x80 {
		// Invalid continuation: reset and reprocess this byte as a fresh start.
		c.emitReplacement()
		u.need, u.have = 0, 0
		c.feedUTF8(b)
		return
	}
	u.buf[u.have] = b
	u.have++
	if u.have < u.need {
		return
	}

	r, size := utf8.DecodeRune(u.buf[:u.have])
	u.need, u.have = 0, 0
	if r == utf8.RuneError && size <= 1 {
		c.emitReplacement()
		return
	}
	c.emitRune(r, runewidth.RuneWidth(r))
}

// stopUTF8 implements "stop UTF-8": called by every non-print action.
// An in-progress code point is abandoned and U+FFFD is emitted in its place.
func (c *Ctx) stopUTF8() {
	if c.utf8.need != 0 {
		c.utf8.need, c.utf8.have = 0, 0
		c.emitReplacement()
	}
}

func (c *Ctx) emitReplacement() {
	c.emitRune('�', 1)
}

// emitRune sends one decoded rune to the screen writer and maintains the
// "last printed grapheme" CSI REP needs. A zero-width rune that
// extends the previous cluster (a combining mark or ZWJ) is folded into
// lastGrapheme rather than opening a new cell, so REP sees one grapheme,
// not a base plus dangling marks.
func (c *Ctx) emitRune(r rune, width int) {
	if width == 0 && c.last && c.lastGrapheme != "" &&
		uniseg.GraphemeClusterCount(c.lastGrapheme+string(r)) == 1 {
		c.lastGrapheme += string(r)
		c.lastWidth = runewidth.StringWidth(c.lastGrapheme)
		return
	}
	if c.col.Screen != nil {
		c.col.Screen.CollectAdd(r, width)
	}
	c.lastGrapheme = string(r)
	c.lastWidth = width
	if c.lastWidth <= 0 {
		c.lastWidth = 1
	}
	c.last = true
}

// mapGL translates a printable byte through the active GL charset: the DEC
// special graphics (ACS) set when designated and shifted in, ASCII otherwise.
func (c *Ctx) mapGL(b byte) rune {
	acs := c.g0IsACS
	if c.set == 1 {
		acs = c.g1IsACS
	}
	if !acs {
		return rune(b)
	}
	if r, ok := acsTable[b]; ok {
		return r
	}
	return rune(b)
}

// acsTable is the DEC special graphics to Unicode mapping for the glyphs a
// line-drawing application actually emits.
var acsTable = map[byte]rune{
	'`': '◆', // diamond
	'a': '▒', // checkerboard
	'f': '°', // degree
	'g': '±', // plus/minus
	'j': '┘', // lower right corner
	'k': '┐', // upper right corner
	'l': '┌', // upper left corner
	'm': '└', // lower left corner
	'n': '┼', // crossing lines
	'o': '⎺', // scan line 1
	'p': '⎻', // scan line 3
	'q': '─', // horizontal line
	'r': '⎼', // scan line 7
	's': '⎽', // scan line 9
	't': '├', // left tee
	'u': '┤', // right tee
	'v': '┴', // bottom tee
	'w': '┬', // top tee
	'x': '│', // vertical line
	'y': '≤', // less than or equal
	'z': '≥', // greater than or equal
	'{': 'π', // pi
	'|': '≠', // not equal
	'}': '£', // pound sign
	'~': '·', // bullet
}
