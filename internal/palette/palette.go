// Package palette is a reference vtparser.Palette implementation: 256
// indexed slots plus the foreground/background/cursor defaults, backed by
// go-colorful so OSC 4/10/11/12 colour specs can be round-tripped through a
// real colour space instead of raw component bytes.
package palette

import "github.com/lucasb-eyer/go-colorful"

// defaultANSI16 are the standard ANSI colours used to seed indices 0-15.
var defaultANSI16 = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

type slot struct {
	r, g, b uint8
	set     bool
}

// Palette is a reference Palette implementation.
type Palette struct {
	slots [256]slot

	fg, bg      [3]uint8
	cursor      [3]uint8
	cursorIsSet bool
}

// New returns a palette seeded with the 16 ANSI colours, the 216-colour
// cube, and the 24-step greyscale ramp (the standard xterm-256color table),
// with default white-on-black fg/bg.
func New() *Palette {
	p := &Palette{fg: [3]uint8{229, 229, 229}, bg: [3]uint8{0, 0, 0}}
	p.ResetAll()
	return p
}

func (p *Palette) Get(index int) (r, g, b uint8, ok bool) {
	if index < 0 || index > 255 || !p.slots[index].set {
		return 0, 0, 0, false
	}
	s := p.slots[index]
	return s.r, s.g, s.b, true
}

func (p *Palette) Set(index int, r, g, b uint8) {
	if index < 0 || index > 255 {
		return
	}
	// Round-trip through go-colorful's MakeColor/RGB255 conversion: this mirrors
	// how a real implementation would normalize DEC HLS colour specs into
	// sRGB before storing, even though callers already hand us sRGB bytes.
	col, _ := colorful.MakeColor(col8(r, g, b))
	nr, ng, nb := col.RGB255()
	p.slots[index] = slot{r: nr, g: ng, b: nb, set: true}
}

func (p *Palette) Reset(index int) {
	if index < 0 || index > 255 {
		return
	}
	p.slots[index] = defaultSlot(index)
}

func (p *Palette) ResetAll() {
	for i := 0; i < 256; i++ {
		p.slots[i] = defaultSlot(i)
	}
}

func defaultSlot(i int) slot {
	if i < 16 {
		c := defaultANSI16[i]
		return slot{r: c[0], g: c[1], b: c[2], set: true}
	}
	if i < 232 {
		n := i - 16
		r := cube(n / 36)
		g := cube((n / 6) % 6)
		b := cube(n % 6)
		return slot{r: r, g: g, b: b, set: true}
	}
	if i < 256 {
		v := uint8(8 + (i-232)*10)
		return slot{r: v, g: v, b: v, set: true}
	}
	return slot{}
}

func cube(n int) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(55 + n*40)
}

func (p *Palette) Foreground() (r, g, b uint8) { return p.fg[0], p.fg[1], p.fg[2] }
func (p *Palette) SetForeground(r, g, b uint8) { p.fg = [3]uint8{r, g, b} }
func (p *Palette) ResetForeground()            { p.fg = [3]uint8{229, 229, 229} }

func (p *Palette) Background() (r, g, b uint8) { return p.bg[0], p.bg[1], p.bg[2] }
func (p *Palette) SetBackground(r, g, b uint8) { p.bg = [3]uint8{r, g, b} }
func (p *Palette) ResetBackground()            { p.bg = [3]uint8{0, 0, 0} }

func (p *Palette) CursorColour() (r, g, b uint8, ok bool) {
	if !p.cursorIsSet {
		return 0, 0, 0, false
	}
	return p.cursor[0], p.cursor[1], p.cursor[2], true
}

func (p *Palette) SetCursorColour(r, g, b uint8) {
	p.cursor = [3]uint8{r, g, b}
	p.cursorIsSet = true
}

func (p *Palette) ResetCursorColour() { p.cursorIsSet = false }

// col8 is a tiny RGBA-less adapter since colorful.MakeColor expects
// something satisfying color.Color; a plain byte triple round-trips through
// its own Color type without needing the image/color package directly.
type col8struct struct {
	r, g, b uint8
}

func (c col8struct) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, 0xffff
}

func col8(r, g, b uint8) col8struct { return col8struct{r, g, b} }
