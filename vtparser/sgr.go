package vtparser

// dispatchSGR implements CSI ... m: a left-to-right scan over the
// parameter list, consuming extra sub-parameters for the 38/48/58 extended
// colour forms (both ';'-separated and ':'-subparameter legacy/ITU forms).
// An empty parameter list means a single implicit 0.
func (c *Ctx) dispatchSGR() {
	if len(c.paramList) == 0 {
		c.resetAttrs()
		c.commitCell()
		return
	}
	i := 0
	for i < len(c.paramList) {
		p := c.paramList[i]
		if p.Kind == ParamString {
			// A whole-field colon form: the underline-style selector
			// "4:0".."4:5", or an extended colour where base, mode and
			// operands share one field ("38:2::r:g:b", "48:5:n", ...).
			if sub := SubParams(p.Str); len(sub) >= 2 {
				switch sub[0] {
				case 4:
					c.applyUnderlineStyle(sub[1])
				case 38:
					if col, ok := colourFromColon(c.paramList, i); ok {
						c.currentCell.Fg = col
					}
				case 48:
					if col, ok := colourFromColon(c.paramList, i); ok {
						c.currentCell.Bg = col
					}
				case 58:
					if col, ok := colourFromColon(c.paramList, i); ok {
						c.currentCell.Underline = UnderlineColour{Set: true, Colour: col}
					}
				}
			}
			i++
			continue
		}
		n := int(p.Num) // ParamMissing.Num is the zero value, matching "blank means 0"
		switch {
		case n == 0:
			c.resetAttrs()
		case n == 1:
			c.currentCell.Attr |= AttrBold
		case n == 2:
			c.currentCell.Attr |= AttrDim
		case n == 3:
			c.currentCell.Attr |= AttrItalic
		case n == 4:
			c.currentCell.Attr |= AttrUnderline
		case n == 5, n == 6:
			c.currentCell.Attr |= AttrBlink
		case n == 7:
			c.currentCell.Attr |= AttrReverse
		case n == 8:
			c.currentCell.Attr |= AttrHidden
		case n == 9:
			c.currentCell.Attr |= AttrStrike
		case n == 21:
			c.currentCell.Attr |= AttrDoubleUnderline
		case n == 22:
			c.currentCell.Attr &^= AttrBold | AttrDim
		case n == 23:
			c.currentCell.Attr &^= AttrItalic
		case n == 24:
			c.currentCell.Attr &^= AttrUnderline | AttrDoubleUnderline | AttrCurlyUnderline | AttrDottedUnderline | AttrDashedUnderline
			c.currentCell.Underline = UnderlineColour{}
		case n == 25:
			c.currentCell.Attr &^= AttrBlink
		case n == 27:
			c.currentCell.Attr &^= AttrReverse
		case n == 28:
			c.currentCell.Attr &^= AttrHidden
		case n == 29:
			c.currentCell.Attr &^= AttrStrike
		case n >= 30 && n <= 37:
			c.currentCell.Fg = Colour{Kind: ColourIndexed, Index: uint8(n - 30)}
		case n == 38:
			i += c.applyExtendedColour(i, true)
		case n == 39:
			c.currentCell.Fg = Colour{}
		case n >= 40 && n <= 47:
			c.currentCell.Bg = Colour{Kind: ColourIndexed, Index: uint8(n - 40)}
		case n == 48:
			i += c.applyExtendedColour(i, false)
		case n == 49:
			c.currentCell.Bg = Colour{}
		case n == 58:
			i += c.applyExtendedUnderlineColour(i)
		case n == 59:
			c.currentCell.Underline = UnderlineColour{}
		case n >= 90 && n <= 97:
			c.currentCell.Fg = Colour{Kind: ColourIndexed, Index: uint8(n - 90 + 8)}
		case n >= 100 && n <= 107:
			c.currentCell.Bg = Colour{Kind: ColourIndexed, Index: uint8(n - 100 + 8)}
		default:
			c.logUnknown("vtparser: unhandled SGR parameter %d", n)
		}
		i++
	}
	c.commitCell()
}

// applyUnderlineStyle implements the colon-subparameter underline selector
// "4:n": none/single/double/curly/dotted/dashed. Any value outside
// 0..=5 is ignored rather than logged, matching how an unrecognized SGR
// parameter value is otherwise silently absorbed.
func (c *Ctx) applyUnderlineStyle(style int) {
	const underlineMask = AttrUnderline | AttrDoubleUnderline | AttrCurlyUnderline | AttrDottedUnderline | AttrDashedUnderline
	c.currentCell.Attr &^= underlineMask
	switch style {
	case 0:
	case 1:
		c.currentCell.Attr |= AttrUnderline
	case 2:
		c.currentCell.Attr |= AttrDoubleUnderline
	case 3:
		c.currentCell.Attr |= AttrCurlyUnderline
	case 4:
		c.currentCell.Attr |= AttrDottedUnderline
	case 5:
		c.currentCell.Attr |= AttrDashedUnderline
	}
}

func (c *Ctx) resetAttrs() {
	link := c.currentCell.Link
	c.currentCell = Cell{Link: link}
}

func (c *Ctx) commitCell() {
	if c.col.Screen != nil {
		c.col.Screen.SetCurrentCell(c.currentCell)
	}
}

// applyExtendedColour implements SGR 38/48 in both forms: a colon
// sub-parameter field (38:2::r:g:b, 38:5:idx) occupying a single paramList
// entry, or a legacy ';'-separated run (38;2;r;g;b, 38;5;idx) spanning
// several entries. Returns the number of EXTRA paramList entries consumed
// beyond the "38"/"48" entry itself (0 for the colon form).
func (c *Ctx) applyExtendedColour(i int, fg bool) int {
	if col, ok := colourFromColon(c.paramList, i); ok {
		if fg {
			c.currentCell.Fg = col
		} else {
			c.currentCell.Bg = col
		}
		return 0
	}
	col, consumed := colourFromSemicolon(c.paramList, i+1)
	if consumed == 0 {
		return 0
	}
	if fg {
		c.currentCell.Fg = col
	} else {
		c.currentCell.Bg = col
	}
	return consumed
}

// applyExtendedUnderlineColour implements SGR 58 (underline colour), same
// two forms as 38/48.
func (c *Ctx) applyExtendedUnderlineColour(i int) int {
	if col, ok := colourFromColon(c.paramList, i); ok {
		c.currentCell.Underline = UnderlineColour{Set: true, Colour: col}
		return 0
	}
	col, consumed := colourFromSemicolon(c.paramList, i+1)
	if consumed == 0 {
		return 0
	}
	c.currentCell.Underline = UnderlineColour{Set: true, Colour: col}
	return consumed
}

// colourFromColon handles the case where paramList[i] itself is a single
// colon-subparameter field, e.g. "38:2:0:1:2:3" or "38:5:17": sub[0] is the
// base code (38/48/58), sub[1] the mode, and the operands follow.
func colourFromColon(params []Param, i int) (Colour, bool) {
	if i >= len(params) || params[i].Kind != ParamString {
		return Colour{}, false
	}
	sub := SubParams(params[i].Str)
	if len(sub) < 3 {
		return Colour{}, false
	}
	switch sub[1] {
	case 5:
		return Colour{Kind: ColourIndexed, Index: uint8(sub[2])}, true
	case 2:
		// ITU form carries an optional leading colour-space id, so RGB may
		// sit at indices 2..4 or 3..5.
		vals := sub[2:]
		if len(vals) >= 4 {
			vals = vals[1:]
		}
		if len(vals) < 3 {
			return Colour{}, false
		}
		return Colour{Kind: ColourRGB, R: uint8(vals[0]), G: uint8(vals[1]), B: uint8(vals[2])}, true
	}
	return Colour{}, false
}

// colourFromSemicolon handles the legacy ';'-separated form where 38/48's
// mode and operands are each their own paramList entry starting at i.
// Returns the colour and how many entries (including the mode entry) were
// consumed.
func colourFromSemicolon(params []Param, i int) (Colour, int) {
	if i >= len(params) || params[i].Kind == ParamString {
		return Colour{}, 0
	}
	mode := int(params[i].Num)
	switch mode {
	case 5:
		if i+1 >= len(params) || params[i+1].Kind == ParamString {
			return Colour{}, 1
		}
		return Colour{Kind: ColourIndexed, Index: uint8(params[i+1].Num)}, 2
	case 2:
		if i+3 >= len(params) {
			return Colour{}, 1
		}
		for _, idx := range []int{i + 1, i + 2, i + 3} {
			if params[idx].Kind == ParamString {
				return Colour{}, 1
			}
		}
		return Colour{Kind: ColourRGB, R: uint8(params[i+1].Num), G: uint8(params[i+2].Num), B: uint8(params[i+3].Num)}, 4
	}
	return Colour{}, 1
}
