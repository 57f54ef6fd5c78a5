package vtparser

// Level is the negotiated DEC terminal conformance level. Functions tagged
// "VT220+" in the dispatch tables are no-ops below LevelVT220.
type Level int

const (
	LevelVT100 Level = iota
	LevelVT101
	LevelVT102
	LevelVT125
	LevelVT220
	LevelVT241
)

func (l Level) String() string {
	switch l {
	case LevelVT100:
		return "VT100"
	case LevelVT101:
		return "VT101"
	case LevelVT102:
		return "VT102"
	case LevelVT125:
		return "VT125"
	case LevelVT220:
		return "VT220"
	case LevelVT241:
		return "VT241"
	default:
		return "unknown"
	}
}

// AtLeast reports whether l meets or exceeds min.
func (l Level) AtLeast(min Level) bool {
	return l >= min
}

// atLeastVT220 is the helper the dispatch tables call at every VT220+ gate.
func (c *Ctx) atLeastVT220() bool {
	return c.termLevel.AtLeast(LevelVT220)
}

// atLeastVT241 gates sixel payload handling.
func (c *Ctx) atLeastVT241() bool {
	return c.termLevel.AtLeast(LevelVT241)
}
