// Package options is a reference vtparser.Options implementation: the
// named terminal options loaded from a small JSON settings file over
// built-in defaults.
package options

import (
	"encoding/json"
	"os"

	"github.com/nexpane/vtcore/vtparser"
)

// Store is a reference Options implementation.
type Store struct {
	defaultLevel     vtparser.Level
	extendedKeys     vtparser.ExtendedKeysMode
	allowPassthrough vtparser.PassthroughMode
	allowSetTitle    bool
	allowRename      bool
	automaticRename  bool
	cursorStyle      int
	setClipboard     vtparser.ClipboardMode
}

// Default returns the conservative VT100-class defaults: no extended keys,
// no passthrough, title/rename allowed, blinking block cursor, clipboard
// writes kept internal only.
func Default() *Store {
	return &Store{
		defaultLevel:     vtparser.LevelVT100,
		extendedKeys:     vtparser.ExtendedKeysOff,
		allowPassthrough: vtparser.PassthroughOff,
		allowSetTitle:    true,
		allowRename:      true,
		automaticRename:  false,
		cursorStyle:      0,
		setClipboard:     vtparser.ClipboardInternal,
	}
}

func (s *Store) DefaultEmulationLevel() vtparser.Level     { return s.defaultLevel }
func (s *Store) ExtendedKeys() vtparser.ExtendedKeysMode   { return s.extendedKeys }
func (s *Store) AllowPassthrough() vtparser.PassthroughMode { return s.allowPassthrough }
func (s *Store) AllowSetTitle() bool                       { return s.allowSetTitle }
func (s *Store) AllowRename() bool                         { return s.allowRename }
func (s *Store) AutomaticRename() bool                     { return s.automaticRename }
func (s *Store) CursorStyle() int                          { return s.cursorStyle }
func (s *Store) SetClipboard() vtparser.ClipboardMode      { return s.setClipboard }

// rawOptions is the on-disk JSON shape, every field optional so a partial
// file only overrides what it names.
type rawOptions struct {
	DefaultEmulationLevel *string `json:"default_emulation_level"`
	ExtendedKeys          *string `json:"extended_keys"`
	AllowPassthrough      *string `json:"allow_passthrough"`
	AllowSetTitle         *bool   `json:"allow_set_title"`
	AllowRename           *bool   `json:"allow_rename"`
	AutomaticRename       *bool   `json:"automatic_rename"`
	CursorStyle           *int    `json:"cursor_style"`
	SetClipboard          *string `json:"set_clipboard"`
}

// Load reads path and applies any fields present over the defaults. A
// missing or unparseable file yields Default() unchanged.
func Load(path string) *Store {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var raw rawOptions
	if err := json.Unmarshal(data, &raw); err != nil {
		return s
	}
	if raw.DefaultEmulationLevel != nil {
		s.defaultLevel = parseLevel(*raw.DefaultEmulationLevel)
	}
	if raw.ExtendedKeys != nil {
		s.extendedKeys = parseExtendedKeys(*raw.ExtendedKeys)
	}
	if raw.AllowPassthrough != nil {
		s.allowPassthrough = parsePassthrough(*raw.AllowPassthrough)
	}
	if raw.AllowSetTitle != nil {
		s.allowSetTitle = *raw.AllowSetTitle
	}
	if raw.AllowRename != nil {
		s.allowRename = *raw.AllowRename
	}
	if raw.AutomaticRename != nil {
		s.automaticRename = *raw.AutomaticRename
	}
	if raw.CursorStyle != nil {
		s.cursorStyle = *raw.CursorStyle
	}
	if raw.SetClipboard != nil {
		s.setClipboard = parseClipboard(*raw.SetClipboard)
	}
	return s
}

func parseLevel(s string) vtparser.Level {
	switch s {
	case "vt101":
		return vtparser.LevelVT101
	case "vt102":
		return vtparser.LevelVT102
	case "vt125":
		return vtparser.LevelVT125
	case "vt220":
		return vtparser.LevelVT220
	case "vt241":
		return vtparser.LevelVT241
	default:
		return vtparser.LevelVT100
	}
}

func parseExtendedKeys(s string) vtparser.ExtendedKeysMode {
	switch s {
	case "on":
		return vtparser.ExtendedKeysOn
	case "always":
		return vtparser.ExtendedKeysAlways
	default:
		return vtparser.ExtendedKeysOff
	}
}

func parsePassthrough(s string) vtparser.PassthroughMode {
	switch s {
	case "on":
		return vtparser.PassthroughOn
	case "on-allow-wrap":
		return vtparser.PassthroughOnAllowWrap
	default:
		return vtparser.PassthroughOff
	}
}

func parseClipboard(s string) vtparser.ClipboardMode {
	switch s {
	case "external":
		return vtparser.ClipboardExternal
	case "off":
		return vtparser.ClipboardOff
	default:
		return vtparser.ClipboardInternal
	}
}
