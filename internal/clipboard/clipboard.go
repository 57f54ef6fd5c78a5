// Package clipboard is a reference vtparser.PasteStore implementation: an
// single in-memory paste buffer, optionally backed by the host system
// clipboard via atotto/clipboard, for the OSC 52 "set-clipboard" path.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Store is a reference PasteStore. Set replaces the in-memory top buffer
// and, when useSystem is set, also writes (best-effort) to the system
// clipboard; system-clipboard
// failures (e.g. headless CI, no X server) are swallowed since OSC 52 has
// no error channel back to the terminal application.
type Store struct {
	top       []byte
	useSystem bool
}

// New returns a Store. useSystem controls whether Set also mirrors to the
// host system clipboard (Options.SetClipboard() == ClipboardExternal).
func New(useSystem bool) *Store {
	return &Store{useSystem: useSystem}
}

func (s *Store) Set(data []byte) {
	s.top = append(s.top[:0], data...)
	if s.useSystem {
		_ = clipboard.WriteAll(string(data))
	}
}

func (s *Store) Top() ([]byte, bool) {
	if s.useSystem {
		if text, err := clipboard.ReadAll(); err == nil {
			return []byte(text), true
		}
	}
	if s.top == nil {
		return nil, false
	}
	return s.top, true
}
