package vtparser_test

import (
	"testing"

	. "github.com/nexpane/vtcore/vtparser"
)

// FuzzFeed feeds arbitrary byte streams through Ctx.Feed: malformed input
// must degrade to harmless discards and U+FFFD, never a panic, and the
// since-ground log must be empty exactly when the parser is back in ground.
func FuzzFeed(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("\x1b[31mred\x1b[0m"))
	f.Add([]byte("\x1b[?1049h\x1b[H\x1b[2J"))
	f.Add([]byte("\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\"))
	f.Add([]byte("\x1bP$qm\x1b\\"))
	f.Add([]byte("\x1bPtmux;\x1b\x1b[31m\x1b\\"))
	f.Add([]byte("\x1b[38:2::10:20:30m\xff\xfe"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c, _, _ := newTestCtx(80)
		c.Feed(data)
		if (c.State() == StateGround) != (len(c.SinceGround()) == 0) {
			t.Fatalf("since-ground invariant broken: state=%s, log=%d bytes",
				c.State(), len(c.SinceGround()))
		}
	})
}

// FuzzFeedIncremental feeds the same data one byte at a time, to catch state
// bugs that only surface when a sequence is split across separate Feed calls
// (the pty read-buffer boundary this core has to tolerate).
func FuzzFeedIncremental(f *testing.F) {
	f.Add([]byte("\x1b[1;38:2:0:1:2:3m\x1bP$qm\x1b\\"))
	f.Fuzz(func(t *testing.T, data []byte) {
		c, _, _ := newTestCtx(80)
		for _, b := range data {
			c.Feed([]byte{b})
			if (c.State() == StateGround) != (len(c.SinceGround()) == 0) {
				t.Fatalf("since-ground invariant broken mid-stream")
			}
		}
	})
}
