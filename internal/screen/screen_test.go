package screen

import (
	"testing"

	"github.com/nexpane/vtcore/vtparser"
)

func TestCollectAddAdvancesCursor(t *testing.T) {
	w := New(10, 5)
	w.CollectAdd('a', 1)
	if w.CursorX != 1 || w.CursorY != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", w.CursorX, w.CursorY)
	}
	if w.Cell(0, 0).Attr != 0 {
		t.Fatalf("unexpected attr on fresh cell")
	}
}

func TestCollectAddWrapsAtMargin(t *testing.T) {
	w := New(3, 5)
	w.CollectAdd('a', 1)
	w.CollectAdd('b', 1)
	w.CollectAdd('c', 1)
	if w.CursorX != 3 || w.CursorY != 0 {
		t.Fatalf("cursor before wrap-triggering write = (%d,%d)", w.CursorX, w.CursorY)
	}
	w.CollectAdd('d', 1)
	if w.CursorX != 1 || w.CursorY != 1 {
		t.Fatalf("cursor after wrap = (%d,%d), want (1,1)", w.CursorX, w.CursorY)
	}
}

func TestScrollUpArchivesToScrollback(t *testing.T) {
	w := New(5, 3)
	w.SetCurrentCell(vtparser.Cell{Attr: vtparser.AttrBold})
	w.CollectAdd('x', 1)
	w.ScrollUp(1)
	if len(w.Scrollback) != 1 {
		t.Fatalf("expected 1 archived line, got %d", len(w.Scrollback))
	}
	if w.Scrollback[0][0].style.Attr != vtparser.AttrBold {
		t.Fatalf("expected the archived row to carry the cell written before scrolling")
	}
}

func TestScrollUpDoesNotArchiveWithMargins(t *testing.T) {
	w := New(5, 3)
	w.ScrollMargin(1, 3)
	w.ScrollUp(1)
	if len(w.Scrollback) != 0 {
		t.Fatalf("expected no archiving while left/right margins are set, got %d", len(w.Scrollback))
	}
}

func TestAlternateScreenRoundTrip(t *testing.T) {
	w := New(5, 3)
	w.CollectAdd('p', 1)
	w.AlternateOn(0, 0, true)
	if w.Rune(0, 0) != 0 {
		t.Fatalf("alternate screen should start blank, got %q", w.Rune(0, 0))
	}
	w.AlternateOff()
	if w.Rune(0, 0) != 'p' {
		t.Fatalf("primary screen content should survive alternate-screen round trip, got %q", w.Rune(0, 0))
	}
}

func TestInsertAndDeleteCharacter(t *testing.T) {
	w := New(5, 1)
	w.CollectAdd('a', 1)
	w.CollectAdd('b', 1)
	w.CursorX = 0
	w.InsertCharacter(1)
	if w.Rune(0, 0) != 0 || w.Rune(1, 0) != 'a' || w.Rune(2, 0) != 'b' {
		t.Fatalf("after ICH: %q %q %q", w.Rune(0, 0), w.Rune(1, 0), w.Rune(2, 0))
	}
	w.DeleteCharacter(1)
	if w.Rune(0, 0) != 'a' || w.Rune(1, 0) != 'b' {
		t.Fatalf("after DCH: %q %q", w.Rune(0, 0), w.Rune(1, 0))
	}
}

func TestAlignmentTestFillsE(t *testing.T) {
	w := New(4, 2)
	w.AlignmentTest()
	if w.Rune(0, 0) != 'E' || w.Rune(3, 1) != 'E' {
		t.Fatalf("DECALN should fill the screen with E")
	}
}

func TestScrollRegionBoundsRoundTrip(t *testing.T) {
	w := New(80, 24)
	w.ScrollRegion(4, 9)
	w.ScrollMargin(2, 70)
	top, bottom, left, right := w.ScrollRegionBounds()
	if top != 4 || bottom != 9 || left != 2 || right != 70 {
		t.Fatalf("got (%d,%d,%d,%d)", top, bottom, left, right)
	}
}

func TestResetClearsGridAndCursor(t *testing.T) {
	w := New(5, 3)
	w.CollectAdd('z', 1)
	w.CursorY = 2
	w.Reset()
	if w.CursorX != 0 || w.CursorY != 0 {
		t.Fatalf("cursor after Reset = (%d,%d), want (0,0)", w.CursorX, w.CursorY)
	}
	if w.Rune(0, 0) != 0 {
		t.Fatalf("expected blank grid after Reset")
	}
}

func TestSetAndGetCurrentCell(t *testing.T) {
	w := New(5, 3)
	w.SetCurrentCell(vtparser.Cell{Attr: vtparser.AttrBold})
	if w.CurrentCell().Attr != vtparser.AttrBold {
		t.Fatalf("CurrentCell did not round trip")
	}
}

func TestTitleAndPath(t *testing.T) {
	w := New(5, 3)
	w.SetTitle("hello")
	w.SetPath("/tmp")
	if w.Title() != "hello" || w.Path() != "/tmp" {
		t.Fatalf("got title=%q path=%q", w.Title(), w.Path())
	}
}
