package vtparser_test

import (
	"strings"
	"testing"

	. "github.com/nexpane/vtcore/vtparser"
)

// TestReplyDAMatchesConformanceLevel checks that a VT220-class context
// answering Primary Device Attributes reports exactly the VT220 feature
// set, not VT241's or plain VT100's.
func TestReplyDAMatchesConformanceLevel(t *testing.T) {
	c, _, sink := newTestCtx(80)
	c.Feed([]byte("\x1b[c"))
	if len(sink.writes) != 1 || sink.writes[0] != "\x1b[?62;1;2;6;16;17;21;22c" {
		t.Fatalf("DA reply = %v, want VT220 feature set", sink.writes)
	}
}

func TestReplyDA2AndXDA(t *testing.T) {
	c, _, sink := newTestCtx(80)
	c.Feed([]byte("\x1b[>c"))
	if len(sink.writes) != 1 || sink.writes[0] != "\x1b[>84;0;0c" {
		t.Fatalf("DA2 reply = %v", sink.writes)
	}
	sink.writes = nil
	c.Feed([]byte("\x1b[>q"))
	if len(sink.writes) != 1 || sink.writes[0] != "\x1bP>|vtcore 1.0\x1b\\" {
		t.Fatalf("XDA reply = %v", sink.writes)
	}
}

// TestOSCColourReplyMatchesRequestTerminator: a BEL-terminated
// query gets a BEL-terminated reply, an ST-terminated query gets ST back.
func TestOSCColourReplyMatchesRequestTerminator(t *testing.T) {
	c, _, sink := newTestCtx(80)
	c.Feed([]byte("\x1b]10;?\x07"))
	if len(sink.writes) != 1 || !strings.HasSuffix(sink.writes[0], "\x07") {
		t.Fatalf("BEL-terminated query reply = %q, want BEL terminator", sink.writes)
	}

	sink.writes = nil
	c.Feed([]byte("\x1b]10;?\x1b\\"))
	if len(sink.writes) != 1 || !strings.HasSuffix(sink.writes[0], "\x1b\\") {
		t.Fatalf("ST-terminated query reply = %q, want ST terminator", sink.writes)
	}
}

// TestSGRUnderlineStyleColonForm covers the "4:n" colon-subparameter
// underline-style selector: curly/dotted/dashed are only reachable
// this way, there is no plain-numeric SGR code for them.
func TestSGRUnderlineStyleColonForm(t *testing.T) {
	c, sw, _ := newTestCtx(80)
	c.Feed([]byte("\x1b[4:3mX"))
	if cell := sw.Cell(0, 0); cell.Attr&AttrCurlyUnderline == 0 {
		t.Fatalf("expected curly underline, got %v", cell.Attr)
	}
	c.Feed([]byte("\x1b[4:4mY"))
	if cell := sw.Cell(1, 0); cell.Attr&AttrDottedUnderline == 0 {
		t.Fatalf("expected dotted underline, got %v", cell.Attr)
	}
	c.Feed([]byte("\x1b[4:5mZ"))
	if cell := sw.Cell(2, 0); cell.Attr&AttrDashedUnderline == 0 {
		t.Fatalf("expected dashed underline, got %v", cell.Attr)
	}
	c.Feed([]byte("\x1b[4:0mW"))
	if cell := sw.Cell(3, 0); cell.Attr&(AttrUnderline|AttrDottedUnderline|AttrDashedUnderline|AttrCurlyUnderline|AttrDoubleUnderline) != 0 {
		t.Fatalf("expected no underline after 4:0, got %v", cell.Attr)
	}
}

// TestDECRQSSRoundTripsTruecolourSGR: bold plus a truecolour foreground
// must round-trip through DECRPSS using the colon-subparameter
// extended-colour form, not a semicolon-joined one.
func TestDECRQSSRoundTripsTruecolourSGR(t *testing.T) {
	c, _, sink := newTestCtx(80)
	c.Feed([]byte("\x1b[1;38:2:0:1:2:3m"))
	c.Feed([]byte("\x1bP$qm\x1b\\"))
	if len(sink.writes) != 1 {
		t.Fatalf("expected one reply, got %d", len(sink.writes))
	}
	got := sink.writes[0]
	if !strings.Contains(got, ";1;") && !strings.Contains(got, ";1m") {
		t.Fatalf("reply missing bold: %q", got)
	}
	if !strings.Contains(got, "38:2:0:1:2:3") {
		t.Fatalf("reply missing colon-form truecolour fg: %q", got)
	}
}

// TestDECRSTSRestoresHLSColour covers the HLS (cs=1) branch of DECRSTS/DECCTR
// restore, which is converted to sRGB via go-colorful since Palette only
// stores RGB.
func TestDECRSTSRestoresHLSColour(t *testing.T) {
	c, _, _ := newTestCtx(80)
	// idx=1;cs=1(HLS);hue=0;lightness=50;saturation=100 -> pure red-ish.
	c.Feed([]byte("\x1bP2$p1;1;0;50;100\x1b\\"))
	r, g, b, ok := c.col.Palette.Get(1)
	if !ok {
		t.Fatalf("expected palette index 1 to be set")
	}
	if r < g || r < b {
		t.Fatalf("expected a red-dominant colour from hue 0, got (%d,%d,%d)", r, g, b)
	}
}
