package palette

import "testing"

func TestNewSeedsANSI16(t *testing.T) {
	p := New()
	r, g, b, ok := p.Get(1)
	if !ok {
		t.Fatalf("expected index 1 to be set")
	}
	if r != 205 || g != 0 || b != 0 {
		t.Fatalf("index 1 (red) = (%d,%d,%d), want (205,0,0)", r, g, b)
	}
}

func TestNewSeedsColourCube(t *testing.T) {
	p := New()
	r, g, b, ok := p.Get(16)
	if !ok {
		t.Fatalf("expected index 16 to be set")
	}
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("index 16 (cube origin) = (%d,%d,%d), want (0,0,0)", r, g, b)
	}
	r, g, b, ok = p.Get(231)
	if !ok || r == 0 || g == 0 || b == 0 {
		t.Fatalf("index 231 (cube corner) = (%d,%d,%d) ok=%v, want bright", r, g, b, ok)
	}
}

func TestSetAndGetRoundTrips(t *testing.T) {
	p := New()
	p.Set(200, 10, 20, 30)
	r, g, b, ok := p.Get(200)
	if !ok {
		t.Fatalf("expected index 200 to be set after Set")
	}
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("got (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestResetRestoresDefault(t *testing.T) {
	p := New()
	p.Set(5, 1, 2, 3)
	p.Reset(5)
	r, g, b, _ := p.Get(5)
	want := defaultANSI16[5]
	if r != want[0] || g != want[1] || b != want[2] {
		t.Fatalf("Reset(5) = (%d,%d,%d), want %v", r, g, b, want)
	}
}

func TestOutOfRangeIndexIsNoOp(t *testing.T) {
	p := New()
	p.Set(300, 1, 2, 3)
	if _, _, _, ok := p.Get(300); ok {
		t.Fatalf("expected out-of-range index to report not-ok")
	}
	if _, _, _, ok := p.Get(-1); ok {
		t.Fatalf("expected negative index to report not-ok")
	}
}

func TestForegroundBackgroundDefaults(t *testing.T) {
	p := New()
	r, g, b := p.Foreground()
	if r != 229 || g != 229 || b != 229 {
		t.Fatalf("default foreground = (%d,%d,%d)", r, g, b)
	}
	p.SetForeground(1, 2, 3)
	r, g, b = p.Foreground()
	if r != 1 || g != 2 || b != 3 {
		t.Fatalf("SetForeground did not take effect: (%d,%d,%d)", r, g, b)
	}
	p.ResetForeground()
	r, g, b = p.Foreground()
	if r != 229 || g != 229 || b != 229 {
		t.Fatalf("ResetForeground did not restore default: (%d,%d,%d)", r, g, b)
	}
}

func TestCursorColourUnsetByDefault(t *testing.T) {
	p := New()
	if _, _, _, ok := p.CursorColour(); ok {
		t.Fatalf("expected cursor colour unset by default")
	}
	p.SetCursorColour(9, 9, 9)
	r, g, b, ok := p.CursorColour()
	if !ok || r != 9 || g != 9 || b != 9 {
		t.Fatalf("got (%d,%d,%d) ok=%v, want (9,9,9) true", r, g, b, ok)
	}
	p.ResetCursorColour()
	if _, _, _, ok := p.CursorColour(); ok {
		t.Fatalf("expected cursor colour unset after reset")
	}
}
