// Package screen is a reference ScreenWriter implementation: a grid with
// scrollback, scroll-region-aware line shifting, left/right margins, and
// wide-character continuation cells, used to exercise and test vtparser
// without pulling in a real renderer. The grid never needs to know
// vtparser's types beyond vtparser.Cell itself.
package screen

import (
	"github.com/nexpane/vtcore/vtparser"
)

// MaxScrollback bounds how many lines are retained once they scroll off
// the live screen.
const MaxScrollback = 10000

// gridCell pairs the displayed rune with its rendition.
type gridCell struct {
	r     rune
	style vtparser.Cell
}

// Writer is a grid-backed vtparser.ScreenWriter.
type Writer struct {
	Grid       [][]gridCell
	Scrollback [][]gridCell

	CursorX, CursorY int
	Width, Height    int

	scrollTop, scrollBottom int // inclusive, 0-based
	marginLeft, marginRight int // inclusive, 0-based

	alt       bool
	altGrid   [][]gridCell
	altCursor [2]int

	current vtparser.Cell

	title, path string
	lastRaw     []byte
	lastRawWrap bool
	selection   []byte
	sixel       []byte

	modes map[int]bool
}

// New creates a width x height grid with the scroll region spanning the
// whole screen.
func New(width, height int) *Writer {
	w := &Writer{
		Width: width, Height: height,
		scrollBottom: height - 1,
		marginRight:  width - 1,
		modes:        make(map[int]bool),
	}
	w.Grid = makeGrid(width, height)
	w.Scrollback = make([][]gridCell, 0, MaxScrollback)
	return w
}

func makeGrid(width, height int) [][]gridCell {
	g := make([][]gridCell, height)
	for y := range g {
		g[y] = make([]gridCell, width)
	}
	return g
}

func (w *Writer) Start()               {}
func (w *Writer) StartPane(paneID int) {}
func (w *Writer) Stop()                {}

// CollectAdd places a grapheme of the given display width at the cursor,
// auto-wrapping at the right margin and shifting cells right first under
// insert mode (tracked via ModeSet/ModeClear(4)).
func (w *Writer) CollectAdd(r rune, width int) {
	if width <= 0 {
		width = 1
	}
	if w.CursorX > w.marginRight {
		w.CursorX = w.marginLeft
		w.advanceLine()
	}
	if w.modes[4] {
		w.shiftRightFrom(w.CursorY, w.CursorX)
	}
	w.putCell(w.CursorY, w.CursorX, gridCell{r: r, style: w.current})
	if width == 2 && w.CursorX+1 <= w.marginRight {
		w.putCell(w.CursorY, w.CursorX+1, gridCell{})
	}
	w.CursorX += width
}

// CollectEnd closes a print-collection run. This writer applies every
// CollectAdd to the grid immediately, so there is nothing buffered to
// flush; a renderer-backed writer would batch damage here.
func (w *Writer) CollectEnd() {}

func (w *Writer) shiftRightFrom(y, x int) {
	row := w.row(y)
	if row == nil {
		return
	}
	for i := w.marginRight; i > x; i-- {
		if i-1 >= 0 && i < len(row) {
			row[i] = row[i-1]
		}
	}
}

func (w *Writer) putCell(y, x int, cell gridCell) {
	row := w.row(y)
	if row == nil || x < 0 || x >= len(row) {
		return
	}
	row[x] = cell
}

func (w *Writer) row(y int) []gridCell {
	if y < 0 || y >= len(w.Grid) {
		return nil
	}
	return w.Grid[y]
}

func (w *Writer) advanceLine() {
	w.CursorY++
	if w.CursorY > w.scrollBottom {
		w.scrollUp(1)
		w.CursorY = w.scrollBottom
	}
}

func (w *Writer) Backspace() {
	if w.CursorX > w.marginLeft {
		w.CursorX--
	}
}

func (w *Writer) LineFeed()       { w.advanceLine() }
func (w *Writer) CarriageReturn() { w.CursorX = w.marginLeft }

func (w *Writer) CursorUp(n int)    { w.CursorY = clamp(w.CursorY-n, 0, w.Height-1) }
func (w *Writer) CursorDown(n int)  { w.CursorY = clamp(w.CursorY+n, 0, w.Height-1) }
func (w *Writer) CursorLeft(n int)  { w.CursorX = clamp(w.CursorX-n, 0, w.Width-1) }
func (w *Writer) CursorRight(n int) { w.CursorX = clamp(w.CursorX+n, 0, w.Width-1) }

func (w *Writer) CursorMove(x, y int, originRelative bool) {
	if originRelative {
		y += w.scrollTop
		x += w.marginLeft
	}
	w.CursorX = clamp(x, 0, w.Width-1)
	w.CursorY = clamp(y, 0, w.Height-1)
}

func (w *Writer) ReverseIndex() {
	if w.CursorY == w.scrollTop {
		w.scrollDown(1)
		return
	}
	w.CursorY = clamp(w.CursorY-1, 0, w.Height-1)
}

func (w *Writer) BackIndex() {
	if w.CursorX == w.marginLeft {
		w.shiftRightFrom(w.CursorY, w.marginLeft)
		return
	}
	w.CursorX--
}

func (w *Writer) ForwardIndex() {
	if w.CursorX == w.marginRight {
		w.scrollLeftRegion(1)
		return
	}
	w.CursorX++
}

func (w *Writer) AlignmentTest() {
	for y := 0; y < w.Height; y++ {
		for x := 0; x < w.Width; x++ {
			w.Grid[y][x] = gridCell{r: 'E'}
		}
	}
}

func (w *Writer) ClearEndOfScreen() {
	w.clearLineRange(w.CursorY, w.CursorX, w.Width-1)
	for y := w.CursorY + 1; y < w.Height; y++ {
		w.Grid[y] = make([]gridCell, w.Width)
	}
}

func (w *Writer) ClearStartOfScreen() {
	for y := 0; y < w.CursorY; y++ {
		w.Grid[y] = make([]gridCell, w.Width)
	}
	w.clearLineRange(w.CursorY, 0, w.CursorX)
}

func (w *Writer) ClearEndOfLine()   { w.clearLineRange(w.CursorY, w.CursorX, w.Width-1) }
func (w *Writer) ClearStartOfLine() { w.clearLineRange(w.CursorY, 0, w.CursorX) }

func (w *Writer) ClearScreen() {
	w.Grid = makeGrid(w.Width, w.Height)
}

func (w *Writer) ClearLine() {
	w.Grid[w.CursorY] = make([]gridCell, w.Width)
}

func (w *Writer) ClearCharacter(n int) {
	w.clearLineRange(w.CursorY, w.CursorX, w.CursorX+n-1)
}

func (w *Writer) ClearHistory() {
	w.Scrollback = w.Scrollback[:0]
}

func (w *Writer) clearLineRange(y, from, to int) {
	row := w.row(y)
	if row == nil {
		return
	}
	if from < 0 {
		from = 0
	}
	if to >= len(row) {
		to = len(row) - 1
	}
	for x := from; x <= to; x++ {
		row[x] = gridCell{}
	}
}

func (w *Writer) InsertCharacter(n int) {
	for i := 0; i < n; i++ {
		w.shiftRightFrom(w.CursorY, w.CursorX)
		w.putCell(w.CursorY, w.CursorX, gridCell{})
	}
}

func (w *Writer) DeleteCharacter(n int) {
	row := w.row(w.CursorY)
	if row == nil {
		return
	}
	for i := 0; i < n; i++ {
		for x := w.CursorX; x < w.marginRight; x++ {
			if x+1 < len(row) {
				row[x] = row[x+1]
			}
		}
		if w.marginRight < len(row) {
			row[w.marginRight] = gridCell{}
		}
	}
}

func (w *Writer) InsertLine(n int) {
	if w.CursorY < w.scrollTop || w.CursorY > w.scrollBottom {
		return
	}
	saved := w.scrollTop
	w.scrollTop = w.CursorY
	w.scrollDown(n)
	w.scrollTop = saved
}

func (w *Writer) DeleteLine(n int) {
	if w.CursorY < w.scrollTop || w.CursorY > w.scrollBottom {
		return
	}
	saved := w.scrollTop
	w.scrollTop = w.CursorY
	w.scrollUp(n)
	w.scrollTop = saved
}

func (w *Writer) InsertColumn(n int) {
	for y := w.scrollTop; y <= w.scrollBottom; y++ {
		for i := 0; i < n; i++ {
			w.shiftRightFrom(y, w.CursorX)
			w.putCell(y, w.CursorX, gridCell{})
		}
	}
}

func (w *Writer) DeleteColumn(n int) {
	for y := w.scrollTop; y <= w.scrollBottom; y++ {
		row := w.row(y)
		if row == nil {
			continue
		}
		for i := 0; i < n; i++ {
			for x := w.CursorX; x < w.marginRight; x++ {
				if x+1 < len(row) {
					row[x] = row[x+1]
				}
			}
			if w.marginRight < len(row) {
				row[w.marginRight] = gridCell{}
			}
		}
	}
}

func (w *Writer) ScrollUp(n int)   { w.scrollUp(n) }
func (w *Writer) ScrollDown(n int) { w.scrollDown(n) }

func (w *Writer) ScrollLeft(n int) { w.scrollLeftRegion(n) }

func (w *Writer) ScrollRight(n int) {
	for y := w.scrollTop; y <= w.scrollBottom; y++ {
		row := w.row(y)
		if row == nil {
			continue
		}
		for i := 0; i < n; i++ {
			for x := w.marginRight; x > w.marginLeft; x-- {
				row[x] = row[x-1]
			}
			row[w.marginLeft] = gridCell{}
		}
	}
}

func (w *Writer) scrollLeftRegion(n int) {
	for y := w.scrollTop; y <= w.scrollBottom; y++ {
		row := w.row(y)
		if row == nil {
			continue
		}
		for i := 0; i < n; i++ {
			for x := w.marginLeft; x < w.marginRight; x++ {
				row[x] = row[x+1]
			}
			row[w.marginRight] = gridCell{}
		}
	}
}

// scrollUp is the scrollback-producing path: lines leaving the top of the
// scroll region are archived only when the region starts at the top line
// and spans the full width, and we're not in the alternate buffer.
func (w *Writer) scrollUp(n int) {
	if n <= 0 {
		return
	}
	region := w.scrollBottom - w.scrollTop + 1
	if n > region {
		n = region
	}
	if !w.alt && w.scrollTop == 0 && w.marginLeft == 0 && w.marginRight == w.Width-1 {
		for i := 0; i < n && w.scrollTop+i <= w.scrollBottom; i++ {
			w.Scrollback = append(w.Scrollback, w.Grid[w.scrollTop+i])
		}
		if len(w.Scrollback) > MaxScrollback {
			w.Scrollback = w.Scrollback[len(w.Scrollback)-MaxScrollback:]
		}
	}
	for y := w.scrollTop; y <= w.scrollBottom-n; y++ {
		w.Grid[y] = w.Grid[y+n]
	}
	for y := w.scrollBottom - n + 1; y <= w.scrollBottom; y++ {
		if y >= 0 {
			w.Grid[y] = make([]gridCell, w.Width)
		}
	}
}

func (w *Writer) scrollDown(n int) {
	if n <= 0 {
		return
	}
	region := w.scrollBottom - w.scrollTop + 1
	if n > region {
		n = region
	}
	for y := w.scrollBottom; y >= w.scrollTop+n; y-- {
		w.Grid[y] = w.Grid[y-n]
	}
	for y := w.scrollTop; y < w.scrollTop+n; y++ {
		w.Grid[y] = make([]gridCell, w.Width)
	}
}

func (w *Writer) ScrollRegion(top, bottom int) {
	w.scrollTop, w.scrollBottom = top, bottom
}

func (w *Writer) ScrollMargin(left, right int) {
	w.marginLeft, w.marginRight = left, right
}

func (w *Writer) ScrollRegionBounds() (top, bottom, left, right int) {
	return w.scrollTop, w.scrollBottom, w.marginLeft, w.marginRight
}

func (w *Writer) ModeSet(mode int)   { w.modes[mode] = true }
func (w *Writer) ModeClear(mode int) { delete(w.modes, mode) }

func (w *Writer) AlternateOn(cursorX, cursorY int, clear bool) {
	if w.alt {
		return
	}
	w.altGrid = w.Grid
	w.altCursor = [2]int{w.CursorX, w.CursorY}
	w.Grid = makeGrid(w.Width, w.Height)
	w.alt = true
	if !clear {
		for y := 0; y < w.Height && y < len(w.altGrid); y++ {
			copy(w.Grid[y], w.altGrid[y])
		}
	}
	w.CursorX, w.CursorY = cursorX, cursorY
}

func (w *Writer) AlternateOff() {
	if !w.alt {
		return
	}
	w.Grid = w.altGrid
	w.altGrid = nil
	w.CursorX, w.CursorY = w.altCursor[0], w.altCursor[1]
	w.alt = false
}

func (w *Writer) SetSelection(data []byte) { w.selection = append(w.selection[:0], data...) }

func (w *Writer) SixelImage(payload []byte, firstParam int) {
	w.sixel = append(w.sixel[:0], payload...)
	_ = firstParam
}

func (w *Writer) Reset() {
	w.Grid = makeGrid(w.Width, w.Height)
	w.Scrollback = w.Scrollback[:0]
	w.CursorX, w.CursorY = 0, 0
	w.scrollTop, w.scrollBottom = 0, w.Height-1
	w.marginLeft, w.marginRight = 0, w.Width-1
	w.current = vtparser.Cell{}
	w.alt = false
	w.altGrid = nil
	w.modes = make(map[int]bool)
}

func (w *Writer) SoftReset() {
	w.scrollTop, w.scrollBottom = 0, w.Height-1
	w.marginLeft, w.marginRight = 0, w.Width-1
}

func (w *Writer) FullRedraw() {}

func (w *Writer) RawString(data []byte, wrap bool) {
	w.lastRaw = append(w.lastRaw[:0], data...)
	w.lastRawWrap = wrap
}

func (w *Writer) SetTitle(title string)          { w.title = title }
func (w *Writer) SetPath(path string)            { w.path = path }
func (w *Writer) ShellIntegrationMark(kind byte) {}

func (w *Writer) CurrentCell() vtparser.Cell        { return w.current }
func (w *Writer) SetCurrentCell(cell vtparser.Cell) { w.current = cell }

func (w *Writer) CursorPosition() (x, y int) { return w.CursorX, w.CursorY }

func (w *Writer) Size() (width, height int) { return w.Width, w.Height }

// Title and Path expose the reference writer's bookkeeping for tests.
func (w *Writer) Title() string { return w.title }
func (w *Writer) Path() string  { return w.path }

// Mode reports whether a mode number is currently set via ModeSet.
func (w *Writer) Mode(mode int) bool { return w.modes[mode] }

// LastRaw returns the most recent RawString payload and its wrap flag.
func (w *Writer) LastRaw() (data []byte, wrap bool) { return w.lastRaw, w.lastRawWrap }

// Cell reads back a grid cell's rendition for test assertions.
func (w *Writer) Cell(x, y int) vtparser.Cell {
	row := w.row(y)
	if row == nil || x < 0 || x >= len(row) {
		return vtparser.Cell{}
	}
	return row[x].style
}

// Rune reads back the displayed rune at a grid position (0 for blank).
func (w *Writer) Rune(x, y int) rune {
	row := w.row(y)
	if row == nil || x < 0 || x >= len(row) {
		return 0
	}
	return row[x].r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
