package tern

import (
	"strings"

	"github.com/tern-tui/tern/internal/ansitext"
)

// Frame is a 2D grid of cells representing one fully painted screen.
// Painting stamps cells in document order; the renderer then serializes
// rows and diffs them against the previously emitted frame.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a frame of the given dimensions filled with blank cells.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	blank := NewCell(" ", NewStyle())
	for i := range cells {
		cells[i] = blank
	}

	return &Frame{cells: cells, width: width, height: height}
}

// Width returns the frame width in columns.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in rows.
func (f *Frame) Height() int {
	return f.height
}

// Size returns the frame dimensions.
func (f *Frame) Size() (width, height int) {
	return f.width, f.height
}

// Rect returns the frame bounds as a Rect at the origin.
func (f *Frame) Rect() Rect {
	return NewRect(0, 0, f.width, f.height)
}

// idx converts coordinates to a flat index, or -1 if out of bounds.
func (f *Frame) idx(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return -1
	}
	return y*f.width + x
}

// Cell returns the cell at (x, y), or the zero Cell out of bounds.
func (f *Frame) Cell(x, y int) Cell {
	i := f.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return f.cells[i]
}

// SetCell places a cell at (x, y). Out-of-bounds writes are dropped.
func (f *Frame) SetCell(x, y int, c Cell) {
	i := f.idx(x, y)
	if i < 0 {
		return
	}
	f.cells[i] = c
}

// SetCluster places a grapheme cluster at (x, y) with the given style.
// Wide clusters get a continuation cell; overlapped wide clusters on
// either side are dissolved into spaces so no half-characters survive.
func (f *Frame) SetCluster(x, y int, cluster string, style Style) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}

	cell := NewCell(cluster, style)
	width := int(cell.Width)
	current := f.Cell(x, y)

	// Writing into the tail of a wide cluster dissolves the whole cluster.
	if current.IsContinuation() {
		f.dissolveWide(x, y)
	}

	// Writing over the head of a wide cluster orphans its tail.
	if current.Width == 2 {
		f.SetCell(x+1, y, NewCell(" ", NewStyle()))
	}

	if width == 2 {
		// A wide cluster at the last column cannot fit.
		if x+1 >= f.width {
			f.SetCell(x, y, NewCell(" ", style))
			return
		}
		next := f.Cell(x+1, y)
		if next.Width == 2 || next.IsContinuation() {
			f.dissolveWide(x+1, y)
		}
	}

	f.SetCell(x, y, cell)
	if width == 2 {
		f.SetCell(x+1, y, continuationCell(style))
	}
}

// dissolveWide replaces the wide cluster covering (x, y) with spaces.
func (f *Frame) dissolveWide(x, y int) {
	blank := NewCell(" ", NewStyle())
	cell := f.Cell(x, y)
	switch {
	case cell.IsContinuation():
		if x > 0 {
			f.SetCell(x-1, y, blank)
		}
		f.SetCell(x, y, blank)
	case cell.Width == 2:
		f.SetCell(x, y, blank)
		f.SetCell(x+1, y, blank)
	}
}

// SetString stamps a string starting at (x, y). Embedded SGR escape
// sequences update the running style; other escapes are dropped. The
// string is clipped at the frame edge without wrapping. Returns the
// display width consumed.
func (f *Frame) SetString(x, y int, s string, style Style) int {
	return f.SetStringClipped(x, y, s, style, f.Rect())
}

// SetStringClipped stamps a string clipped to clipRect. Cluster positions
// are computed from x, but only clusters fully inside clipRect are drawn.
func (f *Frame) SetStringClipped(x, y int, s string, style Style, clipRect Rect) int {
	clipRect = clipRect.Intersect(f.Rect())
	if y < clipRect.Y || y >= clipRect.Bottom() {
		return 0
	}

	total := 0
	curX := x
	cur := style
	ansitext.Scan(s, func(tok string, width int, isEscape bool) bool {
		if isEscape {
			cur = applySGR(cur, style, tok)
			return true
		}
		if curX >= clipRect.Right() {
			return false
		}
		if curX >= clipRect.X && curX+width <= clipRect.Right() {
			f.SetCluster(curX, y, tok, cur)
			total += width
		}
		curX += width
		return true
	})
	return total
}

// Fill fills a rectangle with the given cluster and style.
func (f *Frame) Fill(rect Rect, cluster string, style Style) {
	rect = rect.Intersect(f.Rect())
	if rect.IsEmpty() {
		return
	}

	width := ansitext.Width(cluster)
	if width < 1 {
		cluster = " "
		width = 1
	}

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				f.SetCluster(x, y, " ", style)
				x++
				continue
			}
			f.SetCluster(x, y, cluster, style)
			x += width
		}
	}
}

// Clear resets the whole frame to blank cells.
func (f *Frame) Clear() {
	f.ClearRect(f.Rect())
}

// ClearRect resets a region to blank cells, dissolving wide clusters
// that straddle the region's edges.
func (f *Frame) ClearRect(rect Rect) {
	rect = rect.Intersect(f.Rect())
	if rect.IsEmpty() {
		return
	}

	blank := NewCell(" ", NewStyle())
	for y := rect.Y; y < rect.Bottom(); y++ {
		if f.Cell(rect.X, y).IsContinuation() {
			f.dissolveWide(rect.X, y)
		}
		last := rect.Right() - 1
		if f.Cell(last, y).Width == 2 {
			f.dissolveWide(last, y)
		}
		for x := rect.X; x < rect.Right(); x++ {
			f.SetCell(x, y, blank)
		}
	}
}

// Resize changes the frame dimensions, preserving overlapping content.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == f.width && height == f.height {
		return
	}

	cells := make([]Cell, width*height)
	blank := NewCell(" ", NewStyle())
	for i := range cells {
		cells[i] = blank
	}

	copyW := min(width, f.width)
	copyH := min(height, f.height)
	for y := 0; y < copyH; y++ {
		copy(cells[y*width:y*width+copyW], f.cells[y*f.width:y*f.width+copyW])
	}

	f.cells = cells
	f.width = width
	f.height = height
}

// Line serializes row y as terminal output: printable clusters with
// minimal SGR transitions between styled runs, trailing blank cells
// trimmed. A style still open at the trimmed end is closed with a reset.
func (f *Frame) Line(y int, caps Capabilities) string {
	if y < 0 || y >= f.height {
		return ""
	}

	// Find the last cell that must be emitted.
	end := f.width
	for end > 0 {
		c := f.cells[y*f.width+end-1]
		if c.IsContinuation() || c.IsBlank() {
			end--
			continue
		}
		break
	}

	var sb strings.Builder
	cur := NewStyle()
	for x := 0; x < end; x++ {
		cell := f.cells[y*f.width+x]
		if cell.IsContinuation() {
			continue
		}
		if !cell.Style.Equal(cur) {
			sb.WriteString(sgrTransition(cur, cell.Style, caps))
			cur = cell.Style
		}
		if cell.Cluster == "" {
			sb.WriteString(" ")
		} else {
			sb.WriteString(cell.Cluster)
		}
	}
	if !cur.IsDefault() {
		sb.WriteString(sgrResetSeq)
	}
	return sb.String()
}

// Lines serializes every row. The result is what the renderer diffs.
func (f *Frame) Lines(caps Capabilities) []string {
	lines := make([]string, f.height)
	for y := 0; y < f.height; y++ {
		lines[y] = f.Line(y, caps)
	}
	return lines
}

// String renders the frame as plain text for tests and debugging,
// one row per line with no escape sequences.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			cell := f.cells[y*f.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Cluster == "" {
				sb.WriteString(" ")
			} else {
				sb.WriteString(cell.Cluster)
			}
		}
		if y < f.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed is String with trailing spaces removed from each row.
func (f *Frame) StringTrimmed() string {
	lines := strings.Split(f.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
