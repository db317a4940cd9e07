package tern

import "github.com/tern-tui/tern/internal/ansitext"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     string
	Top         string
	TopRight    string
	Left        string
	Right       string
	BottomLeft  string
	Bottom      string
	BottomRight string
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft: "┌", Top: "─", TopRight: "┐",
			Left: "│", Right: "│",
			BottomLeft: "└", Bottom: "─", BottomRight: "┘",
		}
	case BorderDouble:
		return BorderChars{
			TopLeft: "╔", Top: "═", TopRight: "╗",
			Left: "║", Right: "║",
			BottomLeft: "╚", Bottom: "═", BottomRight: "╝",
		}
	case BorderRounded:
		return BorderChars{
			TopLeft: "╭", Top: "─", TopRight: "╮",
			Left: "│", Right: "│",
			BottomLeft: "╰", Bottom: "─", BottomRight: "╯",
		}
	case BorderThick:
		return BorderChars{
			TopLeft: "┏", Top: "━", TopRight: "┓",
			Left: "┃", Right: "┃",
			BottomLeft: "┗", Bottom: "━", BottomRight: "┛",
		}
	default:
		return BorderChars{
			TopLeft: " ", Top: " ", TopRight: " ",
			Left: " ", Right: " ",
			BottomLeft: " ", Bottom: " ", BottomRight: " ",
		}
	}
}

// DrawBox draws a box border on the frame along the edges of rect.
// Rectangles smaller than 2x2 cannot hold a border and are skipped.
func DrawBox(f *Frame, rect Rect, border BorderStyle, style Style) {
	DrawBoxClipped(f, rect, border, style, f.Rect())
}

// DrawBoxClipped draws a box border clipped to clipRect. Positions are
// computed from the full rect, but only cells inside clipRect are drawn,
// so partially visible boxes keep their shape.
func DrawBoxClipped(f *Frame, rect Rect, border BorderStyle, style Style, clipRect Rect) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}

	chars := border.Chars()
	clipRect = clipRect.Intersect(f.Rect())

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	put := func(x, y int, s string) {
		if clipRect.Contains(x, y) {
			f.SetCluster(x, y, s, style)
		}
	}

	put(left, top, chars.TopLeft)
	put(right, top, chars.TopRight)
	put(left, bottom, chars.BottomLeft)
	put(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		put(x, top, chars.Top)
		put(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, chars.Left)
		put(right, y, chars.Right)
	}
}

// DrawBoxWithTitle draws a box border with a title centered in the top
// edge. The title is truncated to the space between the corners.
func DrawBoxWithTitle(f *Frame, rect Rect, border BorderStyle, title string, style Style) {
	if rect.Width < 2 || rect.Height < 2 || border == BorderNone {
		return
	}

	DrawBox(f, rect, border, style)

	if title == "" {
		return
	}
	available := rect.Width - 2
	if available <= 0 {
		return
	}

	title = ansitext.Truncate(title, available)
	titleWidth := ansitext.Width(title)
	if titleWidth == 0 {
		return
	}

	startX := rect.X + 1 + (available-titleWidth)/2
	f.SetString(startX, rect.Y, title, style)
}

// FillBox fills the interior of a box (excluding the border edge).
func FillBox(f *Frame, rect Rect, cluster string, style Style) {
	if rect.Width <= 2 || rect.Height <= 2 {
		return
	}
	f.Fill(rect.Inset(EdgeAll(1)), cluster, style)
}
