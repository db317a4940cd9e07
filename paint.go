package tern

import (
	"github.com/tern-tui/tern/internal/ansitext"
)

// Paint stamps a resolved geometry tree into the frame in document
// order. Later-painted nodes overwrite earlier ones at the same cell,
// which is how overlapping content composites. Color specs resolve to
// concrete colors here, never earlier.
func Paint(f *Frame, root *RenderNode) {
	if root == nil {
		return
	}
	paintNode(f, root)
}

func paintNode(f *Frame, n *RenderNode) {
	e := n.Element
	if e.style.Display == DisplayNone {
		return
	}

	style := Style{
		Fg:    ParseColor(e.fg),
		Bg:    ParseColor(e.bg),
		Attrs: e.attrs,
	}

	if e.bg != "" {
		f.Fill(n.Rect, " ", Style{Fg: style.Fg, Bg: style.Bg})
	}

	if e.hasBorder() {
		borderStyle := style
		if e.borderFg != "" {
			borderStyle.Fg = ParseColor(e.borderFg)
		}
		if e.title != "" {
			DrawBoxWithTitle(f, n.Rect, e.border, e.title, borderStyle)
		} else {
			DrawBox(f, n.Rect, e.border, borderStyle)
		}
	}

	if e.kind == ElementText && e.text != "" {
		paintText(f, n, style)
	}

	for _, child := range n.Children {
		paintNode(f, child)
	}
}

// paintText lays the element's text into its content rect, wrapping and
// aligning as configured. Text is clipped to the content rect; a cell
// the text does not set its own background for keeps whatever
// background was painted beneath it.
func paintText(f *Frame, n *RenderNode, style Style) {
	e := n.Element
	content := e.text

	if e.wrap {
		budget := e.wrapWidth
		if budget <= 0 {
			budget = n.ContentRect.Width
		}
		if budget > 0 {
			content = ansitext.Wrap(content, budget, e.hardWrap)
		}
	}

	clip := n.ContentRect.Intersect(f.Rect())
	inheritBg := e.bg == ""

	for i, line := range ansitext.Lines(content) {
		y := n.ContentRect.Y + i
		if y < clip.Y {
			continue
		}
		if y >= clip.Bottom() {
			break
		}

		x := n.ContentRect.X
		switch e.textAlign {
		case TextAlignCenter:
			x += (n.ContentRect.Width - ansitext.Width(line)) / 2
		case TextAlignRight:
			x += n.ContentRect.Width - ansitext.Width(line)
		}

		stampLine(f, x, y, line, style, clip, inheritBg)
	}
}

// stampLine writes one line of text, folding embedded SGR sequences
// into the running style and optionally inheriting the background of
// already painted cells.
func stampLine(f *Frame, x, y int, line string, base Style, clip Rect, inheritBg bool) {
	cur := base
	curX := x
	ansitext.Scan(line, func(tok string, width int, isEscape bool) bool {
		if isEscape {
			cur = applySGR(cur, base, tok)
			return true
		}
		if curX >= clip.Right() {
			return false
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			cellStyle := cur
			if inheritBg && cellStyle.Bg.IsDefault() {
				cellStyle.Bg = f.Cell(curX, y).Style.Bg
			}
			f.SetCluster(curX, y, tok, cellStyle)
		}
		curX += width
		return true
	})
}
