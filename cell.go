package tern

import (
	"github.com/mattn/go-runewidth"

	"github.com/tern-tui/tern/internal/ansitext"
)

// Cell is a single character cell in a frame. It holds a full grapheme
// cluster rather than a rune so that combining marks and variation
// selectors stay attached to their base character. Wide clusters (CJK,
// emoji) occupy two cells; the first holds the cluster, the second is a
// continuation marked by Width 0.
type Cell struct {
	Cluster string // display cluster ("" for continuation cells)
	Style   Style
	Width   uint8 // display width in columns (0 for continuation)
}

// NewCell creates a Cell with automatic width measurement.
func NewCell(cluster string, style Style) Cell {
	return Cell{
		Cluster: cluster,
		Style:   style,
		Width:   uint8(ansitext.Width(cluster)),
	}
}

// continuationCell marks the second column of a wide cluster.
func continuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation reports whether this cell is the trailing half of a
// wide cluster.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Cluster == ""
}

// Equal reports whether both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Cluster == other.Cluster && c.Width == other.Width && c.Style.Equal(other.Style)
}

// IsBlank reports whether the cell renders as an unstyled space.
func (c Cell) IsBlank() bool {
	if c.Cluster == "" && c.Width != 0 {
		return true
	}
	return c.Cluster == " " && c.Style.IsDefault()
}

// RuneWidth returns the display width of a single rune in terminal cells.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}
