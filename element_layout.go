package tern

import (
	"github.com/tern-tui/tern/internal/ansitext"
	"github.com/tern-tui/tern/internal/layout"
)

// RenderNode is an element annotated with resolved terminal-cell
// geometry. The tree mirrors the element tree's shape and is the
// introspectable output of layout.
type RenderNode struct {
	Element     *Element
	Rect        Rect // border box, absolute frame coordinates
	ContentRect Rect // inside border and padding
	Children    []*RenderNode
}

// measureKey memoizes text measurement per (content, constraint) pair.
type measureKey struct {
	text       string
	constraint int
	hard       bool
}

// MeasureCache memoizes Unicode-aware text measurement across renders.
// The cache is invalidated wholesale whenever the root constraint
// changes; partial repair is never attempted.
type MeasureCache struct {
	entries    map[measureKey]Size
	constraint int
}

// NewMeasureCache returns an empty measurement cache.
func NewMeasureCache() *MeasureCache {
	return &MeasureCache{entries: make(map[measureKey]Size)}
}

// Invalidate drops every entry if the root constraint changed.
func (c *MeasureCache) Invalidate(constraint int) {
	if constraint == c.constraint {
		return
	}
	c.entries = make(map[measureKey]Size)
	c.constraint = constraint
}

// measure returns the cell size of text under an optional wrap
// constraint. A constraint of 0 means unwrapped: width is the widest
// line, height the line count.
func (c *MeasureCache) measure(text string, constraint int, hard bool) (width, height int) {
	key := measureKey{text: text, constraint: constraint, hard: hard}
	if s, ok := c.entries[key]; ok {
		return s.Width, s.Height
	}

	measured := text
	if constraint > 0 {
		measured = ansitext.Wrap(text, constraint, hard)
	}
	lines := ansitext.Lines(measured)
	w := 0
	for _, line := range lines {
		if lw := ansitext.Width(line); lw > w {
			w = lw
		}
	}

	c.entries[key] = Size{Width: w, Height: len(lines)}
	return w, len(lines)
}

// BuildLayout lays out an element tree within the given dimensions and
// returns the resolved geometry tree. Passing -1 for a dimension sizes
// the root to its content on that axis. A nil cache disables
// measurement memoization across calls.
func BuildLayout(root *Element, availWidth, availHeight int, cache *MeasureCache) *RenderNode {
	if cache == nil {
		cache = NewMeasureCache()
	}
	cache.Invalidate(availWidth)

	node := buildNode(root, cache)
	layout.Calculate(node, availWidth, availHeight)
	return resolve(root, node)
}

// buildNode converts an element subtree into layout nodes, attaching
// measure hooks to text leaves.
func buildNode(e *Element, cache *MeasureCache) *layout.Node {
	n := layout.NewNode(e.style)
	if e.kind == ElementText {
		text := e.text
		constraint := e.wrapWidth
		hard := e.hardWrap
		n.Measure = func() (int, int) {
			return cache.measure(text, constraint, hard)
		}
		return n
	}
	for _, child := range e.children {
		n.AddChild(buildNode(child, cache))
	}
	return n
}

// resolve mirrors the computed geometry back onto the element shape.
func resolve(e *Element, n *layout.Node) *RenderNode {
	l := n.GetLayout()
	rn := &RenderNode{
		Element:     e,
		Rect:        l.Rect,
		ContentRect: l.ContentRect,
	}
	if e.style.Display == DisplayNone {
		return rn
	}
	for i, child := range n.Children {
		rn.Children = append(rn.Children, resolve(e.children[i], child))
	}
	return rn
}
