package layout

// MeasureFunc reports the natural content size of a leaf node, for example
// the cell width and line count of a text run.
type MeasureFunc func() (width, height int)

// Node is the standard Layoutable implementation: a plain tree node holding
// a style, children, and the computed layout.
type Node struct {
	Style    Style
	Children []*Node

	// Measure, when set, supplies the intrinsic size of a leaf node.
	// Containers derive their intrinsic size from their children.
	Measure MeasureFunc

	layout Layout
	dirty  bool
	parent *Node
}

// NewNode creates a new node with the given style.
func NewNode(style Style) *Node {
	return &Node{
		Style: style,
		dirty: true, // New nodes need layout
	}
}

// AddChild appends children and marks this node dirty.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		child.parent = n
		n.Children = append(n.Children, child)
	}
	n.MarkDirty()
}

// RemoveChild removes a child by pointer and marks dirty.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			n.MarkDirty()
			return true
		}
	}
	return false
}

// SetStyle updates the style and marks the node dirty.
func (n *Node) SetStyle(style Style) {
	n.Style = style
	n.MarkDirty()
}

// MarkDirty marks this node and all ancestors as needing recalculation.
func (n *Node) MarkDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

// Layoutable implementation.

func (n *Node) LayoutStyle() Style { return n.Style }

func (n *Node) LayoutChildren() []Layoutable {
	children := make([]Layoutable, len(n.Children))
	for i, c := range n.Children {
		children[i] = c
	}
	return children
}

func (n *Node) SetLayout(l Layout)  { n.layout = l }
func (n *Node) GetLayout() Layout   { return n.layout }
func (n *Node) IsDirty() bool       { return n.dirty }
func (n *Node) SetDirty(dirty bool) { n.dirty = dirty }

// IntrinsicSize returns the node's natural size: the measured content size
// for leaves, or the children's combined outer sizes for containers, plus
// this node's border and padding.
func (n *Node) IntrinsicSize() (width, height int) {
	return intrinsicSize(n)
}
