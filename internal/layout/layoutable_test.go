package layout

// testNode is a minimal Layoutable used by the calculation tests. It mirrors
// Node but exposes its fields for direct inspection.
type testNode struct {
	style    Style
	layout   Layout
	children []*testNode
	parent   *testNode
	dirty    bool

	hasIntrinsic           bool
	intrinsicW, intrinsicH int
}

func newTestNode(style Style) *testNode {
	return &testNode{style: style, dirty: true}
}

func (n *testNode) AddChild(children ...*testNode) {
	for _, child := range children {
		child.parent = n
		n.children = append(n.children, child)
	}
	n.markDirty()
}

func (n *testNode) SetStyle(style Style) {
	n.style = style
	n.markDirty()
}

// SetIntrinsicSize gives the node a fixed natural content size, standing in
// for a measured text run.
func (n *testNode) SetIntrinsicSize(w, h int) {
	n.hasIntrinsic = true
	n.intrinsicW = w
	n.intrinsicH = h
	n.markDirty()
}

func (n *testNode) markDirty() {
	for node := n; node != nil && !node.dirty; node = node.parent {
		node.dirty = true
	}
}

func (n *testNode) LayoutStyle() Style { return n.style }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) SetLayout(l Layout)  { n.layout = l }
func (n *testNode) GetLayout() Layout   { return n.layout }
func (n *testNode) IsDirty() bool       { return n.dirty }
func (n *testNode) SetDirty(dirty bool) { n.dirty = dirty }

func (n *testNode) IntrinsicSize() (int, int) {
	chrome := n.style.Border.Add(n.style.Padding)
	if n.hasIntrinsic {
		return n.intrinsicW + chrome.Horizontal(), n.intrinsicH + chrome.Vertical()
	}
	if len(n.children) == 0 {
		return chrome.Horizontal(), chrome.Vertical()
	}

	isRow := n.style.Direction.IsRow()
	mainSum, crossMax, visible := 0, 0, 0
	for _, child := range n.children {
		if child.style.Display == DisplayNone {
			continue
		}
		visible++
		cw, ch := child.IntrinsicSize()
		if child.style.Width.Unit == UnitFixed {
			cw = int(child.style.Width.Amount)
		}
		if child.style.Height.Unit == UnitFixed {
			ch = int(child.style.Height.Amount)
		}
		cw += child.style.Margin.Horizontal()
		ch += child.style.Margin.Vertical()
		if isRow {
			mainSum += cw
			if ch > crossMax {
				crossMax = ch
			}
		} else {
			mainSum += ch
			if cw > crossMax {
				crossMax = cw
			}
		}
	}
	if visible > 1 {
		mainSum += n.style.Gap * (visible - 1)
	}
	if isRow {
		return mainSum + chrome.Horizontal(), crossMax + chrome.Vertical()
	}
	return crossMax + chrome.Horizontal(), mainSum + chrome.Vertical()
}
