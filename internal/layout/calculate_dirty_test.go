package layout

import "testing"

// Dirty flags propagate to the root when a node changes, so a clean node
// whose allocation is unchanged can skip its whole subtree.

func TestCalculate_CleanTreeNotRevisited(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(20)
	root.style.Height = Fixed(4)

	child := newTestNode(DefaultStyle())
	child.style.Width = Fixed(8)

	root.AddChild(child)
	Calculate(root, 40, 40)

	if root.dirty || child.dirty {
		t.Fatal("nodes still dirty after layout")
	}

	// Plant a sentinel layout. If the subtree were revisited the engine
	// would overwrite it.
	child.layout = Layout{Rect: NewRect(99, 99, 1, 1)}
	Calculate(root, 40, 40)

	if child.layout.Rect.X != 99 {
		t.Errorf("clean child was recomputed: rect = %+v", child.layout.Rect)
	}
}

func TestCalculate_StyleChangeRecalculates(t *testing.T) {
	root := newTestNode(DefaultStyle())
	root.style.Width = Fixed(20)
	root.style.Height = Fixed(4)

	a := newTestNode(DefaultStyle())
	a.style.Width = Fixed(8)
	b := newTestNode(DefaultStyle())
	b.style.Width = Fixed(4)

	root.AddChild(a, b)
	Calculate(root, 40, 40)

	style := a.style
	style.Width = Fixed(12)
	a.SetStyle(style)

	if !root.dirty {
		t.Fatal("style change did not propagate dirt to the root")
	}
	Calculate(root, 40, 40)

	if a.layout.Rect.Width != 12 {
		t.Errorf("a.Width = %d, want 12", a.layout.Rect.Width)
	}
	// The clean sibling still moves because its allocation shifted.
	if b.layout.Rect.X != 12 {
		t.Errorf("b.X = %d, want 12", b.layout.Rect.X)
	}
}

func TestCalculate_ResizeRecalculatesCleanTree(t *testing.T) {
	root := newTestNode(DefaultStyle())

	a := newTestNode(DefaultStyle())
	a.style.Width = Fixed(0)
	a.style.FlexGrow = 1
	b := newTestNode(DefaultStyle())
	b.style.Width = Fixed(0)
	b.style.FlexGrow = 1

	root.AddChild(a, b)
	Calculate(root, 30, 4)

	if a.layout.Rect.Width != 15 {
		t.Fatalf("a.Width = %d, want 15", a.layout.Rect.Width)
	}

	// A new terminal size changes the root's border box, which forces a
	// fresh pass even though every node is clean.
	Calculate(root, 20, 4)

	if a.layout.Rect.Width != 10 || b.layout.Rect.Width != 10 {
		t.Errorf("widths = %d, %d, want 10, 10",
			a.layout.Rect.Width, b.layout.Rect.Width)
	}
}
