package layout

// Calculate performs layout on the tree rooted at root, populating every
// visited node's Layout. Passing -1 for availableWidth or availableHeight
// makes that axis content-driven: the root sizes to its intrinsic dimension
// instead of filling the terminal.
//
// A clean subtree whose allocation is unchanged is not revisited.
func Calculate(root Layoutable, availableWidth, availableHeight int) {
	if root == nil {
		return
	}

	style := root.LayoutStyle()
	if style.Display == DisplayNone {
		root.SetLayout(Layout{})
		root.SetDirty(false)
		return
	}

	intrinsicW, intrinsicH := root.IntrinsicSize()

	width := resolveAxis(style.Width, availableWidth, intrinsicW)
	height := resolveAxis(style.Height, availableHeight, intrinsicH)

	outer := NewRect(0, 0, width, height).Translate(style.Margin.Left, style.Margin.Top)
	calculateNode(root, outer)
}

// resolveAxis resolves a root dimension. available < 0 means the axis is
// content-driven and the intrinsic size wins unless an explicit fixed size
// was set.
func resolveAxis(v Value, available, intrinsic int) int {
	if available < 0 {
		if v.Unit == UnitFixed {
			return v.Resolve(0, intrinsic)
		}
		return intrinsic
	}
	return v.Resolve(available, available)
}

// calculateNode computes the layout for a node given its border box space.
// The available rect is the slot allocated by the parent with this node's
// margin already removed.
func calculateNode(node Layoutable, available Rect) {
	style := node.LayoutStyle()

	borderBox := computeBorderBox(style, available)

	// Dirty propagates up, so a clean node with an unchanged border box
	// guarantees an up-to-date subtree.
	if !node.IsDirty() && node.GetLayout().Rect == borderBox {
		return
	}

	contentRect := borderBox.Inset(style.Border).Inset(style.Padding)

	if len(node.LayoutChildren()) > 0 {
		layoutChildren(node, style, contentRect)
	}

	node.SetLayout(Layout{
		Rect:        borderBox,
		ContentRect: contentRect,
	})
	node.SetDirty(false)
}

// computeBorderBox applies min/max constraints to the allocated space. The
// flex algorithm already resolved Width/Height into the slot size, so only
// clamping remains.
func computeBorderBox(style Style, available Rect) Rect {
	width := available.Width
	height := available.Height

	minWidth := style.MinWidth.Resolve(available.Width, 0)
	maxWidth := style.MaxWidth.Resolve(available.Width, available.Width)
	width = clamp(width, minWidth, maxWidth)

	minHeight := style.MinHeight.Resolve(available.Height, 0)
	maxHeight := style.MaxHeight.Resolve(available.Height, available.Height)
	height = clamp(height, minHeight, maxHeight)

	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return Rect{X: available.X, Y: available.Y, Width: width, Height: height}
}

// clamp restricts v to [minVal, maxVal]. If minVal > maxVal, minVal wins
// (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// intrinsicSize computes a Node's natural size bottom-up: leaves report
// their measured content, containers combine child outer sizes along the
// main axis and take the maximum on the cross axis.
func intrinsicSize(n *Node) (int, int) {
	chrome := n.Style.Border.Add(n.Style.Padding)

	if len(n.Children) == 0 {
		w, h := 0, 0
		if n.Measure != nil {
			w, h = n.Measure()
		}
		return w + chrome.Horizontal(), h + chrome.Vertical()
	}

	isRow := n.Style.Direction.IsRow()
	mainSum, crossMax, visible := 0, 0, 0
	for _, child := range n.Children {
		if child.Style.Display == DisplayNone {
			continue
		}
		visible++
		cw, ch := childOuterIntrinsic(child)
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
		mainSum += n.Style.Gap * (visible - 1)
	}

	if isRow {
		return mainSum + chrome.Horizontal(), crossMax + chrome.Vertical()
	}
	return crossMax + chrome.Horizontal(), mainSum + chrome.Vertical()
}

// childOuterIntrinsic returns a child's margin-inclusive natural size,
// honoring explicitly fixed dimensions.
func childOuterIntrinsic(child *Node) (int, int) {
	w, h := child.IntrinsicSize()
	if child.Style.Width.Unit == UnitFixed {
		w = int(child.Style.Width.Amount)
	}
	if child.Style.Height.Unit == UnitFixed {
		h = int(child.Style.Height.Amount)
	}
	return w + child.Style.Margin.Horizontal(), h + child.Style.Margin.Vertical()
}
