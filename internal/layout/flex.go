package layout

// flexItem holds intermediate calculation state for a child.
// This is stack-allocated per layout call, not stored on nodes.
type flexItem struct {
	node      Layoutable
	style     Style
	baseSize  int
	mainSize  int
	crossSize int
	mainPos   int
	crossPos  int
}

// layoutChildren arranges the children of a node within its content rect.
// This implements the core flexbox algorithm: base sizing, integer flex
// distribution, min/max clamping, justification, and cross-axis alignment.
func layoutChildren(node Layoutable, style Style, contentRect Rect) {
	children := node.LayoutChildren()
	if len(children) == 0 {
		return
	}

	isRow := style.Direction.IsRow()

	mainSize := contentRect.Width
	crossSize := contentRect.Height
	if !isRow {
		mainSize, crossSize = crossSize, mainSize
	}

	// Phase 1: Compute base sizes. A child's base size is its resolved main
	// dimension (intrinsic size when auto) plus its main-axis margin; margin
	// is part of the outer size the flex algorithm distributes.
	items := make([]flexItem, 0, len(children))
	growWeights := make([]float64, 0, len(children))
	shrinkWeights := make([]float64, 0, len(children))
	totalFixed := 0
	totalGrow := 0.0
	totalShrink := 0.0

	for _, child := range children {
		cs := child.LayoutStyle()
		if cs.Display == DisplayNone {
			child.SetLayout(Layout{})
			child.SetDirty(false)
			continue
		}
		item := flexItem{node: child, style: cs}

		intrinsicW, intrinsicH := child.IntrinsicSize()
		if isRow {
			item.baseSize = cs.Width.Resolve(mainSize, intrinsicW) + cs.Margin.Horizontal()
		} else {
			item.baseSize = cs.Height.Resolve(mainSize, intrinsicH) + cs.Margin.Vertical()
		}

		totalFixed += item.baseSize
		totalGrow += cs.FlexGrow
		totalShrink += cs.FlexShrink
		items = append(items, item)
		growWeights = append(growWeights, cs.FlexGrow)
		shrinkWeights = append(shrinkWeights, cs.FlexShrink)
	}
	if len(items) == 0 {
		return
	}

	totalGap := style.Gap * (len(items) - 1)
	freeSpace := mainSize - totalFixed - totalGap

	// Phase 2: Distribute free space by weight, exactly. Integer shares are
	// apportioned by largest remainder with ties going to the earliest child,
	// so the distributed cells always sum to the free space.
	switch {
	case freeSpace > 0 && totalGrow > 0:
		extras := apportion(freeSpace, growWeights)
		for i := range items {
			items[i].mainSize = items[i].baseSize + extras[i]
		}
	case freeSpace < 0 && totalShrink > 0:
		reductions := apportion(-freeSpace, shrinkWeights)
		for i := range items {
			items[i].mainSize = max(0, items[i].baseSize-reductions[i])
		}
	default:
		for i := range items {
			items[i].mainSize = items[i].baseSize
		}
	}

	// Phase 3: Apply min/max constraints after flexing.
	for i := range items {
		minMain, maxMain := resolveMainBounds(items[i].style, isRow, mainSize)
		items[i].mainSize = clamp(items[i].mainSize, minMain, maxMain)
	}

	// Recompute free space for justification.
	totalUsed := 0
	for i := range items {
		totalUsed += items[i].mainSize
	}
	freeSpace = mainSize - totalUsed - totalGap

	// Phase 4: Position along the main axis. Reverse directions place the
	// same boxes in reverse document order; justification is unaffected.
	seq := make([]int, len(items))
	for i := range seq {
		seq[i] = i
	}
	if style.Direction.IsReverse() {
		for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
			seq[i], seq[j] = seq[j], seq[i]
		}
	}

	leads := justifyLeads(style.JustifyContent, freeSpace, len(items))
	pos := 0
	for k, idx := range seq {
		if k > 0 {
			pos += style.Gap
		}
		pos += leads[k]
		items[idx].mainPos = pos
		pos += items[idx].mainSize
	}

	// Phase 5: Cross-axis sizing and alignment.
	for i := range items {
		cs := items[i].style
		align := style.AlignItems
		if cs.AlignSelf != nil {
			align = *cs.AlignSelf
		}

		var crossValue Value
		var crossMargin, crossIntrinsic int
		intrinsicW, intrinsicH := items[i].node.IntrinsicSize()
		if isRow {
			crossValue = cs.Height
			crossMargin = cs.Margin.Vertical()
			crossIntrinsic = intrinsicH
		} else {
			crossValue = cs.Width
			crossMargin = cs.Margin.Horizontal()
			crossIntrinsic = intrinsicW
		}

		availableCross := crossSize - crossMargin

		if align == AlignStretch && crossValue.IsAuto() {
			items[i].crossSize = crossSize
			items[i].crossPos = 0
		} else {
			contentCross := crossValue.Resolve(availableCross, crossIntrinsic)
			items[i].crossSize = contentCross + crossMargin
			items[i].crossPos = alignOffset(align, crossSize, items[i].crossSize)
		}
	}

	// Phase 6: Convert to slot rects and recurse. The slot includes the
	// child's margin; insetting it yields the child's border box.
	for i := range items {
		var slot Rect
		if isRow {
			slot = Rect{
				X:      contentRect.X + items[i].mainPos,
				Y:      contentRect.Y + items[i].crossPos,
				Width:  items[i].mainSize,
				Height: items[i].crossSize,
			}
		} else {
			slot = Rect{
				X:      contentRect.X + items[i].crossPos,
				Y:      contentRect.Y + items[i].mainPos,
				Width:  items[i].crossSize,
				Height: items[i].mainSize,
			}
		}
		calculateNode(items[i].node, slot.Inset(items[i].style.Margin))
	}
}

// apportion splits total cells across weighted recipients so the shares sum
// exactly to total. Each recipient gets the floor of its proportional share;
// the leftover cells go one each to the largest fractional remainders, with
// ties broken toward the earliest recipient.
func apportion(total int, weights []float64) []int {
	shares := make([]int, len(weights))
	if total <= 0 {
		return shares
	}
	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight <= 0 {
		return shares
	}

	fractions := make([]float64, len(weights))
	distributed := 0
	for i, w := range weights {
		exact := float64(total) * w / totalWeight
		shares[i] = int(exact)
		fractions[i] = exact - float64(shares[i])
		distributed += shares[i]
	}

	for left := total - distributed; left > 0; left-- {
		best := -1
		for i, f := range fractions {
			if best == -1 || f > fractions[best] {
				best = i
			}
		}
		shares[best]++
		fractions[best] = -1
	}
	return shares
}

// justifyLeads returns the extra space placed before each item, beyond the
// container gap. Leftover cells from uneven division go to the earliest
// gaps, so the last item still lands exactly at the container edge for
// end-anchored modes.
func justifyLeads(justify Justify, freeSpace, n int) []int {
	leads := make([]int, n)
	if freeSpace <= 0 || n == 0 {
		return leads
	}

	switch justify {
	case JustifyEnd:
		leads[0] = freeSpace
	case JustifyCenter:
		leads[0] = freeSpace / 2
	case JustifySpaceBetween:
		if n == 1 {
			return leads
		}
		gaps := splitEven(freeSpace, n-1)
		for i := 1; i < n; i++ {
			leads[i] = gaps[i-1]
		}
	case JustifySpaceAround:
		chunks := splitEven(freeSpace, n)
		leads[0] = chunks[0] / 2
		for i := 1; i < n; i++ {
			leads[i] = (chunks[i-1] - chunks[i-1]/2) + chunks[i]/2
		}
	case JustifySpaceEvenly:
		gaps := splitEven(freeSpace, n+1)
		for i := 0; i < n; i++ {
			leads[i] = gaps[i]
		}
	}
	return leads
}

// splitEven divides total into parts integer chunks, giving the remainder
// one cell each to the earliest chunks.
func splitEven(total, parts int) []int {
	out := make([]int, parts)
	if parts <= 0 {
		return nil
	}
	base := total / parts
	rem := total % parts
	for i := range out {
		out[i] = base
		if i < rem {
			out[i]++
		}
	}
	return out
}

// alignOffset returns the cross-axis offset for a child.
func alignOffset(align Align, crossSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// resolveMainBounds resolves the min/max main-axis constraints for a child.
// An unset max is unbounded.
func resolveMainBounds(style Style, isRow bool, available int) (int, int) {
	if isRow {
		maxW := available
		if !style.MaxWidth.IsAuto() {
			maxW = style.MaxWidth.Resolve(available, available)
		}
		return style.MinWidth.Resolve(available, 0), maxW
	}
	maxH := available
	if !style.MaxHeight.IsAuto() {
		maxH = style.MaxHeight.Resolve(available, available)
	}
	return style.MinHeight.Resolve(available, 0), maxH
}
