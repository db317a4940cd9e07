package layout

// Layoutable is anything the engine can size and position. The engine
// never sees concrete node types, only this interface, so callers are
// free to back it with whatever tree they keep.
type Layoutable interface {
	// LayoutStyle reports the style the engine should lay this element
	// out with.
	LayoutStyle() Style

	// LayoutChildren reports the elements laid out inside this one.
	LayoutChildren() []Layoutable

	// SetLayout stores a computed layout on the element.
	SetLayout(Layout)

	// GetLayout reports the layout from the most recent calculation.
	GetLayout() Layout

	// IsDirty reports whether the element's layout is stale.
	IsDirty() bool

	// SetDirty marks the element's layout stale or fresh.
	SetDirty(dirty bool)

	// IntrinsicSize reports the element's natural cell dimensions.
	// Leaves measure their content; containers aggregate their
	// children. Auto-sized elements start from this measurement.
	IntrinsicSize() (width, height int)
}
