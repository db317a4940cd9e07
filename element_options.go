package tern

// Option configures an Element at construction time.
type Option func(*Element)

// --- Structure ---

// WithChildren appends child elements in document order.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.children = append(e.children, children...)
	}
}

// --- Dimensions ---

// WithWidth sets a fixed width in terminal cells.
// Width includes border and padding (border-box sizing).
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(cells)
	}
}

// WithWidthPercent sets width as a percentage of the parent's content box.
func WithWidthPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.style.Height = Fixed(cells)
	}
}

// WithHeightPercent sets height as a percentage of the parent's content box.
func WithHeightPercent(percent float64) Option {
	return func(e *Element) {
		e.style.Height = Percent(percent)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.style.Width = Fixed(width)
		e.style.Height = Fixed(height)
	}
}

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) Option {
	return func(e *Element) {
		e.style.MinWidth = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) Option {
	return func(e *Element) {
		e.style.MinHeight = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells.
func WithMaxWidth(cells int) Option {
	return func(e *Element) {
		e.style.MaxWidth = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells.
func WithMaxHeight(cells int) Option {
	return func(e *Element) {
		e.style.MaxHeight = Fixed(cells)
	}
}

// --- Flex container ---

// WithDirection sets the main axis for laying out children.
// Reverse directions flip child order only.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithJustify sets how children are distributed along the main axis.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.JustifyContent = j
	}
}

// WithAlign sets how children are positioned on the cross axis.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithGap sets the space between adjacent children on the main axis.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// WithDisplay sets the display mode. DisplayNone removes the element
// and its whole subtree from layout without affecting siblings.
func WithDisplay(d Display) Option {
	return func(e *Element) {
		e.style.Display = d
	}
}

// --- Flex item ---

// WithFlexGrow sets how much this element grows relative to siblings.
func WithFlexGrow(factor float64) Option {
	return func(e *Element) {
		e.style.FlexGrow = factor
	}
}

// WithFlexShrink sets how much this element shrinks relative to siblings.
func WithFlexShrink(factor float64) Option {
	return func(e *Element) {
		e.style.FlexShrink = factor
	}
}

// WithAlignSelf overrides the parent's AlignItems for this element.
func WithAlignSelf(a Align) Option {
	return func(e *Element) {
		e.style.AlignSelf = &a
	}
}

// --- Spacing ---

// WithPadding sets uniform padding on all sides.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeAll(cells)
	}
}

// WithPaddingTRBL sets padding using CSS order: Top, Right, Bottom, Left.
func WithPaddingTRBL(top, right, bottom, left int) Option {
	return func(e *Element) {
		e.style.Padding = EdgeTRBL(top, right, bottom, left)
	}
}

// WithMargin sets uniform margin on all sides.
func WithMargin(cells int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeAll(cells)
	}
}

// WithMarginTRBL sets margin using CSS order: Top, Right, Bottom, Left.
func WithMarginTRBL(top, right, bottom, left int) Option {
	return func(e *Element) {
		e.style.Margin = EdgeTRBL(top, right, bottom, left)
	}
}

// --- Visual ---

// WithBorder sets the border style and reserves one cell per edge in
// the box model.
func WithBorder(style BorderStyle) Option {
	return func(e *Element) {
		e.border = style
		if style == BorderNone {
			e.style.Border = Edges{}
		} else {
			e.style.Border = EdgeAll(1)
		}
	}
}

// WithBorderForeground sets the border color spec.
func WithBorderForeground(spec string) Option {
	return func(e *Element) {
		e.borderFg = spec
	}
}

// WithTitle sets a title rendered in the top border edge.
func WithTitle(title string) Option {
	return func(e *Element) {
		e.title = title
	}
}

// WithForeground sets the foreground color spec, resolved at paint time.
func WithForeground(spec string) Option {
	return func(e *Element) {
		e.fg = spec
	}
}

// WithBackground sets the background color spec, resolved at paint time.
func WithBackground(spec string) Option {
	return func(e *Element) {
		e.bg = spec
	}
}

// WithAttrs adds text attribute bits.
func WithAttrs(a Attr) Option {
	return func(e *Element) {
		e.attrs |= a
	}
}

// WithBold sets the bold attribute.
func WithBold() Option { return WithAttrs(AttrBold) }

// WithDim sets the dim attribute.
func WithDim() Option { return WithAttrs(AttrDim) }

// WithItalic sets the italic attribute.
func WithItalic() Option { return WithAttrs(AttrItalic) }

// WithUnderline sets the underline attribute.
func WithUnderline() Option { return WithAttrs(AttrUnderline) }

// WithReverse sets the reverse-video attribute.
func WithReverse() Option { return WithAttrs(AttrReverse) }

// WithStrikethrough sets the strikethrough attribute.
func WithStrikethrough() Option { return WithAttrs(AttrStrikethrough) }

// --- Text ---

// WithTextAlign sets text alignment within the content area.
func WithTextAlign(align TextAlign) Option {
	return func(e *Element) {
		e.textAlign = align
	}
}

// WithWrap enables word-wrapping of text content to the content box width.
func WithWrap() Option {
	return func(e *Element) {
		e.wrap = true
	}
}

// WithWrapAt enables word-wrapping at an explicit column budget. The
// wrapped line count then feeds the element's intrinsic height.
func WithWrapAt(width int) Option {
	return func(e *Element) {
		e.wrap = true
		e.wrapWidth = width
	}
}

// WithHardWrap makes wrapping break tokens longer than the budget
// mid-word instead of letting them overflow.
func WithHardWrap() Option {
	return func(e *Element) {
		e.wrap = true
		e.hardWrap = true
	}
}
