package tern

// ElementKind distinguishes container boxes from text leaves.
type ElementKind int

const (
	// ElementBox is a flex container that lays out children.
	ElementBox ElementKind = iota
	// ElementText is a leaf holding styled text content.
	ElementText
)

// TextAlign specifies how text is aligned within its content area.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// Element is an immutable description of one piece of UI. Component
// functions produce a fresh tree every render tick; layout consumes it
// and the tree is discarded. Colors are carried as unresolved spec
// strings and parsed only when the element is painted.
type Element struct {
	kind     ElementKind
	children []*Element

	style LayoutStyle

	// Visual properties. fg/bg/borderFg hold color specs for ParseColor.
	fg, bg   string
	attrs    Attr
	border   BorderStyle
	borderFg string
	title    string

	// Text properties.
	text      string
	textAlign TextAlign
	wrap      bool
	hardWrap  bool
	wrapWidth int // explicit wrap constraint, 0 means use the content box
}

// Box creates a container element.
func Box(opts ...Option) *Element {
	e := &Element{
		kind:  ElementBox,
		style: DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text creates a text leaf. The content may span multiple lines and may
// contain SGR escape sequences, which count as zero width.
func Text(content string, opts ...Option) *Element {
	e := &Element{
		kind:  ElementText,
		style: DefaultLayoutStyle(),
		text:  content,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Kind returns whether the element is a box or a text leaf.
func (e *Element) Kind() ElementKind {
	return e.kind
}

// Children returns the element's children in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Content returns the text content of a text leaf.
func (e *Element) Content() string {
	return e.text
}

// LayoutStyle returns the element's layout properties.
func (e *Element) LayoutStyle() LayoutStyle {
	return e.style
}

// hasBorder reports whether the element draws any border.
func (e *Element) hasBorder() bool {
	return e.border != BorderNone
}
