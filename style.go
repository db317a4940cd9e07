package tern

// Attr is a bitfield of text attributes.
type Attr uint8

const (
	AttrNone Attr = 0
	// AttrBold makes text bold/bright.
	AttrBold Attr = 1 << iota
	// AttrDim makes text dimmed/faint.
	AttrDim
	// AttrItalic makes text italic.
	AttrItalic
	// AttrUnderline underlines the text.
	AttrUnderline
	// AttrBlink makes text blink (rarely supported).
	AttrBlink
	// AttrReverse swaps foreground and background colors.
	AttrReverse
	// AttrStrikethrough draws a line through the text.
	AttrStrikethrough
)

// attrParams maps each attribute bit to its SGR parameter.
var attrParams = []struct {
	attr  Attr
	param string
}{
	{AttrBold, "1"},
	{AttrDim, "2"},
	{AttrItalic, "3"},
	{AttrUnderline, "4"},
	{AttrBlink, "5"},
	{AttrReverse, "7"},
	{AttrStrikethrough, "9"},
}

// Style combines text attributes with foreground and background colors.
// The zero value is default styling: no attributes, terminal default colors.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default Style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy of the style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy of the style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// WithAttrs returns a copy of the style with the given attribute bits added.
func (s Style) WithAttrs(a Attr) Style {
	s.Attrs |= a
	return s
}

// Bold returns a copy of the style with the bold attribute set.
func (s Style) Bold() Style { return s.WithAttrs(AttrBold) }

// Dim returns a copy of the style with the dim attribute set.
func (s Style) Dim() Style { return s.WithAttrs(AttrDim) }

// Italic returns a copy of the style with the italic attribute set.
func (s Style) Italic() Style { return s.WithAttrs(AttrItalic) }

// Underline returns a copy of the style with the underline attribute set.
func (s Style) Underline() Style { return s.WithAttrs(AttrUnderline) }

// Blink returns a copy of the style with the blink attribute set.
func (s Style) Blink() Style { return s.WithAttrs(AttrBlink) }

// Reverse returns a copy of the style with the reverse attribute set.
func (s Style) Reverse() Style { return s.WithAttrs(AttrReverse) }

// Strikethrough returns a copy of the style with the strikethrough attribute set.
func (s Style) Strikethrough() Style { return s.WithAttrs(AttrStrikethrough) }

// Equal reports whether both styles are identical.
func (s Style) Equal(other Style) bool {
	return s.Fg.Equal(other.Fg) && s.Bg.Equal(other.Bg) && s.Attrs == other.Attrs
}

// HasAttr reports whether all of the given attribute bits are set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// IsDefault reports whether the style is the zero style.
func (s Style) IsDefault() bool {
	return s.Attrs == AttrNone && s.Fg.IsDefault() && s.Bg.IsDefault()
}
