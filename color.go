package tern

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
	// ColorLiteral carries raw SGR parameters verbatim.
	ColorLiteral
)

// Color represents a terminal color. The zero value is the terminal default.
//
// Colors are normally produced from string specs by ParseColor during
// painting; element construction never resolves colors.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index. For RGB: r, g, b hold components.
	r, g, b uint8
	// For literal colors: the raw SGR parameter string.
	lit string
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{typ: ColorDefault}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// LiteralColor returns a Color whose SGR parameters are emitted verbatim.
// The caller is responsible for the params being valid for the position
// (foreground vs background) they are used in.
func LiteralColor(params string) Color {
	return Color{typ: ColorLiteral, lit: params}
}

// HexColor parses "#RRGGBB" or "#RGB" into an RGB color.
func HexColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// namedColors maps color names to their ANSI palette entries.
var namedColors = map[string]Color{
	"black":   ANSIColor(0),
	"red":     ANSIColor(1),
	"green":   ANSIColor(2),
	"yellow":  ANSIColor(3),
	"blue":    ANSIColor(4),
	"magenta": ANSIColor(5),
	"cyan":    ANSIColor(6),
	"white":   ANSIColor(7),
	"gray":    ANSIColor(8),
	"grey":    ANSIColor(8),

	"brightblack":   ANSIColor(8),
	"brightred":     ANSIColor(9),
	"brightgreen":   ANSIColor(10),
	"brightyellow":  ANSIColor(11),
	"brightblue":    ANSIColor(12),
	"brightmagenta": ANSIColor(13),
	"brightcyan":    ANSIColor(14),
	"brightwhite":   ANSIColor(15),

	"orange": RGBColor(255, 165, 0),
	"purple": RGBColor(128, 0, 128),
	"pink":   RGBColor(255, 192, 203),
	"teal":   ANSIColor(6),
	"silver": RGBColor(192, 192, 192),
}

// ParseColor resolves a color spec string into a Color. Accepted forms:
//
//	""            terminal default
//	"default"     terminal default
//	"red"         named color
//	"#fa0"        3-digit hex
//	"#ffaa00"     6-digit hex
//	"rgb(r,g,b)"  decimal RGB triple
//	"123"         ANSI 256 palette index
//
// Anything else passes through as literal SGR parameters, so callers can
// hand raw codes straight to the terminal.
func ParseColor(spec string) Color {
	s := strings.TrimSpace(strings.ToLower(spec))
	if s == "" || s == "default" || s == "none" {
		return DefaultColor()
	}
	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "#") {
		if c, err := HexColor(s); err == nil {
			return c
		}
		return DefaultColor()
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		if c, ok := parseRGBFunc(s[4 : len(s)-1]); ok {
			return c
		}
		return DefaultColor()
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return ANSIColor(uint8(n))
	}
	return LiteralColor(spec)
}

func parseRGBFunc(args string) (Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return Color{}, false
	}
	var vals [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return Color{}, false
		}
		vals[i] = uint8(n)
	}
	return RGBColor(vals[0], vals[1], vals[2]), true
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault reports whether this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Literal returns the raw SGR parameters of a literal color, or "".
func (c Color) Literal() string {
	return c.lit
}

// Equal reports whether both colors are identical.
func (c Color) Equal(other Color) bool {
	if c.typ != other.typ {
		return false
	}
	switch c.typ {
	case ColorDefault:
		return true
	case ColorANSI:
		return c.r == other.r
	case ColorRGB:
		return c.r == other.r && c.g == other.g && c.b == other.b
	case ColorLiteral:
		return c.lit == other.lit
	}
	return false
}

// To256 approximates an RGB color to the nearest ANSI 256 palette entry
// using the 6x6x6 color cube (16-231) plus the grayscale ramp (232-255).
// Non-RGB colors pass through unchanged.
func (c Color) To256() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		// The cube's corners beat the ramp at the extremes.
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// To16 approximates a color to the nearest of the 16 base ANSI colors,
// measured in Lab space. ANSI indices above 15 are first expanded to RGB.
// Default and literal colors pass through unchanged.
func (c Color) To16() Color {
	switch c.typ {
	case ColorDefault, ColorLiteral:
		return c
	case ColorANSI:
		if c.r < 16 {
			return c
		}
	}

	r, g, b := c.ToRGBValues()
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := 0
	bestDist := -1.0
	for i, rgb := range ansi16RGB {
		candidate := colorful.Color{
			R: float64(rgb[0]) / 255,
			G: float64(rgb[1]) / 255,
			B: float64(rgb[2]) / 255,
		}
		d := target.DistanceLab(candidate)
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return ANSIColor(uint8(best))
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16RGB maps ANSI colors 0-15 to approximate RGB values.
// These are typical terminal palette values; actual values vary by terminal.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},       // 0: Black
	{205, 49, 49},   // 1: Red
	{13, 188, 121},  // 2: Green
	{229, 229, 16},  // 3: Yellow
	{36, 114, 200},  // 4: Blue
	{188, 63, 188},  // 5: Magenta
	{17, 168, 205},  // 6: Cyan
	{229, 229, 229}, // 7: White
	{102, 102, 102}, // 8: Bright Black (Gray)
	{241, 76, 76},   // 9: Bright Red
	{35, 209, 139},  // 10: Bright Green
	{245, 245, 67},  // 11: Bright Yellow
	{59, 142, 234},  // 12: Bright Blue
	{214, 112, 214}, // 13: Bright Magenta
	{41, 184, 219},  // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI palette entries are expanded to their typical RGB values; default
// and literal colors report black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			// 6x6x6 cube: index = 16 + 36r + 6g + b with components 0-5.
			idx -= 16
			cube := func(v uint8) uint8 {
				if v == 0 {
					return 0
				}
				return 55 + v*40
			}
			return cube(idx / 36), cube((idx % 36) / 6), cube(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// Luminance returns the relative luminance of the color (0.0-1.0)
// using the W3C formula. Default colors report 0 (assumed dark).
func (c Color) Luminance() float64 {
	if c.typ == ColorDefault || c.typ == ColorLiteral {
		return 0.0
	}
	r, g, b := c.ToRGBValues()
	cc := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	rl, gl, bl := cc.LinearRgb()
	return 0.2126*rl + 0.7152*gl + 0.0722*bl
}

// IsLight reports whether the color is perceptually light.
func (c Color) IsLight() bool {
	return c.Luminance() > 0.2
}
