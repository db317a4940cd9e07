package tern

import (
	"strconv"
	"strings"
)

const sgrResetSeq = "\x1b[0m"

// applySGR folds one escape sequence into the running style. Only SGR
// sequences are interpreted; anything else leaves the style untouched.
// A reset returns to base, the style of the surrounding element, rather
// than to the terminal default.
func applySGR(cur, base Style, seq string) Style {
	if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
		return cur
	}
	body := seq[2 : len(seq)-1]
	if body == "" {
		return base
	}

	params := strings.Split(body, ";")
	for i := 0; i < len(params); i++ {
		n, err := strconv.Atoi(params[i])
		if err != nil {
			return cur
		}
		switch {
		case n == 0:
			cur = base
		case n == 1:
			cur.Attrs |= AttrBold
		case n == 2:
			cur.Attrs |= AttrDim
		case n == 3:
			cur.Attrs |= AttrItalic
		case n == 4:
			cur.Attrs |= AttrUnderline
		case n == 5:
			cur.Attrs |= AttrBlink
		case n == 7:
			cur.Attrs |= AttrReverse
		case n == 9:
			cur.Attrs |= AttrStrikethrough
		case n == 22:
			cur.Attrs &^= AttrBold | AttrDim
		case n == 23:
			cur.Attrs &^= AttrItalic
		case n == 24:
			cur.Attrs &^= AttrUnderline
		case n == 25:
			cur.Attrs &^= AttrBlink
		case n == 27:
			cur.Attrs &^= AttrReverse
		case n == 29:
			cur.Attrs &^= AttrStrikethrough
		case n >= 30 && n <= 37:
			cur.Fg = ANSIColor(uint8(n - 30))
		case n == 38 || n == 48:
			c, skip, ok := parseExtendedColor(params[i:])
			if !ok {
				return cur
			}
			if n == 38 {
				cur.Fg = c
			} else {
				cur.Bg = c
			}
			i += skip
		case n == 39:
			cur.Fg = base.Fg
		case n >= 40 && n <= 47:
			cur.Bg = ANSIColor(uint8(n - 40))
		case n == 49:
			cur.Bg = base.Bg
		case n >= 90 && n <= 97:
			cur.Fg = ANSIColor(uint8(n - 90 + 8))
		case n >= 100 && n <= 107:
			cur.Bg = ANSIColor(uint8(n - 100 + 8))
		}
	}
	return cur
}

// parseExtendedColor parses the remainder of a 38/48 parameter group:
// "38;5;idx" or "38;2;r;g;b". skip is the number of extra parameters
// consumed beyond the leading 38/48.
func parseExtendedColor(params []string) (c Color, skip int, ok bool) {
	if len(params) < 2 {
		return Color{}, 0, false
	}
	switch params[1] {
	case "5":
		if len(params) < 3 {
			return Color{}, 0, false
		}
		idx, err := strconv.Atoi(params[2])
		if err != nil || idx < 0 || idx > 255 {
			return Color{}, 0, false
		}
		return ANSIColor(uint8(idx)), 2, true
	case "2":
		if len(params) < 5 {
			return Color{}, 0, false
		}
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.Atoi(params[2+i])
			if err != nil || v < 0 || v > 255 {
				return Color{}, 0, false
			}
			vals[i] = uint8(v)
		}
		return RGBColor(vals[0], vals[1], vals[2]), 4, true
	}
	return Color{}, 0, false
}

// colorParams returns the SGR parameters selecting c, downgraded to the
// terminal's capabilities. bg selects the background parameter space.
func colorParams(c Color, bg bool, caps Capabilities) string {
	c = caps.EffectiveColor(c)
	switch c.Type() {
	case ColorDefault:
		if bg {
			return "49"
		}
		return "39"
	case ColorLiteral:
		return c.Literal()
	case ColorANSI:
		idx := int(c.ANSI())
		switch {
		case idx < 8:
			if bg {
				return strconv.Itoa(40 + idx)
			}
			return strconv.Itoa(30 + idx)
		case idx < 16:
			if bg {
				return strconv.Itoa(100 + idx - 8)
			}
			return strconv.Itoa(90 + idx - 8)
		default:
			if bg {
				return "48;5;" + strconv.Itoa(idx)
			}
			return "38;5;" + strconv.Itoa(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		prefix := "38;2;"
		if bg {
			prefix = "48;2;"
		}
		return prefix + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b))
	}
	return ""
}

// sgrTransition returns the escape sequence switching the terminal from
// prev to next. Attribute removal has no per-attribute reliable off code
// across terminals, so losing an attribute resets and rebuilds.
func sgrTransition(prev, next Style, caps Capabilities) string {
	if prev.Equal(next) {
		return ""
	}
	if next.IsDefault() {
		return sgrResetSeq
	}

	var params []string
	rebuild := prev.Attrs&^next.Attrs != 0 ||
		(!prev.Fg.IsDefault() && next.Fg.IsDefault()) ||
		(!prev.Bg.IsDefault() && next.Bg.IsDefault())

	if rebuild {
		params = append(params, "0")
		prev = NewStyle()
	}

	for _, ap := range attrParams {
		if next.Attrs&ap.attr != 0 && prev.Attrs&ap.attr == 0 {
			params = append(params, ap.param)
		}
	}
	if !next.Fg.Equal(prev.Fg) {
		params = append(params, colorParams(next.Fg, false, caps))
	}
	if !next.Bg.Equal(prev.Bg) {
		params = append(params, colorParams(next.Bg, true, caps))
	}

	if len(params) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}
