package tern

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorLevel describes how many colors a terminal supports.
type ColorLevel int

const (
	// ColorNone indicates no color support.
	ColorNone ColorLevel = iota
	// Color16 indicates support for the 16 base ANSI colors.
	Color16
	// Color256 indicates support for the 256-color palette.
	Color256
	// ColorTrue indicates 24-bit true color support.
	ColorTrue
)

// Capabilities describes what the attached terminal can render.
type Capabilities struct {
	Colors    ColorLevel
	TrueColor bool
	Unicode   bool
	AltScreen bool
}

// DetectCapabilities determines terminal capabilities from the environment.
// Color detection defers to termenv (COLORTERM, TERM, NO_COLOR), with
// overrides for emulators that advertise true color through their own
// session variables. Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Colors:    Color16,
		Unicode:   true,
		AltScreen: true,
	}

	if termenv.EnvNoColor() {
		caps.Colors = ColorNone
	} else {
		switch termenv.EnvColorProfile() {
		case termenv.TrueColor:
			caps.Colors = ColorTrue
		case termenv.ANSI256:
			caps.Colors = Color256
		case termenv.ANSI:
			caps.Colors = Color16
		case termenv.Ascii:
			// Profile detection reports Ascii for any non-TTY output,
			// so fall back to reading the environment directly.
			caps.Colors = envColorLevel()
		}
	}

	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		caps.Colors = ColorNone
		caps.Unicode = false
		caps.AltScreen = false
	}

	caps.TrueColor = caps.Colors == ColorTrue
	return caps
}

// envColorLevel infers color support from environment variables alone.
func envColorLevel() ColorLevel {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorTrue
	}

	// Emulators that support true color but only announce themselves
	// through their own session variables.
	for _, v := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(v) != "" {
			return ColorTrue
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.Contains(term, "truecolor"):
		return ColorTrue
	case strings.Contains(term, "256color"):
		return Color256
	}
	return Color16
}

// SupportsColor reports whether the terminal can render the given color
// without downgrading. Literal colors are always passed through.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorDefault, ColorLiteral:
		return true
	case ColorANSI:
		if color.ANSI() < 16 {
			return c.Colors >= Color16
		}
		return c.Colors >= Color256
	case ColorRGB:
		return c.TrueColor
	}
	return false
}

// EffectiveColor downgrades a color to the closest one the terminal can
// render: RGB falls back to the 256 palette, then to the 16 base colors,
// then to the terminal default.
func (c Capabilities) EffectiveColor(color Color) Color {
	if c.SupportsColor(color) {
		return color
	}

	switch color.Type() {
	case ColorRGB:
		if c.Colors >= Color256 {
			return color.To256()
		}
		if c.Colors >= Color16 {
			return color.To16()
		}
		return DefaultColor()
	case ColorANSI:
		if c.Colors >= Color16 {
			return color.To16()
		}
		return DefaultColor()
	default:
		return color
	}
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	if c.AltScreen {
		parts = append(parts, "altscreen")
	}

	return strings.Join(parts, ", ")
}
