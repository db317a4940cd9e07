package tern

import (
	"os"
	"testing"
)

// testEnvHelper saves and restores environment variables for testing.
type testEnvHelper struct {
	saved map[string]string
}

func newTestEnvHelper() *testEnvHelper {
	return &testEnvHelper{saved: make(map[string]string)}
}

func (h *testEnvHelper) Set(key, value string) {
	if _, exists := h.saved[key]; !exists {
		h.saved[key] = os.Getenv(key)
	}
	os.Setenv(key, value)
}

func (h *testEnvHelper) Clear(key string) {
	if _, exists := h.saved[key]; !exists {
		h.saved[key] = os.Getenv(key)
	}
	os.Unsetenv(key)
}

func (h *testEnvHelper) Restore() {
	for key, value := range h.saved {
		if value == "" {
			os.Unsetenv(key)
		} else {
			os.Setenv(key, value)
		}
	}
}

func clearTermEnvVars(env *testEnvHelper) {
	env.Clear("TERM")
	env.Clear("COLORTERM")
	env.Clear("NO_COLOR")
	env.Clear("CLICOLOR")
	env.Clear("CLICOLOR_FORCE")
	env.Clear("WT_SESSION")
	env.Clear("ITERM_SESSION_ID")
	env.Clear("KITTY_WINDOW_ID")
	env.Clear("KONSOLE_VERSION")
	env.Clear("VTE_VERSION")
}

func TestDetectCapabilities(t *testing.T) {
	type tc struct {
		setup func(*testEnvHelper)
		want  ColorLevel
	}

	tests := map[string]tc{
		"bare env defaults to 16": {
			setup: func(env *testEnvHelper) {},
			want:  Color16,
		},
		"colorterm truecolor": {
			setup: func(env *testEnvHelper) {
				env.Set("COLORTERM", "truecolor")
			},
			want: ColorTrue,
		},
		"256color term": {
			setup: func(env *testEnvHelper) {
				env.Set("TERM", "xterm-256color")
			},
			want: Color256,
		},
		"windows terminal session": {
			setup: func(env *testEnvHelper) {
				env.Set("WT_SESSION", "some-guid")
			},
			want: ColorTrue,
		},
		"kitty session": {
			setup: func(env *testEnvHelper) {
				env.Set("KITTY_WINDOW_ID", "1")
			},
			want: ColorTrue,
		},
		"no_color wins": {
			setup: func(env *testEnvHelper) {
				env.Set("COLORTERM", "truecolor")
				env.Set("NO_COLOR", "1")
			},
			want: ColorNone,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnvHelper()
			defer env.Restore()
			clearTermEnvVars(env)
			tt.setup(env)

			caps := DetectCapabilities()
			if caps.Colors != tt.want {
				t.Errorf("DetectCapabilities().Colors = %v, want %v", caps.Colors, tt.want)
			}
		})
	}
}

func TestDetectCapabilities_DumbTerminal(t *testing.T) {
	env := newTestEnvHelper()
	defer env.Restore()
	clearTermEnvVars(env)
	env.Set("TERM", "dumb")

	caps := DetectCapabilities()
	if caps.Colors != ColorNone {
		t.Errorf("Colors = %v, want ColorNone", caps.Colors)
	}
	if caps.Unicode {
		t.Error("Unicode = true, want false for dumb terminal")
	}
	if caps.AltScreen {
		t.Error("AltScreen = true, want false for dumb terminal")
	}
}

func TestSupportsColor(t *testing.T) {
	caps16 := Capabilities{Colors: Color16}
	caps256 := Capabilities{Colors: Color256}
	capsTrue := Capabilities{Colors: ColorTrue, TrueColor: true}
	capsNone := Capabilities{Colors: ColorNone}

	if !caps16.SupportsColor(DefaultColor()) {
		t.Error("default color unsupported at 16 colors")
	}
	if !caps16.SupportsColor(ANSIColor(7)) {
		t.Error("base ANSI unsupported at 16 colors")
	}
	if caps16.SupportsColor(ANSIColor(200)) {
		t.Error("palette index 200 supported at 16 colors")
	}
	if !caps256.SupportsColor(ANSIColor(200)) {
		t.Error("palette index 200 unsupported at 256 colors")
	}
	if caps256.SupportsColor(RGBColor(1, 2, 3)) {
		t.Error("RGB supported without true color")
	}
	if !capsTrue.SupportsColor(RGBColor(1, 2, 3)) {
		t.Error("RGB unsupported with true color")
	}
	if capsNone.SupportsColor(ANSIColor(1)) {
		t.Error("ANSI supported with no color")
	}
	if !capsNone.SupportsColor(LiteralColor("38;5;1")) {
		t.Error("literal colors should always pass through")
	}
}

func TestEffectiveColor(t *testing.T) {
	type tc struct {
		caps Capabilities
		in   Color
		want Color
	}

	tests := map[string]tc{
		"rgb passes with truecolor": {
			caps: Capabilities{Colors: ColorTrue, TrueColor: true},
			in:   RGBColor(255, 0, 0),
			want: RGBColor(255, 0, 0),
		},
		"rgb downgrades to 256": {
			caps: Capabilities{Colors: Color256},
			in:   RGBColor(255, 0, 0),
			want: ANSIColor(196),
		},
		"rgb downgrades to 16": {
			caps: Capabilities{Colors: Color16},
			in:   RGBColor(205, 49, 49),
			want: ANSIColor(1),
		},
		"rgb drops with no color": {
			caps: Capabilities{Colors: ColorNone},
			in:   RGBColor(255, 0, 0),
			want: DefaultColor(),
		},
		"palette downgrades to 16": {
			caps: Capabilities{Colors: Color16},
			in:   ANSIColor(196),
			want: ANSIColor(9),
		},
		"ansi drops with no color": {
			caps: Capabilities{Colors: ColorNone},
			in:   ANSIColor(1),
			want: DefaultColor(),
		},
		"default untouched": {
			caps: Capabilities{Colors: ColorNone},
			in:   DefaultColor(),
			want: DefaultColor(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.caps.EffectiveColor(tt.in); !got.Equal(tt.want) {
				t.Errorf("EffectiveColor(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCapabilitiesString(t *testing.T) {
	caps := Capabilities{Colors: Color256, Unicode: true, AltScreen: true}
	want := "256-color, unicode, altscreen"
	if got := caps.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	caps = Capabilities{Colors: ColorNone}
	want = "no-color, ascii"
	if got := caps.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
