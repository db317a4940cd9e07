package ansitext

import (
	"strings"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"cjk", "Hi 你好", 7},
		{"emoji", "👍", 2},
		{"vs16 emoji", "☁️", 2},
		{"combining mark", "é", 1},
		{"sgr ignored", "\x1b[31mred\x1b[0m", 3},
		{"osc ignored", "\x1b]0;title\x07abc", 3},
		{"mixed", "\x1b[1ma你\x1b[0mb", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.in); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrip(t *testing.T) {
	in := "\x1b[31mhot\x1b[0m \x1b]8;;x\x07link\x1b]8;;\x07"
	if got := Strip(in); got != "hot link" {
		t.Errorf("Strip = %q, want %q", got, "hot link")
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		name             string
		in               string
		start, end       int
		want             string
	}{
		{"plain middle", "abcdef", 1, 4, "bcd"},
		{"past end", "abc", 0, 10, "abc"},
		{"empty range", "abc", 2, 2, ""},
		{"wide straddles start", "你好", 1, 4, " 好"},
		{"wide straddles end", "你好", 0, 3, "你 "},
		{"keeps styles", "\x1b[31mabc\x1b[0mdef", 0, 4, "\x1b[31mabc\x1b[0md"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slice(tt.in, tt.start, tt.end); got != tt.want {
				t.Errorf("Slice(%q, %d, %d) = %q, want %q", tt.in, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSliceReopensStyle(t *testing.T) {
	in := "\x1b[31mredred\x1b[0m"
	got := Slice(in, 3, 6)
	if !strings.HasPrefix(got, "\x1b[31m") {
		t.Errorf("slice inside styled run must reopen the style, got %q", got)
	}
	if !strings.Contains(got, "red") {
		t.Errorf("slice lost content, got %q", got)
	}
}

func TestSliceClosesStyleAtBoundary(t *testing.T) {
	in := "\x1b[31mredred"
	got := Slice(in, 0, 3)
	if !strings.HasSuffix(got, sgrReset) {
		t.Errorf("slice ending inside styled run must reset, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("short string must pass through, got %q", got)
	}
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate = %q, want %q", got, "hel")
	}
	if got := Truncate("你好", 3); got != "你 " {
		t.Errorf("wide truncate = %q, want %q", got, "你 ")
	}
}

func TestPad(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadLeft("ab", 5); got != "   ab" {
		t.Errorf("PadLeft = %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter = %q", got)
	}
	styled := "\x1b[32mok\x1b[0m"
	if got := PadRight(styled, 4); got != styled+"  " {
		t.Errorf("PadRight must not disturb styles, got %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Errorf("overlong string must pass through, got %q", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		hard  bool
		want  []string
	}{
		{"fits", "hello world", 20, false, []string{"hello world"}},
		{"simple break", "hello world", 6, false, []string{"hello", "world"}},
		{"preserves newline", "a\nb c", 5, false, []string{"a", "b c"}},
		{"overlong soft", "abcdefgh xy", 4, false, []string{"abcdefgh", "xy"}},
		{"overlong hard", "abcdefgh", 3, true, []string{"abc", "def", "gh"}},
		{"wide aware", "你好 世界", 4, false, []string{"你好", "世界"}},
		{"double space kept", "a  b", 10, false, []string{"a  b"}},
		{"leading indent kept", "  ab cd", 10, false, []string{"  ab cd"}},
		{"gap dropped at break", "aa  bb", 4, false, []string{"aa", "bb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(Wrap(tt.in, tt.limit, tt.hard), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap(%q, %d) = %q, want %q", tt.in, tt.limit, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapReopensStyleAcrossLines(t *testing.T) {
	got := Wrap("\x1b[31maaa bbb\x1b[0m", 3, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], sgrReset) {
		t.Errorf("first line must close the open style, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "\x1b[31m") {
		t.Errorf("second line must reopen the style, got %q", lines[1])
	}
}

func TestWrapKeepsStyleAcrossExplicitBreaks(t *testing.T) {
	got := Wrap("\x1b[31maaa bbb\nccc ddd\x1b[0m", 4, false)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %q", lines)
	}
	// The style opened before the explicit newline stays in force: every
	// line reopens it, and every line but the last closes it.
	for i, line := range lines {
		if !strings.HasPrefix(line, "\x1b[31m") {
			t.Errorf("line %d = %q, must reopen the style", i, line)
		}
	}
	for i, line := range lines[:3] {
		if !strings.HasSuffix(line, sgrReset) {
			t.Errorf("line %d = %q, must close the open style", i, line)
		}
	}
	if lines[3] != "\x1b[31mddd\x1b[0m" {
		t.Errorf("last line = %q, want %q", lines[3], "\x1b[31mddd\x1b[0m")
	}
}

func TestComposeHorizontal(t *testing.T) {
	left := "aaaa\naaaa"
	right := "bbbb\nbbbb"
	got := ComposeHorizontal(left, right, 2)
	want := "aabb\naabb"
	if got != want {
		t.Errorf("ComposeHorizontal = %q, want %q", got, want)
	}
}

func TestComposeHorizontalUnevenHeights(t *testing.T) {
	got := ComposeHorizontal("aaaa", "bbbb\nbbbb", 2)
	want := "aabb\n  bb"
	if got != want {
		t.Errorf("ComposeHorizontal = %q, want %q", got, want)
	}
}

func TestComposeVertical(t *testing.T) {
	got := ComposeVertical("t1\nt2\nt3", "b1\nb2\nb3", 1)
	want := "t1\nb2\nb3"
	if got != want {
		t.Errorf("ComposeVertical = %q, want %q", got, want)
	}
}

func TestScanEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"csi", "\x1b[31mrest", "\x1b[31m"},
		{"csi multiparam", "\x1b[1;38;2;255;0;0mrest", "\x1b[1;38;2;255;0;0m"},
		{"osc bel", "\x1b]0;title\x07rest", "\x1b]0;title\x07"},
		{"osc st", "\x1b]8;;u\x1b\\rest", "\x1b]8;;u\x1b\\"},
		{"bare two byte", "\x1b7rest", "\x1b7"},
		{"truncated", "\x1b[31", "\x1b[31"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scanEscape(tt.in); got != tt.want {
				t.Errorf("scanEscape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSGRState(t *testing.T) {
	var st sgrState
	st.observe("\x1b[31m")
	st.observe("\x1b[1m")
	if got := st.prefix(); got != "\x1b[31m\x1b[1m" {
		t.Errorf("prefix = %q", got)
	}
	st.observe("\x1b[0m")
	if st.active() {
		t.Error("reset must clear state")
	}
	st.observe("\x1b[0;32m")
	if got := st.prefix(); got != "\x1b[32m" {
		t.Errorf("reset-then-set prefix = %q", got)
	}
}
