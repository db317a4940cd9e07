package tern

import "testing"

func TestTextWidth(t *testing.T) {
	tests := map[string]struct {
		in   string
		want int
	}{
		"ascii":      {"hello", 5},
		"mixed wide": {"Hi 你好", 7},
		"escapes":    {"\x1b[1mbold\x1b[0m", 4},
		"empty":      {"", 0},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := TextWidth(tc.in); got != tc.want {
				t.Errorf("TextWidth(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	got := WrapText("one two three", 5, false)
	if got != "one\ntwo\nthree" {
		t.Errorf("WrapText() = %q, want %q", got, "one\ntwo\nthree")
	}
}

func TestComposeHorizontal(t *testing.T) {
	// Each output line is the left block's columns before the split
	// followed by the right block's columns from the split on.
	got := ComposeHorizontal("abcd\nefgh", "WXYZ\nSTUV", 2)
	want := "abYZ\nefUV"
	if got != want {
		t.Errorf("ComposeHorizontal() = %q, want %q", got, want)
	}
}

func TestComposeVertical(t *testing.T) {
	got := ComposeVertical("top1\ntop2", "bot1\nbot2", 1)
	want := "top1\nbot2"
	if got != want {
		t.Errorf("ComposeVertical() = %q, want %q", got, want)
	}
}
