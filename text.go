// text.go re-exports the ANSI-aware text primitives from
// internal/ansitext for callers composing their own strings.
package tern

import "github.com/tern-tui/tern/internal/ansitext"

// TextWidth returns the visible cell width of s. Escape sequences count
// as zero; wide clusters count as two.
func TextWidth(s string) int {
	return ansitext.Width(s)
}

// StripANSI removes escape sequences from s, leaving printable text.
func StripANSI(s string) string {
	return ansitext.Strip(s)
}

// SliceText cuts s to the visible-width range [start, end). Style state
// active at the cut point is reopened at the slice start and reset at
// the boundary, so the result renders identically to cutting the fully
// rendered string.
func SliceText(s string, start, end int) string {
	return ansitext.Slice(s, start, end)
}

// TruncateText cuts s to at most width visible cells.
func TruncateText(s string, width int) string {
	return ansitext.Truncate(s, width)
}

// PadRight pads s with spaces to the given visible width.
func PadRight(s string, width int) string {
	return ansitext.PadRight(s, width)
}

// PadLeft left-pads s with spaces to the given visible width.
func PadLeft(s string, width int) string {
	return ansitext.PadLeft(s, width)
}

// PadCenter centers s within the given visible width.
func PadCenter(s string, width int) string {
	return ansitext.PadCenter(s, width)
}

// WrapText word-wraps s to the column budget, preserving explicit line
// breaks and reopening active style state on each produced line. With
// hardBreak, tokens wider than the budget split mid-cluster instead of
// overflowing.
func WrapText(s string, budget int, hardBreak bool) string {
	return ansitext.Wrap(s, budget, hardBreak)
}

// ComposeHorizontal merges two multi-line blocks side by side at the
// given split column: the left block occupies [0, split) and the right
// block starts at split.
func ComposeHorizontal(left, right string, split int) string {
	return ansitext.ComposeHorizontal(left, right, split)
}

// ComposeVertical merges two multi-line blocks at the given split row:
// rows of top above the split, rows of bottom from it on.
func ComposeVertical(top, bottom string, split int) string {
	return ansitext.ComposeVertical(top, bottom, split)
}
