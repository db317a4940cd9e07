package ansitext

import "strings"

// PadRight extends s with spaces on the right to width cells. Strings already
// at or beyond width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft extends s with spaces on the left to width cells.
func PadLeft(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// PadCenter centers s in width cells, with the extra cell of an odd gap going
// to the right.
func PadCenter(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
