package ansitext

import "strings"

// Lines splits a rendered block into its lines.
func Lines(block string) []string {
	if block == "" {
		return nil
	}
	return strings.Split(block, "\n")
}

// BlockWidth returns the width of the widest line in block.
func BlockWidth(block string) int {
	max := 0
	for _, line := range Lines(block) {
		if w := Width(line); w > max {
			max = w
		}
	}
	return max
}

// ComposeHorizontal joins two blocks at a split column: each output line is
// the left block's columns [0, split) followed by the right block's columns
// from split onward. Short lines are padded so the seam stays vertical.
func ComposeHorizontal(left, right string, split int) string {
	leftLines := Lines(left)
	rightLines := Lines(right)
	rightW := BlockWidth(right)
	n := len(leftLines)
	if len(rightLines) > n {
		n = len(rightLines)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		var l, r string
		if i < len(leftLines) {
			l = leftLines[i]
		}
		if i < len(rightLines) {
			r = rightLines[i]
		}
		out[i] = PadRight(Slice(l, 0, split), split) + Slice(r, split, rightW)
	}
	return strings.Join(out, "\n")
}

// ComposeVertical joins two blocks at a split row: the first split lines come
// from top, the rest from bottom (skipping bottom's first split lines).
func ComposeVertical(top, bottom string, split int) string {
	topLines := Lines(top)
	bottomLines := Lines(bottom)
	var out []string
	for i := 0; i < split && i < len(topLines); i++ {
		out = append(out, topLines[i])
	}
	for i := split; i < len(bottomLines); i++ {
		out = append(out, bottomLines[i])
	}
	return strings.Join(out, "\n")
}
