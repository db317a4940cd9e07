package ansitext

import "github.com/charmbracelet/x/ansi"

// Width returns the number of terminal cells s occupies when drawn. Escape
// sequences contribute nothing.
func Width(s string) int {
	sc := newScanner(s)
	total := 0
	for {
		_, w, _, ok := sc.next()
		if !ok {
			return total
		}
		total += w
	}
}

// Strip returns s with all escape sequences removed.
func Strip(s string) string {
	return ansi.Strip(s)
}
