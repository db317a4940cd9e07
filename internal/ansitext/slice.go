package ansitext

import "strings"

// Slice returns the region of s covering cell columns [start, end). Styles
// active at the start column are reopened at the front of the result, and any
// style still open at the end column is closed with a reset. A wide cluster
// straddling either boundary is replaced by spaces so the result is exactly
// end-start cells wide when s extends that far.
func Slice(s string, start, end int) string {
	if end <= start {
		return ""
	}
	var (
		b       strings.Builder
		st      sgrState
		pos     int
		started bool
	)
	open := func() {
		if !started {
			b.WriteString(st.prefix())
			started = true
		}
	}
	sc := newScanner(s)
	for {
		tok, w, isEscape, ok := sc.next()
		if !ok {
			break
		}
		if isEscape {
			st.observe(tok)
			if started {
				b.WriteString(tok)
			}
			continue
		}
		switch {
		case pos+w <= start:
			// Entirely before the slice.
		case pos < start:
			// Straddles the start boundary.
			open()
			b.WriteString(strings.Repeat(" ", pos+w-start))
		case pos+w <= end:
			open()
			b.WriteString(tok)
		case pos < end:
			// Straddles the end boundary.
			open()
			b.WriteString(strings.Repeat(" ", end-pos))
		}
		pos += w
		if pos >= end {
			break
		}
	}
	if started && st.active() {
		b.WriteString(sgrReset)
	}
	return b.String()
}

// Truncate returns s cut to at most width cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(s) <= width {
		return s
	}
	return Slice(s, 0, width)
}
