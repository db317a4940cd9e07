package ansitext

import "strings"

// Wrap breaks s into lines of at most limit cells, splitting at spaces.
// Explicit newlines in s are preserved, and a style left open at one is
// closed there and reopened on the next line. Runs of spaces between words
// keep their width, as does leading indentation; spaces swallowed by a wrap
// break or trailing at the end of a line are dropped. A word wider than
// limit overflows its line unless hardBreak is set, in which case it is
// split mid-word at the limit. Each output line is self-contained: styles
// open at a break are closed at the end of the line and reopened at the
// start of the next.
func Wrap(s string, limit int, hardBreak bool) string {
	if limit <= 0 {
		return s
	}
	var (
		out []string
		st  sgrState
	)
	for _, para := range strings.Split(s, "\n") {
		out = append(out, wrapParagraph(para, limit, hardBreak, &st)...)
	}
	return strings.Join(out, "\n")
}

// wrapWord is one space-delimited token plus the width of the space run
// that preceded it (the first word's gap is the line's indentation).
type wrapWord struct {
	text  string
	width int
	gap   int
}

// wrapParagraph wraps a single newline-free segment. The SGR state is
// shared across paragraphs so styles survive explicit breaks.
func wrapParagraph(para string, limit int, hardBreak bool, st *sgrState) []string {
	words := splitWords(para)
	var (
		lines []string
		line  strings.Builder
		lineW int
		broke bool
	)
	line.WriteString(st.prefix())
	flush := func() {
		text := line.String()
		if st.active() {
			text += sgrReset
		}
		lines = append(lines, text)
		line.Reset()
		line.WriteString(st.prefix())
		lineW = 0
		broke = true
	}
	place := func(w wrapWord) {
		// A gap survives inside a line and as leading indentation, but
		// not across a wrap break.
		if w.gap > 0 && (lineW > 0 || !broke) {
			line.WriteString(strings.Repeat(" ", w.gap))
			lineW += w.gap
		}
		line.WriteString(w.text)
		lineW += w.width
	}
	for _, w := range words {
		if hardBreak && w.width > limit {
			for w.width > limit {
				if lineW > 0 {
					flush()
				}
				head := Slice(w.text, 0, limit)
				tail := Slice(w.text, limit, w.width)
				place(wrapWord{text: head, width: limit})
				trackEscapes(st, head)
				flush()
				w = wrapWord{text: tail, width: w.width - limit}
			}
		}
		if lineW > 0 && lineW+w.gap+w.width > limit {
			flush()
		}
		place(w)
		trackEscapes(st, w.text)
	}
	lines = append(lines, func() string {
		text := line.String()
		if st.active() {
			text += sgrReset
		}
		return text
	}())
	return lines
}

// splitWords splits a single line into space-separated words, keeping escape
// sequences attached to the word they precede or follow and recording the
// width of each inter-word space run.
func splitWords(s string) []wrapWord {
	var (
		words      []wrapWord
		cur        strings.Builder
		curW       int
		curGap     int
		pendingGap int
	)
	finish := func() {
		if cur.Len() > 0 {
			words = append(words, wrapWord{text: cur.String(), width: curW, gap: curGap})
			cur.Reset()
			curW = 0
		}
	}
	sc := newScanner(s)
	for {
		tok, w, isEscape, ok := sc.next()
		if !ok {
			break
		}
		if !isEscape && tok == " " {
			finish()
			pendingGap++
			continue
		}
		if cur.Len() == 0 {
			curGap = pendingGap
			pendingGap = 0
		}
		cur.WriteString(tok)
		curW += w
	}
	finish()
	return words
}

func trackEscapes(st *sgrState, s string) {
	sc := newScanner(s)
	for {
		tok, _, isEscape, ok := sc.next()
		if !ok {
			return
		}
		if isEscape {
			st.observe(tok)
		}
	}
}
