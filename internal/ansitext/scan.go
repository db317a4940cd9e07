package ansitext

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	esc = 0x1b
	bel = 0x07
)

// scanner walks a string as a sequence of tokens, where a token is either a
// complete escape sequence or a single grapheme cluster.
type scanner struct {
	src   string
	pos   int
	state int
}

func newScanner(s string) *scanner {
	return &scanner{src: s, state: -1}
}

// next returns the next token. isEscape reports whether the token is an
// escape sequence; width is the token's cell width (zero for escapes).
// ok is false once the input is exhausted.
func (s *scanner) next() (tok string, width int, isEscape bool, ok bool) {
	if s.pos >= len(s.src) {
		return "", 0, false, false
	}
	if s.src[s.pos] == esc {
		seq := scanEscape(s.src[s.pos:])
		s.pos += len(seq)
		s.state = -1
		return seq, 0, true, true
	}
	cluster, _, w, state := uniseg.FirstGraphemeClusterInString(s.src[s.pos:], s.state)
	s.pos += len(cluster)
	s.state = state
	return cluster, clusterWidth(cluster, w), false, true
}

// Scan calls fn for each token of s in order. A token is either a complete
// escape sequence (isEscape true, width zero) or a single grapheme cluster
// with its cell width. Scanning stops early if fn returns false.
func Scan(s string, fn func(tok string, width int, isEscape bool) bool) {
	sc := newScanner(s)
	for {
		tok, w, isEsc, ok := sc.next()
		if !ok {
			return
		}
		if !fn(tok, w, isEsc) {
			return
		}
	}
}

// scanEscape returns the escape sequence at the start of s, which must begin
// with ESC. CSI sequences run to a final byte in 0x40..0x7e, OSC sequences to
// BEL or ST. A malformed or truncated sequence is consumed to end of input.
func scanEscape(s string) string {
	if len(s) < 2 {
		return s
	}
	switch s[1] {
	case '[': // CSI
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return s[:i+1]
			}
		}
		return s
	case ']': // OSC
		for i := 2; i < len(s); i++ {
			if s[i] == bel {
				return s[:i+1]
			}
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return s[:i+2]
			}
		}
		return s
	default:
		// Two-byte sequence (ESC plus one char).
		return s[:2]
	}
}

// clusterWidth returns the cell width of a grapheme cluster. unisegWidth is
// the width uniseg computed while segmenting. A cluster containing U+FE0F
// (variation selector-16) always renders in emoji presentation and takes two
// cells; otherwise the width is the widest rune in the cluster.
func clusterWidth(cluster string, unisegWidth int) int {
	w := 0
	for _, r := range cluster {
		if r == 0xfe0f {
			return 2
		}
		if rw := runewidth.RuneWidth(r); rw > w {
			w = rw
		}
	}
	if unisegWidth > w {
		w = unisegWidth
	}
	return w
}
