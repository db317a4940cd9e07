package ansitext

import "strings"

// sgrState tracks the SGR sequences that are currently in effect so a cut or
// wrapped string can reopen them. Non-SGR escapes are ignored.
type sgrState struct {
	seqs []string
}

// observe feeds one escape sequence through the tracker.
func (st *sgrState) observe(seq string) {
	if len(seq) < 3 || seq[1] != '[' || seq[len(seq)-1] != 'm' {
		return
	}
	params := seq[2 : len(seq)-1]
	if params == "" || params == "0" {
		st.seqs = st.seqs[:0]
		return
	}
	if rest, ok := strings.CutPrefix(params, "0;"); ok {
		st.seqs = st.seqs[:0]
		st.seqs = append(st.seqs, "\x1b["+rest+"m")
		return
	}
	st.seqs = append(st.seqs, seq)
}

// active reports whether any style is in effect.
func (st *sgrState) active() bool { return len(st.seqs) > 0 }

// prefix returns the sequences that reopen the tracked style.
func (st *sgrState) prefix() string { return strings.Join(st.seqs, "") }

const sgrReset = "\x1b[0m"
