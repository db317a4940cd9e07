// Package ansitext implements ANSI-aware text primitives: visible-width
// measurement, slicing, padding, wrapping, and block compositing.
//
// All widths are terminal cell counts: escape sequences measure zero, wide
// (CJK/emoji) grapheme clusters measure two, combining marks measure zero.
// Operations that cut or wrap styled text reopen the SGR state that was
// active at the cut point, so the output renders identically to cutting the
// fully drawn string.
package ansitext
