// Package layout computes integer flexbox layout for terminal cell grids.
//
// Elements implement [Layoutable]; [Calculate] walks the tree and stores an
// absolute [Rect] on every node. Row and column flow, justify and align
// modes, padding, margin, gap, min/max clamps, fixed, percentage, and
// intrinsic sizing are all handled here. The root tern package re-exports
// the types callers need to describe styles.
package layout
