package tern

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tern-tui/tern/internal/ansitext"
	"github.com/tern-tui/tern/internal/debug"
)

// Renderer converts painted frames into terminal bytes, emitting only
// the lines that changed since the previous render. Each renderer owns
// its previous-frame state; renderers never share it.
type Renderer struct {
	sink        io.Writer
	interactive bool
	caps        Capabilities

	// Previous frame, as emitted: exact line text and visible widths.
	prevLines  []string
	prevWidths []int
	rendered   bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithInteractive sets whether the sink is an interactive terminal.
// Non-interactive renderers skip all cursor-control bytes and stream
// content only.
func WithInteractive(interactive bool) RendererOption {
	return func(r *Renderer) {
		r.interactive = interactive
	}
}

// WithCapabilities overrides detected terminal capabilities.
func WithCapabilities(caps Capabilities) RendererOption {
	return func(r *Renderer) {
		r.caps = caps
	}
}

// NewRenderer creates a renderer writing to sink. By default the sink
// is treated as interactive with capabilities detected from the
// environment.
func NewRenderer(sink io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		sink:        sink,
		interactive: true,
		caps:        DetectCapabilities(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Capabilities returns the capabilities the renderer downgrades colors to.
func (r *Renderer) Capabilities() Capabilities {
	return r.caps
}

// Render diffs the frame against the previously emitted one and writes
// the minimal update. Unchanged lines emit zero bytes. A changed line
// that got visibly narrower is followed by clear-to-end-of-line; a
// frame with fewer lines than before ends with clear-to-end-of-screen.
// An empty frame clears everything. Sink errors are surfaced, never
// retried; renderer state advances only after a successful write.
func (r *Renderer) Render(f *Frame) error {
	lines := f.Lines(r.caps)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = ansitext.Width(line)
	}

	var buf bytes.Buffer
	if r.interactive {
		r.diffInteractive(&buf, lines, widths)
	} else {
		r.diffContent(&buf, lines)
	}

	if buf.Len() > 0 {
		if _, err := r.sink.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
		debug.Log("render: %d lines, %d bytes", len(lines), buf.Len())
	}

	r.prevLines = lines
	r.prevWidths = widths
	r.rendered = true
	return nil
}

// diffInteractive emits cursor-addressed updates for changed lines only.
func (r *Renderer) diffInteractive(buf *bytes.Buffer, lines []string, widths []int) {
	// Home the cursor so line-relative writes stay anchored.
	if len(lines) != len(r.prevLines) || !r.rendered || anyChanged(lines, r.prevLines) {
		buf.WriteString("\033[H")
	}

	for i, line := range lines {
		if i < len(r.prevLines) && r.prevLines[i] == line {
			continue
		}
		fmt.Fprintf(buf, "\033[%d;1H", i+1)
		buf.WriteString(line)
		if i < len(r.prevWidths) && widths[i] < r.prevWidths[i] {
			buf.WriteString("\033[K")
		}
	}

	if len(lines) < len(r.prevLines) {
		fmt.Fprintf(buf, "\033[%d;1H\033[J", len(lines)+1)
	}
}

// diffContent streams the whole frame as plain content, once per change.
func (r *Renderer) diffContent(buf *bytes.Buffer, lines []string) {
	if r.rendered && len(lines) == len(r.prevLines) && !anyChanged(lines, r.prevLines) {
		return
	}
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
}

func anyChanged(lines, prev []string) bool {
	if len(lines) != len(prev) {
		return true
	}
	for i := range lines {
		if lines[i] != prev[i] {
			return true
		}
	}
	return false
}

// RenderFull erases the previously known output span and re-emits the
// entire frame. Used as a safety fallback after resize or external
// terminal corruption.
func (r *Renderer) RenderFull(f *Frame) error {
	lines := f.Lines(r.caps)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = ansitext.Width(line)
	}

	var buf bytes.Buffer
	if r.interactive {
		buf.WriteString("\033[H\033[J")
		for i, line := range lines {
			fmt.Fprintf(&buf, "\033[%d;1H", i+1)
			buf.WriteString(line)
		}
	} else {
		for _, line := range lines {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	if buf.Len() > 0 {
		if _, err := r.sink.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}

	r.prevLines = lines
	r.prevWidths = widths
	r.rendered = true
	return nil
}

// Sync registers f as the baseline frame without emitting any bytes.
// Use it to adopt output another writer already produced.
func (r *Renderer) Sync(f *Frame) {
	lines := f.Lines(r.caps)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = ansitext.Width(line)
	}
	r.prevLines = lines
	r.prevWidths = widths
	r.rendered = true
}

// Reset forgets the baseline; the next Render re-emits every line.
func (r *Renderer) Reset() {
	r.prevLines = nil
	r.prevWidths = nil
	r.rendered = false
}
