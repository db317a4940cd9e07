package tern

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func testCaps() Capabilities {
	return Capabilities{Colors: ColorTrue, TrueColor: true, Unicode: true}
}

func frameWithLines(width, height int, lines ...string) *Frame {
	f := NewFrame(width, height)
	for i, line := range lines {
		f.SetString(0, i, line, NewStyle())
	}
	return f
}

func TestRenderer_FirstRenderEmitsContent(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("first render output = %q, missing content", out)
	}
	if !strings.Contains(out, "\033[H") {
		t.Errorf("first render output = %q, missing cursor home", out)
	}
}

func TestRenderer_Idempotence(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	f := frameWithLines(10, 2, "hello", "world")
	if err := r.Render(f); err != nil {
		t.Fatalf("first Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("second Render() error: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("unchanged frame emitted %d bytes: %q", sink.Len(), sink.String())
	}
}

func TestRenderer_DiffMinimality(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(10, 3, "alpha", "beta", "gamma")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(frameWithLines(10, 3, "alpha", "BETA!", "gamma")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "BETA!") {
		t.Errorf("output = %q, missing changed line", out)
	}
	if strings.Contains(out, "alpha") || strings.Contains(out, "gamma") {
		t.Errorf("output = %q, contains unchanged line content", out)
	}
	if !strings.Contains(out, "\033[2;1H") {
		t.Errorf("output = %q, missing cursor move to changed line", out)
	}
}

func TestRenderer_AntiGhosting(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(20, 1, "a long first line")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(frameWithLines(20, 1, "short")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "short") {
		t.Errorf("output = %q, missing new content", out)
	}
	if !strings.Contains(out, "\033[K") {
		t.Errorf("output = %q, narrower line missing clear-to-end-of-line", out)
	}
}

func TestRenderer_NoClearWhenWider(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(20, 1, "short")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(frameWithLines(20, 1, "a much longer line")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(sink.String(), "\033[K") {
		t.Errorf("output = %q, wider line should not clear", sink.String())
	}
}

func TestRenderer_ShrinkClearsTail(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(10, 3, "one", "two", "three")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(frameWithLines(10, 1, "one")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "\033[2;1H\033[J") {
		t.Errorf("output = %q, missing clear-to-end-of-screen after shrink", out)
	}
}

func TestRenderer_EmptyFrameClearsEverything(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(10, 2, "one", "two")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.Render(NewFrame(0, 0)); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(sink.String(), "\033[1;1H\033[J") {
		t.Errorf("output = %q, empty frame should clear from the top", sink.String())
	}
}

func TestRenderer_SyncEmitsNothing(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	f := frameWithLines(10, 2, "hello", "world")
	r.Sync(f)
	if sink.Len() != 0 {
		t.Fatalf("Sync emitted %d bytes", sink.Len())
	}

	// The synced frame is the baseline: re-rendering it emits nothing.
	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("render after sync emitted %d bytes: %q", sink.Len(), sink.String())
	}
}

func TestRenderer_NonInteractive(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()), WithInteractive(false))

	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := sink.String()
	if strings.Contains(out, "\033[H") || strings.Contains(out, ";1H") {
		t.Errorf("non-interactive output = %q, contains cursor control", out)
	}
	if out != "hello\nworld\n" {
		t.Errorf("output = %q, want %q", out, "hello\nworld\n")
	}

	// Unchanged frames still emit nothing.
	sink.Reset()
	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("unchanged non-interactive render emitted %q", sink.String())
	}
}

type failingSink struct{ err error }

func (s failingSink) Write(p []byte) (int, error) { return 0, s.err }

func TestRenderer_SinkErrorSurfaced(t *testing.T) {
	sinkErr := errors.New("sink closed")
	r := NewRenderer(failingSink{err: sinkErr}, WithCapabilities(testCaps()))

	err := r.Render(frameWithLines(5, 1, "hi"))
	if err == nil {
		t.Fatal("Render() succeeded with failing sink")
	}
	if !errors.Is(err, sinkErr) {
		t.Errorf("Render() error = %v, want wrapped sink error", err)
	}
}

func TestRenderer_RenderFull(t *testing.T) {
	var sink bytes.Buffer
	r := NewRenderer(&sink, WithCapabilities(testCaps()))

	if err := r.Render(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	sink.Reset()
	if err := r.RenderFull(frameWithLines(10, 2, "hello", "world")); err != nil {
		t.Fatalf("RenderFull() error: %v", err)
	}

	out := sink.String()
	if !strings.Contains(out, "\033[H\033[J") {
		t.Errorf("output = %q, missing full clear", out)
	}
	if !strings.Contains(out, "hello") || !strings.Contains(out, "world") {
		t.Errorf("output = %q, missing re-emitted content", out)
	}
}

func TestRenderer_IndependentState(t *testing.T) {
	var sinkA, sinkB bytes.Buffer
	a := NewRenderer(&sinkA, WithCapabilities(testCaps()))
	b := NewRenderer(&sinkB, WithCapabilities(testCaps()))

	f := frameWithLines(10, 1, "shared")
	if err := a.Render(f); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Renderer b has its own baseline and must emit the full content.
	if err := b.Render(frameWithLines(10, 1, "shared")); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(sinkB.String(), "shared") {
		t.Errorf("independent renderer emitted %q, missing content", sinkB.String())
	}
}
