package tern

import (
	"fmt"
	"io"
	"os"

	"github.com/tern-tui/tern/internal/debug"
)

// Component produces the element tree for one render tick. It runs
// inside an effect, so any signal it reads becomes a dependency and a
// later write to that signal re-renders the app.
type Component func() *Element

// App wires the signal graph to the renderer: it re-invokes the root
// component whenever a dependency changes, lays the tree out against
// the current dimensions, paints a fresh frame, and hands it to the
// renderer.
type App struct {
	rt        *Runtime
	renderer  *Renderer
	component Component
	cache     *MeasureCache

	width  *Signal[int]
	height *Signal[int]

	scope   *Owner
	effect  *Effect
	mounted bool

	// Last resolved geometry, exposed for introspection and tests.
	tree *RenderNode
}

// AppOption configures an App.
type AppOption func(*App)

// WithOutput directs rendering to the given sink instead of stdout.
// The sink is probed for interactivity when it is an *os.File.
func WithOutput(w io.Writer) AppOption {
	return func(a *App) {
		interactive := false
		if f, ok := w.(*os.File); ok {
			interactive = IsTerminal(f)
		}
		a.renderer = NewRenderer(w, WithInteractive(interactive))
	}
}

// WithRenderer supplies a fully configured renderer.
func WithRenderer(r *Renderer) AppOption {
	return func(a *App) {
		a.renderer = r
	}
}

// WithAppSize fixes the initial dimensions instead of querying the
// terminal. Pass -1 for a dimension to size to content.
func WithAppSize(width, height int) AppOption {
	return func(a *App) {
		a.width.Set(width)
		a.height.Set(height)
	}
}

// NewApp creates an app rendering the given component. By default it
// writes to stdout and sizes to the attached terminal, falling back to
// 80x24 when stdout is not a terminal.
func NewApp(component Component, opts ...AppOption) *App {
	rt := NewRuntime()
	a := &App{
		rt:        rt,
		component: component,
		cache:     NewMeasureCache(),
		width:     NewSignal(rt, 80),
		height:    NewSignal(rt, 24),
	}

	if IsTerminal(os.Stdout) {
		if w, h, err := TerminalSize(os.Stdout); err == nil {
			a.width.Set(w)
			a.height.Set(h)
		}
	}

	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		a.renderer = NewRenderer(os.Stdout, WithInteractive(IsTerminal(os.Stdout)))
	}
	return a
}

// Runtime returns the app's signal graph, for creating signals that
// drive the component.
func (a *App) Runtime() *Runtime {
	return a.rt
}

// Tree returns the most recently resolved layout tree.
func (a *App) Tree() *RenderNode {
	return a.tree
}

// Size returns the current render dimensions.
func (a *App) Size() (width, height int) {
	return a.width.Peek(), a.height.Peek()
}

// Mount runs the component once, renders the initial frame, and
// subscribes to every signal the component read. The initial render's
// sink error is returned; on subsequent reactive renders a sink error
// panics out of the flush so it reaches the code that triggered the
// write.
func (a *App) Mount() error {
	if a.mounted {
		return fmt.Errorf("app already mounted")
	}
	a.mounted = true
	a.scope = a.rt.Root().Child()

	var mountErr error
	first := true
	a.scope.Run(func() {
		a.effect = a.rt.CreateEffect(func() {
			err := a.renderOnce()
			if err == nil {
				return
			}
			if first {
				mountErr = err
				return
			}
			panic(err)
		})
	})
	first = false

	if mountErr != nil {
		a.Unmount()
		return mountErr
	}
	return nil
}

// renderOnce runs one full tick: component, layout, paint, diff.
func (a *App) renderOnce() error {
	w := a.width.Get()
	h := a.height.Get()

	root := a.component()
	a.tree = BuildLayout(root, w, h, a.cache)

	frameW, frameH := w, h
	if frameW < 0 {
		frameW = a.tree.Rect.Width
	}
	if frameH < 0 {
		frameH = a.tree.Rect.Height
	}

	frame := NewFrame(frameW, frameH)
	Paint(frame, a.tree)

	debug.Log("tick: %dx%d", frameW, frameH)
	return a.renderer.Render(frame)
}

// Resize updates the render dimensions, triggering a single re-render.
func (a *App) Resize(width, height int) {
	a.rt.Batch(func() {
		a.width.Set(width)
		a.height.Set(height)
	})
}

// Batch coalesces several signal writes into one re-render.
func (a *App) Batch(fn func()) {
	a.rt.Batch(fn)
}

// Unmount disposes the app's scope. No signal write re-renders the app
// afterward.
func (a *App) Unmount() {
	if a.scope != nil {
		a.scope.Dispose()
		a.scope = nil
	}
	a.mounted = false
}
