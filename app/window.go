// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Option configures a window.
type Option func(*config)

type config struct {
	title  string
	width  int
	height int
}

// Title sets the window title.
func Title(t string) Option {
	return func(cnf *config) {
		cnf.title = t
	}
}

// Size sets the size of the window, in screen coordinates.
func Size(w, h int) Option {
	if w <= 0 {
		panic("width must be larger than 0")
	}
	if h <= 0 {
		panic("height must be larger than 0")
	}
	return func(cnf *config) {
		cnf.width = w
		cnf.height = h
	}
}

// Window is an operating system window with an OpenGL context.
type Window struct {
	win     *glfw.Window
	id      WindowID
	state   windowState
	cursors map[glfw.StandardCursor]*glfw.Cursor
	// windowed is the placement restored when leaving fullscreen.
	windowed struct{ x, y, width, height int }
}

// DrawableGeometry describes the placement of a window's drawable
// area.
type DrawableGeometry struct {
	// ViewSize is the size of the drawable area, in screen
	// coordinates.
	ViewSize image.Point
	// Position is the position of the top left corner of the
	// drawable area.
	Position image.Point
	// Margins is the extent of the window frame around the
	// drawable area.
	Margins Margins
	// Scale is the number of physical pixels per screen
	// coordinate.
	Scale float32
}

// Margins is the size of each edge of a window frame.
type Margins struct {
	Left, Top, Right, Bottom int
}

// NewWindow creates a hidden window with an OpenGL 3.2 core
// context. The context is current on the calling thread when
// NewWindow returns, with the back buffer cleared to white. Call
// Show to make the window visible.
//
// NewWindow must be called from the main goroutine.
func NewWindow(options ...Option) (*Window, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	cnf := &config{width: 800, height: 600}
	for _, opt := range options {
		opt(cnf)
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	win, err := glfw.CreateWindow(cnf.width, cnf.height, cnf.title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		return nil, err
	}
	glfw.SwapInterval(1)
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Finish()

	nextWindowID++
	w := &Window{
		win:     win,
		id:      nextWindowID,
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
	}
	w.state.id = w.id
	w.registerCallbacks()
	return w, nil
}

// registerCallbacks queues a record for every platform event of
// interest. The records are translated and delivered by Run after
// the batch that produced them has been pumped.
func (w *Window) registerCallbacks() {
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		pending = append(pending, record{win: w, kind: recordCursorPos, x: x, y: y})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		pending = append(pending, record{win: w, kind: recordScroll, x: dx, y: dy})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pending = append(pending, record{win: w, kind: recordMouseButton, button: button, action: action})
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, k glfw.Key, scan int, action glfw.Action, _ glfw.ModifierKey) {
		pending = append(pending, record{win: w, kind: recordKey, key: k, scan: scan, action: action})
	})
	// The character of a key press arrives after its key event.
	// Attach it to that event while it is still queued; a
	// character with no queued press is held for the next one.
	w.win.SetCharCallback(func(_ *glfw.Window, r rune) {
		if n := len(pending); n > 0 {
			last := &pending[n-1]
			if last.win == w && last.kind == recordKey && last.action != glfw.Release && last.r == 0 {
				last.r = r
				return
			}
		}
		pending = append(pending, record{win: w, kind: recordChar, r: r})
	})
	other := func(desc string) {
		pending = append(pending, record{win: w, kind: recordOther, desc: desc})
	}
	w.win.SetFocusCallback(func(_ *glfw.Window, _ bool) { other("focus") })
	w.win.SetSizeCallback(func(_ *glfw.Window, _, _ int) { other("resize") })
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) { other("framebuffer resize") })
	w.win.SetPosCallback(func(_ *glfw.Window, _, _ int) { other("move") })
	w.win.SetRefreshCallback(func(_ *glfw.Window) { other("refresh") })
	w.win.SetCursorEnterCallback(func(_ *glfw.Window, _ bool) { other("cursor enter") })
	w.win.SetIconifyCallback(func(_ *glfw.Window, _ bool) { other("iconify") })
	w.win.SetMaximizeCallback(func(_ *glfw.Window, _ bool) { other("maximize") })
	w.win.SetContentScaleCallback(func(_ *glfw.Window, _, _ float32) { other("content scale") })
	w.win.SetCloseCallback(func(_ *glfw.Window) { other("close") })
	w.win.SetDropCallback(func(_ *glfw.Window, _ []string) { other("file drop") })
}

// ID returns the stable identifier events from the window carry.
func (w *Window) ID() WindowID {
	return w.id
}

// Show makes the window visible.
func (w *Window) Show() {
	w.win.Show()
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Geometry returns the current placement of the window's drawable
// area.
func (w *Window) Geometry() DrawableGeometry {
	width, height := w.win.GetSize()
	x, y := w.win.GetPos()
	left, top, right, bottom := w.win.GetFrameSize()
	scale, _ := w.win.GetContentScale()
	return DrawableGeometry{
		ViewSize: image.Pt(width, height),
		Position: image.Pt(x, y),
		Margins:  Margins{Left: left, Top: top, Right: right, Bottom: bottom},
		Scale:    scale,
	}
}

// SwapBuffers presents the back buffer of the window.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// MakeCurrent makes the window's OpenGL context current on the
// calling thread.
func (w *Window) MakeCurrent() (err error) {
	// The glfw binding reports failures by panicking with a
	// *glfw.Error.
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*glfw.Error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	w.win.MakeContextCurrent()
	return nil
}

// ProcAddress returns the address of the OpenGL function named by
// proc, or nil when the function is unsupported. The window's
// context must be current.
func (w *Window) ProcAddress(proc string) unsafe.Pointer {
	return glfw.GetProcAddress(proc)
}

// ReadClipboard returns the contents of the system clipboard.
func (w *Window) ReadClipboard() string {
	return w.win.GetClipboardString()
}

// WriteClipboard writes s to the system clipboard.
func (w *Window) WriteClipboard(s string) {
	w.win.SetClipboardString(s)
}
