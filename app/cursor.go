// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasswing/glwin/io/pointer"
)

// SetCursor changes the shape of the pointer while it is over the
// window. CursorNone hides the pointer until another shape is set.
func (w *Window) SetCursor(c pointer.Cursor) {
	if c == pointer.CursorNone {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}
	w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	shape := cursorShape(c)
	cur, ok := w.cursors[shape]
	if !ok {
		cur = glfw.CreateStandardCursor(shape)
		w.cursors[shape] = cur
	}
	w.win.SetCursor(cur)
}

// cursorShape returns the closest standard cursor for c. Shapes
// without a standard cursor fall back to the arrow.
func cursorShape(c pointer.Cursor) glfw.StandardCursor {
	switch c {
	case pointer.CursorText, pointer.CursorVerticalText:
		return glfw.IBeamCursor
	case pointer.CursorPointer, pointer.CursorGrab, pointer.CursorGrabbing:
		return glfw.HandCursor
	case pointer.CursorCrosshair, pointer.CursorCell:
		return glfw.CrosshairCursor
	case pointer.CursorWestResize, pointer.CursorEastResize,
		pointer.CursorEastWestResize, pointer.CursorColResize:
		return glfw.HResizeCursor
	case pointer.CursorNorthResize, pointer.CursorSouthResize,
		pointer.CursorNorthSouthResize, pointer.CursorRowResize:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}
