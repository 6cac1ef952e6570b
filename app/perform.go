// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasswing/glwin/io/system"
)

// Perform the actions on the window.
func (w *Window) Perform(actions system.Action) {
	if actions&system.ActionMinimize != 0 {
		w.win.Iconify()
	}
	if actions&system.ActionMaximize != 0 {
		w.win.Maximize()
	}
	if actions&system.ActionUnmaximize != 0 {
		if w.win.GetMonitor() != nil {
			g := w.windowed
			w.win.SetMonitor(nil, g.x, g.y, g.width, g.height, 0)
		}
		w.win.Restore()
	}
	if actions&system.ActionFullscreen != 0 && w.win.GetMonitor() == nil {
		w.windowed.x, w.windowed.y = w.win.GetPos()
		w.windowed.width, w.windowed.height = w.win.GetSize()
		m := glfw.GetPrimaryMonitor()
		mode := m.GetVideoMode()
		w.win.SetMonitor(m, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
	}
	if actions&system.ActionRaise != 0 {
		w.win.Focus()
	}
	if actions&system.ActionCenter != 0 && w.win.GetMonitor() == nil {
		mx, my, mw, mh := glfw.GetPrimaryMonitor().GetWorkarea()
		width, height := w.win.GetSize()
		w.win.SetPos(mx+(mw-width)/2, my+(mh-height)/2)
	}
}
