// SPDX-License-Identifier: Unlicense OR MIT

package system

import "strings"

// Action is a set of window actions, performed by app.Window.Perform.
type Action uint

const (
	// ActionMinimize minimizes a window.
	ActionMinimize Action = 1 << iota
	// ActionMaximize maximizes a window.
	ActionMaximize
	// ActionUnmaximize restores a maximized or minimized window and
	// leaves fullscreen mode.
	ActionUnmaximize
	// ActionFullscreen makes a window fullscreen on its monitor.
	ActionFullscreen
	// ActionRaise requests that the platform bring this window to the
	// top of all open windows. Some platforms only allow this when a
	// window of the same application already has focus.
	ActionRaise
	// ActionCenter centers the window on its monitor. It is ignored
	// in fullscreen mode.
	ActionCenter
)

func (a Action) String() string {
	var buf strings.Builder
	for b := Action(1); a != 0; b <<= 1 {
		if a&b != 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString(b.string())
			a &^= b
		}
	}
	return buf.String()
}

func (a Action) string() string {
	switch a {
	case ActionMinimize:
		return "ActionMinimize"
	case ActionMaximize:
		return "ActionMaximize"
	case ActionUnmaximize:
		return "ActionUnmaximize"
	case ActionFullscreen:
		return "ActionFullscreen"
	case ActionRaise:
		return "ActionRaise"
	case ActionCenter:
		return "ActionCenter"
	}
	return ""
}
