// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasswing/glwin/io/key"
)

// keyName translates k into the key vocabulary. Keys with no
// translation report false and their events are dropped.
func keyName(k glfw.Key) (key.Name, bool) {
	// Letter and digit keys share their ASCII values.
	if glfw.Key0 <= k && k <= glfw.Key9 || glfw.KeyA <= k && k <= glfw.KeyZ {
		return key.Name(rune(k)), true
	}
	var n key.Name
	switch k {
	case glfw.KeyEnter:
		n = key.NameReturn
	case glfw.KeyKPEnter:
		n = key.NameEnter
	case glfw.KeySpace:
		n = key.NameSpace
	case glfw.KeyEscape:
		n = key.NameEscape
	case glfw.KeyTab:
		n = key.NameTab
	case glfw.KeyBackspace:
		n = key.NameDeleteBackward
	case glfw.KeyDelete:
		n = key.NameDeleteForward
	case glfw.KeyInsert:
		n = key.NameInsert
	case glfw.KeyHome:
		n = key.NameHome
	case glfw.KeyEnd:
		n = key.NameEnd
	case glfw.KeyPageUp:
		n = key.NamePageUp
	case glfw.KeyPageDown:
		n = key.NamePageDown
	case glfw.KeyLeft:
		n = key.NameLeftArrow
	case glfw.KeyUp:
		n = key.NameUpArrow
	case glfw.KeyRight:
		n = key.NameRightArrow
	case glfw.KeyDown:
		n = key.NameDownArrow
	case glfw.KeyLeftShift:
		n = key.NameLeftShift
	case glfw.KeyLeftControl:
		n = key.NameLeftCtrl
	case glfw.KeyLeftAlt:
		n = key.NameLeftAlt
	case glfw.KeyLeftSuper:
		n = key.NameLeftSuper
	case glfw.KeyRightShift:
		n = key.NameRightShift
	case glfw.KeyRightControl:
		n = key.NameRightCtrl
	case glfw.KeyRightAlt:
		n = key.NameRightAlt
	case glfw.KeyRightSuper:
		n = key.NameRightSuper
	case glfw.KeyKP0:
		n = key.NameKP0
	case glfw.KeyKP1:
		n = key.NameKP1
	case glfw.KeyKP2:
		n = key.NameKP2
	case glfw.KeyKP3:
		n = key.NameKP3
	case glfw.KeyKP4:
		n = key.NameKP4
	case glfw.KeyKP5:
		n = key.NameKP5
	case glfw.KeyKP6:
		n = key.NameKP6
	case glfw.KeyKP7:
		n = key.NameKP7
	case glfw.KeyKP8:
		n = key.NameKP8
	case glfw.KeyKP9:
		n = key.NameKP9
	case glfw.KeyApostrophe:
		n = "'"
	case glfw.KeyBackslash:
		n = "\\"
	case glfw.KeyComma:
		n = ","
	case glfw.KeyEqual:
		n = "="
	case glfw.KeyGraveAccent:
		n = "`"
	case glfw.KeyLeftBracket:
		n = "["
	case glfw.KeyMinus:
		n = "-"
	case glfw.KeyPeriod:
		n = "."
	case glfw.KeyRightBracket:
		n = "]"
	case glfw.KeySemicolon:
		n = ";"
	case glfw.KeySlash:
		n = "/"
	case glfw.KeyKPSubtract:
		n = "-"
	case glfw.KeyF1:
		n = key.NameF1
	case glfw.KeyF2:
		n = key.NameF2
	case glfw.KeyF3:
		n = key.NameF3
	case glfw.KeyF4:
		n = key.NameF4
	case glfw.KeyF5:
		n = key.NameF5
	case glfw.KeyF6:
		n = key.NameF6
	case glfw.KeyF7:
		n = key.NameF7
	case glfw.KeyF8:
		n = key.NameF8
	case glfw.KeyF9:
		n = key.NameF9
	case glfw.KeyF10:
		n = key.NameF10
	case glfw.KeyF11:
		n = key.NameF11
	case glfw.KeyF12:
		n = key.NameF12
	default:
		return "", false
	}
	return n, true
}
