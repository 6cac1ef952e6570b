// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"unicode"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasswing/glwin/f32"
	"github.com/glasswing/glwin/io/event"
	"github.com/glasswing/glwin/io/key"
	"github.com/glasswing/glwin/io/pointer"
)

// scrollLinePixels is the distance covered by a single scroll
// wheel line, in pixels.
const scrollLinePixels = 38

// A record is a platform event queued by a window callback. Records
// are translated and delivered once the current batch has been
// pumped.
type record struct {
	win    *Window
	kind   recordKind
	key    glfw.Key
	scan   int
	action glfw.Action
	button glfw.MouseButton
	r      rune
	x, y   float64
	// desc names events outside the translated vocabulary.
	desc string
}

type recordKind uint8

const (
	recordCursorPos recordKind = iota
	recordScroll
	recordMouseButton
	recordChar
	recordKey
	recordOther
)

// windowState is the per window translation state.
type windowState struct {
	id WindowID

	// position is the last known pointer position.
	position f32.Point
	// mods tracks the held modifier keys by side.
	mods sideModifiers
	// pendingRune is a character reported by the platform that
	// has not yet been claimed by a key press.
	pendingRune rune
	// pressed pairs the scancode of every held key with the
	// character its press carried, so the release can carry the
	// same character.
	pressed []pressedKey
}

type pressedKey struct {
	scan int
	r    rune
}

// sideModifiers tracks the left and right modifier keys
// separately. Events carry the collapsed key.Modifiers form.
type sideModifiers uint8

const (
	leftControl sideModifiers = 1 << iota
	rightControl
	leftShift
	rightShift
	leftAlt
	rightAlt
	leftSuper
	rightSuper
)

// collapsed merges the left and right variants of each modifier.
func (m sideModifiers) collapsed() key.Modifiers {
	var mods key.Modifiers
	if m&(leftControl|rightControl) != 0 {
		mods |= key.ModCtrl
	}
	if m&(leftShift|rightShift) != 0 {
		mods |= key.ModShift
	}
	if m&(leftAlt|rightAlt) != 0 {
		mods |= key.ModAlt
	}
	if m&(leftSuper|rightSuper) != 0 {
		mods |= key.ModSuper
	}
	return mods
}

func sideModifier(k glfw.Key) (sideModifiers, bool) {
	switch k {
	case glfw.KeyLeftControl:
		return leftControl, true
	case glfw.KeyRightControl:
		return rightControl, true
	case glfw.KeyLeftShift:
		return leftShift, true
	case glfw.KeyRightShift:
		return rightShift, true
	case glfw.KeyLeftAlt:
		return leftAlt, true
	case glfw.KeyRightAlt:
		return rightAlt, true
	case glfw.KeyLeftSuper:
		return leftSuper, true
	case glfw.KeyRightSuper:
		return rightSuper, true
	}
	return 0, false
}

// handle translates rec and reports whether the resulting event
// should be delivered. Records that only update internal state and
// records with no translation produce no event; the latter are
// logged.
func (s *windowState) handle(rec record) (event.Event, bool) {
	switch rec.kind {
	case recordCursorPos:
		s.position = f32.Pt(float32(rec.x), float32(rec.y))
		return pointer.Event{
			Kind:     pointer.Move,
			Position: s.position,
		}, true
	case recordScroll:
		dx := float32(rec.x)
		dy := float32(rec.y) * scrollLinePixels
		// Scroll along one axis at a time.
		if abs(dy) >= abs(dx) {
			dx = 0
		} else {
			dy = 0
		}
		return pointer.Event{
			Kind:     pointer.Scroll,
			Position: s.position,
			Scroll:   f32.Pt(dx, dy),
			Phase:    pointer.PhaseMoved,
		}, true
	case recordMouseButton:
		if rec.button == glfw.MouseButtonLeft && rec.action == glfw.Release {
			return pointer.Event{
				Kind:     pointer.Click,
				Position: s.position,
				Button:   pointer.ButtonLeft,
			}, true
		}
		logger.Warn().
			Uint64("window", uint64(s.id)).
			Int("button", int(rec.button)).
			Int("action", int(rec.action)).
			Msg("dropping unhandled mouse button event")
		return nil, false
	case recordChar:
		if unicode.IsControl(rec.r) {
			logger.Debug().
				Uint64("window", uint64(s.id)).
				Str("char", string(rec.r)).
				Msg("ignoring control character")
			return nil, false
		}
		s.pendingRune = rec.r
		logger.Debug().
			Uint64("window", uint64(s.id)).
			Str("char", string(rec.r)).
			Msg("holding character for next key press")
		return nil, false
	case recordKey:
		return s.handleKey(rec)
	default:
		logger.Warn().
			Uint64("window", uint64(s.id)).
			Str("event", rec.desc).
			Msg("dropping unknown platform event")
		return nil, false
	}
}

func (s *windowState) handleKey(rec record) (event.Event, bool) {
	// TODO: derive the modifier set from the mods argument of the
	// key callback instead of tracking key pairs.
	if m, ok := sideModifier(rec.key); ok && rec.action != glfw.Repeat {
		s.mods ^= m
	}

	var r rune
	switch rec.action {
	case glfw.Press, glfw.Repeat:
		r = rec.r
		if r == 0 {
			r = s.pendingRune
		}
		s.pendingRune = 0
		if r != 0 && (unicode.IsControl(r) || !printableKey(rec.key)) {
			logger.Debug().
				Uint64("window", uint64(s.id)).
				Str("char", string(r)).
				Msg("discarding character for nonprintable key")
			r = 0
		}
		if r != 0 && rec.action == glfw.Press {
			s.pressed = append(s.pressed, pressedKey{scan: rec.scan, r: r})
		}
	case glfw.Release:
		for i, p := range s.pressed {
			if p.scan == rec.scan {
				r = p.r
				last := len(s.pressed) - 1
				s.pressed[i] = s.pressed[last]
				s.pressed = s.pressed[:last]
				break
			}
		}
	}

	name, ok := keyName(rec.key)
	if !ok {
		logger.Warn().
			Uint64("window", uint64(s.id)).
			Int("key", int(rec.key)).
			Int("scancode", rec.scan).
			Msg("dropping key event with no translation")
		return nil, false
	}
	st := key.Press
	if rec.action == glfw.Release {
		st = key.Release
	}
	return key.Event{
		Rune:      r,
		Name:      name,
		Modifiers: s.mods.collapsed(),
		State:     st,
	}, true
}

// printableKey reports whether presses of k may carry a character.
// Characters reported alongside control, function and navigation
// keys are discarded.
func printableKey(k glfw.Key) bool {
	if k >= glfw.KeyF1 && k <= glfw.KeyF25 {
		return false
	}
	switch k {
	case glfw.KeyEscape,
		glfw.KeyPrintScreen,
		glfw.KeyScrollLock,
		glfw.KeyPause,
		glfw.KeyInsert,
		glfw.KeyHome,
		glfw.KeyDelete,
		glfw.KeyEnd,
		glfw.KeyPageUp,
		glfw.KeyPageDown,
		glfw.KeyLeft,
		glfw.KeyUp,
		glfw.KeyRight,
		glfw.KeyDown,
		glfw.KeyBackspace,
		glfw.KeyMenu,
		glfw.KeyCapsLock,
		glfw.KeyNumLock,
		glfw.KeyLeftShift,
		glfw.KeyLeftControl,
		glfw.KeyLeftAlt,
		glfw.KeyLeftSuper,
		glfw.KeyRightShift,
		glfw.KeyRightControl,
		glfw.KeyRightAlt,
		glfw.KeyRightSuper:
		return false
	}
	return true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
