// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key events.
package key

import "strings"

// An Event is generated when a key is pressed or released.
type Event struct {
	// Rune is the character produced by the key, or 0 when
	// the key produced none.
	Rune rune
	// Name of the key.
	Name Name
	// Modifiers is the set of active modifiers when the key was pressed.
	Modifiers Modifiers
	// State is the state of the key when the event was fired.
	State State
}

// State is the state of a key during an event.
type State uint8

const (
	// Press is the state of a pressed key.
	Press State = iota
	// Release is the state of a key that has been released.
	Release
)

// Modifiers
type Modifiers uint32

const (
	// ModCtrl is the ctrl modifier key.
	ModCtrl Modifiers = 1 << iota
	// ModShift is the shift modifier key.
	ModShift
	// ModAlt is the alt modifier key, or the option
	// key on Apple keyboards.
	ModAlt
	// ModSuper is the "logo" modifier key, often
	// represented by a Windows logo.
	ModSuper
)

// Name is the identifier for a keyboard key.
//
// For letters, the upper case form is used. Digit and punctuation
// keys use their US layout form, regardless of modifiers.
type Name string

const (
	// Names for special keys.
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameInsert         Name = "Insert"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
	NameF3             Name = "F3"
	NameF4             Name = "F4"
	NameF5             Name = "F5"
	NameF6             Name = "F6"
	NameF7             Name = "F7"
	NameF8             Name = "F8"
	NameF9             Name = "F9"
	NameF10            Name = "F10"
	NameF11            Name = "F11"
	NameF12            Name = "F12"
)

const (
	// Names for the left and right variants of the modifier
	// keys. The collapsed names above never appear in events;
	// they identify bits of Modifiers.
	NameLeftCtrl   Name = "LeftCtrl"
	NameRightCtrl  Name = "RightCtrl"
	NameLeftShift  Name = "LeftShift"
	NameRightShift Name = "RightShift"
	NameLeftAlt    Name = "LeftAlt"
	NameRightAlt   Name = "RightAlt"
	NameLeftSuper  Name = "LeftSuper"
	NameRightSuper Name = "RightSuper"
)

const (
	// Names for the numeric keypad keys, distinct from the
	// digit row.
	NameKP0 Name = "KP0"
	NameKP1 Name = "KP1"
	NameKP2 Name = "KP2"
	NameKP3 Name = "KP3"
	NameKP4 Name = "KP4"
	NameKP5 Name = "KP5"
	NameKP6 Name = "KP6"
	NameKP7 Name = "KP7"
	NameKP8 Name = "KP8"
	NameKP9 Name = "KP9"
)

// Contain reports whether m contains all modifiers
// in m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent() {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
