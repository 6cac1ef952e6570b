// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"bytes"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glasswing/glwin/f32"
	"github.com/glasswing/glwin/io/key"
	"github.com/glasswing/glwin/io/pointer"
)

// captureLog redirects the package logger to a buffer for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := logger
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { logger = old })
	return &buf
}

func moveTo(s *windowState, x, y float64) {
	s.handle(record{kind: recordCursorPos, x: x, y: y})
}

func TestPointerMove(t *testing.T) {
	s := &windowState{id: 1}
	e, ok := s.handle(record{kind: recordCursorPos, x: 10, y: 20})
	require.True(t, ok)
	pe, ok := e.(pointer.Event)
	require.True(t, ok)
	assert.Equal(t, pointer.Move, pe.Kind)
	assert.Equal(t, f32.Pt(10, 20), pe.Position)

	e, _ = s.handle(record{kind: recordCursorPos, x: 3.5, y: 7.25})
	assert.Equal(t, f32.Pt(3.5, 7.25), e.(pointer.Event).Position)
}

func TestScrollCarriesPointerPosition(t *testing.T) {
	s := &windowState{id: 1}
	moveTo(s, 100, 50)

	e, ok := s.handle(record{kind: recordScroll, x: 0, y: 1})
	require.True(t, ok)
	pe := e.(pointer.Event)
	assert.Equal(t, pointer.Scroll, pe.Kind)
	assert.Equal(t, f32.Pt(100, 50), pe.Position)
	assert.Equal(t, f32.Pt(0, scrollLinePixels), pe.Scroll)
	assert.Equal(t, pointer.PhaseMoved, pe.Phase)
}

func TestScrollAxisLock(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   f32.Point
	}{
		{"vertical", 0, 2, f32.Pt(0, 2*scrollLinePixels)},
		{"vertical wins after scaling", 2, 1, f32.Pt(0, scrollLinePixels)},
		{"horizontal", 5, 0, f32.Pt(5, 0)},
		{"horizontal wins", 0.5, 0.01, f32.Pt(0.5, 0)},
		{"negative vertical", 0, -1, f32.Pt(0, -scrollLinePixels)},
	}
	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			s := &windowState{id: 1}
			e, ok := s.handle(record{kind: recordScroll, x: tst.dx, y: tst.dy})
			require.True(t, ok)
			assert.Equal(t, tst.want, e.(pointer.Event).Scroll)
		})
	}
}

func TestClickOnLeftRelease(t *testing.T) {
	captureLog(t)
	s := &windowState{id: 1}
	moveTo(s, 40, 60)

	_, ok := s.handle(record{kind: recordMouseButton, button: glfw.MouseButtonLeft, action: glfw.Press})
	assert.False(t, ok, "left press must not deliver an event")

	e, ok := s.handle(record{kind: recordMouseButton, button: glfw.MouseButtonLeft, action: glfw.Release})
	require.True(t, ok)
	pe := e.(pointer.Event)
	assert.Equal(t, pointer.Click, pe.Kind)
	assert.Equal(t, pointer.ButtonLeft, pe.Button)
	assert.Equal(t, f32.Pt(40, 60), pe.Position)
}

func TestOtherMouseButtonsDropped(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	for _, rec := range []record{
		{kind: recordMouseButton, button: glfw.MouseButtonRight, action: glfw.Release},
		{kind: recordMouseButton, button: glfw.MouseButtonRight, action: glfw.Press},
		{kind: recordMouseButton, button: glfw.MouseButtonMiddle, action: glfw.Release},
	} {
		_, ok := s.handle(rec)
		assert.False(t, ok)
	}
	assert.Contains(t, buf.String(), "dropping unhandled mouse button event")
}

func TestCharAttachesToKeyPress(t *testing.T) {
	s := &windowState{id: 1}
	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press, r: 'a'})
	require.True(t, ok)
	ke := e.(key.Event)
	assert.Equal(t, 'a', ke.Rune)
	assert.Equal(t, key.Name("A"), ke.Name)
	assert.Equal(t, key.Press, ke.State)

	e, ok = s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Release})
	require.True(t, ok)
	ke = e.(key.Event)
	assert.Equal(t, 'a', ke.Rune, "release must carry the character of its press")
	assert.Equal(t, key.Release, ke.State)
	assert.Empty(t, s.pressed)
}

func TestHeldCharClaimedByNextPress(t *testing.T) {
	s := &windowState{id: 1}
	_, ok := s.handle(record{kind: recordChar, r: 'é'})
	assert.False(t, ok, "a bare character must not deliver an event")
	require.Equal(t, 'é', s.pendingRune)

	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyE, scan: 18, action: glfw.Press})
	require.True(t, ok)
	assert.Equal(t, 'é', e.(key.Event).Rune)
	assert.Equal(t, rune(0), s.pendingRune)
}

func TestControlCharsNotHeld(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	_, ok := s.handle(record{kind: recordChar, r: '\t'})
	assert.False(t, ok)
	assert.Equal(t, rune(0), s.pendingRune)
	assert.Contains(t, buf.String(), "ignoring control character")

	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyTab, scan: 15, action: glfw.Press})
	require.True(t, ok)
	ke := e.(key.Event)
	assert.Equal(t, key.NameTab, ke.Name)
	assert.Equal(t, rune(0), ke.Rune)
}

func TestNonprintableKeysCarryNoChar(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	// A character attached to a navigation key press is discarded.
	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyHome, scan: 102, action: glfw.Press, r: '7'})
	require.True(t, ok)
	ke := e.(key.Event)
	assert.Equal(t, key.NameHome, ke.Name)
	assert.Equal(t, rune(0), ke.Rune)
	assert.Empty(t, s.pressed)
	assert.Contains(t, buf.String(), "discarding character for nonprintable key")
}

func TestDiscardedCharDoesNotLeakToNextPress(t *testing.T) {
	captureLog(t)
	s := &windowState{id: 1}
	s.handle(record{kind: recordChar, r: 'q'})

	// The escape press claims and discards the held character.
	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyEscape, scan: 1, action: glfw.Press})
	require.True(t, ok)
	assert.Equal(t, rune(0), e.(key.Event).Rune)

	e, ok = s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press})
	require.True(t, ok)
	assert.Equal(t, rune(0), e.(key.Event).Rune)
}

func TestModifierToggle(t *testing.T) {
	s := &windowState{id: 1}
	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyLeftShift, scan: 42, action: glfw.Press})
	require.True(t, ok)
	ke := e.(key.Event)
	assert.Equal(t, key.NameLeftShift, ke.Name)
	assert.Equal(t, key.ModShift, ke.Modifiers, "a modifier press must carry its own modifier")

	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press})
	assert.Equal(t, key.ModShift, e.(key.Event).Modifiers)

	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyLeftShift, scan: 42, action: glfw.Release})
	ke = e.(key.Event)
	assert.Equal(t, key.Release, ke.State)
	assert.Equal(t, key.Modifiers(0), ke.Modifiers)
}

func TestModifierSidesCollapse(t *testing.T) {
	s := &windowState{id: 1}
	s.handle(record{kind: recordKey, key: glfw.KeyLeftControl, scan: 29, action: glfw.Press})
	e, _ := s.handle(record{kind: recordKey, key: glfw.KeyRightControl, scan: 285, action: glfw.Press})
	assert.Equal(t, key.ModCtrl, e.(key.Event).Modifiers)

	// Releasing one side keeps the modifier held by the other.
	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyLeftControl, scan: 29, action: glfw.Release})
	assert.Equal(t, key.ModCtrl, e.(key.Event).Modifiers)

	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyRightControl, scan: 285, action: glfw.Release})
	assert.Equal(t, key.Modifiers(0), e.(key.Event).Modifiers)
}

func TestAllModifiers(t *testing.T) {
	s := &windowState{id: 1}
	s.handle(record{kind: recordKey, key: glfw.KeyLeftControl, scan: 29, action: glfw.Press})
	s.handle(record{kind: recordKey, key: glfw.KeyLeftShift, scan: 42, action: glfw.Press})
	s.handle(record{kind: recordKey, key: glfw.KeyRightAlt, scan: 312, action: glfw.Press})
	e, _ := s.handle(record{kind: recordKey, key: glfw.KeyLeftSuper, scan: 347, action: glfw.Press})
	want := key.ModCtrl | key.ModShift | key.ModAlt | key.ModSuper
	assert.Equal(t, want, e.(key.Event).Modifiers)
}

func TestUnmappedKeyDropped(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	_, ok := s.handle(record{kind: recordKey, key: glfw.KeyF13, scan: 183, action: glfw.Press})
	assert.False(t, ok)
	assert.Contains(t, buf.String(), "dropping key event with no translation")
}

func TestKeypadOperatorsDropped(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	for _, k := range []glfw.Key{glfw.KeyKPAdd, glfw.KeyKPDecimal, glfw.KeyKPDivide, glfw.KeyKPEqual, glfw.KeyKPMultiply} {
		_, ok := s.handle(record{kind: recordKey, key: k, scan: int(k), action: glfw.Press})
		assert.False(t, ok, "key %d", int(k))
	}
	// The keypad subtract key is the one operator with a translation.
	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyKPSubtract, scan: 74, action: glfw.Press})
	require.True(t, ok)
	assert.Equal(t, key.Name("-"), e.(key.Event).Name)
	assert.Contains(t, buf.String(), "dropping key event with no translation")
}

func TestUnmappedKeyStillUpdatesState(t *testing.T) {
	captureLog(t)
	s := &windowState{id: 1}
	s.handle(record{kind: recordChar, r: 'q'})

	// The unmapped press claims the held character on its way out.
	_, ok := s.handle(record{kind: recordKey, key: glfw.KeyF13, scan: 183, action: glfw.Press})
	require.False(t, ok)

	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press})
	require.True(t, ok)
	assert.Equal(t, rune(0), e.(key.Event).Rune)
}

func TestRepeatCarriesCharWithoutGrowingHeldKeys(t *testing.T) {
	s := &windowState{id: 1}
	s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press, r: 'a'})
	require.Len(t, s.pressed, 1)

	e, ok := s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Repeat, r: 'a'})
	require.True(t, ok)
	ke := e.(key.Event)
	assert.Equal(t, 'a', ke.Rune)
	assert.Equal(t, key.Press, ke.State)
	assert.Len(t, s.pressed, 1)

	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Release})
	assert.Equal(t, 'a', e.(key.Event).Rune)
	assert.Empty(t, s.pressed)
}

func TestInterleavedPresses(t *testing.T) {
	s := &windowState{id: 1}
	s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Press, r: 'a'})
	s.handle(record{kind: recordKey, key: glfw.KeyB, scan: 48, action: glfw.Press, r: 'b'})

	e, _ := s.handle(record{kind: recordKey, key: glfw.KeyA, scan: 30, action: glfw.Release})
	assert.Equal(t, 'a', e.(key.Event).Rune)
	e, _ = s.handle(record{kind: recordKey, key: glfw.KeyB, scan: 48, action: glfw.Release})
	assert.Equal(t, 'b', e.(key.Event).Rune)
}

func TestUnknownPlatformEventWarns(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 7}
	_, ok := s.handle(record{kind: recordOther, desc: "focus"})
	assert.False(t, ok)
	out := buf.String()
	assert.Contains(t, out, "dropping unknown platform event")
	assert.Contains(t, out, "focus")
	assert.Contains(t, out, `"window":7`)
}

func TestHeldCharLoggedAtDebug(t *testing.T) {
	buf := captureLog(t)
	s := &windowState{id: 1}
	s.handle(record{kind: recordChar, r: 'x'})
	assert.Contains(t, buf.String(), "holding character for next key press")
}

func TestCollapsedModifiers(t *testing.T) {
	tests := []struct {
		side sideModifiers
		want key.Modifiers
	}{
		{0, 0},
		{leftControl, key.ModCtrl},
		{rightControl, key.ModCtrl},
		{leftShift | rightShift, key.ModShift},
		{leftAlt | rightSuper, key.ModAlt | key.ModSuper},
		{leftControl | rightControl | leftShift | rightAlt | leftSuper,
			key.ModCtrl | key.ModShift | key.ModAlt | key.ModSuper},
	}
	for _, tst := range tests {
		assert.Equal(t, tst.want, tst.side.collapsed(), "side set %b", tst.side)
	}
}

func TestPrintableKey(t *testing.T) {
	printable := []glfw.Key{glfw.KeyA, glfw.KeyZ, glfw.Key0, glfw.KeySpace, glfw.KeyTab, glfw.KeyKP5, glfw.KeyComma}
	for _, k := range printable {
		assert.True(t, printableKey(k), "key %d", int(k))
	}
	nonprintable := []glfw.Key{
		glfw.KeyEscape, glfw.KeyF1, glfw.KeyF12, glfw.KeyF25,
		glfw.KeyHome, glfw.KeyEnd, glfw.KeyPageUp, glfw.KeyPageDown,
		glfw.KeyLeft, glfw.KeyRight, glfw.KeyUp, glfw.KeyDown,
		glfw.KeyInsert, glfw.KeyDelete, glfw.KeyBackspace,
		glfw.KeyLeftShift, glfw.KeyRightSuper, glfw.KeyCapsLock,
	}
	for _, k := range nonprintable {
		assert.False(t, printableKey(k), "key %d", int(k))
	}
}
