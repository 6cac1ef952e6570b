// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
package pointer

import (
	"strings"

	"github.com/glasswing/glwin/f32"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Position is the coordinates of the event in the window
	// coordinate system, with the origin in the top left corner
	// of the drawable area.
	Position f32.Point
	// Scroll is the scroll amount, if any.
	Scroll f32.Point
	// Phase is the position of a Scroll event in its sequence.
	Phase Phase
	// Button is the button of a Click event.
	Button Button
}

// Kind of an Event.
type Kind uint8

const (
	// Move of the pointer.
	Move Kind = iota
	// Click of a pointer button, reported at release.
	Click
	// Scroll of the pointer.
	Scroll
)

// Phase of a scroll sequence.
type Phase uint8

const (
	// PhaseBegan marks the first scroll of a sequence.
	PhaseBegan Phase = iota
	// PhaseMoved marks a scroll within a sequence. Wheel
	// scrolls have no sequence and always use PhaseMoved.
	PhaseMoved
	// PhaseEnded marks the end of a scroll sequence.
	PhaseEnded
	// PhaseCancelled marks a scroll sequence interrupted by
	// the system.
	PhaseCancelled
)

// Button is a mouse button.
type Button uint8

const (
	// ButtonLeft is the left mouse button.
	ButtonLeft Button = iota
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the right mouse button.
	ButtonRight
)

// Cursor denotes a pre-defined cursor shape.
type Cursor byte

// The cursors correspond to CSS pointer naming.
const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor. To show it again, use any other cursor.
	CursorNone
	// CursorContextMenu is for a context menu.
	CursorContextMenu
	// CursorHelp is for a help link.
	CursorHelp
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorVerticalText is for selecting and inserting vertical text.
	CursorVerticalText
	// CursorPointer is for a link.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorCrosshair is for a precise location.
	CursorCrosshair
	// CursorCell is for indicating a cell to be selected.
	CursorCell
	// CursorAlias is for indicating an alias or shortcut to be created.
	CursorAlias
	// CursorCopy is for indicating a copy to be made.
	CursorCopy
	// CursorMove is for indicating movable content.
	CursorMove
	// CursorNoDrop is for indicating that the item may not be dropped
	// at the current location.
	CursorNoDrop
	// CursorAllScroll is for indicating scrolling in all directions.
	// Usually displayed as arrows to all four directions.
	CursorAllScroll
	// CursorColResize is for vertical resize.
	// Usually displayed as a vertical bar with arrows pointing east and west.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	// Usually displayed as a horizontal bar with arrows pointing north and south.
	CursorRowResize
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	// Usually displayed as an open hand.
	CursorGrab
	// CursorGrabbing is for content that is being grabbed (dragged to be moved).
	// Usually displayed as a closed hand.
	CursorGrabbing
	// CursorNotAllowed is shown when the request action cannot be carried out.
	// Usually displayed as a circle with a line through.
	CursorNotAllowed
	// CursorWait is shown when the program is busy and user cannot interact.
	// Usually displayed as a hourglass or the system equivalent.
	CursorWait
	// CursorProgress is shown when the program is busy, but the user can still interact.
	// Usually displayed as a default cursor with a hourglass.
	CursorProgress
	// CursorNorthWestResize is for top-left corner resizing.
	// Usually displayed as an arrow towards north-west.
	CursorNorthWestResize
	// CursorNorthEastResize is for top-right corner resizing.
	// Usually displayed as an arrow towards north-east.
	CursorNorthEastResize
	// CursorSouthWestResize is for bottom-left corner resizing.
	// Usually displayed as an arrow towards south-west.
	CursorSouthWestResize
	// CursorSouthEastResize is for bottom-right corner resizing.
	// Usually displayed as an arrow towards south-east.
	CursorSouthEastResize
	// CursorNorthSouthResize is for top-bottom resizing.
	// Usually displayed as a bi-directional arrow towards north-south.
	CursorNorthSouthResize
	// CursorEastWestResize is for left-right resizing.
	// Usually displayed as a bi-directional arrow towards east-west.
	CursorEastWestResize
	// CursorWestResize is for left resizing.
	// Usually displayed as an arrow towards west.
	CursorWestResize
	// CursorEastResize is for right resizing.
	// Usually displayed as an arrow towards east.
	CursorEastResize
	// CursorNorthResize is for top resizing.
	// Usually displayed as an arrow towards north.
	CursorNorthResize
	// CursorSouthResize is for bottom resizing.
	// Usually displayed as an arrow towards south.
	CursorSouthResize
	// CursorNorthEastSouthWestResize is for top-right to bottom-left diagonal resizing.
	// Usually displayed as a double ended arrow on the corresponding diagonal.
	CursorNorthEastSouthWestResize
	// CursorNorthWestSouthEastResize is for top-left to bottom-right diagonal resizing.
	// Usually displayed as a double ended arrow on the corresponding diagonal.
	CursorNorthWestSouthEastResize
	// CursorZoomIn is for indicating that something can be zoomed in.
	// Usually displayed as a magnifying glass with a plus.
	CursorZoomIn
	// CursorZoomOut is for indicating that something can be zoomed out.
	// Usually displayed as a magnifying glass with a minus.
	CursorZoomOut
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Click:
		return "Click"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "Began"
	case PhaseMoved:
		return "Moved"
	case PhaseEnded:
		return "Ended"
	case PhaseCancelled:
		return "Cancelled"
	default:
		panic("unknown Phase")
	}
}

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "ButtonLeft"
	case ButtonMiddle:
		return "ButtonMiddle"
	case ButtonRight:
		return "ButtonRight"
	default:
		panic("unknown Button")
	}
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorContextMenu:
		return "ContextMenu"
	case CursorHelp:
		return "Help"
	case CursorText:
		return "Text"
	case CursorVerticalText:
		return "VerticalText"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorCell:
		return "Cell"
	case CursorAlias:
		return "Alias"
	case CursorCopy:
		return "Copy"
	case CursorMove:
		return "Move"
	case CursorNoDrop:
		return "NoDrop"
	case CursorAllScroll:
		return "AllScroll"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	case CursorProgress:
		return "Progress"
	case CursorNorthWestResize:
		return "NorthWestResize"
	case CursorNorthEastResize:
		return "NorthEastResize"
	case CursorSouthWestResize:
		return "SouthWestResize"
	case CursorSouthEastResize:
		return "SouthEastResize"
	case CursorNorthSouthResize:
		return "NorthSouthResize"
	case CursorEastWestResize:
		return "EastWestResize"
	case CursorWestResize:
		return "WestResize"
	case CursorEastResize:
		return "EastResize"
	case CursorNorthResize:
		return "NorthResize"
	case CursorSouthResize:
		return "SouthResize"
	case CursorNorthEastSouthWestResize:
		return "NorthEastSouthWestResize"
	case CursorNorthWestSouthEastResize:
		return "NorthWestSouthEastResize"
	case CursorZoomIn:
		return "ZoomIn"
	case CursorZoomOut:
		return "ZoomOut"
	default:
		panic("unknown Cursor")
	}
}

// String returns a string representation of e.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" ")
	b.WriteString(e.Position.String())
	switch e.Kind {
	case Click:
		b.WriteString(" ")
		b.WriteString(e.Button.String())
	case Scroll:
		b.WriteString(" ")
		b.WriteString(e.Scroll.String())
		b.WriteString(" ")
		b.WriteString(e.Phase.String())
	}
	return b.String()
}

func (Event) ImplementsEvent() {}
