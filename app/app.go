// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/glasswing/glwin/io/event"
	"github.com/glasswing/glwin/io/system"
)

func init() {
	// Required by the OpenGL threading model.
	runtime.LockOSThread()
}

// WindowID identifies the window an event belongs to. Events not
// tied to a window, such as IdleEvents, carry the zero id.
type WindowID uint64

var (
	initOnce sync.Once
	initErr  error

	// nextWindowID starts at 1; the zero id is reserved for
	// events without a window.
	nextWindowID WindowID

	// pending is the batch of records queued by window callbacks
	// while the platform loop is being pumped.
	pending []record
)

func ensureInit() error {
	initOnce.Do(func() {
		initErr = glfw.Init()
	})
	return initErr
}

// Run pumps the platform event loop forever, translating window
// events and delivering them to onEvent on the calling goroutine.
// Events belonging to a window carry its id. After each drained
// batch, including the empty batches produced by Waker.Wake, one
// IdleEvent with the zero id is delivered.
//
// Run must be called from the main goroutine. It returns only when
// the platform fails to initialize.
func Run(onEvent func(e event.Event, win WindowID)) error {
	if err := ensureInit(); err != nil {
		return err
	}
	for {
		glfw.WaitEvents()
		drainPending(onEvent)
	}
}

// drainPending translates and delivers the queued batch in arrival
// order, then delivers exactly one IdleEvent with the zero id.
func drainPending(onEvent func(e event.Event, win WindowID)) {
	batch := pending
	pending = nil
	for _, rec := range batch {
		if e, ok := rec.win.state.handle(rec); ok {
			onEvent(e, rec.win.id)
		}
	}
	onEvent(system.IdleEvent{}, 0)
}

// A Waker wakes up the event loop from any goroutine.
type Waker struct{}

// NewWaker returns a Waker for the event loop that serves the
// window. Wakers are freely copyable.
func (w *Window) NewWaker() Waker {
	return Waker{}
}

// Wake interrupts a blocked event loop, forcing an IdleEvent to be
// delivered. Unlike any other function in this package, Wake is
// safe to call from any goroutine.
func (Waker) Wake() {
	glfw.PostEmptyEvent()
}
