// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app provides OpenGL capable windows and translates their
platform events into the vocabulary of the io packages.

# Windows

Windows are created hidden by NewWindow and made visible with Show.
The platform event loop is pumped by Run, which blocks forever and
reports every translated event through its callback:

	w, err := app.NewWindow(app.Title("hello"))
	if err != nil {
		log.Fatal(err)
	}
	w.Show()
	app.Run(func(e event.Event, win app.WindowID) {
		switch e := e.(type) {
		case pointer.Event:
			...
		case key.Event:
			...
		case system.IdleEvent:
			...
		}
	})

Events that belong to a window carry its id; an IdleEvent carries
the zero id and follows every drained batch of events.

# Main Thread

The platform ties windows and their event queue to the main thread
of the program. NewWindow, Run and all Window methods must be
called from the main goroutine; the package locks it to its OS
thread on import. Waker.Wake is the single exception and may be
called from anywhere, for example to nudge the loop after work
finishes on another goroutine.
*/
package app
