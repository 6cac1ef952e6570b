// SPDX-License-Identifier: Unlicense OR MIT

package main

// A simple glwin program. It opens a window, logs the events the window
// produces and redraws a solid color after every batch.

import (
	"image"
	"image/color"
	"log"
	"time"

	"github.com/glasswing/glwin/app"
	"github.com/glasswing/glwin/io/event"
	"github.com/glasswing/glwin/io/key"
	"github.com/glasswing/glwin/io/pointer"
	"github.com/glasswing/glwin/io/system"

	gl "github.com/go-gl/gl/v3.2-core/gl"
)

func main() {
	w, err := app.NewWindow(
		app.Title("Hello, glwin"),
		app.Size(800, 600),
	)
	if err != nil {
		log.Fatal(err)
	}
	w.SetIcon(icon())
	w.Show()

	// Wake the loop once a second even when no events arrive.
	waker := w.NewWaker()
	go func() {
		for range time.Tick(time.Second) {
			waker.Wake()
		}
	}()

	err = app.Run(func(e event.Event, win app.WindowID) {
		switch e := e.(type) {
		case pointer.Event:
			log.Printf("window %d: %v", win, e)
			if e.Kind == pointer.Click {
				w.SetCursor(pointer.CursorPointer)
				w.WriteClipboard(e.String())
			}
		case key.Event:
			log.Printf("window %d: %v %q %s", win, e.Name, e.Rune, e.State)
		case system.IdleEvent:
			redraw(w)
		}
	})
	log.Fatal(err)
}

func redraw(w *app.Window) {
	if err := w.MakeCurrent(); err != nil {
		log.Fatal(err)
	}
	gl.ClearColor(0.2, 0.3, 0.5, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	w.SwapBuffers()
}

func icon() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 0x80, A: 0xff})
		}
	}
	return img
}
