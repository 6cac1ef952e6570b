// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"

	"golang.org/x/image/draw"
)

// iconSizes are the icon sizes handed to the platform. Window
// systems pick the closest size for title bars, task bars and
// switchers.
var iconSizes = []int{16, 32, 48}

// SetIcon sets the window icon from img, scaled to the sizes the
// platform expects.
func (w *Window) SetIcon(img image.Image) {
	icons := make([]image.Image, 0, len(iconSizes))
	for _, sz := range iconSizes {
		icons = append(icons, scaleIcon(img, sz))
	}
	w.win.SetIcon(icons)
}

func scaleIcon(img image.Image, size int) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
