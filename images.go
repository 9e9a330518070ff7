package cartesian

import (
	"image"
)

// CenterOffset returns where an image with bounds b should be painted so it
// sits centered in a window of the given size. A dimension where the image is
// at least as large as the window is pinned to 0.
func CenterOffset(b image.Rectangle, size image.Point) image.Point {
	off := size.Sub(b.Size()).Div(2)
	if off.X < 0 {
		off.X = 0
	}
	if off.Y < 0 {
		off.Y = 0
	}
	return off
}
