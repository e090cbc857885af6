// Package film owns the accumulated image buffer a render writes into and
// the encoders (PPM, BMP, HDR) that turn it into bytes on disk.
package film

import (
	"github.com/voxelmade/pathtracer/pkg/core"
)

// Film is the full-resolution pixel buffer a render accumulates into.
// AddColor, not SetColor, is the call the renderer writes pixels through:
// each render adds its clamped per-pixel sample average to the pixel's
// running sum.
type Film struct {
	width, height int
	pixels        []core.Vec3
}

// New creates a black width x height film.
func New(width, height int) *Film {
	return &Film{width: width, height: height, pixels: make([]core.Vec3, width*height)}
}

func (f *Film) Width() int  { return f.width }
func (f *Film) Height() int { return f.height }

func (f *Film) index(x, y int) int { return f.width*y + x }

// At returns the current accumulated color of pixel (x, y).
func (f *Film) At(x, y int) core.Vec3 {
	return f.pixels[f.index(x, y)]
}

// SetColor overwrites a pixel outright.
func (f *Film) SetColor(x, y int, c core.Vec3) {
	f.pixels[f.index(x, y)] = c
}

// AddColor accumulates c into a pixel's running sum.
func (f *Film) AddColor(x, y int, c core.Vec3) {
	i := f.index(x, y)
	f.pixels[i] = f.pixels[i].Add(c)
}

// Clear resets every pixel to black.
func (f *Film) Clear() {
	for i := range f.pixels {
		f.pixels[i] = core.Vec3{}
	}
}

// View returns a rectangular, non-overlapping view over [startY, endY) rows
// of the film, the unit a render stripe writes into.
func (f *Film) View(startY, endY int) *View {
	return &View{film: f, startY: startY, endY: endY}
}

// View restricts writes to a horizontal stripe of rows, letting independent
// render workers share one Film with no further synchronization as long as
// their stripes don't overlap.
type View struct {
	film         *Film
	startY, endY int
}

func (v *View) Bounds() (startY, endY int) { return v.startY, v.endY }
func (v *View) Width() int                 { return v.film.width }

func (v *View) SetColor(x, y int, c core.Vec3) { v.film.SetColor(x, y, c) }
func (v *View) AddColor(x, y int, c core.Vec3) { v.film.AddColor(x, y, c) }
