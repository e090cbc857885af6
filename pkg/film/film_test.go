package film

import (
	"testing"

	"github.com/voxelmade/pathtracer/pkg/core"
)

func TestFilm_AddColorAccumulates(t *testing.T) {
	f := New(4, 4)
	f.AddColor(1, 1, core.Splat(0.2))
	f.AddColor(1, 1, core.Splat(0.3))

	got := f.At(1, 1)
	if got.X < 0.49 || got.X > 0.51 {
		t.Errorf("expected accumulated value near 0.5, got %v", got)
	}
}

func TestFilm_ClearZeroesEveryPixel(t *testing.T) {
	f := New(2, 2)
	f.SetColor(0, 0, core.Splat(1))
	f.Clear()
	if !f.At(0, 0).IsBlack() {
		t.Errorf("expected Clear to zero every pixel, got %v at (0,0)", f.At(0, 0))
	}
}

func TestFilm_ViewWritesThroughToUnderlyingFilm(t *testing.T) {
	f := New(4, 10)
	v := f.View(3, 6)
	v.AddColor(0, 4, core.Splat(0.5))

	if f.At(0, 4).X != 0.5 {
		t.Errorf("expected a view's AddColor to write through to the backing film, got %v", f.At(0, 4))
	}
	sy, ey := v.Bounds()
	if sy != 3 || ey != 6 {
		t.Errorf("expected bounds (3,6), got (%v,%v)", sy, ey)
	}
}
