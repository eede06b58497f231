package grayscale

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromImage_GrayValues(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(10*y + x)})
		}
	}

	m := FromImage(img)

	rows, cols := m.Dims()
	if rows != 3 || cols != 4 {
		t.Fatalf("dims: got %dx%d, want 3x4", rows, cols)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got, want := m.At(y, x), float64(10*y+x); got != want {
				t.Errorf("m(%d,%d): got %g, want %g", y, x, got, want)
			}
		}
	}
}

func TestFromImage_Luminance(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want float64
	}{
		{"white", color.NRGBA{255, 255, 255, 255}, 255},
		{"black", color.NRGBA{0, 0, 0, 255}, 0},
		{"red", color.NRGBA{255, 0, 0, 255}, 0.299 * 255},
		{"green", color.NRGBA{0, 255, 0, 255}, 0.587 * 255},
		{"blue", color.NRGBA{0, 0, 255, 255}, 0.114 * 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromImage(solidImage(5, 5, tt.c))
			if got := m.At(2, 2); math.Abs(got-tt.want) > 1 {
				t.Errorf("luminance: got %g, want %g (+-1)", got, tt.want)
			}
		})
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 7, 9))
	img.SetGray(2, 3, color.Gray{Y: 200})

	m := FromImage(img)

	rows, cols := m.Dims()
	if rows != 6 || cols != 5 {
		t.Fatalf("dims: got %dx%d, want 6x5", rows, cols)
	}
	if got := m.At(0, 0); got != 200 {
		t.Errorf("top-left pixel: got %g, want 200", got)
	}
}

func TestFromImageLab_Extremes(t *testing.T) {
	if got := FromImageLab(solidImage(3, 3, color.NRGBA{255, 255, 255, 255})).At(1, 1); math.Abs(got-255) > 0.5 {
		t.Errorf("white lightness: got %g, want ~255", got)
	}
	if got := FromImageLab(solidImage(3, 3, color.NRGBA{0, 0, 0, 255})).At(1, 1); math.Abs(got) > 0.5 {
		t.Errorf("black lightness: got %g, want ~0", got)
	}
}

func TestFromImageLab_TransparentPixel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	// Alpha stays zero everywhere; lightness must default to 0.
	if got := FromImageLab(img).At(1, 1); got != 0 {
		t.Errorf("transparent pixel: got %g, want 0", got)
	}
}

// solidImage returns a w x h image filled with c.
func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
