package posterize

import (
	"errors"
	"testing"

	"github.com/gogpu/posterize/internal/color"
	"github.com/gogpu/posterize/internal/filter"
)

func TestBlurAndQuantizeSolid(t *testing.T) {
	// A flat image survives the blur unchanged, so every pixel maps to the
	// palette entry nearest the fill color.
	img := solidImage(t, 20, 15, RGB(0xf0, 0x30, 0x70))
	pal := Monokai()

	for _, shape := range []Shape{ShapeBox, ShapeDisc, ShapeGaussian} {
		out, err := BlurAndQuantize(img, pal, WithShape(shape), WithRadius(3))
		if err != nil {
			t.Fatalf("%v: %v", shape, err)
		}
		want := RGB(0xf9, 0x26, 0x72)
		for y := 0; y < 15; y++ {
			for x := 0; x < 20; x++ {
				if got := out.At(x, y); got != want {
					t.Fatalf("%v: At(%d, %d) = %v, want %v", shape, x, y, got, want)
				}
			}
		}
	}
}

func TestBlurAndQuantizeOutputInPalette(t *testing.T) {
	img := noiseImage(t, 33, 27)
	pal := Monokai()

	out, err := BlurAndQuantize(img, pal, WithRadius(2), WithShape(ShapeDisc), WithEdgeMode(EdgeTransparent))
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 33 || out.Height() != 27 {
		t.Fatalf("size = %dx%d, want 33x27", out.Width(), out.Height())
	}

	colors := pal.Colors()
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			got := out.At(x, y)
			found := false
			for _, c := range colors {
				if color.SameRGB(got, c) {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("At(%d, %d) = %v not in palette", x, y, got)
			}
			if got.A != img.At(x, y).A {
				t.Fatalf("alpha changed at (%d, %d)", x, y)
			}
		}
	}
}

func TestBlurAndQuantizeWorkersAgree(t *testing.T) {
	img := noiseImage(t, 41, 29)
	pal := Monokai()

	want, err := BlurAndQuantize(img, pal, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []int{0, 2, 3, 5, 8, 29, 64} {
		for _, pb := range []bool{true, false} {
			got, err := BlurAndQuantize(img, pal, WithWorkers(w), WithParallelBlur(pb))
			if err != nil {
				t.Fatalf("workers=%d: %v", w, err)
			}
			if !got.Equal(want) {
				t.Errorf("workers=%d parallelBlur=%v: output differs from single worker", w, pb)
			}
		}
	}
}

func TestBlurAndQuantizeMatchesStages(t *testing.T) {
	img := noiseImage(t, 16, 16)
	pal := Monochrome()

	blurred, err := Blur(img, ShapeBox, 2, EdgeClamp)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Quantize(blurred, pal, 1)
	if err != nil {
		t.Fatal(err)
	}

	got, err := BlurAndQuantize(img, pal)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("BlurAndQuantize differs from Blur followed by Quantize")
	}
}

func TestBlurAndQuantizeDoesNotModifyInput(t *testing.T) {
	img := noiseImage(t, 12, 12)
	orig := img.Clone()

	if _, err := BlurAndQuantize(img, Monokai()); err != nil {
		t.Fatal(err)
	}
	if !img.Equal(orig) {
		t.Error("input image was modified")
	}
}

func TestBlurAndQuantizeErrors(t *testing.T) {
	img := solidImage(t, 4, 4, RGB(1, 2, 3))

	tests := []struct {
		name  string
		img   *Image
		pal   Palette
		opts  []Option
		cause error
	}{
		{"empty palette", img, Palette{}, nil, color.ErrEmptyPalette},
		{"negative radius", img, Monokai(), []Option{WithRadius(-1)}, filter.ErrInvalidRadius},
		{"disc radius 0", img, Monokai(), []Option{WithShape(ShapeDisc), WithRadius(0)}, filter.ErrDegenerateKernel},
		{"unknown shape", img, Monokai(), []Option{WithShape(Shape(9))}, filter.ErrUnknownShape},
		{"unknown edge", img, Monokai(), []Option{WithEdgeMode(EdgeMode(9))}, filter.ErrUnknownEdgeMode},
		{"nil image", nil, Monokai(), nil, ErrNilImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := BlurAndQuantize(tt.img, tt.pal, tt.opts...)
			if out != nil {
				t.Error("expected nil image on error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
			if !errors.Is(err, tt.cause) {
				t.Errorf("err = %v, want cause %v", err, tt.cause)
			}
		})
	}
}

func TestBlurAndQuantizeRadiusZero(t *testing.T) {
	img := noiseImage(t, 10, 10)
	pal := Monokai()

	got, err := BlurAndQuantize(img, pal, WithRadius(0))
	if err != nil {
		t.Fatal(err)
	}
	want, err := Quantize(img, pal, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("radius 0 should quantize the unblurred image")
	}
}

func TestQuantizeSingleColor(t *testing.T) {
	x := RGB(50, 60, 70)
	pal, err := NewPalette(x)
	if err != nil {
		t.Fatal(err)
	}
	out, err := Quantize(noiseImage(t, 9, 9), pal, 4)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 9; y++ {
		for x2 := 0; x2 < 9; x2++ {
			if !color.SameRGB(out.At(x2, y), x) {
				t.Fatalf("At(%d, %d) = %v, want %v", x2, y, out.At(x2, y), x)
			}
		}
	}
}

func TestBlurUniformUnchanged(t *testing.T) {
	c := RGB(99, 140, 201)
	img := solidImage(t, 11, 7, c)
	out, err := Blur(img, ShapeBox, 3, EdgeClamp)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(img) {
		t.Error("box blur of a uniform image changed it")
	}
}

func TestWrapperErrors(t *testing.T) {
	if _, err := Blur(nil, ShapeBox, 1, EdgeClamp); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Blur(nil) err = %v", err)
	}
	if _, err := Quantize(nil, Monokai(), 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Quantize(nil) err = %v", err)
	}
	if _, err := Quantize(solidImage(t, 2, 2, RGB(0, 0, 0)), Palette{}, 1); !errors.Is(err, color.ErrEmptyPalette) {
		t.Errorf("Quantize empty palette err = %v", err)
	}
	if _, err := NewImage(0, 1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewImage(0, 1) err = %v", err)
	}
	if _, err := NewPalette(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewPalette() err = %v", err)
	}
	if _, err := Closest(RGB(1, 1, 1), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Closest(nil) err = %v", err)
	}
}

func TestClosestAndDistance(t *testing.T) {
	got, err := Closest(RGB(200, 10, 10), []Color{RGB(0, 0, 0), RGB(255, 0, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if got != RGB(255, 0, 0) {
		t.Errorf("Closest = %v, want red", got)
	}
	if d := Distance(RGB(0, 0, 0), RGB(0, 3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func BenchmarkBlurAndQuantize(b *testing.B) {
	img := noiseImage(b, 512, 512)
	pal := Monokai()

	b.Run("workers=1", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = BlurAndQuantize(img, pal, WithWorkers(1))
		}
	})
	b.Run("workers=max", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = BlurAndQuantize(img, pal)
		}
	})
}
