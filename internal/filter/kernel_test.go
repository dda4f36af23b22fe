package filter

import (
	"errors"
	"math"
	"testing"
)

func TestBoxKernelZeroRadius(t *testing.T) {
	k := BoxKernel(0)

	if k.Size() != 1 {
		t.Errorf("BoxKernel(0).Size() = %d, want 1", k.Size())
	}
	if k.At(0, 0) != 1.0 {
		t.Errorf("BoxKernel(0).At(0, 0) = %v, want 1.0", k.At(0, 0))
	}
}

func TestBoxKernelUniform(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10} {
		k := BoxKernel(r)
		size := 2*r + 1
		want := 1.0 / float64(size*size)

		if k.Size() != size {
			t.Errorf("BoxKernel(%d).Size() = %d, want %d", r, k.Size(), size)
		}
		if k.Filled() != size*size {
			t.Errorf("BoxKernel(%d).Filled() = %d, want %d", r, k.Filled(), size*size)
		}
		for i, v := range k.weights {
			if !approxEqual(v, want, 1e-12) {
				t.Fatalf("BoxKernel(%d)[%d] = %v, want %v", r, i, v, want)
			}
		}
		if !approxEqual(k.Sum(), 1.0, 1e-6) {
			t.Errorf("BoxKernel(%d).Sum() = %v, want 1.0", r, k.Sum())
		}
	}
}

func TestDiscKernelZeroRadius(t *testing.T) {
	_, err := DiscKernel(0)
	if !errors.Is(err, ErrDegenerateKernel) {
		t.Errorf("DiscKernel(0) err = %v, want ErrDegenerateKernel", err)
	}
}

func TestDiscKernelRadiusOne(t *testing.T) {
	k, err := DiscKernel(1)
	if err != nil {
		t.Fatal(err)
	}
	// Only the center satisfies sqrt(dx²+dy²) < 1.
	if k.Filled() != 1 {
		t.Errorf("DiscKernel(1).Filled() = %d, want 1", k.Filled())
	}
	if k.At(0, 0) != 1.0 {
		t.Errorf("DiscKernel(1).At(0, 0) = %v, want 1.0", k.At(0, 0))
	}
}

func TestDiscKernelNormalized(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 8, 20} {
		k, err := DiscKernel(r)
		if err != nil {
			t.Fatalf("DiscKernel(%d): %v", r, err)
		}
		if !approxEqual(k.Sum(), 1.0, 1e-6) {
			t.Errorf("DiscKernel(%d).Sum() = %v, want 1.0", r, k.Sum())
		}
	}
}

func TestDiscKernelOutsideIsZero(t *testing.T) {
	for _, r := range []int{2, 5} {
		k, _ := DiscKernel(r)
		want := 1.0 / float64(k.Filled())
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				inside := math.Sqrt(float64(dx*dx+dy*dy)) < float64(r)
				got := k.At(dx, dy)
				if inside && got != want {
					t.Errorf("DiscKernel(%d).At(%d, %d) = %v, want %v", r, dx, dy, got, want)
				}
				if !inside && got != 0 {
					t.Errorf("DiscKernel(%d).At(%d, %d) = %v, want 0", r, dx, dy, got)
				}
			}
		}
	}
}

func TestDiscKernelRadiusTwoCells(t *testing.T) {
	k, _ := DiscKernel(2)
	// Center, 4 neighbors at 1 and 4 diagonals at sqrt(2); distance 2 is excluded.
	if k.Filled() != 9 {
		t.Errorf("DiscKernel(2).Filled() = %d, want 9", k.Filled())
	}
	if k.At(2, 0) != 0 || k.At(0, -2) != 0 {
		t.Error("cells at distance exactly 2 should be excluded")
	}
}

func TestGaussianKernelZeroRadius(t *testing.T) {
	k := GaussianKernel(0)
	if k.Size() != 1 || k.At(0, 0) != 1.0 {
		t.Errorf("GaussianKernel(0) = size %d, center %v; want identity", k.Size(), k.At(0, 0))
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 20} {
		k := GaussianKernel(r)
		if !approxEqual(k.Sum(), 1.0, 1e-6) {
			t.Errorf("GaussianKernel(%d).Sum() = %v, want ~1.0", r, k.Sum())
		}
	}
}

func TestGaussianKernelSymmetricPeak(t *testing.T) {
	r := 5
	k := GaussianKernel(r)
	center := k.At(0, 0)

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			v := k.At(dx, dy)
			if v > center {
				t.Fatalf("At(%d, %d) = %v exceeds center %v", dx, dy, v, center)
			}
			if !approxEqual(v, k.At(-dx, dy), 1e-12) || !approxEqual(v, k.At(dx, -dy), 1e-12) {
				t.Fatalf("kernel asymmetric at (%d, %d)", dx, dy)
			}
		}
	}
}

func TestNewKernel(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		radius   int
		wantSize int
		wantErr  error
	}{
		{"box r0", ShapeBox, 0, 1, nil},
		{"box r2", ShapeBox, 2, 5, nil},
		{"disc r0", ShapeDisc, 0, 0, ErrDegenerateKernel},
		{"disc r5", ShapeDisc, 5, 11, nil},
		{"gaussian r3", ShapeGaussian, 3, 7, nil},
		{"negative box", ShapeBox, -1, 0, ErrInvalidRadius},
		{"negative disc", ShapeDisc, -3, 0, ErrInvalidRadius},
		{"unknown shape", Shape(99), 2, 0, ErrUnknownShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := NewKernel(tt.shape, tt.radius)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewKernel(%v, %d) err = %v, want %v", tt.shape, tt.radius, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if k.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", k.Size(), tt.wantSize)
			}
			if k.Radius() != tt.radius {
				t.Errorf("Radius() = %d, want %d", k.Radius(), tt.radius)
			}
			for _, w := range k.weights {
				if math.IsNaN(w) {
					t.Fatal("kernel contains NaN weight")
				}
			}
		})
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"box", ShapeBox, false},
		{"BOX", ShapeBox, false},
		{"disc", ShapeDisc, false},
		{" disk ", ShapeDisc, false},
		{"gaussian", ShapeGaussian, false},
		{"triangle", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseShape(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownShape) {
				t.Errorf("ParseShape(%q) err = %v, want ErrUnknownShape", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseShape(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if got.String() != "box" && got.String() != "disc" && got.String() != "gaussian" {
			t.Errorf("Shape.String() = %q", got.String())
		}
	}
}

func TestKernelAtOutside(t *testing.T) {
	k := BoxKernel(1)
	if k.At(2, 0) != 0 || k.At(0, -2) != 0 {
		t.Error("At outside the kernel should be 0")
	}
}

func BenchmarkNewKernel(b *testing.B) {
	for _, shape := range []Shape{ShapeBox, ShapeDisc, ShapeGaussian} {
		b.Run(shape.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = NewKernel(shape, 5)
			}
		})
	}
}
