package pixelpipe

import (
	"errors"
	"testing"
)

func TestResizeDimensions(t *testing.T) {
	b := testBuffer(t, 100, 100)
	tests := []struct{ w, h int }{
		{50, 50}, {200, 200}, {100, 100}, {33, 77}, {1, 1},
	}
	for _, tt := range tests {
		out, err := Resize(b, tt.w, tt.h)
		if err != nil {
			t.Fatalf("Resize(%d, %d): %v", tt.w, tt.h, err)
		}
		if out.Width() != tt.w || out.Height() != tt.h {
			t.Errorf("Resize(%d, %d) dimensions = %dx%d", tt.w, tt.h, out.Width(), out.Height())
		}
		if len(out.Pix()) != tt.w*tt.h*4 {
			t.Errorf("Resize(%d, %d): len(Pix) = %d, want %d",
				tt.w, tt.h, len(out.Pix()), tt.w*tt.h*4)
		}
	}
}

func TestResizeZeroDimensionFails(t *testing.T) {
	b := testBuffer(t, 10, 10)
	for _, tt := range []struct{ w, h int }{{0, 10}, {10, 0}, {0, 0}, {-5, 10}, {1 << 30, 1 << 30}} {
		out, err := Resize(b, tt.w, tt.h)
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Resize(%d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
		}
		if out != nil {
			t.Errorf("Resize(%d, %d) returned a buffer alongside the error", tt.w, tt.h)
		}
	}
}

func TestResizeSolidColor(t *testing.T) {
	b, err := NewBuffer(20, 20)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			b.SetPixel(x, y, 30, 60, 90, 255)
		}
	}

	out, err := Resize(b, 7, 13)
	if err != nil {
		t.Fatal(err)
	}
	pix := out.Pix()
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != 30 || pix[i+1] != 60 || pix[i+2] != 90 || pix[i+3] != 255 {
			t.Fatalf("pixel %d = (%d,%d,%d,%d), want (30,60,90,255)",
				i/4, pix[i], pix[i+1], pix[i+2], pix[i+3])
		}
	}
}

func TestResizeSameSizeIsIdentity(t *testing.T) {
	b := testBuffer(t, 15, 11)
	out, err := Resize(b, 15, 11)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(b) {
		t.Error("same-size resize changed pixel data")
	}
}

func TestResizeDoesNotMutateInput(t *testing.T) {
	b := testBuffer(t, 16, 16)
	before := b.Clone()
	if _, err := Resize(b, 4, 4); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(before) {
		t.Error("Resize mutated its input")
	}
}
