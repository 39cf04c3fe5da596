package pixelpipe

import (
	"errors"
	"testing"
)

func TestBlurPreservesDimensions(t *testing.T) {
	b := testBuffer(t, 20, 13)
	for _, sigma := range []float32{0.5, 1, 2.5} {
		out, err := Blur(b, sigma)
		if err != nil {
			t.Fatalf("Blur(sigma=%g): %v", sigma, err)
		}
		if out.Width() != 20 || out.Height() != 13 {
			t.Errorf("Blur(sigma=%g) dimensions = %dx%d, want 20x13",
				sigma, out.Width(), out.Height())
		}
	}
}

func TestBlurInvalidSigma(t *testing.T) {
	b := testBuffer(t, 4, 4)
	for _, sigma := range []float32{0, -1, -0.001} {
		out, err := Blur(b, sigma)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Blur(sigma=%g) error = %v, want ErrInvalidParameter", sigma, err)
		}
		if out != nil {
			t.Errorf("Blur(sigma=%g) returned a buffer alongside the error", sigma)
		}
	}
}

func TestBlurUniformImageUnchanged(t *testing.T) {
	b, err := NewBuffer(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			b.SetPixel(x, y, 60, 120, 180, 240)
		}
	}

	out, err := Blur(b, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(b) {
		t.Error("blurring a uniform image changed it")
	}
}

func TestBlurBlursAlpha(t *testing.T) {
	// An opaque pixel surrounded by transparency must lose alpha.
	b, err := NewBuffer(9, 9)
	if err != nil {
		t.Fatal(err)
	}
	b.SetPixel(4, 4, 255, 255, 255, 255)

	out, err := Blur(b, 1)
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, a := out.Pixel(4, 4)
	if a == 255 || a == 0 {
		t.Errorf("center alpha = %d, want blurred into (0, 255)", a)
	}
}

func TestBlurDoesNotMutateInput(t *testing.T) {
	b := testBuffer(t, 8, 8)
	before := b.Clone()
	if _, err := Blur(b, 1.5); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(before) {
		t.Error("Blur mutated its input")
	}
}

func TestSharpenPreservesDimensionsAndAlpha(t *testing.T) {
	b := testBuffer(t, 12, 12)
	out := Sharpen(b)

	if out.Width() != 12 || out.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, want 12x12", out.Width(), out.Height())
	}
	src := b.Pix()
	pix := out.Pix()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != src[i] {
			t.Fatalf("alpha byte %d changed: %d -> %d (alpha must be copied, not recomputed)",
				i, src[i], pix[i])
		}
	}
}

func TestSharpenUniformImageUnchanged(t *testing.T) {
	b, err := NewBuffer(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			b.SetPixel(x, y, 90, 90, 90, 255)
		}
	}
	out := Sharpen(b)
	if !out.Equal(b) {
		t.Error("sharpening a uniform image changed it")
	}
}

func TestSharpenIncreasesLocalContrast(t *testing.T) {
	// A bright pixel on a dark field must get brighter (or stay put at
	// the clamp), its dark neighbors darker or equal.
	b, err := NewBuffer(9, 9)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			b.SetPixel(x, y, 50, 50, 50, 255)
		}
	}
	b.SetPixel(4, 4, 200, 200, 200, 255)

	out := Sharpen(b)
	r, _, _, _ := out.Pixel(4, 4)
	if r < 200 {
		t.Errorf("center after sharpen = %d, want >= 200", r)
	}
	nr, _, _, _ := out.Pixel(4, 5)
	if nr > 50 {
		t.Errorf("neighbor after sharpen = %d, want <= 50", nr)
	}
}
