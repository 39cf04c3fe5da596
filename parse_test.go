package pixelpipe

import (
	"testing"
)

func TestParseOpsAllKinds(t *testing.T) {
	input := `[
		{"type": "grayscale"},
		{"type": "brightness", "value": 0.25},
		{"type": "contrast", "value": 1.5},
		{"type": "blur", "sigma": 2},
		{"type": "sharpen"},
		{"type": "edge_detect"},
		{"type": "resize", "width": 320, "height": 240},
		{"type": "invert"},
		{"type": "sepia"}
	]`

	ops, err := ParseOps([]byte(input))
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}

	want := []Op{
		GrayscaleOp(),
		BrightnessOp(0.25),
		ContrastOp(1.5),
		BlurOp(2),
		SharpenOp(),
		EdgeDetectOp(),
		ResizeOp(320, 240),
		InvertOp(),
		SepiaOp(),
	}
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("op %d = %+v, want %+v", i, ops[i], want[i])
		}
	}
}

func TestParseOpsBlurAcceptsValueAlias(t *testing.T) {
	ops, err := ParseOps([]byte(`[{"type": "blur", "value": 1.5}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0] != BlurOp(1.5) {
		t.Errorf("ops = %+v, want [blur(sigma=1.5)]", ops)
	}

	// "sigma" wins when both are present.
	ops, err = ParseOps([]byte(`[{"type": "blur", "sigma": 2, "value": 9}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0] != BlurOp(2) {
		t.Errorf("ops = %+v, want [blur(sigma=2)]", ops)
	}
}

func TestParseOpsDropsUnknownNames(t *testing.T) {
	// Unknown operation names are dropped silently, preserving the rest
	// of the list and its order.
	input := `[
		{"type": "grayscale"},
		{"type": "vignette", "value": 0.3},
		{"type": "posterize"},
		{"type": "invert"}
	]`
	ops, err := ParseOps([]byte(input))
	if err != nil {
		t.Fatalf("ParseOps: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("got %d ops, want 2", len(ops))
	}
	if ops[0].Kind != KindGrayscale || ops[1].Kind != KindInvert {
		t.Errorf("ops = %+v, want [grayscale, invert]", ops)
	}
}

func TestParseOpsDropsIncompleteOps(t *testing.T) {
	// Parameterized operations missing their parameter are dropped, not
	// defaulted.
	input := `[
		{"type": "brightness"},
		{"type": "blur"},
		{"type": "resize", "width": 100},
		{"type": "sepia"}
	]`
	ops, err := ParseOps([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0].Kind != KindSepia {
		t.Errorf("ops = %+v, want [sepia]", ops)
	}
}

func TestParseOpsEmptyArray(t *testing.T) {
	ops, err := ParseOps([]byte(`[]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 0 {
		t.Errorf("got %d ops, want 0", len(ops))
	}
}

func TestParseOpsMalformedJSON(t *testing.T) {
	for _, input := range []string{``, `{`, `{"type": "grayscale"}`, `[{"type": }]`} {
		if _, err := ParseOps([]byte(input)); err == nil {
			t.Errorf("ParseOps(%q) succeeded, want error", input)
		}
	}
}
