package pixelpipe

import (
	"errors"
	"testing"
)

func TestPipelineEmptyIsValueEqual(t *testing.T) {
	b := testBuffer(t, 10, 10)
	p := NewPipeline(nil)

	out, err := p.Execute(b)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Equal(b) {
		t.Error("empty pipeline result not value-equal to input")
	}
	if out == b {
		t.Error("empty pipeline returned the input buffer itself, want an owned copy")
	}
}

func TestPipelineSingleOp(t *testing.T) {
	b := testBuffer(t, 10, 10)
	p := NewPipeline([]Op{GrayscaleOp()})

	out, err := p.Execute(b)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !out.Equal(Grayscale(b)) {
		t.Error("pipeline grayscale differs from direct filter call")
	}
}

func TestPipelineSequencing(t *testing.T) {
	// The fold must thread op i's output into op i+1.
	b := testBuffer(t, 12, 12)
	p := NewPipeline([]Op{
		BrightnessOp(0.2),
		ContrastOp(1.2),
		GrayscaleOp(),
	})

	out, err := p.Execute(b)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := Grayscale(Contrast(Brightness(b, 0.2), 1.2))
	if !out.Equal(want) {
		t.Error("pipeline result differs from manual sequential application")
	}
}

func TestPipelineOrderMatters(t *testing.T) {
	b := testBuffer(t, 10, 10)

	ab, err := NewPipeline([]Op{GrayscaleOp(), SepiaOp()}).Execute(b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := NewPipeline([]Op{SepiaOp(), GrayscaleOp()}).Execute(b)
	if err != nil {
		t.Fatal(err)
	}
	if ab.Equal(ba) {
		t.Error("grayscale->sepia equals sepia->grayscale; operations should not commute here")
	}
}

func TestPipelineResizeChangesDownstreamDimensions(t *testing.T) {
	b := testBuffer(t, 40, 40)
	p := NewPipeline([]Op{
		ResizeOp(10, 20),
		BlurOp(1),
	})

	out, err := p.Execute(b)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out.Width() != 10 || out.Height() != 20 {
		t.Errorf("dimensions = %dx%d, want 10x20", out.Width(), out.Height())
	}
}

func TestPipelineFailFast(t *testing.T) {
	b := testBuffer(t, 10, 10)
	p := NewPipeline([]Op{
		GrayscaleOp(),
		BlurOp(-1), // invalid
		InvertOp(),
	})

	out, err := p.Execute(b)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("error = %v, want ErrInvalidParameter", err)
	}
	if out != nil {
		t.Error("failed pipeline surfaced a partial buffer")
	}
}

func TestPipelineInvalidResizeFails(t *testing.T) {
	b := testBuffer(t, 10, 10)
	p := NewPipeline([]Op{ResizeOp(0, 5)})

	_, err := p.Execute(b)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("error = %v, want ErrInvalidDimensions", err)
	}
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	b := testBuffer(t, 10, 10)
	before := b.Clone()

	p := NewPipeline([]Op{InvertOp(), BlurOp(1), SepiaOp()})
	if _, err := p.Execute(b); err != nil {
		t.Fatal(err)
	}
	if !b.Equal(before) {
		t.Error("pipeline execution mutated the input buffer")
	}
}

func TestPipelineReusable(t *testing.T) {
	p := NewPipeline([]Op{GrayscaleOp(), BrightnessOp(0.1)})

	a := testBuffer(t, 8, 8)
	b := testBuffer(t, 16, 4)

	outA1, err := p.Execute(a)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Execute(b); err != nil {
		t.Fatal(err)
	}
	outA2, err := p.Execute(a)
	if err != nil {
		t.Fatal(err)
	}
	if !outA1.Equal(outA2) {
		t.Error("re-executing a pipeline on the same input gave a different result")
	}
}

func TestPipelineWithWorkersDeterministic(t *testing.T) {
	b := testBuffer(t, 33, 21)
	ops := []Op{BrightnessOp(0.1), BlurOp(1.3), SharpenOp(), EdgeDetectOp()}

	seq, err := NewPipeline(ops, WithWorkers(1)).Execute(b)
	if err != nil {
		t.Fatal(err)
	}
	par, err := NewPipeline(ops, WithWorkers(8)).Execute(b)
	if err != nil {
		t.Fatal(err)
	}
	if !seq.Equal(par) {
		t.Error("worker count changed pipeline output; execution must be deterministic")
	}
}

func TestPipelineOpsCopied(t *testing.T) {
	ops := []Op{GrayscaleOp()}
	p := NewPipeline(ops)
	ops[0] = InvertOp()

	got := p.Ops()
	if len(got) != 1 || got[0].Kind != KindGrayscale {
		t.Error("pipeline shares the caller's op slice")
	}
}
