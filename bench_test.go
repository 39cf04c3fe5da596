package pixelpipe

import (
	"testing"
)

func benchBuffer(b *testing.B, width, height int) *Buffer {
	b.Helper()
	buf, err := NewBuffer(width, height)
	if err != nil {
		b.Fatal(err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.SetPixel(x, y, uint8(x%256), uint8(y%256), uint8((x+y)%256), 255)
		}
	}
	return buf
}

func BenchmarkGrayscale(b *testing.B) {
	buf := benchBuffer(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Grayscale(buf)
	}
}

func BenchmarkBlurSigma2(b *testing.B) {
	buf := benchBuffer(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Blur(buf, 2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSharpen(b *testing.B) {
	buf := benchBuffer(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sharpen(buf)
	}
}

func BenchmarkEdgeDetect(b *testing.B) {
	buf := benchBuffer(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EdgeDetect(buf)
	}
}

func BenchmarkResizeHalf(b *testing.B) {
	buf := benchBuffer(b, 512, 512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Resize(buf, 256, 256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPipeline(b *testing.B) {
	buf := benchBuffer(b, 256, 256)
	p := NewPipeline([]Op{
		BrightnessOp(0.1),
		ContrastOp(1.2),
		BlurOp(1.5),
		GrayscaleOp(),
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Execute(buf); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPipelineSingleWorker(b *testing.B) {
	buf := benchBuffer(b, 256, 256)
	p := NewPipeline([]Op{BlurOp(1.5)}, WithWorkers(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Execute(buf); err != nil {
			b.Fatal(err)
		}
	}
}
