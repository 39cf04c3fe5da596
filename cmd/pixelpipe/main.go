// Command pixelpipe applies a filter pipeline to an image file, or to a
// whole directory of them.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/pixelforge/pixelpipe"
	"github.com/pixelforge/pixelpipe/batch"
	"github.com/pixelforge/pixelpipe/codec"
)

func main() {
	var (
		in      = flag.String("in", "", "input image file or directory")
		out     = flag.String("out", "", "output image file or directory")
		opsJSON = flag.String("ops", "[]", "filter pipeline as a JSON array")
		width   = flag.Int("width", 0, "resize target width (with -height)")
		height  = flag.Int("height", 0, "resize target height (with -width)")
		gray    = flag.Bool("grayscale", false, "convert to grayscale after -ops")
		workers = flag.Int("workers", 0, "worker goroutines per filter (0 = all CPUs)")
		quality = flag.Int("quality", codec.DefaultJPEGQuality, "JPEG output quality")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		pixelpipe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ops, err := pixelpipe.ParseOps([]byte(*opsJSON))
	if err != nil {
		log.Fatalf("Failed to parse -ops: %v", err)
	}

	info, err := os.Stat(*in)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	if info.IsDir() {
		runBatch(*in, *out, ops, *width, *height, *gray, *workers, *quality)
		return
	}
	runSingle(*in, *out, ops, *width, *height, *gray, *workers, *quality)
}

func runSingle(in, out string, ops []pixelpipe.Op, width, height int, gray bool, workers, quality int) {
	if width > 0 && height > 0 {
		ops = append(ops, pixelpipe.ResizeOp(width, height))
	}
	if gray {
		ops = append(ops, pixelpipe.GrayscaleOp())
	}

	src, err := codec.Load(in)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", in, err)
	}

	res, err := pixelpipe.NewPipeline(ops, pixelpipe.WithWorkers(workers)).Execute(src)
	if err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}

	if err := saveWithQuality(out, res, quality); err != nil {
		log.Fatalf("Failed to save %s: %v", out, err)
	}
	log.Printf("Saved %s (%dx%d, %d ops)\n", out, res.Width(), res.Height(), len(ops))
}

func saveWithQuality(path string, buf *pixelpipe.Buffer, quality int) error {
	if quality != codec.DefaultJPEGQuality && hasJPEGExt(path) {
		data, err := codec.EncodeJPEG(buf, quality)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}
	return codec.Save(path, buf)
}

func hasJPEGExt(path string) bool {
	n := len(path)
	return (n >= 4 && path[n-4:] == ".jpg") || (n >= 5 && path[n-5:] == ".jpeg")
}

func runBatch(in, out string, ops []pixelpipe.Op, width, height int, gray bool, workers, quality int) {
	p, err := batch.NewProcessor(batch.Config{
		InputDir:     in,
		OutputDir:    out,
		Ops:          ops,
		TargetWidth:  width,
		TargetHeight: height,
		Grayscale:    gray,
		Parallelism:  workers,
		JPEGQuality:  quality,
	})
	if err != nil {
		log.Fatalf("Invalid batch config: %v", err)
	}
	res, err := p.Run(context.Background())
	if err != nil {
		log.Fatalf("Batch failed: %v", err)
	}
	log.Printf("Processed %d files (%d skipped) into %s\n", res.Processed, res.Skipped, out)
}
