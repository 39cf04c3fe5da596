// Package batch runs a fixed pipeline over many image files
// concurrently.
//
// A Processor walks an input directory, decodes every supported image,
// runs the configured pipeline, and writes the result to the output
// directory under the same relative path. Files are processed by a
// bounded group of workers; the first failure cancels the rest.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pixelforge/pixelpipe"
	"github.com/pixelforge/pixelpipe/codec"
	"github.com/pixelforge/pixelpipe/internal/parallel"
)

// Config describes one batch run.
type Config struct {
	// InputDir is the directory walked for images.
	InputDir string
	// OutputDir receives results, mirroring InputDir's layout. It is
	// created if missing.
	OutputDir string
	// Ops is the pipeline applied to every image.
	Ops []pixelpipe.Op
	// TargetWidth and TargetHeight, when both positive, append a resize
	// to Ops.
	TargetWidth  int
	TargetHeight int
	// Grayscale appends a grayscale conversion after any resize.
	Grayscale bool
	// Parallelism bounds concurrent files. Zero or negative means one
	// worker per CPU.
	Parallelism int
	// JPEGQuality overrides the encoder quality for .jpg/.jpeg outputs.
	// Zero means codec.DefaultJPEGQuality.
	JPEGQuality int
}

// ops returns the effective operation list for one run.
func (c *Config) ops() []pixelpipe.Op {
	out := make([]pixelpipe.Op, 0, len(c.Ops)+2)
	out = append(out, c.Ops...)
	if c.TargetWidth > 0 && c.TargetHeight > 0 {
		out = append(out, pixelpipe.ResizeOp(c.TargetWidth, c.TargetHeight))
	}
	if c.Grayscale {
		out = append(out, pixelpipe.GrayscaleOp())
	}
	return out
}

// Result summarizes a finished run.
type Result struct {
	Processed int
	Skipped   int
}

// Processor executes batch runs for one Config.
type Processor struct {
	cfg  Config
	pipe *pixelpipe.Pipeline
}

// NewProcessor validates cfg and builds the pipeline once.
func NewProcessor(cfg Config) (*Processor, error) {
	if cfg.InputDir == "" || cfg.OutputDir == "" {
		return nil, fmt.Errorf("batch: input and output directories are required: %w", pixelpipe.ErrInvalidParameter)
	}
	if (cfg.TargetWidth > 0) != (cfg.TargetHeight > 0) {
		return nil, fmt.Errorf("batch: target size needs both width and height: %w", pixelpipe.ErrInvalidDimensions)
	}
	return &Processor{cfg: cfg, pipe: pixelpipe.NewPipeline(cfg.ops())}, nil
}

// supported reports whether path has an image extension this package
// will pick up during a walk.
func supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".ppr":
		return true
	}
	return false
}

// Run walks the input directory and processes every supported image.
// The first error cancels outstanding work and is returned.
func (p *Processor) Run(ctx context.Context) (Result, error) {
	var files []string
	skipped := 0
	err := filepath.WalkDir(p.cfg.InputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if supported(path) {
			files = append(files, path)
		} else {
			skipped++
		}
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("batch: walk %s: %w", p.cfg.InputDir, err)
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("batch: create %s: %w", p.cfg.OutputDir, err)
	}

	log := pixelpipe.Logger()
	log.Info("batch run starting",
		slog.Int("files", len(files)),
		slog.String("input", p.cfg.InputDir),
		slog.String("output", p.cfg.OutputDir))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel.Workers(p.cfg.Parallelism))

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.processOne(path)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	log.Info("batch run finished",
		slog.Int("processed", len(files)),
		slog.Int("skipped", skipped))
	return Result{Processed: len(files), Skipped: skipped}, nil
}

// processOne decodes, filters, and re-encodes a single file.
func (p *Processor) processOne(path string) error {
	src, err := codec.Load(path)
	if err != nil {
		return fmt.Errorf("batch: %s: %w", path, err)
	}
	out, err := p.pipe.Execute(src)
	if err != nil {
		return fmt.Errorf("batch: %s: %w", path, err)
	}

	rel, err := filepath.Rel(p.cfg.InputDir, path)
	if err != nil {
		return fmt.Errorf("batch: %s: %w", path, err)
	}
	dst := filepath.Join(p.cfg.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("batch: %s: %w", dst, err)
	}

	ext := strings.ToLower(filepath.Ext(dst))
	if (ext == ".jpg" || ext == ".jpeg") && p.cfg.JPEGQuality > 0 {
		data, err := codec.EncodeJPEG(out, p.cfg.JPEGQuality)
		if err != nil {
			return fmt.Errorf("batch: %s: %w", dst, err)
		}
		return os.WriteFile(dst, data, 0o644)
	}
	if err := codec.Save(dst, out); err != nil {
		return fmt.Errorf("batch: %s: %w", dst, err)
	}
	return nil
}
