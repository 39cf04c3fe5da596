package pixelpipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Option configures a Pipeline during creation.
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds the number of worker goroutines each filter may
// fan out to. n <= 0 (the default) means one worker per logical CPU.
//
// Example:
//
//	p := pixelpipe.NewPipeline(ops, pixelpipe.WithWorkers(2))
func WithWorkers(n int) Option {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}

// WithLogger gives the pipeline its own logger instead of the
// package-level one set via SetLogger. nil falls back to the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *pipelineOptions) {
		o.logger = l
	}
}

// Pipeline is an ordered sequence of filter operations. It is stateless
// and reusable: the same Pipeline may be executed against any number of
// buffers, concurrently if desired.
//
// Operations are applied strictly in list order; the engine never fuses
// or reorders them, since filters do not commute in general (resizing
// before blurring changes the effective blur radius, grayscale before
// sepia differs from sepia before grayscale).
type Pipeline struct {
	ops     []Op
	workers int
	logger  *slog.Logger
}

// NewPipeline creates a pipeline from an ordered operation list. The
// slice is copied, so later mutation by the caller does not affect the
// pipeline.
func NewPipeline(ops []Op, opts ...Option) *Pipeline {
	var o pipelineOptions
	for _, opt := range opts {
		opt(&o)
	}

	copied := make([]Op, len(ops))
	copy(copied, ops)

	return &Pipeline{ops: copied, workers: o.workers, logger: o.logger}
}

// Ops returns a copy of the pipeline's operation list.
func (p *Pipeline) Ops() []Op {
	ops := make([]Op, len(p.ops))
	copy(ops, p.ops)
	return ops
}

// Execute applies the pipeline's operations to src in order, threading
// each intermediate buffer into the next operation. src is never
// modified; an empty pipeline returns a value-equal copy of src.
//
// Execution fails fast: the first operation whose preconditions are
// violated aborts the run and its error is returned. No partially
// transformed buffer is ever surfaced.
func (p *Pipeline) Execute(src *Buffer) (*Buffer, error) {
	log := p.logger
	if log == nil {
		log = Logger()
	}
	var runID string
	if log.Enabled(context.Background(), slog.LevelDebug) {
		runID = uuid.NewString()
		log.Debug("pipeline start",
			"run", runID,
			"ops", len(p.ops),
			"width", src.Width(),
			"height", src.Height())
	}

	cur := src
	for i, op := range p.ops {
		next, err := p.apply(cur, op)
		if err != nil {
			if runID != "" {
				log.Debug("pipeline aborted", "run", runID, "step", i, "op", op.String(), "err", err)
			}
			return nil, err
		}
		cur = next
	}

	if cur == src {
		// Empty pipeline: still hand back an owned copy so the result
		// never aliases the caller's buffer.
		cur = src.Clone()
	}

	if runID != "" {
		log.Debug("pipeline done", "run", runID,
			"width", cur.Width(), "height", cur.Height())
	}
	return cur, nil
}

// apply dispatches a single operation. The switch is exhaustive over
// the closed OpKind set.
func (p *Pipeline) apply(src *Buffer, op Op) (*Buffer, error) {
	switch op.Kind {
	case KindGrayscale:
		return grayscaleWith(src, p.workers), nil
	case KindBrightness:
		return brightnessWith(src, op.Value, p.workers), nil
	case KindContrast:
		return contrastWith(src, op.Value, p.workers), nil
	case KindBlur:
		return blurWith(src, op.Value, p.workers)
	case KindSharpen:
		return sharpenWith(src, p.workers), nil
	case KindEdgeDetect:
		return edgeDetectWith(src, p.workers), nil
	case KindResize:
		return resizeWith(src, op.Width, op.Height, p.workers)
	case KindInvert:
		return invertWith(src, p.workers), nil
	case KindSepia:
		return sepiaWith(src, p.workers), nil
	default:
		return nil, fmt.Errorf("%w: unknown operation kind %d", ErrInvalidParameter, op.Kind)
	}
}
