package almanac

import (
	"go.uber.org/zap"

	"aoc2023/internal/interval"
)

// Pipeline is the ordered list of stages a seed goes through.
type Pipeline struct {
	Stages []Stage
	logger *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger traces every stage and split at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPipeline creates a pipeline running stages in the given order.
func NewPipeline(stages []Stage, opts ...Option) *Pipeline {
	p := &Pipeline{
		Stages: stages,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Lookup maps a single value through every stage.
func (p *Pipeline) Lookup(v int64) int64 {
	for _, s := range p.Stages {
		next := s.Lookup(v)
		p.logger.Debug("lookup", zap.String("stage", s.Name), zap.Int64("from", v), zap.Int64("to", next))
		v = next
	}

	return v
}

// Apply maps seeds through every stage, feeding each stage's output to the next.
func (p *Pipeline) Apply(seeds []interval.Interval) []interval.Interval {
	current := seeds
	for _, s := range p.Stages {
		p.logger.Debug("stage start",
			zap.String("stage", s.Name),
			zap.Int("intervals", len(current)),
			zap.Int64("width", interval.TotalWidth(current)))

		current = s.apply(current, p.logger.With(zap.String("stage", s.Name)))
	}

	return current
}
