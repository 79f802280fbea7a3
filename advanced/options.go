package advanced

import (
	"runtime"

	"go.uber.org/zap"
)

type options struct {
	strict    bool
	tolerance float64
	logger    *zap.Logger
	workers   int
}

type Option func(*options)

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithStrict turns the numeric degeneracies into errors. Without it, collinear
// triangles and queries that land exactly on a vertex produce whatever IEEE
// arithmetic produces, usually NaN or Inf.
// Strict mode also rejects input containing duplicate coordinates.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithDegeneracyTolerance sets how close to zero the circumcenter denominator
// may get before a triangle is considered degenerate. Only used in strict mode.
func WithDegeneracyTolerance(eps float64) Option {
	if !(eps >= 0) {
		panic("WithDegeneracyTolerance: eps must be non-negative and not NaN")
	}
	return func(o *options) {
		o.tolerance = eps
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = zap.NewNop()
		}
		o.logger = logger
	}
}

// WithWorkers bounds the number of goroutines used for grid sampling.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
