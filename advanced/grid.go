package advanced

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

const (
	DefaultGridSize = 2048
	DefaultGridMin  = 0.0
	DefaultGridMax  = 1.0

	// Largest grid size accepted. The cell count stays within 32 bits.
	MaxGridSize = 1 << 15
)

// Grid samples an evenly spaced size×size lattice covering [min, max] on both
// axes. The result is row major: the cell at column col and row row is
// result[row*size+col], sampled at (min+col*step, min+row*step). A size of 1
// samples the single point (min, min).
//
// Rows are sampled concurrently. The context is checked before each row, so a
// cancelled context stops the work at the next row boundary and its error is
// returned. The returned slice belongs to the caller.
func (s *Sampler[T]) Grid(ctx context.Context, size int, min, max float64) ([]T, error) {
	if size < 1 || size > MaxGridSize {
		return nil, errors.Wrapf(ErrInvalidGrid, "size must be in [1, %d], got %d", MaxGridSize, size)
	}
	if !isFinite(min) || !isFinite(max) {
		return nil, errors.Wrapf(ErrInvalidGrid, "range [%g, %g] is not finite", min, max)
	}

	var step float64
	if size > 1 {
		step = (max - min) / float64(size-1)
	}

	grid := make([]T, size*size)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.workers)
	for row := 0; row < size; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			y := min + float64(row)*step
			offset := row * size
			for col := 0; col < size; col++ {
				value, err := s.Value(min+float64(col)*step, y)
				if err != nil {
					return err
				}
				grid[offset+col] = value
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.opts.logger.Debug("sampled grid",
		zap.Int("size", size),
		zap.Float64("min", min),
		zap.Float64("max", max),
		zap.Int("workers", s.opts.workers),
	)
	return grid, nil
}

// ScalarGridMatrix views a row major scalar grid as a size×size matrix. Cells
// holding NaN stay NaN.
func ScalarGridMatrix(grid []Scalar, size int) (*mat.Dense, error) {
	if size < 1 || size > MaxGridSize || len(grid) != size*size {
		return nil, errors.Wrapf(ErrInvalidGrid, "%d cells do not form a %d×%d grid", len(grid), size, size)
	}
	data := make([]float64, len(grid))
	for i, v := range grid {
		data[i] = float64(v)
	}
	return mat.NewDense(size, size, data), nil
}

// Range of the non NaN values in a scalar grid. ok is false when every cell is
// NaN.
func ScalarGridRange(grid []Scalar) (lo, hi Scalar, ok bool) {
	lo, hi = Scalar(math.Inf(1)), Scalar(math.Inf(-1))
	for _, v := range grid {
		if v.IsNaN() {
			continue
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}
