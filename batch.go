package halfvec

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/halfvec/internal/f16"
	"github.com/hupe1980/halfvec/internal/halfmath"
)

// L2SquaredBatch computes the squared L2 distance between query and each
// dim-sized row of targets, writing one result per row into out. targets
// is packed row-major and must hold at least dim*len(out) elements.
func L2SquaredBatch(dim int32, query, targets []Half, out []float32) error {
	if err := validateBatch(dim, query, targets, out); err != nil {
		return err
	}
	halfmath.L2SquaredBatch(bits(query[:dim]), bits(targets), int(dim), out)
	return nil
}

// InnerProductBatch computes the inner product between query and each
// dim-sized row of targets, writing one result per row into out.
func InnerProductBatch(dim int32, query, targets []Half, out []float32) error {
	if err := validateBatch(dim, query, targets, out); err != nil {
		return err
	}
	halfmath.DotBatch(bits(query[:dim]), bits(targets), int(dim), out)
	return nil
}

// L2SquaredBatchParallel is L2SquaredBatch with rows split across
// parallelism goroutines. Each row is still accumulated sequentially, so
// per-row results are identical to the sequential form.
func L2SquaredBatchParallel(ctx context.Context, dim int32, query, targets []Half, out []float32, parallelism int) error {
	return parallelRows(ctx, dim, query, targets, out, parallelism, halfmath.L2SquaredBatch)
}

// InnerProductBatchParallel is InnerProductBatch with rows split across
// parallelism goroutines.
func InnerProductBatchParallel(ctx context.Context, dim int32, query, targets []Half, out []float32, parallelism int) error {
	return parallelRows(ctx, dim, query, targets, out, parallelism, halfmath.DotBatch)
}

func parallelRows(
	ctx context.Context,
	dim int32,
	query, targets []Half,
	out []float32,
	parallelism int,
	batch func(query, targets []f16.Bits, dimension int, out []float32),
) error {
	if err := validateBatch(dim, query, targets, out); err != nil {
		return err
	}
	if parallelism < 1 {
		parallelism = 1
	}
	rows := len(out)
	chunk := (rows + parallelism - 1) / parallelism

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	q := bits(query[:dim])
	d := int(dim)
	for start := 0; start < rows; start += chunk {
		start := start
		end := min(start+chunk, rows)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			batch(q, bits(targets[start*d:end*d]), d, out[start:end])
			return nil
		})
	}
	return g.Wait()
}

func validateBatch(dim int32, query, targets []Half, out []float32) error {
	if dim <= 0 {
		return &ErrInvalidDimension{Dimension: int(dim)}
	}
	if len(query) < int(dim) {
		return &ErrDimensionMismatch{Expected: int(dim), Actual: len(query)}
	}
	if need := int(dim) * len(out); len(targets) < need {
		return &ErrDimensionMismatch{Expected: need, Actual: len(targets)}
	}
	return nil
}
