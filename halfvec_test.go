package halfvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enc(vals ...float32) []Half {
	h := make([]Half, len(vals))
	for i, v := range vals {
		h[i] = ToHalf(v)
	}
	return h
}

func TestConversionPrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want Half
	}{
		{"+0", 0, 0x0000},
		{"+1", 1, 0x3C00},
		{"-2", -2, 0xC000},
		{"max finite", 65504, 0x7BFF},
		{"saturates", 65520, 0x7C00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHalf(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.in <= 65504 {
				assert.Equal(t, tt.in, FromHalf(got))
			}
		})
	}
}

func TestL2SquaredDistance(t *testing.T) {
	a := enc(1, 2, 3)
	b := enc(4, 5, 6)

	got, err := L2SquaredDistance(3, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 27, got, 1e-2)

	// Symmetry.
	rev, err := L2SquaredDistance(3, b, a)
	require.NoError(t, err)
	assert.Equal(t, got, rev)

	// Zero case.
	zero, err := L2SquaredDistance(3, enc(0, 0, 0), enc(0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, float32(0), zero)
}

func TestInnerProduct(t *testing.T) {
	a := enc(1, 2, 3)
	b := enc(4, 5, 6)

	got, err := InnerProduct(3, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 32, got, 1e-2)

	rev, err := InnerProduct(3, b, a)
	require.NoError(t, err)
	assert.Equal(t, got, rev)

	zero, err := InnerProduct(3, enc(0, 0, 0), enc(4, 5, 6))
	require.NoError(t, err)
	assert.Equal(t, float32(0), zero)
}

func TestL1Distance(t *testing.T) {
	got, err := L1Distance(3, enc(1, 2, 3), enc(4, 5, 6))
	require.NoError(t, err)
	assert.InDelta(t, 9, got, 1e-2)

	got, err = L1Distance(3, enc(0, 0, 0), enc(4, 5, 6))
	require.NoError(t, err)
	assert.InDelta(t, 15, got, 1e-2)
}

func TestCosineSimilarity(t *testing.T) {
	got, err := CosineSimilarity(3, enc(1, 2, 3), enc(4, 5, 6))
	require.NoError(t, err)
	assert.InDelta(t, 0.9746, got, 1e-3)

	// Parallel vectors.
	got, err = CosineSimilarity(3, enc(1, 2, 3), enc(2, 4, 6))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-3)
}

func TestCosineSimilarity_ZeroNorm(t *testing.T) {
	_, err := CosineSimilarity(3, enc(0, 0, 0), enc(1, 2, 3))
	require.ErrorIs(t, err, ErrZeroNorm)

	_, err = CosineSimilarity(3, enc(1, 2, 3), enc(0, 0, 0))
	require.ErrorIs(t, err, ErrZeroNorm)
}

func TestInvalidArguments(t *testing.T) {
	a := enc(1, 2, 3)
	b := enc(4, 5, 6)

	t.Run("NonPositiveDimension", func(t *testing.T) {
		for _, dim := range []int32{0, -1} {
			_, err := L2SquaredDistance(dim, nil, nil)
			var invalid *ErrInvalidDimension
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, int(dim), invalid.Dimension)

			_, err = InnerProduct(dim, nil, nil)
			require.ErrorAs(t, err, &invalid)
			_, err = L1Distance(dim, nil, nil)
			require.ErrorAs(t, err, &invalid)
			_, err = CosineSimilarity(dim, nil, nil)
			require.ErrorAs(t, err, &invalid)
		}
	})

	t.Run("ShortVector", func(t *testing.T) {
		_, err := L2SquaredDistance(4, a, b)
		var mismatch *ErrDimensionMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 4, mismatch.Expected)
		assert.Equal(t, 3, mismatch.Actual)

		_, err = InnerProduct(4, enc(1, 2, 3, 4), b)
		require.ErrorAs(t, err, &mismatch)
	})
}

func TestNonFiniteElementsAreNotErrors(t *testing.T) {
	nan := []Half{0x7E00, 0x3C00}
	one := enc(1, 1)

	got, err := L2SquaredDistance(2, nan, one)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(float64(got)))

	inf := []Half{0x7C00, 0x3C00}
	got, err = InnerProduct(2, inf, one)
	require.NoError(t, err)
	assert.True(t, math.IsInf(float64(got), 1))
}

func TestExtraElementsAreIgnored(t *testing.T) {
	// Only the first dim elements participate.
	a := enc(1, 2, 3, 99)
	b := enc(4, 5, 6, -99)
	got, err := L2SquaredDistance(3, a, b)
	require.NoError(t, err)
	assert.InDelta(t, 27, got, 1e-2)
}

func TestInit(t *testing.T) {
	c := Init()
	assert.Contains(t, []string{"portable", "f16c"}, c.Strategy)
	assert.Equal(t, AccelerationCompiled(), c.AccelerationCompiled)
	if !c.AccelerationCompiled {
		assert.Equal(t, "portable", c.Strategy)
	}

	// Idempotent.
	assert.Equal(t, c, Init())
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "L2Squared", MetricL2Squared.String())
	assert.Equal(t, "InnerProduct", MetricInnerProduct.String())
	assert.Equal(t, "L1", MetricL1.String())
	assert.Equal(t, "Cosine", MetricCosine.String())
	assert.Equal(t, "Unknown(42)", Metric(42).String())
}

func TestProvider(t *testing.T) {
	a := enc(1, 2, 3)
	b := enc(4, 5, 6)

	for m, want := range map[Metric]float32{
		MetricL2Squared:    27,
		MetricInnerProduct: 32,
		MetricL1:           9,
	} {
		fn, err := Provider(m)
		require.NoError(t, err)
		got, err := fn(3, a, b)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-2, "metric %v", m)
	}

	_, err := Provider(MetricCosine)
	require.Error(t, err)
}
