package binning_test

import (
	"testing"

	"github.com/katalvlaran/histbin/binning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ramp returns the values 0..n-1 as floats, a flat spread with a
// hand-checkable interquartile range.
func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

// TestEstimateCount_SampleTooSmall verifies that samples with fewer
// than two values are rejected.
func TestEstimateCount_SampleTooSmall(t *testing.T) {
	_, err := binning.EstimateCount(nil, binning.DefaultMaxBins)
	assert.ErrorIs(t, err, binning.ErrSampleSize, "nil sample must error")

	_, err = binning.EstimateCount([]float64{1}, binning.DefaultMaxBins)
	assert.ErrorIs(t, err, binning.ErrSampleSize, "single value must error")
}

// TestEstimateCount_BadMaximum verifies that a non-positive cap is
// rejected before any computation.
func TestEstimateCount_BadMaximum(t *testing.T) {
	_, err := binning.EstimateCount([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, binning.ErrBadMaximum, "maximum=0 must error")

	_, err = binning.EstimateCount([]float64{1, 2, 3}, -4)
	assert.ErrorIs(t, err, binning.ErrBadMaximum, "negative maximum must error")
}

// TestEstimateCount_ConstantSample verifies that an all-equal sample
// errors instead of dividing by a zero range.
func TestEstimateCount_ConstantSample(t *testing.T) {
	_, err := binning.EstimateCount([]float64{7, 7, 7, 7}, binning.DefaultMaxBins)
	assert.ErrorIs(t, err, binning.ErrConstantSample, "constant sample must error")
}

// TestEstimateCount_ZeroIQRFallsBackToMaximum verifies the documented
// fallback: a near-constant bulk (IQR == 0) with a nonzero range
// returns the cap instead of dividing by zero.
func TestEstimateCount_ZeroIQRFallsBackToMaximum(t *testing.T) {
	// Quartiles both land on the value 1, so IQR == 0 while span == 2.
	x := []float64{0, 1, 1, 1, 1, 1, 1, 2}

	n, err := binning.EstimateCount(x, 42)
	require.NoError(t, err, "zero IQR with nonzero span is not an error")
	assert.Equal(t, 42, n, "zero IQR must fall back to the maximum")
}

// TestEstimateCount_UniformRamp pins the Freedman–Diaconis result for
// the ramp 0..99: IQR = 49.5, width = 99·100^(−1/3), count = 4.
func TestEstimateCount_UniformRamp(t *testing.T) {
	n, err := binning.EstimateCount(ramp(100), binning.DefaultMaxBins)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "ramp 0..99 must yield 4 bins")
}

// TestEstimateCount_RespectsMaximum verifies that the cap wins when the
// rule would ask for more bins.
func TestEstimateCount_RespectsMaximum(t *testing.T) {
	n, err := binning.EstimateCount(ramp(100), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "cap below the rule's answer must win")
}

// TestEstimateCount_WithinRange checks the contract that every
// non-degenerate sample yields a count in [1, maximum].
func TestEstimateCount_WithinRange(t *testing.T) {
	samples := [][]float64{
		ramp(2),
		ramp(10),
		ramp(1000),
		{-3.5, -1, 0, 0.25, 2, 2, 8, 13.75},
		{1e-6, 2e-6, 3e-6, 5e-6, 8e-6, 1.3e-5},
	}
	for i, x := range samples {
		n, err := binning.EstimateCount(x, binning.DefaultMaxBins)
		require.NoError(t, err, "sample %d should not error", i)
		assert.GreaterOrEqual(t, n, 1, "sample %d: count below 1", i)
		assert.LessOrEqual(t, n, binning.DefaultMaxBins, "sample %d: count above cap", i)
	}
}

// TestEstimateCount_DoesNotMutateSample verifies the input keeps its
// original order despite the internal sort.
func TestEstimateCount_DoesNotMutateSample(t *testing.T) {
	x := []float64{5, 1, 4, 2, 3}
	want := []float64{5, 1, 4, 2, 3}

	_, err := binning.EstimateCount(x, binning.DefaultMaxBins)
	require.NoError(t, err)
	assert.Equal(t, want, x, "sample must not be reordered")
}
