package binning

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultMaxBins is the cap applied by callers that do not supply their
// own maximum bin count.
const DefaultMaxBins = 150

var (
	// ErrSampleSize indicates the sample holds fewer than two values.
	ErrSampleSize = errors.New("binning: sample must contain at least two values")

	// ErrBadMaximum indicates a maximum bin count below 1.
	ErrBadMaximum = errors.New("binning: maximum bin count must be at least 1")

	// ErrConstantSample indicates every sample value is identical, so
	// there is no range to partition into bins.
	ErrConstantSample = errors.New("binning: sample values are all equal")

	// ErrNoBins indicates the Freedman–Diaconis width exceeds the whole
	// sample range, which would yield zero bins.
	ErrNoBins = errors.New("binning: computed bin count is zero")
)

// EstimateCount — Freedman–Diaconis bin-count estimation
//
// Description:
//
//	EstimateCount derives a histogram bin count from the sample itself:
//	the bin width is tied to the interquartile range, so the estimate
//	resists outliers that would wreck a width based on the full range.
//
// Algorithm Outline:
//  1. span = max(x) − min(x)
//  2. IQR  = Q75(x) − Q25(x), linear-interpolation quantiles
//  3. w    = 2 · IQR · n^(−1/3)
//  4. count = floor(min(span / w, maximum))
//
// The result always lies in [1, maximum].
//
// Errors:
//   - ErrSampleSize      — len(x) < 2.
//   - ErrBadMaximum      — maximum < 1.
//   - ErrConstantSample  — span == 0.
//   - ErrNoBins          — step 4 floors to zero.
//
// A zero IQR with a nonzero span (near-constant bulk) degenerates the
// width to zero; EstimateCount returns maximum in that case rather than
// dividing by zero.
func EstimateCount(x []float64, maximum int) (int, error) {
	if len(x) < 2 {
		return 0, ErrSampleSize
	}
	if maximum < 1 {
		return 0, ErrBadMaximum
	}

	// Quantiles need sorted input; work on a copy so the caller's
	// sample keeps its order.
	sorted := make([]float64, len(x))
	copy(sorted, x)
	sort.Float64s(sorted)

	span := sorted[len(sorted)-1] - sorted[0]
	if span == 0 {
		return 0, ErrConstantSample
	}

	iqr := stat.Quantile(0.75, stat.LinInterp, sorted, nil) -
		stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	if iqr == 0 {
		return maximum, nil
	}

	width := 2 * iqr * math.Pow(float64(len(x)), -1.0/3.0)
	count := int(math.Floor(math.Min(span/width, float64(maximum))))
	if count < 1 {
		return 0, ErrNoBins
	}

	return count, nil
}
