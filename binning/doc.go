// Package binning estimates a data-driven number of histogram bins for
// a raw numeric sample.
//
// 🚀 What does binning do?
//
//	Picking a bin count by hand is guesswork. binning applies the
//	Freedman–Diaconis rule: the bin width follows the interquartile
//	range of the sample and shrinks as n^(-1/3), so dense samples get
//	finer bins without a single outlier dictating the resolution.
//
// ✨ Key properties:
//   - deterministic: the same sample always yields the same count
//   - bounded: the result never exceeds the caller's maximum (cap 150 by default)
//   - robust quartiles: linear-interpolation quantiles via gonum/stat
//   - the input sample is never reordered or mutated
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/histbin/binning"
//
//	n, err := binning.EstimateCount(sample, binning.DefaultMaxBins)
//	if err != nil {
//	  // handle ErrSampleSize, ErrConstantSample, ...
//	}
//
// Degenerate inputs:
//
//	A sample whose interquartile range is zero (a near-constant bulk
//	with a few stragglers) has no usable Freedman–Diaconis width; the
//	estimator falls back to the maximum instead of dividing by zero.
//	A fully constant sample has no range at all and is an error.
//
// Complexity: O(n log n) time for the sort, O(n) extra memory.
package binning
