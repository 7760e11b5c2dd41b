package pull

import (
	"errors"
	"math"

	"github.com/katalvlaran/histbin/histogram"
)

// DefaultClipBound is the conventional display range for pull panels:
// values beyond ±5 carry no extra visual information.
const DefaultClipBound = 5.0

var (
	// ErrEmptyHistogram indicates a histogram with no bins.
	ErrEmptyHistogram = errors.New("pull: histogram has no bins")

	// ErrNilModel indicates a nil model function.
	ErrNilModel = errors.New("pull: model function must not be nil")

	// ErrBinMismatch indicates two histograms whose bin centers differ.
	ErrBinMismatch = errors.New("pull: histograms must share the same bin centers")

	// ErrRaggedHistogram indicates a histogram whose values or bars
	// disagree in length with its centers.
	ErrRaggedHistogram = errors.New("pull: histogram slices must have one entry per bin")
)

// checkShape enforces the one-entry-per-bin invariant on a Result, so
// hand-built inputs fail cleanly instead of panicking downstream.
func checkShape(h histogram.Result) error {
	if len(h.Centers) == 0 {
		return ErrEmptyHistogram
	}
	n := len(h.Centers)
	if len(h.Values) != n || len(h.Lower) != n || len(h.Upper) != n {
		return ErrRaggedHistogram
	}

	return nil
}

// VersusModel — standardized residuals of a histogram against a model
//
// Description:
//
//	For each bin, the expectation is area·model(center): the model is a
//	density shape and the histogram's own integral sets its height.
//	The residual r_i = value_i − expectation_i is divided by the data's
//	upper bar when r_i ≥ 0 and its lower bar when r_i < 0 — the bar on
//	the side the data has moved bounds how far it could plausibly sit
//	from the model.
//
// A zero bar under a residual yields NaN, never a panic; callers treat
// NaN as an out-of-range display value (see Clip).
//
// Errors:
//   - ErrNilModel         — model is nil.
//   - ErrEmptyHistogram   — h has no bins.
//   - ErrRaggedHistogram  — h's slices disagree in length.
func VersusModel(h histogram.Result, model func(float64) float64) ([]float64, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if err := checkShape(h); err != nil {
		return nil, err
	}

	pulls := make([]float64, len(h.Centers))
	for i, c := range h.Centers {
		resid := h.Values[i] - h.Area*model(c)
		bar := h.Lower[i]
		if resid >= 0 {
			bar = h.Upper[i]
		}
		pulls[i] = standardize(resid, bar)
	}

	return pulls, nil
}

// VersusData — standardized residuals between two histograms
//
// Description:
//
//	Both histograms must be built over the same bin centers (same
//	edges, independently filled). The residual r_i = valueA_i −
//	valueB_i is divided by the quadrature sum of the bars facing each
//	other: A's upper with B's lower when r_i ≥ 0, A's lower with B's
//	upper when r_i < 0.
//
// Errors:
//   - ErrEmptyHistogram  — either histogram has no bins.
//   - ErrRaggedHistogram — either histogram's slices disagree in length.
//   - ErrBinMismatch     — bin counts or centers differ.
func VersusData(a, b histogram.Result) ([]float64, error) {
	if err := checkShape(a); err != nil {
		return nil, err
	}
	if err := checkShape(b); err != nil {
		return nil, err
	}
	if len(a.Centers) != len(b.Centers) {
		return nil, ErrBinMismatch
	}
	for i := range a.Centers {
		if a.Centers[i] != b.Centers[i] {
			return nil, ErrBinMismatch
		}
	}

	pulls := make([]float64, len(a.Centers))
	for i := range a.Centers {
		resid := a.Values[i] - b.Values[i]
		var bar float64
		if resid >= 0 {
			bar = math.Hypot(a.Upper[i], b.Lower[i])
		} else {
			bar = math.Hypot(a.Lower[i], b.Upper[i])
		}
		pulls[i] = standardize(resid, bar)
	}

	return pulls, nil
}

// Clip clamps pulls to [−bound, bound] for display. NaN entries pass
// through untouched — they mark bins whose pull is undefined, and the
// display layer decides how to show them. A fresh slice is returned.
func Clip(pulls []float64, bound float64) []float64 {
	out := make([]float64, len(pulls))
	for i, p := range pulls {
		switch {
		case p > bound:
			out[i] = bound
		case p < -bound:
			out[i] = -bound
		default:
			out[i] = p
		}
	}

	return out
}

// standardize divides a residual by its bar. A zero bar has no scale
// to standardize against and yields NaN.
func standardize(resid, bar float64) float64 {
	if bar == 0 {
		return math.NaN()
	}

	return resid / bar
}
