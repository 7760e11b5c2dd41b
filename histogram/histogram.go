package histogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/poisson"
)

var (
	// ErrEmptySample indicates the sample holds no values.
	ErrEmptySample = errors.New("histogram: sample must not be empty")

	// ErrBadEdges indicates explicit edges that are too short, not
	// strictly increasing, or not uniform.
	ErrBadEdges = errors.New("histogram: bin edges must be at least two, strictly increasing and uniform")

	// ErrNoBins indicates a requested bin count below 1.
	ErrNoBins = errors.New("histogram: bin count must be at least 1")

	// ErrBadXErr indicates per-bin x-errors whose length does not match
	// the resolved bin count.
	ErrBadXErr = errors.New("histogram: per-bin x-errors must match the bin count")

	// ErrBadYErr indicates supplied y-errors whose lengths do not match
	// the resolved bin count.
	ErrBadYErr = errors.New("histogram: supplied y-errors must match the bin count")

	// ErrBadScale indicates a scale factor ≤ 0, which would break the
	// non-negativity of values and bars.
	ErrBadScale = errors.New("histogram: scale must be positive")

	// ErrZeroArea indicates a normalization request on a histogram with
	// zero integral (every sample fell outside the bins).
	ErrZeroArea = errors.New("histogram: cannot normalize a histogram with zero area")
)

// edgeTol is the relative tolerance for the uniform-width check on
// explicit edges.
const edgeTol = 1e-9

// Build — sample to histogram points
//
// Description:
//
//	Build aggregates sample into uniform bins and returns the finished
//	histogram points. Step order matters and is fixed: error bars are
//	derived from the RAW integer counts before normalization or
//	scaling touches anything, because Poisson intervals are only valid
//	on counts.
//
// Algorithm Outline:
//  1. Resolve edges (explicit edges / explicit count / auto estimate).
//  2. Count samples per bin: half-open bins, last bin closed,
//     out-of-range samples dropped.
//  3. centers_i = (edges_i + edges_i+1)/2; area = Σ counts_i · width.
//  4. Vertical bars: poisson.Interval on the raw counts, or the
//     supplied pair.
//  5. Horizontal bars per XErr mode.
//  6. If Normalized: divide values and both vertical bars by area,
//     set area = 1.
//  7. Multiply values, both vertical bars and area by Scale.
//  8. Hand the series to the Renderer (fire-and-forget), return.
//
// A nil opts means DefaultOptions(). Zero Confidence and MaxBins fall
// back to their defaults; a zero Scale does not (ErrBadScale) — that
// is a construction mistake worth hearing about.
//
// Errors:
//   - ErrEmptySample, ErrNoBins, ErrBadEdges — bin resolution.
//   - binning errors — auto estimation on degenerate samples.
//   - poisson.ErrUnknownKind — unsupported vertical-bar kind.
//   - ErrBadXErr, ErrBadYErr — length mismatches.
//   - ErrBadScale, ErrZeroArea — rescaling.
func Build(sample []float64, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Confidence == 0 {
		o.Confidence = poisson.DefaultConfidence
	}
	if o.MaxBins == 0 {
		o.MaxBins = binning.DefaultMaxBins
	}

	if len(sample) == 0 {
		return Result{}, ErrEmptySample
	}
	if o.Scale <= 0 {
		return Result{}, ErrBadScale
	}

	edges, err := resolveEdges(sample, &o)
	if err != nil {
		return Result{}, err
	}
	nbins := len(edges) - 1
	width := edges[1] - edges[0]

	counts := aggregate(sample, edges, width)

	centers := make([]float64, nbins)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	area := floats.Sum(counts) * width

	lower, upper, err := verticalBars(counts, &o)
	if err != nil {
		return Result{}, err
	}

	xerr, err := horizontalBars(nbins, width, &o)
	if err != nil {
		return Result{}, err
	}

	values := counts // raw counts become the values from here on
	if o.Normalized {
		if area == 0 {
			return Result{}, ErrZeroArea
		}
		inv := 1 / area
		floats.Scale(inv, values)
		floats.Scale(inv, lower)
		floats.Scale(inv, upper)
		area = 1
	}
	floats.Scale(o.Scale, values)
	floats.Scale(o.Scale, lower)
	floats.Scale(o.Scale, upper)
	area *= o.Scale

	if o.Renderer != nil {
		o.Renderer.DrawSeries(Series{
			X:        centers,
			Y:        values,
			XErr:     xerr,
			YErrLow:  lower,
			YErrHigh: upper,
		}, o.Style)
	}

	return Result{
		Edges:   edges,
		Centers: centers,
		Values:  values,
		Lower:   lower,
		Upper:   upper,
		XErr:    xerr,
		Width:   width,
		Area:    area,
	}, nil
}

// resolveEdges turns the BinSpec into validated uniform edges.
func resolveEdges(sample []float64, o *Options) ([]float64, error) {
	switch o.Bins.mode {
	case binAuto:
		n, err := binning.EstimateCount(sample, o.MaxBins)
		if err != nil {
			return nil, err
		}

		return spanEdges(sample, n), nil

	case binCount:
		if o.Bins.count < 1 {
			return nil, ErrNoBins
		}

		return spanEdges(sample, o.Bins.count), nil

	case binEdges:
		e := o.Bins.edges
		if len(e) < 2 {
			return nil, ErrBadEdges
		}
		w := e[1] - e[0]
		if w <= 0 {
			return nil, ErrBadEdges
		}
		for i := 1; i < len(e)-1; i++ {
			d := e[i+1] - e[i]
			if d <= 0 || math.Abs(d-w) > edgeTol*math.Max(math.Abs(w), 1) {
				return nil, ErrBadEdges
			}
		}
		out := make([]float64, len(e))
		copy(out, e)

		return out, nil
	}

	return nil, ErrBadEdges
}

// spanEdges lays n uniform bins over the sample range. A zero-width
// range is widened by half a unit on each side so a constant sample
// still lands inside a bin. Both endpoints are pinned exactly: an
// interpolated last edge can round below the sample max, which would
// push the max outside the span.
func spanEdges(sample []float64, n int) []float64 {
	lo, hi := floats.Min(sample), floats.Max(sample)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, n+1)
	edges[0] = lo
	edges[n] = hi
	for i := 1; i < n; i++ {
		edges[i] = lo + (hi-lo)*float64(i)/float64(n)
	}

	return edges
}

// aggregate counts samples per bin. Bins are half-open on the right;
// the last bin additionally includes the upper edge. Samples outside
// the edge span are dropped.
func aggregate(sample, edges []float64, width float64) []float64 {
	nbins := len(edges) - 1
	lo, hi := edges[0], edges[nbins]

	counts := make([]float64, nbins)
	for _, v := range sample {
		if v < lo || v > hi {
			continue
		}
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}

	return counts
}

// verticalBars derives the vertical error bars on the raw counts.
func verticalBars(counts []float64, o *Options) (lower, upper []float64, err error) {
	switch o.YErr.mode {
	case yerrKind:
		return poisson.Interval(counts, o.YErr.kind, o.Confidence)
	case yerrSupplied:
		if len(o.YErr.lower) != len(counts) || len(o.YErr.upper) != len(counts) {
			return nil, nil, ErrBadYErr
		}
		lower = make([]float64, len(counts))
		copy(lower, o.YErr.lower)
		upper = make([]float64, len(counts))
		copy(upper, o.YErr.upper)

		return lower, upper, nil
	}

	return nil, nil, ErrBadYErr
}

// horizontalBars resolves the horizontal error bars, nil when omitted.
func horizontalBars(nbins int, width float64, o *Options) ([]float64, error) {
	switch o.XErr.mode {
	case xerrNone:
		return nil, nil
	case xerrBinWidth:
		xerr := make([]float64, nbins)
		for i := range xerr {
			xerr[i] = width / 2
		}

		return xerr, nil
	case xerrFixed:
		xerr := make([]float64, nbins)
		for i := range xerr {
			xerr[i] = o.XErr.fixed
		}

		return xerr, nil
	case xerrPerBin:
		if len(o.XErr.perBin) != nbins {
			return nil, ErrBadXErr
		}
		xerr := make([]float64, nbins)
		copy(xerr, o.XErr.perBin)

		return xerr, nil
	}

	return nil, ErrBadXErr
}
