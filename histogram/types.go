package histogram

import (
	"image/color"

	"github.com/katalvlaran/histbin/binning"
	"github.com/katalvlaran/histbin/poisson"
)

// binMode discriminates the three ways a bin layout can be specified.
type binMode int

const (
	binAuto binMode = iota
	binCount
	binEdges
)

// BinSpec describes the bin layout of a histogram. The zero value is
// AutoBins(): delegate the count to binning.EstimateCount.
type BinSpec struct {
	mode  binMode
	count int
	edges []float64
}

// AutoBins delegates the bin count to the Freedman–Diaconis estimator.
func AutoBins() BinSpec { return BinSpec{mode: binAuto} }

// BinCount requests exactly n uniform bins spanning the sample range.
func BinCount(n int) BinSpec { return BinSpec{mode: binCount, count: n} }

// BinEdges requests the given explicit edges: at least two values,
// strictly increasing, uniform width. The slice is copied.
func BinEdges(edges []float64) BinSpec {
	e := make([]float64, len(edges))
	copy(e, edges)

	return BinSpec{mode: binEdges, edges: e}
}

// IsAuto reports whether the layout is delegated to the estimator.
func (b BinSpec) IsAuto() bool { return b.mode == binAuto }

// xerrMode discriminates the horizontal error-bar modes.
type xerrMode int

const (
	xerrNone xerrMode = iota
	xerrBinWidth
	xerrFixed
	xerrPerBin
)

// XErrSpec describes horizontal error bars. The zero value is
// XErrNone(): no horizontal bars at all.
type XErrSpec struct {
	mode   xerrMode
	fixed  float64
	perBin []float64
}

// XErrNone omits horizontal error bars.
func XErrNone() XErrSpec { return XErrSpec{mode: xerrNone} }

// XErrBinWidth draws each bin's horizontal bar as half the bin width,
// so the bars tile the axis exactly.
func XErrBinWidth() XErrSpec { return XErrSpec{mode: xerrBinWidth} }

// XErrFixed uses the same explicit half-length for every bin. The
// value passes through unchanged — it is neither normalized nor scaled.
func XErrFixed(v float64) XErrSpec { return XErrSpec{mode: xerrFixed, fixed: v} }

// XErrPerBin uses one explicit half-length per bin; the slice length
// must match the resolved bin count. The slice is copied.
func XErrPerBin(v []float64) XErrSpec {
	e := make([]float64, len(v))
	copy(e, v)

	return XErrSpec{mode: xerrPerBin, perBin: e}
}

// yerrMode discriminates the vertical error-bar modes.
type yerrMode int

const (
	yerrKind yerrMode = iota
	yerrSupplied
)

// YErrSpec describes vertical error bars. The zero value is
// YErrKind(poisson.Gamma): asymmetric Garwood bars on the raw counts.
type YErrSpec struct {
	mode         yerrMode
	kind         poisson.Kind
	lower, upper []float64
}

// YErrKind derives vertical bars from the raw counts via
// poisson.Interval with the given kind.
func YErrKind(k poisson.Kind) YErrSpec { return YErrSpec{mode: yerrKind, kind: k} }

// YErrSupplied uses pre-computed bars; both slice lengths must match
// the resolved bin count. Supplied bars still participate in
// normalization and scaling. The slices are copied.
func YErrSupplied(lower, upper []float64) YErrSpec {
	lo := make([]float64, len(lower))
	copy(lo, lower)
	up := make([]float64, len(upper))
	copy(up, upper)

	return YErrSpec{mode: yerrSupplied, lower: lo, upper: up}
}

// Marker is the point shape drawn by a Renderer.
type Marker int

const (
	// MarkerCircle is the default round marker.
	MarkerCircle Marker = iota
	// MarkerSquare is a square marker.
	MarkerSquare
	// MarkerTriangle is a triangular marker.
	MarkerTriangle
	// MarkerCross is a plus-shaped marker.
	MarkerCross
)

// Style is the presentation record handed to a Renderer alongside the
// numeric series. The statistical core never reads it.
type Style struct {
	// MarkerSize is the point size, in printer's points.
	MarkerSize float64
	// Color is the marker and bar color.
	Color color.Color
	// Marker is the point shape.
	Marker Marker
}

// DefaultStyle returns the stock presentation: size-3 black circles.
func DefaultStyle() Style {
	return Style{MarkerSize: 3, Color: color.Black, Marker: MarkerCircle}
}

// Series is the numeric payload handed to a Renderer: one point per
// bin with asymmetric vertical bars and optional symmetric horizontal
// bars (nil when omitted).
type Series struct {
	X, Y     []float64
	XErr     []float64
	YErrLow  []float64
	YErrHigh []float64
}

// Renderer is the external drawing collaborator. DrawSeries is
// fire-and-forget: the core consumes no return value and never
// inspects what the backend does with the data.
type Renderer interface {
	DrawSeries(s Series, style Style)
}

// Options configures a single Build call. Construct it with
// DefaultOptions and override fields; a zero Scale is rejected rather
// than guessed at.
type Options struct {
	// Bins is the bin layout. Zero value: auto (Freedman–Diaconis).
	Bins BinSpec
	// XErr selects horizontal error bars. Zero value: none.
	XErr XErrSpec
	// YErr selects vertical error bars. Zero value: gamma intervals.
	YErr YErrSpec
	// Confidence is the interval coverage for kind-derived vertical
	// bars. Zero value: poisson.DefaultConfidence.
	Confidence float64
	// MaxBins caps the auto-estimated bin count. Zero value:
	// binning.DefaultMaxBins.
	MaxBins int
	// Normalized rescales values and vertical bars so the area is 1.
	Normalized bool
	// Scale multiplies values, vertical bars and area. Must be > 0.
	Scale float64
	// Renderer, when non-nil, receives the finished series.
	Renderer Renderer
	// Style is passed through to the Renderer.
	Style Style
}

// DefaultOptions returns the stock configuration: auto bins capped at
// binning.DefaultMaxBins, gamma bars at the one-sigma confidence, no
// horizontal bars, no normalization, scale 1, no renderer.
func DefaultOptions() Options {
	return Options{
		Confidence: poisson.DefaultConfidence,
		MaxBins:    binning.DefaultMaxBins,
		Scale:      1,
		Style:      DefaultStyle(),
	}
}

// Result is the finished histogram: one entry per bin in every slice.
type Result struct {
	// Edges are the N+1 uniform bin edges.
	Edges []float64
	// Centers are the N bin midpoints.
	Centers []float64
	// Values are the bin contents after normalization and scaling.
	Values []float64
	// Lower and Upper are the vertical bar lengths, both ≥ 0.
	Lower, Upper []float64
	// XErr are the horizontal bar half-lengths, nil when omitted.
	XErr []float64
	// Width is the uniform bin width.
	Width float64
	// Area is the histogram integral Σ values·width as configured:
	// raw count·width by default, 1 after normalization, times Scale.
	Area float64
}
