// Package render is the drawing backend: a gonum.org/v1/plot adapter
// for the numeric series the statistical core produces.
//
// 🚀 What does render do?
//
//	The core packages never draw; they hand finished numbers to a
//	histogram.Renderer. render supplies the stock implementation plus
//	the two canned compositions every fit review needs:
//
//	  • PointsRenderer — a point-with-error-bars series on a plot
//	    (asymmetric vertical bars, optional horizontal bars)
//	  • Split          — two vertically stacked panels sharing the
//	    horizontal axis, split by a ratio with a gap between them
//	  • PullPlot       — histogram points, the model curve scaled by
//	    the fitted area, and a pull panel clipped to ±5 beneath
//	  • DataPullPlot   — the same for two datasets over shared bins
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/histbin/render"
//
//	top, bottom, err := render.PullPlot(sample, gaussian, nil)
//	if err != nil { ... }
//	split, _ := render.MakeSplit(0.8, render.DefaultGap)
//	err = render.WritePNG("fit.png", split, top, bottom,
//		15*vg.Centimeter, 12*vg.Centimeter)
//
// DrawSeries is fire-and-forget by contract, so PointsRenderer retains
// its first failure in Err instead of returning it; the composition
// helpers check Err for you.
package render
