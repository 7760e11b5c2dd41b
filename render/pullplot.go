package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/katalvlaran/histbin/histogram"
	"github.com/katalvlaran/histbin/pull"
)

// modelSamples is the number of points used to trace the model curve
// across the x range.
const modelSamples = 200

// curveColor is the stock color for model curves and the pull panel's
// zero reference line.
var curveColor = color.RGBA{B: 255, A: 255}

// PullPlot — fitted-curve review panel pair
//
// Description:
//
//	PullPlot histograms sample with opts (nil means defaults), draws
//	the points with error bars on the top panel together with the
//	model curve scaled by the histogram's area, and fills the bottom
//	panel with the per-bin pulls: unit error bars, a zero reference
//	line, and the y range fixed to ±pull.DefaultClipBound. Bins whose
//	pull is NaN or infinite are left out of the panel — there is
//	nothing drawable at an undefined height.
//
// Both panels carry the same x range, so stacking them with a Split
// lines the bins up.
func PullPlot(sample []float64, model func(float64) float64, opts *histogram.Options) (top, bottom *plot.Plot, err error) {
	o := histogram.DefaultOptions()
	if opts != nil {
		o = *opts
	}

	top = plot.New()
	r := &PointsRenderer{Plot: top}
	o.Renderer = r

	res, err := histogram.Build(sample, &o)
	if err != nil {
		return nil, nil, err
	}
	if r.Err != nil {
		return nil, nil, r.Err
	}

	curve := plotter.NewFunction(func(x float64) float64 { return res.Area * model(x) })
	curve.Samples = modelSamples
	curve.LineStyle.Color = curveColor
	top.Add(curve)

	pulls, err := pull.VersusModel(res, model)
	if err != nil {
		return nil, nil, err
	}
	bottom, err = pullPanel(res.Centers, pulls, o.Style)
	if err != nil {
		return nil, nil, err
	}
	shareXRange(top, bottom, res)

	return top, bottom, nil
}

// DataPullPlot — two-dataset comparison panel pair
//
// Description:
//
//	DataPullPlot histograms both samples onto the same top panel, each
//	with its own call-scoped Options (nil means defaults), and fills
//	the bottom panel with their per-bin pulls. Data-vs-data pulls need
//	identical bins, so when the second spec leaves its bins on auto it
//	inherits the first histogram's resolved edges.
func DataPullPlot(sampleA, sampleB []float64, optsA, optsB *histogram.Options) (top, bottom *plot.Plot, err error) {
	oa := histogram.DefaultOptions()
	if optsA != nil {
		oa = *optsA
	}
	ob := histogram.DefaultOptions()
	if optsB != nil {
		ob = *optsB
	}

	top = plot.New()
	r := &PointsRenderer{Plot: top}
	oa.Renderer = r
	ob.Renderer = r

	resA, err := histogram.Build(sampleA, &oa)
	if err != nil {
		return nil, nil, err
	}
	if ob.Bins.IsAuto() {
		ob.Bins = histogram.BinEdges(resA.Edges)
	}
	resB, err := histogram.Build(sampleB, &ob)
	if err != nil {
		return nil, nil, err
	}
	if r.Err != nil {
		return nil, nil, r.Err
	}

	pulls, err := pull.VersusData(resA, resB)
	if err != nil {
		return nil, nil, err
	}
	bottom, err = pullPanel(resA.Centers, pulls, oa.Style)
	if err != nil {
		return nil, nil, err
	}
	shareXRange(top, bottom, resA)

	return top, bottom, nil
}

// pullPanel builds the bottom panel: finite pulls as points with unit
// vertical bars, a zero line, y range clipped to the display bound.
func pullPanel(centers, pulls []float64, style histogram.Style) (*plot.Plot, error) {
	p := plot.New()

	xys := make(plotter.XYs, 0, len(pulls))
	yerrs := make(plotter.YErrors, 0, len(pulls))
	for i, v := range pulls {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: centers[i], Y: v})
		yerrs = append(yerrs, struct{ Low, High float64 }{Low: 1, High: 1})
	}

	if len(xys) > 0 {
		pts := errorPoints{XYs: xys, YErrors: yerrs}
		scatter, err := plotter.NewScatter(pts.XYs)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle = glyphStyle(style)
		ybars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return nil, err
		}
		ybars.LineStyle.Color = scatter.GlyphStyle.Color
		p.Add(scatter, ybars)
	}

	zero := plotter.NewFunction(func(float64) float64 { return 0 })
	zero.LineStyle.Color = curveColor
	p.Add(zero)

	p.Y.Min = -pull.DefaultClipBound
	p.Y.Max = pull.DefaultClipBound

	return p, nil
}

// shareXRange pins both panels to the histogram's edge span so the
// bins line up vertically.
func shareXRange(top, bottom *plot.Plot, res histogram.Result) {
	lo := res.Edges[0]
	hi := res.Edges[len(res.Edges)-1]
	top.X.Min, top.X.Max = lo, hi
	bottom.X.Min, bottom.X.Max = lo, hi
}
