package render

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/histbin/histogram"
)

// errorPoints adapts a histogram.Series to the plotter interfaces for
// scatter points with asymmetric vertical and symmetric horizontal
// error bars.
type errorPoints struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

// newErrorPoints converts a series; XErrors stays nil when the series
// carries no horizontal bars.
func newErrorPoints(s histogram.Series) errorPoints {
	pts := errorPoints{
		XYs:     make(plotter.XYs, len(s.X)),
		YErrors: make(plotter.YErrors, len(s.X)),
	}
	for i := range s.X {
		pts.XYs[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
		// Both components are positive magnitudes: the plotter
		// subtracts Low from the point itself.
		pts.YErrors[i].Low = s.YErrLow[i]
		pts.YErrors[i].High = s.YErrHigh[i]
	}
	if s.XErr != nil {
		pts.XErrors = make(plotter.XErrors, len(s.X))
		for i := range s.X {
			pts.XErrors[i].Low = s.XErr[i]
			pts.XErrors[i].High = s.XErr[i]
		}
	}

	return pts
}

// glyphStyle maps a histogram.Style onto a gonum/plot glyph, filling
// zero-value fields with the stock defaults.
func glyphStyle(st histogram.Style) draw.GlyphStyle {
	col := st.Color
	if col == nil {
		col = color.Black
	}
	size := st.MarkerSize
	if size <= 0 {
		size = histogram.DefaultStyle().MarkerSize
	}
	var shape draw.GlyphDrawer
	switch st.Marker {
	case histogram.MarkerSquare:
		shape = draw.BoxGlyph{}
	case histogram.MarkerTriangle:
		shape = draw.TriangleGlyph{}
	case histogram.MarkerCross:
		shape = draw.CrossGlyph{}
	default:
		shape = draw.CircleGlyph{}
	}

	return draw.GlyphStyle{Color: col, Radius: vg.Points(size), Shape: shape}
}

// PointsRenderer draws histogram series onto Plot as points with error
// bars. DrawSeries is fire-and-forget by contract, so the first
// failure is retained in Err rather than returned; callers inspect Err
// once drawing is done.
type PointsRenderer struct {
	Plot *plot.Plot
	Err  error
}

var _ histogram.Renderer = (*PointsRenderer)(nil)

// DrawSeries implements histogram.Renderer.
func (r *PointsRenderer) DrawSeries(s histogram.Series, style histogram.Style) {
	if r.Err != nil {
		return
	}
	pts := newErrorPoints(s)

	scatter, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		r.Err = err

		return
	}
	scatter.GlyphStyle = glyphStyle(style)

	ybars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		r.Err = err

		return
	}
	ybars.LineStyle.Color = scatter.GlyphStyle.Color
	r.Plot.Add(scatter, ybars)

	if pts.XErrors != nil {
		xbars, err := plotter.NewXErrorBars(pts)
		if err != nil {
			r.Err = err

			return
		}
		xbars.LineStyle.Color = scatter.GlyphStyle.Color
		r.Plot.Add(xbars)
	}
}
