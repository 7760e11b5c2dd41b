package render

import (
	"errors"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultGap is the stock gap between split panels, as a fraction of
// the canvas height.
const DefaultGap = 0.12

// ErrBadSplit indicates a ratio outside (0, 1) or a gap outside [0, 1).
var ErrBadSplit = errors.New("render: split ratio must lie in (0, 1) and gap in [0, 1)")

// Split describes two vertically stacked panels sharing the horizontal
// axis: the top panel takes Ratio of the height, the bottom the rest,
// with Gap (fraction of the height) left blank between them.
type Split struct {
	Ratio float64
	Gap   float64
}

// MakeSplit validates and returns a Split.
func MakeSplit(ratio, gap float64) (Split, error) {
	if !(ratio > 0 && ratio < 1) || !(gap >= 0 && gap < 1) {
		return Split{}, ErrBadSplit
	}

	return Split{Ratio: ratio, Gap: gap}, nil
}

// Canvases cuts dc into the top and bottom panel canvases. Both keep
// the full horizontal extent, so plots drawn on them share the x axis
// geometry.
func (s Split) Canvases(dc draw.Canvas) (top, bottom draw.Canvas) {
	h := dc.Max.Y - dc.Min.Y
	gap := vg.Length(s.Gap) * h / 2
	cut := dc.Min.Y + vg.Length(1-s.Ratio)*h

	top = dc
	top.Rectangle.Min.Y = cut + gap
	bottom = dc
	bottom.Rectangle.Max.Y = cut - gap

	return top, bottom
}

// WritePNG draws the two panels onto a fresh w×h canvas according to
// the split and writes the result as PNG.
func WritePNG(path string, s Split, top, bottom *plot.Plot, w, h vg.Length) error {
	img := vgimg.New(w, h)
	dc := draw.New(img)

	tc, bc := s.Canvases(dc)
	top.Draw(tc)
	bottom.Draw(bc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
