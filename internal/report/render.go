package report

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Default canvas size of the completeness figure.
var (
	FigureWidth  = vg.Points(640)
	FigureHeight = vg.Points(480)
)

// Plot lays the figure out on a gonum plot seen from view. The 2D axes of
// the plot are hidden; the 3D axes draw their own box, ticks and labels.
func (f *Figure) Plot(view View) *plot.Plot {
	p := plot.New()
	p.Title.Text = f.Axes.Title
	p.Title.TextStyle.Handler = mathText
	p.HideAxes()
	p.Add(axesPlotter{ax: f.Axes, view: view})
	return p
}

// RenderPNG draws the figure seen from view and returns the PNG bytes.
func (f *Figure) RenderPNG(width, height vg.Length, view View) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to draw figure: %v", r)
		}
	}()

	for _, axis := range []struct {
		name string
		lim  Limits
	}{{"x", f.Axes.X.Limits}, {"y", f.Axes.Y.Limits}, {"z", f.Axes.Z.Limits}} {
		if !axis.lim.valid() {
			return nil, fmt.Errorf("%w: %s [%v, %v]", ErrInvalidLimits, axis.name, axis.lim.Min, axis.lim.Max)
		}
	}

	writer, err := f.Plot(view).WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
