package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/user/nonogram_go/internal/parser"
)

// CompletenessTitle is the fixed title of the completeness figure.
const CompletenessTitle = "Média de completude $c$ de nonogramas de tamanho $NxN$ com $p$ de preenchimento"

// ErrInvalidLimits is returned when an axis is not a finite interval of
// non-zero width.
var ErrInvalidLimits = errors.New("invalid axis limits")

// Limits is a closed axis interval.
type Limits struct {
	Min, Max float64
}

// valid reports whether l is a finite interval of non-zero width. Inverted
// limits are valid.
func (l Limits) valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) &&
		!math.IsInf(l.Min, 0) && !math.IsInf(l.Max, 0) && l.Max != l.Min
}

// checkTableFinite fails with ErrNonFinite on the first NaN or ±Inf in table.
func checkTableFinite(table *parser.ResultsTable) error {
	cols := [...][]float64{table.Sizes(), table.Ps(), table.Cs()}
	for i, name := range parser.RequiredColumns {
		if err := checkFinite(name, cols[i]); err != nil {
			return err
		}
	}
	return nil
}

// Axis3D is one axis of a 3D plot. AutoScale axes follow the data; an
// explicit SetXLim/SetYLim/SetZLim turns it off.
type Axis3D struct {
	Label     string
	Limits    Limits
	AutoScale bool

	hasData          bool
	dataMin, dataMax float64
}

func newAxis3D() Axis3D {
	return Axis3D{Limits: Limits{Min: 0, Max: 1}, AutoScale: true}
}

func (a *Axis3D) setLim(min, max float64) {
	a.Limits = Limits{Min: min, Max: max}
	a.AutoScale = false
}

func (a *Axis3D) update(values []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if a.hasData {
		lo = math.Min(lo, a.dataMin)
		hi = math.Max(hi, a.dataMax)
	}
	a.dataMin, a.dataMax, a.hasData = lo, hi, true
	if a.AutoScale {
		a.Limits = nonsingular(lo, hi)
	}
}

// nonsingular widens an empty interval around its value.
func nonsingular(lo, hi float64) Limits {
	if hi > lo {
		return Limits{Min: lo, Max: hi}
	}
	pad := 0.05 * math.Abs(lo)
	if pad == 0 {
		pad = 0.5
	}
	return Limits{Min: lo - pad, Max: hi + pad}
}

// Axes3D is a single 3D subplot: title, three axes and the surfaces drawn in it.
type Axes3D struct {
	Title    string
	X, Y, Z  Axis3D
	Surfaces []*Trisurf
}

// NewAxes3D returns empty axes with [0,1] limits on every axis.
func NewAxes3D() *Axes3D {
	return &Axes3D{X: newAxis3D(), Y: newAxis3D(), Z: newAxis3D()}
}

func (ax *Axes3D) SetTitle(title string) { ax.Title = title }

func (ax *Axes3D) SetXLabel(label string) { ax.X.Label = label }
func (ax *Axes3D) SetYLabel(label string) { ax.Y.Label = label }
func (ax *Axes3D) SetZLabel(label string) { ax.Z.Label = label }

func (ax *Axes3D) SetXLim(min, max float64) { ax.X.setLim(min, max) }
func (ax *Axes3D) SetYLim(min, max float64) { ax.Y.setLim(min, max) }
func (ax *Axes3D) SetZLim(min, max float64) { ax.Z.setLim(min, max) }

// PlotTrisurf triangulates (x, y) and adds the surface with heights z.
// Autoscaled axes grow to include the data.
func (ax *Axes3D) PlotTrisurf(x, y, z []float64) error {
	surf, err := NewTrisurf(x, y, z)
	if err != nil {
		return err
	}
	ax.Surfaces = append(ax.Surfaces, surf)
	ax.X.update(x)
	ax.Y.update(y)
	ax.Z.update(z)
	return nil
}

// Figure holds one 3D subplot.
type Figure struct {
	Axes *Axes3D
}

// NewFigure returns a figure with empty 3D axes.
func NewFigure() *Figure {
	return &Figure{Axes: NewAxes3D()}
}

// NewCompletenessFigure plots c over (size, p) as a triangulated surface with
// the fixed title, [0,1] limits on y and z, and the label calls in order.
// The z label is set twice; the second call wins.
func NewCompletenessFigure(table *parser.ResultsTable) (*Figure, error) {
	fig := NewFigure()
	ax := fig.Axes

	ax.SetTitle(CompletenessTitle)
	if err := ax.PlotTrisurf(table.Sizes(), table.Ps(), table.Cs()); err != nil {
		return nil, fmt.Errorf("failed to plot completeness surface: %w", err)
	}
	ax.SetZLabel("$N$")
	ax.SetYLim(0, 1)
	ax.SetYLabel("$c$")
	ax.SetZLim(0, 1)
	ax.SetZLabel("$p$")

	return fig, nil
}
