package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/user/nonogram_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HeatmapTitle is the title of the completeness heatmap.
const HeatmapTitle = "Completude $c$ por tamanho $N$ e preenchimento $p$"

// completenessGrid lays the results on a grid with one column per board size
// and one row per distinct p. Columns sit at their index so unevenly spaced
// sizes get cells of equal width. Missing (size, p) pairs are NaN.
type completenessGrid struct {
	sizes []float64
	ps    []float64
	c     [][]float64 // c[col][row]
}

func newCompletenessGrid(table *parser.ResultsTable) *completenessGrid {
	g := &completenessGrid{
		sizes: distinctSorted(table.Sizes()),
		ps:    distinctSorted(table.Ps()),
	}
	col := indexOf(g.sizes)
	row := indexOf(g.ps)

	g.c = make([][]float64, len(g.sizes))
	for i := range g.c {
		g.c[i] = make([]float64, len(g.ps))
		for j := range g.c[i] {
			g.c[i][j] = math.NaN()
		}
	}
	for _, r := range table.Rows {
		g.c[col[r.Size]][row[r.P]] = r.C
	}
	return g
}

func (g *completenessGrid) Dims() (c, r int)   { return len(g.sizes), len(g.ps) }
func (g *completenessGrid) Z(c, r int) float64 { return g.c[c][r] }
func (g *completenessGrid) X(c int) float64    { return float64(c) }
func (g *completenessGrid) Y(r int) float64    { return g.ps[r] }

// sizeTicks labels each column with its board size.
func (g *completenessGrid) sizeTicks() []plot.Tick {
	ticks := make([]plot.Tick, len(g.sizes))
	for i, size := range g.sizes {
		ticks[i] = plot.Tick{Value: float64(i), Label: fmt.Sprintf("%g", size)}
	}
	return ticks
}

func distinctSorted(values []float64) []float64 {
	out := append([]float64(nil), values...)
	sort.Float64s(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

func indexOf(values []float64) map[float64]int {
	idx := make(map[float64]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}

// CreateHeatmapPlot draws c over (N, p) as a heatmap on a [0,1] colour scale
// and returns the PNG bytes.
func CreateHeatmapPlot(table *parser.ResultsTable, width, height vg.Length) ([]byte, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("no results to plot heatmap")
	}
	if err := checkTableFinite(table); err != nil {
		return nil, err
	}
	grid := newCompletenessGrid(table)

	p := plot.New()
	p.Title.Text = HeatmapTitle
	p.Title.TextStyle.Handler = mathText
	p.X.Label.Text = "$N$"
	p.X.Label.TextStyle.Handler = mathText
	p.Y.Label.Text = "$p$"
	p.Y.Label.TextStyle.Handler = mathText
	p.X.Tick.Marker = plot.ConstantTicks(grid.sizeTicks())

	hm := plotter.NewHeatMap(grid, moreland.ExtendedBlackBody().Palette(64))
	hm.Min = 0
	hm.Max = 1
	hm.NaN = color.Gray{Y: 200}
	p.Add(hm)

	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %w", err)
	}
	return buf.Bytes(), nil
}
