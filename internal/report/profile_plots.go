package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/user/nonogram_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ProfileTitle is the title of the completeness-by-size line plot.
const ProfileTitle = "Completude $c$ por preenchimento $p$"

// groupBySize splits the rows into one p-ordered curve per board size.
// Sizes come back in increasing order.
func groupBySize(table *parser.ResultsTable) ([]float64, map[float64]plotter.XYs) {
	curves := make(map[float64]plotter.XYs)
	for _, row := range table.Rows {
		curves[row.Size] = append(curves[row.Size], plotter.XY{X: row.P, Y: row.C})
	}

	sizes := make([]float64, 0, len(curves))
	for size, pts := range curves {
		sizes = append(sizes, size)
		sort.SliceStable(pts, func(i, j int) bool {
			return pts[i].X < pts[j].X
		})
	}
	sort.Float64s(sizes)
	return sizes, curves
}

// CreateProfilePlot draws c over p with one line per board size and returns
// the PNG bytes.
func CreateProfilePlot(table *parser.ResultsTable, width, height vg.Length) ([]byte, error) {
	if table == nil || table.Len() == 0 {
		return nil, fmt.Errorf("no results to plot")
	}
	if err := checkTableFinite(table); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = ProfileTitle
	p.Title.TextStyle.Handler = mathText
	p.X.Label.Text = "$p$"
	p.X.Label.TextStyle.Handler = mathText
	p.Y.Label.Text = "$c$"
	p.Y.Label.TextStyle.Handler = mathText
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(plotter.NewGrid())

	sizes, curves := groupBySize(table)
	for i, size := range sizes {
		line, err := plotter.NewLine(curves[size])
		if err != nil {
			return nil, fmt.Errorf("failed to create line for N=%g: %w", size, err)
		}
		line.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(fmt.Sprintf("N=%g", size), line)
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(-10)

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
