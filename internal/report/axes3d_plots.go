package report

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	paneColor = color.RGBA{R: 242, G: 242, B: 242, A: 255}
	gridColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	edgeColor = color.Black
)

const (
	boxFill       = 0.72 // share of the canvas taken by the projected box
	tickLength    = vg.Length(4)
	tickLabelOffs = vg.Length(14)
	axisLabelOffs = vg.Length(34)
	tickFontSize  = vg.Length(8)
	labelFontSize = vg.Length(11)
	surfaceSeam   = vg.Length(0.3)
	gridLineWidth = vg.Length(0.5)
	axisLineWidth = vg.Length(0.8)
	paneEdgeWidth = vg.Length(0.4)
)

// mathText renders $...$ spans as math, the rest as plain text.
var mathText text.Handler = text.Latex{Fonts: font.DefaultCache}

// axesPlotter draws an Axes3D into the data area of a gonum plot.
type axesPlotter struct {
	ax   *Axes3D
	view View
}

// face is one projected triangle ready to paint.
type face struct {
	pts   []vg.Point
	depth float64
	color color.Color
}

// screen maps projected box coordinates onto the canvas.
type screen struct {
	pr     projector
	center vg.Point
	mid    [2]float64
	scale  float64
}

func newScreen(c draw.Canvas, pr projector) screen {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, hx := range []bool{false, true} {
		for _, hy := range []bool{false, true} {
			for _, hz := range []bool{false, true} {
				x, y, _ := pr.project(corner(hx, hy, hz))
				minX, maxX = math.Min(minX, x), math.Max(maxX, x)
				minY, maxY = math.Min(minY, y), math.Max(maxY, y)
			}
		}
	}
	size := c.Rectangle.Size()
	scale := math.Min(
		boxFill*float64(size.X)/(maxX-minX),
		boxFill*float64(size.Y)/(maxY-minY),
	)
	return screen{
		pr:     pr,
		center: c.Center(),
		mid:    [2]float64{(minX + maxX) / 2, (minY + maxY) / 2},
		scale:  scale,
	}
}

// point returns the canvas position of a box point.
func (s screen) point(q r3.Vec) vg.Point {
	x, y, _ := s.pr.project(q)
	return vg.Point{
		X: s.center.X + vg.Length((x-s.mid[0])*s.scale),
		Y: s.center.Y + vg.Length((y-s.mid[1])*s.scale),
	}
}

// Plot implements plot.Plotter.
func (a axesPlotter) Plot(c draw.Canvas, _ *plot.Plot) {
	pr := newProjector(a.ax, a.view)
	sc := newScreen(c, pr)
	xs, ys, zs := pr.paneSides()

	a.drawPanes(c, sc, xs, ys, zs)
	a.drawGrid(c, sc, xs, ys, zs)
	a.drawSurfaces(c, sc)
	a.drawAxes(c, sc, xs, ys, zs)
}

func (a axesPlotter) drawPanes(c draw.Canvas, sc screen, xs, ys, zs bool) {
	panes := [][]r3.Vec{
		{corner(xs, false, false), corner(xs, true, false), corner(xs, true, true), corner(xs, false, true)},
		{corner(false, ys, false), corner(true, ys, false), corner(true, ys, true), corner(false, ys, true)},
		{corner(false, false, zs), corner(true, false, zs), corner(true, true, zs), corner(false, true, zs)},
	}
	edge := draw.LineStyle{Color: gridColor, Width: paneEdgeWidth}
	for _, pane := range panes {
		pts := make([]vg.Point, 0, len(pane)+1)
		for _, q := range pane {
			pts = append(pts, sc.point(q))
		}
		c.FillPolygon(paneColor, pts)
		c.StrokeLines(edge, append(pts, pts[0]))
	}
}

// boxValue maps a value on axis i (0=x, 1=y, 2=z) to its box coordinate.
func (s screen) boxValue(i int, v float64) float64 {
	var p r3.Vec
	switch i {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	default:
		p.Z = v
	}
	b := s.pr.toBox(p)
	return [3]float64{b.X, b.Y, b.Z}[i]
}

func (a axesPlotter) axis(i int) *Axis3D {
	return [3]*Axis3D{&a.ax.X, &a.ax.Y, &a.ax.Z}[i]
}

// majorTicks returns the labelled ticks of axis i.
func (a axesPlotter) majorTicks(i int) []plot.Tick {
	l := a.axis(i).Limits
	if !l.valid() {
		return nil
	}
	var out []plot.Tick
	lo, hi := math.Min(l.Min, l.Max), math.Max(l.Min, l.Max)
	for _, t := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if t.IsMinor() {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (a axesPlotter) drawGrid(c draw.Canvas, sc screen, xs, ys, zs bool) {
	sty := draw.LineStyle{Color: gridColor, Width: gridLineWidth}
	half := func(size float64, hi bool) float64 {
		if hi {
			return size / 2
		}
		return -size / 2
	}
	px, py, pz := half(boxAspect.X, xs), half(boxAspect.Y, ys), half(boxAspect.Z, zs)
	hx, hy, hz := boxAspect.X/2, boxAspect.Y/2, boxAspect.Z/2

	var lines [][]vg.Point
	seg := func(p, q r3.Vec) {
		lines = append(lines, []vg.Point{sc.point(p), sc.point(q)})
	}
	for _, t := range a.majorTicks(0) {
		v := sc.boxValue(0, t.Value)
		seg(r3.Vec{X: v, Y: py, Z: -hz}, r3.Vec{X: v, Y: py, Z: hz})
		seg(r3.Vec{X: v, Y: -hy, Z: pz}, r3.Vec{X: v, Y: hy, Z: pz})
	}
	for _, t := range a.majorTicks(1) {
		v := sc.boxValue(1, t.Value)
		seg(r3.Vec{X: px, Y: v, Z: -hz}, r3.Vec{X: px, Y: v, Z: hz})
		seg(r3.Vec{X: -hx, Y: v, Z: pz}, r3.Vec{X: hx, Y: v, Z: pz})
	}
	for _, t := range a.majorTicks(2) {
		v := sc.boxValue(2, t.Value)
		seg(r3.Vec{X: px, Y: -hy, Z: v}, r3.Vec{X: px, Y: hy, Z: v})
		seg(r3.Vec{X: -hx, Y: py, Z: v}, r3.Vec{X: hx, Y: py, Z: v})
	}
	c.StrokeLines(sty, lines...)
}

// drawSurfaces paints every triangle back to front.
func (a axesPlotter) drawSurfaces(c draw.Canvas, sc screen) {
	var faces []face
	for _, s := range a.ax.Surfaces {
		for _, tri := range s.Triangles {
			var (
				box   r3.Triangle
				pts   = make([]vg.Point, 3)
				depth float64
			)
			for k, idx := range tri {
				box[k] = sc.pr.toBox(s.Vertex(idx))
				pts[k] = sc.point(box[k])
				_, _, d := sc.pr.project(box[k])
				depth += d / 3
			}
			faces = append(faces, face{pts: pts, depth: depth, color: shade(s.Color, box.Normal())})
		}
	}
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].depth < faces[j].depth
	})
	for _, f := range faces {
		c.FillPolygon(f.color, f.pts)
		c.StrokeLines(draw.LineStyle{Color: f.color, Width: surfaceSeam}, append(f.pts, f.pts[0]))
	}
}

// drawAxes draws the three axis lines with their ticks, tick labels and labels.
// x and y run along the bottom front edges; z runs up the left side edge.
func (a axesPlotter) drawAxes(c draw.Canvas, sc screen, xs, ys, zs bool) {
	zEdge := [2]r3.Vec{corner(xs, !ys, false), corner(xs, !ys, true)}
	alt := [2]r3.Vec{corner(!xs, ys, false), corner(!xs, ys, true)}
	if sc.point(alt[0]).X < sc.point(zEdge[0]).X {
		zEdge = alt
	}
	edges := [3][2]r3.Vec{
		{corner(false, !ys, zs), corner(true, !ys, zs)},
		{corner(!xs, false, zs), corner(!xs, true, zs)},
		zEdge,
	}

	origin := sc.point(r3.Vec{})
	for i, e := range edges {
		p0, p1 := sc.point(e[0]), sc.point(e[1])
		c.StrokeLines(draw.LineStyle{Color: edgeColor, Width: axisLineWidth}, []vg.Point{p0, p1})

		mid := vg.Point{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
		out := mid.Sub(origin)
		if i == 2 {
			out.Y = 0
		}
		out = unitPoint(out)

		for _, t := range a.majorTicks(i) {
			q := e[0]
			v := sc.boxValue(i, t.Value)
			switch i {
			case 0:
				q.X = v
			case 1:
				q.Y = v
			default:
				q.Z = v
			}
			at := sc.point(q)
			c.StrokeLines(draw.LineStyle{Color: edgeColor, Width: axisLineWidth},
				[]vg.Point{at, at.Add(out.Scale(tickLength))})
			c.FillText(textStyle(tickFontSize, plot.DefaultTextHandler), at.Add(out.Scale(tickLabelOffs)), t.Label)
		}

		if label := a.axis(i).Label; label != "" {
			c.FillText(textStyle(labelFontSize, mathText), mid.Add(out.Scale(axisLabelOffs)), label)
		}
	}
}

func unitPoint(p vg.Point) vg.Point {
	n := math.Hypot(float64(p.X), float64(p.Y))
	if n == 0 {
		return vg.Point{Y: -1}
	}
	return p.Scale(vg.Length(1 / n))
}

func textStyle(size vg.Length, hdlr text.Handler) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: hdlr,
	}
}
