package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/delaunay"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrTriangulation is returned when the (x, y) samples admit no triangulation:
// fewer than three distinct points, or all of them on one line.
var ErrTriangulation = errors.New("no triangulation exists for the input points")

// ErrNonFinite is returned when a plotted value is NaN or infinite.
var ErrNonFinite = errors.New("non-finite value")

// SurfaceColor is the face colour before shading (#1f77b4).
var SurfaceColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}

// Light source of the face shading, in degrees.
const (
	lightAzimuth  = 225.0
	lightAltitude = 19.4712
)

// Trisurf is a surface through scattered (X, Y, Z) samples, made of the
// Delaunay triangles of the (X, Y) plane.
type Trisurf struct {
	X, Y, Z   []float64
	Triangles [][3]int
	Color     color.Color
}

// NewTrisurf triangulates (x, y) and keeps z as the height of each vertex.
func NewTrisurf(x, y, z []float64) (*Trisurf, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, fmt.Errorf("trisurf columns differ in length: x=%d y=%d z=%d", len(x), len(y), len(z))
	}
	for _, col := range []struct {
		name   string
		values []float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if err := checkFinite(col.name, col.values); err != nil {
			return nil, err
		}
	}
	if len(x) < 3 {
		return nil, fmt.Errorf("%w: %d points", ErrTriangulation, len(x))
	}

	points := make([]delaunay.Point, len(x))
	for i := range points {
		points[i] = delaunay.Point{X: x[i], Y: y[i]}
	}
	triangles, err := triangulate(points)
	if err != nil {
		return nil, err
	}

	surf := &Trisurf{X: x, Y: y, Z: z, Color: SurfaceColor}
	for i := 0; i+2 < len(triangles); i += 3 {
		surf.Triangles = append(surf.Triangles, [3]int{triangles[i], triangles[i+1], triangles[i+2]})
	}
	return surf, nil
}

// triangulate returns the flat vertex indices of the Delaunay triangles.
// A panic inside the triangulator is reported as ErrTriangulation.
func triangulate(points []delaunay.Point) (triangles []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			triangles, err = nil, fmt.Errorf("%w: %v", ErrTriangulation, r)
		}
	}()

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTriangulation, err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrTriangulation
	}
	return tri.Triangles, nil
}

// checkFinite fails with ErrNonFinite on the first NaN or ±Inf in values.
func checkFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, name, i, v)
		}
	}
	return nil
}

// Vertex returns sample i as a 3D point.
func (s *Trisurf) Vertex(i int) r3.Vec {
	return r3.Vec{X: s.X[i], Y: s.Y[i], Z: s.Z[i]}
}

// lightDirection is the unit vector pointing at the light.
func lightDirection() r3.Vec {
	az := (90 - lightAzimuth) * math.Pi / 180
	alt := lightAltitude * math.Pi / 180
	return r3.Vec{
		X: math.Cos(az) * math.Cos(alt),
		Y: math.Sin(az) * math.Cos(alt),
		Z: math.Sin(alt),
	}
}

// shade darkens c by how much the face with the given upward normal turns
// away from the light: facing it keeps c, facing away scales it to 30%.
func shade(c color.Color, normal r3.Vec) color.Color {
	n := r3.Unit(normal)
	if math.IsNaN(n.X) {
		return c
	}
	if n.Z < 0 {
		n = r3.Scale(-1, n)
	}
	s := r3.Dot(n, lightDirection())
	f := 0.3 + 0.7*(s+1)/2

	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 {
		return uint8(math.Round(float64(v>>8) * f))
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}
