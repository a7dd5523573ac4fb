package report

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// View is the camera direction in degrees. Azimuth turns about the z axis,
// Elevation tilts above the xy plane.
type View struct {
	Azimuth   float64
	Elevation float64
}

// DefaultView looks at the box from azimuth -60°, elevation 30°.
var DefaultView = View{Azimuth: -60, Elevation: 30}

// boxAspect is the drawn size of the axes box along x, y and z.
var boxAspect = r3.Vec{X: 4, Y: 4, Z: 3}

// projector maps data coordinates into the axes box and the box onto the
// screen plane with an orthographic projection.
type projector struct {
	lims          [3]Limits
	eye           r3.Vec // unit vector from the box towards the viewer
	right, upward r3.Vec // screen axes
}

func newProjector(ax *Axes3D, v View) projector {
	az := v.Azimuth * math.Pi / 180
	el := v.Elevation * math.Pi / 180
	saz, caz := math.Sincos(az)
	sel, cel := math.Sincos(el)
	return projector{
		lims:   [3]Limits{ax.X.Limits, ax.Y.Limits, ax.Z.Limits},
		eye:    r3.Vec{X: cel * caz, Y: cel * saz, Z: sel},
		right:  r3.Vec{X: -saz, Y: caz},
		upward: r3.Vec{X: -sel * caz, Y: -sel * saz, Z: cel},
	}
}

// toBox maps a data point into the box centred on the origin.
func (pr projector) toBox(p r3.Vec) r3.Vec {
	norm := func(v float64, l Limits, size float64) float64 {
		return ((v-l.Min)/(l.Max-l.Min) - 0.5) * size
	}
	return r3.Vec{
		X: norm(p.X, pr.lims[0], boxAspect.X),
		Y: norm(p.Y, pr.lims[1], boxAspect.Y),
		Z: norm(p.Z, pr.lims[2], boxAspect.Z),
	}
}

// project returns the screen position of a box point and its depth; a larger
// depth is nearer the viewer.
func (pr projector) project(q r3.Vec) (x, y, depth float64) {
	return r3.Dot(q, pr.right), r3.Dot(q, pr.upward), r3.Dot(q, pr.eye)
}

// corner returns the box corner at the given side of each axis, where false
// is the lower limit.
func corner(hiX, hiY, hiZ bool) r3.Vec {
	side := func(hi bool, size float64) float64 {
		if hi {
			return size / 2
		}
		return -size / 2
	}
	return r3.Vec{X: side(hiX, boxAspect.X), Y: side(hiY, boxAspect.Y), Z: side(hiZ, boxAspect.Z)}
}

// paneSides returns, per axis, whether the back pane sits at the upper limit.
// Panes are drawn on the sides facing away from the viewer.
func (pr projector) paneSides() (x, y, z bool) {
	return pr.eye.X < 0, pr.eye.Y < 0, pr.eye.Z < 0
}
