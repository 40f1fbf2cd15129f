package kinematics

import (
	"math"

	"github.com/solarlune/resolv"
)

// Shape returns r as a free-standing resolv polygon. It belongs to no Space.
func (r Rect) Shape() *resolv.ConvexPolygon {
	return resolv.NewRectangle(r.X, r.Y, r.W, r.H)
}

// Overlaps reports whether r and o share interior area. Touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return overlapping(r.Shape(), o.Shape())
}

// overlapping runs the separating axis test over both polygons' edge normals.
// Intersection alone misses a polygon held inside another and flush sides,
// since it only reports crossing edges.
func overlapping(a, b *resolv.ConvexPolygon) bool {
	for _, p := range []*resolv.ConvexPolygon{a, b} {
		for _, axis := range p.SATAxes() {
			if !a.Project(axis).Overlapping(b.Project(axis)) {
				return false
			}
		}
	}
	return true
}

// surface is a solid together with its collision shape.
type surface struct {
	Rect
	shape *resolv.ConvexPolygon
}

func newSurfaces(rs []Rect) []surface {
	out := make([]surface, len(rs))
	for i, r := range rs {
		out[i] = surface{Rect: r, shape: r.Shape()}
	}
	return out
}

// sweepX covers every position between x and x+dx at the body's height, padded
// by eps so contacts within the tolerance stay candidates.
func sweepX(b Body, dx, eps float64) *resolv.ConvexPolygon {
	return Rect{
		X: math.Min(b.X, b.X+dx) - eps,
		Y: b.Y,
		W: b.W + math.Abs(dx) + 2*eps,
		H: b.H,
	}.Shape()
}

// sweepY covers every position between y and y+dy at the body's column.
func sweepY(b Body, dy, eps float64) *resolv.ConvexPolygon {
	top := math.Min(b.Y, b.Y+dy) - 2*eps
	bottom := math.Max(b.Y, b.Y+dy) + b.H + 2*eps
	return Rect{X: b.X, Y: top, W: b.W, H: bottom - top}.Shape()
}

// below extends the floor downward past nextBottom. Nothing under the floor is
// reachable, so a body found there is pushed back on top.
func below(floor Rect, nextBottom float64) *resolv.ConvexPolygon {
	floor.H = math.Max(floor.H, nextBottom-floor.Y) + 1
	return floor.Shape()
}
