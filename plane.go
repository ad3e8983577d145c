package clip

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ClipPlane is a half-space with unit normal n and distance d. A point p is on
// or inside the half-space when n·p - d <= tolerance, ie. the normal points
// towards the outside.
type ClipPlane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// NewClipPlane returns the half-space with the given (not necessarily unit)
// normal and distance. It returns false for a degenerate normal.
func NewClipPlane(normal mgl64.Vec3, distance float64) (ClipPlane, bool) {
	d := normal.Len()
	if Equal(d, 0.0) {
		return ClipPlane{}, false
	}
	return ClipPlane{normal.Mul(1.0 / d), distance / d}, true
}

// PlaneThroughPoint returns the half-space whose boundary passes through the
// given point. It returns false for a degenerate normal.
func PlaneThroughPoint(normal, point mgl64.Vec3) (ClipPlane, bool) {
	p, ok := NewClipPlane(normal, 0.0)
	if !ok {
		return ClipPlane{}, false
	}
	p.Distance = p.Normal.Dot(point)
	return p, true
}

// Altitude returns the signed height of p over the plane boundary, negative on
// the inside.
func (p ClipPlane) Altitude(pt mgl64.Vec3) float64 {
	return p.Normal.Dot(pt) - p.Distance
}

// IsPointOnOrInside returns true if pt is inside the half-space with tolerance tol.
func (p ClipPlane) IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool {
	return p.Altitude(pt) <= tol
}

// Negated returns the complementary half-space.
func (p ClipPlane) Negated() ClipPlane {
	return ClipPlane{p.Normal.Mul(-1.0), -p.Distance}
}

// basis returns two unit vectors that together with the normal form an
// orthogonal frame.
func (p ClipPlane) basis() (mgl64.Vec3, mgl64.Vec3) {
	axis := mgl64.Vec3{1.0, 0.0, 0.0}
	if math.Abs(p.Normal[1]) < math.Abs(p.Normal[0]) {
		axis = mgl64.Vec3{0.0, 1.0, 0.0}
		if math.Abs(p.Normal[2]) < math.Abs(p.Normal[1]) {
			axis = mgl64.Vec3{0.0, 0.0, 1.0}
		}
	} else if math.Abs(p.Normal[2]) < math.Abs(p.Normal[0]) {
		axis = mgl64.Vec3{0.0, 0.0, 1.0}
	}
	u := p.Normal.Cross(axis).Normalize()
	v := p.Normal.Cross(u)
	return u, v
}

// IntersectRange returns the polygon formed by intersecting the plane boundary
// with the given box, or nil if they do not intersect. When bounded is false
// the returned polygon is a rectangle on the plane spanning the box's extent
// without being clipped to the box itself.
func (p ClipPlane) IntersectRange(r Range3, bounded bool) []mgl64.Vec3 {
	if r.IsNull() {
		return nil
	}
	center := r.Center()
	d := r.DiagonalLength()
	if d/2.0+Epsilon < math.Abs(p.Altitude(center)) {
		// the plane misses even the box's bounding sphere
		return nil
	}
	anchor := center.Sub(p.Normal.Mul(p.Altitude(center)))
	u, v := p.basis()
	u, v = u.Mul(d), v.Mul(d)
	rect := []mgl64.Vec3{
		anchor.Sub(u).Sub(v),
		anchor.Add(u).Sub(v),
		anchor.Add(u).Add(v),
		anchor.Sub(u).Add(v),
	}
	if !bounded {
		return rect
	}
	return ConvexSetFromRange(r).ClipPolygon(rect)
}

// intersectPlanePlaneRay returns the line in which the boundaries of two
// half-spaces intersect, or false if they are parallel.
func intersectPlanePlaneRay(a, b ClipPlane) (Ray3, bool) {
	dir := a.Normal.Cross(b.Normal)
	div := dir.Dot(dir)
	if Equal(div, 0.0) {
		return Ray3{}, false
	}
	origin := b.Normal.Cross(dir).Mul(a.Distance).Add(dir.Cross(a.Normal).Mul(b.Distance)).Mul(1.0 / div)
	return Ray3{origin, dir.Normalize()}, true
}

func (p ClipPlane) String() string {
	return fmt.Sprintf("{n=[%g; %g; %g] d=%g}", p.Normal[0], p.Normal[1], p.Normal[2], p.Distance)
}
