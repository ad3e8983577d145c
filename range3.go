package clip

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Range3 is an axis-aligned box in 3D space. The zero value of the null range
// has Min above Max so that extending it by any point yields that point.
type Range3 struct {
	Min, Max mgl64.Vec3
}

// NullRange3 returns the empty range.
func NullRange3() Range3 {
	inf := math.Inf(1)
	return Range3{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// NewRange3 returns the smallest range containing all given points.
func NewRange3(pts ...mgl64.Vec3) Range3 {
	r := NullRange3()
	for _, p := range pts {
		r = r.ExtendPoint(p)
	}
	return r
}

// IsNull returns true if the range contains no points.
func (r Range3) IsNull() bool {
	return r.Max[0] < r.Min[0] || r.Max[1] < r.Min[1] || r.Max[2] < r.Min[2]
}

// ExtendPoint grows the range to contain p.
func (r Range3) ExtendPoint(p mgl64.Vec3) Range3 {
	for i := 0; i < 3; i++ {
		r.Min[i] = math.Min(r.Min[i], p[i])
		r.Max[i] = math.Max(r.Max[i], p[i])
	}
	return r
}

// Extend grows the range to contain q.
func (r Range3) Extend(q Range3) Range3 {
	if q.IsNull() {
		return r
	} else if r.IsNull() {
		return q
	}
	return r.ExtendPoint(q.Min).ExtendPoint(q.Max)
}

// Intersect returns the overlap of both ranges, possibly null.
func (r Range3) Intersect(q Range3) Range3 {
	if r.IsNull() || q.IsNull() {
		return NullRange3()
	}
	for i := 0; i < 3; i++ {
		r.Min[i] = math.Max(r.Min[i], q.Min[i])
		r.Max[i] = math.Min(r.Max[i], q.Max[i])
	}
	if r.IsNull() {
		return NullRange3()
	}
	return r
}

// Contains returns true if p is inside the range with tolerance tol.
func (r Range3) Contains(p mgl64.Vec3, tol float64) bool {
	for i := 0; i < 3; i++ {
		if p[i] < r.Min[i]-tol || r.Max[i]+tol < p[i] {
			return false
		}
	}
	return true
}

// Center returns the center point of the range.
func (r Range3) Center() mgl64.Vec3 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// DiagonalLength returns the length of the main diagonal, or zero for a null range.
func (r Range3) DiagonalLength() float64 {
	if r.IsNull() {
		return 0.0
	}
	return r.Max.Sub(r.Min).Len()
}

// Corners returns the eight corner points of the range.
func (r Range3) Corners() [8]mgl64.Vec3 {
	var cs [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		x, y, z := r.Min[0], r.Min[1], r.Min[2]
		if i&1 != 0 {
			x = r.Max[0]
		}
		if i&2 != 0 {
			y = r.Max[1]
		}
		if i&4 != 0 {
			z = r.Max[2]
		}
		cs[i] = mgl64.Vec3{x, y, z}
	}
	return cs
}

func (r Range3) String() string {
	if r.IsNull() {
		return "[null]"
	}
	return fmt.Sprintf("[%g; %g; %g]--[%g; %g; %g]", r.Min[0], r.Min[1], r.Min[2], r.Max[0], r.Max[1], r.Max[2])
}

////////////////////////////////////////////////////////////////

// Ray3 is a point with a direction in 3D space.
type Ray3 struct {
	Origin, Direction mgl64.Vec3
}

// PointAt returns the point at fraction f along the ray direction.
func (r Ray3) PointAt(f float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(f))
}
