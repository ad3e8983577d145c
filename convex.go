package clip

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ConvexClipPlaneSet is an AND-composition of half-spaces defining a convex,
// possibly unbounded region. A point is inside iff it is inside every plane.
type ConvexClipPlaneSet []ClipPlane

// ConvexSetFromRange returns the six half-spaces bounding the given box.
func ConvexSetFromRange(r Range3) ConvexClipPlaneSet {
	if r.IsNull() {
		return nil
	}
	return ConvexClipPlaneSet{
		{mgl64.Vec3{-1.0, 0.0, 0.0}, -r.Min[0]},
		{mgl64.Vec3{1.0, 0.0, 0.0}, r.Max[0]},
		{mgl64.Vec3{0.0, -1.0, 0.0}, -r.Min[1]},
		{mgl64.Vec3{0.0, 1.0, 0.0}, r.Max[1]},
		{mgl64.Vec3{0.0, 0.0, -1.0}, -r.Min[2]},
		{mgl64.Vec3{0.0, 0.0, 1.0}, r.Max[2]},
	}
}

// ConvexSetFromConvexPolygonXY returns the half-spaces whose intersection is
// the infinite prism over a convex counter clockwise polygon in the XY plane.
// It returns false if the polygon is degenerate.
func ConvexSetFromConvexPolygonXY(pts []Point) (ConvexClipPlaneSet, bool) {
	if len(pts) < 3 {
		return nil, false
	}
	s := make(ConvexClipPlaneSet, 0, len(pts))
	for i, p0 := range pts {
		p1 := pts[(i+1)%len(pts)]
		edge := p1.Sub(p0)
		// outward normal of a CCW polygon
		plane, ok := PlaneThroughPoint(mgl64.Vec3{edge.Y, -edge.X, 0.0}, mgl64.Vec3{p0.X, p0.Y, 0.0})
		if !ok {
			continue
		}
		s = append(s, plane)
	}
	if len(s) < 3 {
		return nil, false
	}
	return s, true
}

// IsPointOnOrInside returns true if pt is inside every plane with tolerance tol.
func (s ConvexClipPlaneSet) IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool {
	for _, p := range s {
		if !p.IsPointOnOrInside(pt, tol) {
			return false
		}
	}
	return true
}

// AnnounceClippedSegmentIntervals clips the fraction interval [f0,f1] of the
// segment A--B against all planes and announces the surviving interval, if
// any. A plane crossing shrinks the interval to its inside part; an endpoint
// exactly on a plane counts as inside.
func (s ConvexClipPlaneSet) AnnounceClippedSegmentIntervals(f0, f1 float64, a, b mgl64.Vec3, announce func(f0, f1 float64)) bool {
	if f1 < f0 {
		return false
	}
	for _, p := range s {
		hA := p.Altitude(a)
		hB := p.Altitude(b)
		h0 := hA + f0*(hB-hA)
		h1 := hA + f1*(hB-hA)
		if h0 <= 0.0 && h1 <= 0.0 {
			continue
		} else if 0.0 < h0 && 0.0 < h1 {
			return false
		}
		f := f0 + (f1-f0)*(-h0/(h1-h0))
		if 0.0 < h0 {
			f0 = f
		} else {
			f1 = f
		}
		if f1 < f0 {
			return false
		}
	}
	if announce != nil {
		announce(f0, f1)
	}
	return true
}

// AnnounceClippedArcIntervals announces the fraction intervals of the arc that
// are inside the convex set.
func (s ConvexClipPlaneSet) AnnounceClippedArcIntervals(arc Arc, announce func(f0, f1 float64)) bool {
	return announceArcIntervals(s, arc, s.arcCrossFractions(arc), announce)
}

func (s ConvexClipPlaneSet) arcCrossFractions(arc Arc) []float64 {
	var fs []float64
	for _, p := range s {
		fs = append(fs, arc.planeCrossFractions(p)...)
	}
	return fs
}

// AppendPolygonClip splits the polygon into the piece inside the convex set
// and the pieces cut away, clipping sequentially against each plane. Fragment
// buffers come from the arena; sliver pieces return to it silently.
func (s ConvexClipPlaneSet) AppendPolygonClip(xyz []mgl64.Vec3, inside, outside *[]Fragment, arena *Arena) {
	work := arena.GrabCopy(xyz)
	if len(work) < minFragmentVertices {
		arena.Release(work)
		return
	}
	for _, p := range s {
		in, out := splitFragmentByPlane(work, p, arena)
		arena.Release(work)
		if out != nil {
			*outside = append(*outside, out)
		}
		work = in
		if work == nil {
			return
		}
	}
	*inside = append(*inside, work)
}

// splitFragmentByPlane splits f into its part on or inside the plane and its
// part outside, either of which may be nil. Boundary points belong to both
// parts; a fragment entirely on the boundary counts as inside.
func splitFragmentByPlane(f Fragment, plane ClipPlane, arena *Arena) (Fragment, Fragment) {
	anyIn, anyOut := false, false
	for _, p := range f {
		h := plane.Altitude(p)
		if h < -Epsilon {
			anyIn = true
		} else if Epsilon < h {
			anyOut = true
		}
	}
	if !anyOut {
		return arena.GrabCopy(f), nil
	} else if !anyIn {
		return nil, arena.GrabCopy(f)
	}

	in, out := arena.Grab(), arena.Grab()
	n := len(f)
	for i := 0; i < n; i++ {
		p0, p1 := f[i], f[(i+1)%n]
		h0, h1 := plane.Altitude(p0), plane.Altitude(p1)
		if h0 <= Epsilon {
			in = append(in, p0)
		}
		if -Epsilon <= h0 {
			out = append(out, p0)
		}
		if (h0 < -Epsilon && Epsilon < h1) || (Epsilon < h0 && h1 < -Epsilon) {
			x := p0.Add(p1.Sub(p0).Mul(-h0 / (h1 - h0)))
			in = append(in, x)
			out = append(out, x)
		}
	}
	if len(in) < minFragmentVertices {
		arena.Release(in)
		in = nil
	}
	if len(out) < minFragmentVertices {
		arena.Release(out)
		out = nil
	}
	return in, out
}

// ClipPolygon returns the part of the polygon inside the convex set, or nil.
// It allocates instead of using an arena, for one-off queries.
func (s ConvexClipPlaneSet) ClipPolygon(pts []mgl64.Vec3) []mgl64.Vec3 {
	cur := append([]mgl64.Vec3(nil), pts...)
	for _, plane := range s {
		cur = clipPolygonByPlane(cur, plane)
		if len(cur) < minFragmentVertices {
			return nil
		}
	}
	return cur
}

func clipPolygonByPlane(pts []mgl64.Vec3, plane ClipPlane) []mgl64.Vec3 {
	var next []mgl64.Vec3
	n := len(pts)
	for i := 0; i < n; i++ {
		p0, p1 := pts[i], pts[(i+1)%n]
		h0, h1 := plane.Altitude(p0), plane.Altitude(p1)
		if h0 <= Epsilon {
			next = append(next, p0)
		}
		if (h0 < -Epsilon && Epsilon < h1) || (Epsilon < h0 && h1 < -Epsilon) {
			next = append(next, p0.Add(p1.Sub(p0).Mul(-h0/(h1-h0))))
		}
	}
	return next
}

// HasIntersectionWithRay returns a fraction at which the ray is inside the
// convex set, treating the ray as an infinite line in both directions.
func (s ConvexClipPlaneSet) HasIntersectionWithRay(ray Ray3) (float64, bool) {
	f0, f1 := -math.MaxFloat64, math.MaxFloat64
	for _, p := range s {
		h := p.Altitude(ray.Origin)
		dh := p.Normal.Dot(ray.Direction)
		if Equal(dh, 0.0) {
			if Epsilon < h {
				return 0.0, false
			}
			continue
		}
		f := -h / dh
		if 0.0 < dh {
			f1 = math.Min(f1, f)
		} else {
			f0 = math.Max(f0, f)
		}
		if f1 < f0-Epsilon {
			return 0.0, false
		}
	}
	if f0 == -math.MaxFloat64 {
		f0 = math.Min(f1, 0.0)
	}
	if f1 == math.MaxFloat64 {
		f1 = math.Max(f0, 0.0)
	}
	return (f0 + f1) / 2.0, true
}

// RangeOfIntersectionWithRange returns the bounding range of the part of the
// box inside the convex set, possibly null. An empty plane set leaves the box
// unchanged.
func (s ConvexClipPlaneSet) RangeOfIntersectionWithRange(r Range3) Range3 {
	if r.IsNull() {
		return NullRange3()
	} else if len(s) == 0 {
		return r
	}
	out := NullRange3()
	for _, c := range r.Corners() {
		if s.IsPointOnOrInside(c, Epsilon) {
			out = out.ExtendPoint(c)
		}
	}
	for _, p := range s {
		poly := p.IntersectRange(r, true)
		if poly == nil {
			continue
		}
		for _, pt := range s.ClipPolygon(poly) {
			out = out.ExtendPoint(pt)
		}
	}
	return out.Intersect(r)
}
