package clip

import (
	"github.com/go-gl/mathgl/mgl64"
)

// ClipPrimitive is a named clip shape: a union of convex plane sets plus hole
// semantics. An invisible primitive removes volume instead of adding it; its
// plane sets are expected to describe the complement of the hole (see
// ComplementaryClips), so that point and segment queries go through the planes
// unchanged and only range intersection and trivial-reject shortcuts consult
// the flag.
//
// Mask-application metadata is not supported; only the invisible flag is
// carried.
type ClipPrimitive struct {
	Planes    UnionOfConvexClipPlaneSets
	Invisible bool
}

// NewClipPrimitive returns a primitive over the given plane sets.
func NewClipPrimitive(planes UnionOfConvexClipPlaneSets, invisible bool) *ClipPrimitive {
	return &ClipPrimitive{Planes: planes, Invisible: invisible}
}

// NewShapePrimitive returns a primitive clipping to the infinite prism over a
// convex counter clockwise polygon in the XY plane, optionally clamped to
// zLow/zHigh. It returns false if the polygon is degenerate.
func NewShapePrimitive(polygon []Point, zLow, zHigh *float64, invisible bool) (*ClipPrimitive, bool) {
	s, ok := ConvexSetFromConvexPolygonXY(polygon)
	if !ok {
		return nil, false
	}
	if zLow != nil {
		s = append(s, ClipPlane{mgl64.Vec3{0.0, 0.0, -1.0}, -*zLow})
	}
	if zHigh != nil {
		s = append(s, ClipPlane{mgl64.Vec3{0.0, 0.0, 1.0}, *zHigh})
	}
	return &ClipPrimitive{Planes: UnionOfConvexClipPlaneSets{s}, Invisible: invisible}, true
}

// IsPointOnOrInside returns true if pt is inside the primitive's planes. The
// invisible flag is not consulted here; explicit containment queries honor the
// planes normally.
func (c *ClipPrimitive) IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool {
	return c.Planes.IsPointOnOrInside(pt, tol)
}

// AnnounceClippedSegmentIntervals delegates to the wrapped plane sets.
func (c *ClipPrimitive) AnnounceClippedSegmentIntervals(f0, f1 float64, a, b mgl64.Vec3, announce func(f0, f1 float64)) bool {
	return c.Planes.AnnounceClippedSegmentIntervals(f0, f1, a, b, announce)
}

// AnnounceClippedArcIntervals delegates to the wrapped plane sets.
func (c *ClipPrimitive) AnnounceClippedArcIntervals(arc Arc, announce func(f0, f1 float64)) bool {
	return c.Planes.AnnounceClippedArcIntervals(arc, announce)
}

// AppendPolygonClip delegates to the wrapped plane sets.
func (c *ClipPrimitive) AppendPolygonClip(xyz []mgl64.Vec3, inside, outside *[]Fragment, arena *Arena) {
	c.Planes.AppendPolygonClip(xyz, inside, outside, arena)
}

////////////////////////////////////////////////////////////////

// ClipVector is an ordered list of clip primitives combined by intersection;
// invisible members act as holes cut out of the composition.
type ClipVector []*ClipPrimitive

// IsPointOnOrInside returns true if pt is inside every primitive's planes.
func (v ClipVector) IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool {
	for _, c := range v {
		if !c.IsPointOnOrInside(pt, tol) {
			return false
		}
	}
	return true
}

// AnnounceClippedSegmentIntervals announces the fraction intervals of the
// segment inside all primitives, intersecting the interval sets member by
// member.
func (v ClipVector) AnnounceClippedSegmentIntervals(f0, f1 float64, a, b mgl64.Vec3, announce func(f0, f1 float64)) bool {
	cur := []Interval1D{{f0, f1}}
	for _, c := range v {
		var ivs []Interval1D
		c.AnnounceClippedSegmentIntervals(f0, f1, a, b, func(g0, g1 float64) {
			ivs = append(ivs, Interval1D{g0, g1})
		})
		cur = intersectIntervals(cur, unionIntervals(ivs))
		if len(cur) == 0 {
			return false
		}
	}
	for _, iv := range cur {
		if announce != nil {
			announce(iv.T0, iv.T1)
		}
	}
	return true
}

// AnnounceClippedArcIntervals announces the fraction intervals of the arc
// inside all primitives.
func (v ClipVector) AnnounceClippedArcIntervals(arc Arc, announce func(f0, f1 float64)) bool {
	var fs []float64
	for _, c := range v {
		fs = append(fs, c.Planes.arcCrossFractions(arc)...)
	}
	return announceArcIntervals(v, arc, fs, announce)
}

// PolygonClippers returns the primitives as stages for a polygon clip
// sequence; the vector itself has no single-pass polygon clip.
func (v ClipVector) PolygonClippers() []Clipper {
	cs := make([]Clipper, len(v))
	for i, c := range v {
		cs[i] = c
	}
	return cs
}
