package clip

import (
	"github.com/go-gl/mathgl/mgl64"
)

// UnionOfConvexClipPlaneSets is an OR-composition of convex regions. The
// composed region may be non-convex or disconnected.
type UnionOfConvexClipPlaneSets []ConvexClipPlaneSet

// IsPointOnOrInside returns true if pt is inside any member set.
func (u UnionOfConvexClipPlaneSets) IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool {
	for _, s := range u {
		if s.IsPointOnOrInside(pt, tol) {
			return true
		}
	}
	return false
}

// AnnounceClippedSegmentIntervals announces the union of the members' surviving
// fraction intervals over the segment A--B, merged so that overlapping member
// regions are not announced twice.
func (u UnionOfConvexClipPlaneSets) AnnounceClippedSegmentIntervals(f0, f1 float64, a, b mgl64.Vec3, announce func(f0, f1 float64)) bool {
	var ivs []Interval1D
	for _, s := range u {
		s.AnnounceClippedSegmentIntervals(f0, f1, a, b, func(g0, g1 float64) {
			ivs = append(ivs, Interval1D{g0, g1})
		})
	}
	ivs = unionIntervals(ivs)
	for _, iv := range ivs {
		if announce != nil {
			announce(iv.T0, iv.T1)
		}
	}
	return 0 < len(ivs)
}

// AnnounceClippedArcIntervals announces the fraction intervals of the arc
// inside the union.
func (u UnionOfConvexClipPlaneSets) AnnounceClippedArcIntervals(arc Arc, announce func(f0, f1 float64)) bool {
	return announceArcIntervals(u, arc, u.arcCrossFractions(arc), announce)
}

func (u UnionOfConvexClipPlaneSets) arcCrossFractions(arc Arc) []float64 {
	var fs []float64
	for _, s := range u {
		fs = append(fs, s.arcCrossFractions(arc)...)
	}
	return fs
}

// AppendPolygonClip splits the polygon against the union. A fragment counts as
// outside only when it is outside every member: pieces cut away by one member
// are carried forward as candidates for the next, so that overlapping members
// do not produce double-counted inside fragments.
func (u UnionOfConvexClipPlaneSets) AppendPolygonClip(xyz []mgl64.Vec3, inside, outside *[]Fragment, arena *Arena) {
	candidates := []Fragment{arena.GrabCopy(xyz)}
	for _, s := range u {
		var next []Fragment
		for _, frag := range candidates {
			s.AppendPolygonClip(frag, inside, &next, arena)
			arena.Release(frag)
		}
		candidates = next
		if len(candidates) == 0 {
			return
		}
	}
	*outside = append(*outside, candidates...)
}

// RangeOfIntersectionWithRange returns the bounding range of the part of the
// box inside the union, possibly null.
func (u UnionOfConvexClipPlaneSets) RangeOfIntersectionWithRange(r Range3) Range3 {
	out := NullRange3()
	for _, s := range u {
		out = out.Extend(s.RangeOfIntersectionWithRange(r))
	}
	return out
}
