package clip

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Clipper classifies points, segments and arcs against a region. It is
// implemented by ConvexClipPlaneSet, UnionOfConvexClipPlaneSets, ClipPrimitive
// and ClipVector.
type Clipper interface {
	IsPointOnOrInside(pt mgl64.Vec3, tol float64) bool
	AnnounceClippedSegmentIntervals(f0, f1 float64, a, b mgl64.Vec3, announce func(f0, f1 float64)) bool
	AnnounceClippedArcIntervals(arc Arc, announce func(f0, f1 float64)) bool
}

// PolygonClipper splits polygons into inside and outside fragments. Clippers
// that do not implement it participate in point and segment tests but are
// skipped by the polygon clip sequences.
type PolygonClipper interface {
	AppendPolygonClip(xyz []mgl64.Vec3, inside, outside *[]Fragment, arena *Arena)
}

var (
	_ Clipper = ConvexClipPlaneSet{}
	_ Clipper = UnionOfConvexClipPlaneSets{}
	_ Clipper = (*ClipPrimitive)(nil)
	_ Clipper = ClipVector{}

	_ PolygonClipper = ConvexClipPlaneSet{}
	_ PolygonClipper = UnionOfConvexClipPlaneSets{}
	_ PolygonClipper = (*ClipPrimitive)(nil)
)
