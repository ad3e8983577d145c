package clip

// RangeOfClipperIntersectionWithRange returns the bounding range of the part
// of the box inside the clipper, dispatching over the four concrete clipper
// kinds. With observeInvisibleFlag set, an invisible primitive does not shrink
// the range: a hole removes volume, so the surrounding range stands.
func RangeOfClipperIntersectionWithRange(c Clipper, r Range3, observeInvisibleFlag bool) Range3 {
	switch v := c.(type) {
	case ConvexClipPlaneSet:
		return v.RangeOfIntersectionWithRange(r)
	case UnionOfConvexClipPlaneSets:
		return v.RangeOfIntersectionWithRange(r)
	case *ClipPrimitive:
		if observeInvisibleFlag && v.Invisible {
			return r
		}
		return v.Planes.RangeOfIntersectionWithRange(r)
	case ClipVector:
		out := r
		for _, prim := range v {
			out = out.Intersect(RangeOfClipperIntersectionWithRange(prim, r, observeInvisibleFlag))
			if out.IsNull() {
				break
			}
		}
		return out
	}
	return r
}

// DoesClipperIntersectRange returns true if any part of the box is inside the
// clipper, honoring hole semantics as RangeOfClipperIntersectionWithRange does.
func DoesClipperIntersectRange(c Clipper, r Range3, observeInvisibleFlag bool) bool {
	return !RangeOfClipperIntersectionWithRange(c, r, observeInvisibleFlag).IsNull()
}
