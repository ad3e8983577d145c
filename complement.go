package clip

// ComplementaryClips partitions the exterior of a convex set into one wedge
// per face. Each wedge starts from the negated face plane; for every pair of
// faces whose boundary intersection line touches the set, the wedges on both
// sides are separated by the bisector plane through that line (normal taken as
// the difference of the face normals), so that adjacent wedges only share
// their boundary ray.
func ComplementaryClips(s ConvexClipPlaneSet) []ConvexClipPlaneSet {
	wedges := make([]ConvexClipPlaneSet, len(s))
	for i, p := range s {
		wedges[i] = ConvexClipPlaneSet{p.Negated()}
	}
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			ray, ok := intersectPlanePlaneRay(s[i], s[j])
			if !ok {
				continue
			}
			if _, hit := s.HasIntersectionWithRay(ray); !hit {
				continue
			}
			bisector, ok := PlaneThroughPoint(s[j].Normal.Sub(s[i].Normal), ray.Origin)
			if !ok {
				continue
			}
			wedges[i] = append(wedges[i], bisector)
			wedges[j] = append(wedges[j], bisector.Negated())
		}
	}
	return wedges
}

// ComplementaryPrimitive wraps the exterior wedges of a convex set as an
// invisible primitive, the plane-set form in which a hole participates in
// containment queries.
func ComplementaryPrimitive(s ConvexClipPlaneSet) *ClipPrimitive {
	return NewClipPrimitive(UnionOfConvexClipPlaneSets(ComplementaryClips(s)), true)
}
