package halfedge

import (
	"sort"
	"testing"

	"github.com/planargeom/clip"
	"github.com/tdewolff/test"
)

func square(x0, y0, x1, y1 float64) []clip.Point {
	return []clip.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func faceAreas(g *Graph) []float64 {
	var areas []float64
	for _, f := range g.Faces() {
		areas = append(areas, f.Area)
	}
	sort.Float64s(areas)
	return areas
}

func TestBuildSingleLoop(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 1.0, 1.0), GroupA)
	g := b.Build()

	test.T(t, g.IsEmpty(), false)
	test.T(t, g.NumEdges(), 8)
	test.T(t, g.NumComponents(), 1)
	test.T(t, len(g.Faces()), 2)

	areas := faceAreas(g)
	test.Float(t, areas[0], -1.0)
	test.Float(t, areas[1], 1.0)

	outer := g.OuterFace(0)
	test.T(t, g.Faces()[outer].IsExterior(), true)
	for e := 0; e < g.NumEdges(); e++ {
		test.T(t, g.OddCrossing(EdgeIndex(e), GroupA), true)
		test.T(t, g.OddCrossing(EdgeIndex(e), GroupB), false)
		test.T(t, g.IsExterior(EdgeIndex(e)), g.FaceOf(EdgeIndex(e)) == outer)
	}

	interior := 1 - outer
	test.T(t, len(g.FaceLoop(interior)), 4)
	test.T(t, len(g.FaceEdges(interior)), 4)
}

func TestBuildTwinInvariants(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 1.0, 1.0), GroupA)
	g := b.Build()

	for e := 0; e < g.NumEdges(); e++ {
		h := EdgeIndex(e)
		test.T(t, g.Twin(g.Twin(h)), h)
		// twin edges share their endpoints in reverse
		test.T(t, g.Origin(h), g.Origin(g.FaceNext(g.Twin(h))))
	}
}

func TestBuildCrossingLoops(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 2.0, 2.0), GroupA)
	b.AddLoop(square(1.0, 1.0, 3.0, 3.0), GroupB)
	g := b.Build()

	// the crossing splits the plane into both exclusive parts, the lens, and
	// the exterior
	test.T(t, g.NumComponents(), 1)
	test.T(t, len(g.Faces()), 4)

	areas := faceAreas(g)
	test.Float(t, areas[0], -7.0)
	test.Float(t, areas[1], 1.0)
	test.Float(t, areas[2], 3.0)
	test.Float(t, areas[3], 3.0)
}

func TestBuildSharedEdge(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 1.0, 1.0), GroupA)
	b.AddLoop(square(0.5, 0.0, 1.5, 1.0), GroupB)
	g := b.Build()

	test.T(t, g.NumComponents(), 1)
	test.T(t, len(g.Faces()), 4)
	areas := faceAreas(g)
	test.Float(t, areas[0], -1.5)
	test.Float(t, areas[1], 0.5)
	test.Float(t, areas[2], 0.5)
	test.Float(t, areas[3], 0.5)

	// the collinear overlap on the bottom edge carries both groups
	shared := EmptyEdge
	for e := 0; e < g.NumEdges(); e++ {
		h := EdgeIndex(e)
		p, q := g.Origin(h), g.Origin(g.Twin(h))
		if p.Equals(clip.Point{X: 0.5, Y: 0.0}) && q.Equals(clip.Point{X: 1.0, Y: 0.0}) {
			shared = h
			break
		}
	}
	test.T(t, shared != EmptyEdge, true)
	test.T(t, g.OddCrossing(shared, GroupA), true)
	test.T(t, g.OddCrossing(shared, GroupB), true)
}

func TestBuildNestedLoops(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 3.0, 3.0), GroupA)
	b.AddLoop(square(1.0, 1.0, 2.0, 2.0), GroupA)
	g := b.Build()

	test.T(t, g.NumComponents(), 2)
	test.T(t, len(g.Faces()), 4)
	areas := faceAreas(g)
	test.Float(t, areas[0], -9.0)
	test.Float(t, areas[1], -1.0)
	test.Float(t, areas[2], 1.0)
	test.Float(t, areas[3], 9.0)

	for c := 0; c < g.NumComponents(); c++ {
		test.T(t, g.Faces()[g.OuterFace(c)].Area < 0.0, true)
	}
}

func TestBuildDuplicateLoops(t *testing.T) {
	b := NewBuilder(1e-9)
	b.AddLoop(square(0.0, 0.0, 1.0, 1.0), GroupA)
	b.AddLoop(square(0.0, 0.0, 1.0, 1.0), GroupA)
	g := b.Build()

	// duplicate edges merge; the doubled crossing count is even
	test.T(t, g.NumEdges(), 8)
	for e := 0; e < g.NumEdges(); e++ {
		test.T(t, g.OddCrossing(EdgeIndex(e), GroupA), false)
	}
}

func TestBuildEmpty(t *testing.T) {
	g := NewBuilder(1e-9).Build()
	test.T(t, g.IsEmpty(), true)
	test.T(t, g.NumComponents(), 0)

	b := NewBuilder(1e-9)
	b.AddLoop([]clip.Point{{X: 0.0, Y: 0.0}}, GroupA)
	test.T(t, b.Build().IsEmpty(), true)
}
