package region

import (
	"math"

	"github.com/planargeom/clip"
	"github.com/planargeom/clip/halfedge"
)

// LoopKind tells which slice of a SignedLoops a LoopRef points into.
type LoopKind int

const (
	PositiveLoop LoopKind = iota
	NegativeLoop
	SliverLoop
)

// LoopRef identifies one loop of a SignedLoops.
type LoopRef struct {
	Kind  LoopKind
	Index int
}

// SignedLoops is the face decomposition of one connected component of a
// merged subdivision: its counterclockwise bounded face loops, its single
// clockwise exterior loop, and any near-zero-area faces split off as
// slivers. LoopOfEdge maps every half-edge of the component to its loop.
type SignedLoops struct {
	Positive   []Loop
	Negative   Loop
	Slivers    []Loop
	LoopOfEdge map[halfedge.EdgeIndex]LoopRef
}

// ConstructAllXYRegionLoops merges the input loops into one subdivision and
// returns the raw signed face loops of every connected component, without
// applying any Boolean selection. Callers get the full face decomposition,
// including faces that even-odd classification would cancel.
func ConstructAllXYRegionLoops(loops [][]clip.Point) []SignedLoops {
	g, areaTol := mergeGraph(loops, nil)
	if g.IsEmpty() {
		return nil
	}
	out := make([]SignedLoops, g.NumComponents())
	for c := range out {
		out[c].LoopOfEdge = map[halfedge.EdgeIndex]LoopRef{}
	}
	for f, face := range g.Faces() {
		sl := &out[face.Component]
		loop := Loop(g.FaceLoop(f))
		var ref LoopRef
		switch {
		case f == g.OuterFace(face.Component):
			sl.Negative = loop
			ref = LoopRef{Kind: NegativeLoop}
		case math.Abs(face.Area) < areaTol:
			ref = LoopRef{Kind: SliverLoop, Index: len(sl.Slivers)}
			sl.Slivers = append(sl.Slivers, loop)
		default:
			ref = LoopRef{Kind: PositiveLoop, Index: len(sl.Positive)}
			sl.Positive = append(sl.Positive, loop)
		}
		for _, e := range g.FaceEdges(f) {
			sl.LoopOfEdge[e] = ref
		}
	}
	return out
}
