// Package halfedge builds planar subdivisions from sets of XY loops. Curve
// intersections are inserted, coincident vertices and edges are merged within
// a tolerance, and the resulting half-edge graph exposes face loops, signed
// areas and per-edge crossing parities for region classification.
//
// Half-edges are kept as indices into a flat arena; the twin of edge e is
// always e^1. Every half-edge belongs to exactly one face loop and one vertex
// loop.
package halfedge

import (
	"github.com/planargeom/clip"
)

// EdgeIndex refers to a half-edge in a graph.
type EdgeIndex int

// EmptyEdge is the index of no edge.
const EmptyEdge EdgeIndex = -1

// Group tags input loops so that region classification can keep separate
// in/out parities per input operand.
type Group int

const (
	GroupA Group = iota
	GroupB
)

type edge struct {
	origin   int
	faceNext EdgeIndex
	face     int
	exterior bool
	// crossing multiplicity of the undirected edge per group, stored on
	// both halves
	countA, countB int
}

// Face is one face loop of the graph.
type Face struct {
	First     EdgeIndex
	Area      float64
	Component int
}

// IsExterior returns true if this is the unbounded face of its component,
// recognizable by its negative area.
func (f Face) IsExterior() bool {
	return f.Area < 0.0
}

// Graph is a planar subdivision. Build one with a Builder.
type Graph struct {
	verts      []clip.Point
	edges      []edge
	faces      []Face
	components int
	outer      []int // per component, its exterior face
}

// IsEmpty returns true if the graph has no edges.
func (g *Graph) IsEmpty() bool {
	return len(g.edges) == 0
}

// NumEdges returns the number of half-edges.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// Twin returns the oppositely directed half-edge of e.
func (g *Graph) Twin(e EdgeIndex) EdgeIndex {
	return e ^ 1
}

// FaceNext returns the next half-edge along the face loop of e.
func (g *Graph) FaceNext(e EdgeIndex) EdgeIndex {
	return g.edges[e].faceNext
}

// FaceOf returns the face that e bounds.
func (g *Graph) FaceOf(e EdgeIndex) int {
	return g.edges[e].face
}

// Origin returns the start point of e.
func (g *Graph) Origin(e EdgeIndex) clip.Point {
	return g.verts[g.edges[e].origin]
}

// IsExterior returns true if e bounds the unbounded face of its component.
func (g *Graph) IsExterior(e EdgeIndex) bool {
	return g.edges[e].exterior
}

// OddCrossing returns true if crossing the undirected edge e flips the
// even-odd parity for the given group, ie. the edge carries an odd number of
// coincident input edges of that group.
func (g *Graph) OddCrossing(e EdgeIndex, group Group) bool {
	if group == GroupA {
		return g.edges[e].countA%2 == 1
	}
	return g.edges[e].countB%2 == 1
}

// Faces returns all face loops.
func (g *Graph) Faces() []Face {
	return g.faces
}

// NumComponents returns the number of connected components.
func (g *Graph) NumComponents() int {
	return g.components
}

// OuterFace returns the exterior face of the given component.
func (g *Graph) OuterFace(component int) int {
	return g.outer[component]
}

// FaceLoop returns the boundary points of face f in walk order.
func (g *Graph) FaceLoop(f int) []clip.Point {
	var pts []clip.Point
	e0 := g.faces[f].First
	for e := e0; ; {
		pts = append(pts, g.Origin(e))
		e = g.FaceNext(e)
		if e == e0 {
			break
		}
	}
	return pts
}

// FaceEdges returns the half-edges of face f in walk order.
func (g *Graph) FaceEdges(f int) []EdgeIndex {
	var es []EdgeIndex
	e0 := g.faces[f].First
	for e := e0; ; {
		es = append(es, e)
		e = g.FaceNext(e)
		if e == e0 {
			break
		}
	}
	return es
}
