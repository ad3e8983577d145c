package halfedge

import (
	"math"
	"sort"

	"github.com/planargeom/clip"
)

// Builder accumulates tagged input loops and merges them into a Graph. All
// pairwise segment intersections become graph vertices, vertices closer than
// the tolerance are identified, duplicate undirected edges are merged with
// their crossing counts summed, and zero-length edges are dropped.
type Builder struct {
	tol  float64
	segs []builderSeg
}

type builderSeg struct {
	a, b           clip.Point
	countA, countB int
	cuts           []float64
}

// NewBuilder returns a Builder that merges geometry within the given
// tolerance. Non-positive tolerances fall back to Epsilon.
func NewBuilder(tol float64) *Builder {
	if tol <= 0.0 {
		tol = clip.Epsilon
	}
	return &Builder{tol: tol}
}

// AddLoop adds a closed polygonal loop for the given group. Consecutive
// duplicate points are skipped.
func (b *Builder) AddLoop(pts []clip.Point, group Group) {
	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		if q.Sub(p).Length() <= b.tol {
			continue
		}
		s := builderSeg{a: p, b: q}
		if group == GroupA {
			s.countA = 1
		} else {
			s.countB = 1
		}
		b.segs = append(b.segs, s)
	}
}

// Build merges everything added so far into a Graph.
func (b *Builder) Build() *Graph {
	b.insertIntersections()
	pieces := b.splitAtCuts()
	return b.assemble(pieces)
}

// insertIntersections records, on every segment, the fractions at which any
// other segment crosses or overlaps it.
func (b *Builder) insertIntersections() {
	for i := 0; i < len(b.segs); i++ {
		for j := i + 1; j < len(b.segs); j++ {
			b.cutPair(&b.segs[i], &b.segs[j])
		}
	}
}

func (b *Builder) cutPair(si, sj *builderSeg) {
	da := si.b.Sub(si.a)
	db := sj.b.Sub(sj.a)
	div := da.PerpDot(db)
	if math.Abs(div) <= clip.Epsilon*da.Length()*db.Length() {
		// parallel; only collinear overlaps produce cuts
		if math.Abs(da.PerpDot(sj.a.Sub(si.a))) > b.tol*da.Length() {
			return
		}
		lenA2 := da.Dot(da)
		lenB2 := db.Dot(db)
		for _, p := range []clip.Point{sj.a, sj.b} {
			t := da.Dot(p.Sub(si.a)) / lenA2
			if clip.Interval(t, 0.0, 1.0) {
				si.cuts = append(si.cuts, t)
			}
		}
		for _, p := range []clip.Point{si.a, si.b} {
			t := db.Dot(p.Sub(sj.a)) / lenB2
			if clip.Interval(t, 0.0, 1.0) {
				sj.cuts = append(sj.cuts, t)
			}
		}
		return
	}
	d := si.a.Sub(sj.a)
	ta := db.PerpDot(d) / div
	tb := da.PerpDot(d) / div
	if clip.Interval(ta, 0.0, 1.0) && clip.Interval(tb, 0.0, 1.0) {
		si.cuts = append(si.cuts, ta)
		sj.cuts = append(sj.cuts, tb)
	}
}

// splitAtCuts breaks each segment at its recorded fractions and returns the
// resulting sub-segments. Sub-segments shorter than the tolerance vanish.
func (b *Builder) splitAtCuts() []builderSeg {
	var pieces []builderSeg
	for _, s := range b.segs {
		ts := append([]float64{0.0, 1.0}, s.cuts...)
		sort.Float64s(ts)
		prev := s.a
		prevT := 0.0
		for _, t := range ts[1:] {
			if t <= prevT || 1.0 < t {
				continue
			}
			var p clip.Point
			if 1.0 <= t {
				p = s.b
			} else {
				p = s.a.Interpolate(s.b, t)
			}
			if p.Sub(prev).Length() > b.tol {
				pieces = append(pieces, builderSeg{a: prev, b: p, countA: s.countA, countB: s.countB})
				prev = p
				prevT = t
			}
		}
	}
	return pieces
}

type gridKey struct {
	x, y int64
}

func (b *Builder) snapKey(p clip.Point) gridKey {
	return gridKey{int64(math.Round(p.X / b.tol)), int64(math.Round(p.Y / b.tol))}
}

// assemble snaps endpoints onto a tolerance grid, merges duplicate undirected
// edges, links half-edges by angular order around each vertex, and walks the
// face loops.
func (b *Builder) assemble(pieces []builderSeg) *Graph {
	g := &Graph{}

	vertexAt := map[gridKey]int{}
	vertex := func(p clip.Point) int {
		k := b.snapKey(p)
		if v, ok := vertexAt[k]; ok {
			return v
		}
		v := len(g.verts)
		g.verts = append(g.verts, p)
		vertexAt[k] = v
		return v
	}

	type vertPair struct {
		u, v int
	}
	edgeAt := map[vertPair]EdgeIndex{}
	for _, s := range pieces {
		u, v := vertex(s.a), vertex(s.b)
		if u == v {
			continue
		}
		key := vertPair{u, v}
		if v < u {
			key = vertPair{v, u}
		}
		if e, ok := edgeAt[key]; ok {
			g.edges[e].countA += s.countA
			g.edges[e].countB += s.countB
			g.edges[e^1].countA += s.countA
			g.edges[e^1].countB += s.countB
			continue
		}
		e := EdgeIndex(len(g.edges))
		g.edges = append(g.edges,
			edge{origin: u, faceNext: EmptyEdge, face: -1, countA: s.countA, countB: s.countB},
			edge{origin: v, faceNext: EmptyEdge, face: -1, countA: s.countA, countB: s.countB},
		)
		edgeAt[key] = e
	}

	b.link(g)
	b.walkFaces(g)
	b.findComponents(g)
	return g
}

// link sets faceNext on every half-edge. The outgoing edges at each vertex
// are sorted counterclockwise by angle; the successor of a half-edge h is the
// outgoing edge at its head that precedes twin(h) in that order. This choice
// makes interior face loops counterclockwise.
func (b *Builder) link(g *Graph) {
	outgoing := make([][]EdgeIndex, len(g.verts))
	for e := range g.edges {
		v := g.edges[e].origin
		outgoing[v] = append(outgoing[v], EdgeIndex(e))
	}
	for _, out := range outgoing {
		sort.Slice(out, func(i, j int) bool {
			return b.edgeAngle(g, out[i]) < b.edgeAngle(g, out[j])
		})
	}
	rank := make([]int, len(g.edges))
	for _, out := range outgoing {
		for i, e := range out {
			rank[e] = i
		}
	}
	for e := range g.edges {
		twin := EdgeIndex(e) ^ 1
		out := outgoing[g.edges[twin].origin]
		i := rank[twin]
		g.edges[e].faceNext = out[(i-1+len(out))%len(out)]
	}
}

func (b *Builder) edgeAngle(g *Graph, e EdgeIndex) float64 {
	d := g.Origin(e ^ 1).Sub(g.Origin(e))
	return math.Atan2(d.Y, d.X)
}

// walkFaces assigns every half-edge to a face loop and computes the signed
// shoelace area of each loop.
func (b *Builder) walkFaces(g *Graph) {
	for e0 := range g.edges {
		if g.edges[e0].face >= 0 {
			continue
		}
		f := len(g.faces)
		area := 0.0
		e := EdgeIndex(e0)
		for {
			g.edges[e].face = f
			next := g.edges[e].faceNext
			area += g.Origin(e).PerpDot(g.Origin(next))
			e = next
			if e == EdgeIndex(e0) {
				break
			}
		}
		g.faces = append(g.faces, Face{First: EdgeIndex(e0), Area: 0.5 * area, Component: -1})
	}
}

// findComponents labels connected components with union-find over vertices
// and records each component's exterior face, the face of most negative area.
func (b *Builder) findComponents(g *Graph) {
	parent := make([]int, len(g.verts))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	for e := 0; e < len(g.edges); e += 2 {
		u := find(g.edges[e].origin)
		v := find(g.edges[e^1].origin)
		if u != v {
			parent[u] = v
		}
	}

	compOf := map[int]int{}
	for f := range g.faces {
		root := find(g.edges[g.faces[f].First].origin)
		c, ok := compOf[root]
		if !ok {
			c = len(compOf)
			compOf[root] = c
			g.outer = append(g.outer, -1)
		}
		g.faces[f].Component = c
		if g.outer[c] < 0 || g.faces[f].Area < g.faces[g.outer[c]].Area {
			g.outer[c] = f
		}
	}
	g.components = len(compOf)

	for e := range g.edges {
		f := g.edges[e].face
		g.edges[e].exterior = f == g.outer[g.faces[f].Component]
	}
}
