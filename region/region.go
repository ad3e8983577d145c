// Package region computes Boolean combinations of planar XY regions bounded
// by polygonal loops. Input loops are merged into a half-edge graph with all
// intersections inserted, faces are classified by even-odd parity per input
// group, and the selected faces are traced back into loops and polygons.
package region

import (
	"math"

	"github.com/planargeom/clip"
	"github.com/planargeom/clip/halfedge"
)

// mergeFraction scales the merge tolerance with the extent of the inputs.
const mergeFraction = 1.0e-8

// BooleanOp selects which faces of the merged subdivision survive, as a
// predicate over the per-group inside flags.
type BooleanOp int

const (
	Union BooleanOp = iota
	Intersection
	AMinusB
	BMinusA
	Parity
)

func (op BooleanOp) String() string {
	switch op {
	case Union:
		return "Union"
	case Intersection:
		return "Intersection"
	case AMinusB:
		return "AMinusB"
	case BMinusA:
		return "BMinusA"
	case Parity:
		return "Parity"
	}
	return "Invalid"
}

func (op BooleanOp) selects(inA, inB bool) bool {
	switch op {
	case Union:
		return inA || inB
	case Intersection:
		return inA && inB
	case AMinusB:
		return inA && !inB
	case BMinusA:
		return !inA && inB
	case Parity:
		return inA != inB
	}
	return false
}

// Loop is a closed polygonal loop without a repeated end point.
// Counterclockwise loops have positive area.
type Loop []clip.Point

// Area returns the signed shoelace area of the loop.
func (l Loop) Area() float64 {
	area := 0.0
	for i, p := range l {
		area += p.PerpDot(l[(i+1)%len(l)])
	}
	return 0.5 * area
}

// Polygon is one counterclockwise outer loop with zero or more clockwise
// hole loops.
type Polygon struct {
	Outer Loop
	Holes []Loop
}

// Area returns the area of the polygon, holes subtracted.
func (p Polygon) Area() float64 {
	area := p.Outer.Area()
	for _, h := range p.Holes {
		area += h.Area()
	}
	return area
}

// UnionRegion is a set of disjoint polygons.
type UnionRegion []Polygon

// Area returns the total area of the region.
func (r UnionRegion) Area() float64 {
	area := 0.0
	for _, p := range r {
		area += p.Area()
	}
	return area
}

// BooleanXY merges the loops of groups A and B into a planar subdivision and
// returns the region selected by op. Loop orientation of the inputs does not
// matter; each group is interpreted by the even-odd rule. Empty inputs yield
// an empty region.
func BooleanXY(loopsA, loopsB [][]clip.Point, op BooleanOp) UnionRegion {
	g, areaTol := mergeGraph(loopsA, loopsB)
	if g.IsEmpty() {
		return nil
	}
	inA, inB := classifyFaces(g)
	selected := make([]bool, len(g.Faces()))
	for f := range selected {
		selected[f] = op.selects(inA[f], inB[f])
	}
	loops, _, _ := extractLoops(g, selected, areaTol)
	return assemble(loops)
}

// mergeGraph builds the shared subdivision of both loop sets. The merge
// tolerance and area tolerance scale with the bounding range of the inputs.
func mergeGraph(loopsA, loopsB [][]clip.Point) (*halfedge.Graph, float64) {
	diag := 0.0
	lo := clip.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi := clip.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, loops := range [][][]clip.Point{loopsA, loopsB} {
		for _, loop := range loops {
			for _, p := range loop {
				lo.X = math.Min(lo.X, p.X)
				lo.Y = math.Min(lo.Y, p.Y)
				hi.X = math.Max(hi.X, p.X)
				hi.Y = math.Max(hi.Y, p.Y)
			}
		}
	}
	if lo.X <= hi.X {
		diag = hi.Sub(lo).Length()
	}
	tol := mergeFraction * (1.0 + diag)

	b := halfedge.NewBuilder(tol)
	for _, loop := range loopsA {
		b.AddLoop(loop, halfedge.GroupA)
	}
	for _, loop := range loopsB {
		b.AddLoop(loop, halfedge.GroupB)
	}
	return b.Build(), tol * (1.0 + diag)
}

// classifyFaces assigns per-group even-odd inside flags to every face. The
// sweep starts at the unbounded exterior of each root component and flips a
// group's flag whenever it crosses an edge carrying an odd number of that
// group's input edges. Nested components inherit the parity of the smallest
// face of another component that contains them.
func classifyFaces(g *halfedge.Graph) (inA, inB []bool) {
	faces := g.Faces()
	inA = make([]bool, len(faces))
	inB = make([]bool, len(faces))

	parentFace := componentParents(g)
	for _, c := range componentOrder(g, parentFace) {
		outer := g.OuterFace(c)
		if pf := parentFace[c]; 0 <= pf {
			inA[outer] = inA[pf]
			inB[outer] = inB[pf]
		}
		queue := []int{outer}
		visited := map[int]bool{outer: true}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for _, e := range g.FaceEdges(f) {
				nf := g.FaceOf(g.Twin(e))
				if visited[nf] {
					continue
				}
				visited[nf] = true
				inA[nf] = inA[f] != g.OddCrossing(e, halfedge.GroupA)
				inB[nf] = inB[f] != g.OddCrossing(e, halfedge.GroupB)
				queue = append(queue, nf)
			}
		}
	}
	return inA, inB
}

// componentParents returns, per component, the smallest bounded face of any
// other component that contains it, or -1 for root components. Components are
// disjoint after intersection insertion, so any vertex serves as a
// representative and never lies on another component's edges.
func componentParents(g *halfedge.Graph) []int {
	faces := g.Faces()
	parent := make([]int, g.NumComponents())
	for c := range parent {
		parent[c] = -1
		p := g.Origin(faces[g.OuterFace(c)].First)
		for f, face := range faces {
			if face.Component == c || face.IsExterior() {
				continue
			}
			if !pointInLoop(g.FaceLoop(f), p) {
				continue
			}
			if parent[c] < 0 || face.Area < faces[parent[c]].Area {
				parent[c] = f
			}
		}
	}
	return parent
}

// componentOrder returns the components sorted by nesting depth, parents
// before children.
func componentOrder(g *halfedge.Graph, parentFace []int) []int {
	faces := g.Faces()
	depth := make([]int, len(parentFace))
	var depthOf func(c int) int
	depthOf = func(c int) int {
		if depth[c] == 0 && 0 <= parentFace[c] {
			depth[c] = depthOf(faces[parentFace[c]].Component) + 1
		}
		return depth[c]
	}
	order := make([]int, len(parentFace))
	for c := range order {
		order[c] = c
		depthOf(c)
	}
	for i := 1; i < len(order); i++ {
		for j := i; 0 < j && depth[order[j]] < depth[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	return order
}

// pointInLoop tests even-odd containment with a half-open crossing rule so
// that vertices on the scanline are counted once.
func pointInLoop(loop []clip.Point, p clip.Point) bool {
	in := false
	for i, a := range loop {
		b := loop[(i+1)%len(loop)]
		if (a.Y <= p.Y) != (b.Y <= p.Y) {
			x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < x {
				in = !in
			}
		}
	}
	return in
}

// extractLoops traces the boundary between selected and unselected faces.
// Boundaries around selected area come out counterclockwise, boundaries of
// holes in the selected area clockwise. Loops with fewer than three points
// or area below areaTol are returned separately as slivers.
func extractLoops(g *halfedge.Graph, selected []bool, areaTol float64) (loops, slivers []Loop, loopOf map[halfedge.EdgeIndex]int) {
	boundary := func(e halfedge.EdgeIndex) bool {
		return selected[g.FaceOf(e)] && !selected[g.FaceOf(g.Twin(e))]
	}
	loopOf = map[halfedge.EdgeIndex]int{}
	visited := make([]bool, g.NumEdges())
	for e0 := 0; e0 < g.NumEdges(); e0++ {
		start := halfedge.EdgeIndex(e0)
		if visited[e0] || !boundary(start) {
			continue
		}
		var pts Loop
		var traced []halfedge.EdgeIndex
		for e := start; ; {
			visited[e] = true
			traced = append(traced, e)
			pts = append(pts, g.Origin(e))
			e = g.FaceNext(e)
			for !boundary(e) {
				e = g.FaceNext(g.Twin(e))
			}
			if e == start {
				break
			}
		}
		idx := len(loops)
		if len(pts) < 3 || math.Abs(pts.Area()) < areaTol {
			idx = -len(slivers) - 1
			slivers = append(slivers, pts)
		} else {
			loops = append(loops, pts)
		}
		for _, e := range traced {
			loopOf[e] = idx
		}
	}
	return loops, slivers, loopOf
}

// assemble groups extracted loops into polygons. Positive loops become outer
// boundaries; each negative loop becomes a hole of the smallest outer loop
// containing it.
func assemble(loops []Loop) UnionRegion {
	var region UnionRegion
	outerOf := map[int]int{}
	for i, l := range loops {
		if 0.0 < l.Area() {
			outerOf[i] = len(region)
			region = append(region, Polygon{Outer: l})
		}
	}
	for i, l := range loops {
		if 0.0 < l.Area() {
			continue
		}
		host := -1
		for j, o := range loops {
			if i == j || o.Area() <= 0.0 || !pointInLoop(o, l[0]) {
				continue
			}
			if host < 0 || o.Area() < loops[host].Area() {
				host = j
			}
		}
		if 0 <= host {
			p := &region[outerOf[host]]
			p.Holes = append(p.Holes, l)
		}
	}
	return region
}
