package region

import (
	"github.com/ByteArena/poly2tri-go"

	"github.com/planargeom/clip"
)

// Triangulate tessellates the polygon into triangles with the sweep-line
// algorithm, respecting holes. The outer loop and holes must not
// self-intersect; run geometry through BooleanXY first if in doubt.
func Triangulate(p Polygon) [][3]clip.Point {
	contour := make([]*poly2tri.Point, 0, len(p.Outer))
	for _, pt := range p.Outer {
		contour = append(contour, poly2tri.NewPoint(pt.X, pt.Y))
	}
	swctx := poly2tri.NewSweepContext(contour, false)
	for _, h := range p.Holes {
		hole := make([]*poly2tri.Point, 0, len(h))
		for _, pt := range h {
			hole = append(hole, poly2tri.NewPoint(pt.X, pt.Y))
		}
		swctx.AddHole(hole)
	}
	swctx.Triangulate()

	var triangles [][3]clip.Point
	for _, tr := range swctx.GetTriangles() {
		triangles = append(triangles, [3]clip.Point{
			{X: tr.Points[0].X, Y: tr.Points[0].Y},
			{X: tr.Points[1].X, Y: tr.Points[1].Y},
			{X: tr.Points[2].X, Y: tr.Points[2].Y},
		})
	}
	return triangles
}

// TriangulateRegion tessellates every polygon of the region.
func TriangulateRegion(r UnionRegion) [][3]clip.Point {
	var triangles [][3]clip.Point
	for _, p := range r {
		triangles = append(triangles, Triangulate(p)...)
	}
	return triangles
}
