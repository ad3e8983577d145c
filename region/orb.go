package region

import (
	"github.com/paulmach/orb"

	"github.com/planargeom/clip"
)

// ToOrb converts the region to an orb.MultiPolygon. Rings are closed with a
// repeated first point as orb expects.
func (r UnionRegion) ToOrb() orb.MultiPolygon {
	mp := make(orb.MultiPolygon, 0, len(r))
	for _, p := range r {
		poly := make(orb.Polygon, 0, 1+len(p.Holes))
		poly = append(poly, toRing(p.Outer))
		for _, h := range p.Holes {
			poly = append(poly, toRing(h))
		}
		mp = append(mp, poly)
	}
	return mp
}

// FromOrb converts an orb.MultiPolygon back to a UnionRegion, dropping the
// closing points of the rings.
func FromOrb(mp orb.MultiPolygon) UnionRegion {
	r := make(UnionRegion, 0, len(mp))
	for _, poly := range mp {
		if len(poly) == 0 {
			continue
		}
		p := Polygon{Outer: fromRing(poly[0])}
		for _, ring := range poly[1:] {
			p.Holes = append(p.Holes, fromRing(ring))
		}
		r = append(r, p)
	}
	return r
}

func toRing(l Loop) orb.Ring {
	ring := make(orb.Ring, 0, len(l)+1)
	for _, p := range l {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if 0 < len(ring) {
		ring = append(ring, ring[0])
	}
	return ring
}

func fromRing(ring orb.Ring) Loop {
	n := len(ring)
	if 1 < n && ring[0] == ring[n-1] {
		n--
	}
	l := make(Loop, 0, n)
	for _, p := range ring[:n] {
		l = append(l, clip.Point{X: p[0], Y: p[1]})
	}
	return l
}
