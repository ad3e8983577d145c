package clip

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPoint(t *testing.T) {
	p := Point{3.0, 4.0}
	test.T(t, p.Add(Point{1.0, 1.0}), Point{4.0, 5.0})
	test.T(t, p.Sub(Point{1.0, 1.0}), Point{2.0, 3.0})
	test.T(t, p.Mul(2.0), Point{6.0, 8.0})
	test.T(t, p.Neg(), Point{-3.0, -4.0})
	test.Float(t, p.Dot(Point{3.0, 0.0}), 9.0)
	test.Float(t, p.PerpDot(Point{1.0, 0.0}), -4.0)
	test.Float(t, p.Length(), 5.0)
	test.T(t, Point{}.Interpolate(p, 0.5), Point{1.5, 2.0})
	test.T(t, p.Equals(Point{3.0, 4.0}), true)
	test.T(t, p.Equals(Point{3.0, 4.1}), false)
	test.String(t, p.String(), "[3; 4]")
}

func TestInterval(t *testing.T) {
	test.T(t, Interval(0.5, 0.0, 1.0), true)
	test.T(t, Interval(0.0, 0.0, 1.0), true)
	test.T(t, Interval(1.0+Epsilon/2.0, 0.0, 1.0), true)
	test.T(t, Interval(1.1, 0.0, 1.0), false)
	test.T(t, Interval(-0.1, 0.0, 1.0), false)
}

func TestUnionIntervals(t *testing.T) {
	ivs := unionIntervals([]Interval1D{{0.6, 0.9}, {0.0, 0.3}, {0.25, 0.5}})
	test.T(t, ivs, []Interval1D{{0.0, 0.5}, {0.6, 0.9}})

	ivs = unionIntervals([]Interval1D{{0.5, 1.0}, {0.0, 0.5}})
	test.T(t, ivs, []Interval1D{{0.0, 1.0}})

	test.T(t, len(unionIntervals(nil)), 0)
}

func TestIntersectIntervals(t *testing.T) {
	a := []Interval1D{{0.0, 0.5}, {0.6, 0.9}}
	b := []Interval1D{{0.25, 0.7}}
	test.T(t, intersectIntervals(a, b), []Interval1D{{0.25, 0.5}, {0.6, 0.7}})
	test.T(t, len(intersectIntervals(a, nil)), 0)
}
