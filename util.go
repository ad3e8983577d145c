package clip

import (
	"fmt"
	"math"
)

// Epsilon is the default tolerance for geometric comparisons.
const Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Interval returns true if t is in [a,b] with tolerance Epsilon on both ends.
func Interval(t, a, b float64) bool {
	return a-Epsilon <= t && t <= b+Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in the XY plane.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Angle returns the angle between the x-axis and OP.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Interval1D is a fraction interval [T0,T1] along a segment or arc, with T0 <= T1.
type Interval1D struct {
	T0, T1 float64
}

// Empty returns true if the interval has no extent.
func (i Interval1D) Empty() bool {
	return i.T1 < i.T0
}

// unionIntervals merges overlapping or touching intervals. The input may be unsorted.
func unionIntervals(ivs []Interval1D) []Interval1D {
	if len(ivs) < 2 {
		return ivs
	}
	for i := 1; i < len(ivs); i++ {
		for j := i; 0 < j && ivs[j].T0 < ivs[j-1].T0; j-- {
			ivs[j-1], ivs[j] = ivs[j], ivs[j-1]
		}
	}
	merged := ivs[:1]
	for _, iv := range ivs[1:] {
		last := &merged[len(merged)-1]
		if iv.T0 <= last.T1+Epsilon {
			if last.T1 < iv.T1 {
				last.T1 = iv.T1
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

// intersectIntervals returns the pairwise intersection of two merged interval sets.
func intersectIntervals(a, b []Interval1D) []Interval1D {
	var out []Interval1D
	for _, u := range a {
		for _, v := range b {
			t0 := math.Max(u.T0, v.T0)
			t1 := math.Min(u.T1, v.T1)
			if t0 <= t1 {
				out = append(out, Interval1D{t0, t1})
			}
		}
	}
	return unionIntervals(out)
}
