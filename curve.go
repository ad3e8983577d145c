package clip

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Curve is a bounded curve primitive parameterized by a fraction in [0,1].
type Curve interface {
	// FractionToPoint evaluates the curve at fraction f.
	FractionToPoint(f float64) mgl64.Vec3
	// ClonePartialCurve returns the part of the curve between fractions f0 and f1.
	ClonePartialCurve(f0, f1 float64) Curve
	// AnnounceClipIntervals announces the parts of the curve inside the clipper.
	AnnounceClipIntervals(c Clipper, announce func(f0, f1 float64, part Curve)) bool
}

// Segment is a straight line between two points.
type Segment struct {
	Start, End mgl64.Vec3
}

// FractionToPoint evaluates the segment at fraction f.
func (s Segment) FractionToPoint(f float64) mgl64.Vec3 {
	return s.Start.Add(s.End.Sub(s.Start).Mul(f))
}

// ClonePartialCurve returns the sub-segment between fractions f0 and f1.
func (s Segment) ClonePartialCurve(f0, f1 float64) Curve {
	return Segment{s.FractionToPoint(f0), s.FractionToPoint(f1)}
}

// AnnounceClipIntervals announces the parts of the segment inside the clipper.
func (s Segment) AnnounceClipIntervals(c Clipper, announce func(f0, f1 float64, part Curve)) bool {
	return c.AnnounceClippedSegmentIntervals(0.0, 1.0, s.Start, s.End, func(f0, f1 float64) {
		if announce != nil {
			announce(f0, f1, s.ClonePartialCurve(f0, f1))
		}
	})
}

// Arc is an elliptic arc C + cos(θ)·U + sin(θ)·V with θ sweeping from 0 to
// Sweep radians; fraction f corresponds to θ = f·Sweep.
type Arc struct {
	Center, Vector0, Vector90 mgl64.Vec3
	Sweep                     float64
}

// CircularArcXY returns a circular arc in the XY plane around the given center.
func CircularArcXY(center mgl64.Vec3, radius, startAngle, sweep float64) Arc {
	sin, cos := math.Sincos(startAngle)
	return Arc{
		Center:   center,
		Vector0:  mgl64.Vec3{radius * cos, radius * sin, 0.0},
		Vector90: mgl64.Vec3{-radius * sin, radius * cos, 0.0},
		Sweep:    sweep,
	}
}

// FractionToPoint evaluates the arc at fraction f.
func (a Arc) FractionToPoint(f float64) mgl64.Vec3 {
	sin, cos := math.Sincos(f * a.Sweep)
	return a.Center.Add(a.Vector0.Mul(cos)).Add(a.Vector90.Mul(sin))
}

// ClonePartialCurve returns the sub-arc between fractions f0 and f1.
func (a Arc) ClonePartialCurve(f0, f1 float64) Curve {
	theta0 := f0 * a.Sweep
	sin, cos := math.Sincos(theta0)
	return Arc{
		Center:   a.Center,
		Vector0:  a.Vector0.Mul(cos).Add(a.Vector90.Mul(sin)),
		Vector90: a.Vector90.Mul(cos).Sub(a.Vector0.Mul(sin)),
		Sweep:    (f1 - f0) * a.Sweep,
	}
}

// AnnounceClipIntervals announces the parts of the arc inside the clipper.
func (a Arc) AnnounceClipIntervals(c Clipper, announce func(f0, f1 float64, part Curve)) bool {
	return c.AnnounceClippedArcIntervals(a, func(f0, f1 float64) {
		if announce != nil {
			announce(f0, f1, a.ClonePartialCurve(f0, f1))
		}
	})
}

// planeCrossFractions returns the fractions at which the arc crosses the plane
// boundary. The altitude along the arc is γ + α·cos θ + β·sin θ, a shifted
// sinusoid whose roots follow from cos(θ-φ) = -γ/R.
func (a Arc) planeCrossFractions(p ClipPlane) []float64 {
	if Equal(a.Sweep, 0.0) {
		return nil
	}
	alpha := p.Normal.Dot(a.Vector0)
	beta := p.Normal.Dot(a.Vector90)
	gamma := p.Altitude(a.Center)
	r := math.Hypot(alpha, beta)
	if Equal(r, 0.0) || r < math.Abs(gamma) {
		return nil
	}
	phi := math.Atan2(beta, alpha)
	psi := math.Acos(math.Max(-1.0, math.Min(1.0, -gamma/r)))

	var fs []float64
	lo, hi := math.Min(0.0, a.Sweep), math.Max(0.0, a.Sweep)
	for _, theta := range []float64{phi + psi, phi - psi} {
		for k := -2; k <= 2; k++ {
			t := theta + 2.0*math.Pi*float64(k)
			if lo-Epsilon <= t && t <= hi+Epsilon {
				fs = append(fs, t/a.Sweep)
			}
		}
	}
	return fs
}

// announceArcIntervals classifies the arc spans between crossing fractions by
// testing each span's midpoint against the clipper, and announces the inside
// spans merged together.
func announceArcIntervals(c Clipper, arc Arc, breaks []float64, announce func(f0, f1 float64)) bool {
	fs := append(breaks, 0.0, 1.0)
	sort.Float64s(fs)
	i := 0
	for _, f := range fs {
		if f < -Epsilon || 1.0+Epsilon < f {
			continue
		} else if 0 < i && Equal(fs[i-1], f) {
			continue
		}
		fs[i] = f
		i++
	}
	fs = fs[:i]

	any := false
	active := false
	start := 0.0
	for i := 0; i+1 < len(fs); i++ {
		mid := (fs[i] + fs[i+1]) / 2.0
		inside := c.IsPointOnOrInside(arc.FractionToPoint(mid), Epsilon)
		if inside && !active {
			active, start = true, fs[i]
		} else if !inside && active {
			active = false
			any = true
			if announce != nil {
				announce(start, fs[i])
			}
		}
	}
	if active {
		any = true
		if announce != nil {
			announce(start, fs[len(fs)-1])
		}
	}
	return any
}

// CollectClippedCurves returns the parts of the curve inside the clipper.
func CollectClippedCurves(curve Curve, c Clipper) []Curve {
	var parts []Curve
	curve.AnnounceClipIntervals(c, func(f0, f1 float64, part Curve) {
		parts = append(parts, part)
	})
	return parts
}
